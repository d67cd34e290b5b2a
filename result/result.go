/*
Package result implements a type for the outcome of a computation that may fail.

A Result holds either a value (Ok) or an error (Err), never both. It is
inspected with a match-switch:

    var doc *dom.Document
    var err error
    switch m := dom.Parse(text).Match(); m {
    case m.Ok(&doc):
        …
    case m.Err(&err):
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package result

import "github.com/npillmayer/mindom/maybe"

// Result is the result of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	Unwrap() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps an error. err must not be nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// From creates a result from a conventional (value, error) pair.
// A non-nil error wins, x is discarded.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// Unwrap returns the Go-style pair. For an Err the value is the zero value of T.
func (r result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// WithDefault returns the value of r or def, if r is an error.
func WithDefault[T any](def T, r Result[T]) T {
	if v, err := r.Unwrap(); err == nil {
		return v
	}
	return def
}

// Map applies f to an Ok value. Errors pass through.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// AndThen chains a computation which may fail.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	v, err := r.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// ToMaybe forgets the error.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	v, err := r.Unwrap()
	return maybe.Of(v, err == nil)
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Result.Match and is intended to be used in a switch
// statement.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
