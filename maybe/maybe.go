/*
Package maybe implements an option type.

A Maybe holds either a value (Just) or nothing. The style-sheet model uses it
for optional selector parts, the document model for the not-yet-assigned
root of a document.

Values are inspected with a match-switch:

    var tag string
    switch m := sel.TagName.Match(); m {
    case m.Just(&tag):
        …
    case m.Nothing():
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

import "fmt"

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	Get() (T, bool)
	String() string
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty option.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of returns Just(x) if ok, Nothing otherwise.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Get returns the wrapped value and true, or the zero value and false.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// Get is a nil-safe variant of x.Get(). A nil Maybe is treated as Nothing.
func Get[T any](x Maybe[T]) (T, bool) {
	if x == nil {
		var zero T
		return zero, false
	}
	return x.Get()
}

// IsJust is a nil-safe predicate for a Maybe holding a value.
func IsJust[T any](x Maybe[T]) bool {
	_, ok := Get(x)
	return ok
}

// AndThen chains a computation which may fail.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if any.
func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		v = f(v)
		return Just[T](v)
	case m.Nothing():
	}
	return x
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Maybe.Match and is intended to be used in a switch
// statement. Exactly one of the cases returns the matcher itself, the other
// one returns nil.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
