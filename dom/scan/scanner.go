/*
Package scan provides the input cursor shared by the markup and the style parser.

A Scanner walks a string rune by rune, keeping a byte offset. Expectations
which are not met produce an *Error carrying the offset; there is no
recovery.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scan

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mindom.scan'.
func tracer() tracing.Trace {
	return tracing.Select("mindom.scan")
}

// Scanner is a cursor into an immutable input string.
type Scanner struct {
	input string
	pos   int
}

// New creates a scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Pos is the current byte offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// EOF is true if the input is exhausted.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.input)
}

// Input returns the complete input.
func (s *Scanner) Input() string {
	return s.input
}

// Rest returns the unconsumed part of the input.
func (s *Scanner) Rest() string {
	return s.input[s.pos:]
}

// Peek returns the next rune without consuming it. At EOF it returns
// utf8.RuneError and false.
func (s *Scanner) Peek() (rune, bool) {
	if s.EOF() {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return r, true
}

// Next consumes and returns the next rune.
func (s *Scanner) Next() (rune, bool) {
	if s.EOF() {
		return utf8.RuneError, false
	}
	r, size := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += size
	return r, true
}

// StartsWith checks the unconsumed input for a prefix.
func (s *Scanner) StartsWith(prefix string) bool {
	return strings.HasPrefix(s.input[s.pos:], prefix)
}

// Advance skips n bytes. It must only be used after a successful StartsWith
// or a search in Rest, never to split a rune.
func (s *Scanner) Advance(n int) {
	s.pos += n
	if s.pos > len(s.input) {
		s.pos = len(s.input)
	}
}

// ConsumeWhile consumes the maximal run of runes satisfying test.
func (s *Scanner) ConsumeWhile(test func(rune) bool) string {
	start := s.pos
	for !s.EOF() {
		r, size := utf8.DecodeRuneInString(s.input[s.pos:])
		if !test(r) {
			break
		}
		s.pos += size
	}
	return s.input[start:s.pos]
}

// SkipWhitespace consumes Unicode white space.
func (s *Scanner) SkipWhitespace() {
	s.ConsumeWhile(unicode.IsSpace)
}

// Expect consumes the rune r or fails.
func (s *Scanner) Expect(r rune) error {
	pos := s.pos
	c, ok := s.Next()
	if !ok {
		return s.ErrorAt(pos, UnexpectedEndOfInput, quote(r), "")
	}
	if c != r {
		s.pos = pos
		return s.ErrorAt(pos, UnexpectedCharacter, quote(r), quote(c))
	}
	return nil
}

// ExpectString consumes the literal lit or fails.
func (s *Scanner) ExpectString(lit string) error {
	for _, r := range lit {
		if err := s.Expect(r); err != nil {
			return err
		}
	}
	return nil
}

// Errorf creates an error of the given kind at the current position. The
// found-part is derived from the lookahead.
func (s *Scanner) Errorf(kind Kind, expected string, args ...interface{}) *Error {
	found := ""
	if r, ok := s.Peek(); ok {
		found = quote(r)
	} else if kind == UnexpectedCharacter {
		kind = UnexpectedEndOfInput
	}
	return s.ErrorAt(s.pos, kind, fmt.Sprintf(expected, args...), found)
}

// ErrorAt creates an error at an explicit position.
func (s *Scanner) ErrorAt(pos int, kind Kind, expected, found string) *Error {
	err := &Error{Kind: kind, Pos: pos, Expected: expected, Found: found}
	tracer().Debugf("scan: %s", err.Error())
	return err
}

func quote(r rune) string {
	return fmt.Sprintf("%q", r)
}

// --- Character classes -----------------------------------------------------

// IsASCIIAlnum matches [0-9A-Za-z].
func IsASCIIAlnum(r rune) bool {
	return IsASCIIDigit(r) || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// IsASCIIDigit matches [0-9].
func IsASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
