// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tinyjson

import (
	"fmt"
	"unicode/utf8"
)

// A scanner yields the Unicode code points of UTF-8 input text one at a
// time, with exactly one code point of lookahead. The input is validated
// before scanning begins, so decoding cannot fail mid-parse. Each call to
// Parse owns one scanner exclusively and discards it on return.
type scanner struct {
	src []byte
	pos int // byte offset of the next unread code point
}

// peek reports the next code point without consuming it, or false if the
// input is exhausted.
func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch, _ := utf8.DecodeRune(s.src[s.pos:])
	return ch, true
}

// next consumes and returns the next code point, or reports false if the
// input is exhausted.
func (s *scanner) next() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch, nb := utf8.DecodeRune(s.src[s.pos:])
	s.pos += nb
	return ch, true
}

// atEOF reports whether the input is exhausted.
func (s *scanner) atEOF() bool { return s.pos >= len(s.src) }

// skipSpace consumes whitespace (space, tab, carriage return, line feed)
// without bound.
func (s *scanner) skipSpace() {
	for {
		ch, ok := s.peek()
		if !ok || !isSpace(ch) {
			return
		}
		s.next()
	}
}

// peekNonSpace skips whitespace, then reports the next code point without
// consuming it.
func (s *scanner) peekNonSpace() (rune, bool) { s.skipSpace(); return s.peek() }

// nextNonSpace skips whitespace, then consumes and returns the next code
// point.
func (s *scanner) nextNonSpace() (rune, bool) { s.skipSpace(); return s.next() }

// expect skips whitespace and consumes the next code point if it equals
// want. Any other code point, or exhausted input, is an ErrUnexpectedChar.
func (s *scanner) expect(want rune) error {
	ch, ok := s.peekNonSpace()
	if !ok {
		return s.failf("%w: want %q at end of input", ErrUnexpectedChar, want)
	} else if ch != want {
		return s.failf("%w: got %q, want %q", ErrUnexpectedChar, ch, want)
	}
	s.next()
	return nil
}

// fail wraps err with the scanner's current offset.
func (s *scanner) fail(err error) error {
	return &SyntaxError{Offset: s.pos, err: err}
}

func (s *scanner) failf(msg string, args ...any) error {
	return s.fail(fmt.Errorf(msg, args...))
}

// invalidUTF8 returns the offset of the first byte of data that is not part
// of a valid UTF-8 encoding, or -1 if data is entirely valid.
func invalidUTF8(data []byte) int {
	for i := 0; i < len(data); {
		ch, nb := utf8.DecodeRune(data[i:])
		if ch == utf8.RuneError && nb == 1 {
			return i
		}
		i += nb
	}
	return -1
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDelim(ch rune) bool    { return ch == ',' || ch == '}' || ch == ']' }
func isNumStart(ch rune) bool { return ch == '.' || ch == '-' || isDigit(ch) }
func isDigit(ch rune) bool    { return '0' <= ch && ch <= '9' }

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func hexValue(ch rune) rune {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0'
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10
	}
	return ch - 'A' + 10
}
