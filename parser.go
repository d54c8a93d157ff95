// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tinyjson

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/valyala/fastjson/fastfloat"
	"go4.org/mem"
)

// Parse parses a complete document from UTF-8 text into a Value. The
// top-level value must be an object or an array; any non-space content
// after it fails with ErrTrailingData. Input that is not valid UTF-8 fails
// with ErrEncoding before parsing begins. All failures are reported as a
// *SyntaxError and leave no partial value.
//
// The accepted grammar is JSON-like but intentionally lax where the
// strict grammar is not: leading zeros are accepted (007 is the integer
// 7), literals match case-insensitively (TRUE, Null), duplicate object
// keys silently overwrite earlier ones, and \u escapes denote single code
// points with no surrogate-pair combination.
func Parse(data []byte) (*Value, error) {
	if i := invalidUTF8(data); i >= 0 {
		return nil, &SyntaxError{Offset: i, err: ErrEncoding}
	}
	p := &parser{s: scanner{src: data}}

	ch, ok := p.s.peekNonSpace()
	if !ok {
		return nil, p.s.failf("%w: end of input", ErrUnexpectedChar)
	}
	var v *Value
	var err error
	switch ch {
	case '{':
		v, err = p.parseObject()
	case '[':
		v, err = p.parseArray()
	default:
		err = p.s.failf("%w: %q cannot begin a document", ErrUnexpectedChar, ch)
	}
	if err != nil {
		return nil, err
	}
	if ch, ok := p.s.peekNonSpace(); ok {
		return nil, p.s.failf("%w: %q", ErrTrailingData, ch)
	}
	return v, nil
}

// ParseString parses a complete document from s. It is shorthand for
// Parse([]byte(s)).
func ParseString(s string) (*Value, error) { return Parse([]byte(s)) }

// A parser consumes a scanner and builds a Value tree by recursive
// descent. Every decision is made from the scanner's single code point of
// lookahead; no sub-parser reads further ahead or backtracks.
type parser struct {
	s   scanner
	buf bytes.Buffer // text of the string or literal being scanned
}

// parseValue parses any value form, dispatching on one peeked code point.
func (p *parser) parseValue() (*Value, error) {
	ch, ok := p.s.peekNonSpace()
	if !ok {
		return nil, p.s.failf("%w: end of input", ErrUnexpectedChar)
	}
	switch {
	case ch == '"':
		return p.parseString()
	case ch == '[':
		return p.parseArray()
	case ch == '{':
		return p.parseObject()
	case isNumStart(ch):
		return p.parseNumber()
	case ch == 't' || ch == 'T' || ch == 'f' || ch == 'F':
		return p.parseBool()
	case ch == 'n' || ch == 'N':
		return p.parseNull()
	}
	return nil, p.s.failf("%w: %q cannot begin a value", ErrUnexpectedChar, ch)
}

// parseObject parses an object form. Precondition: the next non-space code
// point is "{".
//
// The loop consumes commas wherever they appear between members, so
// {"a":1,} and {"a":"x" "b":2} both parse; a comma is never required and
// never terminal. Later duplicate keys overwrite earlier ones without
// error.
func (p *parser) parseObject() (*Value, error) {
	if err := p.s.expect('{'); err != nil {
		return nil, err
	}
	obj := &Value{typ: TypeObject, members: make(map[string]*Value)}
	for {
		ch, ok := p.s.peekNonSpace()
		if !ok {
			break // the closing expect reports the error
		}
		if ch == '"' {
			key, err := p.parseMember()
			if err != nil {
				return nil, err
			}
			if err := p.s.expect(':'); err != nil {
				return nil, err
			}
			m, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			obj.members[key] = m
		} else if ch == ',' {
			p.s.next()
		} else if ch == '}' {
			break
		} else {
			return nil, p.s.failf("%w: %q in object", ErrUnexpectedChar, ch)
		}
	}
	if err := p.s.expect('}'); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseArray parses an array form. Precondition: the next non-space code
// point is "[".
//
// After each element a comma is consumed if present but not required; a
// trailing comma fails because the next parseValue call sees the closing
// bracket.
func (p *parser) parseArray() (*Value, error) {
	if err := p.s.expect('['); err != nil {
		return nil, err
	}
	arr := &Value{typ: TypeArray}
	if ch, ok := p.s.peekNonSpace(); ok && ch == ']' {
		p.s.next()
		return arr, nil
	}
	for !p.s.atEOF() {
		e, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.elems = append(arr.elems, e)

		ch, ok := p.s.peekNonSpace()
		if !ok {
			break
		}
		if ch == ',' {
			p.s.next()
		} else if ch == ']' {
			break
		}
	}
	if err := p.s.expect(']'); err != nil {
		return nil, err
	}
	return arr, nil
}

// parseString parses a string form into a string Value.
func (p *parser) parseString() (*Value, error) {
	text, err := p.parseMember()
	if err != nil {
		return nil, err
	}
	return String(text), nil
}

// parseMember parses a string form and returns its decoded text. It is
// used both for member keys and for string values. Code points are
// appended literally, including raw control characters, until an unescaped
// closing quote; a backslash triggers escape decoding. Precondition: the
// next non-space code point is the opening quote.
func (p *parser) parseMember() (string, error) {
	if err := p.s.expect('"'); err != nil {
		return "", err
	}
	p.buf.Reset()
	for {
		ch, ok := p.s.peek()
		if !ok || ch == '"' {
			break
		}
		if ch == '\\' {
			dec, err := p.parseEscape()
			if err != nil {
				return "", err
			}
			if !utf8.ValidRune(dec) {
				return "", p.s.failf("%w: escape %#U is not a scalar value", ErrEncoding, dec)
			}
			p.buf.WriteRune(dec)
		} else {
			p.s.next()
			p.buf.WriteRune(ch)
		}
	}
	if err := p.s.expect('"'); err != nil {
		return "", err
	}
	return p.buf.String(), nil
}

// parseEscape decodes one backslash escape to the code point it denotes.
// Precondition: the next code point is the backslash.
func (p *parser) parseEscape() (rune, error) {
	p.s.next()
	ch, ok := p.s.next()
	if !ok {
		return 0, p.s.failf("%w: input ends after backslash", ErrInvalidEscape)
	}
	switch ch {
	case '"', '\\', '/':
		return ch, nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		return p.parseHex()
	}
	return 0, p.s.failf("%w: backslash is followed by %q", ErrInvalidEscape, ch)
}

// parseHex decodes the four hex digits of a \u escape into a code point.
func (p *parser) parseHex() (rune, error) {
	var cp rune
	for i := 0; i < 4; i++ {
		ch, ok := p.s.next()
		if !ok {
			return 0, p.s.failf("%w: input ends inside \\u escape", ErrInvalidEscape)
		} else if !isHexDigit(ch) {
			return 0, p.s.failf("%w: not a hex digit: %q", ErrInvalidEscape, ch)
		}
		cp = cp<<4 | hexValue(ch)
	}
	return cp, nil
}

// parseBool parses a boolean literal. The scan runs to the next structural
// delimiter rather than stopping after the literal's own length, so text
// glued to a valid literal (truee) is caught by the exact-match check, not
// by bounded consumption.
func (p *parser) parseBool() (*Value, error) {
	lit := mem.B(p.scanLiteral(true))
	if lit.Equal(mem.S("true")) {
		return Bool(true), nil
	} else if lit.Equal(mem.S("false")) {
		return Bool(false), nil
	}
	return nil, p.s.failf("%w: %q is not a boolean", ErrInvalidLiteral, lit.StringCopy())
}

// parseNull parses a null literal by the same delimiter-driven scan as
// parseBool.
func (p *parser) parseNull() (*Value, error) {
	lit := mem.B(p.scanLiteral(true))
	if lit.Equal(mem.S("null")) {
		return Null(), nil
	}
	return nil, p.s.failf("%w: %q is not null", ErrInvalidLiteral, lit.StringCopy())
}

// parseNumber parses a numeric literal. Trimmed text containing only
// digits and minus signs becomes an integer; anything else numeric-looking
// becomes a double. Either conversion must consume the entire text, so
// interior junk (124abc, 124 000) fails even though the scan accepted it.
// Underscore digit grouping (1_000) is likewise rejected. No strict-grammar
// checks are applied beyond that: 007 is the integer 7, and .5 is a valid
// double.
func (p *parser) parseNumber() (*Value, error) {
	lit := string(p.scanLiteral(false))
	// strconv accepts Go's underscore grouping; the grammar does not.
	if strings.ContainsRune(lit, '_') {
		return nil, p.s.failf("%w: %q", ErrNumberFormat, lit)
	}
	if isIntegerText(lit) {
		n, err := fastfloat.ParseInt64(lit)
		if err != nil {
			return nil, p.s.failf("%w: %q", ErrNumberFormat, lit)
		}
		return Int(n), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, p.s.failf("%w: %q", ErrNumberFormat, lit)
	}
	return Float(f), nil
}

// scanLiteral accumulates code points until a structural delimiter (comma,
// closing brace, closing bracket) or the end of input, folding to lower
// case if fold is true, and returns the text with surrounding whitespace
// trimmed. The result aliases p.buf and is valid until its next use.
func (p *parser) scanLiteral(fold bool) []byte {
	p.buf.Reset()
	for {
		ch, ok := p.s.peek()
		if !ok || isDelim(ch) {
			break
		}
		p.s.next()
		if fold {
			ch = unicode.ToLower(ch)
		}
		p.buf.WriteRune(ch)
	}
	return bytes.Trim(p.buf.Bytes(), " \t\r\n")
}

// isIntegerText reports whether text consists only of decimal digits and
// minus signs.
func isIntegerText(text string) bool {
	if text == "" {
		return false
	}
	for _, ch := range text {
		if ch != '-' && !isDigit(ch) {
			return false
		}
	}
	return true
}
