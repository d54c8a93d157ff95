// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tinyjson

import (
	"fmt"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// JSON renders v as its canonical text: depth-first, no inserted formatting
// whitespace, object members in lexicographic key order, and string
// contents emitted verbatim between quotes with no added escaping. Because
// nothing is re-escaped, the output is only guaranteed to parse back when
// no string in v contains a quote, backslash, or control character.
func (v *Value) JSON() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.B = v.AppendJSON(buf.B)
	return string(buf.B)
}

// AppendJSON appends the canonical text of v to dst and returns the
// extended buffer. It panics if v or any value reachable from it is
// invalid.
func (v *Value) AppendJSON(dst []byte) []byte {
	switch v.Type() {
	case TypeString:
		dst = append(dst, '"')
		dst = append(dst, v.str...)
		return append(dst, '"')
	case TypeInteger:
		return strconv.AppendInt(dst, v.integer, 10)
	case TypeDouble:
		return strconv.AppendFloat(dst, v.double, 'g', -1, 64)
	case TypeBoolean:
		return strconv.AppendBool(dst, v.boolean)
	case TypeNull:
		return append(dst, "null"...)
	case TypeArray:
		dst = append(dst, '[')
		for i, e := range v.elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = e.AppendJSON(dst)
		}
		return append(dst, ']')
	case TypeObject:
		dst = append(dst, '{')
		for i, key := range v.Keys() {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = append(dst, '"')
			dst = append(dst, key...)
			dst = append(dst, '"', ':')
			dst = v.members[key].AppendJSON(dst)
		}
		return append(dst, '}')
	}
	panic(fmt.Errorf("BUG: cannot render %s value", v.Type()))
}

// String renders v as its canonical text, the same as JSON.
func (v *Value) String() string { return v.JSON() }
