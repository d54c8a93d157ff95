// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tinyjson

import (
	"fmt"
	"maps"
	"slices"
)

// Type is the type tag of a Value.
type Type byte

// Constants defining the valid Type values. The zero value is TypeInvalid,
// which no constructor and no successful parse ever produces.
const (
	TypeInvalid Type = iota // invalid value
	TypeString              // UTF-8 string
	TypeInteger             // 64-bit signed integer
	TypeDouble              // IEEE 754 binary64
	TypeArray               // ordered sequence of values
	TypeBoolean             // true or false
	TypeObject              // mapping from string keys to values
	TypeNull                // null
)

var typeStr = [...]string{
	TypeInvalid: "invalid",
	TypeString:  "string",
	TypeInteger: "integer",
	TypeDouble:  "double",
	TypeArray:   "array",
	TypeBoolean: "boolean",
	TypeObject:  "object",
	TypeNull:    "null",
}

func (t Type) String() string {
	v := int(t)
	if v >= len(typeStr) {
		return typeStr[TypeInvalid]
	}
	return typeStr[v]
}

// A Value is one node of a JSON value tree: a tagged variant over string,
// integer, double, array, boolean, object, and null. The zero Value is
// invalid; use the constructors or Parse to obtain usable values.
//
// A Value exclusively owns every Value reachable from it, and the reachable
// graph is always a tree. AddMember and AddElement preserve this by storing
// deep copies of their arguments, and GetObject and GetArray return deep
// copies likewise. Member and Element return handles into the tree itself,
// through which it can be mutated in place.
type Value struct {
	typ Type

	str     string
	integer int64
	double  float64
	boolean bool
	elems   []*Value
	members map[string]*Value
}

// String constructs a string Value.
func String(s string) *Value { return &Value{typ: TypeString, str: s} }

// Int constructs an integer Value.
func Int(n int64) *Value { return &Value{typ: TypeInteger, integer: n} }

// Float constructs a double Value.
func Float(f float64) *Value { return &Value{typ: TypeDouble, double: f} }

// Bool constructs a boolean Value.
func Bool(t bool) *Value { return &Value{typ: TypeBoolean, boolean: t} }

// Null constructs a null Value.
func Null() *Value { return &Value{typ: TypeNull} }

// Array constructs an array Value whose elements are deep copies of elems.
func Array(elems ...*Value) *Value {
	v := &Value{typ: TypeArray}
	if len(elems) != 0 {
		v.elems = make([]*Value, len(elems))
		for i, e := range elems {
			v.elems[i] = e.Copy()
		}
	}
	return v
}

// Object constructs an empty object Value.
func Object() *Value {
	return &Value{typ: TypeObject, members: make(map[string]*Value)}
}

// ToValue converts a plain Go value into a Value. It accepts nil, booleans,
// strings, integer and floating-point types, and Values, which are returned
// unchanged. It panics for values of any other type.
func ToValue(v any) *Value {
	switch t := v.(type) {
	case *Value:
		return t
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int32:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float32:
		return Float(float64(t))
	case float64:
		return Float(t)
	}
	panic(fmt.Sprintf("unknown value type %T", v))
}

// Type reports the type tag of v. A nil Value reports TypeInvalid.
func (v *Value) Type() Type {
	if v == nil {
		return TypeInvalid
	}
	return v.typ
}

// GetString returns the text of a string Value, or an ErrTypeMismatch if v
// is not a string.
func (v *Value) GetString() (string, error) {
	if v.Type() != TypeString {
		return "", typeError(v, TypeString)
	}
	return v.str, nil
}

// GetInteger returns the value of an integer Value, or an ErrTypeMismatch
// if v is not an integer.
func (v *Value) GetInteger() (int64, error) {
	if v.Type() != TypeInteger {
		return 0, typeError(v, TypeInteger)
	}
	return v.integer, nil
}

// GetDouble returns the value of a double Value, or an ErrTypeMismatch if v
// is not a double.
func (v *Value) GetDouble() (float64, error) {
	if v.Type() != TypeDouble {
		return 0, typeError(v, TypeDouble)
	}
	return v.double, nil
}

// GetBool returns the value of a boolean Value, or an ErrTypeMismatch if v
// is not a boolean.
func (v *Value) GetBool() (bool, error) {
	if v.Type() != TypeBoolean {
		return false, typeError(v, TypeBoolean)
	}
	return v.boolean, nil
}

// GetNull returns nil if v is null, or an ErrTypeMismatch otherwise.
func (v *Value) GetNull() error {
	if v.Type() != TypeNull {
		return typeError(v, TypeNull)
	}
	return nil
}

// GetObject returns a deep copy of the members of an object Value, or an
// ErrTypeMismatch if v is not an object. Mutating the returned map does not
// affect v.
func (v *Value) GetObject() (map[string]*Value, error) {
	if v.Type() != TypeObject {
		return nil, typeError(v, TypeObject)
	}
	m := make(map[string]*Value, len(v.members))
	for key, mv := range v.members {
		m[key] = mv.Copy()
	}
	return m, nil
}

// GetArray returns a deep copy of the elements of an array Value, or an
// ErrTypeMismatch if v is not an array. Mutating the returned slice does
// not affect v.
func (v *Value) GetArray() ([]*Value, error) {
	if v.Type() != TypeArray {
		return nil, typeError(v, TypeArray)
	}
	elems := make([]*Value, len(v.elems))
	for i, e := range v.elems {
		elems[i] = e.Copy()
	}
	return elems, nil
}

// Size reports the number of elements of an array or members of an object.
// It reports an ErrTypeMismatch for values of any other type.
func (v *Value) Size() (int, error) {
	switch v.Type() {
	case TypeArray:
		return len(v.elems), nil
	case TypeObject:
		return len(v.members), nil
	}
	return 0, fmt.Errorf("%w: value is %s, not array or object", ErrTypeMismatch, v.Type())
}

// HasMember reports whether object v has a member named key, or an
// ErrTypeMismatch if v is not an object.
func (v *Value) HasMember(key string) (bool, error) {
	if v.Type() != TypeObject {
		return false, typeError(v, TypeObject)
	}
	_, ok := v.members[key]
	return ok, nil
}

// AddMember stores a deep copy of m as the member of object v named key,
// replacing any existing member with that key. It reports an
// ErrTypeMismatch if v is not an object.
func (v *Value) AddMember(key string, m *Value) error {
	if v.Type() != TypeObject {
		return typeError(v, TypeObject)
	}
	if v.members == nil {
		v.members = make(map[string]*Value)
	}
	v.members[key] = m.Copy()
	return nil
}

// AddElement appends a deep copy of e to the elements of array v. It
// reports an ErrTypeMismatch if v is not an array.
func (v *Value) AddElement(e *Value) error {
	if v.Type() != TypeArray {
		return typeError(v, TypeArray)
	}
	v.elems = append(v.elems, e.Copy())
	return nil
}

// Member returns the member of object v named key as a mutable handle into
// v. It reports ErrKeyNotFound if no such member exists, or an
// ErrTypeMismatch if v is not an object. Lookup never creates a member.
func (v *Value) Member(key string) (*Value, error) {
	if v.Type() != TypeObject {
		return nil, typeError(v, TypeObject)
	}
	m, ok := v.members[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return m, nil
}

// Element returns element i of array v as a mutable handle into v. It
// reports ErrIndexOutOfRange if i is out of bounds, or an ErrTypeMismatch
// if v is not an array.
func (v *Value) Element(i int) (*Value, error) {
	if v.Type() != TypeArray {
		return nil, typeError(v, TypeArray)
	}
	if i < 0 || i >= len(v.elems) {
		return nil, fmt.Errorf("%w [%d] with length %d", ErrIndexOutOfRange, i, len(v.elems))
	}
	return v.elems[i], nil
}

// Keys returns the member keys of object v in lexicographic order, the
// order in which members enumerate and serialize. It returns nil if v is
// not an object.
func (v *Value) Keys() []string {
	if v.Type() != TypeObject {
		return nil
	}
	return slices.Sorted(maps.Keys(v.members))
}

// Equal reports whether v and w are structurally equal: their types match
// and their payloads match recursively. Numeric values of different types
// never compare equal, so Int(2) does not equal Float(2). Invalid values
// equal nothing, including each other.
func (v *Value) Equal(w *Value) bool {
	if v.Type() != w.Type() {
		return false
	}
	switch v.Type() {
	case TypeString:
		return v.str == w.str
	case TypeInteger:
		return v.integer == w.integer
	case TypeDouble:
		return v.double == w.double
	case TypeBoolean:
		return v.boolean == w.boolean
	case TypeNull:
		return true
	case TypeArray:
		if len(v.elems) != len(w.elems) {
			return false
		}
		for i, e := range v.elems {
			if !e.Equal(w.elems[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.members) != len(w.members) {
			return false
		}
		for key, m := range v.members {
			wm, ok := w.members[key]
			if !ok || !m.Equal(wm) {
				return false
			}
		}
		return true
	}
	return false
}

// Copy returns a deep copy of v, a Value equal to v that shares no
// structure with it. Copying nil returns nil.
func (v *Value) Copy() *Value {
	if v == nil {
		return nil
	}
	w := &Value{
		typ:     v.typ,
		str:     v.str,
		integer: v.integer,
		double:  v.double,
		boolean: v.boolean,
	}
	switch v.typ {
	case TypeArray:
		w.elems = make([]*Value, len(v.elems))
		for i, e := range v.elems {
			w.elems[i] = e.Copy()
		}
	case TypeObject:
		w.members = make(map[string]*Value, len(v.members))
		for key, m := range v.members {
			w.members[key] = m.Copy()
		}
	}
	return w
}

func typeError(v *Value, want Type) error {
	return fmt.Errorf("%w: value is %s, not %s", ErrTypeMismatch, v.Type(), want)
}
