// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package tinyjson represents JSON-like data in memory as a tree of tagged
// Values, parses UTF-8 text into that representation, and serializes it
// back to text. It is meant to be embedded: the library performs no I/O,
// keeps no state between calls, and each parsed tree is exclusively owned
// by its caller.
//
// # Parsing
//
// Parse and ParseString consume a complete document and return the root of
// its value tree. The top-level value must be an object or an array; bare
// scalars are not accepted as documents.
//
//	v, err := tinyjson.ParseString(`{"name": "piano", "keys": 88}`)
//	if err != nil {
//		log.Fatalf("Parse failed: %v", err)
//	}
//	keys, err := v.Member("keys")
//	...
//
// A parse failure wraps one sentinel error per failure class (for example
// ErrUnexpectedChar, ErrInvalidEscape, ErrNumberFormat) in a *SyntaxError
// recording the byte offset where the problem was found. Match the class
// with errors.Is:
//
//	if _, err := tinyjson.ParseString("[1,]"); errors.Is(err, tinyjson.ErrUnexpectedChar) {
//		log.Print("structural error")
//	}
//
// The accepted grammar is JSON-like but deliberately lax where strict JSON
// is not: literals match case-insensitively ("TRUE", "Null"), numbers may
// carry leading zeros or a leading decimal point (007, .5), commas between
// object members are optional and extra ones are ignored, and duplicate
// object keys silently keep the last value. Escape sequences decode the
// usual single-character forms and \uXXXX as one code point; surrogate
// pairs are not combined.
//
// # Values
//
// A Value is a tagged variant over string, integer, double, array,
// boolean, object, and null. Values are built by the parser, by the
// per-type constructors, or by the container mutators:
//
//	cfg := tinyjson.Object()
//	cfg.AddMember("volume", tinyjson.Int(11))
//	cfg.AddMember("muted", tinyjson.Bool(false))
//
// Typed accessors (GetString, GetInteger, ...) return the payload or an
// ErrTypeMismatch; there is no coercion between types, and an integer is
// never equal to a double of the same magnitude. Member and Element return
// mutable handles into the tree, while AddMember, AddElement, GetObject,
// and GetArray copy deeply so that every tree remains exclusively owned.
//
// Object members have no insertion order: enumeration and serialization
// use lexicographic key order.
//
// # Serialization
//
// JSON (and String) render the canonical text of a value: no formatting
// whitespace, object members sorted by key, and string contents written
// verbatim with no re-escaping. AppendJSON is the append-style primitive
// for callers managing their own buffers. Parsing the canonical text of a
// tree whose strings need no escaping yields a structurally equal tree.
//
// Parsing and serialization are synchronous and allocate only the tree
// they return; recursion depth follows input nesting depth, so callers
// handling untrusted input should bound its size or depth themselves.
package tinyjson
