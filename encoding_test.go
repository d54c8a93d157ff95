// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tinyjson_test

import (
	"fmt"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"

	tinyjson "github.com/yannngg/TinyJson"
)

func mustParseString(t *testing.T, s string) *tinyjson.Value {
	t.Helper()
	v, err := tinyjson.ParseString(s)
	if err != nil {
		t.Fatalf("Parse %#q: unexpected error: %v", s, err)
	}
	return v
}

func TestJSONScalars(t *testing.T) {
	tests := []struct {
		input *tinyjson.Value
		want  string
	}{
		{tinyjson.Null(), "null"},
		{tinyjson.Bool(true), "true"},
		{tinyjson.Bool(false), "false"},
		{tinyjson.Int(0), "0"},
		{tinyjson.Int(-245), "-245"},
		{tinyjson.Int(9223372036854775807), "9223372036854775807"},
		{tinyjson.Int(-9223372036854775808), "-9223372036854775808"},
		{tinyjson.Float(0.2356), "0.2356"},
		{tinyjson.Float(-2.534), "-2.534"},
		{tinyjson.Float(2), "2"},
		{tinyjson.Float(1e-7), "1e-07"},
		{tinyjson.Float(1e21), "1e+21"},
		{tinyjson.String("hello world  "), `"hello world  "`},
		{tinyjson.String(""), `""`},
		{tinyjson.String("世界"), `"世界"`},
		{tinyjson.Array(), "[]"},
		{tinyjson.Object(), "{}"},
		{tinyjson.Array(tinyjson.Int(1), tinyjson.Null(), tinyjson.Bool(false)), "[1,null,false]"},
	}
	for _, tc := range tests {
		if got := tc.input.JSON(); got != tc.want {
			t.Errorf("JSON: got %#q, want %#q", got, tc.want)
		}
		if got := tc.input.String(); got != tc.want {
			t.Errorf("String: got %#q, want %#q", got, tc.want)
		}
	}

	// A Value prints as its canonical text.
	if got, want := fmt.Sprint(tinyjson.Int(25)), "25"; got != want {
		t.Errorf("Sprint: got %#q, want %#q", got, want)
	}
}

func TestJSONObjectOrder(t *testing.T) {
	o := tinyjson.Object()
	for key, v := range map[string]*tinyjson.Value{
		"name":    tinyjson.String("tiny"),
		"version": tinyjson.Int(2),
		"ratio":   tinyjson.Float(0.5),
		"stable":  tinyjson.Bool(true),
		"extra":   tinyjson.Null(),
		"tags":    tinyjson.Array(tinyjson.String("a"), tinyjson.String("b")),
	} {
		if err := o.AddMember(key, v); err != nil {
			t.Fatalf("AddMember %q: %v", key, err)
		}
	}
	meta := tinyjson.Object()
	if err := meta.AddMember("depth", tinyjson.Int(1)); err != nil {
		t.Fatalf("AddMember depth: %v", err)
	}
	if err := o.AddMember("meta", meta); err != nil {
		t.Fatalf("AddMember meta: %v", err)
	}

	const want = `{"extra":null,"meta":{"depth":1},"name":"tiny","ratio":0.5,` +
		`"stable":true,"tags":["a","b"],"version":2}`
	if got := o.JSON(); got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}

	// The rendering round-trips to an equal tree.
	back := mustParseString(t, o.JSON())
	if !back.Equal(o) {
		t.Errorf("Reparsed value differs:\n got %s\nwant %s", back, o)
	}
}

func TestAppendJSON(t *testing.T) {
	v := mustParseString(t, `[1, {"b": true}]`)

	buf := []byte("data: ")
	if got, want := string(v.AppendJSON(buf)), `data: [1,{"b":true}]`; got != want {
		t.Errorf("AppendJSON: got %#q, want %#q", got, want)
	}
	if got, want := string(v.AppendJSON(nil)), `[1,{"b":true}]`; got != want {
		t.Errorf("AppendJSON nil: got %#q, want %#q", got, want)
	}
}

// TestJSONIdempotent verifies that canonical text parses back to itself.
func TestJSONIdempotent(t *testing.T) {
	tests := []string{
		"{}",
		"[]",
		`[1,2.5,"s",null,true]`,
		`{"a":[],"b":{}}`,
		"[[1],[2,[3]]]",
		`{"k":"v"}`,
		"[1e+21,1e-07]",
		`["x y","__"]`,
		`{"outer":{"inner":[1,{"deep":null}]}}`,
	}
	for _, input := range tests {
		v := mustParseString(t, input)
		if got := v.JSON(); got != input {
			t.Errorf("JSON: got %#q, want %#q", got, input)
		}
	}
}

// TestNoEscaping exercises the fact that the serializer writes string
// contents back verbatim. Escape sequences are decoded once during parsing
// and never re-encoded, so decoded controls appear raw in the output.
func TestNoEscaping(t *testing.T) {
	v := mustParseString(t, `["a\tb"]`)
	if got, want := v.JSON(), "[\"a\tb\"]"; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}

	// Raw controls parse back, so the round trip still holds here.
	if back := mustParseString(t, v.JSON()); !back.Equal(v) {
		t.Errorf("Reparsed value differs: got %s, want %s", back, v)
	}

	// Quotes and backslashes in constructed strings also pass through
	// untouched. Such output is not parseable; the round trip only holds
	// for strings free of quotes and backslashes.
	if got, want := tinyjson.String(`say "hi"`).JSON(), `"say "hi""`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
	if got, want := tinyjson.String(`back\slash`).JSON(), `"back\slash"`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}

	// A backslash-u sequence stored in a constructed string is emitted
	// verbatim, so it reads back as an escape and decodes on the next parse.
	o := tinyjson.Object()
	if err := o.AddMember(`世界__\u0069_\u005E`, tinyjson.String(`world\u0039`)); err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if got, want := o.JSON(), `{"世界__\u0069_\u005E":"world\u0039"}`; got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
	back := mustParseString(t, o.JSON())
	m, err := back.Member("世界__i_^")
	if err != nil {
		t.Fatalf("Member: %v", err)
	}
	if got, err := m.GetString(); err != nil || got != "world9" {
		t.Errorf("GetString: got %q, %v; want \"world9\", nil", got, err)
	}
	if back.Equal(o) {
		t.Error("reparsed tree should differ from the source, whose strings hold escape text")
	}
}

// TestMinimized compares canonical output against hujson's minimizer on
// documents whose keys are already sorted and whose numbers are already in
// shortest form. Both sides tolerate a trailing comma after the last
// object member.
func TestMinimized(t *testing.T) {
	tests := []string{
		`{ "alpha" : 1 , "beta" : [ true , null ] }`,
		`{"a":1,}`,
		`[ 1 , 2.5 , "s" ]`,
		`{"m":{"n":[[]]}}`,
	}
	for _, input := range tests {
		min, err := hujson.Minimize([]byte(input))
		if err != nil {
			t.Fatalf("Minimize %#q: %v", input, err)
		}
		v := mustParseString(t, input)
		if got, want := v.JSON(), string(min); got != want {
			t.Errorf("JSON %#q: got %#q, want %#q", input, got, want)
		}
	}
}

// TestCrossDecode checks semantic agreement with a standard JSON decoder:
// decoding the canonical rendering yields the same data as decoding the
// original document.
func TestCrossDecode(t *testing.T) {
	tests := []string{
		`{"zeta": 1, "alpha": [true, null, "s"], "mid": {"x": 2.5}}`,
		`[0.25, 100, -7, "text", {"b": false}]`,
		`{"nested": {"deep": [[1, 2], [3]]}}`,
	}
	for _, input := range tests {
		v := mustParseString(t, input)

		var got, want any
		if err := gojson.Unmarshal([]byte(v.JSON()), &got); err != nil {
			t.Fatalf("Unmarshal %#q: %v", v.JSON(), err)
		}
		if err := gojson.Unmarshal([]byte(input), &want); err != nil {
			t.Fatalf("Unmarshal %#q: %v", input, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Decoded %#q (-want, +got):\n%s", input, diff)
		}
	}
}
