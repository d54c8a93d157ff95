package tinyjson_test

import (
	"encoding/json"
	"os"
	"testing"

	gojson "github.com/goccy/go-json"

	tinyjson "github.com/yannngg/TinyJson"
)

func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Goccy", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := gojson.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := tinyjson.Parse(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}

func BenchmarkJSON(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}

	v, err := tinyjson.Parse(input)
	if err != nil {
		b.Fatalf("Parsing test input: %v", err)
	}
	var std any
	if err := json.Unmarshal(input, &std); err != nil {
		b.Fatalf("Decoding test input: %v", err)
	}

	b.Run("Marshal", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := json.Marshal(std); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("JSON", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = v.JSON()
		}
	})
}
