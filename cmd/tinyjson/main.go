// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program tinyjson parses a JSON document and prints its canonical form.
//
// With no flags it reads the document from stdin and writes the canonical
// serialization to stdout. The --path flag descends through object members
// and array elements before printing, so that
//
//	tinyjson -i catalog.json -p books -p 0 -p title
//
// prints the title of the first book.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	gojson "github.com/goccy/go-json"

	tinyjson "github.com/yannngg/TinyJson"
)

var cli struct {
	Input  string   `help:"Path to the input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Path   []string `help:"Member keys and element indexes to descend before printing." short:"p"`
	Indent bool     `help:"Re-indent the output for display." short:"n"`
	Quiet  bool     `help:"Suppress the summary line." short:"q"`
}

func main() {
	parser := kong.Must(&cli,
		kong.Name("tinyjson"),
		kong.Description("Parse a JSON document and print its canonical form."),
		kong.UsageOnError(),
	)
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tinyjson: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	input, err := readInput()
	if err != nil {
		return err
	}
	v, err := tinyjson.Parse(input)
	if err != nil {
		return err
	}
	v, err = descend(v, cli.Path)
	if err != nil {
		return err
	}
	if !cli.Quiet {
		fmt.Fprintf(os.Stderr, "parsed %s into a %s\n",
			humanize.Bytes(uint64(len(input))), describe(v))
	}

	text := v.JSON()
	if cli.Indent {
		var buf bytes.Buffer
		if err := gojson.Indent(&buf, []byte(text), "", "  "); err != nil {
			return fmt.Errorf("reindent: %w", err)
		}
		text = buf.String()
	}
	fmt.Println(text)
	return nil
}

func readInput() ([]byte, error) {
	if cli.Input == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(cli.Input)
}

// descend resolves each path step against v in turn, treating steps as
// member keys in objects and as element indexes in arrays.
func descend(v *tinyjson.Value, path []string) (*tinyjson.Value, error) {
	for _, step := range path {
		switch v.Type() {
		case tinyjson.TypeObject:
			m, err := v.Member(step)
			if err != nil {
				return nil, err
			}
			v = m
		case tinyjson.TypeArray:
			i, err := strconv.Atoi(step)
			if err != nil {
				return nil, fmt.Errorf("step %q: an array index must be a number", step)
			}
			e, err := v.Element(i)
			if err != nil {
				return nil, err
			}
			v = e
		default:
			return nil, fmt.Errorf("step %q: cannot descend into a %s value", step, v.Type())
		}
	}
	return v, nil
}

func describe(v *tinyjson.Value) string {
	switch n, err := v.Size(); {
	case err != nil:
		return v.Type().String()
	case v.Type() == tinyjson.TypeObject:
		return fmt.Sprintf("%s with %d members", v.Type(), n)
	default:
		return fmt.Sprintf("%s with %d elements", v.Type(), n)
	}
}
