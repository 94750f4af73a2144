// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package qjson_test

import (
	"errors"
	"testing"

	"github.com/creachadair/qjson"
	"github.com/google/go-cmp/cmp"
)

func mustScan(t *testing.T, text string) *qjson.Document {
	t.Helper()
	doc, err := qjson.Scan(text)
	if err != nil {
		t.Fatalf("Scan %#q: unexpected error: %v", text, err)
	}
	return doc
}

func TestScanTerms(t *testing.T) {
	const input = ` {"a": [1, "two\n", true], "b": {}} `
	doc := mustScan(t, input)

	want := qjson.Term{
		Kind: qjson.ObjectTerm, Span: qjson.Span{Pos: 1, End: 35},
		Members: []qjson.TermMember{{
			Name: qjson.Term{Kind: qjson.StringTerm, Span: qjson.Span{Pos: 2, End: 5}},
			Value: qjson.Term{
				Kind: qjson.ArrayTerm, Span: qjson.Span{Pos: 7, End: 25},
				Elems: []qjson.Term{
					{Kind: qjson.LiteralTerm, Span: qjson.Span{Pos: 8, End: 9}},
					{Kind: qjson.StringTerm, Span: qjson.Span{Pos: 11, End: 18}, Escaped: true},
					{Kind: qjson.LiteralTerm, Span: qjson.Span{Pos: 20, End: 24}},
				},
			},
		}, {
			Name:  qjson.Term{Kind: qjson.StringTerm, Span: qjson.Span{Pos: 27, End: 30}},
			Value: qjson.Term{Kind: qjson.ObjectTerm, Span: qjson.Span{Pos: 32, End: 34}},
		}},
	}
	if diff := cmp.Diff(want, doc.Root()); diff != "" {
		t.Errorf("Root term (-want, +got):\n%s", diff)
	}

	if got := doc.Text(doc.Root().Members[0].Value.Elems[1]); got != `"two\n"` {
		t.Errorf("Text: got %#q, want %#q", got, `"two\n"`)
	}
	if got := doc.Raw(doc.Root().Members[1].Name); got.StringCopy() != `"b"` {
		t.Errorf("Raw: got %#q, want %#q", got.StringCopy(), `"b"`)
	}

	wantStats := qjson.Stats{Terms: 8, Strings: 3, Literals: 2, Arrays: 1, Objects: 2, MaxDepth: 2}
	if diff := cmp.Diff(wantStats, doc.Stats()); diff != "" {
		t.Errorf("Stats (-want, +got):\n%s", diff)
	}
}

// checkSpans verifies that the spans of the children of t are in order,
// non-overlapping, and strictly inside the delimiters of t.
func checkSpans(t *testing.T, doc *qjson.Document, term qjson.Term) {
	t.Helper()
	if term.Pos >= term.End {
		t.Errorf("Term %v has empty span %v", term.Kind, term.Span)
	}
	inner := qjson.Span{Pos: term.Pos + 1, End: term.End - 1}
	var kids []qjson.Term
	kids = append(kids, term.Elems...)
	for _, m := range term.Members {
		kids = append(kids, m.Name, m.Value)
	}
	last := inner.Pos
	for _, kid := range kids {
		if !inner.Contains(kid.Span) {
			t.Errorf("Child span %v not inside %v", kid.Span, inner)
		}
		if kid.Pos < last {
			t.Errorf("Child span %v overlaps previous (ends at %d)", kid.Span, last)
		}
		last = kid.End
		checkSpans(t, doc, kid)
	}
}

func TestScanSpans(t *testing.T) {
	inputs := []string{
		`[1, [2, [3, [4]]], {"a": {"b": [null]}}]`,
		testJSON,
		`{"x":"y","z":[-1.5e3,false,{}]}`,
	}
	for _, in := range inputs {
		doc := mustScan(t, in)
		checkSpans(t, doc, doc.Root())
	}
}

func TestScanMatchesDecode(t *testing.T) {
	inputs := []string{
		`42`, `"x"`, `null`, `[]`, `{}`,
		`{"a":1,"b":[1,2.5,"three",null,true,false]}`,
		`{"a":1,"b":2,"a":3}`,
		`{"k\u00e9y": "va\tl\"ue", "n": [1e3, -0.25]}`,
		`[1, 2, ]`,
		`[1., {"a": 2.e1}]`,
		testJSON,
	}
	for _, in := range inputs {
		want := mustDecode(t, in)
		doc := mustScan(t, in)
		got, err := doc.Value(doc.Root())
		if err != nil {
			t.Errorf("Value %#q: unexpected error: %v", in, err)
		} else if !qjson.Equal(want, got) {
			t.Errorf("Value %#q: got %v, want %v", in, qjson.Encode(got), qjson.Encode(want))
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		input  string
		kind   qjson.ErrorKind
		offset int
	}{
		{``, qjson.UnexpectedEOF, 0},
		{`[1,2,`, qjson.UnterminatedArray, 5},
		{`nul`, qjson.UnrecognizedBareword, 0},
		{`{"a":1} trailing`, qjson.TrailingCharacters, 8},
		{`{"a" 1}`, qjson.ExpectedColon, 5},
		{`{1:2}`, qjson.ExpectedQuotedKey, 1},
		{`{"a":1 "b"}`, qjson.ExpectedCommaOrBrace, 7},
		{`{"a":1`, qjson.UnterminatedObject, 6},
		{`"abc`, qjson.UnterminatedString, 4},
		{`[1 2]`, qjson.UnexpectedCharacter, 3},
	}
	for _, test := range tests {
		_, err := qjson.Scan(test.input)
		var derr *qjson.DecodeError
		if !errors.As(err, &derr) {
			t.Errorf("Scan %#q: got %v, want %v", test.input, err, test.kind)
		} else if derr.Kind != test.kind || derr.Offset != test.offset {
			t.Errorf("Scan %#q: got %v at %d, want %v at %d",
				test.input, derr.Kind, derr.Offset, test.kind, test.offset)
		}
	}

	strict := &qjson.Options{Strict: true}
	for _, in := range []string{`[1,]`, `{"a":1,}`} {
		if _, err := strict.Scan(in); err == nil {
			t.Errorf("Strict scan %#q: got nil, want error", in)
		}
	}

	// Escapes are not checked until the string is decoded.
	doc := mustScan(t, `["ok", "\x"]`)
	if _, err := doc.Value(doc.Root()); !errors.Is(err, qjson.InvalidEscape) {
		t.Errorf("Value: got %v, want InvalidEscape", err)
	}
	if v, err := doc.Value(doc.Root().Elems[0]); err != nil || v != qjson.String("ok") {
		t.Errorf("Value of first element: got (%v, %v), want ok", v, err)
	}
}

func TestDocumentAccess(t *testing.T) {
	doc := mustScan(t, `{"name": "alpha", "tags": ["a", "b", "c"], "name": "beta", "count": 3}`)
	root := doc.Root()

	t.Run("Find", func(t *testing.T) {
		term, ok := doc.Find(root, "name")
		if !ok {
			t.Fatal(`Find "name" failed`)
		}
		// The later of the duplicate keys wins.
		if v, err := doc.Value(term); err != nil || v != qjson.String("beta") {
			t.Errorf("Value: got (%v, %v), want beta", v, err)
		}
		if _, ok := doc.Find(root, "nonesuch"); ok {
			t.Error(`Find "nonesuch" unexpectedly succeeded`)
		}
	})

	t.Run("Elements", func(t *testing.T) {
		tags, ok := doc.Find(root, "tags")
		if !ok {
			t.Fatal(`Find "tags" failed`)
		}
		var got []string
		for elt := range doc.Elements(tags) {
			got = append(got, doc.Text(elt))
		}
		if diff := cmp.Diff([]string{`"a"`, `"b"`, `"c"`}, got); diff != "" {
			t.Errorf("Elements (-want, +got):\n%s", diff)
		}
	})

	t.Run("Members", func(t *testing.T) {
		var keys []string
		for key := range doc.Members(root) {
			keys = append(keys, key)
		}
		if diff := cmp.Diff([]string{"name", "tags", "name", "count"}, keys); diff != "" {
			t.Errorf("Members (-want, +got):\n%s", diff)
		}
	})

	t.Run("Location", func(t *testing.T) {
		doc := mustScan(t, "[\n  1,\n  \"two\"\n]")
		loc := doc.Location(doc.Root().Elems[1])
		want := qjson.Location{
			Span:  qjson.Span{Pos: 9, End: 14},
			First: qjson.LineCol{Line: 3, Column: 2},
			Last:  qjson.LineCol{Line: 3, Column: 7},
		}
		if diff := cmp.Diff(want, loc); diff != "" {
			t.Errorf("Location (-want, +got):\n%s", diff)
		}
	})
}
