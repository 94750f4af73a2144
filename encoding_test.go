// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package qjson_test

import (
	"math"
	"testing"

	"github.com/creachadair/qjson"
	"github.com/creachadair/qjson/internal/testutil"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		input qjson.Value
		want  string
	}{
		{nil, `null`},
		{qjson.Null{}, `null`},
		{qjson.Bool(true), `true`},
		{qjson.Bool(false), `false`},
		{qjson.Number(123), `123`},
		{qjson.Number(123.456), `123.456`},
		{qjson.Number(-0.5), `-0.5`},
		{qjson.Number(1e21), `1e+21`},
		{qjson.Number(1e-7), `1e-7`},
		{qjson.Number(0.000001), `0.000001`},
		{qjson.Number(math.Inf(1)), `null`},
		{qjson.Number(math.NaN()), `null`},
		{qjson.String("Hello, world."), `"Hello, world."`},
		{qjson.String("Hello, world.\n\u0007"), `"Hello, world.\n\u0007"`},
		{qjson.String(`say "hi" \o/`), `"say \"hi\" \\o/"`},
		{qjson.String("caf\u00e9 \u2028"), "\"caf\u00e9 \\u2028\""},
		{qjson.Array{}, `[]`},
		{qjson.Array{qjson.Number(1), qjson.Number(2.5), qjson.String("three"), qjson.Null{}},
			`[1,2.5,"three",null]`},
		{qjson.NewObject(), `{}`},
		{qjson.NewObject(
			qjson.Field("b", qjson.Number(1)),
			qjson.Field("a", qjson.Array{qjson.Bool(true)}),
			qjson.Field("c\td", qjson.NewObject(qjson.Field("x", qjson.Number(123)))),
		), `{"b":1,"a":[true],"c\td":{"x":123}}`},
	}
	for _, test := range tests {
		if got := qjson.Encode(test.input); got != test.want {
			t.Errorf("Encode(%v): got %#q, want %#q", test.input, got, test.want)
		}
	}

	// AppendEncode extends its argument.
	if got := string(qjson.AppendEncode([]byte("x="), qjson.Array{qjson.Number(1)})); got != "x=[1]" {
		t.Errorf("AppendEncode: got %q, want %q", got, "x=[1]")
	}
}

func TestRoundTrip(t *testing.T) {
	values := []qjson.Value{
		qjson.Number(0),
		qjson.Number(-1234.5678e-12),
		qjson.Number(math.MaxFloat64),
		qjson.Number(math.SmallestNonzeroFloat64),
		qjson.String(""),
		qjson.String("plain ascii"),
		qjson.String("esc\"aped\\ \x00\x1f\u00ff\U0001f600"),
		qjson.Array{qjson.Array{}, qjson.NewObject(), qjson.Null{}},
		qjson.NewObject(
			qjson.Field("list", qjson.Array{qjson.Number(1), qjson.Number(2)}),
			qjson.Field("", qjson.Bool(false)),
			qjson.Field("\u65e5\u672c", qjson.String("\u8a9e")),
		),
		mustDecode(t, testJSON),
	}
	for _, v := range values {
		text := qjson.Encode(v)
		got, err := qjson.Decode(text)
		if err != nil {
			t.Errorf("Decode(Encode(%v)): unexpected error: %v", v, err)
		} else if !qjson.Equal(v, got) {
			t.Errorf("Decode(Encode(v)): got %v, want %v", got, v)
		}

		// The reference decoder agrees about the encoding.
		if ref, err := testutil.Reference(text); err != nil {
			t.Errorf("Reference decode %#q: %v", text, err)
		} else if !qjson.Equal(v, ref) {
			t.Errorf("Reference decode %#q: got %v, want %v", text, ref, v)
		}
	}
}

func TestQuoteUnquote(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"a\"b\\c",
		"\b\f\n\r\t\x01\x7f",
		"\u00e9\u4e16\U0001f600",
		"line\u2028para\u2029",
	}
	for _, s := range tests {
		q := qjson.Quote(s)
		got, err := qjson.Unquote(q)
		if err != nil {
			t.Errorf("Unquote(%#q): unexpected error: %v", q, err)
		} else if got != s {
			t.Errorf("Unquote(Quote(%q)): got %q", s, got)
		}

		ref, err := testutil.Unquote(q)
		if err != nil {
			t.Errorf("Reference unquote %#q: %v", q, err)
		} else if ref != s {
			t.Errorf("Reference unquote %#q: got %q, want %q", q, ref, s)
		}
	}

	for _, bad := range []string{``, `"`, `abc`, `"abc`, `"\"`, `"\z"`} {
		if got, err := qjson.Unquote(bad); err == nil {
			t.Errorf("Unquote(%#q): got %q, want error", bad, got)
		}
	}
}

func TestEscapedStrings(t *testing.T) {
	// Escaped strings decode to the same content as an independent unquote.
	inputs := []string{
		`"ab\"c"`,
		`"\\\/\b\f\n\r\t"`,
		`"\u0000\u01fc\uAA9c"`,
		`"\ud834\udd1e clef"`,
		`"mixed \u00e9 and \u00E9 and \u4E16"`,
	}
	for _, in := range inputs {
		want, err := testutil.Unquote(in)
		if err != nil {
			t.Fatalf("Reference unquote %#q: %v", in, err)
		}
		got := mustDecode(t, in)
		if got != qjson.String(want) {
			t.Errorf("Decode %#q: got %q, want %q", in, got, want)
		}
	}
}
