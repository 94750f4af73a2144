// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package qjson implements a fast decoder for JSON text.
//
// # Decoding
//
// Decode converts a complete JSON text into a Value in a single pass:
//
//	v, err := qjson.Decode(`{"a": 1, "b": [true, null]}`)
//	if err != nil {
//	   log.Fatalf("Decode failed: %v", err)
//	}
//	obj := v.(*qjson.Object)
//
// The concrete type of a Value is one of Null, Bool, Number, String, Array,
// or *Object. All numbers decode as float64. Object members keep the order in
// which their keys first appeared; if a key is repeated, the last value wins.
// Strings that contain no escape sequences share storage with the input.
//
// The input must contain exactly one JSON value, optionally surrounded by
// whitespace.  In case of error, the concrete type of the error is
// *DecodeError, which reports the kind of error and the offset, line, and
// column at which it was detected:
//
//	_, err := qjson.Decode(`[1, 2,`)
//	if errors.Is(err, qjson.UnterminatedArray) {
//	   log.Print("Input is truncated")
//	}
//
// # Leniency
//
// By default the decoder accepts a few inputs that strict JSON forbids,
// notably trailing commas in arrays and objects. Use Options to select
// strict mode or to limit nesting depth:
//
//	opts := &qjson.Options{Strict: true}
//	v, err := opts.Decode(text)
//
// # Scanning
//
// Scan checks the syntax of a JSON text and records the kind and location of
// each value as a Term, without decoding strings or numbers. The resulting
// Document decodes terms on request, so a caller can extract a few values
// from a large input without paying to decode the rest:
//
//	doc, err := qjson.Scan(text)
//	...
//	if t, ok := doc.Find(doc.Root(), "name"); ok {
//	   name, err := doc.Value(t)
//	   ...
//	}
//
// # Encoding
//
// Encode renders a Value as JSON text, and Quote and Unquote convert between
// Go strings and JSON string literals.
package qjson
