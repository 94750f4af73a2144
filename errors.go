// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package qjson

import (
	"fmt"
	"strconv"
)

// ErrorKind classifies the ways a decode can fail. An ErrorKind satisfies the
// error interface, so that errors.Is(err, qjson.UnterminatedArray) reports
// whether err is a *DecodeError of that kind.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	UnexpectedCharacter  ErrorKind = iota + 1 // no scanner matches the current byte
	UnterminatedString                        // input ended inside a string
	UnterminatedArray                         // input ended before "]"
	UnterminatedObject                        // input ended before "}"
	UnrecognizedBareword                      // not one of true, false, null
	ExpectedQuotedKey                         // object key is not a string
	ExpectedColon                             // missing ":" after an object key
	ExpectedCommaOrBrace                      // missing "," or "}" after an object member
	TrailingCharacters                        // non-space input after the top-level value
	UnexpectedEOF                             // no value found in the input
	MalformedNumber                           // number does not satisfy the number grammar
	InvalidEscape                             // a string escape sequence could not be decoded
	InvalidStringByte                         // control byte or invalid UTF-8 in a string (strict)
	DepthExceeded                             // nesting is deeper than the configured limit
)

var kindStr = [...]string{
	UnexpectedCharacter:  "unexpected character",
	UnterminatedString:   "unterminated string",
	UnterminatedArray:    "unterminated array",
	UnterminatedObject:   "unterminated object",
	UnrecognizedBareword: "unrecognized bareword",
	ExpectedQuotedKey:    "expected quoted key",
	ExpectedColon:        `expected ":"`,
	ExpectedCommaOrBrace: `expected "," or "}"`,
	TrailingCharacters:   "unexpected trailing characters",
	UnexpectedEOF:        "unexpected end of input",
	MalformedNumber:      "malformed number",
	InvalidEscape:        "invalid escape sequence",
	InvalidStringByte:    "invalid byte in string",
	DepthExceeded:        "nesting depth exceeded",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindStr) && kindStr[k] != "" {
		return kindStr[k]
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error satisfies the error interface.
func (k ErrorKind) Error() string { return k.String() }

// excerptLen is the maximum length of input text recorded in a DecodeError.
const excerptLen = 20

// DecodeError is the concrete type of errors reported by the decoder.
type DecodeError struct {
	Kind     ErrorKind
	Offset   int     // byte offset where the error was detected
	Location LineCol // line and column of Offset
	Excerpt  string  // a short view of the input beginning at Offset

	err error
}

// Error satisfies the error interface.
func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("qjson: %v at offset %d (line %d, col %d)",
		e.Kind, e.Offset, e.Location.Line, e.Location.Column)
	if e.Excerpt != "" {
		msg += fmt.Sprintf(" near %q", e.Excerpt)
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

// Unwrap supports error wrapping.
func (e *DecodeError) Unwrap() error { return e.err }

// Is reports whether target is the ErrorKind of e.
func (e *DecodeError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// newError constructs a *DecodeError of the given kind at offset pos of text.
func newError(text string, kind ErrorKind, pos int, cause error) *DecodeError {
	pos = min(pos, len(text))
	return &DecodeError{
		Kind:     kind,
		Offset:   pos,
		Location: lineColAt(text, pos),
		Excerpt:  text[pos:min(pos+excerptLen, len(text))],
		err:      cause,
	}
}
