// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// ErrIncomplete is reported by Unquote for an escape sequence truncated by
// the end of the input.
var ErrIncomplete = errors.New("incomplete escape sequence")

// single maps the byte after a backslash to its replacement, for each of the
// single-character escapes. Other entries are zero.
var single = [256]byte{
	'"': '"', '\\': '\\', '/': '/',
	'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t',
}

// Unquote decodes the body of a JSON string, without its enclosing quotation
// marks.
//
// A surrogate pair written as two \u escapes decodes to a single rune. A
// surrogate half without its partner decodes to the Unicode replacement
// rune. Unquote reports an error for an unknown or incomplete escape.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dec, src), nil
		}
		dec = mem.Append(dec, src.SliceTo(i))
		if i+1 >= src.Len() {
			return nil, ErrIncomplete
		}
		c := src.At(i + 1)
		src = src.SliceFrom(i + 2)

		if r := single[c]; r != 0 {
			dec = append(dec, r)
			continue
		} else if c != 'u' {
			return nil, fmt.Errorf("invalid %q after escape", c)
		}

		r, err := hex4(src)
		if err != nil {
			return nil, err
		}
		src = src.SliceFrom(4)
		if utf16.IsSurrogate(r) {
			r, src = pairSurrogate(r, src)
		}
		dec = utf8.AppendRune(dec, r)
	}
}

// pairSurrogate combines the surrogate half hi with a low surrogate escape at
// the front of src, if there is one, and returns the rune and the input that
// remains after it. Otherwise it returns the replacement rune and src.
func pairSurrogate(hi rune, src mem.RO) (rune, mem.RO) {
	if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
		return utf8.RuneError, src
	}
	lo, err := hex4(src.SliceFrom(2))
	if err != nil {
		return utf8.RuneError, src
	}
	if r := utf16.DecodeRune(hi, lo); r != utf8.RuneError {
		return r, src.SliceFrom(6)
	}
	return utf8.RuneError, src
}

// hex4 decodes the four hexadecimal digits at the front of src.
func hex4(src mem.RO) (rune, error) {
	if src.Len() < 4 {
		return 0, ErrIncomplete
	}
	var r rune
	for i := range 4 {
		d := unhex(src.At(i))
		if d < 0 {
			return 0, fmt.Errorf("invalid Unicode escape: bad hex digit %q", src.At(i))
		}
		r = r<<4 | d
	}
	return r, nil
}

func unhex(b byte) rune {
	switch {
	case '0' <= b && b <= '9':
		return rune(b - '0')
	case 'a' <= b && b <= 'f':
		return rune(b-'a') + 10
	case 'A' <= b && b <= 'F':
		return rune(b-'A') + 10
	}
	return -1
}
