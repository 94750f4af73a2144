// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package qjson

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/qjson/internal/escape"
	"github.com/valyala/bytebufferpool"
	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(appendString(nil, src)) }

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
// Unquote reports an error for an invalid or incomplete escape sequence.
func Unquote(src string) (string, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return "", errors.New("missing quotations")
	}
	dec, err := escape.Unquote(mem.S(src[1 : len(src)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

// Encode returns the JSON encoding of v. Object members are written in their
// insertion order, and numbers that are not finite are written as null.
// A nil Value encodes as null.
func Encode(v Value) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.B = AppendEncode(buf.B, v)
	return string(buf.B)
}

// AppendEncode appends the JSON encoding of v to dst and returns the extended
// slice.
func AppendEncode(dst []byte, v Value) []byte {
	switch t := v.(type) {
	case Bool:
		if t {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case Number:
		return appendNumber(dst, float64(t))
	case String:
		return appendString(dst, string(t))
	case Array:
		dst = append(dst, '[')
		for i, elt := range t {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendEncode(dst, elt)
		}
		return append(dst, ']')
	case *Object:
		dst = append(dst, '{')
		for i := 0; i < t.Len(); i++ {
			if i > 0 {
				dst = append(dst, ',')
			}
			m := t.members[i]
			dst = appendString(dst, m.Key)
			dst = append(dst, ':')
			dst = AppendEncode(dst, m.Value)
		}
		return append(dst, '}')
	}
	return append(dst, "null"...)
}

// appendString appends the quoted form of s to dst. Printable ASCII without
// quotation marks or backslashes is copied as-is.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	if escape.NeedsQuote(s) {
		dst = escape.Quote(dst, mem.S(s))
	} else {
		dst = append(dst, s...)
	}
	return append(dst, '"')
}

// appendNumber appends the shortest text that decodes to f, using exponent
// notation for magnitudes outside [1e-6, 1e21).
func appendNumber(dst []byte, f float64) []byte {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return append(dst, "null"...)
	}
	fmt := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmt = 'e'
	}
	dst = strconv.AppendFloat(dst, f, fmt, -1, 64)
	if fmt == 'e' {
		// Trim a leading zero from a negative exponent: 1e-07 becomes 1e-7.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}
