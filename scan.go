// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package qjson

import (
	"errors"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/creachadair/qjson/internal/escape"
	"github.com/valyala/fastjson/fastfloat"
	"go4.org/mem"
)

// scanString scans a string whose opening quotation mark is at pos.  It
// returns the offset just past the closing quotation mark, and reports
// whether any escape sequences were seen.
//
// A backslash skips exactly one following byte. The escape sequences
// themselves are checked when the string is materialized.
func (d *decoder) scanString(pos int) (int, bool, error) {
	text := d.text
	esc := false
	for i := pos + 1; i < len(text); {
		switch c := text[i]; {
		case c == '"':
			return i + 1, esc, nil
		case c == '\\':
			esc = true
			i += 2
		case !d.strict:
			i++
		case c < ' ':
			return 0, false, d.fail(InvalidStringByte, i)
		case c < utf8.RuneSelf:
			i++
		default:
			r, n := utf8.DecodeRuneInString(text[i:])
			if r == utf8.RuneError && n <= 1 {
				return 0, false, d.fail(InvalidStringByte, i)
			}
			i += n
		}
	}
	return 0, false, d.fail(UnterminatedString, len(text))
}

// stringValue materializes the string spanning text[pos:end], including its
// quotation marks.  If esc is false the result shares storage with the input.
func (d *decoder) stringValue(pos, end int, esc bool) (string, error) {
	body := d.text[pos+1 : end-1]
	if !esc {
		return body, nil
	}
	dec, err := escape.Unquote(mem.S(body))
	if err != nil {
		return "", d.failCause(InvalidEscape, pos, err)
	}
	return string(dec), nil
}

// scanNumber scans a number whose first byte (a sign or digit) is at pos, and
// returns the offset just past the end of the number.
//
// In lenient mode, a decimal point need not be followed by digits, and an
// exponent marker that is not followed by digits is not consumed, so the
// number ends just before it.
func (d *decoder) scanNumber(pos int) (int, error) {
	text := d.text
	i := pos
	if c := text[i]; c == '-' || c == '+' {
		if c == '+' && d.strict {
			return 0, d.fail(MalformedNumber, i)
		}
		i++
	}
	start := i
	i = skipDigits(text, i)
	if i == start {
		return 0, d.fail(MalformedNumber, i)
	} else if d.strict && text[start] == '0' && i-start > 1 {
		return 0, d.fail(MalformedNumber, start+1)
	}

	if i < len(text) && text[i] == '.' {
		j := skipDigits(text, i+1)
		if j == i+1 && d.strict {
			return 0, d.fail(MalformedNumber, j)
		}
		i = j
	}

	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if j < len(text) && (text[j] == '+' || text[j] == '-') {
			j++
		}
		if k := skipDigits(text, j); k > j {
			i = k
		} else if d.strict {
			return 0, d.fail(MalformedNumber, k)
		}
	}
	return i, nil
}

func skipDigits(text string, pos int) int {
	for pos < len(text) && isDigit(text[pos]) {
		pos++
	}
	return pos
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// numberValue materializes the number spanning text[pos:end].
func (d *decoder) numberValue(pos, end int) (float64, error) {
	f, err := parseNumber(d.text[pos:end])
	if err != nil {
		return 0, d.failCause(MalformedNumber, pos, err)
	}
	return f, nil
}

// maxExactDigits is the longest run of decimal digits whose integer value is
// always exactly representable as a float64.
const maxExactDigits = 15

// parseNumber converts the text of a scanned number to a float64. Values out
// of range convert to an infinity or zero, as strconv.ParseFloat does.
func parseNumber(s string) (float64, error) {
	if len(s) != 0 && s[0] == '+' {
		s = s[1:]
	}
	if isShortInteger(s) {
		z, err := fastfloat.ParseInt64(s)
		if err == nil {
			if z == 0 && s[0] == '-' {
				return math.Copysign(0, -1), nil
			}
			return float64(z), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return f, nil
}

// isShortInteger reports whether s is an optionally-signed run of at most
// maxExactDigits digits.
func isShortInteger(s string) bool {
	if len(s) != 0 && s[0] == '-' {
		s = s[1:]
	}
	return len(s) != 0 && len(s) <= maxExactDigits && skipDigits(s, 0) == len(s)
}

// scanBareword scans the literal of class c beginning at pos, and returns
// the offset just past its end.
func (d *decoder) scanBareword(pos int, c class) (int, error) {
	want := barewords[c]
	end := pos + len(want)
	if end > len(d.text) || d.text[pos:end] != want {
		return 0, d.fail(UnrecognizedBareword, pos)
	}
	return end, nil
}
