// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package qjson

// A class identifies the scanner responsible for a term, as determined by the
// first byte of the term.
type class byte

const (
	classNone   class = iota // no scanner accepts this byte
	classString              // "
	classNumber              // digit, "-", "+"
	classTrue                // t
	classFalse               // f
	classNull                // n
	classArray               // [
	classObject              // {
)

// classify reports the class of the term beginning with b.
func classify(b byte) class {
	switch b {
	case '"':
		return classString
	case '-', '+', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return classNumber
	case 't':
		return classTrue
	case 'f':
		return classFalse
	case 'n':
		return classNull
	case '[':
		return classArray
	case '{':
		return classObject
	}
	return classNone
}

// barewords gives the literal spelling of each bareword class.
var barewords = [...]string{
	classTrue:  "true",
	classFalse: "false",
	classNull:  "null",
}
