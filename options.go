// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package qjson

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 10000

// Options control the behaviour of the decoder. A zero Options selects the
// lenient fast path, which accepts a superset of JSON:
//
//   - a trailing comma before "]" or "}" is ignored;
//   - a decimal point need not be followed by digits, so "1." is 1;
//   - an exponent marker not followed by digits ends the number before the
//     marker, so "1e" scans as "1" followed by "e";
//   - numbers may begin with "+" and may have leading zeroes;
//   - string contents are not checked for control bytes or valid UTF-8.
//
// Set Strict to reject all of these.
type Options struct {
	// Strict enables full conformance with the JSON grammar.
	Strict bool

	// MaxDepth limits the nesting depth of arrays and objects. If zero,
	// DefaultMaxDepth is used; if negative, depth is not limited.
	MaxDepth int
}

func (o *Options) maxDepth() int {
	if o == nil || o.MaxDepth == 0 {
		return DefaultMaxDepth
	} else if o.MaxDepth < 0 {
		return -1
	}
	return o.MaxDepth
}

func (o *Options) strict() bool { return o != nil && o.Strict }
