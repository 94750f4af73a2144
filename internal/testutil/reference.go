// Package testutil defines support code for unit tests.
package testutil

import (
	"github.com/creachadair/qjson"
	"github.com/go-json-experiment/json/jsontext"
	jsoniter "github.com/json-iterator/go"
)

// Reference decodes text with an independent JSON implementation and converts
// the result to a qjson.Value, for comparison with the output of the decoder
// under test.
func Reference(text string) (qjson.Value, error) {
	var v any
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(text, &v); err != nil {
		return nil, err
	}
	return qjson.ToValue(v), nil
}

// Unquote decodes the JSON string literal src, including its quotation marks,
// with an independent implementation.
func Unquote(src string) (string, error) {
	dec, err := jsontext.AppendUnquote(nil, src)
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
