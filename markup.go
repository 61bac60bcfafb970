// Copyright 2021 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markup implements HTML escaping of strings and values, marking
// the escaped text so that it is not escaped again when interpolated into
// HTML output.
//
// The Escape function escapes a value of any type and returns it as
// native.HTML:
//
//	safe, err := markup.Escape(name)
//
// A native.HTML value, and a value implementing native.HTMLStringer, is
// considered already safe and is returned without further escaping.
// Numbers, booleans and nil cannot contain markup and pass through
// unescaped. Every other value is converted to a string and then escaped.
//
// Escaping replaces only the characters '"', '\'', '&', '<' and '>'. It is
// not a sanitizer: it does not strip tags and does not repair malformed
// markup.
package markup

import (
	"fmt"

	"github.com/open2b/markup/native"
)

// Escape escapes v, so it can be placed inside HTML, and returns it as
// native.HTML type.
//
// Numbers, booleans and nil are never escaped, since their textual form
// cannot contain markup. A native.HTML value, or a value implementing
// native.HTMLStringer, provides its own safe representation, and Escape
// returns it untouched. A string, a fmt.Stringer and an error value are
// escaped replacing the characters '"', '\'', '&', '<' and '>' with their
// character references. Any other value is first converted to a string and
// then escaped.
//
// Escape returns an error if v cannot be converted to a string.
func Escape(v interface{}) (native.HTML, error) {
	switch v := v.(type) {
	case nil, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, complex64, complex128:
		s, err := toString(v)
		if err != nil {
			return "", err
		}
		return native.HTML(s), nil
	case native.HTML:
		return v, nil
	case native.HTMLStringer:
		return v.HTML(), nil
	case string:
		return native.HTML(escapeString(v)), nil
	case fmt.Stringer:
		return native.HTML(escapeString(v.String())), nil
	case error:
		return native.HTML(escapeString(v.Error())), nil
	}
	s, err := toString(v)
	if err != nil {
		return "", err
	}
	return native.HTML(escapeString(s)), nil
}

// HTMLEscape escapes s, replacing the characters '"', '\'', '&', '<' and
// '>', and returns the escaped string as native.HTML type.
//
// Use HTMLEscape to put a trusted or untrusted string into an HTML element
// content or in a quoted attribute value. But don't use it with complex
// attributes like href, src, style, or any of the event handlers like
// onmouseover.
func HTMLEscape(s string) native.HTML {
	return native.HTML(escapeString(s))
}

// SoftString returns v as a string, without escaping it. If v is already a
// string, or has the native.HTML type, its content is returned unchanged,
// so a value that is already marked as safe is not re-escaped and is not
// converted again. Any other value is converted with the same rules used
// by Escape.
func SoftString(v interface{}) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case native.HTML:
		return string(v), nil
	}
	return toString(v)
}
