// Copyright 2021 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"fmt"
	"reflect"
	"strconv"
)

// toString returns the textual form of v. It returns an error if the kind
// of v has no textual form.
func toString(v interface{}) (string, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return "", nil
	case reflect.Bool:
		if rv.Bool() {
			return "true", nil
		}
		return "false", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Complex64:
		return complexToString(rv.Complex(), 32), nil
	case reflect.Complex128:
		return complexToString(rv.Complex(), 64), nil
	default:
		return "", fmt.Errorf("markup: cannot convert value of type %s to string", rv.Type())
	}
}

// complexToString returns the textual form of the complex number c with
// the given precision in bits of its parts.
func complexToString(c complex128, bitSize int) string {
	if c == 0 {
		return "0"
	}
	var s string
	if r := real(c); r != 0 {
		s = strconv.FormatFloat(r, 'f', -1, bitSize)
	}
	if i := imag(c); i != 0 {
		if s != "" && i > 0 {
			s += "+"
		}
		s += strconv.FormatFloat(i, 'f', -1, bitSize) + "i"
	}
	return s
}
