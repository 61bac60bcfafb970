// Copyright 2021 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"errors"
	"testing"

	"github.com/open2b/markup/native"
)

// trusted implements native.HTMLStringer. Its HTML method returns markup
// that must not be escaped.
type trusted struct{}

func (t trusted) HTML() native.HTML {
	return "TRUSTED<b>"
}

// stringer implements fmt.Stringer with a string containing markup.
type stringer struct{}

func (s stringer) String() string {
	return `a "<" b`
}

// boolHTML is a bool type that implements native.HTMLStringer. Booleans
// with the exact bool type must instead pass through unescaped.
type boolHTML bool

func (b boolHTML) HTML() native.HTML {
	return "<input checked>"
}

type stringType string

var escapeCases = []struct {
	v        interface{}
	expected native.HTML
}{
	// Numbers, booleans and nil pass through without escaping.
	{nil, ``},
	{true, `true`},
	{false, `false`},
	{0, `0`},
	{42, `42`},
	{-83, `-83`},
	{int8(-128), `-128`},
	{uint(96), `96`},
	{uint8(255), `255`},
	{int64(1<<62 - 1), `4611686018427387903`},
	{3.14, `3.14`},
	{float32(-0.5), `-0.5`},
	{2 + 3i, `2+3i`},

	// Already safe values are returned untouched.
	{native.HTML(`<b>safe</b>`), `<b>safe</b>`},
	{trusted{}, `TRUSTED<b>`},
	{boolHTML(true), `<input checked>`},

	// Strings and string-like values are escaped.
	{``, ``},
	{`foo`, `foo`},
	{`<b>`, `&lt;b&gt;`},
	{`l'editor "X" & co`, `l&#39;editor &#34;X&#34; &amp; co`},
	{stringer{}, `a &#34;&lt;&#34; b`},
	{errors.New(`file <a> not found`), `file &lt;a&gt; not found`},
	{stringType(`5 > 4`), `5 &gt; 4`},
	{native.Markdown(`# title <b>`), `# title &lt;b&gt;`},
}

func TestEscape(t *testing.T) {
	for _, cas := range escapeCases {
		got, err := Escape(cas.v)
		if err != nil {
			t.Fatalf("value: %#v: unexpected error: %s", cas.v, err)
		}
		if got != cas.expected {
			t.Fatalf("value: %#v: expecting %q, got %q", cas.v, cas.expected, got)
		}
	}
}

func TestEscapeError(t *testing.T) {
	for _, v := range []interface{}{[]int{1, 2}, map[string]int{}, struct{}{}, make(chan int)} {
		_, err := Escape(v)
		if err == nil {
			t.Fatalf("value: %#v: expecting an error, got nil", v)
		}
	}
}

func TestHTMLEscape(t *testing.T) {
	for _, cas := range escapeStringCases {
		if got := HTMLEscape(cas.src); got != native.HTML(cas.expected) {
			t.Fatalf("src: %q: expecting %q, got %q", cas.src, cas.expected, got)
		}
	}
}

var softStringCases = []struct {
	v        interface{}
	expected string
}{
	{``, ``},
	{`foo`, `foo`},
	{`<b>`, `<b>`},
	{native.HTML(`<b>safe</b>`), `<b>safe</b>`},
	{native.HTML(`a &lt; b`), `a &lt; b`},
	{nil, ``},
	{true, `true`},
	{42, `42`},
	{1.5, `1.5`},
}

// TestSoftString tests that SoftString does not escape and does not convert
// a value that is already a string.
func TestSoftString(t *testing.T) {
	for _, cas := range softStringCases {
		got, err := SoftString(cas.v)
		if err != nil {
			t.Fatalf("value: %#v: unexpected error: %s", cas.v, err)
		}
		if got != cas.expected {
			t.Fatalf("value: %#v: expecting %q, got %q", cas.v, cas.expected, got)
		}
	}
}

func TestSoftStringError(t *testing.T) {
	_, err := SoftString([]string{"a"})
	if err == nil {
		t.Fatal("expecting an error, got nil")
	}
}
