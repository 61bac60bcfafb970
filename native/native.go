// Copyright 2021 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package native provides the types used to mark a string as safe markup
// and to let a value provide its own representation in HTML context.
package native

type (

	// HTML is a string of markup that requires no further escaping when it
	// is placed inside HTML. Converting a string to HTML asserts that the
	// string is already escaped or comes from a trusted source.
	HTML string

	// Markdown is a string of Markdown source. It is not markup safe; it
	// becomes safe only after it has been converted to HTML.
	Markdown string
)

type (

	// HTMLStringer is implemented by values that are not escaped in HTML
	// context. The HTML method returns the value's own safe representation.
	HTMLStringer interface {
		HTML() HTML
	}

	// MarkdownStringer is implemented by values that represent themselves
	// as Markdown source.
	MarkdownStringer interface {
		Markdown() Markdown
	}
)
