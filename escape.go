// Copyright 2021 The Scriggo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

// escapeTableSize is the size of the replacement tables. A character with
// code equal to or greater than escapeTableSize is never escaped. Escaping
// is deliberately limited to ASCII punctuation; it is not Unicode aware.
const escapeTableSize = 64

// escapeRepl contains, indexed by character code, the sequences that
// replace the characters escaped in HTML. Only the entries of the five
// escaped characters are non empty.
var escapeRepl [escapeTableSize]string

// escapeDelta contains the number of characters that replacing a character
// adds to a string, that is len(escapeRepl[c]) - 1. It is zero for the
// characters that are not escaped.
var escapeDelta [escapeTableSize]int

func init() {
	escapeRepl['"'] = "&#34;"
	escapeRepl['\''] = "&#39;"
	escapeRepl['&'] = "&amp;"
	escapeRepl['<'] = "&lt;"
	escapeRepl['>'] = "&gt;"
	for c, repl := range escapeRepl {
		if repl != "" {
			escapeDelta[c] = len(repl) - 1
		}
	}
}

// replacement returns the sequence that replaces the character c in HTML
// and the number of characters that the replacement adds. For a character
// that is not escaped it returns "" and 0.
func replacement(c byte) (string, int) {
	if c < escapeTableSize {
		return escapeRepl[c], escapeDelta[c]
	}
	return "", 0
}

// escapeString escapes the string s, so it can be placed inside HTML,
// replacing the characters '"', '\'', '&', '<' and '>' with their character
// references. If no character has to be replaced, escapeString returns s
// without allocating a new string.
func escapeString(s string) string {

	// First pass: compute the exact length of the escaped string.
	extra, repl := 0, 0
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < escapeTableSize && escapeDelta[c] > 0 {
			extra += escapeDelta[c]
			repl++
		}
	}

	if repl == 0 {
		return s
	}

	// Second pass: copy the runs between the escaped characters and
	// substitute the replacements. repl bounds the loop, so the scan for
	// the next escaped character cannot run past the end of s.
	b := make([]byte, len(s)+extra)
	i, j := 0, 0
	for ; repl > 0; repl-- {
		next := i
		for {
			if c := s[next]; c < escapeTableSize && escapeDelta[c] > 0 {
				break
			}
			next++
		}
		j += copy(b[j:], s[i:next])
		j += copy(b[j:], escapeRepl[s[next]])
		i = next + 1
	}
	j += copy(b[j:], s[i:])

	if j != len(b) {
		panic("markup: escaped length differs from the computed length")
	}

	return string(b)
}
