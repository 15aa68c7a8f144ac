/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier locates import and reference specifiers inside source
// text and computes the relative paths that replace them.
//
// Detection is syntactic. A Matcher scans raw text with a regular expression
// and knows nothing about the grammar of the file it scans, so a lexer-based
// Matcher can replace it without touching the path arithmetic.
package specifier

import "strings"

// Match is a located specifier occurrence.
type Match struct {
	// Start and End delimit the byte span a rewrite replaces.
	Start int
	End   int

	// Token is the alias token for alias matches, empty for rooted ones.
	Token string

	// Subpath is the path after the alias token or the root slash.
	Subpath string

	// Quote is the quotation mark that terminates the string literal.
	Quote byte
}

// Matcher finds specifier occurrences in source text.
type Matcher interface {
	// FindAll returns non-overlapping matches in ascending offset order.
	FindAll(content string) []Match
}

// ReplaceFunc returns the replacement text for a match, or false to keep
// the original text.
type ReplaceFunc func(m Match) (string, bool)

// Replace substitutes every match found by m in a single pass.
// The second return value reports whether anything changed.
func Replace(content string, m Matcher, fn ReplaceFunc) (string, bool) {
	matches := m.FindAll(content)
	if len(matches) == 0 {
		return content, false
	}

	var b strings.Builder
	b.Grow(len(content))

	changed := false
	last := 0
	for _, match := range matches {
		replacement, ok := fn(match)
		if !ok {
			continue
		}
		b.WriteString(content[last:match.Start])
		b.WriteString(replacement)
		last = match.End
		if replacement != content[match.Start:match.End] {
			changed = true
		}
	}

	if !changed {
		return content, false
	}

	b.WriteString(content[last:])
	return b.String(), true
}
