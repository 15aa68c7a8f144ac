/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"regexp"
	"strings"
)

// rootedPattern matches a string literal whose value begins with a root slash.
// Both quotes must be the same character.
var rootedPattern = regexp.MustCompile(`'/[^'\n]*'|"/[^"\n]*"`)

// RootedMatcher finds root-absolute specifiers such as "/components/Foo.vue".
// Matches span the whole literal, quotes included.
type RootedMatcher struct{}

// NewRootedMatcher creates a matcher for root-absolute specifiers.
func NewRootedMatcher() *RootedMatcher {
	return &RootedMatcher{}
}

// FindAll implements Matcher.
func (m *RootedMatcher) FindAll(content string) []Match {
	locs := rootedPattern.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{
			Start:   loc[0],
			End:     loc[1],
			Subpath: content[loc[0]+2 : loc[1]-1],
			Quote:   content[loc[0]],
		})
	}
	return matches
}

// FirstSegment returns the first path segment of subpath.
func FirstSegment(subpath string) string {
	first, _, _ := strings.Cut(subpath, "/")
	return first
}
