/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import "regexp"

// AliasMatcher finds "<token>/<subpath><quote>" occurrences.
// An occurrence whose token is directly preceded by "/" is a trailing path
// segment of some other specifier and is not reported.
type AliasMatcher struct {
	token   string
	pattern *regexp.Regexp
}

// NewAliasMatcher creates a matcher for a literal alias token.
// Characters with special meaning in patterns are escaped.
func NewAliasMatcher(token string) *AliasMatcher {
	return &AliasMatcher{
		token:   token,
		pattern: regexp.MustCompile(regexp.QuoteMeta(token) + `/([^'"\n]*)(['"])`),
	}
}

// Token returns the alias token this matcher looks for.
func (m *AliasMatcher) Token() string {
	return m.token
}

// FindAll implements Matcher.
func (m *AliasMatcher) FindAll(content string) []Match {
	var matches []Match

	pos := 0
	for pos < len(content) {
		loc := m.pattern.FindStringSubmatchIndex(content[pos:])
		if loc == nil {
			break
		}

		start := pos + loc[0]
		if start > 0 && content[start-1] == '/' {
			// Retry one byte later, a later occurrence inside this span may still qualify.
			pos = start + 1
			continue
		}

		end := pos + loc[1]
		matches = append(matches, Match{
			Start:   start,
			End:     end,
			Token:   m.token,
			Subpath: content[pos+loc[2] : pos+loc[3]],
			Quote:   content[pos+loc[4]],
		})
		pos = end
	}

	return matches
}
