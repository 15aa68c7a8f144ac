/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package alias builds the table of path aliases (e.g. "~", "@") that
// stand in for project directories inside import specifiers.
package alias

import (
	"fmt"
	"path/filepath"
	"sort"
)

// DefaultSourceDir is the source directory name used when none is configured.
const DefaultSourceDir = "src"

// Entry maps an alias token to the absolute directory it stands for.
type Entry struct {
	// Token is the literal alias text, e.g. "~" or "@@".
	Token string

	// Target is the absolute directory the token resolves to.
	Target string
}

// Table is the resolved alias mapping for a single run.
// It is immutable once built.
type Table struct {
	entries map[string]Entry
	order   []Entry
}

// Defaults returns the framework default aliases for the given directories.
func Defaults(rootDir, srcDir string) map[string]string {
	return map[string]string{
		"~":      srcDir,
		"@":      srcDir,
		"~~":     rootDir,
		"@@":     rootDir,
		"assets": filepath.Join(srcDir, "assets"),
		"public": filepath.Join(srcDir, "public"),
	}
}

// Build installs the default aliases and overlays the user-declared ones.
// User entries silently replace defaults with the same token.
// An empty srcDir defaults to <rootDir>/src. Relative targets are resolved
// against rootDir.
func Build(rootDir, srcDir string, user map[string]string) (*Table, error) {
	rootDir = filepath.Clean(rootDir)
	srcDir = ResolveSourceDir(rootDir, srcDir)

	merged := Defaults(rootDir, srcDir)
	for token, target := range user {
		if token == "" {
			return nil, fmt.Errorf("%w (target %q)", ErrEmptyToken, target)
		}
		merged[token] = target
	}

	t := &Table{entries: make(map[string]Entry, len(merged))}
	for token, target := range merged {
		if !filepath.IsAbs(target) {
			target = filepath.Join(rootDir, target)
		}
		e := Entry{Token: token, Target: filepath.Clean(target)}
		t.entries[token] = e
		t.order = append(t.order, e)
	}

	// Longer tokens go first so "~~/x" is claimed before "~" sees its inner "~/".
	sort.Slice(t.order, func(i, j int) bool {
		a, b := t.order[i].Token, t.order[j].Token
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	return t, nil
}

// ResolveSourceDir returns the absolute source directory for rootDir.
func ResolveSourceDir(rootDir, srcDir string) string {
	switch {
	case srcDir == "":
		return filepath.Join(rootDir, DefaultSourceDir)
	case !filepath.IsAbs(srcDir):
		return filepath.Join(rootDir, srcDir)
	default:
		return filepath.Clean(srcDir)
	}
}

// Lookup returns the entry for token.
func (t *Table) Lookup(token string) (Entry, bool) {
	e, ok := t.entries[token]
	return e, ok
}

// Entries returns all entries in application order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of aliases in the table.
func (t *Table) Len() int {
	return len(t.order)
}
