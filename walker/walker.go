/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package walker finds the source files of a project and runs the
// rewriter over them.
package walker

import (
	"fmt"
	"iter"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	relfs "bennypowers.dev/relativize/fs"
	"bennypowers.dev/relativize/internal/logger"
)

// Extensions are the file extensions eligible for rewriting.
var Extensions = []string{".ts", ".vue", ".scss", ".js"}

// Eligible reports whether path has a rewritable extension.
func Eligible(path string) bool {
	return slices.Contains(Extensions, filepath.Ext(path))
}

// Candidates returns a lazy sequence of the eligible files under dir.
// Directories are visited depth-first in the order the filesystem lists
// them. Hidden entries and files matching an ignore glob (relative to dir)
// are skipped. Ranging over the sequence again restarts the walk.
// A listing failure is yielded as an error and ends the sequence.
func Candidates(filesystem relfs.FileSystem, dir string, ignore []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		walk(filesystem, dir, dir, ignore, yield)
	}
}

func walk(filesystem relfs.FileSystem, base, dir string, ignore []string, yield func(string, error) bool) bool {
	entries, err := relfs.VisibleEntries(filesystem, dir)
	if err != nil {
		yield("", fmt.Errorf("listing %s: %w", dir, err))
		return false
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		if e.IsDir() {
			if !walk(filesystem, base, path, ignore, yield) {
				return false
			}
			continue
		}

		if !Eligible(path) {
			continue
		}

		if ignored(base, path, ignore) {
			logger.Debug("skipping ignored file %s", path)
			continue
		}

		if !yield(path, nil) {
			return false
		}
	}

	return true
}

func ignored(base, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range patterns {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

// validPatterns drops malformed ignore globs with a warning.
func validPatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			logger.Warn("invalid ignore pattern %q, ignoring it", p)
			continue
		}
		valid = append(valid, p)
	}
	return valid
}
