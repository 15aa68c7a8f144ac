/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package knowndirs indexes the top-level directory names that mark a
// root-absolute specifier as project-rooted.
package knowndirs

import (
	"fmt"
	"sort"

	relfs "bennypowers.dev/relativize/fs"
)

// Set is a case-sensitive set of directory names.
type Set map[string]struct{}

// New creates a Set from names.
func New(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is a known directory.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the directory names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Build unions the visible child directory names of rootDir and, when it
// exists, srcDir.
func Build(filesystem relfs.FileSystem, rootDir, srcDir string) (Set, error) {
	s := make(Set)

	if err := s.addChildren(filesystem, rootDir); err != nil {
		return nil, err
	}

	if srcDir != "" && filesystem.Exists(srcDir) {
		if err := s.addChildren(filesystem, srcDir); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s Set) addChildren(filesystem relfs.FileSystem, dir string) error {
	entries, err := relfs.VisibleEntries(filesystem, dir)
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			s[e.Name()] = struct{}{}
		}
	}
	return nil
}
