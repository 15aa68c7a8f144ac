/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package walker

import (
	"fmt"
	"io/fs"
	"strings"

	"bennypowers.dev/relativize/alias"
	relfs "bennypowers.dev/relativize/fs"
	"bennypowers.dev/relativize/internal/logger"
	"bennypowers.dev/relativize/knowndirs"
	"bennypowers.dev/relativize/rewrite"
)

// RunConfig configures a run.
type RunConfig struct {
	// RootDir is the absolute project root.
	RootDir string

	// SrcDir is the absolute source directory; traversal starts here.
	SrcDir string

	// Aliases is the resolved alias table. Nil means defaults only.
	Aliases *alias.Table

	// Absolute enables root-absolute specifier rewriting.
	Absolute bool

	// Ignore lists doublestar globs, relative to SrcDir, of files to skip.
	Ignore []string

	// DryRun computes changes without writing files.
	DryRun bool
}

// Change is a file whose content a run rewrote.
type Change struct {
	Path   string
	Before string
	After  string
}

// Result summarizes a run.
type Result struct {
	// Scanned counts the eligible files read.
	Scanned int

	// Changes lists rewritten files in visiting order.
	Changes []Change

	// KnownDirs is the sorted known-directory index, empty unless Absolute was set.
	KnownDirs []string
}

// Updated returns the paths of the rewritten files.
func (r *Result) Updated() []string {
	paths := make([]string, 0, len(r.Changes))
	for _, c := range r.Changes {
		paths = append(paths, c.Path)
	}
	return paths
}

// Run rewrites every eligible file under cfg.SrcDir. Files are written back
// only when their content changed. The first I/O error aborts the run;
// files already written stay written.
func Run(filesystem relfs.FileSystem, cfg RunConfig) (*Result, error) {
	table := cfg.Aliases
	if table == nil {
		var err error
		if table, err = alias.Build(cfg.RootDir, cfg.SrcDir, nil); err != nil {
			return nil, err
		}
	}

	result := &Result{}

	var known knowndirs.Set
	if cfg.Absolute {
		var err error
		known, err = knowndirs.Build(filesystem, cfg.RootDir, cfg.SrcDir)
		if err != nil {
			return nil, fmt.Errorf("indexing known directories: %w", err)
		}
		result.KnownDirs = known.Names()
		logger.Info("Known directories: %s", strings.Join(result.KnownDirs, ", "))
	}

	r := rewrite.New(rewrite.Options{
		RootDir:   cfg.RootDir,
		SourceDir: cfg.SrcDir,
		Aliases:   table,
		KnownDirs: known,
	})

	for path, err := range Candidates(filesystem, cfg.SrcDir, validPatterns(cfg.Ignore)) {
		if err != nil {
			return result, err
		}
		result.Scanned++

		change, err := rewriteFile(filesystem, r, path, cfg)
		if err != nil {
			return result, err
		}
		if change != nil {
			result.Changes = append(result.Changes, *change)
		}
	}

	return result, nil
}

func rewriteFile(filesystem relfs.FileSystem, r *rewrite.Rewriter, path string, cfg RunConfig) (*Change, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	before := string(data)
	after, changed := r.Rewrite(before, path, cfg.Absolute)
	if !changed || after == before {
		return nil, nil
	}

	if !cfg.DryRun {
		if err := filesystem.WriteFile(path, []byte(after), filePerm(filesystem, path)); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Info("Updated: %s", path)
	}

	return &Change{Path: path, Before: before, After: after}, nil
}

func filePerm(filesystem relfs.FileSystem, path string) fs.FileMode {
	info, err := filesystem.Stat(path)
	if err != nil || info.Mode().Perm() == 0 {
		return 0644
	}
	return info.Mode().Perm()
}
