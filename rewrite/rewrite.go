/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package rewrite converts alias and root-absolute specifiers in source
// text into relative paths. It performs no I/O: content goes in, content
// comes out.
package rewrite

import (
	"path/filepath"
	"strings"

	"bennypowers.dev/relativize/alias"
	"bennypowers.dev/relativize/knowndirs"
	"bennypowers.dev/relativize/specifier"
)

// Context holds the per-file values derived from a file path.
type Context struct {
	// FilePath is the absolute path of the file being rewritten.
	FilePath string

	// FileDir is the parent directory of FilePath.
	FileDir string

	// UnderSourceDir reports whether FilePath lies below the source directory.
	UnderSourceDir bool

	// EffectiveRoot is the source directory for files under it, otherwise
	// the project root.
	EffectiveRoot string
}

// Options configures a Rewriter.
type Options struct {
	// RootDir is the absolute project root.
	RootDir string

	// SourceDir is the absolute source directory.
	SourceDir string

	// Aliases is the resolved alias table.
	Aliases *alias.Table

	// KnownDirs enables root-absolute rewriting when non-empty.
	KnownDirs knowndirs.Set
}

type aliasStage struct {
	matcher specifier.Matcher
	target  string
}

// Rewriter applies the alias stage and, optionally, the root-absolute stage.
// A Rewriter is safe for concurrent use.
type Rewriter struct {
	rootDir   string
	sourceDir string
	stages    []aliasStage
	rooted    specifier.Matcher
	knownDirs knowndirs.Set
}

// New creates a Rewriter. Alias patterns are compiled once here.
func New(opts Options) *Rewriter {
	r := &Rewriter{
		rootDir:   filepath.Clean(opts.RootDir),
		sourceDir: filepath.Clean(opts.SourceDir),
		rooted:    specifier.NewRootedMatcher(),
		knownDirs: opts.KnownDirs,
	}

	if opts.Aliases != nil {
		for _, e := range opts.Aliases.Entries() {
			r.stages = append(r.stages, aliasStage{
				matcher: specifier.NewAliasMatcher(e.Token),
				target:  e.Target,
			})
		}
	}

	return r
}

// Context derives the rewrite context for filePath.
func (r *Rewriter) Context(filePath string) Context {
	filePath = filepath.Clean(filePath)
	under := isWithin(r.sourceDir, filePath)

	root := r.rootDir
	if under {
		root = r.sourceDir
	}

	return Context{
		FilePath:       filePath,
		FileDir:        filepath.Dir(filePath),
		UnderSourceDir: under,
		EffectiveRoot:  root,
	}
}

// Aliases converts every "<alias>/<subpath><quote>" occurrence into a
// relative path. Each alias pattern runs over the output of the previous one.
func (r *Rewriter) Aliases(content string, ctx Context) (string, bool) {
	changed := false
	for _, stage := range r.stages {
		var ok bool
		content, ok = specifier.Replace(content, stage.matcher, func(m specifier.Match) (string, bool) {
			target := specifier.Join(stage.target, m.Subpath)
			return specifier.Relative(ctx.FileDir, target) + string(m.Quote), true
		})
		changed = changed || ok
	}
	return content, changed
}

// Absolute converts root-absolute specifiers whose first segment is a known
// directory into relative paths. Other rooted specifiers are left alone.
// It is a no-op when no known directories were configured.
func (r *Rewriter) Absolute(content string, ctx Context) (string, bool) {
	if len(r.knownDirs) == 0 {
		return content, false
	}

	return specifier.Replace(content, r.rooted, func(m specifier.Match) (string, bool) {
		if !r.knownDirs.Has(specifier.FirstSegment(m.Subpath)) {
			return "", false
		}
		target := specifier.Join(ctx.EffectiveRoot, m.Subpath)
		q := string(m.Quote)
		return q + specifier.Relative(ctx.FileDir, target) + q, true
	})
}

// Rewrite runs the alias stage and then, when absolute is set, the
// root-absolute stage, so alias output is never reinterpreted as rooted.
func (r *Rewriter) Rewrite(content, filePath string, absolute bool) (string, bool) {
	ctx := r.Context(filePath)

	out, changed := r.Aliases(content, ctx)
	if absolute {
		var ok bool
		out, ok = r.Absolute(out, ctx)
		changed = changed || ok
	}
	return out, changed
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
