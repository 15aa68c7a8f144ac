/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides the project configuration that drives a rewrite:
// the root and source directories and the user-declared aliases.
package config

import (
	"bennypowers.dev/relativize/alias"
)

// Project is the resolved configuration of a project.
type Project struct {
	// RootDir is the absolute project root.
	RootDir string

	// SrcDir is the absolute source directory, the traversal start point.
	SrcDir string

	// Alias maps user-declared alias tokens to target directories.
	Alias map[string]string

	// Ignore lists doublestar globs, relative to SrcDir, of files to skip.
	Ignore []string

	// ConfigFile is the nuxt config file the project was read from.
	ConfigFile string
}

// Override is the optional .config/relativize.{yaml,yml,json} file.
// Its values take precedence over the nuxt config.
type Override struct {
	// RootDir overrides the project root (relative to the working directory).
	RootDir string `yaml:"rootDir" json:"rootDir"`

	// SrcDir overrides the source directory (relative to the root).
	SrcDir string `yaml:"srcDir" json:"srcDir"`

	// Alias adds aliases, replacing nuxt config aliases with the same token.
	Alias map[string]string `yaml:"alias" json:"alias"`

	// Ignore lists doublestar globs of files under the source dir to skip.
	Ignore []string `yaml:"ignore" json:"ignore"`
}

// AliasTable builds the alias table for the project.
func (p *Project) AliasTable() (*alias.Table, error) {
	return alias.Build(p.RootDir, p.SrcDir, p.Alias)
}
