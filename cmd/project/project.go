/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project loads the project configuration shared by the commands.
package project

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"bennypowers.dev/relativize/config"
	"bennypowers.dev/relativize/fs"
	"bennypowers.dev/relativize/walker"
)

// Load reads the configuration of the project in the working directory.
func Load(filesystem fs.FileSystem) (*config.Project, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("error getting working directory: %w", err)
	}
	return config.Load(filesystem, cwd)
}

// RunConfig builds the walker configuration for the working directory.
// The absolute mode comes from the --absolute flag or RELATIVIZE_ABSOLUTE.
func RunConfig(filesystem fs.FileSystem) (walker.RunConfig, error) {
	p, err := Load(filesystem)
	if err != nil {
		return walker.RunConfig{}, err
	}
	return FromProject(p, viper.GetBool("absolute"))
}

// FromProject builds the walker configuration for a loaded project.
func FromProject(p *config.Project, absolute bool) (walker.RunConfig, error) {
	table, err := p.AliasTable()
	if err != nil {
		return walker.RunConfig{}, fmt.Errorf("%w: %w", config.ErrConfigLoad, err)
	}

	return walker.RunConfig{
		RootDir:  p.RootDir,
		SrcDir:   p.SrcDir,
		Aliases:  table,
		Absolute: absolute,
		Ignore:   p.Ignore,
	}, nil
}
