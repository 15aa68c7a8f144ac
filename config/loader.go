/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"
	"maps"
	"path/filepath"

	"bennypowers.dev/relativize/alias"
	relfs "bennypowers.dev/relativize/fs"
)

// FindNuxtConfig returns the path of the first recognized config file in rootDir.
func FindNuxtConfig(filesystem relfs.FileSystem, rootDir string) (string, bool) {
	for _, name := range NuxtConfigNames {
		path := filepath.Join(rootDir, name)
		if filesystem.Exists(path) {
			return path, true
		}
	}
	return "", false
}

// Load reads the project configuration from rootDir.
// A missing nuxt config yields ErrConfigNotFound; every other failure
// wraps ErrConfigLoad.
func Load(filesystem relfs.FileSystem, rootDir string) (*Project, error) {
	rootDir = filepath.Clean(rootDir)

	configFile, ok := FindNuxtConfig(filesystem, rootDir)
	if !ok {
		return nil, fmt.Errorf("%w in %s", ErrConfigNotFound, rootDir)
	}

	data, err := filesystem.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigLoad, err)
	}

	values, err := ParseNuxtConfig(data, filepath.Ext(configFile), rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigLoad, configFile, err)
	}

	override, err := LoadOverride(filesystem, rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigLoad, filepath.Join(OverrideDir, OverrideFileName), err)
	}

	return resolve(rootDir, configFile, values, override), nil
}

// resolve merges nuxt values and the override and makes every directory absolute.
func resolve(cwd, configFile string, values *NuxtValues, override *Override) *Project {
	p := &Project{
		RootDir:    cwd,
		ConfigFile: configFile,
		Alias:      make(map[string]string),
	}

	srcDir := ""
	if values != nil {
		if values.RootDir != "" {
			p.RootDir = absFrom(cwd, values.RootDir)
		}
		srcDir = values.SrcDir
		maps.Copy(p.Alias, values.Alias)
	}

	if override != nil {
		if override.RootDir != "" {
			p.RootDir = absFrom(cwd, override.RootDir)
		}
		if override.SrcDir != "" {
			srcDir = override.SrcDir
		}
		maps.Copy(p.Alias, override.Alias)
		p.Ignore = append(p.Ignore, override.Ignore...)
	}

	p.SrcDir = alias.ResolveSourceDir(p.RootDir, srcDir)
	return p
}

func absFrom(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}
