/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	relfs "bennypowers.dev/relativize/fs"
)

// OverrideFileName is the base name of the override file without extension.
const OverrideFileName = "relativize"

// OverrideDir is the directory where the override file is stored.
const OverrideDir = ".config"

// overrideExtensions are the supported override file extensions in priority order.
var overrideExtensions = []string{".yaml", ".yml", ".json"}

// LoadOverride searches for .config/relativize.{yaml,yml,json} in rootDir.
// Returns nil if no override file exists (not an error).
// JSON files may contain comments and trailing commas.
func LoadOverride(filesystem relfs.FileSystem, rootDir string) (*Override, error) {
	for _, ext := range overrideExtensions {
		path := filepath.Join(rootDir, OverrideDir, OverrideFileName+ext)
		if !filesystem.Exists(path) {
			continue
		}

		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, err
		}

		o := &Override{}
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, o); err != nil {
				return nil, err
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), o); err != nil {
				return nil, err
			}
		}

		return o, nil
	}

	return nil, nil
}
