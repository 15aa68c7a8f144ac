/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"errors"
	"testing"

	"bennypowers.dev/relativize/config"
)

func TestFromProject(t *testing.T) {
	p := &config.Project{
		RootDir: "/proj",
		SrcDir:  "/proj/src",
		Alias:   map[string]string{"@": "/custom/dir"},
		Ignore:  []string{"**/*.gen.ts"},
	}

	cfg, err := FromProject(p, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.Absolute {
		t.Error("expected absolute mode")
	}
	if cfg.SrcDir != "/proj/src" || cfg.RootDir != "/proj" {
		t.Errorf("unexpected dirs: root %q, src %q", cfg.RootDir, cfg.SrcDir)
	}
	if e, _ := cfg.Aliases.Lookup("@"); e.Target != "/custom/dir" {
		t.Errorf("expected user alias to override default, got %q", e.Target)
	}
	if len(cfg.Ignore) != 1 {
		t.Errorf("expected ignore globs to carry over, got %v", cfg.Ignore)
	}
}

func TestFromProject_EmptyToken(t *testing.T) {
	p := &config.Project{RootDir: "/proj", Alias: map[string]string{"": "/x"}}

	_, err := FromProject(p, false)
	if !errors.Is(err, config.ErrConfigLoad) {
		t.Fatalf("expected ErrConfigLoad, got %v", err)
	}
}
