/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"errors"
	"testing"

	"bennypowers.dev/relativize/internal/mapfs"
	"bennypowers.dev/relativize/testutil"
)

func TestLoad_TypeScriptDefineNuxtConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/ts-define", "/project")

	p, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.RootDir != "/project" {
		t.Errorf("expected root '/project', got %q", p.RootDir)
	}
	if p.SrcDir != "/project/src" {
		t.Errorf("expected srcDir '/project/src', got %q", p.SrcDir)
	}
	if p.ConfigFile != "/project/nuxt.config.ts" {
		t.Errorf("expected config file '/project/nuxt.config.ts', got %q", p.ConfigFile)
	}

	want := map[string]string{
		"#shared": "/project/shared",
		"images":  "/project/src/assets/images",
		"@":       "/custom/dir",
	}
	if len(p.Alias) != len(want) {
		t.Fatalf("expected %d aliases, got %d: %v", len(want), len(p.Alias), p.Alias)
	}
	for token, target := range want {
		if p.Alias[token] != target {
			t.Errorf("alias %q: expected %q, got %q", token, target, p.Alias[token])
		}
	}
	if _, ok := p.Alias["dynamic"]; ok {
		t.Error("expected alias with a runtime value to be skipped")
	}
}

func TestLoad_ModuleExports(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/js-module-exports", "/project")

	p, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.RootDir != "/project" {
		t.Errorf("expected root '/project', got %q", p.RootDir)
	}
	if p.SrcDir != "/project/app" {
		t.Errorf("expected srcDir '/project/app', got %q", p.SrcDir)
	}
	if p.Alias["utils"] != "/project/app/utils" {
		t.Errorf("expected utils alias '/project/app/utils', got %q", p.Alias["utils"])
	}
	if p.Alias["styles"] != "app/styles" {
		t.Errorf("expected styles alias 'app/styles', got %q", p.Alias["styles"])
	}
}

func TestLoad_YAMLOverride(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/with-override", "/project")

	p, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.SrcDir != "/project/client" {
		t.Errorf("expected override srcDir '/project/client', got %q", p.SrcDir)
	}
	if p.Alias["~lib"] != "shared/lib" {
		t.Errorf("expected override to replace ~lib, got %q", p.Alias["~lib"])
	}
	if p.Alias["~types"] != "./types" {
		t.Errorf("expected nuxt alias ~types to survive, got %q", p.Alias["~types"])
	}
	if p.Alias["x"] != "/abs/x" {
		t.Errorf("expected override alias x, got %q", p.Alias["x"])
	}
	if len(p.Ignore) != 2 || p.Ignore[0] != "**/*.gen.ts" {
		t.Errorf("expected ignore globs from override, got %v", p.Ignore)
	}

	table, err := p.AliasTable()
	if err != nil {
		t.Fatalf("unexpected error building alias table: %v", err)
	}
	if e, _ := table.Lookup("~lib"); e.Target != "/project/shared/lib" {
		t.Errorf("expected ~lib to resolve against the root, got %q", e.Target)
	}
	if e, _ := table.Lookup("~"); e.Target != "/project/client" {
		t.Errorf("expected ~ to follow srcDir, got %q", e.Target)
	}
}

func TestLoad_JSONCOverride(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/config/jsonc-override", "/project")

	p, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.SrcDir != "/project/app" {
		t.Errorf("expected srcDir '/project/app', got %q", p.SrcDir)
	}
	if p.Alias["#ui"] != "packages/ui" {
		t.Errorf("expected #ui alias, got %q", p.Alias["#ui"])
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		wantErr []error
	}{
		{"missing config", "fixtures/config/missing", []error{ErrConfigNotFound}},
		{"syntax error", "fixtures/config/syntax-error", []error{ErrConfigLoad, ErrSyntax}},
		{"no export", "fixtures/config/no-export", []error{ErrConfigLoad, ErrNoExport}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mfs := testutil.NewFixtureFS(t, tt.fixture, "/project")

			p, err := Load(mfs, "/project")
			if err == nil {
				t.Fatalf("expected error, got project %+v", p)
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("expected error to wrap %v, got %v", want, err)
				}
			}
		})
	}
}

func TestLoad_ConfigPriority(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/nuxt.config.js", "export default { srcDir: 'from-js' }", 0644)
	mfs.AddFile("/project/nuxt.config.ts", "export default defineNuxtConfig({ srcDir: 'from-ts' })", 0644)

	p, err := Load(mfs, "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.SrcDir != "/project/from-ts" {
		t.Errorf("expected nuxt.config.ts to win, got srcDir %q", p.SrcDir)
	}
}

func TestLoad_InvalidOverride(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/nuxt.config.ts", "export default defineNuxtConfig({})", 0644)
	mfs.AddFile("/project/.config/relativize.yaml", "alias: [not, a, map]", 0644)

	_, err := Load(mfs, "/project")
	if !errors.Is(err, ErrConfigLoad) {
		t.Fatalf("expected ErrConfigLoad, got %v", err)
	}
}
