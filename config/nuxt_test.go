/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNuxtConfig(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		src     string
		rootDir string
		srcDir  string
		alias   map[string]string
	}{
		{
			name:  "empty define",
			ext:   ".ts",
			src:   `export default defineNuxtConfig({})`,
			alias: map[string]string{},
		},
		{
			name:   "bound config with satisfies",
			ext:    ".ts",
			src:    "const config = { srcDir: `app` } satisfies NuxtConfig\nexport default config\n",
			srcDir: "app",
			alias:  map[string]string{},
		},
		{
			name:  "shorthand alias property",
			ext:   ".mjs",
			src:   "const alias = { '~ui': './ui' }\nexport default { alias }\n",
			alias: map[string]string{"~ui": "./ui"},
		},
		{
			name:    "path resolve with absolute segment",
			ext:     ".js",
			src:     "export default { rootDir: path.resolve(__dirname, '/elsewhere', 'proj') }",
			rootDir: "/elsewhere/proj",
			alias:   map[string]string{},
		},
		{
			name:   "process cwd",
			ext:    ".cjs",
			src:    "module.exports = { srcDir: join(process.cwd(), 'client') }",
			srcDir: "/project/client",
			alias:  map[string]string{},
		},
		{
			name:  "url pathname",
			ext:   ".mts",
			src:   "export default defineNuxtConfig({ alias: { '#x': new URL('./x', import.meta.url).pathname } })",
			alias: map[string]string{"#x": "/project/x"},
		},
		{
			name:  "template substitution is skipped",
			ext:   ".ts",
			src:   "const base = 'a'\nexport default defineNuxtConfig({ alias: { '#a': `${base}/b`, '#c': 'c' } })",
			alias: map[string]string{"#c": "c"},
		},
		{
			name:  "escaped string",
			ext:   ".js",
			src:   `export default { alias: { "#q": "dir\\with\"quote" } }`,
			alias: map[string]string{"#q": `dir\with"quote`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseNuxtConfig([]byte(tt.src), tt.ext, "/project")
			require.NoError(t, err)
			assert.Equal(t, tt.rootDir, v.RootDir)
			assert.Equal(t, tt.srcDir, v.SrcDir)
			assert.Equal(t, tt.alias, v.Alias)
		})
	}
}

func TestParseNuxtConfig_Errors(t *testing.T) {
	_, err := ParseNuxtConfig([]byte(`export default {`), ".js", "/project")
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = ParseNuxtConfig([]byte(`export const x = 1`), ".ts", "/project")
	assert.ErrorIs(t, err, ErrNoExport)
}
