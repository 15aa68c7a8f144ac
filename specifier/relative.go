/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"path/filepath"
	"strings"
)

// Relative returns the specifier that reaches target from fromDir.
// Targets below fromDir get a "./" prefix so they are not mistaken for
// bare package names. The result always uses forward slashes.
func Relative(fromDir, target string) string {
	rel, err := filepath.Rel(fromDir, target)
	if err != nil {
		return filepath.ToSlash(target)
	}

	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return rel
	}
	return "./" + rel
}

// Join appends a specifier subpath to an absolute directory.
func Join(dir, subpath string) string {
	return filepath.Join(dir, filepath.FromSlash(subpath))
}
