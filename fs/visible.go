/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package fs

import (
	"io/fs"
	"strings"
)

// HiddenMarker is the leading character of hidden entry names.
const HiddenMarker = "."

// IsHidden reports whether an entry name is hidden.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, HiddenMarker)
}

// VisibleEntries lists dir and drops hidden entries.
func VisibleEntries(filesystem FileSystem, dir string) ([]fs.DirEntry, error) {
	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	visible := entries[:0]
	for _, e := range entries {
		if !IsHidden(e.Name()) {
			visible = append(visible, e)
		}
	}
	return visible, nil
}
