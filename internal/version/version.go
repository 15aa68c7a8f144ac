/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the relativize CLI.
package version

import (
	"runtime/debug"
)

// Version is set at build time via ldflags. When unset, module and VCS
// information embedded by the Go toolchain is used instead.
var Version = "dev"

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion,omitempty"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"buildTime,omitempty"`
	Dirty     bool   `json:"dirty,omitempty"`
}

// Get returns the version string for the application.
func Get() string {
	return Info().Version
}

// Info returns build information for the running binary.
func Info() BuildInfo {
	info := BuildInfo{Version: Version}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.GoVersion = bi.GoVersion
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.time":
			info.BuildTime = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}

	if info.Version == "dev" && info.Commit != "" {
		short := info.Commit
		if len(short) > 7 {
			short = short[:7]
		}
		info.Version = "dev-" + short
		if info.Dirty {
			info.Version += "-dirty"
		}
	}

	return info
}
