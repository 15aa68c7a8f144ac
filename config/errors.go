/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import "errors"

// Sentinel errors for configuration loading.
var (
	// ErrConfigNotFound indicates the project root has no nuxt config file.
	ErrConfigNotFound = errors.New("no nuxt config file found")

	// ErrConfigLoad indicates the configuration could not be read or understood.
	ErrConfigLoad = errors.New("failed to load nuxt config")

	// ErrSyntax indicates the config file does not parse.
	ErrSyntax = errors.New("syntax error in config file")

	// ErrNoExport indicates the config file exports no object literal.
	ErrNoExport = errors.New("config file has no exported configuration object")
)
