/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the console logger used by relativize.
// Output can be redirected or silenced for tests and dry runs.
package logger

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu sync.Mutex

	// Default logs to stderr. Set to io.Discard for silent mode.
	output  io.Writer = os.Stderr
	logger  *log.Logger
	verbose bool
)

func init() {
	logger = log.New(output, "", 0)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = log.New(output, "", 0)
}

// SetVerbose enables Debug output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	current().Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	current().Printf(format, args...)
}

// Debug logs a debug message when verbose output is enabled.
func Debug(format string, args ...any) {
	mu.Lock()
	v := verbose
	mu.Unlock()
	if v {
		current().Printf("debug: "+format, args...)
	}
}

func current() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}
