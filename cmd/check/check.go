/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package check provides the check command for relativize.
package check

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"bennypowers.dev/relativize/cmd/project"
	"bennypowers.dev/relativize/fs"
	"bennypowers.dev/relativize/walker"
)

// ErrNotConverged indicates some files still contain alias specifiers.
var ErrNotConverged = errors.New("files need rewriting")

// Cmd is the check cobra command.
var Cmd = &cobra.Command{
	Use:   "check",
	Short: "Report files that would be rewritten, without writing them",
	Long: `Run the rewrite without touching any file and print a line diff for every
file that would change. Exits with status 1 when at least one file would change,
so CI can enforce that a project only uses relative specifiers.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()

	cfg, err := project.RunConfig(filesystem)
	if err != nil {
		return err
	}
	cfg.DryRun = true

	result, err := walker.Run(filesystem, cfg)
	if err != nil {
		return err
	}

	return report(cmd.OutOrStdout(), result)
}

func report(w io.Writer, result *walker.Result) error {
	for _, c := range result.Changes {
		fmt.Fprint(w, Diff(c.Path, c.Before, c.After))
	}

	if len(result.Changes) > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrNotConverged, len(result.Changes), result.Scanned)
	}

	fmt.Fprintf(w, "%d files checked, nothing to rewrite\n", result.Scanned)
	return nil
}

// Diff renders the changed lines between before and after.
func Diff(path, before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", path, path)

	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}
