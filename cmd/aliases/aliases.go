/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package aliases provides the aliases command for relativize.
package aliases

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"bennypowers.dev/relativize/alias"
	"bennypowers.dev/relativize/cmd/project"
	"bennypowers.dev/relativize/fs"
)

// Cmd is the aliases cobra command.
var Cmd = &cobra.Command{
	Use:   "aliases",
	Short: "Print the resolved alias table",
	Long:  `Print every alias token and the directory it resolves to, in the order the rewriter applies them.`,
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}

func run(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error reading format flag: %w", err)
	}

	cfg, err := project.RunConfig(fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	return printTable(cmd.OutOrStdout(), cfg.Aliases, format)
}

func printTable(w io.Writer, table *alias.Table, format string) error {
	switch format {
	case "json":
		type entry struct {
			Token  string `json:"token"`
			Target string `json:"target"`
		}
		out := make([]entry, 0, table.Len())
		for _, e := range table.Entries() {
			out = append(out, entry{Token: e.Token, Target: e.Target})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "text":
		for _, e := range table.Entries() {
			fmt.Fprintf(w, "%-12s %s\n", e.Token, e.Target)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
