/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for relativize.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/relativize/cmd/aliases"
	"bennypowers.dev/relativize/cmd/check"
	"bennypowers.dev/relativize/cmd/project"
	"bennypowers.dev/relativize/cmd/version"
	"bennypowers.dev/relativize/fs"
	"bennypowers.dev/relativize/internal/logger"
	"bennypowers.dev/relativize/walker"
)

var rootCmd = &cobra.Command{
	Use:   "relativize",
	Short: "Rewrite Nuxt path aliases into relative import paths",
	Long: `relativize rewrites alias specifiers such as '~/utils/x' or '@/components/A.vue'
into relative paths in every .ts, .vue, .scss and .js file under the project's
source directory.

Run it from the project root, next to nuxt.config.{ts,js}. Aliases come from
the framework defaults (~, @, ~~, @@, assets, public), the config's alias
option and the optional .config/relativize.{yaml,yml,json} file.

With --absolute, root-absolute specifiers like "/components/Foo.vue" are made
relative too, when their first segment names a top-level project directory.
The flag can also be set with RELATIVIZE_ABSOLUTE=true.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initEnv)

	rootCmd.PersistentFlags().BoolP("absolute", "a", false, "Also rewrite root-absolute specifiers that start with a project directory")
	_ = viper.BindPFlag("absolute", rootCmd.PersistentFlags().Lookup("absolute"))

	rootCmd.AddCommand(aliases.Cmd)
	rootCmd.AddCommand(check.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func initEnv() {
	viper.SetEnvPrefix("relativize")
	viper.AutomaticEnv()
	logger.SetVerbose(viper.GetBool("verbose"))
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()

	cfg, err := project.RunConfig(filesystem)
	if err != nil {
		return err
	}

	_, err = walker.Run(filesystem, cfg)
	return err
}
