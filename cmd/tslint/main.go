// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

// Command tslint lints TypeScript sources with the bundled rule set and can
// mechanically apply the suggested rewrites.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "tslint",
		Short: "TypeScript linter with mechanical fixes",
		Long:  "tslint parses TypeScript sources, reports anti-patterns such as callable-only interfaces, and can rewrite them in place.",
	}

	// Global flags.
	rootCmd.PersistentFlags().String("workdir", ".", "Root directory lint paths resolve against")
	rootCmd.PersistentFlags().String("format", "stylish", "Output format: stylish or json")
	rootCmd.PersistentFlags().Bool("fix", false, "Apply fixes to disk")
	rootCmd.PersistentFlags().Bool("diff", false, "Print fixes as a diff instead of reporting")
	rootCmd.PersistentFlags().Bool("cache", false, "Reuse results for unchanged files")
	rootCmd.PersistentFlags().Bool("changed", false, "Lint only files the git working tree touched")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file")

	// Bind flags to viper.
	viper.BindPFlag("workdir", rootCmd.PersistentFlags().Lookup("workdir"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("fix", rootCmd.PersistentFlags().Lookup("fix"))
	viper.BindPFlag("diff", rootCmd.PersistentFlags().Lookup("diff"))
	viper.BindPFlag("cache", rootCmd.PersistentFlags().Lookup("cache"))
	viper.BindPFlag("changed", rootCmd.PersistentFlags().Lookup("changed"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))

	// Env vars: TSLINT_FORMAT, TSLINT_CACHE, etc.
	viper.SetEnvPrefix("TSLINT")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".tslint")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	// Add commands.
	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tslint version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tslint %s\n", version)
		},
	}
}
