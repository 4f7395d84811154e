// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	log      = logrus.New()
)

// rootCmd is the lz4block entry point; subcommands register themselves onto
// it from their own init functions.
var rootCmd = &cobra.Command{
	Use:   "lz4block",
	Short: "Compress and decompress LZ4 block-format data",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(lvl)
		return nil
	},
}

// Execute runs the root command, logging and exiting non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("lz4block failed")
		os.Exit(1)
	}
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
}
