// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/woozymasta/lz4block"
)

var benchIterations int

var benchCmd = &cobra.Command{
	Use:   "bench FILE",
	Short: "Report compression ratio and throughput for FILE across levels 0-9",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LEVEL\tIN\tOUT\tRATIO\tTIME/OP")

		for level := 0; level <= 9; level++ {
			opts := &lz4block.CompressOptions{Level: level}

			start := time.Now()
			var cmp []byte
			for i := 0; i < benchIterations; i++ {
				cmp, err = lz4block.Compress(data, opts)
				if err != nil {
					return fmt.Errorf("compress level %d: %w", level, err)
				}
			}
			perOp := time.Since(start) / time.Duration(benchIterations)

			ratio := float64(len(data)) / float64(len(cmp))
			fmt.Fprintf(w, "%d\t%d\t%d\t%.2f\t%s\n", level, len(data), len(cmp), ratio, perOp)
		}

		return w.Flush()
	},
}

func init() {
	benchCmd.Flags().IntVar(&benchIterations, "iterations", 10, "number of compress iterations per level")
	rootCmd.AddCommand(benchCmd)
}
