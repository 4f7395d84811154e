// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/lz4block"
)

var (
	decompressSuffix      string
	decompressConcurrency int
)

var decompressCmd = &cobra.Command{
	Use:   "decompress FILE...",
	Short: "Decompress one or more .lz4b files produced by the compress subcommand",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, _ := errgroup.WithContext(cmd.Context())
		g.SetLimit(resolveConcurrency(decompressConcurrency))

		for _, path := range args {
			path := path
			g.Go(func() error {
				return decompressFile(path)
			})
		}
		return g.Wait()
	},
}

func init() {
	decompressCmd.Flags().StringVar(&decompressSuffix, "suffix", ".lz4b", "suffix stripped from the input filename to produce the output filename")
	decompressCmd.Flags().IntVar(&decompressConcurrency, "concurrency", 0, "worker pool size (0 = GOMAXPROCS)")
	rootCmd.AddCommand(decompressCmd)
}

func decompressFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(raw) < fileHeaderSize {
		return fmt.Errorf("%s: too short to contain a size header", path)
	}

	outLen := int(binary.LittleEndian.Uint64(raw))
	block := raw[fileHeaderSize:]

	ctx, err := lz4block.NewDecompressContext(nil)
	if err != nil {
		return fmt.Errorf("new context for %s: %w", path, err)
	}
	defer ctx.Close()

	dst := make([]byte, outLen)
	n, err := lz4block.UncompressBlock(ctx, dst, block)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", path, err)
	}

	outPath := strings.TrimSuffix(path, decompressSuffix)
	if outPath == path {
		outPath = path + ".out"
	}
	if err := os.WriteFile(outPath, dst[:n], 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	log.WithFields(logrus.Fields{
		"input":  path,
		"output": outPath,
		"outLen": n,
	}).Info("decompressed")
	return nil
}
