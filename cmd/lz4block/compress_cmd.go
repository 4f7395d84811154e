// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/woozymasta/lz4block"
)

// fileHeaderSize is the length, in bytes, of the little-endian uint64
// original-size prefix this CLI writes ahead of each LZ4 block. The block
// format itself carries no framing, so a container this thin is the
// simplest way for a single-file tool to recover OutLen on decompress.
const fileHeaderSize = 8

var (
	compressLevel       int
	compressConcurrency int
)

var compressCmd = &cobra.Command{
	Use:   "compress FILE...",
	Short: "Compress one or more files to LZ4 block format",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, _ := errgroup.WithContext(cmd.Context())
		g.SetLimit(resolveConcurrency(compressConcurrency))

		for _, path := range args {
			path := path
			g.Go(func() error {
				return compressFile(path)
			})
		}
		return g.Wait()
	},
}

func init() {
	compressCmd.Flags().IntVar(&compressLevel, "level", 1, "compression level (0-9; negative clamps to 1, >9 clamps to 9)")
	compressCmd.Flags().IntVar(&compressConcurrency, "concurrency", 0, "worker pool size (0 = GOMAXPROCS)")
	rootCmd.AddCommand(compressCmd)
}

// resolveConcurrency maps a user-supplied worker count to a valid errgroup
// limit, defaulting to GOMAXPROCS when n <= 0.
func resolveConcurrency(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// compressFile runs on its own goroutine with its own context, per the
// package's thread-safety contract that a single context is never shared
// across goroutines.
func compressFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ctx, err := lz4block.NewCompressContext(nil)
	if err != nil {
		return fmt.Errorf("new context for %s: %w", path, err)
	}
	defer ctx.Close()

	dst := make([]byte, fileHeaderSize+lz4block.CompressBound(len(data)))
	binary.LittleEndian.PutUint64(dst, uint64(len(data)))
	n, err := lz4block.CompressBlock(ctx, dst[fileHeaderSize:], data, compressLevel)
	if err != nil {
		return fmt.Errorf("compress %s: %w", path, err)
	}

	outPath := path + ".lz4b"
	if err := os.WriteFile(outPath, dst[:fileHeaderSize+n], 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	log.WithFields(logrus.Fields{
		"input":  path,
		"output": outPath,
		"inLen":  len(data),
		"outLen": n,
	}).Info("compressed")
	return nil
}
