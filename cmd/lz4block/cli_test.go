// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressDecompress_RoundTripThroughFiles(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "payload.txt")
	want := []byte("the quick brown fox jumps over the lazy dog, repeated. ")
	for i := 0; i < 200; i++ {
		want = append(want, want[:56]...)
	}
	require.NoError(t, os.WriteFile(srcPath, want, 0o644))

	compressLevel = 9
	require.NoError(t, compressFile(srcPath))

	compressedPath := srcPath + ".lz4b"
	require.FileExists(t, compressedPath)

	decompressSuffix = ".lz4b"
	require.NoError(t, decompressFile(compressedPath))

	got, err := os.ReadFile(srcPath)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCompressFile_MissingInput(t *testing.T) {
	err := compressFile(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestDecompressFile_TruncatedHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.lz4b")
	require.NoError(t, os.WriteFile(path, []byte{0x01, 0x02}, 0o644))

	decompressSuffix = ".lz4b"
	err := decompressFile(path)
	require.Error(t, err)
}

func TestBenchCommand_PrintsATableRow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench-input.txt")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("lz4block"), 1024), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"bench", "--iterations", "1", path})
	require.NoError(t, rootCmd.Execute())

	require.Contains(t, out.String(), "LEVEL")
	require.Contains(t, out.String(), "RATIO")
}
