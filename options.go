// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lz4block

package lz4block

// CompressOptions configures compression.
type CompressOptions struct {
	// Level selects the acceleration/thorough-search tradeoff (0-9). Negative
	// values are coerced to 1; values above 9 are coerced to 9.
	Level int
}

// DefaultCompressOptions returns options for level 1.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: 1}
}

// DecompressOptions configures decompression.
// OutLen is required (expected decompressed size); MaxInputSize limits reads
// when using DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the expected decompressed size (required for buffer allocation and safety).
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}
