// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lz4block

/*
Package lz4block implements the LZ4 block format: a byte-oriented,
byte-aligned dictionary coder tuned for very high encode and decode
throughput rather than maximum ratio.

The format is a sequence of tokens, each followed by an optional literal
run, a two-byte offset, and an optional match run. There is no framing
(no magic number, no checksum, no multi-block stream support) — this
package compresses and decompresses single, independent blocks. Framing,
cross-block dictionaries, and streaming belong in a layer above this
package.

# Decompress

OutLen is required (use DecompressOptions). From a byte slice:

	out, err := lz4block.Decompress(compressed, lz4block.DefaultDecompressOptions(expectedLen))

To get the number of input bytes consumed:

	out, nRead, err := lz4block.DecompressN(compressed, lz4block.DefaultDecompressOptions(expectedLen))
	// on success nRead == len(compressed): a block has no end marker and
	// decodes only when it ends exactly at the end of its input

From an io.Reader:

	out, err := lz4block.DecompressFromReader(r, lz4block.DefaultDecompressOptions(expectedLen))

# Compress

Options may be nil (default level 1). Level 0 stores literals verbatim;
1-9 search for matches with increasing effort:

	out, err := lz4block.Compress(data, nil)
	out, err := lz4block.Compress(data, &lz4block.CompressOptions{Level: 9})

# Contexts

Callers doing many blocks back to back can avoid repeated hash-table
allocation by acquiring a context directly and reusing it:

	ctx, err := lz4block.NewCompressContext(nil)
	defer ctx.Close()
	n, err := lz4block.CompressBlock(ctx, dst, src, 9)
*/
package lz4block
