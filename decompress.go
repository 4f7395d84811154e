// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

import "io"

// UncompressBlock decompresses src into dst using ctx and returns the number
// of bytes written. Fails with ErrInvalidContext if ctx is nil.
func UncompressBlock(ctx *DecompressContext, dst, src []byte) (int, error) {
	if ctx == nil {
		return 0, ErrInvalidContext
	}
	n, _, err := decompressBlockCore(dst, src)
	return n, err
}

// Decompress decompresses LZ4 block data from src into a buffer of length
// opts.OutLen. Returns ErrOptionsRequired if opts is nil; ErrEmptyInput if
// src is empty. On success returns the decompressed slice (length may be
// less than OutLen if the block's final literal run ended early).
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := decompressWithOptions(src, opts)
	return out, err
}

// DecompressN decompresses LZ4 block data from src and returns the decoded
// slice, the number of input bytes consumed (nRead), and an error. The block
// format has no end marker: decoding succeeds only when the final literal run
// ends exactly at the end of src, so on success nRead is always len(src), and
// bytes appended after a block are parsed as part of it.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	return decompressWithOptions(src, opts)
}

func decompressWithOptions(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil {
		return nil, 0, ErrOptionsRequired
	}
	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}
	if opts.OutLen < 0 {
		return nil, 0, ErrOptionsRequired
	}

	dst := make([]byte, opts.OutLen)
	n, consumed, err := decompressBlockCore(dst, src)
	if err != nil {
		return nil, 0, err
	}
	return dst[:n], consumed, nil
}

// DecompressFromReader reads the full stream then calls Decompress. No
// decoding logic of its own. If opts.MaxInputSize > 0 and more bytes are
// read, returns ErrInputTooLarge.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}

// DecompressInto decompresses src into the caller-provided dst buffer and
// returns the written slice (a view over dst, not a copy).
func DecompressInto(src, dst []byte) ([]byte, error) {
	n, _, err := decompressBlockCore(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecompressNInto is DecompressInto plus the number of input bytes consumed.
func DecompressNInto(src, dst []byte) ([]byte, int, error) {
	n, consumed, err := decompressBlockCore(dst, src)
	if err != nil {
		return nil, 0, err
	}
	return dst[:n], consumed, nil
}

// decompressBlockCore parses sequences from src into dst using the
// fast/safe/terminal literal-copy state machine and the two match-copy
// regimes. It never reads outside src or writes outside dst, and returns
// (bytes written, input bytes consumed, nil) once a terminal (final)
// sequence has been fully consumed.
func decompressBlockCore(dst, src []byte) (outWritten, inConsumed int, err error) {
	inLen := len(src)
	outLen := len(dst)
	inPos := 0
	outPos := 0

	for {
		if inPos >= inLen {
			return 0, 0, ErrInvalidData
		}
		tok := src[inPos]
		inPos++

		litLen := tokenLiteralLen(tok)
		if litLen == 15 {
			// The literal-length extension must end before the last 15 bytes
			// of src, the margin the fast literal copy below relies on.
			ext, lerr := readVarLen(src[:max(inLen-15, 0)], &inPos)
			if lerr != nil {
				return 0, 0, lerr
			}
			litLen += ext
		}

		switch {
		case inPos+litLen+15 <= inLen && outPos+litLen+15 <= outLen:
			wildCopy16(dst[outPos:], src[inPos:], litLen)
		case inPos+litLen+2 < inLen && outPos+litLen <= outLen:
			wildCopy(dst[outPos:], src[inPos:], litLen)
		case inPos+litLen == inLen && outPos+litLen <= outLen:
			wildCopy(dst[outPos:], src[inPos:], litLen)
			inPos += litLen
			outPos += litLen
			return outPos, inPos, nil
		case outPos+litLen > outLen:
			return 0, 0, ErrOutputOverrun
		default:
			return 0, 0, ErrInvalidData
		}
		inPos += litLen
		outPos += litLen

		if inPos+2 > inLen {
			return 0, 0, ErrInvalidData
		}
		off := readOffset(src[inPos:])
		inPos += 2
		if off == 0 || outPos-off < 0 {
			return 0, 0, ErrInvalidData
		}

		m := tokenMatchLen(tok) + minMatch
		if tokenMatchLen(tok) == 15 {
			ext, merr := readVarLen(src, &inPos)
			if merr != nil {
				return 0, 0, merr
			}
			m += ext
		}

		if m <= off && outPos+m+15 <= outLen {
			copyMatchFast(dst, outPos, off, m)
		} else if cerr := copyMatch(dst, outPos, off, m); cerr != nil {
			return 0, 0, cerr
		}
		outPos += m
	}
}
