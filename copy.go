// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// copyMatch copies a match of length m at backward distance off into
// dst[outPos:outPos+m], choosing between the non-overlapping and
// overlapping regimes required by the LZ4 format (overlap happens when
// m > off: the source range for the tail of the match is itself being
// produced by this same copy, realizing run-length expansion).
//
// Bounds are checked before any byte is written: a partial write before
// reporting ErrOutputOverrun would violate the "output is only meaningful
// on nil error" contract.
func copyMatch(dst []byte, outPos, off, m int) error {
	srcPos := outPos - off
	if srcPos < 0 {
		return ErrInvalidData
	}
	if outPos+m > len(dst) {
		return ErrOutputOverrun
	}

	if off >= m {
		copy(dst[outPos:outPos+m], dst[srcPos:srcPos+m])
		return nil
	}

	// Overlapping: seed with one full distance chunk, then grow the copied
	// region exponentially by copying from the output written so far. The
	// source and destination windows both live in dst and move in lockstep,
	// so each doubling step is still a flat, non-overlapping copy call.
	copy(dst[outPos:outPos+off], dst[srcPos:outPos])
	copied := off
	for copied < m {
		n := copy(dst[outPos+copied:outPos+m], dst[outPos:outPos+copied])
		copied += n
	}

	return nil
}

// copyMatchFast performs the same copy as copyMatch's non-overlapping branch
// but via the 16-byte wild copy, for callers that have already proven at
// least 15 bytes of slack at outPos+m in dst.
func copyMatchFast(dst []byte, outPos, off, m int) {
	srcPos := outPos - off
	wildCopy16(dst[outPos:], dst[srcPos:], m)
}
