// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// packToken builds a sequence's token byte from clipped literal and match
// lengths. Both arguments are clipped to [0,15] by the caller before
// packing (the encoder never passes unclipped lengths here).
func packToken(litLen, matchLenExt int) byte {
	// #nosec G115 -- both operands are pre-clipped to [0,15] by callers.
	return byte((litLen&runMask)<<4 | (matchLenExt & runMask))
}

// tokenLiteralLen returns the token's high-nibble literal length (0-15; 15 means "read extension").
func tokenLiteralLen(tok byte) int {
	return int(tok >> 4)
}

// tokenMatchLen returns the token's low-nibble match length field (0-15; 15 means "read extension").
func tokenMatchLen(tok byte) int {
	return int(tok & 0x0F)
}

// extBytes returns the number of base-255 continuation bytes needed to
// encode a token-extended length field whose value is n: 0 when n < 15
// (no extension read/written at all), otherwise the same count writeVarLen
// would emit for n-15. This single integer-division formula covers both
// cases without a branch, mirroring the reference encoder's bound math.
func extBytes(n int) int {
	return (n + 240) / 255
}

// writeVarLen writes a base-255 variable-length encoding of n (n must be >= 0)
// into dst starting at pos and returns the position past what it wrote.
// Callers (the encoder) have already verified dst has enough room via a
// fullLength bound computed from extBytes.
func writeVarLen(dst []byte, pos, n int) int {
	for n >= 255 {
		dst[pos] = 0xFF
		pos++
		n -= 255
	}
	dst[pos] = byte(n) //nolint:gosec // G115: n < 255 here
	pos++
	return pos
}

// readVarLen reads a base-255 continuation sequence starting at src[*pos],
// advances *pos past it, and returns the accumulated value. Fails with
// ErrInvalidData if src is exhausted before a terminating byte (<255) is read.
func readVarLen(src []byte, pos *int) (int, error) {
	total := 0
	for {
		if *pos >= len(src) {
			return 0, ErrInvalidData
		}
		b := src[*pos]
		*pos++
		total += int(b)
		if b != 0xFF {
			return total, nil
		}
	}
}
