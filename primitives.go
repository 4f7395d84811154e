// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

import (
	"encoding/binary"
	"math/bits"
)

// load32 reads an unaligned little-endian 32-bit window starting at p[0].
// Callers only ever compare two loads against each other, so the choice of
// byte order only needs to be internally consistent, not architecture-specific.
func load32(p []byte) uint32 {
	return binary.LittleEndian.Uint32(p)
}

// readOffset reads the two-byte little-endian match offset at p[0:2].
func readOffset(p []byte) int {
	return int(binary.LittleEndian.Uint16(p))
}

// writeOffset writes v (must fit in 16 bits) as a little-endian pair at p[0:2].
func writeOffset(p []byte, v int) {
	binary.LittleEndian.PutUint16(p, uint16(v)) //nolint:gosec // G115: v <= maxOffset by construction
}

// matchCount returns the number of bytes by which a[:] and b[:] agree,
// starting from their first bytes, bounded so it never reads past limit
// bytes from a's start. a and b must have at least limit bytes available.
func matchCount(a, b []byte, limit int) int {
	count := 0
	for count+4 <= limit {
		diff := load32(a[count:]) ^ load32(b[count:])
		if diff != 0 {
			return count + (bits.TrailingZeros32(diff) >> 3)
		}
		count += 4
	}
	for count < limit && a[count] == b[count] {
		count++
	}
	return count
}

// wildCopy copies exactly n bytes from src to dst. src and dst must not overlap.
func wildCopy(dst, src []byte, n int) {
	copy(dst[:n], src[:n])
}

// wildCopy8 copies n bytes from src to dst, possibly overrunning to the next
// multiple of 8. Callers must guarantee at least 7 bytes of slack past n at
// both src and dst (i.e. both slices extend to the end of a larger backing
// array, never a tightly bounded sub-slice).
func wildCopy8(dst, src []byte, n int) {
	i := 0
	for i < n {
		copy(dst[i:i+8], src[i:i+8])
		i += 8
	}
}

// wildCopy16 copies n bytes from src to dst, possibly overrunning to the next
// multiple of 16. Callers must guarantee at least 15 bytes of slack past n at
// both src and dst.
func wildCopy16(dst, src []byte, n int) {
	i := 0
	for i < n {
		copy(dst[i:i+16], src[i:i+16])
		i += 16
	}
}
