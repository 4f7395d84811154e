// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// LZ4 block-format constants: size bounds, token layout, and hash parameters.
// Translated from LLZ4.h's #define constants.

// Block and window size bounds.
const (
	maxBlockSize = 0x7E000000 // largest input a single block may encode
	maxOffset    = 0xFFFF     // largest legal back-reference distance
)

// Token layout: literal length occupies the high nibble, match length the low nibble.
const (
	minMatch          = 4  // on-wire match length is always minMatch + (low nibble, extended)
	runMask           = 15 // high/low nibble value meaning "read an extension"
	lastLiterals      = 5  // trailing bytes of a block that must remain literal
	mfLimit           = 12 // trailing bytes reserved past the match-search limit
	accelerationShift = 6  // log2 of the skip-schedule granularity (64-miss steps)
)

// hashLog is the number of bits used to index the match-finder hash table;
// hashTableSize is its size, and hashMultiplier is LZ4's known-good multiplicative
// hash constant for 4-byte windows.
const (
	hashLog        = 14
	hashTableSize  = 1 << hashLog
	hashMultiplier = 2654435761
)
