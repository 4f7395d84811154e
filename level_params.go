// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// levelParams holds the two knobs that vary by compression level: the
// initial skip-schedule acceleration and whether the encoder re-indexes a
// match's interior after emitting it.
type levelParams struct {
	acceleration int  // 0 disables matching entirely (store mode)
	thorough     bool // re-index skipped positions inside a just-emitted match
}

// levelTable maps level 0-9 to its (acceleration, thorough) pair.
var levelTable = [10]levelParams{
	{acceleration: 0, thorough: false}, // 0: store, no search
	{acceleration: 8, thorough: false}, // 1
	{acceleration: 7, thorough: false}, // 2
	{acceleration: 6, thorough: false}, // 3
	{acceleration: 5, thorough: false}, // 4
	{acceleration: 4, thorough: false}, // 5
	{acceleration: 3, thorough: false}, // 6
	{acceleration: 2, thorough: false}, // 7
	{acceleration: 1, thorough: false}, // 8
	{acceleration: 1, thorough: true},  // 9
}

// resolveLevel clamps a caller-supplied level to [0,9] (negative -> 1, >9 -> 9)
// and returns its parameters.
func resolveLevel(level int) levelParams {
	switch {
	case level < 0:
		level = 1
	case level > 9:
		level = 9
	}
	return levelTable[level]
}
