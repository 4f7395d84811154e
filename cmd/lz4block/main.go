// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

// Command lz4block compresses and decompresses files using the LZ4 block
// format implemented by the lz4block package.
package main

func main() {
	Execute()
}
