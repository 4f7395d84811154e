// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lz4block

package lz4block

import (
	"errors"
	"fmt"
)

// Sentinel errors for compression and decompression.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is not returned by the decoder; a read that would pass the
	// end of input is reported as ErrInvalidData.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when an operation would write past the output buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrInvalidData is returned when the decoder encounters a malformed sequence
	// (zero offset, out-of-window back-reference, or truncated mid-sequence).
	ErrInvalidData = errors.New("invalid compressed data")
	// ErrOptionsRequired is returned when Decompress is called with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrInputTooLargeForBlock is returned when CompressBlock/Compress receive an
	// input larger than maxBlockSize. It wraps ErrInvalidParams, so
	// errors.Is(err, ErrInvalidParams) also holds for it.
	ErrInputTooLargeForBlock = fmt.Errorf("%w: input exceeds maximum LZ4 block size", ErrInvalidParams)
	// ErrInvalidContext is returned when a compress/decompress method is called on a nil context.
	ErrInvalidContext = errors.New("invalid or nil context")
	// ErrInvalidParams is returned for inconsistent caller-supplied parameters,
	// such as an Allocator with exactly one of Alloc/Free set.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrCompressInternal is not returned by any function of this package; the
	// encoder's only failure, a too-small dst, is reported as ErrOutputOverrun.
	ErrCompressInternal = errors.New("internal compressor error")
)
