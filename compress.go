// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lz4block

package lz4block

// CompressBound returns the worst-case output size for compressing an input
// of n bytes, or 0 if n is negative or exceeds maxBlockSize. An encoder
// given at least this much output space for valid input never fails with
// ErrOutputOverrun.
func CompressBound(n int) int {
	if n < 0 || n > maxBlockSize {
		return 0
	}
	return 1 + n + extBytes(n)
}

// CompressBlock compresses src into dst using ctx's hash table at the given
// level (negative coerced to 1, >9 coerced to 9), and returns the number of
// bytes written. Fails with ErrInvalidContext if ctx is nil,
// ErrInputTooLargeForBlock if src exceeds maxBlockSize, or ErrOutputOverrun
// if dst is too small.
func CompressBlock(ctx *CompressContext, dst, src []byte, level int) (int, error) {
	if ctx == nil {
		return 0, ErrInvalidContext
	}
	if len(src) > maxBlockSize {
		return 0, ErrInputTooLargeForBlock
	}
	return compressBlockCore(dst, src, ctx.finder, resolveLevel(level))
}

// Compress compresses src with a pooled context sized to CompressBound(len(src)).
// opts may be nil (uses default level 1).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if len(src) > maxBlockSize {
		return nil, ErrInputTooLargeForBlock
	}

	finder := acquireMatchFinder()
	defer releaseMatchFinder(finder)

	dst := make([]byte, CompressBound(len(src)))
	n, err := compressBlockCore(dst, src, finder, resolveLevel(opts.Level))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// compressBlockCore is the exponential-skip encoder. It never reads outside
// src or writes outside dst.
func compressBlockCore(dst, src []byte, finder *matchFinder, params levelParams) (int, error) {
	inLen := len(src)

	if params.acceleration == 0 || inLen < 13 {
		return emitLiteralsOnly(dst, 0, src, 0)
	}

	finder.reset()

	endLimit := inLen - 13
	endMatch := inLen - lastLiterals

	inLast := 0
	inPtr := 0
	finder.insert(src, inPtr)
	inPtr++

	initialStep := params.acceleration << accelerationShift
	stepSize := initialStep
	step := 1
	outPos := 0

	for inPtr <= endLimit {
		candidate := finder.updateAndProbe(src, inPtr)
		if !isValidCandidate(src, candidate, inPtr) {
			inPtr += step
			step = stepSize >> accelerationShift
			stepSize++
			continue
		}

		extraLimit := endMatch - (inPtr + 4)
		if extraLimit < 0 {
			extraLimit = 0
		}
		extra := matchCount(src[inPtr+4:], src[candidate+4:], extraLimit)

		literalsLength := inPtr - inLast
		fullLength := 1 + extBytes(literalsLength) + literalsLength + 2 + extBytes(extra) + 5
		if outPos+fullLength > len(dst) {
			return 0, ErrOutputOverrun
		}

		dst[outPos] = packToken(min(literalsLength, 15), min(extra, 15))
		outPos++
		if literalsLength >= 15 {
			outPos = writeVarLen(dst, outPos, literalsLength-15)
		}
		if literalsLength > 0 {
			wildCopy8(dst[outPos:], src[inLast:], literalsLength)
			outPos += literalsLength
		}

		writeOffset(dst[outPos:], inPtr-candidate)
		outPos += 2
		if extra >= 15 {
			outPos = writeVarLen(dst, outPos, extra-15)
		}

		nextPtr := inPtr + 4 + extra

		if params.thorough {
			reindexMatchInterior(finder, src, inPtr, nextPtr, initialStep)
		}

		inLast = nextPtr
		inPtr = nextPtr
		stepSize = initialStep
		step = 1
	}

	tailPos, err := emitLiteralsOnly(dst, outPos, src, inLast)
	if err != nil {
		return 0, err
	}
	return tailPos, nil
}

// reindexMatchInterior walks forward from just after the match's start
// (or nextPtr-maxOffset, whichever is later) to nextPtr, inserting every
// visited position into the hash table with the same accelerating skip
// schedule used by the main loop. This lets later scans find matches that
// overlap the tail of the match just emitted.
func reindexMatchInterior(finder *matchFinder, src []byte, inPtr, nextPtr, initialStep int) {
	start := nextPtr - maxOffset
	if inPtr+1 > start {
		start = inPtr + 1
	}

	limit := len(src) - 4
	stepSize := initialStep
	step := 1
	for p := start; p < nextPtr; {
		if p > limit {
			return
		}
		finder.insert(src, p)
		p += step
		step = stepSize >> accelerationShift
		stepSize++
	}
}

// emitLiteralsOnly appends the final all-literals sequence (no offset, no
// match part) covering src[start:], using a plain bounded copy since no
// further sequence bytes follow it in the buffer to guarantee wildcopy slack.
func emitLiteralsOnly(dst []byte, outPos int, src []byte, start int) (int, error) {
	literalsLength := len(src) - start
	fullLength := 1 + extBytes(literalsLength) + literalsLength
	if outPos+fullLength > len(dst) {
		return 0, ErrOutputOverrun
	}

	dst[outPos] = packToken(min(literalsLength, 15), 0)
	outPos++
	if literalsLength >= 15 {
		outPos = writeVarLen(dst, outPos, literalsLength-15)
	}
	if literalsLength > 0 {
		wildCopy(dst[outPos:], src[start:], literalsLength)
		outPos += literalsLength
	}
	return outPos, nil
}
