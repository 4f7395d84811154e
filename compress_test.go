package lz4block

import (
	"bytes"
	"fmt"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, lz4 block test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "near-min-match", data: []byte("abcabca")},
		{name: "long-literal-run", data: bytes.Repeat([]byte("qwzxjk"), 50)},
	}
}

func TestCompressDecompress_RoundTripAcrossLevels(t *testing.T) {
	levels := []int{0, 1, 2, 5, 8, 9}

	for _, in := range testInputSet() {
		for _, level := range levels {
			name := fmt.Sprintf("%s/level-%d", in.name, level)
			t.Run(name, func(t *testing.T) {
				cmp, err := Compress(in.data, &CompressOptions{Level: level})
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}
				if bound := CompressBound(len(in.data)); len(cmp) > bound {
					t.Fatalf("compressed length %d exceeds CompressBound %d", len(cmp), bound)
				}

				out, err := Decompress(cmp, DefaultDecompressOptions(len(in.data)))
				if err != nil {
					t.Fatalf("Decompress failed: %v", err)
				}
				if !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
				}

				outReader, err := DecompressFromReader(bytes.NewReader(cmp), DefaultDecompressOptions(len(in.data)))
				if err != nil {
					t.Fatalf("DecompressFromReader failed: %v", err)
				}
				if !bytes.Equal(outReader, in.data) {
					t.Fatalf("reader round-trip mismatch: got=%d want=%d", len(outReader), len(in.data))
				}
			})
		}
	}
}

func TestCompress_DefaultAndExplicitLevels(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)

	cmpDefault, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress default failed: %v", err)
	}

	cmpLevel1, err := Compress(data, &CompressOptions{Level: 1})
	if err != nil {
		t.Fatalf("Compress level=1 failed: %v", err)
	}

	if !bytes.Equal(cmpDefault, cmpLevel1) {
		t.Fatal("default compression should match level=1")
	}
}

func TestCompress_LevelZeroIsStoreMode(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 64)

	cmp, err := Compress(data, &CompressOptions{Level: 0})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	// Store mode never emits an offset, so the stream is exactly the
	// token(s) plus verbatim literal bytes with no match sequences.
	want, err := emitLiteralsOnly(make([]byte, CompressBound(len(data))), 0, data, 0)
	if err != nil {
		t.Fatalf("emitLiteralsOnly failed: %v", err)
	}
	if len(cmp) != want {
		t.Fatalf("store-mode length = %d, want %d", len(cmp), want)
	}

	out, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("store-mode round-trip mismatch")
	}
}

func TestCompress_LevelClamping(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 4096)

	cmpNeg, err := Compress(data, &CompressOptions{Level: -100})
	if err != nil {
		t.Fatalf("Compress level=-100 failed: %v", err)
	}
	cmpOne, err := Compress(data, &CompressOptions{Level: 1})
	if err != nil {
		t.Fatalf("Compress level=1 failed: %v", err)
	}
	if !bytes.Equal(cmpNeg, cmpOne) {
		t.Fatal("negative level should be clamped to level 1")
	}

	cmpHigh, err := Compress(data, &CompressOptions{Level: 100})
	if err != nil {
		t.Fatalf("Compress level=100 failed: %v", err)
	}
	cmpNine, err := Compress(data, &CompressOptions{Level: 9})
	if err != nil {
		t.Fatalf("Compress level=9 failed: %v", err)
	}
	if !bytes.Equal(cmpHigh, cmpNine) {
		t.Fatal("level > 9 should be clamped to level 9")
	}
}

func TestCompressBlock_WithContext(t *testing.T) {
	ctx, err := NewCompressContext(nil)
	if err != nil {
		t.Fatalf("NewCompressContext failed: %v", err)
	}
	defer ctx.Close()

	data := bytes.Repeat([]byte("context-reuse-payload"), 300)
	dst := make([]byte, CompressBound(len(data)))

	n, err := CompressBlock(ctx, dst, data, 9)
	if err != nil {
		t.Fatalf("CompressBlock failed: %v", err)
	}

	decCtx, err := NewDecompressContext(nil)
	if err != nil {
		t.Fatalf("NewDecompressContext failed: %v", err)
	}
	defer decCtx.Close()

	out := make([]byte, len(data))
	m, err := UncompressBlock(decCtx, out, dst[:n])
	if err != nil {
		t.Fatalf("UncompressBlock failed: %v", err)
	}
	if !bytes.Equal(out[:m], data) {
		t.Fatal("context round-trip mismatch")
	}

	// A second block through the same context must not see stale hash entries.
	data2 := bytes.Repeat([]byte("second-block-payload"), 300)
	dst2 := make([]byte, CompressBound(len(data2)))
	n2, err := CompressBlock(ctx, dst2, data2, 9)
	if err != nil {
		t.Fatalf("CompressBlock (second) failed: %v", err)
	}
	out2 := make([]byte, len(data2))
	m2, err := UncompressBlock(decCtx, out2, dst2[:n2])
	if err != nil {
		t.Fatalf("UncompressBlock (second) failed: %v", err)
	}
	if !bytes.Equal(out2[:m2], data2) {
		t.Fatal("second context round-trip mismatch")
	}
}

func TestCompressBlock_NilContext(t *testing.T) {
	_, err := CompressBlock(nil, nil, nil, 1)
	if err != ErrInvalidContext {
		t.Fatalf("expected ErrInvalidContext, got %v", err)
	}
}

func TestCompressBound_InputExceedsBlockSize(t *testing.T) {
	// CompressBound itself must reject oversized input.
	if got := CompressBound(maxBlockSize + 1); got != 0 {
		t.Fatalf("CompressBound(maxBlockSize+1) = %d, want 0", got)
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(0))
	f.Add([]byte("hello world"), uint8(1))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(9))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(7))

	f.Fuzz(func(t *testing.T, data []byte, level uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cmp, err := Compress(data, &CompressOptions{Level: int(level % 10)})
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
