package display

import (
	"bytes"
	"testing"

	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/sample"
)

func TestRenderBinary(t *testing.T) {
	tests := []struct {
		frame sample.Frame
		want  string
	}{
		{sample.Frame{0xAB, 0x12, 0x00, 0xFF}, "Bits: 10101011 00010010 00000000 11111111"},
		{sample.Frame{1, 1, 1, 1}, "Bits: 00000001 00000001 00000001 00000001"},
		{sample.Sentinel, "Bits: 00000001 00000010 00000011 00000100"},
		{sample.Frame{0x80, 0x40, 0x20, 0x10}, "Bits: 10000000 01000000 00100000 00010000"},
	}

	var buf [64]byte
	for _, tt := range tests {
		got, err := Render(buf[:0], ModeBinary, tt.frame)
		if err != nil {
			t.Fatalf("Render(%v) failed: %v", tt.frame, err)
		}
		if string(got) != tt.want {
			t.Errorf("Render(%v): expected %q, got %q", tt.frame, tt.want, got)
		}
		if len(got) != BinaryLineLen {
			t.Errorf("Render(%v): expected length %d, got %d", tt.frame, BinaryLineLen, len(got))
		}
	}
}

func TestRenderDecimalIsRaw(t *testing.T) {
	var buf [64]byte
	frame := sample.Frame{0xAB, 0x12, 0x00, 0xFF}

	got, err := Render(buf[:0], ModeDecimal, frame)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.Equal(got, []byte{0xAB, 0x12, 0x00, 0xFF}) {
		t.Errorf("Expected raw bytes, got % x", got)
	}
}

func TestRenderDoesNotGrow(t *testing.T) {
	small := make([]byte, 0, BinaryLineLen-1)
	got, err := Render(small, ModeBinary, sample.Frame{})
	if err != ErrShortBuffer {
		t.Fatalf("Expected ErrShortBuffer, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected dst untouched, got %q", got)
	}

	tiny := make([]byte, 0, 3)
	if _, err := Render(tiny, ModeDecimal, sample.Frame{}); err != ErrShortBuffer {
		t.Errorf("Expected ErrShortBuffer for raw mode, got %v", err)
	}

	exact := make([]byte, 0, BinaryLineLen)
	got, err = Render(exact, ModeBinary, sample.Frame{})
	if err != nil {
		t.Fatalf("Exact-size buffer should fit, got %v", err)
	}
	if &got[0] != &exact[:1][0] {
		t.Error("Render reallocated the buffer")
	}
}

func TestBinaryLineFitsScratch(t *testing.T) {
	// The serial scratch buffer is 64 bytes; the longest line must fit.
	if BinaryLineLen > 64 {
		t.Fatalf("Binary line (%d bytes) exceeds scratch buffer", BinaryLineLen)
	}
}

func TestAppendBits(t *testing.T) {
	tests := []struct {
		in   byte
		want string
	}{
		{0x00, "00000000"},
		{0xFF, "11111111"},
		{0x05, "00000101"},
		{0xA0, "10100000"},
	}
	for _, tt := range tests {
		if got := string(AppendBits(nil, tt.in)); got != tt.want {
			t.Errorf("AppendBits(0x%02x): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestModeFromConfig(t *testing.T) {
	if ModeFromConfig(0) != ModeDecimal {
		t.Error("0 should map to ModeDecimal")
	}
	if ModeFromConfig(1) != ModeBinary {
		t.Error("1 should map to ModeBinary")
	}
	if ModeFromConfig(9) != ModeDecimal {
		t.Error("Unknown values should fall back to ModeDecimal")
	}
	var zero Mode
	if zero != ModeDecimal {
		t.Error("Zero Mode should be ModeDecimal")
	}
}
