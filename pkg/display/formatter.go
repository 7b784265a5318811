package display

import (
	"errors"

	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/config"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/sample"
)

// Mode selects how a sample is rendered on the serial output.
type Mode uint8

const (
	// ModeDecimal sends the sample bytes verbatim.
	ModeDecimal Mode = Mode(config.ModeDecimal)
	// ModeBinary sends a "Bits: ..." text line.
	ModeBinary Mode = Mode(config.ModeBinary)
)

// BinaryLineLen is the length of a rendered ModeBinary line without newline.
const BinaryLineLen = len(bitsPrefix) + sample.FrameSize*8 + sample.FrameSize - 1

const bitsPrefix = "Bits: "

// ErrShortBuffer is returned when dst cannot hold the rendered output.
var ErrShortBuffer = errors.New("display: output buffer too small")

// String returns a short name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeDecimal:
		return "dec"
	case ModeBinary:
		return "bin"
	default:
		return "?"
	}
}

// ModeFromConfig maps a stored InitialMode to a Mode, falling back to ModeDecimal.
func ModeFromConfig(v uint8) Mode {
	if v == config.ModeBinary {
		return ModeBinary
	}
	return ModeDecimal
}

// Render appends the body for f in the given mode to dst without growing it.
// The trailing newline is not part of the body.
//
//	ModeDecimal: the FrameSize raw bytes
//	ModeBinary:  "Bits: 10101011 00010010 00000000 11111111"
func Render(dst []byte, mode Mode, f sample.Frame) ([]byte, error) {
	if mode != ModeBinary {
		if cap(dst)-len(dst) < sample.FrameSize {
			return dst, ErrShortBuffer
		}
		return append(dst, f[:]...), nil
	}

	if cap(dst)-len(dst) < BinaryLineLen {
		return dst, ErrShortBuffer
	}
	dst = append(dst, bitsPrefix...)
	for i, b := range f {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = AppendBits(dst, b)
	}
	return dst, nil
}

// AppendBits appends b as exactly eight binary digits, most significant first.
func AppendBits(dst []byte, b byte) []byte {
	for bit := 7; bit >= 0; bit-- {
		dst = append(dst, '0'+(b>>uint(bit))&1)
	}
	return dst
}
