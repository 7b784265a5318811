// Package protocol interprets what arrives on the command UART.
//
// A poll that returns exactly one byte is a command:
//
//	'd' (0x64) - send samples as raw bytes
//	'f' (0x66) - send samples as a "Bits: ..." line
//
// Any other single byte is ignored. A poll that returns two or more bytes
// is plain traffic and is answered with "Pico received N bytes!". There is
// no acknowledgement and no framing.
package protocol

import (
	"errors"
	"strconv"

	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/display"
)

const (
	// Command bytes (PC → Device)
	CmdDecimal = 'd'
	CmdBinary  = 'f'
)

const (
	receivedPrefix = "Pico received "
	receivedSuffix = " bytes!"
)

var ErrShortBuffer = errors.New("protocol: output buffer too small")

// Kind classifies one poll of the command UART.
type Kind uint8

const (
	KindNone       Kind = iota // nothing received, or an unknown single byte
	KindSelectMode             // a recognised single-byte command
	KindTraffic                // two or more bytes
)

// Command is the interpretation of one poll.
type Command struct {
	Kind  Kind
	Mode  display.Mode // valid for KindSelectMode
	Count int          // valid for KindTraffic
}

// Parse interprets the bytes read by a single poll. Only in is looked at,
// never the rest of the caller's buffer.
func Parse(in []byte) Command {
	switch len(in) {
	case 0:
		return Command{Kind: KindNone}
	case 1:
		switch in[0] {
		case CmdDecimal:
			return Command{Kind: KindSelectMode, Mode: display.ModeDecimal}
		case CmdBinary:
			return Command{Kind: KindSelectMode, Mode: display.ModeBinary}
		default:
			return Command{Kind: KindNone}
		}
	default:
		return Command{Kind: KindTraffic, Count: len(in)}
	}
}

// Apply updates mode for a KindSelectMode command and reports whether it did.
// Selection is absolute: applying the same command twice is a no-op.
func (c Command) Apply(mode *display.Mode) bool {
	if c.Kind != KindSelectMode {
		return false
	}
	*mode = c.Mode
	return true
}

// AppendReceived appends "Pico received {n} bytes!" to dst without growing it.
func AppendReceived(dst []byte, n int) ([]byte, error) {
	var num [20]byte
	digits := strconv.AppendInt(num[:0], int64(n), 10)

	if cap(dst)-len(dst) < len(receivedPrefix)+len(digits)+len(receivedSuffix) {
		return dst, ErrShortBuffer
	}
	dst = append(dst, receivedPrefix...)
	dst = append(dst, digits...)
	dst = append(dst, receivedSuffix...)
	return dst, nil
}
