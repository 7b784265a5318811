// Package sample reads the fixed 4-byte frame from the SPI bus.
package sample

import (
	"tinygo.org/x/drivers"
)

// FrameSize is the number of bytes read from the bus per iteration.
const FrameSize = 4

// Frame is one sample as clocked in from the bus.
type Frame [FrameSize]byte

// Sentinel is what a frame holds before the bus read. A failed read yields
// it unchanged, so downstream cannot tell it apart from a real sample with
// the same bytes.
var Sentinel = Frame{1, 2, 3, 4}

// Result is the outcome of one bus read: either a Sample or Failed.
type Result struct {
	frame Frame
	err   error
}

// Failed reports whether the read failed.
func (r Result) Failed() bool { return r.err != nil }

// Err is the bus error of a failed read, kept for the debug console only.
func (r Result) Err() error { return r.err }

// Frame returns the sampled bytes, or Sentinel if the read failed.
func (r Result) Frame() Frame {
	if r.err != nil {
		return Sentinel
	}
	return r.frame
}

// Source owns the SPI bus the sample comes from.
type Source struct {
	bus drivers.SPI
}

// NewSource wraps a configured bus. machine.SPI satisfies drivers.SPI.
func NewSource(bus drivers.SPI) *Source {
	return &Source{bus: bus}
}

// Read performs one blocking read-only transfer of FrameSize bytes.
// There is no retry; a failure is reported once in the Result.
func (s *Source) Read() Result {
	buf := Sentinel
	if err := s.bus.Tx(nil, buf[:]); err != nil {
		return Result{frame: Sentinel, err: err}
	}
	return Result{frame: buf}
}
