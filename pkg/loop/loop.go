// Package loop is the firmware's single polling loop.
//
// Every iteration runs, in order and each to completion:
//
//	serial poll → sample read → sample write → LED pulse
//
// The loop owns every peripheral handle and the display mode; nothing else
// touches them, so there is no locking.
package loop

import (
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/display"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/sample"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/status"
	"github.com/tuffrabit/tinygo-picosample-rp2040/serial"
)

// DefaultMirrorEvery is how many iterations pass between OLED refreshes.
// At 40 ms per iteration this is about once a second.
const DefaultMirrorEvery = 25

type Loop struct {
	serial    *serial.Serial
	source    *sample.Source
	indicator *status.Indicator

	mirror      *display.Manager
	mirrorEvery uint32

	mode display.Mode
	iter uint32
}

// Config holds the optional parts of a Loop.
type Config struct {
	Mode        display.Mode     // mode after reset
	Mirror      *display.Manager // nil disables the OLED mirror
	MirrorEvery int              // iterations between refreshes, <= 0 means DefaultMirrorEvery
}

// New takes ownership of the handles produced at boot.
func New(s *serial.Serial, src *sample.Source, ind *status.Indicator, cfg Config) *Loop {
	every := cfg.MirrorEvery
	if every <= 0 {
		every = DefaultMirrorEvery
	}
	return &Loop{
		serial:      s,
		source:      src,
		indicator:   ind,
		mirror:      cfg.Mirror,
		mirrorEvery: uint32(every),
		mode:        cfg.Mode,
	}
}

// Mode is the display mode the next sample will be written in.
func (l *Loop) Mode() display.Mode { return l.mode }

// Run iterates forever.
func (l *Loop) Run() {
	for {
		l.Step()
	}
}

// Step runs one iteration.
func (l *Loop) Step() {
	if err := l.serial.Poll(&l.mode); err != nil {
		println("[loop] poll write:", err.Error())
	}

	// A failed read is indistinguishable from a sentinel sample downstream.
	frame := l.source.Read().Frame()

	if err := l.serial.WriteSample(l.mode, frame); err != nil {
		println("[loop] sample write:", err.Error())
	}

	if l.mirror != nil && l.iter%l.mirrorEvery == 0 {
		l.mirror.ShowSample(l.mode, frame)
	}
	l.iter++

	l.indicator.Pulse()
}
