//go:build !oled

// Package display renders samples for the serial output, and optionally
// mirrors them on an SSD1306 OLED for bench debugging.
//
// This is the no-op mirror used unless the oled build tag is set:
//
//	tinygo build -tags=oled -target=pico -o firmware.uf2 .
package display

import "github.com/tuffrabit/tinygo-picosample-rp2040/pkg/sample"

// Manager is a no-op stub when the oled build tag is absent.
type Manager struct{}

// NewManager returns nil when the oled build tag is absent.
// The loop skips a nil mirror.
func NewManager() *Manager {
	return nil
}

// ShowSample is a no-op without the oled build tag.
func (m *Manager) ShowSample(mode Mode, f sample.Frame) {}
