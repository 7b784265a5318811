//go:build oled

// Package display renders samples for the serial output, and optionally
// mirrors them on an SSD1306 OLED for bench debugging.
//
// The mirror sits on I2C1 so UART0 keeps GPIO0/GPIO1:
//
//	tinygo build -tags=oled -target=pico -o firmware.uf2 .
package display

import (
	"image/color"
	"machine"
	"time"

	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/sample"

	"tinygo.org/x/drivers/ssd1306"
)

const (
	// I2C configuration
	i2cAddress = 0x3C
	sdaPin     = machine.GPIO2
	sclPin     = machine.GPIO3

	// Display dimensions
	screenWidth  = 128
	screenHeight = 64

	// The yellow band carries the tick, the blue band the sample.
	bandHeight   = 16
	sampleTop    = bandHeight
	sampleHeight = screenHeight - bandHeight

	tickSize = 8
)

// Lit pixel color for the monochrome panel
var white = color.RGBA{255, 255, 255, 255}

// Manager handles the SSD1306 mirror.
type Manager struct {
	device *ssd1306.Device
	i2c    *machine.I2C
	tick   bool
}

// NewManager creates and initializes the mirror.
// Returns nil if initialization fails (non-fatal for debug).
func NewManager() *Manager {
	i2c := machine.I2C1
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: 400000, // 400kHz fast mode
		SCL:       sclPin,
		SDA:       sdaPin,
	}); err != nil {
		println("[oled] i2c config failed:", err.Error())
		return nil
	}

	// Bus stabilization
	time.Sleep(10 * time.Millisecond)

	dev := ssd1306.NewI2C(i2c)
	dev.Configure(ssd1306.Config{
		Address: i2cAddress,
		Width:   screenWidth,
		Height:  screenHeight,
	})
	dev.ClearDisplay()

	return &Manager{
		device: dev,
		i2c:    i2c,
	}
}

// ShowSample draws the frame: four value bars in ModeDecimal, 32 bit
// cells in ModeBinary. A square in the top band flips on every call.
func (m *Manager) ShowSample(mode Mode, f sample.Frame) {
	m.device.ClearBuffer()

	m.tick = !m.tick
	if m.tick {
		m.fill(0, 0, tickSize, tickSize)
	}

	switch mode {
	case ModeBinary:
		m.drawBits(f)
	default:
		m.drawBars(f)
	}

	if err := m.device.Display(); err != nil {
		println("[oled] refresh:", err.Error())
	}
}

// drawBars draws one bar per byte, height proportional to its value.
func (m *Manager) drawBars(f sample.Frame) {
	const slot = screenWidth / sample.FrameSize
	for i, b := range f {
		h := int16(int(b) * sampleHeight / 255)
		if h == 0 {
			continue
		}
		x := int16(i*slot + 2)
		m.fill(x, screenHeight-h, slot-4, h)
	}
}

// drawBits draws 32 cells, most significant bit of byte 0 first.
func (m *Manager) drawBits(f sample.Frame) {
	const cell = screenWidth / (sample.FrameSize * 8)
	for i, b := range f {
		for bit := 0; bit < 8; bit++ {
			if (b>>uint(7-bit))&1 == 0 {
				continue
			}
			x := int16((i*8 + bit) * cell)
			m.fill(x, sampleTop+8, cell-1, sampleHeight-16)
		}
	}
}

func (m *Manager) fill(x, y, w, h int16) {
	m.device.FillRectangle(x, y, w, h, white)
}
