//go:build rp2040

package board

import (
	"fmt"
	"machine"
	"time"

	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/config"

	"github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/delay"
)

// Board holds the configured handles. They are handed to the loop once and
// never shared.
type Board struct {
	UART *uartx.UART
	SPI  *machine.SPI
	LED  machine.Pin
}

var taken bool

// Init checks the clock, configures SPI0, UART0 and the LED, and returns
// the handles. It succeeds at most once per boot.
func Init(cfg config.DeviceConfig) (*Board, error) {
	if taken {
		return nil, ErrTaken
	}
	taken = true

	if hz := machine.CPUFrequency(); hz != SystemClockHz {
		return nil, fmt.Errorf("%w: %d Hz", ErrClock, hz)
	}

	spi := machine.SPI0
	if err := spi.Configure(machine.SPIConfig{
		Frequency: cfg.SPIFrequency,
		SCK:       machine.Pin(SPISCKPin),
		SDO:       machine.Pin(SPISDOPin),
		SDI:       machine.Pin(SPISDIPin),
		Mode:      cfg.SPIMode,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSPI, err)
	}

	uart := uartx.UART0
	if err := uart.Configure(uartx.UARTConfig{
		BaudRate: cfg.BaudRate,
		TX:       machine.Pin(UARTTXPin),
		RX:       machine.Pin(UARTRXPin),
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUART, err)
	}
	if err := uart.SetFormat(DataBits, StopBits, uartx.ParityNone); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUART, err)
	}

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.Low()

	return &Board{
		UART: uart,
		SPI:  spi,
		LED:  led,
	}, nil
}

// Sleep blocks for d. Short waits busy-loop on the cycle counter
// calibrated to the system clock; longer ones fall back to time.Sleep.
func (b *Board) Sleep(d time.Duration) {
	delay.Sleep(d)
}
