// Package board claims and configures the Pico's peripherals once at boot.
//
// Wiring (RP2040 GPIO numbers):
//
//	UART0  TX=0  RX=1             115200 8N1 command/data channel
//	SPI0   SCK=6 SDO=7 SDI=4      16 MHz mode 0 sample bus
//	LED    25                     heartbeat
package board

import "errors"

// SystemClockHz is the clk_sys the TinyGo runtime sets up from the 12 MHz
// crystal through PLL_SYS before main runs.
const SystemClockHz = 125_000_000

// Pin assignments
const (
	UARTTXPin = 0
	UARTRXPin = 1
	SPISDIPin = 4
	SPISCKPin = 6
	SPISDOPin = 7
	LEDPin    = 25
)

// UART frame format
const (
	DataBits = 8
	StopBits = 1
)

// Startup errors. Every one of them is fatal.
var (
	ErrTaken = errors.New("board: peripherals already taken")
	ErrClock = errors.New("board: unexpected system clock")
	ErrSPI   = errors.New("board: spi0 configure failed")
	ErrUART  = errors.New("board: uart0 configure failed")
)
