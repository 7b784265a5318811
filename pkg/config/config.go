// Package config defines the boot settings record for the sampler.
// The record is a fixed-size struct with a zero-allocation binary layout.
package config

import (
	"encoding/binary"
	"errors"
)

// CurrentVersion is the settings format version.
// Bump this when making breaking changes to the layout.
// When firmware boots and finds a different version in flash, defaults are used.
const CurrentVersion uint16 = 1

// Size is the encoded size of DeviceConfig in bytes.
const Size = 16

// Display modes as stored in InitialMode.
const (
	ModeDecimal uint8 = iota
	ModeBinary
)

// Defaults for the serial link, the sample bus and the heartbeat.
const (
	DefaultBaudRate     uint32 = 115200
	DefaultSPIFrequency uint32 = 16_000_000
	DefaultSPIMode      uint8  = 0
	DefaultPulseMs      uint8  = 20
)

// DeviceConfig holds settings read once at boot.
// Total size: 16 bytes
// Layout:
//
//	[0-1]:   Version (uint16)
//	[2-5]:   BaudRate (uint32)
//	[6-9]:   SPIFrequency (uint32)
//	[10]:    SPIMode (uint8)
//	[11]:    PulseMs (uint8)
//	[12]:    InitialMode (uint8)
//	[13]:    Reserved1 (uint8)
//	[14-15]: Reserved2 (uint16)
type DeviceConfig struct {
	Version      uint16 // Settings format version
	BaudRate     uint32 // UART0 baud rate
	SPIFrequency uint32 // SPI0 clock in Hz
	SPIMode      uint8  // CPOL/CPHA mode 0-3
	PulseMs      uint8  // LED high and low time
	InitialMode  uint8  // Display mode after reset
	Reserved1    uint8  // Padding
	Reserved2    uint16 // Reserved for future use
}

// Errors
var (
	ErrInvalidSize = errors.New("invalid config size")
	ErrBaudRate    = errors.New("baud rate out of range")
	ErrSPIFreq     = errors.New("spi frequency out of range")
	ErrSPIMode     = errors.New("spi mode out of range")
	ErrPulse       = errors.New("pulse length out of range")
	ErrMode        = errors.New("unknown display mode")
)

// Default returns the settings the firmware runs with when nothing is stored.
func Default() DeviceConfig {
	return DeviceConfig{
		Version:      CurrentVersion,
		BaudRate:     DefaultBaudRate,
		SPIFrequency: DefaultSPIFrequency,
		SPIMode:      DefaultSPIMode,
		PulseMs:      DefaultPulseMs,
		InitialMode:  ModeDecimal,
	}
}

// Validate checks the fields against what the RP2040 peripherals accept.
func (d *DeviceConfig) Validate() error {
	// The PL011 divisor tops out at clk_peri/16.
	if d.BaudRate < 1200 || d.BaudRate > 7_812_500 {
		return ErrBaudRate
	}
	// SPI clock is at most clk_peri/2.
	if d.SPIFrequency == 0 || d.SPIFrequency > 62_500_000 {
		return ErrSPIFreq
	}
	if d.SPIMode > 3 {
		return ErrSPIMode
	}
	if d.PulseMs == 0 {
		return ErrPulse
	}
	if d.InitialMode != ModeDecimal && d.InitialMode != ModeBinary {
		return ErrMode
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler for DeviceConfig.
func (d *DeviceConfig) MarshalBinary() ([]byte, error) {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint16(buf[0:], d.Version)
	binary.LittleEndian.PutUint32(buf[2:], d.BaudRate)
	binary.LittleEndian.PutUint32(buf[6:], d.SPIFrequency)
	buf[10] = d.SPIMode
	buf[11] = d.PulseMs
	buf[12] = d.InitialMode
	buf[13] = d.Reserved1
	binary.LittleEndian.PutUint16(buf[14:], d.Reserved2)
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler for DeviceConfig.
func (d *DeviceConfig) UnmarshalBinary(data []byte) error {
	if len(data) < Size {
		return ErrInvalidSize
	}

	d.Version = binary.LittleEndian.Uint16(data[0:])
	d.BaudRate = binary.LittleEndian.Uint32(data[2:])
	d.SPIFrequency = binary.LittleEndian.Uint32(data[6:])
	d.SPIMode = data[10]
	d.PulseMs = data[11]
	d.InitialMode = data[12]
	d.Reserved1 = data[13]
	d.Reserved2 = binary.LittleEndian.Uint16(data[14:])
	return nil
}
