//go:build rp2040

package main

import (
	"machine"
	"time"

	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/board"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/config"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/display"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/loop"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/sample"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/status"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/storage"
	"github.com/tuffrabit/tinygo-picosample-rp2040/serial"
)

// Logs go to USB CDC via println; UART0 carries only samples.

func main() {
	cfg := loadConfig()

	b, err := board.Init(cfg)
	if err != nil {
		halt(err)
	}

	mainSerial := serial.NewSerial(b.UART)
	hold := time.Duration(cfg.PulseMs) * time.Millisecond

	l := loop.New(
		&mainSerial,
		sample.NewSource(b.SPI),
		status.NewIndicator(b.LED, b.Sleep, hold),
		loop.Config{
			Mode:        display.ModeFromConfig(cfg.InitialMode),
			Mirror:      display.NewManager(),
			MirrorEvery: loop.DefaultMirrorEvery,
		},
	)

	println("[boot] running, mode", l.Mode().String())
	l.Run()
}

// loadConfig reads boot settings from flash. Any storage problem falls
// back to the defaults; a missing or outdated record is rewritten.
func loadConfig() config.DeviceConfig {
	mgr, err := storage.New(machine.Flash, true)
	if err != nil {
		println("[store] mount failed, using defaults:", err.Error())
		return config.Default()
	}
	defer mgr.Close()

	cfg, err := storage.LoadOrDefault(mgr)
	switch err {
	case nil:
		println("[store] loaded device config")
	case storage.ErrNotFound, storage.ErrVersionMismatch:
		println("[store] seeding defaults:", err.Error())
		if err := mgr.SaveDevice(&cfg); err != nil {
			println("[store] save failed:", err.Error())
		}
	default:
		println("[store] using defaults:", err.Error())
	}
	return cfg
}

// halt parks the firmware after a startup failure. The LED stays dark and
// UART0 stays silent.
func halt(err error) {
	for {
		println("[boot] halted:", err.Error())
		time.Sleep(time.Hour)
	}
}
