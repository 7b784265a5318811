// Package status drives the heartbeat LED.
package status

import "time"

// DefaultHold is how long the LED stays in each state.
const DefaultHold = 20 * time.Millisecond

// Pin is a digital output. machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// Indicator pulses a pin once per loop iteration. The pulse is also what
// paces the loop.
type Indicator struct {
	pin   Pin
	sleep func(time.Duration)
	hold  time.Duration
}

// NewIndicator returns an Indicator that blocks in sleep between edges.
// A non-positive hold uses DefaultHold.
func NewIndicator(pin Pin, sleep func(time.Duration), hold time.Duration) *Indicator {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Indicator{
		pin:   pin,
		sleep: sleep,
		hold:  hold,
	}
}

// Pulse drives the pin high, waits, drives it low, waits.
func (i *Indicator) Pulse() {
	i.pin.High()
	i.sleep(i.hold)
	i.pin.Low()
	i.sleep(i.hold)
}

// Period is the time one Pulse takes.
func (i *Indicator) Period() time.Duration {
	return 2 * i.hold
}
