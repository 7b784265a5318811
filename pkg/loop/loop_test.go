package loop

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/display"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/sample"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/status"
	"github.com/tuffrabit/tinygo-picosample-rp2040/serial"
)

// bench wires fakes for every peripheral onto one shared event log.
type bench struct {
	events []string

	reads  [][]byte
	wire   bytes.Buffer
	frames [][]byte
	busErr error
	slept  time.Duration
}

func (b *bench) TryRead(p []byte) int {
	b.events = append(b.events, "poll")
	if len(b.reads) == 0 {
		return 0
	}
	chunk := b.reads[0]
	b.reads = b.reads[1:]
	return copy(p, chunk)
}

func (b *bench) Write(p []byte) (int, error) {
	b.events = append(b.events, "write")
	return b.wire.Write(p)
}

func (b *bench) Tx(w, r []byte) error {
	b.events = append(b.events, "spi")
	if b.busErr != nil {
		return b.busErr
	}
	if len(b.frames) > 0 {
		copy(r, b.frames[0])
		b.frames = b.frames[1:]
	}
	return nil
}

func (b *bench) Transfer(w byte) (byte, error) { return 0, nil }

func (b *bench) High() { b.events = append(b.events, "high") }
func (b *bench) Low()  { b.events = append(b.events, "low") }

func (b *bench) sleep(d time.Duration) {
	b.events = append(b.events, "sleep")
	b.slept += d
}

func newBench(cfg Config) (*bench, *Loop) {
	b := &bench{}
	s := serial.NewSerial(b)
	l := New(&s, sample.NewSource(b), status.NewIndicator(b, b.sleep, 0), cfg)
	return b, l
}

func TestEndToEndBinary(t *testing.T) {
	b, l := newBench(Config{})
	b.reads = [][]byte{[]byte("f")}
	b.frames = [][]byte{{1, 1, 1, 1}}

	l.Step()

	if l.Mode() != display.ModeBinary {
		t.Fatalf("Expected binary mode after 'f', got %s", l.Mode())
	}
	want := "Bits: 00000001 00000001 00000001 00000001\n"
	if got := b.wire.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestDecimalIsDefault(t *testing.T) {
	b, l := newBench(Config{})
	b.frames = [][]byte{{0xAB, 0x12, 0x00, 0xFF}}

	l.Step()

	want := []byte{0xAB, 0x12, 0x00, 0xFF, '\n'}
	if got := b.wire.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Expected % x, got % x", want, got)
	}
}

func TestStepOrder(t *testing.T) {
	b, l := newBench(Config{})
	b.reads = [][]byte{[]byte("hi")}

	l.Step()

	want := []string{
		"poll",
		"write", "write", // info line, newline
		"spi",
		"write", "write", // sample, newline
		"high", "sleep", "low", "sleep",
	}
	if len(b.events) != len(want) {
		t.Fatalf("Expected %v, got %v", want, b.events)
	}
	for i := range want {
		if b.events[i] != want[i] {
			t.Fatalf("Event %d: expected %s, got %s (all: %v)", i, want[i], b.events[i], b.events)
		}
	}
	if b.slept != 40*time.Millisecond {
		t.Errorf("Expected 40ms of delay, got %v", b.slept)
	}
}

func TestTrafficThenSample(t *testing.T) {
	b, l := newBench(Config{Mode: display.ModeBinary})
	b.reads = [][]byte{[]byte("abc")}
	b.frames = [][]byte{{0, 0, 0, 0}}

	l.Step()

	want := "Pico received 3 bytes!\nBits: 00000000 00000000 00000000 00000000\n"
	if got := b.wire.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	if l.Mode() != display.ModeBinary {
		t.Errorf("Traffic changed the mode to %s", l.Mode())
	}
}

func TestFailedReadUsesSentinel(t *testing.T) {
	b, l := newBench(Config{Mode: display.ModeBinary})
	b.busErr = errors.New("spi: bus fault")

	l.Step()

	want := "Bits: 00000001 00000010 00000011 00000100\n"
	if got := b.wire.String(); got != want {
		t.Errorf("Expected sentinel line %q, got %q", want, got)
	}
	last := b.events[len(b.events)-4:]
	if last[0] != "high" || last[2] != "low" {
		t.Errorf("Status pulse missing after failed read: %v", b.events)
	}
}

func TestModeSurvivesIterations(t *testing.T) {
	b, l := newBench(Config{})
	b.reads = [][]byte{[]byte("f"), nil, []byte("q"), []byte("d"), []byte("d")}

	expect := []display.Mode{
		display.ModeBinary,
		display.ModeBinary,
		display.ModeBinary,
		display.ModeDecimal,
		display.ModeDecimal,
	}
	for i, m := range expect {
		l.Step()
		if l.Mode() != m {
			t.Errorf("Iteration %d: expected %s, got %s", i, m, l.Mode())
		}
	}
}

func TestNilMirrorIgnored(t *testing.T) {
	b, l := newBench(Config{Mirror: display.NewManager(), MirrorEvery: 1})
	b.frames = [][]byte{{9, 9, 9, 9}}

	// Without the oled tag NewManager is nil; Step must not touch it.
	l.Step()

	if b.wire.Len() != 5 {
		t.Errorf("Expected one raw sample line, got % x", b.wire.Bytes())
	}
}
