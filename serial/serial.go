// Package serial is the command and data channel on UART0.
package serial

import (
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/display"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/protocol"
	"github.com/tuffrabit/tinygo-picosample-rp2040/pkg/sample"
)

const (
	InBufferSize  = 64
	OutBufferSize = 64
)

var newline = []byte{'\n'}

// Port is the UART as the loop sees it. *uartx.UART satisfies it.
type Port interface {
	// TryRead copies whatever is buffered into p and returns at once.
	TryRead(p []byte) int
	// Write blocks until p has been accepted.
	Write(p []byte) (int, error)
}

type Serial struct {
	port      Port
	inBuffer  [InBufferSize]byte
	outBuffer [OutBufferSize]byte
}

func NewSerial(port Port) Serial {
	return Serial{
		port: port,
	}
}

// Poll reads whatever is pending without blocking and acts on it: a
// recognised command byte updates mode, two or more bytes are answered
// with an info line. Only write errors are returned.
func (s *Serial) Poll(mode *display.Mode) error {
	n := s.read()

	cmd := protocol.Parse(s.inBuffer[:n])
	switch cmd.Kind {
	case protocol.KindSelectMode:
		cmd.Apply(mode)
	case protocol.KindTraffic:
		line := must(protocol.AppendReceived(s.outBuffer[:0], cmd.Count))
		return s.writeLine(line)
	}
	return nil
}

// WriteSample renders f in mode and writes it followed by a newline.
func (s *Serial) WriteSample(mode display.Mode, f sample.Frame) error {
	body := must(display.Render(s.outBuffer[:0], mode, f))
	return s.writeLine(body)
}

// read polls the port once. A bogus count is treated as nothing received.
func (s *Serial) read() int {
	n := s.port.TryRead(s.inBuffer[:])
	if n < 0 || n > len(s.inBuffer) {
		return 0
	}
	return n
}

func (s *Serial) writeLine(b []byte) error {
	if _, err := s.port.Write(b); err != nil {
		return err
	}
	_, err := s.port.Write(newline)
	return err
}

// must halts on a formatting error. Every line shape is sized well under
// OutBufferSize, so this only fires on a programming error.
func must(b []byte, err error) []byte {
	if err != nil {
		panic(err.Error())
	}
	return b
}
