package ttlpulse

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// PulseByte is the single byte written to trigger a pulse. With all bits set
// the line only drops for the start bit, which devices read as one edge.
const PulseByte byte = 0xFF

// Port is an open serial port
type Port interface {
	Write(data []byte) (int, error)
	Close() error
}

// Opener opens a serial port. Open is the host implementation.
type Opener func(device string, opts ...Option) (Port, error)

// Sender writes TTL pulses to serial ports
type Sender struct {
	open     Opener
	lineOpts []Option
	logger   *slog.Logger
}

// SenderOption configures a Sender
type SenderOption func(*Sender)

// WithOpener replaces the function used to open ports
func WithOpener(open Opener) SenderOption {
	return func(s *Sender) {
		s.open = open
	}
}

// WithLineSettings sets framing options applied on every open. The baud rate
// passed to SendPulse takes precedence over any WithBaudRate given here.
func WithLineSettings(opts ...Option) SenderOption {
	return func(s *Sender) {
		s.lineOpts = append(s.lineOpts, opts...)
	}
}

// WithLogger sets the logger for diagnostic output
func WithLogger(logger *slog.Logger) SenderOption {
	return func(s *Sender) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSender returns a Sender that opens host ports unless configured otherwise
func NewSender(opts ...SenderOption) *Sender {
	s := &Sender{
		open:   Open,
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SendPulse opens device at baudRate, writes PulseByte once and closes the
// port. The port is closed on every path after a successful open; a close
// failure is joined onto the returned error.
//
// Errors wrap ErrOpen or ErrWrite. Nothing is retried.
func (s *Sender) SendPulse(device string, baudRate uint32) (err error) {
	s.logger.Debug("opening serial port", "device", device, "baudrate", baudRate)

	opts := append(append([]Option(nil), s.lineOpts...), WithBaudRate(int(baudRate)))
	port, err := s.open(device, opts...)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrOpen, device, err)
	}
	defer func() {
		if cerr := port.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", device, cerr))
		}
		s.logger.Debug("serial port released", "device", device)
	}()

	n, err := port.Write([]byte{PulseByte})
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, device, err)
	}
	if n != 1 {
		return fmt.Errorf("%w %s: %w", ErrWrite, device, io.ErrShortWrite)
	}

	s.logger.Debug("pulse written", "device", device)
	return nil
}
