//go:build !linux

package ttlpulse

import (
	"errors"
	"fmt"

	"go.bug.st/serial"
)

// port wraps a go.bug.st/serial port
type port struct {
	serial.Port
}

// Ensure port implements Port interface at compile time
var _ Port = (*port)(nil)

// Open opens device with the given line settings
func Open(device string, opts ...Option) (Port, error) {
	config, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	mode := &serial.Mode{
		BaudRate: config.BaudRate,
		DataBits: config.DataBits,
		StopBits: serial.OneStopBit,
		Parity:   serial.NoParity,
	}
	if config.StopBits == 2 {
		mode.StopBits = serial.TwoStopBits
	}
	switch config.Parity {
	case ParityOdd:
		mode.Parity = serial.OddParity
	case ParityEven:
		mode.Parity = serial.EvenParity
	}

	p, err := serial.Open(device, mode)
	if err != nil {
		return nil, openError(device, err)
	}
	return &port{Port: p}, nil
}

// openError maps go.bug.st port error codes onto the package's sentinel errors
func openError(device string, err error) error {
	var portErr *serial.PortError
	if !errors.As(err, &portErr) {
		return fmt.Errorf("failed to open %s: %w", device, err)
	}

	switch portErr.Code() {
	case serial.PortNotFound:
		return fmt.Errorf("%s: %w", device, ErrDeviceNotFound)
	case serial.PermissionDenied:
		return fmt.Errorf("%s: %w", device, ErrPermissionDenied)
	case serial.PortBusy:
		return fmt.Errorf("%s: %w", device, ErrDeviceInUse)
	case serial.InvalidSpeed:
		return fmt.Errorf("%s: %w", device, ErrInvalidBaudRate)
	default:
		return fmt.Errorf("failed to open %s: %w", device, err)
	}
}

// Close drains pending output, then closes the port. The port is closed even
// if draining fails.
func (p *port) Close() error {
	drainErr := p.Port.Drain()
	if drainErr != nil {
		drainErr = fmt.Errorf("failed to drain output: %w", drainErr)
	}
	return errors.Join(drainErr, p.Port.Close())
}
