/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"math"
)

// ErrArgument is wrapped by every error caused by command-line input
var ErrArgument = errors.New("invalid arguments")

var (
	ErrConflictingFlags = fmt.Errorf("%w: --device and --list cannot be used together", ErrArgument)
	ErrEmptyDevice      = fmt.Errorf("%w: --device requires a non-empty name", ErrArgument)
	ErrZeroBaudRate     = fmt.Errorf("%w: --baudrate must be a positive integer", ErrArgument)
	ErrBaudRateRange    = fmt.Errorf("%w: --baudrate must not exceed %d", ErrArgument, MaxBaudRate)
	ErrNoArguments      = fmt.Errorf("%w: no arguments given", ErrArgument)
)

// MaxBaudRate is the largest rate that fits the port configuration on every platform
const MaxBaudRate = math.MaxInt32

// Mode is what a single invocation does
type Mode int

const (
	ModeListPorts Mode = iota
	ModeSendPulse
)

func (m Mode) String() string {
	switch m {
	case ModeListPorts:
		return "list-ports"
	case ModeSendPulse:
		return "send-pulse"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Args is the raw command-line input after flag parsing. DeviceSet reports
// whether --device appeared at all, independent of its value.
type Args struct {
	Device    string
	DeviceSet bool
	List      bool
	BaudRate  uint32
}

// Intent is the normalized request resolved from Args. Device and BaudRate
// are only meaningful for ModeSendPulse.
type Intent struct {
	Mode     Mode
	Device   string
	BaudRate uint32
}

// Resolve turns raw arguments into exactly one Intent.
//
// --device and --list conflict. --list, or the absence of --device, selects
// port listing. Anything else sends a pulse to the named device.
func Resolve(args Args) (Intent, error) {
	if args.DeviceSet && args.List {
		return Intent{}, ErrConflictingFlags
	}
	if args.BaudRate == 0 {
		return Intent{}, ErrZeroBaudRate
	}
	if args.BaudRate > MaxBaudRate {
		return Intent{}, ErrBaudRateRange
	}

	if args.List || !args.DeviceSet {
		return Intent{Mode: ModeListPorts}, nil
	}

	if args.Device == "" {
		return Intent{}, ErrEmptyDevice
	}

	return Intent{
		Mode:     ModeSendPulse,
		Device:   args.Device,
		BaudRate: args.BaudRate,
	}, nil
}
