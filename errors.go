package ttlpulse

import "errors"

// Predefined error types for robust error handling
var (
	// Port discovery errors
	ErrPortQuery      = errors.New("failed to query serial ports")
	ErrNoPorts        = errors.New("no serial ports found")
	ErrDeviceNotFound = errors.New("serial device not found")

	// Port I/O errors
	ErrOpen             = errors.New("failed to open serial port")
	ErrPermissionDenied = errors.New("permission denied accessing serial device")
	ErrDeviceInUse      = errors.New("serial device already in use")
	ErrWrite            = errors.New("failed to write to serial port")
	ErrPortClosed       = errors.New("serial port is closed")
	ErrInvalidBaudRate  = errors.New("invalid baud rate")
	ErrInvalidConfig    = errors.New("invalid serial configuration")
)
