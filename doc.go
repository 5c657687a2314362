// Package ttlpulse triggers hardware TTL pulses by writing a single 0xFF byte
// to a serial port.
//
// The package discovers the host's serial ports, describes how each one is
// attached, checks a requested device against the current listing and sends
// the pulse. Every operation is synchronous and nothing is retried.
//
// # Port Discovery
//
// List the available ports and render their transport metadata:
//
//	ports, err := ttlpulse.NewSystemDirectory(nil).ListPorts()
//	if err != nil {
//	    log.Fatal(err) // wraps ttlpulse.ErrPortQuery
//	}
//	for _, p := range ports {
//	    fmt.Printf("%s: %s\n", p.Name, ttlpulse.FormatTransport(p.Transport))
//	}
//
// An empty slice with a nil error means no ports are present.
//
// # Sending a Pulse
//
// Validate the device first, then send:
//
//	dir := ttlpulse.NewSystemDirectory(nil)
//	if err := ttlpulse.ValidateDevice(dir, "/dev/ttyUSB0"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := ttlpulse.NewSender().SendPulse("/dev/ttyUSB0", 9600); err != nil {
//	    log.Fatal(err)
//	}
//
// SendPulse always closes the port it opened, including after a failed write.
//
// # Error Handling
//
// Use errors.Is() for error type checking:
//
//	ErrPortQuery      // the host could not enumerate ports
//	ErrNoPorts        // validation found no ports at all
//	ErrDeviceNotFound // validation or open could not find the device
//	ErrOpen           // the port could not be opened
//	ErrWrite          // the pulse byte could not be written
//
// # Platform Support
//
// On Linux, ports are discovered from /dev and classified through sysfs, and
// opened with termios. Other platforms use go.bug.st/serial for both.
package ttlpulse
