/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/allbin/ttlpulse"
	"github.com/allbin/ttlpulse/internal/tui/styles"
)

// runSend validates the requested device and sends one pulse to it. A device
// that is not listed is reported with a hint to run --list, and no port is
// opened.
func (a *app) runSend(w io.Writer, intent Intent) error {
	if err := ttlpulse.ValidateDevice(a.directory, intent.Device); err != nil {
		listFlag := styles.FlagStyle.Render("--list")
		switch {
		case errors.Is(err, ttlpulse.ErrNoPorts):
			fmt.Fprintf(w, "\nNo serial ports found! Run the program with %s to list all available ports.\n\n",
				listFlag)
			return silentError{err}
		case errors.Is(err, ttlpulse.ErrDeviceNotFound):
			fmt.Fprintf(w, "\nThe COM device '%s' is not available. Run the program with %s to list all available ports.\n\n",
				styles.DeviceStyle.Render(intent.Device), listFlag)
			return silentError{err}
		default:
			return err
		}
	}

	if err := a.sender.SendPulse(intent.Device, intent.BaudRate); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s TTL pulse sent to COM device '%s' at the baudrate of %s.\n\n",
		styles.SuccessStyle.Render("✓"),
		styles.DeviceStyle.Render(intent.Device),
		styles.BaudStyle.Render(strconv.FormatUint(uint64(intent.BaudRate), 10)))
	return nil
}
