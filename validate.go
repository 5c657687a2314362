package ttlpulse

import (
	"errors"
	"fmt"
)

// ValidateDevice checks that device is present in the directory's current
// listing. The match is exact and case-sensitive.
//
// Returns:
//   - nil if the device is listed
//   - an error wrapping ErrPortQuery if the directory could not be queried
//   - ErrNoPorts if the directory is empty
//   - an error wrapping ErrDeviceNotFound if no port has that name
func ValidateDevice(dir Directory, device string) error {
	ports, err := dir.ListPorts()
	if err != nil {
		if errors.Is(err, ErrPortQuery) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrPortQuery, err)
	}

	if len(ports) == 0 {
		return ErrNoPorts
	}

	for _, p := range ports {
		if p.Name == device {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrDeviceNotFound, device)
}
