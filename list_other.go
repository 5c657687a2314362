//go:build !linux

package ttlpulse

import (
	"strings"

	"go.bug.st/serial/enumerator"
)

func (d *SystemDirectory) listPorts() ([]PortDescriptor, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}

	ports := make([]PortDescriptor, 0, len(details))
	for _, p := range details {
		ports = append(ports, PortDescriptor{
			Name:      p.Name,
			Transport: transportFromDetails(p),
		})
	}
	return ports, nil
}

// transportFromDetails maps enumerator metadata onto a Transport. The
// enumerator does not report manufacturers.
func transportFromDetails(p *enumerator.PortDetails) Transport {
	switch {
	case p.IsUSB:
		return USBTransport{
			VendorID:     p.VID,
			ProductID:    p.PID,
			Product:      p.Product,
			SerialNumber: p.SerialNumber,
		}
	case strings.Contains(strings.ToLower(p.Name), "bluetooth"):
		return BluetoothTransport{}
	default:
		return UnknownTransport{}
	}
}
