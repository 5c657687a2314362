package ttlpulse

import "fmt"

const unknownField = "Unknown"

// FormatTransport renders a transport as the human-readable summary shown next
// to each port in the listing.
func FormatTransport(t Transport) string {
	switch t := t.(type) {
	case USBTransport:
		return fmt.Sprintf("%s - %s (%s)",
			orUnknown(t.Manufacturer),
			orUnknown(t.Product),
			orUnknown(t.SerialNumber))
	case PCITransport:
		return "PCI Port"
	case BluetoothTransport:
		return "Bluetooth Port"
	default:
		return unknownField
	}
}

// TransportKind returns a short label for the transport type
func TransportKind(t Transport) string {
	switch t.(type) {
	case USBTransport:
		return "USB"
	case PCITransport:
		return "PCI"
	case BluetoothTransport:
		return "Bluetooth"
	default:
		return unknownField
	}
}

// USBID returns "vid:pid" for USB transports with both IDs known, or "" otherwise
func USBID(t Transport) string {
	usb, ok := t.(USBTransport)
	if !ok || usb.VendorID == "" || usb.ProductID == "" {
		return ""
	}
	return usb.VendorID + ":" + usb.ProductID
}

func orUnknown(s string) string {
	if s == "" {
		return unknownField
	}
	return s
}
