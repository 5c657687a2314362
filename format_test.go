package ttlpulse

import "testing"

func TestFormatTransport(t *testing.T) {
	tests := []struct {
		name      string
		transport Transport
		expected  string
	}{
		{"usb all fields", USBTransport{Manufacturer: "FTDI", Product: "FT232R USB UART", SerialNumber: "A50285BI"}, "FTDI - FT232R USB UART (A50285BI)"},
		{"usb no serial", USBTransport{Manufacturer: "FTDI", Product: "FT232R USB UART"}, "FTDI - FT232R USB UART (Unknown)"},
		{"usb no product", USBTransport{Manufacturer: "FTDI", SerialNumber: "A50285BI"}, "FTDI - Unknown (A50285BI)"},
		{"usb manufacturer only", USBTransport{Manufacturer: "FTDI"}, "FTDI - Unknown (Unknown)"},
		{"usb no manufacturer", USBTransport{Product: "CP2102", SerialNumber: "0001"}, "Unknown - CP2102 (0001)"},
		{"usb product only", USBTransport{Product: "CP2102"}, "Unknown - CP2102 (Unknown)"},
		{"usb serial only", USBTransport{SerialNumber: "0001"}, "Unknown - Unknown (0001)"},
		{"usb empty", USBTransport{}, "Unknown - Unknown (Unknown)"},
		{"usb ids are not shown", USBTransport{VendorID: "0403", ProductID: "6001"}, "Unknown - Unknown (Unknown)"},
		{"pci", PCITransport{}, "PCI Port"},
		{"bluetooth", BluetoothTransport{}, "Bluetooth Port"},
		{"unknown", UnknownTransport{}, "Unknown"},
		{"nil", nil, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatTransport(tt.transport)
			if result != tt.expected {
				t.Errorf("FormatTransport(%#v) = %q, expected %q", tt.transport, result, tt.expected)
			}
			if again := FormatTransport(tt.transport); again != result {
				t.Errorf("FormatTransport is not deterministic: %q then %q", result, again)
			}
		})
	}
}

func TestTransportKind(t *testing.T) {
	tests := []struct {
		transport Transport
		expected  string
	}{
		{USBTransport{}, "USB"},
		{PCITransport{}, "PCI"},
		{BluetoothTransport{}, "Bluetooth"},
		{UnknownTransport{}, "Unknown"},
		{nil, "Unknown"},
	}

	for _, tt := range tests {
		if result := TransportKind(tt.transport); result != tt.expected {
			t.Errorf("TransportKind(%#v) = %q, expected %q", tt.transport, result, tt.expected)
		}
	}
}

func TestUSBID(t *testing.T) {
	tests := []struct {
		transport Transport
		expected  string
	}{
		{USBTransport{VendorID: "0403", ProductID: "6001"}, "0403:6001"},
		{USBTransport{VendorID: "0403"}, ""},
		{USBTransport{}, ""},
		{PCITransport{}, ""},
		{nil, ""},
	}

	for _, tt := range tests {
		if result := USBID(tt.transport); result != tt.expected {
			t.Errorf("USBID(%#v) = %q, expected %q", tt.transport, result, tt.expected)
		}
	}
}
