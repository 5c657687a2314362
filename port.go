package ttlpulse

// PortDescriptor describes one serial port found during a single enumeration.
// Name is case-sensitive and is the identifier passed to Open.
type PortDescriptor struct {
	Name      string
	Transport Transport
}

// Transport identifies how a serial port is attached to the host. The set of
// implementations is closed: USBTransport, PCITransport, BluetoothTransport and
// UnknownTransport. A nil Transport is treated as unknown.
type Transport interface {
	transport()
}

// USBTransport holds the metadata of a USB serial adapter. Empty fields were
// not reported by the host.
type USBTransport struct {
	VendorID     string
	ProductID    string
	Manufacturer string
	Product      string
	SerialNumber string
}

// PCITransport is a port on a PCI or PCIe card.
type PCITransport struct{}

// BluetoothTransport is an RFCOMM or other Bluetooth serial link.
type BluetoothTransport struct{}

// UnknownTransport is a port whose attachment could not be determined.
type UnknownTransport struct{}

func (USBTransport) transport()       {}
func (PCITransport) transport()       {}
func (BluetoothTransport) transport() {}
func (UnknownTransport) transport()   {}

// Ensure all transports implement Transport at compile time
var (
	_ Transport = USBTransport{}
	_ Transport = PCITransport{}
	_ Transport = BluetoothTransport{}
	_ Transport = UnknownTransport{}
)

// TransportOf returns the port's transport, or UnknownTransport if none was set
func (p PortDescriptor) TransportOf() Transport {
	if p.Transport == nil {
		return UnknownTransport{}
	}
	return p.Transport
}
