//go:build linux

package ttlpulse

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Device name patterns for communication-capable serial devices
var serialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^ttyUSB\d+$`), // USB serial adapters
	regexp.MustCompile(`^ttyACM\d+$`), // USB CDC/ACM devices
	regexp.MustCompile(`^ttyS\d+$`),   // Standard serial ports
	regexp.MustCompile(`^ttyAMA\d+$`), // ARM/Raspberry Pi serial
	regexp.MustCompile(`^ttymxc\d+$`), // i.MX serial ports
	regexp.MustCompile(`^ttyO\d+$`),   // OMAP serial ports
	regexp.MustCompile(`^ttySAC\d+$`), // Samsung serial ports
	regexp.MustCompile(`^ttyTHS\d+$`), // Tegra serial ports
	regexp.MustCompile(`^rfcomm\d+$`), // Bluetooth RFCOMM links
}

// Virtual terminals and other non-serial devices
var excludePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^tty\d+$`),
	regexp.MustCompile(`^console$`),
	regexp.MustCompile(`^ptmx$`),
	regexp.MustCompile(`^pty.*$`),
	regexp.MustCompile(`^pts/.*$`),
}

func (d *SystemDirectory) listPorts() ([]PortDescriptor, error) {
	devDir := d.devDir()
	names, err := scanDevDir(devDir)
	if err != nil {
		return nil, err
	}

	ports := make([]PortDescriptor, 0, len(names))
	for _, name := range names {
		ports = append(ports, PortDescriptor{
			Name:      filepath.Join(devDir, name),
			Transport: classifyPort(d.sysfsRoot(), name),
		})
	}
	return ports, nil
}

// scanDevDir returns the names of serial character devices in devDir
func scanDevDir(devDir string) ([]string, error) {
	entries, err := os.ReadDir(devDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if matchesExcludePattern(name) || !matchesSerialPattern(name) {
			continue
		}
		if isCharacterDevice(filepath.Join(devDir, name)) {
			names = append(names, name)
		}
	}
	return names, nil
}

func matchesSerialPattern(name string) bool {
	for _, pattern := range serialPatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

func matchesExcludePattern(name string) bool {
	for _, pattern := range excludePatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}

// isCharacterDevice checks if the given path is a character device
func isCharacterDevice(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// classifyPort determines the transport of a tty from sysfs.
//
// The tty's device link is resolved and its ancestors are walked toward the
// sysfs root. The first directory carrying idVendor is the USB device; a
// directory whose subsystem is pci marks a PCI card. Ports without a device
// link (virtual or unsupported) are reported as unknown.
func classifyPort(sysfsRoot, name string) Transport {
	if strings.HasPrefix(name, "rfcomm") {
		return BluetoothTransport{}
	}

	root, err := filepath.EvalSymlinks(sysfsRoot)
	if err != nil {
		return UnknownTransport{}
	}
	devicePath, err := filepath.EvalSymlinks(filepath.Join(root, "class", "tty", name, "device"))
	if err != nil {
		return UnknownTransport{}
	}

	for dir := devicePath; dir != root && strings.HasPrefix(dir, root); dir = filepath.Dir(dir) {
		if fileExists(filepath.Join(dir, "idVendor")) {
			return readUSBTransport(dir)
		}
		if subsystemOf(dir) == "pci" {
			return PCITransport{}
		}
	}
	return UnknownTransport{}
}

// readUSBTransport reads USB descriptor strings from a sysfs USB device directory
func readUSBTransport(usbDevicePath string) USBTransport {
	return USBTransport{
		VendorID:     readSysfsFile(filepath.Join(usbDevicePath, "idVendor")),
		ProductID:    readSysfsFile(filepath.Join(usbDevicePath, "idProduct")),
		Manufacturer: readSysfsFile(filepath.Join(usbDevicePath, "manufacturer")),
		Product:      readSysfsFile(filepath.Join(usbDevicePath, "product")),
		SerialNumber: readSysfsFile(filepath.Join(usbDevicePath, "serial")),
	}
}

// subsystemOf returns the name of the bus a sysfs device belongs to
func subsystemOf(dir string) string {
	target, err := filepath.EvalSymlinks(filepath.Join(dir, "subsystem"))
	if err != nil {
		return ""
	}
	return filepath.Base(target)
}

// readSysfsFile returns the trimmed content of a sysfs attribute, or "" if unreadable
func readSysfsFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
