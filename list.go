package ttlpulse

import (
	"fmt"
	"log/slog"
	"sort"
)

const (
	defaultDevDir    = "/dev"
	defaultSysfsRoot = "/sys"
)

// Directory lists the serial ports currently present on the host.
//
// ListPorts returns an empty slice and a nil error when the host has no ports.
// A failed query returns an error wrapping ErrPortQuery.
type Directory interface {
	ListPorts() ([]PortDescriptor, error)
}

// SystemDirectory enumerates the ports of the running host.
//
// DevDir and SysfsRoot are only consulted on Linux. Zero values select /dev
// and /sys.
type SystemDirectory struct {
	DevDir    string
	SysfsRoot string
	Logger    *slog.Logger
}

// Ensure SystemDirectory implements Directory at compile time
var _ Directory = (*SystemDirectory)(nil)

// NewSystemDirectory returns a directory for the host's default device paths
func NewSystemDirectory(logger *slog.Logger) *SystemDirectory {
	return &SystemDirectory{
		DevDir:    defaultDevDir,
		SysfsRoot: defaultSysfsRoot,
		Logger:    logger,
	}
}

// ListPorts returns a fresh snapshot of the available ports sorted by name
func (d *SystemDirectory) ListPorts() ([]PortDescriptor, error) {
	ports, err := d.listPorts()
	if err != nil {
		d.logger().Debug("serial port query failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrPortQuery, err)
	}
	if ports == nil {
		ports = []PortDescriptor{}
	}

	sort.Slice(ports, func(i, j int) bool {
		return ports[i].Name < ports[j].Name
	})

	for _, p := range ports {
		d.logger().Debug("found serial port", "name", p.Name, "transport", TransportKind(p.TransportOf()))
	}
	return ports, nil
}

func (d *SystemDirectory) devDir() string {
	if d.DevDir == "" {
		return defaultDevDir
	}
	return d.DevDir
}

func (d *SystemDirectory) sysfsRoot() string {
	if d.SysfsRoot == "" {
		return defaultSysfsRoot
	}
	return d.SysfsRoot
}

func (d *SystemDirectory) logger() *slog.Logger {
	if d.Logger == nil {
		return discardLogger
	}
	return d.Logger
}

var discardLogger = slog.New(slog.DiscardHandler)
