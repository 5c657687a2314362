/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/allbin/ttlpulse"
	"github.com/allbin/ttlpulse/internal/tui/styles"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// runList prints the current port listing. An empty listing is not an error.
func (a *app) runList(w io.Writer, tableFormat bool) error {
	ports, err := a.directory.ListPorts()
	if err != nil {
		return err
	}

	if len(ports) == 0 {
		fmt.Fprint(w, "\nNo serial ports found!\n\n")
		return nil
	}

	if tableFormat {
		renderTable(w, ports)
	} else {
		renderSimple(w, ports)
	}
	return nil
}

// renderSimple renders each port's summary with its highlighted device ID
func renderSimple(w io.Writer, ports []ttlpulse.PortDescriptor) {
	fmt.Fprintf(w, "\n%s\n\n", styles.HeaderStyle.Render(portCountHeader(len(ports))))

	for _, port := range ports {
		fmt.Fprintf(w, "• Info: %s\n", ttlpulse.FormatTransport(port.TransportOf()))
		fmt.Fprintf(w, "\tDevice ID: %s\n", styles.DeviceStyle.Render(port.Name))
	}
	fmt.Fprintln(w)
}

// renderTable renders the port list as a static table
func renderTable(w io.Writer, ports []ttlpulse.PortDescriptor) {
	nameWidth := len("Device ID")
	infoWidth := len("Info")
	rows := make([]table.Row, 0, len(ports))
	for _, port := range ports {
		info := ttlpulse.FormatTransport(port.TransportOf())
		nameWidth = max(nameWidth, lipgloss.Width(port.Name))
		infoWidth = max(infoWidth, lipgloss.Width(info))
		rows = append(rows, table.Row{
			port.Name,
			ttlpulse.TransportKind(port.TransportOf()),
			ttlpulse.USBID(port.TransportOf()),
			info,
		})
	}

	columns := []table.Column{
		{Title: "Device ID", Width: nameWidth},
		{Title: "Type", Width: 10},
		{Title: "USB ID", Width: 10},
		{Title: "Info", Width: infoWidth},
	}

	// Header text plus its bottom border
	const headerHeight = 2

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithStyles(styles.TableStyles()),
		table.WithFocused(false),
		table.WithHeight(len(rows)+headerHeight),
	)

	fmt.Fprintf(w, "\n%s\n\n", styles.HeaderStyle.Render(portCountHeader(len(ports))))
	fmt.Fprintln(w, t.View())
	fmt.Fprintln(w)
}

func portCountHeader(n int) string {
	if n == 1 {
		return "There is 1 serial port available:"
	}
	return fmt.Sprintf("There are %d serial ports available:", n)
}
