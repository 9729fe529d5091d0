//go:build !wasm

package serial

import (
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
)

// PortInfo describes one serial device found on the host
type PortInfo struct {
	Device  string
	USB     bool
	VID     string
	PID     string
	Serial  string
	Product string
}

// ListPorts returns the serial devices the OS knows about
func ListPorts() ([]PortInfo, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}

	out := make([]PortInfo, 0, len(ports))
	for _, p := range ports {
		out = append(out, PortInfo{
			Device:  p.Name,
			USB:     p.IsUSB,
			VID:     strings.ToLower(p.VID),
			PID:     strings.ToLower(p.PID),
			Serial:  p.SerialNumber,
			Product: p.Product,
		})
	}
	return out, nil
}

// SeggerVID is the USB vendor of the J-Link OB probe on nRF51 dev kits,
// which also carries the UART0 console.
const SeggerVID = "1366"

// FindConsole returns the first port that looks like an nRF51 dev kit
// console, or an empty string.
func FindConsole(ports []PortInfo) string {
	for _, p := range ports {
		if p.USB && p.VID == SeggerVID {
			return p.Device
		}
	}
	return ""
}
