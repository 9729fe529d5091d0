package mcu

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"rtcadc/host/serial"
)

// MCU represents a connection to the sampler board
type MCU struct {
	// Serial port
	port io.ReadCloser

	// Partial line carried between reads
	pending []byte

	// A live port reports a read timeout as (0, io.EOF); only a capture
	// really ends
	live bool

	// Connection state
	connected bool
}

// NewMCU creates a new MCU instance (not yet connected)
func NewMCU() *MCU {
	return &MCU{
		connected: false,
	}
}

// Connect connects to an MCU via serial port
func (m *MCU) Connect(device string) error {
	return m.ConnectWithConfig(serial.DefaultConfig(device))
}

// ConnectWithConfig connects to an MCU with a custom serial config
func (m *MCU) ConnectWithConfig(cfg *serial.Config) error {
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}
	if err := port.Flush(); err != nil {
		port.Close()
		return fmt.Errorf("failed to flush serial port: %w", err)
	}
	m.AttachLive(port)
	return nil
}

// Attach uses an already open stream, such as a capture file. EOF ends
// the stream.
func (m *MCU) Attach(r io.ReadCloser) {
	m.attach(r, false)
}

// AttachLive uses an already open serial port. EOF is a read timeout and
// the stream keeps reading until its context is done.
func (m *MCU) AttachLive(r io.ReadCloser) {
	m.attach(r, true)
}

func (m *MCU) attach(r io.ReadCloser, live bool) {
	m.port = r
	m.live = live
	m.pending = m.pending[:0]
	m.connected = true
}

// Close closes the connection to the MCU
func (m *MCU) Close() error {
	if m.port == nil {
		return nil
	}
	m.connected = false
	return m.port.Close()
}

// Connected reports whether a port is attached
func (m *MCU) Connected() bool {
	return m.connected
}

// Stream feeds every line from the board into mon and hands the parsed
// line to fn until ctx is done or a capture reaches EOF. Malformed lines
// are passed to fn with their error and do not stop the stream; any other
// error from fn does.
func (m *MCU) Stream(ctx context.Context, mon *Monitor, fn func(Line, error) error) error {
	if !m.connected {
		return fmt.Errorf("not connected to MCU")
	}

	buf := make([]byte, 256)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := m.port.Read(buf)
		if n > 0 {
			if ferr := m.consume(buf[:n], mon, fn); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			if m.live {
				continue
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read from MCU: %w", err)
		}
	}
}

// consume splits data on LF and feeds complete lines.
func (m *MCU) consume(data []byte, mon *Monitor, fn func(Line, error) error) error {
	m.pending = append(m.pending, data...)
	for {
		i := bytes.IndexByte(m.pending, '\n')
		if i < 0 {
			return nil
		}
		text := string(m.pending[:i])
		m.pending = m.pending[i+1:]

		line, err := mon.Feed(text)
		if line.Kind == LineEmpty && err == nil {
			continue
		}
		if ferr := fn(line, err); ferr != nil {
			return ferr
		}
	}
}
