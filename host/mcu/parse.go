package mcu

import (
	"errors"
	"strconv"
	"strings"

	"rtcadc/core"
)

// LineKind classifies one line of firmware output.
type LineKind uint8

const (
	LineSample LineKind = iota
	LineStatus
	LineDebug
	LineEmpty
)

func (k LineKind) String() string {
	switch k {
	case LineSample:
		return "sample"
	case LineStatus:
		return "status"
	case LineDebug:
		return "debug"
	default:
		return "empty"
	}
}

var (
	ErrMalformedLine = errors.New("malformed sample line")
	ErrOutOfRange    = errors.New("raw value exceeds resolution")
)

const (
	statusPrefix = "init: "
	debugPrefix  = "[DBG] "
	bannerLine   = "Hello!"
)

// Line is one parsed line.
type Line struct {
	Kind   LineKind
	Text   string
	Record core.SampleRecord
}

// ParseLine parses "<raw> <lop> <lon>" sample lines and recognises the
// boot status and debug lines. The line terminator is optional.
func ParseLine(text string) (Line, error) {
	text = strings.TrimRight(text, "\r\n")
	line := Line{Text: text}

	switch {
	case text == "":
		line.Kind = LineEmpty
		return line, nil
	case text == bannerLine || strings.HasPrefix(text, statusPrefix):
		line.Kind = LineStatus
		return line, nil
	case strings.HasPrefix(text, debugPrefix):
		line.Kind = LineDebug
		line.Text = strings.TrimPrefix(text, debugPrefix)
		return line, nil
	}

	fields := strings.Split(text, " ")
	if len(fields) != 3 {
		return line, ErrMalformedLine
	}
	raw, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return line, ErrMalformedLine
	}
	lop, ok := parseFlag(fields[1])
	if !ok {
		return line, ErrMalformedLine
	}
	lon, ok := parseFlag(fields[2])
	if !ok {
		return line, ErrMalformedLine
	}

	line.Kind = LineSample
	line.Record = core.SampleRecord{Raw: uint32(raw), LOP: lop, LON: lon}
	return line, nil
}

func parseFlag(s string) (bool, bool) {
	switch s {
	case "0":
		return false, true
	case "1":
		return true, true
	default:
		return false, false
	}
}

// Stats accumulates what the monitor has seen.
type Stats struct {
	Samples    uint64
	Min        uint32
	Max        uint32
	OutOfRange uint64
	Malformed  uint64
	LOPHigh    uint64
	LONHigh    uint64
	Status     []string
}

func (s *Stats) addSample(rec core.SampleRecord) {
	if s.Samples == 0 || rec.Raw < s.Min {
		s.Min = rec.Raw
	}
	if s.Samples == 0 || rec.Raw > s.Max {
		s.Max = rec.Raw
	}
	s.Samples++
	if rec.LOP {
		s.LOPHigh++
	}
	if rec.LON {
		s.LONHigh++
	}
}

// Monitor checks a stream of lines against the sampler's configuration.
type Monitor struct {
	ADC core.SamplerConfig
	// Strict turns an out-of-range raw value into an error instead of a count.
	Strict bool

	stats Stats
}

// NewMonitor returns a monitor for the given front end.
func NewMonitor(adc core.SamplerConfig) *Monitor {
	return &Monitor{ADC: adc}
}

// Feed parses one line and updates the statistics. Malformed lines are
// counted and returned with ErrMalformedLine; the stream can continue.
func (m *Monitor) Feed(text string) (Line, error) {
	line, err := ParseLine(text)
	if err != nil {
		m.stats.Malformed++
		return line, err
	}

	switch line.Kind {
	case LineStatus:
		m.stats.Status = append(m.stats.Status, line.Text)
	case LineSample:
		if !line.Record.InRange(m.ADC.Resolution) {
			m.stats.OutOfRange++
			if m.Strict {
				return line, ErrOutOfRange
			}
		}
		m.stats.addSample(line.Record)
	}
	return line, nil
}

// Stats returns a copy of the running statistics.
func (m *Monitor) Stats() Stats {
	st := m.stats
	st.Status = append([]string(nil), m.stats.Status...)
	return st
}

// Millivolts converts a sample to the voltage at the analog pin.
func (m *Monitor) Millivolts(rec core.SampleRecord) uint32 {
	return m.ADC.Millivolts(rec.Raw)
}
