package mcu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtcadc/core"
)

func TestParseLine(t *testing.T) {
	testCases := []struct {
		name string
		text string
		kind LineKind
		rec  core.SampleRecord
	}{
		{"sample crlf", "512 1 0\r\n", LineSample, core.SampleRecord{Raw: 512, LOP: true}},
		{"sample bare", "1023 0 1", LineSample, core.SampleRecord{Raw: 1023, LON: true}},
		{"zero", "0 0 0\r", LineSample, core.SampleRecord{}},
		{"banner", "Hello!\r\n", LineStatus, core.SampleRecord{}},
		{"status", "init: rtc", LineStatus, core.SampleRecord{}},
		{"debug", "[DBG] init: ppi", LineDebug, core.SampleRecord{}},
		{"boot trace", "[DBG] [BOOT] 5 rtc v=139\r\n", LineDebug, core.SampleRecord{}},
		{"empty", "\r\n", LineEmpty, core.SampleRecord{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, err := ParseLine(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, line.Kind)
			assert.Equal(t, tc.rec, line.Record)
		})
	}
}

func TestParseLineRoundTrip(t *testing.T) {
	rec := core.SampleRecord{Raw: 777, LOP: true, LON: true}
	line, err := ParseLine(string(rec.AppendLine(nil)))
	require.NoError(t, err)
	assert.Equal(t, rec, line.Record)
}

func TestParseLineMalformed(t *testing.T) {
	for _, text := range []string{
		"512 1",
		"512 1 0 9",
		"abc 1 0",
		"-1 1 0",
		"512 2 0",
		"512 1 true",
		"512  1 0",
		"99999999999 0 0",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseLine(text)
			assert.ErrorIs(t, err, ErrMalformedLine)
		})
	}
}

func TestMonitorStats(t *testing.T) {
	mon := NewMonitor(core.DefaultConfig().ADC)
	for _, text := range []string{"Hello!", "init: transport", "100 1 0", "900 0 1", "500 1 1", "garbage"} {
		mon.Feed(text)
	}

	st := mon.Stats()
	assert.Equal(t, uint64(3), st.Samples)
	assert.Equal(t, uint32(100), st.Min)
	assert.Equal(t, uint32(900), st.Max)
	assert.Equal(t, uint64(2), st.LOPHigh)
	assert.Equal(t, uint64(2), st.LONHigh)
	assert.Equal(t, uint64(1), st.Malformed)
	assert.Equal(t, []string{"Hello!", "init: transport"}, st.Status)
}

func TestMonitorOutOfRange(t *testing.T) {
	mon := NewMonitor(core.DefaultConfig().ADC)

	_, err := mon.Feed("1024 0 0")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), mon.Stats().OutOfRange)

	mon.Strict = true
	_, err = mon.Feed("2000 0 0")
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, uint64(2), mon.Stats().OutOfRange)

	_, err = mon.Feed("1023 0 0")
	assert.NoError(t, err)
}

func TestMonitorMillivolts(t *testing.T) {
	mon := NewMonitor(core.DefaultConfig().ADC)
	assert.Equal(t, uint32(3600), mon.Millivolts(core.SampleRecord{Raw: 1023}))
	assert.Equal(t, uint32(0), mon.Millivolts(core.SampleRecord{}))
}
