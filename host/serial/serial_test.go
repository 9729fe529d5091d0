package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")
	assert.Equal(t, "/dev/ttyACM0", cfg.Device)
	assert.Equal(t, 115200, cfg.Baud)
	assert.Equal(t, 100, cfg.ReadTimeout)
}

func TestOpenRejectsBadConfig(t *testing.T) {
	_, err := Open(nil)
	require.Error(t, err)

	_, err = Open(&Config{Baud: DefaultBaud})
	require.Error(t, err)

	_, err = Open(&Config{Device: "/dev/null", Baud: 0})
	assert.Error(t, err)
}

func TestFindConsole(t *testing.T) {
	ports := []PortInfo{
		{Device: "/dev/ttyS0"},
		{Device: "/dev/ttyUSB0", USB: true, VID: "0403", PID: "6001"},
		{Device: "/dev/ttyACM0", USB: true, VID: SeggerVID, PID: "0105"},
		{Device: "/dev/ttyACM1", USB: true, VID: SeggerVID, PID: "0105"},
	}
	assert.Equal(t, "/dev/ttyACM0", FindConsole(ports))
	assert.Empty(t, FindConsole(ports[:2]))
	assert.Empty(t, FindConsole(nil))
}
