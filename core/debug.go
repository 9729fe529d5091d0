package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Stage is one step of the boot sequence.
type Stage uint8

const (
	StageNone Stage = iota
	StageTransport
	StageLines
	StageHFClock
	StageLFClock
	StageTimer
	StageSamplerConfig
	StageRouter
	StageSamplerEnable
	StageIdle
)

func (s Stage) String() string {
	switch s {
	case StageTransport:
		return "transport"
	case StageLines:
		return "lines"
	case StageHFClock:
		return "hfclk"
	case StageLFClock:
		return "lfclk"
	case StageTimer:
		return "rtc"
	case StageSamplerConfig:
		return "adc-config"
	case StageRouter:
		return "ppi"
	case StageSamplerEnable:
		return "adc-enable"
	case StageIdle:
		return "idle"
	default:
		return "none"
	}
}

// BootEvent records one completed boot stage
type BootEvent struct {
	Seq   uint8 // 1-based completion order
	Stage Stage
	Value uint32 // stage-dependent detail (prescaler, CONFIG word, channel)
}

const (
	BootRingSize = 16 // more than the number of stages
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	bootRing     [BootRingSize]BootEvent
	bootRingHead uint8
	bootSeq      uint8
)

// SetDebugWriter sets the platform-specific debug output function
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// RecordBoot appends a completed stage to the boot ring
func RecordBoot(stage Stage, value uint32) {
	bootSeq++
	bootRing[bootRingHead] = BootEvent{Seq: bootSeq, Stage: stage, Value: value}
	bootRingHead = (bootRingHead + 1) % BootRingSize
}

// BootTrace returns the recorded stages, oldest first
func BootTrace() []BootEvent {
	out := make([]BootEvent, 0, BootRingSize)
	start := bootRingHead
	for i := uint8(0); i < BootRingSize; i++ {
		evt := bootRing[(start+i)%BootRingSize]
		if evt.Stage == StageNone {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// DumpBootTrace writes the boot ring through the debug writer when debug
// output is enabled
func DumpBootTrace() {
	if !debugEnabled || debugPrintln == nil {
		return
	}
	debugPrintln("[BOOT] === Boot Trace ===")
	for _, evt := range BootTrace() {
		debugPrintln("[BOOT] " + utoa(uint32(evt.Seq)) + " " + evt.Stage.String() + " v=" + utoa(evt.Value))
	}
	debugPrintln("[BOOT] === End Trace ===")
}

// ClearBootTrace clears the boot ring
func ClearBootTrace() {
	for i := range bootRing {
		bootRing[i] = BootEvent{}
	}
	bootRingHead = 0
	bootSeq = 0
}
