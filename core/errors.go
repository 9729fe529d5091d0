package core

// Error is a constant error value.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrClockNotRunning      = Error("clock not running")
	ErrTimerNotStarted      = Error("periodic timer not started")
	ErrTimerStarted         = Error("periodic timer already started")
	ErrSamplerNotConfigured = Error("sampler not configured")
	ErrSamplerEnabled       = Error("sampler already enabled")
	ErrSamplerDisabled      = Error("sampler not enabled")
	ErrInvalidInput         = Error("analog input out of range")
	ErrChannelInUse         = Error("event router channel already bound")
	ErrChannelRange         = Error("event router channel out of range")
	ErrRouteMissing         = Error("event router channel not bound")
	ErrNilEndpoint          = Error("event router endpoint has no address")
	ErrHandlerMissing       = Error("sample handler not installed")
	ErrPinConflict          = Error("pin assigned twice")
)
