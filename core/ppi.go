package core

// PPIChannelRegisters is one programmable interconnect channel.
type PPIChannelRegisters struct {
	EEP Register32 // event end point
	TEP Register32 // task end point
}

// PPIRegisters is the capability handle for the PPI peripheral.
type PPIRegisters struct {
	Channels []PPIChannelRegisters
	CHENSet  Register32
}

// EventSource is a peripheral that publishes an event to the router.
type EventSource interface {
	TickEvent() Endpoint
	Started() bool
}

// TaskDestination is a peripheral whose task the router triggers.
type TaskDestination interface {
	StartTask() Endpoint
	Configured() bool
}

// Route is one entry in the router's binding table.
type Route struct {
	Channel uint8
	Event   Endpoint
	Task    Endpoint
	Enabled bool

	source EventSource
	dest   TaskDestination
}

// EventRouter links hardware events directly to hardware tasks. Routes are
// bound once and never removed.
type EventRouter struct {
	regs   PPIRegisters
	routes map[uint8]*Route
}

// NewEventRouter wraps the PPI peripheral.
func NewEventRouter(regs PPIRegisters) *EventRouter {
	return &EventRouter{
		regs:   regs,
		routes: make(map[uint8]*Route),
	}
}

// Bind latches src's event into dst's task on channel ch. The channel must
// be free and both endpoints must have an address.
func (r *EventRouter) Bind(src EventSource, dst TaskDestination, ch uint8) error {
	if int(ch) >= len(r.regs.Channels) {
		return ErrChannelRange
	}
	if _, ok := r.routes[ch]; ok {
		return ErrChannelInUse
	}
	event, task := src.TickEvent(), dst.StartTask()
	if event.Addr == 0 || task.Addr == 0 {
		return ErrNilEndpoint
	}

	r.regs.Channels[ch].EEP.Set(uint32(event.Addr))
	r.regs.Channels[ch].TEP.Set(uint32(task.Addr))
	r.routes[ch] = &Route{
		Channel: ch,
		Event:   event,
		Task:    task,
		source:  src,
		dest:    dst,
	}
	return nil
}

// Enable activates a bound channel. The source must already be running and
// the destination configured, otherwise the first trigger is lost.
func (r *EventRouter) Enable(ch uint8) error {
	route, ok := r.routes[ch]
	if !ok {
		return ErrRouteMissing
	}
	if route.Enabled {
		return nil
	}
	if !route.source.Started() {
		return ErrTimerNotStarted
	}
	if !route.dest.Configured() {
		return ErrSamplerNotConfigured
	}

	r.regs.CHENSet.Set(1 << ch)
	route.Enabled = true
	return nil
}

// Routes returns a copy of the binding table ordered by channel.
func (r *EventRouter) Routes() []Route {
	out := make([]Route, 0, len(r.routes))
	for ch := 0; ch < len(r.regs.Channels); ch++ {
		if route, ok := r.routes[uint8(ch)]; ok {
			out = append(out, *route)
		}
	}
	return out
}

// EnabledCount returns the number of live routes.
func (r *EventRouter) EnabledCount() int {
	n := 0
	for _, route := range r.routes {
		if route.Enabled {
			n++
		}
	}
	return n
}
