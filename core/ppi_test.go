package core

import "testing"

type fakeSource struct {
	ep      Endpoint
	started bool
}

func (s *fakeSource) TickEvent() Endpoint { return s.ep }
func (s *fakeSource) Started() bool       { return s.started }

type fakeDest struct {
	ep         Endpoint
	configured bool
}

func (d *fakeDest) StartTask() Endpoint { return d.ep }
func (d *fakeDest) Configured() bool    { return d.configured }

func newFakePPI(journal *[]string, channels int) PPIRegisters {
	regs := PPIRegisters{CHENSet: newFakeReg("CHENSET", journal)}
	for i := 0; i < channels; i++ {
		regs.Channels = append(regs.Channels, PPIChannelRegisters{
			EEP: newFakeReg("EEP"+utoa(uint32(i)), journal),
			TEP: newFakeReg("TEP"+utoa(uint32(i)), journal),
		})
	}
	return regs
}

var (
	tickEndpoint  = Endpoint{Name: "RTC0.EVENTS_TICK", Addr: 0x4000B100}
	startEndpoint = Endpoint{Name: "ADC.TASKS_START", Addr: 0x40007000}
)

func TestBindWritesEndpointAddresses(t *testing.T) {
	var journal []string
	regs := newFakePPI(&journal, 4)
	router := NewEventRouter(regs)
	src := &fakeSource{ep: tickEndpoint, started: true}
	dst := &fakeDest{ep: startEndpoint, configured: true}

	if err := router.Bind(src, dst, 2); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if got := regs.Channels[2].EEP.Get(); got != 0x4000B100 {
		t.Errorf("Expected EEP %#x, got %#x", 0x4000B100, got)
	}
	if got := regs.Channels[2].TEP.Get(); got != 0x40007000 {
		t.Errorf("Expected TEP %#x, got %#x", 0x40007000, got)
	}
	if router.EnabledCount() != 0 {
		t.Error("Bind must not enable the channel")
	}

	if err := router.Enable(2); err != nil {
		t.Fatalf("Enable failed: %v", err)
	}
	if got := regs.CHENSet.Get(); got != 1<<2 {
		t.Errorf("Expected CHENSET %#x, got %#x", 1<<2, got)
	}
	if router.EnabledCount() != 1 {
		t.Errorf("Expected one live route, got %d", router.EnabledCount())
	}

	routes := router.Routes()
	if len(routes) != 1 || routes[0].Channel != 2 || !routes[0].Enabled {
		t.Errorf("Unexpected binding table %+v", routes)
	}
	if routes[0].Event != tickEndpoint || routes[0].Task != startEndpoint {
		t.Errorf("Unexpected endpoints %+v", routes[0])
	}
}

func TestBindRejects(t *testing.T) {
	src := &fakeSource{ep: tickEndpoint, started: true}
	dst := &fakeDest{ep: startEndpoint, configured: true}

	testCases := []struct {
		name    string
		setup   func(r *EventRouter)
		src     EventSource
		dst     TaskDestination
		channel uint8
		want    error
	}{
		{"channel out of range", nil, src, dst, 4, ErrChannelRange},
		{"duplicate channel", func(r *EventRouter) { r.Bind(src, dst, 1) }, src, dst, 1, ErrChannelInUse},
		{"event without address", nil, &fakeSource{started: true}, dst, 0, ErrNilEndpoint},
		{"task without address", nil, src, &fakeDest{configured: true}, 0, ErrNilEndpoint},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := NewEventRouter(newFakePPI(nil, 4))
			if tc.setup != nil {
				tc.setup(router)
			}
			if err := router.Bind(tc.src, tc.dst, tc.channel); err != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestEnableOrdering(t *testing.T) {
	testCases := []struct {
		name       string
		started    bool
		configured bool
		want       error
	}{
		{"timer not started", false, true, ErrTimerNotStarted},
		{"sampler not configured", true, false, ErrSamplerNotConfigured},
		{"both ready", true, true, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var journal []string
			regs := newFakePPI(&journal, 1)
			router := NewEventRouter(regs)
			src := &fakeSource{ep: tickEndpoint, started: tc.started}
			dst := &fakeDest{ep: startEndpoint, configured: tc.configured}
			if err := router.Bind(src, dst, 0); err != nil {
				t.Fatalf("Bind failed: %v", err)
			}
			journal = nil

			err := router.Enable(0)
			if err != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
			if tc.want != nil && len(journal) != 0 {
				t.Errorf("Rejected enable wrote %v", journal)
			}
		})
	}
}

func TestEnableUnboundChannel(t *testing.T) {
	router := NewEventRouter(newFakePPI(nil, 2))
	if err := router.Enable(0); err != ErrRouteMissing {
		t.Errorf("Expected ErrRouteMissing, got %v", err)
	}
}

func TestEnableTwiceIsNoop(t *testing.T) {
	var journal []string
	router := NewEventRouter(newFakePPI(&journal, 1))
	src := &fakeSource{ep: tickEndpoint, started: true}
	dst := &fakeDest{ep: startEndpoint, configured: true}
	router.Bind(src, dst, 0)
	router.Enable(0)
	journal = nil

	if err := router.Enable(0); err != nil {
		t.Errorf("Second enable failed: %v", err)
	}
	if len(journal) != 0 {
		t.Errorf("Second enable wrote %v", journal)
	}
}
