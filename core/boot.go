package core

import "io"

// Transport is the text sink the firmware reports through.
type Transport interface {
	io.Writer
	// Open brings the transport up. An error here is fatal.
	Open() error
}

// Board is the set of peripheral handles, one per physical peripheral.
type Board struct {
	Transport Transport
	GPIO      GPIODriver
	Clock     ClockRegisters
	RTC       RTCRegisters
	PPI       PPIRegisters
	ADC       ADCRegisters
	ADCIRQ    IRQ
}

// Pipeline is the running timer → router → sampler → handler chain.
type Pipeline struct {
	Clocks  *ClockManager
	Timer   *PeriodicTimer
	Router  *EventRouter
	Sampler *Sampler
	Handler *SampleHandler
}

// Boot brings the sampling pipeline up. Every step starts only after the
// previous one finished. When it returns nil, the hardware samples on its
// own and the caller should Park.
func Boot(board Board, cfg Config) (*Pipeline, error) {
	ClearBootTrace()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := board.Transport.Open(); err != nil {
		return nil, err
	}
	sink := board.Transport
	status(sink, "Hello!")
	stageDone(sink, StageTransport, 0)

	if err := configureLines(board.GPIO, cfg.Outputs, cfg.LOP, cfg.LON); err != nil {
		return nil, err
	}
	stageDone(sink, StageLines, uint32(len(cfg.Outputs)+2))

	p := &Pipeline{
		Clocks: NewClockManager(board.Clock),
		Router: NewEventRouter(board.PPI),
	}
	p.Timer = NewPeriodicTimer(board.RTC, p.Clocks)
	p.Sampler = NewSampler(board.ADC, board.ADCIRQ, p.Clocks)

	p.Clocks.StartHighFrequency()
	stageDone(sink, StageHFClock, 0)
	p.Clocks.StartLowFrequency(cfg.LFSource)
	stageDone(sink, StageLFClock, uint32(cfg.LFSource))

	if err := p.Timer.Configure(cfg.TickHz, cfg.LFClockHz); err != nil {
		return nil, err
	}
	stageDone(sink, StageTimer, p.Timer.Config().Prescaler)

	// The handler has to be reachable before the NVIC line is unmasked.
	if err := p.Sampler.Configure(cfg.ADC); err != nil {
		return nil, err
	}
	p.Handler = NewSampleHandler(board.ADC, board.GPIO, cfg.LOP, cfg.LON, sink)
	SetSampleHandler(p.Handler)
	p.Sampler.EnableCompletionInterrupt()
	stageDone(sink, StageSamplerConfig, cfg.ADC.Encode())

	if err := p.Router.Bind(p.Timer, p.Sampler, cfg.PPIChannel); err != nil {
		return nil, err
	}
	if err := p.Router.Enable(cfg.PPIChannel); err != nil {
		return nil, err
	}
	stageDone(sink, StageRouter, uint32(cfg.PPIChannel))

	if err := p.Sampler.Enable(); err != nil {
		return nil, err
	}
	stageDone(sink, StageSamplerEnable, 0)

	return p, nil
}

// Park idles the CPU forever. wfi must suspend until the next interrupt;
// all sampling happens in interrupt context from here on.
func Park(wfi func()) {
	RecordBoot(StageIdle, 0)
	for {
		wfi()
	}
}

func status(sink io.Writer, msg string) {
	sink.Write([]byte(msg + "\r\n"))
	DebugPrintln(msg)
}

func stageDone(sink io.Writer, stage Stage, value uint32) {
	RecordBoot(stage, value)
	status(sink, "init: "+stage.String())
}
