package core

import "tinygo.org/x/drivers"

var _ drivers.Sensor = (*Sampler)(nil)

// Update implements drivers.Sensor. A voltage request issues one manual
// START task; the result arrives through the completion interrupt like any
// routed trigger.
func (s *Sampler) Update(which drivers.Measurement) error {
	if which&drivers.Voltage == 0 {
		return nil
	}
	if !s.enabled {
		return ErrSamplerDisabled
	}
	s.Trigger()
	return nil
}
