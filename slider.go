package fluentkit

import "github.com/fluentkit/fluentkit/observe"

// Slider is a continuous value control over a [min, max] range. SetValue
// clamps into the current range; shrinking the range clamps the current
// value to keep it in bounds. Direct writes through ValueProperty bypass
// clamping, which bindings rely on.
type Slider struct {
	Control

	value *observe.Property[float64]
	min   *observe.Property[float64]
	max   *observe.Property[float64]
}

// NewSlider creates a slider with the given range and initial value. The
// value is clamped into the range.
func NewSlider(min, max, value float64) *Slider {
	s := &Slider{}
	s.initControl(s)
	s.min = observe.NewFloat64Property(s, "min", min)
	s.max = observe.NewFloat64Property(s, "max", max)
	s.value = observe.NewFloat64Property(s, "value", clamp(value, min, max))
	return s
}

// ValueProperty returns the value property.
func (s *Slider) ValueProperty() *observe.Property[float64] { return s.value }

// Value returns the current value.
func (s *Slider) Value() float64 { return s.value.Get() }

// SetValue sets the value, clamped into [Min, Max].
func (s *Slider) SetValue(v float64) {
	s.value.Set(clamp(v, s.min.Get(), s.max.Get()))
}

// MinProperty returns the range minimum property.
func (s *Slider) MinProperty() *observe.Property[float64] { return s.min }

// Min returns the range minimum.
func (s *Slider) Min() float64 { return s.min.Get() }

// SetMin sets the range minimum and re-clamps the current value.
func (s *Slider) SetMin(min float64) {
	s.min.Set(min)
	s.SetValue(s.value.Get())
}

// MaxProperty returns the range maximum property.
func (s *Slider) MaxProperty() *observe.Property[float64] { return s.max }

// Max returns the range maximum.
func (s *Slider) Max() float64 { return s.max.Get() }

// SetMax sets the range maximum and re-clamps the current value.
func (s *Slider) SetMax(max float64) {
	s.max.Set(max)
	s.SetValue(s.value.Get())
}

// Ratio returns the value's position within the range as 0..1. Returns 0
// for an empty range.
func (s *Slider) Ratio() float64 {
	min, max := s.min.Get(), s.max.Get()
	if max <= min {
		return 0
	}
	return (s.value.Get() - min) / (max - min)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
