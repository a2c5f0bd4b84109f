package configure

import (
	"github.com/fluentkit/fluentkit"
	"github.com/fluentkit/fluentkit/observe"
)

// SliderConfigurator is the fluent configurator for a slider.
type SliderConfigurator struct {
	controlConfigurator[*SliderConfigurator]
	slider *fluentkit.Slider
}

var _ SliderConfig[*SliderConfigurator] = (*SliderConfigurator)(nil)

// NewSliderConfigurator wraps a slider. Panics if s is nil.
func NewSliderConfigurator(s *fluentkit.Slider) *SliderConfigurator {
	requireWidget("NewSliderConfigurator", s != nil)
	c := &SliderConfigurator{}
	c.attach(s)
	return c
}

func (c *SliderConfigurator) attach(s *fluentkit.Slider) {
	c.slider = s
	c.initControl(c, s, s.ControlBase())
}

// Slider returns the wrapped slider.
func (c *SliderConfigurator) Slider() *fluentkit.Slider {
	return c.slider
}

// SetNode reassigns the configurator to another slider. Panics if n is nil
// or not a *fluentkit.Slider; the held widget is unchanged on failure.
func (c *SliderConfigurator) SetNode(n fluentkit.Node) *SliderConfigurator {
	s, ok := n.(*fluentkit.Slider)
	if !ok || s == nil {
		wrongNodeType("SliderConfigurator.SetNode", "*fluentkit.Slider")
	}
	c.attach(s)
	return c
}

func (c *SliderConfigurator) AddValueChangeListener(l *observe.ChangeListener[float64]) *SliderConfigurator {
	c.slider.ValueProperty().AddListener(l)
	return c
}

func (c *SliderConfigurator) RemoveValueChangeListener(l *observe.ChangeListener[float64]) *SliderConfigurator {
	c.slider.ValueProperty().RemoveListener(l)
	return c
}

func (c *SliderConfigurator) AddValueInvalidationListener(l *observe.InvalidationListener) *SliderConfigurator {
	c.slider.ValueProperty().AddInvalidationListener(l)
	return c
}

func (c *SliderConfigurator) RemoveValueInvalidationListener(l *observe.InvalidationListener) *SliderConfigurator {
	c.slider.ValueProperty().RemoveInvalidationListener(l)
	return c
}

func (c *SliderConfigurator) BindValueProperty(source observe.ObservableValue[float64]) *SliderConfigurator {
	c.slider.ValueProperty().Bind(source)
	return c
}

func (c *SliderConfigurator) UnbindValueProperty() *SliderConfigurator {
	c.slider.ValueProperty().Unbind()
	return c
}

func (c *SliderConfigurator) BindBidirectionalValueProperty(other *observe.Property[float64]) *SliderConfigurator {
	c.slider.ValueProperty().BindBidirectional(other)
	return c
}

func (c *SliderConfigurator) UnbindBidirectionalValueProperty(other *observe.Property[float64]) *SliderConfigurator {
	c.slider.ValueProperty().UnbindBidirectional(other)
	return c
}

// SetValue sets the slider value through the widget's clamping setter.
func (c *SliderConfigurator) SetValue(v float64) *SliderConfigurator {
	c.slider.SetValue(v)
	return c
}

func (c *SliderConfigurator) AddMinChangeListener(l *observe.ChangeListener[float64]) *SliderConfigurator {
	c.slider.MinProperty().AddListener(l)
	return c
}

func (c *SliderConfigurator) RemoveMinChangeListener(l *observe.ChangeListener[float64]) *SliderConfigurator {
	c.slider.MinProperty().RemoveListener(l)
	return c
}

func (c *SliderConfigurator) AddMinInvalidationListener(l *observe.InvalidationListener) *SliderConfigurator {
	c.slider.MinProperty().AddInvalidationListener(l)
	return c
}

func (c *SliderConfigurator) RemoveMinInvalidationListener(l *observe.InvalidationListener) *SliderConfigurator {
	c.slider.MinProperty().RemoveInvalidationListener(l)
	return c
}

func (c *SliderConfigurator) BindMinProperty(source observe.ObservableValue[float64]) *SliderConfigurator {
	c.slider.MinProperty().Bind(source)
	return c
}

func (c *SliderConfigurator) UnbindMinProperty() *SliderConfigurator {
	c.slider.MinProperty().Unbind()
	return c
}

func (c *SliderConfigurator) BindBidirectionalMinProperty(other *observe.Property[float64]) *SliderConfigurator {
	c.slider.MinProperty().BindBidirectional(other)
	return c
}

func (c *SliderConfigurator) UnbindBidirectionalMinProperty(other *observe.Property[float64]) *SliderConfigurator {
	c.slider.MinProperty().UnbindBidirectional(other)
	return c
}

func (c *SliderConfigurator) SetMin(v float64) *SliderConfigurator {
	c.slider.SetMin(v)
	return c
}

func (c *SliderConfigurator) AddMaxChangeListener(l *observe.ChangeListener[float64]) *SliderConfigurator {
	c.slider.MaxProperty().AddListener(l)
	return c
}

func (c *SliderConfigurator) RemoveMaxChangeListener(l *observe.ChangeListener[float64]) *SliderConfigurator {
	c.slider.MaxProperty().RemoveListener(l)
	return c
}

func (c *SliderConfigurator) AddMaxInvalidationListener(l *observe.InvalidationListener) *SliderConfigurator {
	c.slider.MaxProperty().AddInvalidationListener(l)
	return c
}

func (c *SliderConfigurator) RemoveMaxInvalidationListener(l *observe.InvalidationListener) *SliderConfigurator {
	c.slider.MaxProperty().RemoveInvalidationListener(l)
	return c
}

func (c *SliderConfigurator) BindMaxProperty(source observe.ObservableValue[float64]) *SliderConfigurator {
	c.slider.MaxProperty().Bind(source)
	return c
}

func (c *SliderConfigurator) UnbindMaxProperty() *SliderConfigurator {
	c.slider.MaxProperty().Unbind()
	return c
}

func (c *SliderConfigurator) BindBidirectionalMaxProperty(other *observe.Property[float64]) *SliderConfigurator {
	c.slider.MaxProperty().BindBidirectional(other)
	return c
}

func (c *SliderConfigurator) UnbindBidirectionalMaxProperty(other *observe.Property[float64]) *SliderConfigurator {
	c.slider.MaxProperty().UnbindBidirectional(other)
	return c
}

func (c *SliderConfigurator) SetMax(v float64) *SliderConfigurator {
	c.slider.SetMax(v)
	return c
}

// Equal reports whether both configurators wrap the same slider.
func (c *SliderConfigurator) Equal(other *SliderConfigurator) bool {
	return other != nil && c.slider == other.slider
}
