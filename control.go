package fluentkit

import "github.com/fluentkit/fluentkit/observe"

// Control is the base for interactive widgets. It adds the tooltip and
// disable properties and keyboard focus state. A disabled control keeps its
// registered handlers but FireEvent callers are expected to skip it.
type Control struct {
	Region

	tooltip *observe.Property[string]
	disable *observe.Property[bool]
	focused *observe.Property[bool]
}

// NewControl creates a standalone control.
func NewControl() *Control {
	c := &Control{}
	c.initControl(c)
	return c
}

func (c *Control) initControl(self Node) {
	c.initRegion(self)
	c.tooltip = observe.NewStringProperty(self, "tooltip", "")
	c.disable = observe.NewBoolProperty(self, "disable", false)
	c.focused = observe.NewBoolProperty(self, "focused", false)
}

// ControlBase returns the embedded control.
func (c *Control) ControlBase() *Control {
	return c
}

// TooltipProperty returns the tooltip text property.
func (c *Control) TooltipProperty() *observe.Property[string] { return c.tooltip }

// Tooltip returns the tooltip text.
func (c *Control) Tooltip() string { return c.tooltip.Get() }

// SetTooltip sets the tooltip text.
func (c *Control) SetTooltip(text string) { c.tooltip.Set(text) }

// DisableProperty returns the disable property.
func (c *Control) DisableProperty() *observe.Property[bool] { return c.disable }

// Disabled returns whether the control is disabled.
func (c *Control) Disabled() bool { return c.disable.Get() }

// SetDisable enables or disables the control. Disabling a focused control
// drops its focus.
func (c *Control) SetDisable(disabled bool) {
	c.disable.Set(disabled)
	if disabled && c.focused.Get() {
		c.setFocused(false)
	}
}

// FocusedProperty returns the read-side focus property. Focus moves through
// RequestFocus, not through the property.
func (c *Control) FocusedProperty() *observe.Property[bool] { return c.focused }

// Focused returns whether the control has keyboard focus.
func (c *Control) Focused() bool { return c.focused.Get() }

// RequestFocus gives the control keyboard focus and fires a focus event.
// No-op when the control is disabled or already focused.
func (c *Control) RequestFocus() {
	if c.disable.Get() || c.focused.Get() {
		return
	}
	c.setFocused(true)
	FireEvent(c.node(), NewFocusEvent(EventFocus, nil))
}

// ReleaseFocus removes keyboard focus and fires a blur event. No-op when
// the control is not focused.
func (c *Control) ReleaseFocus() {
	if !c.focused.Get() {
		return
	}
	c.setFocused(false)
	FireEvent(c.node(), NewFocusEvent(EventBlur, nil))
}

func (c *Control) setFocused(focused bool) {
	c.focused.Set(focused)
}
