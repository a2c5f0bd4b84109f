package configure

import (
	"github.com/fluentkit/fluentkit"
	"github.com/fluentkit/fluentkit/observe"
)

// ButtonConfigurator is the fluent configurator for a push button.
type ButtonConfigurator struct {
	buttonBaseConfigurator[*ButtonConfigurator]
	button *fluentkit.Button
}

var _ ButtonConfig[*ButtonConfigurator] = (*ButtonConfigurator)(nil)

// NewButtonConfigurator wraps a button. Panics if b is nil.
func NewButtonConfigurator(b *fluentkit.Button) *ButtonConfigurator {
	requireWidget("NewButtonConfigurator", b != nil)
	c := &ButtonConfigurator{}
	c.attach(b)
	return c
}

func (c *ButtonConfigurator) attach(b *fluentkit.Button) {
	c.button = b
	c.initButtonBase(c, b, &b.ButtonBase)
}

// Button returns the wrapped button.
func (c *ButtonConfigurator) Button() *fluentkit.Button {
	return c.button
}

// SetNode reassigns the configurator to another button. Panics if n is nil
// or not a *fluentkit.Button; the held widget is unchanged on failure.
func (c *ButtonConfigurator) SetNode(n fluentkit.Node) *ButtonConfigurator {
	b, ok := n.(*fluentkit.Button)
	if !ok || b == nil {
		wrongNodeType("ButtonConfigurator.SetNode", "*fluentkit.Button")
	}
	c.attach(b)
	return c
}

func (c *ButtonConfigurator) AddDefaultButtonChangeListener(l *observe.ChangeListener[bool]) *ButtonConfigurator {
	c.button.DefaultButtonProperty().AddListener(l)
	return c
}

func (c *ButtonConfigurator) RemoveDefaultButtonChangeListener(l *observe.ChangeListener[bool]) *ButtonConfigurator {
	c.button.DefaultButtonProperty().RemoveListener(l)
	return c
}

func (c *ButtonConfigurator) AddDefaultButtonInvalidationListener(l *observe.InvalidationListener) *ButtonConfigurator {
	c.button.DefaultButtonProperty().AddInvalidationListener(l)
	return c
}

func (c *ButtonConfigurator) RemoveDefaultButtonInvalidationListener(l *observe.InvalidationListener) *ButtonConfigurator {
	c.button.DefaultButtonProperty().RemoveInvalidationListener(l)
	return c
}

func (c *ButtonConfigurator) BindDefaultButtonProperty(source observe.ObservableValue[bool]) *ButtonConfigurator {
	c.button.DefaultButtonProperty().Bind(source)
	return c
}

func (c *ButtonConfigurator) UnbindDefaultButtonProperty() *ButtonConfigurator {
	c.button.DefaultButtonProperty().Unbind()
	return c
}

func (c *ButtonConfigurator) BindBidirectionalDefaultButtonProperty(other *observe.Property[bool]) *ButtonConfigurator {
	c.button.DefaultButtonProperty().BindBidirectional(other)
	return c
}

func (c *ButtonConfigurator) UnbindBidirectionalDefaultButtonProperty(other *observe.Property[bool]) *ButtonConfigurator {
	c.button.DefaultButtonProperty().UnbindBidirectional(other)
	return c
}

func (c *ButtonConfigurator) SetDefaultButton(v bool) *ButtonConfigurator {
	c.button.SetDefaultButton(v)
	return c
}

func (c *ButtonConfigurator) AddCancelButtonChangeListener(l *observe.ChangeListener[bool]) *ButtonConfigurator {
	c.button.CancelButtonProperty().AddListener(l)
	return c
}

func (c *ButtonConfigurator) RemoveCancelButtonChangeListener(l *observe.ChangeListener[bool]) *ButtonConfigurator {
	c.button.CancelButtonProperty().RemoveListener(l)
	return c
}

func (c *ButtonConfigurator) AddCancelButtonInvalidationListener(l *observe.InvalidationListener) *ButtonConfigurator {
	c.button.CancelButtonProperty().AddInvalidationListener(l)
	return c
}

func (c *ButtonConfigurator) RemoveCancelButtonInvalidationListener(l *observe.InvalidationListener) *ButtonConfigurator {
	c.button.CancelButtonProperty().RemoveInvalidationListener(l)
	return c
}

func (c *ButtonConfigurator) BindCancelButtonProperty(source observe.ObservableValue[bool]) *ButtonConfigurator {
	c.button.CancelButtonProperty().Bind(source)
	return c
}

func (c *ButtonConfigurator) UnbindCancelButtonProperty() *ButtonConfigurator {
	c.button.CancelButtonProperty().Unbind()
	return c
}

func (c *ButtonConfigurator) BindBidirectionalCancelButtonProperty(other *observe.Property[bool]) *ButtonConfigurator {
	c.button.CancelButtonProperty().BindBidirectional(other)
	return c
}

func (c *ButtonConfigurator) UnbindBidirectionalCancelButtonProperty(other *observe.Property[bool]) *ButtonConfigurator {
	c.button.CancelButtonProperty().UnbindBidirectional(other)
	return c
}

func (c *ButtonConfigurator) SetCancelButton(v bool) *ButtonConfigurator {
	c.button.SetCancelButton(v)
	return c
}

// Equal reports whether both configurators wrap the same button.
func (c *ButtonConfigurator) Equal(other *ButtonConfigurator) bool {
	return other != nil && c.button == other.button
}

// ============================================================================
// ToggleButtonConfigurator
// ============================================================================

// ToggleButtonConfigurator is the fluent configurator for a toggle button.
type ToggleButtonConfigurator struct {
	buttonBaseConfigurator[*ToggleButtonConfigurator]
	toggle *fluentkit.ToggleButton
}

var _ ToggleButtonConfig[*ToggleButtonConfigurator] = (*ToggleButtonConfigurator)(nil)

// NewToggleButtonConfigurator wraps a toggle button. Panics if t is nil.
func NewToggleButtonConfigurator(t *fluentkit.ToggleButton) *ToggleButtonConfigurator {
	requireWidget("NewToggleButtonConfigurator", t != nil)
	c := &ToggleButtonConfigurator{}
	c.attach(t)
	return c
}

func (c *ToggleButtonConfigurator) attach(t *fluentkit.ToggleButton) {
	c.toggle = t
	c.initButtonBase(c, t, &t.ButtonBase)
}

// ToggleButton returns the wrapped toggle button.
func (c *ToggleButtonConfigurator) ToggleButton() *fluentkit.ToggleButton {
	return c.toggle
}

// SetNode reassigns the configurator to another toggle button. Panics if n
// is nil or not a *fluentkit.ToggleButton; the held widget is unchanged on
// failure.
func (c *ToggleButtonConfigurator) SetNode(n fluentkit.Node) *ToggleButtonConfigurator {
	t, ok := n.(*fluentkit.ToggleButton)
	if !ok || t == nil {
		wrongNodeType("ToggleButtonConfigurator.SetNode", "*fluentkit.ToggleButton")
	}
	c.attach(t)
	return c
}

func (c *ToggleButtonConfigurator) AddSelectedChangeListener(l *observe.ChangeListener[bool]) *ToggleButtonConfigurator {
	c.toggle.SelectedProperty().AddListener(l)
	return c
}

func (c *ToggleButtonConfigurator) RemoveSelectedChangeListener(l *observe.ChangeListener[bool]) *ToggleButtonConfigurator {
	c.toggle.SelectedProperty().RemoveListener(l)
	return c
}

func (c *ToggleButtonConfigurator) AddSelectedInvalidationListener(l *observe.InvalidationListener) *ToggleButtonConfigurator {
	c.toggle.SelectedProperty().AddInvalidationListener(l)
	return c
}

func (c *ToggleButtonConfigurator) RemoveSelectedInvalidationListener(l *observe.InvalidationListener) *ToggleButtonConfigurator {
	c.toggle.SelectedProperty().RemoveInvalidationListener(l)
	return c
}

func (c *ToggleButtonConfigurator) BindSelectedProperty(source observe.ObservableValue[bool]) *ToggleButtonConfigurator {
	c.toggle.SelectedProperty().Bind(source)
	return c
}

func (c *ToggleButtonConfigurator) UnbindSelectedProperty() *ToggleButtonConfigurator {
	c.toggle.SelectedProperty().Unbind()
	return c
}

func (c *ToggleButtonConfigurator) BindBidirectionalSelectedProperty(other *observe.Property[bool]) *ToggleButtonConfigurator {
	c.toggle.SelectedProperty().BindBidirectional(other)
	return c
}

func (c *ToggleButtonConfigurator) UnbindBidirectionalSelectedProperty(other *observe.Property[bool]) *ToggleButtonConfigurator {
	c.toggle.SelectedProperty().UnbindBidirectional(other)
	return c
}

func (c *ToggleButtonConfigurator) SetSelected(selected bool) *ToggleButtonConfigurator {
	c.toggle.SetSelected(selected)
	return c
}

// SetToggleGroup moves the toggle into a group. A nil group detaches it.
func (c *ToggleButtonConfigurator) SetToggleGroup(g *fluentkit.ToggleGroup) *ToggleButtonConfigurator {
	c.toggle.SetToggleGroup(g)
	return c
}

// Equal reports whether both configurators wrap the same toggle button.
func (c *ToggleButtonConfigurator) Equal(other *ToggleButtonConfigurator) bool {
	return other != nil && c.toggle == other.toggle
}

// ============================================================================
// CheckBoxConfigurator
// ============================================================================

// CheckBoxConfigurator is the fluent configurator for a check box.
type CheckBoxConfigurator struct {
	buttonBaseConfigurator[*CheckBoxConfigurator]
	checkBox *fluentkit.CheckBox
}

var _ CheckBoxConfig[*CheckBoxConfigurator] = (*CheckBoxConfigurator)(nil)

// NewCheckBoxConfigurator wraps a check box. Panics if cb is nil.
func NewCheckBoxConfigurator(cb *fluentkit.CheckBox) *CheckBoxConfigurator {
	requireWidget("NewCheckBoxConfigurator", cb != nil)
	c := &CheckBoxConfigurator{}
	c.attach(cb)
	return c
}

func (c *CheckBoxConfigurator) attach(cb *fluentkit.CheckBox) {
	c.checkBox = cb
	c.initButtonBase(c, cb, &cb.ButtonBase)
}

// CheckBox returns the wrapped check box.
func (c *CheckBoxConfigurator) CheckBox() *fluentkit.CheckBox {
	return c.checkBox
}

// SetNode reassigns the configurator to another check box. Panics if n is
// nil or not a *fluentkit.CheckBox; the held widget is unchanged on
// failure.
func (c *CheckBoxConfigurator) SetNode(n fluentkit.Node) *CheckBoxConfigurator {
	cb, ok := n.(*fluentkit.CheckBox)
	if !ok || cb == nil {
		wrongNodeType("CheckBoxConfigurator.SetNode", "*fluentkit.CheckBox")
	}
	c.attach(cb)
	return c
}

func (c *CheckBoxConfigurator) AddSelectedChangeListener(l *observe.ChangeListener[bool]) *CheckBoxConfigurator {
	c.checkBox.SelectedProperty().AddListener(l)
	return c
}

func (c *CheckBoxConfigurator) RemoveSelectedChangeListener(l *observe.ChangeListener[bool]) *CheckBoxConfigurator {
	c.checkBox.SelectedProperty().RemoveListener(l)
	return c
}

func (c *CheckBoxConfigurator) AddSelectedInvalidationListener(l *observe.InvalidationListener) *CheckBoxConfigurator {
	c.checkBox.SelectedProperty().AddInvalidationListener(l)
	return c
}

func (c *CheckBoxConfigurator) RemoveSelectedInvalidationListener(l *observe.InvalidationListener) *CheckBoxConfigurator {
	c.checkBox.SelectedProperty().RemoveInvalidationListener(l)
	return c
}

func (c *CheckBoxConfigurator) BindSelectedProperty(source observe.ObservableValue[bool]) *CheckBoxConfigurator {
	c.checkBox.SelectedProperty().Bind(source)
	return c
}

func (c *CheckBoxConfigurator) UnbindSelectedProperty() *CheckBoxConfigurator {
	c.checkBox.SelectedProperty().Unbind()
	return c
}

func (c *CheckBoxConfigurator) BindBidirectionalSelectedProperty(other *observe.Property[bool]) *CheckBoxConfigurator {
	c.checkBox.SelectedProperty().BindBidirectional(other)
	return c
}

func (c *CheckBoxConfigurator) UnbindBidirectionalSelectedProperty(other *observe.Property[bool]) *CheckBoxConfigurator {
	c.checkBox.SelectedProperty().UnbindBidirectional(other)
	return c
}

func (c *CheckBoxConfigurator) SetSelected(selected bool) *CheckBoxConfigurator {
	c.checkBox.SetSelected(selected)
	return c
}

func (c *CheckBoxConfigurator) AddIndeterminateChangeListener(l *observe.ChangeListener[bool]) *CheckBoxConfigurator {
	c.checkBox.IndeterminateProperty().AddListener(l)
	return c
}

func (c *CheckBoxConfigurator) RemoveIndeterminateChangeListener(l *observe.ChangeListener[bool]) *CheckBoxConfigurator {
	c.checkBox.IndeterminateProperty().RemoveListener(l)
	return c
}

func (c *CheckBoxConfigurator) AddIndeterminateInvalidationListener(l *observe.InvalidationListener) *CheckBoxConfigurator {
	c.checkBox.IndeterminateProperty().AddInvalidationListener(l)
	return c
}

func (c *CheckBoxConfigurator) RemoveIndeterminateInvalidationListener(l *observe.InvalidationListener) *CheckBoxConfigurator {
	c.checkBox.IndeterminateProperty().RemoveInvalidationListener(l)
	return c
}

func (c *CheckBoxConfigurator) BindIndeterminateProperty(source observe.ObservableValue[bool]) *CheckBoxConfigurator {
	c.checkBox.IndeterminateProperty().Bind(source)
	return c
}

func (c *CheckBoxConfigurator) UnbindIndeterminateProperty() *CheckBoxConfigurator {
	c.checkBox.IndeterminateProperty().Unbind()
	return c
}

func (c *CheckBoxConfigurator) BindBidirectionalIndeterminateProperty(other *observe.Property[bool]) *CheckBoxConfigurator {
	c.checkBox.IndeterminateProperty().BindBidirectional(other)
	return c
}

func (c *CheckBoxConfigurator) UnbindBidirectionalIndeterminateProperty(other *observe.Property[bool]) *CheckBoxConfigurator {
	c.checkBox.IndeterminateProperty().UnbindBidirectional(other)
	return c
}

func (c *CheckBoxConfigurator) SetIndeterminate(v bool) *CheckBoxConfigurator {
	c.checkBox.SetIndeterminate(v)
	return c
}

// Equal reports whether both configurators wrap the same check box.
func (c *CheckBoxConfigurator) Equal(other *CheckBoxConfigurator) bool {
	return other != nil && c.checkBox == other.checkBox
}
