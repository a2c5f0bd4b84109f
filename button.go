package fluentkit

import (
	"sync"

	"github.com/fluentkit/fluentkit/observe"
)

// ButtonBase is the shared base for button-like controls. Its action
// handler is an EventAction handler on the widget itself, so Fire routes
// through normal event dispatch and bubbles like any other event.
type ButtonBase struct {
	Labeled

	onAction *EventHandler
}

func (b *ButtonBase) initButtonBase(self Node, text string) {
	b.initLabeled(self, text)
}

// OnAction returns the registered action handler, or nil.
func (b *ButtonBase) OnAction() *EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.onAction
}

// SetOnAction replaces the action handler. A nil handler clears it.
func (b *ButtonBase) SetOnAction(h *EventHandler) {
	b.mu.Lock()
	prev := b.onAction
	b.onAction = h
	b.mu.Unlock()

	if prev != nil {
		b.RemoveEventHandler(EventAction, prev)
	}
	if h != nil {
		b.AddEventHandler(EventAction, h)
	}
}

// Fire triggers the button's action as if it were clicked. No-op when the
// control is disabled.
func (b *ButtonBase) Fire() {
	if b.Disabled() {
		return
	}
	FireEvent(b.node(), NewActionEvent())
}

// ============================================================================
// Button
// ============================================================================

// Button is a push button. The default flag marks it as the one activated
// by Enter; the cancel flag marks it as the one activated by Escape.
type Button struct {
	ButtonBase

	defaultButton *observe.Property[bool]
	cancelButton  *observe.Property[bool]
}

// NewButton creates a button with the given text.
func NewButton(text string) *Button {
	b := &Button{}
	b.initButtonBase(b, text)
	b.defaultButton = observe.NewBoolProperty(b, "defaultButton", false)
	b.cancelButton = observe.NewBoolProperty(b, "cancelButton", false)
	b.AddEventHandler(EventClick, HandlerFunc(func(Event) {
		b.Fire()
	}))
	return b
}

// DefaultButtonProperty returns the default-button property.
func (b *Button) DefaultButtonProperty() *observe.Property[bool] { return b.defaultButton }

// IsDefaultButton returns whether this is the scene's default button.
func (b *Button) IsDefaultButton() bool { return b.defaultButton.Get() }

// SetDefaultButton marks or unmarks the button as the default button.
func (b *Button) SetDefaultButton(v bool) { b.defaultButton.Set(v) }

// CancelButtonProperty returns the cancel-button property.
func (b *Button) CancelButtonProperty() *observe.Property[bool] { return b.cancelButton }

// IsCancelButton returns whether this is the scene's cancel button.
func (b *Button) IsCancelButton() bool { return b.cancelButton.Get() }

// SetCancelButton marks or unmarks the button as the cancel button.
func (b *Button) SetCancelButton(v bool) { b.cancelButton.Set(v) }

// ============================================================================
// ToggleButton and ToggleGroup
// ============================================================================

// ToggleButton is a button that stays selected until toggled again. Toggle
// buttons in the same ToggleGroup are mutually exclusive.
type ToggleButton struct {
	ButtonBase

	selected *observe.Property[bool]
	group    *ToggleGroup
}

// NewToggleButton creates a toggle button with the given text.
func NewToggleButton(text string) *ToggleButton {
	t := &ToggleButton{}
	t.initButtonBase(t, text)
	t.selected = observe.NewBoolProperty(t, "selected", false)
	t.AddEventHandler(EventClick, HandlerFunc(func(Event) {
		if t.Disabled() {
			return
		}
		t.SetSelected(!t.Selected())
		t.Fire()
	}))
	return t
}

// SelectedProperty returns the selection property.
func (t *ToggleButton) SelectedProperty() *observe.Property[bool] { return t.selected }

// Selected returns whether the button is selected.
func (t *ToggleButton) Selected() bool { return t.selected.Get() }

// SetSelected sets the selection state. Selecting a button in a group
// deselects the group's other members.
func (t *ToggleButton) SetSelected(selected bool) {
	t.selected.Set(selected)
	if selected && t.group != nil {
		t.group.selectOnly(t)
	}
}

// ToggleGroup returns the group the button belongs to, or nil.
func (t *ToggleButton) ToggleGroup() *ToggleGroup {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.group
}

// SetToggleGroup moves the button to a group, removing it from any prior
// group. A nil group detaches the button. If the button is selected on
// joining, the group's prior selection is cleared.
func (t *ToggleButton) SetToggleGroup(g *ToggleGroup) {
	t.mu.RLock()
	prev := t.group
	t.mu.RUnlock()

	if prev == g {
		return
	}
	if prev != nil {
		prev.remove(t)
	}

	t.mu.Lock()
	t.group = g
	t.mu.Unlock()

	if g != nil {
		g.add(t)
		if t.Selected() {
			g.selectOnly(t)
		}
	}
}

// ToggleGroup enforces exclusive selection across its toggle buttons.
type ToggleGroup struct {
	mu      sync.Mutex
	toggles []*ToggleButton
}

// NewToggleGroup creates an empty toggle group.
func NewToggleGroup() *ToggleGroup {
	return &ToggleGroup{}
}

// Toggles returns a copy of the group's members.
func (g *ToggleGroup) Toggles() []*ToggleButton {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*ToggleButton, len(g.toggles))
	copy(out, g.toggles)
	return out
}

// SelectedToggle returns the currently selected member, or nil.
func (g *ToggleGroup) SelectedToggle() *ToggleButton {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, t := range g.toggles {
		if t.Selected() {
			return t
		}
	}
	return nil
}

func (g *ToggleGroup) add(t *ToggleButton) {
	g.mu.Lock()
	g.toggles = append(g.toggles, t)
	g.mu.Unlock()
}

func (g *ToggleGroup) remove(t *ToggleButton) {
	g.mu.Lock()
	for i, cand := range g.toggles {
		if cand == t {
			g.toggles = append(g.toggles[:i], g.toggles[i+1:]...)
			break
		}
	}
	g.mu.Unlock()
}

// selectOnly deselects every member except the given one.
func (g *ToggleGroup) selectOnly(keep *ToggleButton) {
	g.mu.Lock()
	others := make([]*ToggleButton, 0, len(g.toggles))
	for _, t := range g.toggles {
		if t != keep {
			others = append(others, t)
		}
	}
	g.mu.Unlock()

	for _, t := range others {
		if t.Selected() {
			t.selected.Set(false)
		}
	}
}

// ============================================================================
// CheckBox
// ============================================================================

// CheckBox is a tri-state selection control. The indeterminate state
// renders as a dash and clears on the next user toggle.
type CheckBox struct {
	ButtonBase

	selected      *observe.Property[bool]
	indeterminate *observe.Property[bool]
}

// NewCheckBox creates a check box with the given text.
func NewCheckBox(text string) *CheckBox {
	c := &CheckBox{}
	c.initButtonBase(c, text)
	c.selected = observe.NewBoolProperty(c, "selected", false)
	c.indeterminate = observe.NewBoolProperty(c, "indeterminate", false)
	c.AddEventHandler(EventClick, HandlerFunc(func(Event) {
		if c.Disabled() {
			return
		}
		if c.indeterminate.Get() {
			c.indeterminate.Set(false)
			c.selected.Set(true)
		} else {
			c.selected.Set(!c.selected.Get())
		}
		c.Fire()
	}))
	return c
}

// SelectedProperty returns the selection property.
func (c *CheckBox) SelectedProperty() *observe.Property[bool] { return c.selected }

// Selected returns whether the box is checked.
func (c *CheckBox) Selected() bool { return c.selected.Get() }

// SetSelected sets the checked state.
func (c *CheckBox) SetSelected(selected bool) { c.selected.Set(selected) }

// IndeterminateProperty returns the indeterminate property.
func (c *CheckBox) IndeterminateProperty() *observe.Property[bool] { return c.indeterminate }

// Indeterminate returns whether the box is in the indeterminate state.
func (c *CheckBox) Indeterminate() bool { return c.indeterminate.Get() }

// SetIndeterminate sets the indeterminate state.
func (c *CheckBox) SetIndeterminate(v bool) { c.indeterminate.Set(v) }
