package fluentkit

import (
	"testing"

	errors "github.com/agilira/go-errors"

	"github.com/fluentkit/fluentkit/observe"
)

func expectPanicCode(t *testing.T, code string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with code %s, got none", code)
		}
		coder, ok := r.(errors.ErrorCoder)
		if !ok {
			t.Fatalf("expected coded error panic, got %T: %v", r, r)
		}
		if string(coder.ErrorCode()) != code {
			t.Errorf("expected code %s, got %s", code, coder.ErrorCode())
		}
	}()
	fn()
}

func TestWidgetNodeProperties(t *testing.T) {
	w := NewWidget()

	if !w.Visible() {
		t.Error("widgets should start visible")
	}
	if w.Opacity() != 1.0 {
		t.Errorf("initial opacity = %v, want 1.0", w.Opacity())
	}

	w.SetID("header")
	if w.ID() != "header" {
		t.Errorf("ID = %q, want %q", w.ID(), "header")
	}
	if w.IDProperty().Owner() != w {
		t.Error("id property should be owned by the widget")
	}

	w.StyleClasses().Add("primary")
	w.StyleClasses().Add("primary")
	if w.StyleClasses().Len() != 1 {
		t.Errorf("style classes = %d, want 1 (duplicates ignored)", w.StyleClasses().Len())
	}
}

func TestWidgetTree(t *testing.T) {
	root := NewWidget()
	child := NewWidget()

	root.AddChild(child)
	if child.Parent() != root {
		t.Error("child's parent should be root after AddChild")
	}
	if len(root.Children()) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children()))
	}

	if !root.RemoveChild(child) {
		t.Error("RemoveChild should report the child was present")
	}
	if child.Parent() != nil {
		t.Error("removed child should have no parent")
	}
	if root.RemoveChild(child) {
		t.Error("removing an absent child should report false")
	}
}

func TestAddNilChildPanics(t *testing.T) {
	root := NewWidget()
	expectPanicCode(t, ErrCodeNilArgument, func() {
		root.AddChild(nil)
	})
}

func TestPropertyOwnershipFollowsOuterInstance(t *testing.T) {
	b := NewButton("OK")

	// Properties declared on embedded layers are owned by the button, not
	// by the embedded sub-object.
	if b.TextProperty().Owner() != b {
		t.Error("text property should be owned by the button")
	}
	if b.VisibleProperty().Owner() != b {
		t.Error("visible property should be owned by the button")
	}
	if b.TooltipProperty().Owner() != b {
		t.Error("tooltip property should be owned by the button")
	}
}

// ============================================================================
// Event Dispatch
// ============================================================================

func TestFireEventPhases(t *testing.T) {
	root := NewWidget()
	mid := NewWidget()
	leaf := NewWidget()
	root.AddChild(mid)
	mid.AddChild(leaf)

	var order []string
	record := func(name string) *EventHandler {
		return HandlerFunc(func(Event) { order = append(order, name) })
	}

	root.AddEventFilter(EventClick, record("root-filter"))
	mid.AddEventFilter(EventClick, record("mid-filter"))
	leaf.AddEventFilter(EventClick, record("leaf-filter"))
	leaf.AddEventHandler(EventClick, record("leaf-handler"))
	mid.AddEventHandler(EventClick, record("mid-handler"))
	root.AddEventHandler(EventClick, record("root-handler"))

	e := NewMouseEvent(EventClick, 0, 0, MouseButtonLeft, 0)
	defer e.Release()
	FireEvent(leaf, e)

	want := []string{
		"root-filter", "mid-filter",
		"leaf-filter", "leaf-handler",
		"mid-handler", "root-handler",
	}
	if len(order) != len(want) {
		t.Fatalf("dispatch order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("dispatch order = %v, want %v", order, want)
		}
	}
	if e.Target() != leaf {
		t.Error("event target should be the leaf")
	}
}

func TestConsumeStopsPropagation(t *testing.T) {
	root := NewWidget()
	leaf := NewWidget()
	root.AddChild(leaf)

	var rootSaw bool
	root.AddEventHandler(EventClick, HandlerFunc(func(Event) { rootSaw = true }))
	leaf.AddEventHandler(EventClick, HandlerFunc(func(e Event) { e.Consume() }))

	e := NewMouseEvent(EventClick, 0, 0, MouseButtonLeft, 0)
	defer e.Release()
	FireEvent(leaf, e)

	if rootSaw {
		t.Error("consumed event should not bubble to root")
	}
	if !e.IsConsumed() {
		t.Error("event should report consumed")
	}
}

func TestCaptureFilterInterceptsBeforeTarget(t *testing.T) {
	root := NewWidget()
	leaf := NewWidget()
	root.AddChild(leaf)

	var leafSaw bool
	root.AddEventFilter(EventKeyDown, HandlerFunc(func(e Event) { e.Consume() }))
	leaf.AddEventHandler(EventKeyDown, HandlerFunc(func(Event) { leafSaw = true }))

	e := NewKeyEvent(EventKeyDown, 0, "Escape", 0, 0)
	defer e.Release()
	FireEvent(leaf, e)

	if leafSaw {
		t.Error("capture filter should have intercepted before the target")
	}
}

func TestRemoveEventHandler(t *testing.T) {
	w := NewWidget()
	var calls int
	h := HandlerFunc(func(Event) { calls++ })

	w.AddEventHandler(EventAction, h)
	FireEvent(w, NewActionEvent())
	w.RemoveEventHandler(EventAction, h)
	FireEvent(w, NewActionEvent())

	if calls != 1 {
		t.Errorf("handler calls = %d, want 1", calls)
	}

	// Removing again is a no-op.
	w.RemoveEventHandler(EventAction, h)
}

func TestPooledEventTimestamps(t *testing.T) {
	var last int64
	for i := 0; i < 10; i++ {
		e := NewMouseEvent(EventMouseMove, float32(i), 0, MouseButtonNone, 0)
		if e.Timestamp() < last {
			t.Fatalf("timestamps went backwards: %d after %d", e.Timestamp(), last)
		}
		last = e.Timestamp()
		e.Release()
	}
}

// ============================================================================
// Buttons and Toggles
// ============================================================================

func TestButtonFire(t *testing.T) {
	b := NewButton("Save")

	var fired int
	b.SetOnAction(HandlerFunc(func(Event) { fired++ }))

	b.Fire()
	if fired != 1 {
		t.Fatalf("action fired %d times, want 1", fired)
	}

	b.SetDisable(true)
	b.Fire()
	if fired != 1 {
		t.Errorf("disabled button fired; calls = %d, want 1", fired)
	}

	b.SetDisable(false)
	b.SetOnAction(nil)
	b.Fire()
	if fired != 1 {
		t.Errorf("cleared handler fired; calls = %d, want 1", fired)
	}
}

func TestToggleGroupExclusivity(t *testing.T) {
	g := NewToggleGroup()
	a := NewToggleButton("A")
	b := NewToggleButton("B")
	c := NewToggleButton("C")
	a.SetToggleGroup(g)
	b.SetToggleGroup(g)
	c.SetToggleGroup(g)

	a.SetSelected(true)
	if g.SelectedToggle() != a {
		t.Fatal("a should be the selected toggle")
	}

	b.SetSelected(true)
	if a.Selected() {
		t.Error("selecting b should deselect a")
	}
	if g.SelectedToggle() != b {
		t.Error("b should be the selected toggle")
	}

	b.SetToggleGroup(nil)
	if b.ToggleGroup() != nil {
		t.Error("b should be detached from the group")
	}
	c.SetSelected(true)
	if !b.Selected() {
		t.Error("detached toggle should keep its selection")
	}
}

func TestCheckBoxIndeterminateClearsOnToggle(t *testing.T) {
	cb := NewCheckBox("Agree")
	cb.SetIndeterminate(true)

	e := NewMouseEvent(EventClick, 0, 0, MouseButtonLeft, 0)
	defer e.Release()
	FireEvent(cb, e)

	if cb.Indeterminate() {
		t.Error("click should clear the indeterminate state")
	}
	if !cb.Selected() {
		t.Error("click on indeterminate box should select it")
	}
}

func TestLabelForwardsFocus(t *testing.T) {
	field := NewTextField("")
	label := NewLabel("Name:")
	label.SetLabelFor(field)

	e := NewMouseEvent(EventClick, 0, 0, MouseButtonLeft, 0)
	defer e.Release()
	FireEvent(label, e)

	if !field.Focused() {
		t.Error("clicking the label should focus the associated control")
	}
}

// ============================================================================
// Slider
// ============================================================================

func TestSliderClamping(t *testing.T) {
	tests := []struct {
		name string
		set  float64
		want float64
	}{
		{"in range", 50, 50},
		{"below min", -10, 0},
		{"above max", 200, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlider(0, 100, 0)
			s.SetValue(tt.set)
			if s.Value() != tt.want {
				t.Errorf("Value = %v, want %v", s.Value(), tt.want)
			}
		})
	}
}

func TestSliderRangeShrinkReclamps(t *testing.T) {
	s := NewSlider(0, 100, 80)
	s.SetMax(50)
	if s.Value() != 50 {
		t.Errorf("Value after SetMax(50) = %v, want 50", s.Value())
	}
	s.SetMin(60)
	if s.Value() != 60 {
		t.Errorf("Value after SetMin(60) = %v, want 60", s.Value())
	}
}

func TestSliderValuePropertyBindable(t *testing.T) {
	s := NewSlider(0, 100, 0)
	src := observe.NewFloat64Property(nil, "volume", 30)

	s.ValueProperty().Bind(src)
	if s.Value() != 30 {
		t.Errorf("bound slider value = %v, want 30", s.Value())
	}
	src.Set(70)
	if s.Value() != 70 {
		t.Errorf("bound slider value = %v, want 70", s.Value())
	}
}

// ============================================================================
// Focus
// ============================================================================

func TestFocusEvents(t *testing.T) {
	c := NewControl()

	var events []EventType
	c.AddEventHandler(EventFocus, HandlerFunc(func(e Event) { events = append(events, e.Type()) }))
	c.AddEventHandler(EventBlur, HandlerFunc(func(e Event) { events = append(events, e.Type()) }))

	c.RequestFocus()
	c.RequestFocus() // already focused, no second event
	c.ReleaseFocus()

	if len(events) != 2 || events[0] != EventFocus || events[1] != EventBlur {
		t.Errorf("events = %v, want [focus blur]", events)
	}
}

func TestDisabledControlRefusesFocus(t *testing.T) {
	c := NewControl()
	c.SetDisable(true)
	c.RequestFocus()
	if c.Focused() {
		t.Error("disabled control must not take focus")
	}
}
