package configure

import (
	"testing"

	errors "github.com/agilira/go-errors"

	"github.com/fluentkit/fluentkit"
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

func TestFactoriesRejectNilWidget(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"button", func() { NewButtonConfigurator(nil) }},
		{"toggle button", func() { NewToggleButtonConfigurator(nil) }},
		{"check box", func() { NewCheckBoxConfigurator(nil) }},
		{"label", func() { NewLabelConfigurator(nil) }},
		{"slider", func() { NewSliderConfigurator(nil) }},
		{"text field", func() { NewTextFieldConfigurator(nil) }},
		{"text area", func() { NewTextAreaConfigurator(nil) }},
		{"custom", func() { NewCustomConfigurator[*fluentkit.Button](nil) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expectPanicCode(t, fluentkit.ErrCodeNilArgument, tc.fn)
		})
	}
}

func TestChainReturnsReceiver(t *testing.T) {
	b := fluentkit.NewButton("OK")
	c := NewButtonConfigurator(b)

	got := c.
		SetText("Submit").
		SetVisible(true).
		SetTooltip("save the form").
		SetPrefSize(120, 32).
		SetDefaultButton(true)

	if got != c {
		t.Fatal("chained calls should return the same configurator")
	}
	if b.Text() != "Submit" {
		t.Errorf("Text = %q, want %q", b.Text(), "Submit")
	}
	if b.Tooltip() != "save the form" {
		t.Errorf("Tooltip = %q, want %q", b.Tooltip(), "save the form")
	}
	if !b.IsDefaultButton() {
		t.Error("button should be the default button after the chain")
	}
}

func TestNodeAccessors(t *testing.T) {
	b := fluentkit.NewButton("OK")
	c := NewButtonConfigurator(b)

	if c.Node() != fluentkit.Node(b) {
		t.Error("Node() should return the wrapped widget")
	}
	if c.Button() != b {
		t.Error("Button() should return the wrapped button")
	}
}

func TestEqualComparesWrappedWidget(t *testing.T) {
	b1 := fluentkit.NewButton("one")
	b2 := fluentkit.NewButton("two")

	c1 := NewButtonConfigurator(b1)
	c2 := NewButtonConfigurator(b1)
	c3 := NewButtonConfigurator(b2)

	if !c1.Equal(c2) {
		t.Error("configurators wrapping the same button should be equal")
	}
	if c1.Equal(c3) {
		t.Error("configurators wrapping different buttons should not be equal")
	}
	if c1.Equal(nil) {
		t.Error("Equal(nil) should be false")
	}
}

func TestSetNodeSwitchesWidget(t *testing.T) {
	b1 := fluentkit.NewButton("one")
	b2 := fluentkit.NewButton("two")
	c := NewButtonConfigurator(b1)

	c.SetNode(b2).SetText("rewired")

	if c.Button() != b2 {
		t.Fatal("SetNode should switch the held button")
	}
	if b2.Text() != "rewired" {
		t.Errorf("b2 text = %q, want %q", b2.Text(), "rewired")
	}
	if b1.Text() != "one" {
		t.Errorf("b1 text = %q, should be untouched", b1.Text())
	}
}

func TestSetNodeWrongTypeLeavesWidgetHeld(t *testing.T) {
	b := fluentkit.NewButton("one")
	c := NewButtonConfigurator(b)

	expectPanicCode(t, fluentkit.ErrCodeWrongNodeType, func() {
		c.SetNode(fluentkit.NewLabel("not a button"))
	})
	if c.Button() != b {
		t.Error("failed SetNode should leave the held button unchanged")
	}
}

func TestTextFieldChainEditing(t *testing.T) {
	f := fluentkit.NewTextField("")
	c := NewTextFieldConfigurator(f)

	c.SetText("hi").AppendText("!")

	if f.Text() != "hi!" {
		t.Errorf("Text = %q, want %q", f.Text(), "hi!")
	}
}

func TestTextChangeListenerFiresOnce(t *testing.T) {
	f := fluentkit.NewTextField("")
	c := NewTextFieldConfigurator(f)

	fired := 0
	var gotOld, gotNew string
	listener := observe.OnChange(func(_ observe.ObservableValue[string], oldValue, newValue string) {
		fired++
		gotOld, gotNew = oldValue, newValue
	})

	c.AddTextChangeListener(listener).SetText("a")

	if fired != 1 {
		t.Fatalf("listener fired %d times, want 1", fired)
	}
	if gotOld != "" || gotNew != "a" {
		t.Errorf("change = (%q, %q), want (%q, %q)", gotOld, gotNew, "", "a")
	}

	c.RemoveTextChangeListener(listener).SetText("b")
	if fired != 1 {
		t.Errorf("removed listener fired again, count = %d", fired)
	}
}

func TestBindTextRoundTrip(t *testing.T) {
	l := fluentkit.NewLabel("initial")
	c := NewLabelConfigurator(l)
	source := observe.NewProperty("model", "title", "bound")

	c.BindTextProperty(source)
	if l.Text() != "bound" {
		t.Fatalf("text after bind = %q, want %q", l.Text(), "bound")
	}

	source.Set("updated")
	if l.Text() != "updated" {
		t.Errorf("text after source change = %q, want %q", l.Text(), "updated")
	}

	c.UnbindTextProperty()
	source.Set("detached")
	if l.Text() != "updated" {
		t.Errorf("text after unbind = %q, should keep last bound value %q", l.Text(), "updated")
	}
}

func TestBoundPropertyRejectsDirectSet(t *testing.T) {
	l := fluentkit.NewLabel("initial")
	c := NewLabelConfigurator(l)
	source := observe.NewProperty("model", "title", "bound")

	c.BindTextProperty(source)
	expectPanicCode(t, observe.ErrCodeBoundValue, func() {
		c.SetText("direct")
	})
}

func TestBindBidirectionalSliderValue(t *testing.T) {
	s := fluentkit.NewSlider(0, 100, 50)
	c := NewSliderConfigurator(s)
	model := observe.NewProperty("model", "volume", 50.0)

	c.BindBidirectionalValueProperty(model)

	model.Set(30)
	if s.Value() != 30 {
		t.Errorf("slider value = %v, want 30 after model change", s.Value())
	}

	c.SetValue(80)
	if model.Get() != 80 {
		t.Errorf("model value = %v, want 80 after slider change", model.Get())
	}

	c.UnbindBidirectionalValueProperty(model)
	model.Set(10)
	if s.Value() != 80 {
		t.Errorf("slider value = %v, should stay 80 after unbind", s.Value())
	}
}

func TestSliderConfiguratorClampsThroughSetters(t *testing.T) {
	s := fluentkit.NewSlider(0, 100, 50)
	c := NewSliderConfigurator(s)

	c.SetValue(250)
	if s.Value() != 100 {
		t.Errorf("value = %v, want 100 (clamped to max)", s.Value())
	}

	c.SetMax(60)
	if s.Value() != 60 {
		t.Errorf("value = %v, want 60 after max shrink", s.Value())
	}
}

func TestCheckBoxConfigurator(t *testing.T) {
	cb := fluentkit.NewCheckBox("remember me")
	c := NewCheckBoxConfigurator(cb)

	c.SetSelected(true).SetIndeterminate(true)

	if !cb.Selected() {
		t.Error("check box should be selected")
	}
	if !cb.Indeterminate() {
		t.Error("check box should be indeterminate")
	}
}

func TestToggleButtonConfiguratorGroupWiring(t *testing.T) {
	g := fluentkit.NewToggleGroup()
	t1 := fluentkit.NewToggleButton("left")
	t2 := fluentkit.NewToggleButton("right")

	NewToggleButtonConfigurator(t1).SetToggleGroup(g).SetSelected(true)
	NewToggleButtonConfigurator(t2).SetToggleGroup(g).SetSelected(true)

	if t1.Selected() {
		t.Error("t1 should be deselected after t2 was selected in the same group")
	}
	if g.SelectedToggle() != t2 {
		t.Error("group's selected toggle should be t2")
	}
}

func TestButtonConfiguratorActionFires(t *testing.T) {
	b := fluentkit.NewButton("go")
	c := NewButtonConfigurator(b)

	fired := 0
	c.SetOnAction(fluentkit.HandlerFunc(func(fluentkit.Event) {
		fired++
	})).Fire()

	if fired != 1 {
		t.Errorf("action fired %d times, want 1", fired)
	}
}

func TestLabelConfiguratorLabelFor(t *testing.T) {
	f := fluentkit.NewTextField("")
	l := fluentkit.NewLabel("Name")

	NewLabelConfigurator(l).SetLabelFor(f)

	if l.LabelFor() != fluentkit.Node(f) {
		t.Error("label should reference the text field")
	}
}

func TestTextAreaConfiguratorWrapText(t *testing.T) {
	a := fluentkit.NewTextArea("line one\nline two")
	c := NewTextAreaConfigurator(a)

	c.SetWrapText(true)
	if !a.WrapText() {
		t.Error("wrap text should be enabled")
	}
	if a.Text() != "line one\nline two" {
		t.Errorf("Text = %q, newlines should survive in a text area", a.Text())
	}
}

func TestConfiguratorEventRegistration(t *testing.T) {
	b := fluentkit.NewButton("go")
	c := NewButtonConfigurator(b)

	clicks := 0
	h := fluentkit.HandlerFunc(func(fluentkit.Event) { clicks++ })

	ev := fluentkit.NewMouseEvent(fluentkit.EventClick, 0, 0, fluentkit.MouseButtonLeft, 0)
	c.AddEventHandler(fluentkit.EventClick, h).FireEvent(ev)
	ev.Release()

	if clicks != 1 {
		t.Fatalf("handler fired %d times, want 1", clicks)
	}

	ev = fluentkit.NewMouseEvent(fluentkit.EventClick, 0, 0, fluentkit.MouseButtonLeft, 0)
	c.RemoveEventHandler(fluentkit.EventClick, h).FireEvent(ev)
	ev.Release()

	if clicks != 1 {
		t.Errorf("removed handler fired again, count = %d", clicks)
	}
}
