package configure

import (
	"testing"

	"github.com/fluentkit/fluentkit"
	"github.com/fluentkit/fluentkit/observe"
)

func TestCustomConfiguratorAccessors(t *testing.T) {
	b := fluentkit.NewButton("go")
	c := NewCustomConfigurator(b)

	if c.CustomControl() != b {
		t.Error("CustomControl() should return the wrapped widget")
	}
	if c.Node() != fluentkit.Node(b) {
		t.Error("Node() should return the wrapped widget")
	}
}

func TestCustomConfiguratorSetCustomControl(t *testing.T) {
	b1 := fluentkit.NewButton("one")
	b2 := fluentkit.NewButton("two")
	c := NewCustomConfigurator(b1)

	c.SetCustomControl(b2)
	if c.CustomControl() != b2 {
		t.Fatal("SetCustomControl should switch the held widget")
	}

	expectPanicCode(t, fluentkit.ErrCodeNilArgument, func() {
		c.SetCustomControl(nil)
	})
	if c.CustomControl() != b2 {
		t.Error("failed SetCustomControl should leave the held widget unchanged")
	}
}

func TestCustomConfiguratorEqual(t *testing.T) {
	b1 := fluentkit.NewButton("one")
	b2 := fluentkit.NewButton("two")

	c1 := NewCustomConfigurator(b1)
	c2 := NewCustomConfigurator(b1)
	c3 := NewCustomConfigurator(b2)

	if !c1.Equal(c2) {
		t.Error("configurators wrapping the same widget should be equal")
	}
	if c1.Equal(c3) {
		t.Error("configurators wrapping different widgets should not be equal")
	}
	if c1.Equal(nil) {
		t.Error("Equal(nil) should be false")
	}
}

func TestSetValueOnOwnedProperty(t *testing.T) {
	b := fluentkit.NewButton("go")
	c := NewCustomConfigurator(b)

	got := SetValue(c, b.TextProperty(), "launch")

	if got != c {
		t.Error("SetValue should return the configurator")
	}
	if b.Text() != "launch" {
		t.Errorf("Text = %q, want %q", b.Text(), "launch")
	}
}

func TestOwnershipMismatchPanicsWithoutMutation(t *testing.T) {
	mine := fluentkit.NewButton("mine")
	other := fluentkit.NewButton("other")
	c := NewCustomConfigurator(mine)

	expectPanicCode(t, fluentkit.ErrCodeOwnershipMismatch, func() {
		SetValue(c, other.TextProperty(), "hijacked")
	})
	if other.Text() != "other" {
		t.Errorf("foreign property was mutated to %q", other.Text())
	}
}

func TestNilPropertyPanics(t *testing.T) {
	b := fluentkit.NewButton("go")
	c := NewCustomConfigurator(b)

	expectPanicCode(t, fluentkit.ErrCodeNilArgument, func() {
		SetValue[*fluentkit.Button, string](c, nil, "x")
	})
}

func TestTypedFamiliesDelegateWithOwnershipCheck(t *testing.T) {
	b := fluentkit.NewButton("go")
	other := fluentkit.NewButton("other")
	c := NewCustomConfigurator(b)

	c.SetStringValue(b.TextProperty(), "typed").
		SetBoolValue(b.WidgetBase().VisibleProperty(), false).
		SetFloat64Value(b.WidgetBase().OpacityProperty(), 0.5)

	if b.Text() != "typed" {
		t.Errorf("Text = %q, want %q", b.Text(), "typed")
	}
	if b.WidgetBase().Visible() {
		t.Error("widget should be hidden")
	}
	if b.WidgetBase().Opacity() != 0.5 {
		t.Errorf("Opacity = %v, want 0.5", b.WidgetBase().Opacity())
	}

	expectPanicCode(t, fluentkit.ErrCodeOwnershipMismatch, func() {
		c.SetBoolValue(other.WidgetBase().VisibleProperty(), false)
	})
}

func TestIntFamilyOnApplicationProperty(t *testing.T) {
	b := fluentkit.NewButton("go")
	c := NewCustomConfigurator(b)
	count := observe.NewProperty(b, "clickCount", 0)

	fired := 0
	listener := observe.OnChange(func(_ observe.ObservableValue[int], _, _ int) {
		fired++
	})

	c.AddIntChangeListener(count, listener).
		SetIntValue(count, 7).
		RemoveIntChangeListener(count, listener).
		SetIntValue(count, 8)

	if count.Get() != 8 {
		t.Errorf("count = %d, want 8", count.Get())
	}
	if fired != 1 {
		t.Errorf("listener fired %d times, want 1", fired)
	}
}

func TestCustomBindAndUnbind(t *testing.T) {
	b := fluentkit.NewButton("go")
	c := NewCustomConfigurator(b)
	source := observe.NewProperty("model", "caption", "bound")

	BindProperty(c, b.TextProperty(), source)
	if b.Text() != "bound" {
		t.Fatalf("text after bind = %q, want %q", b.Text(), "bound")
	}

	source.Set("updated")
	if b.Text() != "updated" {
		t.Errorf("text after source change = %q, want %q", b.Text(), "updated")
	}

	UnbindProperty(c, b.TextProperty())
	source.Set("detached")
	if b.Text() != "updated" {
		t.Errorf("text after unbind = %q, should keep %q", b.Text(), "updated")
	}
}

func TestCustomBindBidirectional(t *testing.T) {
	b := fluentkit.NewButton("go")
	c := NewCustomConfigurator(b)
	model := observe.NewProperty("model", "caption", "start")

	BindBidirectionalProperty(c, b.TextProperty(), model)
	if b.Text() != "start" {
		t.Fatalf("text = %q, want the model value %q", b.Text(), "start")
	}

	model.Set("from model")
	if b.Text() != "from model" {
		t.Errorf("text = %q after model change", b.Text())
	}

	SetValue(c, b.TextProperty(), "from widget")
	if model.Get() != "from widget" {
		t.Errorf("model = %q after widget change", model.Get())
	}

	UnbindBidirectionalProperty(c, b.TextProperty(), model)
	model.Set("severed")
	if b.Text() != "from widget" {
		t.Errorf("text = %q, should stay %q after unbind", b.Text(), "from widget")
	}
}

func TestCustomInvalidationListeners(t *testing.T) {
	b := fluentkit.NewButton("go")
	other := fluentkit.NewButton("other")
	c := NewCustomConfigurator(b)

	invalidated := 0
	listener := observe.OnInvalidated(func(observe.Observable) {
		invalidated++
	})

	c.AddInvalidationListener(b.TextProperty(), listener)
	SetValue(c, b.TextProperty(), "changed")
	if invalidated != 1 {
		t.Fatalf("invalidation fired %d times, want 1", invalidated)
	}

	c.RemoveInvalidationListener(b.TextProperty(), listener)
	SetValue(c, b.TextProperty(), "again")
	if invalidated != 1 {
		t.Errorf("removed listener fired again, count = %d", invalidated)
	}

	expectPanicCode(t, fluentkit.ErrCodeOwnershipMismatch, func() {
		c.AddInvalidationListener(other.TextProperty(), listener)
	})
}

func TestCustomChangeListenerHelpers(t *testing.T) {
	b := fluentkit.NewButton("go")
	c := NewCustomConfigurator(b)

	var gotOld, gotNew string
	listener := observe.OnChange(func(_ observe.ObservableValue[string], oldValue, newValue string) {
		gotOld, gotNew = oldValue, newValue
	})

	AddChangeListener(c, b.TextProperty(), listener)
	SetValue(c, b.TextProperty(), "next")
	if gotOld != "go" || gotNew != "next" {
		t.Errorf("change = (%q, %q), want (%q, %q)", gotOld, gotNew, "go", "next")
	}

	RemoveChangeListener(c, b.TextProperty(), listener)
	SetValue(c, b.TextProperty(), "last")
	if gotNew != "next" {
		t.Errorf("removed listener saw %q", gotNew)
	}
}
