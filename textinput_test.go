package fluentkit

import (
	"testing"

	"github.com/fluentkit/fluentkit/observe"
)

func TestTextFieldPropertyBufferSync(t *testing.T) {
	f := NewTextField("initial")

	if f.Text() != "initial" {
		t.Fatalf("Text = %q, want %q", f.Text(), "initial")
	}

	// Edit through the buffer surface; the property follows.
	f.End()
	f.AppendText("!")
	if f.TextProperty().Get() != "initial!" {
		t.Errorf("property = %q, want %q", f.TextProperty().Get(), "initial!")
	}

	// Write through the property; the buffer follows.
	f.SetText("replaced")
	if f.Buffer().Text() != "replaced" {
		t.Errorf("buffer = %q, want %q", f.Buffer().Text(), "replaced")
	}
}

func TestTextFieldStripsNewlines(t *testing.T) {
	f := NewTextField("")
	f.AppendText("one\ntwo")
	if f.Text() != "onetwo" {
		t.Errorf("Text = %q, want %q", f.Text(), "onetwo")
	}
}

func TestTextFieldEditingOperations(t *testing.T) {
	f := NewTextField("hello world")

	f.InsertText(5, ",")
	if f.Text() != "hello, world" {
		t.Fatalf("Text after InsertText = %q, want %q", f.Text(), "hello, world")
	}

	f.ReplaceText(7, 12, "there")
	if f.Text() != "hello, there" {
		t.Fatalf("Text after ReplaceText = %q, want %q", f.Text(), "hello, there")
	}

	f.DeleteText(5, 6)
	if f.Text() != "hello there" {
		t.Fatalf("Text after DeleteText = %q, want %q", f.Text(), "hello there")
	}

	f.Undo()
	if f.Text() != "hello, there" {
		t.Errorf("Text after undo = %q, want %q", f.Text(), "hello, there")
	}
}

func TestCutCopyPaste(t *testing.T) {
	f := NewTextField("hello world")

	f.SelectRange(0, 5)
	f.Copy()
	if ClipboardText() != "hello" {
		t.Fatalf("clipboard = %q, want %q", ClipboardText(), "hello")
	}

	f.SelectRange(6, 11)
	f.Cut()
	if f.Text() != "hello " {
		t.Errorf("Text after cut = %q, want %q", f.Text(), "hello ")
	}
	if ClipboardText() != "world" {
		t.Errorf("clipboard = %q, want %q", ClipboardText(), "world")
	}

	f.End()
	f.Paste()
	if f.Text() != "hello world" {
		t.Errorf("Text after paste = %q, want %q", f.Text(), "hello world")
	}

	// Cut and Copy without a selection leave the clipboard alone.
	f.DeselectAll()
	f.Cut()
	f.Copy()
	if ClipboardText() != "world" {
		t.Errorf("clipboard = %q, want %q (unchanged)", ClipboardText(), "world")
	}
}

func TestNonEditableBlocksEdits(t *testing.T) {
	f := NewTextField("fixed")
	f.SetEditable(false)

	f.AppendText("x")
	f.ReplaceSelection("y")
	if f.Text() != "fixed" {
		t.Errorf("Text = %q, want %q", f.Text(), "fixed")
	}

	f.SetEditable(true)
	f.AppendText("!")
	if f.Text() != "fixed!" {
		t.Errorf("Text = %q, want %q", f.Text(), "fixed!")
	}
}

func TestTextFieldActionOnEnter(t *testing.T) {
	f := NewTextField("query")

	var fired int
	f.SetOnAction(HandlerFunc(func(Event) { fired++ }))

	enter := NewKeyEvent(EventKeyDown, 0, "Enter", 0, 0)
	FireEvent(f, enter)
	enter.Release()
	if fired != 1 {
		t.Fatalf("action fired %d times, want 1", fired)
	}

	other := NewKeyEvent(EventKeyDown, 0, "a", 'a', 0)
	FireEvent(f, other)
	other.Release()
	if fired != 1 {
		t.Errorf("non-Enter key fired action; calls = %d, want 1", fired)
	}
}

func TestTextAreaKeepsNewlines(t *testing.T) {
	a := NewTextArea("line one")
	a.End()
	a.AppendText("\nline two")

	if a.Text() != "line one\nline two" {
		t.Errorf("Text = %q, want %q", a.Text(), "line one\nline two")
	}

	a.SetWrapText(true)
	if !a.WrapText() {
		t.Error("WrapText should be true after SetWrapText")
	}
}

func TestTextChangeListenerSeesBufferEdits(t *testing.T) {
	f := NewTextField("")

	var gotOld, gotNew string
	var calls int
	f.TextProperty().AddListener(observe.OnChange(func(_ observe.ObservableValue[string], oldValue, newValue string) {
		calls++
		gotOld, gotNew = oldValue, newValue
	}))

	f.AppendText("a")
	if calls != 1 {
		t.Fatalf("listener calls = %d, want 1", calls)
	}
	if gotOld != "" || gotNew != "a" {
		t.Errorf("listener saw (%q, %q), want (%q, %q)", gotOld, gotNew, "", "a")
	}
}
