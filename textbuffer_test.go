package fluentkit

import (
	"testing"
	"unicode"
)

func TestBufferInsertAndDelete(t *testing.T) {
	b := NewTextBuffer()

	b.Insert("hello")
	if b.Text() != "hello" {
		t.Fatalf("Text = %q, want %q", b.Text(), "hello")
	}
	if b.Cursor() != 5 {
		t.Errorf("Cursor = %d, want 5", b.Cursor())
	}

	b.Delete(-1)
	if b.Text() != "hell" {
		t.Errorf("Text after backspace = %q, want %q", b.Text(), "hell")
	}

	b.SetCursor(0)
	b.Delete(2)
	if b.Text() != "ll" {
		t.Errorf("Text after forward delete = %q, want %q", b.Text(), "ll")
	}
}

func TestBufferUnicode(t *testing.T) {
	b := NewTextBuffer()
	b.Insert("héllo wörld")

	if b.Length() != 11 {
		t.Errorf("Length = %d, want 11 (runes, not bytes)", b.Length())
	}

	b.SetCursor(2)
	b.Delete(1)
	if b.Text() != "hélo wörld" {
		t.Errorf("Text = %q, want %q", b.Text(), "hélo wörld")
	}
}

func TestBufferIndexOperations(t *testing.T) {
	b := NewTextBuffer()
	b.Insert("hello world")

	b.InsertAt(5, ",")
	if b.Text() != "hello, world" {
		t.Fatalf("Text after InsertAt = %q, want %q", b.Text(), "hello, world")
	}

	b.DeleteRange(5, 6)
	if b.Text() != "hello world" {
		t.Fatalf("Text after DeleteRange = %q, want %q", b.Text(), "hello world")
	}

	b.ReplaceRange(6, 11, "there")
	if b.Text() != "hello there" {
		t.Fatalf("Text after ReplaceRange = %q, want %q", b.Text(), "hello there")
	}

	// Reversed and out-of-bounds ranges are normalized.
	b.DeleteRange(100, 6)
	if b.Text() != "hello " {
		t.Errorf("Text after clamped delete = %q, want %q", b.Text(), "hello ")
	}
}

func TestBufferSelectionReplace(t *testing.T) {
	b := NewTextBuffer()
	b.Insert("hello world")

	b.SetSelection(0, 5)
	if b.SelectedText() != "hello" {
		t.Fatalf("SelectedText = %q, want %q", b.SelectedText(), "hello")
	}

	b.Insert("goodbye")
	if b.Text() != "goodbye world" {
		t.Errorf("Text = %q, want %q", b.Text(), "goodbye world")
	}
	if b.HasSelection() {
		t.Error("selection should collapse after replace")
	}
}

func TestBufferWordMotion(t *testing.T) {
	b := NewTextBuffer()
	b.Insert("one two three")

	b.MoveToStart(false)
	b.MoveWord(true, false)
	if b.Cursor() != 3 {
		t.Errorf("cursor after word forward = %d, want 3", b.Cursor())
	}
	b.MoveWord(true, false)
	if b.Cursor() != 7 {
		t.Errorf("cursor after second word forward = %d, want 7", b.Cursor())
	}
	b.MoveWord(false, false)
	if b.Cursor() != 4 {
		t.Errorf("cursor after word back = %d, want 4", b.Cursor())
	}

	b.SelectWordAt(5)
	if b.SelectedText() != "two" {
		t.Errorf("SelectedText = %q, want %q", b.SelectedText(), "two")
	}
}

func TestBufferLineMotion(t *testing.T) {
	b := NewTextBuffer()
	b.SetMultiline(true)
	b.Insert("first\nsecond\nthird")

	b.SetCursor(9) // inside "second"
	b.MoveToLineStart(false)
	if b.Cursor() != 6 {
		t.Errorf("line start = %d, want 6", b.Cursor())
	}
	b.MoveToLineEnd(false)
	if b.Cursor() != 12 {
		t.Errorf("line end = %d, want 12", b.Cursor())
	}
}

func TestBufferSingleLineStripsNewlines(t *testing.T) {
	b := NewTextBuffer()
	b.Insert("one\ntwo\r\nthree")
	if b.Text() != "onetwothree" {
		t.Errorf("Text = %q, want %q", b.Text(), "onetwothree")
	}
}

func TestBufferMaxLength(t *testing.T) {
	b := NewTextBuffer()
	b.SetMaxLength(5)

	b.Insert("hello world")
	if b.Text() != "hello" {
		t.Errorf("Text = %q, want %q (truncated)", b.Text(), "hello")
	}

	b.Insert("!")
	if b.Text() != "hello" {
		t.Errorf("Text = %q, want %q (at cap)", b.Text(), "hello")
	}
}

func TestBufferCharFilter(t *testing.T) {
	b := NewTextBuffer()
	b.SetCharFilter(unicode.IsDigit)

	b.Insert("a1b2c3")
	if b.Text() != "123" {
		t.Errorf("Text = %q, want %q", b.Text(), "123")
	}
}

func TestBufferReadOnly(t *testing.T) {
	b := NewTextBuffer()
	b.Insert("locked")
	b.SetReadOnly(true)

	b.Insert("x")
	b.Delete(-1)
	b.DeleteRange(0, 3)
	b.ReplaceRange(0, 3, "y")
	if b.Text() != "locked" {
		t.Errorf("Text = %q, want %q (read-only)", b.Text(), "locked")
	}

	// Selection still works.
	b.SelectAll()
	if b.SelectedText() != "locked" {
		t.Errorf("SelectedText = %q, want %q", b.SelectedText(), "locked")
	}
}

func TestBufferUndoRedo(t *testing.T) {
	b := NewTextBuffer()
	b.Insert("hello")
	b.Insert(" world")

	if !b.Undo() {
		t.Fatal("Undo should succeed")
	}
	if b.Text() != "hello" {
		t.Errorf("Text after undo = %q, want %q", b.Text(), "hello")
	}

	if !b.Redo() {
		t.Fatal("Redo should succeed")
	}
	if b.Text() != "hello world" {
		t.Errorf("Text after redo = %q, want %q", b.Text(), "hello world")
	}

	b.Undo()
	b.Undo()
	if b.Text() != "" {
		t.Errorf("Text after full undo = %q, want empty", b.Text())
	}
	if b.Undo() {
		t.Error("Undo on empty stack should return false")
	}
}

func TestBufferNewEditClearsRedo(t *testing.T) {
	b := NewTextBuffer()
	b.Insert("one")
	b.Undo()
	b.Insert("two")

	if b.Redo() {
		t.Error("redo stack should be cleared by a new edit")
	}
	if b.Text() != "two" {
		t.Errorf("Text = %q, want %q", b.Text(), "two")
	}
}

func TestBufferOnChangeSynchronous(t *testing.T) {
	b := NewTextBuffer()

	var got []string
	b.OnChange(func(text string) { got = append(got, text) })

	b.Insert("a")
	b.Insert("b")
	b.SetText("silent") // SetText never notifies

	if len(got) != 2 || got[0] != "a" || got[1] != "ab" {
		t.Errorf("change notifications = %v, want [a ab]", got)
	}
}
