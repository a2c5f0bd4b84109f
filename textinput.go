package fluentkit

import (
	"sync"
	"sync/atomic"

	"github.com/fluentkit/fluentkit/observe"
)

// clipboard is the process-wide text clipboard backing Cut, Copy and Paste.
type clipboardStore struct {
	mu   sync.RWMutex
	text string
}

var clipboard clipboardStore

// ClipboardText returns the current clipboard content.
func ClipboardText() string {
	clipboard.mu.RLock()
	defer clipboard.mu.RUnlock()
	return clipboard.text
}

// SetClipboardText replaces the clipboard content.
func SetClipboardText(text string) {
	clipboard.mu.Lock()
	clipboard.text = text
	clipboard.mu.Unlock()
}

// TextInputControl is the base for text-entry controls. The text property
// and the editing buffer stay in sync: edits through the buffer update the
// property, and writes to the property replace the buffer content.
type TextInputControl struct {
	Control

	buffer *TextBuffer

	text       *observe.Property[string]
	promptText *observe.Property[string]
	editable   *observe.Property[bool]

	// Set while an edit is propagating buffer -> property, so the
	// property listener does not push the same content back.
	syncing atomic.Bool
}

func (t *TextInputControl) initTextInput(self Node, text string, multiline bool) {
	t.initControl(self)
	t.buffer = NewTextBuffer()
	t.buffer.SetMultiline(multiline)
	t.buffer.SetText(text)

	t.text = observe.NewStringProperty(self, "text", text)
	t.promptText = observe.NewStringProperty(self, "promptText", "")
	t.editable = observe.NewBoolProperty(self, "editable", true)

	t.buffer.OnChange(func(content string) {
		t.syncing.Store(true)
		t.text.Set(content)
		t.syncing.Store(false)
	})
	t.text.AddListener(observe.OnChange(func(_ observe.ObservableValue[string], _, newValue string) {
		if t.syncing.Load() {
			return
		}
		t.buffer.SetText(newValue)
	}))
	t.editable.AddListener(observe.OnChange(func(_ observe.ObservableValue[bool], _, editable bool) {
		t.buffer.SetReadOnly(!editable)
	}))
}

// Buffer exposes the underlying editing engine.
func (t *TextInputControl) Buffer() *TextBuffer {
	return t.buffer
}

// TextInputBase returns the embedded text input control.
func (t *TextInputControl) TextInputBase() *TextInputControl {
	return t
}

// TextProperty returns the text content property.
func (t *TextInputControl) TextProperty() *observe.Property[string] { return t.text }

// Text returns the text content.
func (t *TextInputControl) Text() string { return t.text.Get() }

// SetText replaces the text content.
func (t *TextInputControl) SetText(text string) { t.text.Set(text) }

// PromptTextProperty returns the prompt (placeholder) text property.
func (t *TextInputControl) PromptTextProperty() *observe.Property[string] { return t.promptText }

// PromptText returns the prompt text shown when the control is empty.
func (t *TextInputControl) PromptText() string { return t.promptText.Get() }

// SetPromptText sets the prompt text.
func (t *TextInputControl) SetPromptText(text string) { t.promptText.Set(text) }

// EditableProperty returns the editable property.
func (t *TextInputControl) EditableProperty() *observe.Property[bool] { return t.editable }

// Editable returns whether the control accepts edits.
func (t *TextInputControl) Editable() bool { return t.editable.Get() }

// SetEditable enables or disables editing. Selection and copy keep working
// on a non-editable control.
func (t *TextInputControl) SetEditable(editable bool) { t.editable.Set(editable) }

// Length returns the content length in characters.
func (t *TextInputControl) Length() int { return t.buffer.Length() }

// CaretPosition returns the caret position.
func (t *TextInputControl) CaretPosition() int { return t.buffer.Cursor() }

// SelectedText returns the selected text, or "".
func (t *TextInputControl) SelectedText() string { return t.buffer.SelectedText() }

// ============================================================================
// Editing Operations
// ============================================================================

// InsertText inserts text at a character index.
func (t *TextInputControl) InsertText(index int, text string) {
	t.buffer.InsertAt(index, text)
}

// DeleteText removes the characters in [start, end).
func (t *TextInputControl) DeleteText(start, end int) {
	t.buffer.DeleteRange(start, end)
}

// ReplaceText replaces the characters in [start, end) with text.
func (t *TextInputControl) ReplaceText(start, end int, text string) {
	t.buffer.ReplaceRange(start, end, text)
}

// AppendText appends text to the end of the content.
func (t *TextInputControl) AppendText(text string) {
	t.buffer.InsertAt(t.buffer.Length(), text)
}

// ReplaceSelection replaces the current selection with text, or inserts it
// at the caret when nothing is selected.
func (t *TextInputControl) ReplaceSelection(text string) {
	t.buffer.Insert(text)
}

// Clear removes all content.
func (t *TextInputControl) Clear() {
	t.buffer.DeleteRange(0, t.buffer.Length())
}

// Cut copies the selection to the clipboard and removes it. No-op without
// a selection.
func (t *TextInputControl) Cut() {
	if !t.buffer.HasSelection() {
		return
	}
	SetClipboardText(t.buffer.SelectedText())
	t.buffer.Delete(0)
}

// Copy copies the selection to the clipboard. No-op without a selection.
func (t *TextInputControl) Copy() {
	if !t.buffer.HasSelection() {
		return
	}
	SetClipboardText(t.buffer.SelectedText())
}

// Paste inserts the clipboard content at the caret, replacing any
// selection.
func (t *TextInputControl) Paste() {
	if text := ClipboardText(); text != "" {
		t.buffer.Insert(text)
	}
}

// Undo reverts the last edit.
func (t *TextInputControl) Undo() bool { return t.buffer.Undo() }

// Redo reapplies the last undone edit.
func (t *TextInputControl) Redo() bool { return t.buffer.Redo() }

// ============================================================================
// Caret and Selection
// ============================================================================

// PositionCaret moves the caret, clearing the selection.
func (t *TextInputControl) PositionCaret(pos int) { t.buffer.SetCursor(pos) }

// SelectRange selects from anchor to caret.
func (t *TextInputControl) SelectRange(anchor, caret int) { t.buffer.SetSelection(anchor, caret) }

// SelectAll selects the entire content.
func (t *TextInputControl) SelectAll() { t.buffer.SelectAll() }

// DeselectAll collapses the selection to the caret.
func (t *TextInputControl) DeselectAll() { t.buffer.ClearSelection() }

// Forward moves the caret one character forward.
func (t *TextInputControl) Forward() { t.buffer.MoveCursor(1, false) }

// Backward moves the caret one character backward.
func (t *TextInputControl) Backward() { t.buffer.MoveCursor(-1, false) }

// Home moves the caret to the start of the content.
func (t *TextInputControl) Home() { t.buffer.MoveToStart(false) }

// End moves the caret to the end of the content.
func (t *TextInputControl) End() { t.buffer.MoveToEnd(false) }

// NextWord moves the caret to the end of the next word.
func (t *TextInputControl) NextWord() { t.buffer.MoveWord(true, false) }

// PreviousWord moves the caret to the start of the previous word.
func (t *TextInputControl) PreviousWord() { t.buffer.MoveWord(false, false) }

// ============================================================================
// TextField
// ============================================================================

// TextField is a single-line text input. Enter commits the content and
// fires the action handler.
type TextField struct {
	TextInputControl

	onAction *EventHandler
}

// NewTextField creates a text field with the given initial text.
func NewTextField(text string) *TextField {
	f := &TextField{}
	f.initTextInput(f, text, false)
	f.AddEventHandler(EventKeyDown, HandlerFunc(func(e Event) {
		ke, ok := e.(*KeyEvent)
		if !ok || ke.Key != "Enter" {
			return
		}
		e.Consume()
		FireEvent(f.node(), NewActionEvent())
	}))
	return f
}

// OnAction returns the registered action handler, or nil.
func (f *TextField) OnAction() *EventHandler {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.onAction
}

// SetOnAction replaces the action handler fired when Enter commits the
// field. A nil handler clears it.
func (f *TextField) SetOnAction(h *EventHandler) {
	f.mu.Lock()
	prev := f.onAction
	f.onAction = h
	f.mu.Unlock()

	if prev != nil {
		f.RemoveEventHandler(EventAction, prev)
	}
	if h != nil {
		f.AddEventHandler(EventAction, h)
	}
}

// ============================================================================
// TextArea
// ============================================================================

// TextArea is a multiline text input.
type TextArea struct {
	TextInputControl

	wrapText *observe.Property[bool]
}

// NewTextArea creates a text area with the given initial text.
func NewTextArea(text string) *TextArea {
	a := &TextArea{}
	a.initTextInput(a, text, true)
	a.wrapText = observe.NewBoolProperty(a, "wrapText", false)
	return a
}

// WrapTextProperty returns the text wrapping property.
func (a *TextArea) WrapTextProperty() *observe.Property[bool] { return a.wrapText }

// WrapText returns whether long lines wrap.
func (a *TextArea) WrapText() bool { return a.wrapText.Get() }

// SetWrapText sets whether long lines wrap.
func (a *TextArea) SetWrapText(wrap bool) { a.wrapText.Set(wrap) }
