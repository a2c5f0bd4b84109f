package fluentkit

import (
	"strings"
	"sync"
	"unicode"
)

type undoState struct {
	content []rune
	cursor  int
	anchor  int
}

// TextBuffer is the editing engine behind TextField and TextArea. Content
// is stored as runes so cursor positions index characters, not bytes. The
// anchor marks where a selection started; anchor == cursor means no
// selection.
type TextBuffer struct {
	mu sync.RWMutex

	content []rune
	cursor  int
	anchor  int

	multiline bool
	maxLength int // 0 = no limit
	readOnly  bool

	charFilter func(r rune) bool

	undoStack []undoState
	redoStack []undoState
	maxUndo   int

	// Invoked synchronously, outside the lock, after every content change.
	onChange func(text string)
}

// NewTextBuffer creates an empty text buffer.
func NewTextBuffer() *TextBuffer {
	return &TextBuffer{
		content: make([]rune, 0, 64),
		maxUndo: 100,
	}
}

// Text returns the current content.
func (b *TextBuffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return string(b.content)
}

// SetText replaces the content without notifying the change callback and
// without pushing an undo state. Property-to-buffer synchronization relies
// on the silence to avoid notification loops.
func (b *TextBuffer) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.content = []rune(text)
	b.cursor = b.clampPosition(b.cursor)
	b.anchor = b.clampPosition(b.anchor)
}

// Length returns the number of characters.
func (b *TextBuffer) Length() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.content)
}

// Cursor returns the cursor position, 0 = before the first character.
func (b *TextBuffer) Cursor() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursor
}

// SetCursor moves the cursor, clearing any selection.
func (b *TextBuffer) SetCursor(pos int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = b.clampPosition(pos)
	b.anchor = b.cursor
}

// Selection returns the ordered selection bounds. Returns (cursor, cursor)
// when nothing is selected.
func (b *TextBuffer) Selection() (int, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selectionRange()
}

func (b *TextBuffer) selectionRange() (int, int) {
	if b.anchor < b.cursor {
		return b.anchor, b.cursor
	}
	return b.cursor, b.anchor
}

// HasSelection returns true if text is selected.
func (b *TextBuffer) HasSelection() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.anchor != b.cursor
}

// SelectedText returns the selected text, or "".
func (b *TextBuffer) SelectedText() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, end := b.selectionRange()
	return string(b.content[start:end])
}

// SelectAll selects the entire content.
func (b *TextBuffer) SelectAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.anchor = 0
	b.cursor = len(b.content)
}

// SetSelection sets the anchor and cursor, both clamped.
func (b *TextBuffer) SetSelection(anchor, cursor int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.anchor = b.clampPosition(anchor)
	b.cursor = b.clampPosition(cursor)
}

// ClearSelection collapses the selection to the cursor.
func (b *TextBuffer) ClearSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.anchor = b.cursor
}

// ============================================================================
// Editing
// ============================================================================

// Insert inserts text at the cursor, replacing any selection. Newlines are
// stripped unless the buffer is multiline; the char filter and max length
// apply. No-op when read-only.
func (b *TextBuffer) Insert(text string) {
	b.mu.Lock()
	if b.readOnly {
		b.mu.Unlock()
		return
	}

	runes := b.prepareInput(text)
	if b.maxLength > 0 {
		start, end := b.selectionRange()
		available := b.maxLength - (len(b.content) - (end - start))
		if available < 0 {
			available = 0
		}
		if len(runes) > available {
			runes = runes[:available]
		}
	}

	// Even an empty insert replaces a selection.
	if len(runes) == 0 && b.anchor == b.cursor {
		b.mu.Unlock()
		return
	}

	b.saveUndoState()

	start, end := b.selectionRange()
	if start != end {
		b.content = append(b.content[:start], b.content[end:]...)
		b.cursor = start
		b.anchor = start
	}

	newContent := make([]rune, 0, len(b.content)+len(runes))
	newContent = append(newContent, b.content[:b.cursor]...)
	newContent = append(newContent, runes...)
	newContent = append(newContent, b.content[b.cursor:]...)
	b.content = newContent
	b.cursor += len(runes)
	b.anchor = b.cursor

	b.finishChange()
}

// InsertAt inserts text at a character index, leaving the selection
// collapsed after the inserted text. No-op when read-only.
func (b *TextBuffer) InsertAt(index int, text string) {
	b.mu.Lock()
	if b.readOnly {
		b.mu.Unlock()
		return
	}

	runes := b.prepareInput(text)
	if b.maxLength > 0 {
		available := b.maxLength - len(b.content)
		if available < 0 {
			available = 0
		}
		if len(runes) > available {
			runes = runes[:available]
		}
	}
	if len(runes) == 0 {
		b.mu.Unlock()
		return
	}

	b.saveUndoState()

	index = b.clampPosition(index)
	newContent := make([]rune, 0, len(b.content)+len(runes))
	newContent = append(newContent, b.content[:index]...)
	newContent = append(newContent, runes...)
	newContent = append(newContent, b.content[index:]...)
	b.content = newContent
	b.cursor = index + len(runes)
	b.anchor = b.cursor

	b.finishChange()
}

// Delete removes characters relative to the cursor. count > 0 deletes
// forward, count < 0 backward. A selection is deleted regardless of count.
// No-op when read-only.
func (b *TextBuffer) Delete(count int) {
	b.mu.Lock()
	if b.readOnly {
		b.mu.Unlock()
		return
	}

	start, end := b.selectionRange()
	if start != end {
		b.saveUndoState()
		b.content = append(b.content[:start], b.content[end:]...)
		b.cursor = start
		b.anchor = start
		b.finishChange()
		return
	}

	if count == 0 {
		b.mu.Unlock()
		return
	}

	delStart, delEnd := b.cursor, b.cursor+count
	if count < 0 {
		delStart, delEnd = b.cursor+count, b.cursor
	}
	delStart = b.clampPosition(delStart)
	delEnd = b.clampPosition(delEnd)
	if delStart == delEnd {
		b.mu.Unlock()
		return
	}

	b.saveUndoState()
	b.content = append(b.content[:delStart], b.content[delEnd:]...)
	b.cursor = delStart
	b.anchor = delStart
	b.finishChange()
}

// DeleteRange removes the characters in [start, end). Bounds are clamped
// and reordered. No-op when read-only or the range is empty.
func (b *TextBuffer) DeleteRange(start, end int) {
	b.mu.Lock()
	if b.readOnly {
		b.mu.Unlock()
		return
	}

	start, end = b.orderRange(start, end)
	if start == end {
		b.mu.Unlock()
		return
	}

	b.saveUndoState()
	b.content = append(b.content[:start], b.content[end:]...)
	b.cursor = start
	b.anchor = start
	b.finishChange()
}

// ReplaceRange replaces the characters in [start, end) with text. The
// cursor lands after the replacement. No-op when read-only.
func (b *TextBuffer) ReplaceRange(start, end int, text string) {
	b.mu.Lock()
	if b.readOnly {
		b.mu.Unlock()
		return
	}

	start, end = b.orderRange(start, end)
	runes := b.prepareInput(text)
	if b.maxLength > 0 {
		available := b.maxLength - (len(b.content) - (end - start))
		if available < 0 {
			available = 0
		}
		if len(runes) > available {
			runes = runes[:available]
		}
	}
	if start == end && len(runes) == 0 {
		b.mu.Unlock()
		return
	}

	b.saveUndoState()
	newContent := make([]rune, 0, len(b.content)-(end-start)+len(runes))
	newContent = append(newContent, b.content[:start]...)
	newContent = append(newContent, runes...)
	newContent = append(newContent, b.content[end:]...)
	b.content = newContent
	b.cursor = start + len(runes)
	b.anchor = b.cursor
	b.finishChange()
}

// DeleteWord deletes the word ahead of or behind the cursor. A selection
// is deleted instead. No-op when read-only.
func (b *TextBuffer) DeleteWord(forward bool) {
	b.mu.Lock()
	if b.readOnly {
		b.mu.Unlock()
		return
	}

	start, end := b.selectionRange()
	if start == end {
		if forward {
			start, end = b.cursor, b.findWordEnd(b.cursor)
		} else {
			start, end = b.findWordStart(b.cursor), b.cursor
		}
	}
	if start == end {
		b.mu.Unlock()
		return
	}

	b.saveUndoState()
	b.content = append(b.content[:start], b.content[end:]...)
	b.cursor = start
	b.anchor = start
	b.finishChange()
}

// ============================================================================
// Cursor Motion
// ============================================================================

// MoveCursor moves the cursor by delta characters. With extend the
// selection grows; otherwise an existing selection collapses toward the
// direction of motion.
func (b *TextBuffer) MoveCursor(delta int, extend bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !extend && b.anchor != b.cursor {
		if delta < 0 {
			b.cursor, _ = b.selectionRange()
		} else {
			_, b.cursor = b.selectionRange()
		}
		b.anchor = b.cursor
		return
	}

	b.cursor = b.clampPosition(b.cursor + delta)
	if !extend {
		b.anchor = b.cursor
	}
}

// MoveWord moves the cursor by one whitespace-delimited word.
func (b *TextBuffer) MoveWord(forward bool, extend bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if forward {
		b.cursor = b.findWordEnd(b.cursor)
	} else {
		b.cursor = b.findWordStart(b.cursor)
	}
	if !extend {
		b.anchor = b.cursor
	}
}

// MoveToLineStart moves the cursor to the start of the current line.
func (b *TextBuffer) MoveToLineStart(extend bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = b.findLineStart(b.cursor)
	if !extend {
		b.anchor = b.cursor
	}
}

// MoveToLineEnd moves the cursor to the end of the current line.
func (b *TextBuffer) MoveToLineEnd(extend bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = b.findLineEnd(b.cursor)
	if !extend {
		b.anchor = b.cursor
	}
}

// MoveToStart moves the cursor to the beginning of the content.
func (b *TextBuffer) MoveToStart(extend bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = 0
	if !extend {
		b.anchor = 0
	}
}

// MoveToEnd moves the cursor to the end of the content.
func (b *TextBuffer) MoveToEnd(extend bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = len(b.content)
	if !extend {
		b.anchor = b.cursor
	}
}

// SelectWordAt selects the word around the given position.
func (b *TextBuffer) SelectWordAt(pos int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	pos = b.clampPosition(pos)
	b.anchor = b.findWordStart(pos)
	b.cursor = b.findWordEnd(pos)
}

// ============================================================================
// Configuration
// ============================================================================

// SetMultiline enables or disables newline input.
func (b *TextBuffer) SetMultiline(multiline bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.multiline = multiline
}

// SetMaxLength caps the content length in characters. 0 removes the cap.
// Existing content is not truncated.
func (b *TextBuffer) SetMaxLength(max int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.maxLength = max
}

// MaxLength returns the content cap, 0 when uncapped.
func (b *TextBuffer) MaxLength() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.maxLength
}

// SetReadOnly blocks editing while still allowing selection and copy.
func (b *TextBuffer) SetReadOnly(readOnly bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.readOnly = readOnly
}

// IsReadOnly returns whether editing is blocked.
func (b *TextBuffer) IsReadOnly() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.readOnly
}

// SetCharFilter restricts input characters. The filter applies to typed
// and pasted text, not to content already present.
func (b *TextBuffer) SetCharFilter(fn func(r rune) bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.charFilter = fn
}

// OnChange sets the callback invoked after every content change.
func (b *TextBuffer) OnChange(fn func(text string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onChange = fn
}

// ============================================================================
// Undo / Redo
// ============================================================================

// CanUndo returns whether an undo state is available.
func (b *TextBuffer) CanUndo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.undoStack) > 0
}

// CanRedo returns whether a redo state is available.
func (b *TextBuffer) CanRedo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.redoStack) > 0
}

// Undo reverts the last edit. Returns false when the undo stack is empty.
func (b *TextBuffer) Undo() bool {
	b.mu.Lock()
	if len(b.undoStack) == 0 {
		b.mu.Unlock()
		return false
	}

	b.redoStack = append(b.redoStack, b.snapshot())
	state := b.undoStack[len(b.undoStack)-1]
	b.undoStack = b.undoStack[:len(b.undoStack)-1]
	b.restore(state)

	b.finishChange()
	return true
}

// Redo reapplies the last undone edit. Returns false when the redo stack
// is empty.
func (b *TextBuffer) Redo() bool {
	b.mu.Lock()
	if len(b.redoStack) == 0 {
		b.mu.Unlock()
		return false
	}

	b.undoStack = append(b.undoStack, b.snapshot())
	state := b.redoStack[len(b.redoStack)-1]
	b.redoStack = b.redoStack[:len(b.redoStack)-1]
	b.restore(state)

	b.finishChange()
	return true
}

// ============================================================================
// Internal helpers (lock held unless noted)
// ============================================================================

// prepareInput strips disallowed newlines and applies the char filter.
func (b *TextBuffer) prepareInput(text string) []rune {
	if !b.multiline {
		text = strings.ReplaceAll(text, "\n", "")
		text = strings.ReplaceAll(text, "\r", "")
	}
	runes := []rune(text)
	if b.charFilter != nil {
		filtered := runes[:0:len(runes)]
		for _, r := range runes {
			if b.charFilter(r) {
				filtered = append(filtered, r)
			}
		}
		runes = filtered
	}
	return runes
}

func (b *TextBuffer) snapshot() undoState {
	state := undoState{
		content: make([]rune, len(b.content)),
		cursor:  b.cursor,
		anchor:  b.anchor,
	}
	copy(state.content, b.content)
	return state
}

func (b *TextBuffer) restore(state undoState) {
	b.content = make([]rune, len(state.content))
	copy(b.content, state.content)
	b.cursor = state.cursor
	b.anchor = state.anchor
}

// saveUndoState pushes the current state before a content mutation and
// clears the redo stack.
func (b *TextBuffer) saveUndoState() {
	b.undoStack = append(b.undoStack, b.snapshot())
	if len(b.undoStack) > b.maxUndo {
		b.undoStack = b.undoStack[1:]
	}
	b.redoStack = nil
}

// finishChange releases the lock and invokes the change callback. Callers
// must hold the lock and return immediately after.
func (b *TextBuffer) finishChange() {
	fn := b.onChange
	text := string(b.content)
	b.mu.Unlock()
	if fn != nil {
		fn(text)
	}
}

func (b *TextBuffer) clampPosition(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.content) {
		return len(b.content)
	}
	return pos
}

func (b *TextBuffer) orderRange(start, end int) (int, int) {
	start = b.clampPosition(start)
	end = b.clampPosition(end)
	if start > end {
		start, end = end, start
	}
	return start, end
}

func (b *TextBuffer) findWordStart(pos int) int {
	for pos > 0 && unicode.IsSpace(b.content[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(b.content[pos-1]) {
		pos--
	}
	return pos
}

func (b *TextBuffer) findWordEnd(pos int) int {
	length := len(b.content)
	for pos < length && unicode.IsSpace(b.content[pos]) {
		pos++
	}
	for pos < length && !unicode.IsSpace(b.content[pos]) {
		pos++
	}
	return pos
}

func (b *TextBuffer) findLineStart(pos int) int {
	for pos > 0 && b.content[pos-1] != '\n' {
		pos--
	}
	return pos
}

func (b *TextBuffer) findLineEnd(pos int) int {
	for pos < len(b.content) && b.content[pos] != '\n' {
		pos++
	}
	return pos
}
