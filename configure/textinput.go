package configure

import (
	"github.com/fluentkit/fluentkit"
	"github.com/fluentkit/fluentkit/observe"
)

// textInputConfigurator layers the text-entry surface shared by text
// fields and text areas. The editing operations forward verbatim to the
// wrapped control; no editing logic lives here.
type textInputConfigurator[T any] struct {
	controlConfigurator[T]
	input *fluentkit.TextInputControl
}

func (c *textInputConfigurator[T]) initTextInput(self T, n fluentkit.Node, in *fluentkit.TextInputControl) {
	c.initControl(self, n, in.ControlBase())
	c.input = in
}

func (c *textInputConfigurator[T]) AddTextChangeListener(l *observe.ChangeListener[string]) T {
	c.input.TextProperty().AddListener(l)
	return c.self
}

func (c *textInputConfigurator[T]) RemoveTextChangeListener(l *observe.ChangeListener[string]) T {
	c.input.TextProperty().RemoveListener(l)
	return c.self
}

func (c *textInputConfigurator[T]) AddTextInvalidationListener(l *observe.InvalidationListener) T {
	c.input.TextProperty().AddInvalidationListener(l)
	return c.self
}

func (c *textInputConfigurator[T]) RemoveTextInvalidationListener(l *observe.InvalidationListener) T {
	c.input.TextProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *textInputConfigurator[T]) BindTextProperty(source observe.ObservableValue[string]) T {
	c.input.TextProperty().Bind(source)
	return c.self
}

func (c *textInputConfigurator[T]) UnbindTextProperty() T {
	c.input.TextProperty().Unbind()
	return c.self
}

func (c *textInputConfigurator[T]) BindBidirectionalTextProperty(other *observe.Property[string]) T {
	c.input.TextProperty().BindBidirectional(other)
	return c.self
}

func (c *textInputConfigurator[T]) UnbindBidirectionalTextProperty(other *observe.Property[string]) T {
	c.input.TextProperty().UnbindBidirectional(other)
	return c.self
}

func (c *textInputConfigurator[T]) SetText(text string) T {
	c.input.SetText(text)
	return c.self
}

func (c *textInputConfigurator[T]) AddPromptTextChangeListener(l *observe.ChangeListener[string]) T {
	c.input.PromptTextProperty().AddListener(l)
	return c.self
}

func (c *textInputConfigurator[T]) RemovePromptTextChangeListener(l *observe.ChangeListener[string]) T {
	c.input.PromptTextProperty().RemoveListener(l)
	return c.self
}

func (c *textInputConfigurator[T]) AddPromptTextInvalidationListener(l *observe.InvalidationListener) T {
	c.input.PromptTextProperty().AddInvalidationListener(l)
	return c.self
}

func (c *textInputConfigurator[T]) RemovePromptTextInvalidationListener(l *observe.InvalidationListener) T {
	c.input.PromptTextProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *textInputConfigurator[T]) BindPromptTextProperty(source observe.ObservableValue[string]) T {
	c.input.PromptTextProperty().Bind(source)
	return c.self
}

func (c *textInputConfigurator[T]) UnbindPromptTextProperty() T {
	c.input.PromptTextProperty().Unbind()
	return c.self
}

func (c *textInputConfigurator[T]) BindBidirectionalPromptTextProperty(other *observe.Property[string]) T {
	c.input.PromptTextProperty().BindBidirectional(other)
	return c.self
}

func (c *textInputConfigurator[T]) UnbindBidirectionalPromptTextProperty(other *observe.Property[string]) T {
	c.input.PromptTextProperty().UnbindBidirectional(other)
	return c.self
}

func (c *textInputConfigurator[T]) SetPromptText(text string) T {
	c.input.SetPromptText(text)
	return c.self
}

func (c *textInputConfigurator[T]) AddEditableChangeListener(l *observe.ChangeListener[bool]) T {
	c.input.EditableProperty().AddListener(l)
	return c.self
}

func (c *textInputConfigurator[T]) RemoveEditableChangeListener(l *observe.ChangeListener[bool]) T {
	c.input.EditableProperty().RemoveListener(l)
	return c.self
}

func (c *textInputConfigurator[T]) AddEditableInvalidationListener(l *observe.InvalidationListener) T {
	c.input.EditableProperty().AddInvalidationListener(l)
	return c.self
}

func (c *textInputConfigurator[T]) RemoveEditableInvalidationListener(l *observe.InvalidationListener) T {
	c.input.EditableProperty().RemoveInvalidationListener(l)
	return c.self
}

func (c *textInputConfigurator[T]) BindEditableProperty(source observe.ObservableValue[bool]) T {
	c.input.EditableProperty().Bind(source)
	return c.self
}

func (c *textInputConfigurator[T]) UnbindEditableProperty() T {
	c.input.EditableProperty().Unbind()
	return c.self
}

func (c *textInputConfigurator[T]) BindBidirectionalEditableProperty(other *observe.Property[bool]) T {
	c.input.EditableProperty().BindBidirectional(other)
	return c.self
}

func (c *textInputConfigurator[T]) UnbindBidirectionalEditableProperty(other *observe.Property[bool]) T {
	c.input.EditableProperty().UnbindBidirectional(other)
	return c.self
}

func (c *textInputConfigurator[T]) SetEditable(editable bool) T {
	c.input.SetEditable(editable)
	return c.self
}

func (c *textInputConfigurator[T]) InsertText(index int, text string) T {
	c.input.InsertText(index, text)
	return c.self
}

func (c *textInputConfigurator[T]) DeleteText(start, end int) T {
	c.input.DeleteText(start, end)
	return c.self
}

func (c *textInputConfigurator[T]) ReplaceText(start, end int, text string) T {
	c.input.ReplaceText(start, end, text)
	return c.self
}

func (c *textInputConfigurator[T]) AppendText(text string) T {
	c.input.AppendText(text)
	return c.self
}

func (c *textInputConfigurator[T]) ReplaceSelection(text string) T {
	c.input.ReplaceSelection(text)
	return c.self
}

func (c *textInputConfigurator[T]) Clear() T {
	c.input.Clear()
	return c.self
}

func (c *textInputConfigurator[T]) Cut() T {
	c.input.Cut()
	return c.self
}

func (c *textInputConfigurator[T]) Copy() T {
	c.input.Copy()
	return c.self
}

func (c *textInputConfigurator[T]) Paste() T {
	c.input.Paste()
	return c.self
}

func (c *textInputConfigurator[T]) SelectRange(anchor, caret int) T {
	c.input.SelectRange(anchor, caret)
	return c.self
}

func (c *textInputConfigurator[T]) SelectAll() T {
	c.input.SelectAll()
	return c.self
}

func (c *textInputConfigurator[T]) DeselectAll() T {
	c.input.DeselectAll()
	return c.self
}

func (c *textInputConfigurator[T]) PositionCaret(pos int) T {
	c.input.PositionCaret(pos)
	return c.self
}

func (c *textInputConfigurator[T]) Forward() T {
	c.input.Forward()
	return c.self
}

func (c *textInputConfigurator[T]) Backward() T {
	c.input.Backward()
	return c.self
}

func (c *textInputConfigurator[T]) Home() T {
	c.input.Home()
	return c.self
}

func (c *textInputConfigurator[T]) End() T {
	c.input.End()
	return c.self
}

func (c *textInputConfigurator[T]) NextWord() T {
	c.input.NextWord()
	return c.self
}

func (c *textInputConfigurator[T]) PreviousWord() T {
	c.input.PreviousWord()
	return c.self
}

func (c *textInputConfigurator[T]) Undo() T {
	c.input.Undo()
	return c.self
}

func (c *textInputConfigurator[T]) Redo() T {
	c.input.Redo()
	return c.self
}

// ============================================================================
// TextFieldConfigurator
// ============================================================================

// TextFieldConfigurator is the fluent configurator for a single-line text
// field.
type TextFieldConfigurator struct {
	textInputConfigurator[*TextFieldConfigurator]
	field *fluentkit.TextField
}

var _ TextFieldConfig[*TextFieldConfigurator] = (*TextFieldConfigurator)(nil)

// NewTextFieldConfigurator wraps a text field. Panics if f is nil.
func NewTextFieldConfigurator(f *fluentkit.TextField) *TextFieldConfigurator {
	requireWidget("NewTextFieldConfigurator", f != nil)
	c := &TextFieldConfigurator{}
	c.attach(f)
	return c
}

func (c *TextFieldConfigurator) attach(f *fluentkit.TextField) {
	c.field = f
	c.initTextInput(c, f, f.TextInputBase())
}

// TextField returns the wrapped text field.
func (c *TextFieldConfigurator) TextField() *fluentkit.TextField {
	return c.field
}

// SetNode reassigns the configurator to another text field. Panics if n is
// nil or not a *fluentkit.TextField; the held widget is unchanged on
// failure.
func (c *TextFieldConfigurator) SetNode(n fluentkit.Node) *TextFieldConfigurator {
	f, ok := n.(*fluentkit.TextField)
	if !ok || f == nil {
		wrongNodeType("TextFieldConfigurator.SetNode", "*fluentkit.TextField")
	}
	c.attach(f)
	return c
}

// SetOnAction replaces the field's action handler.
func (c *TextFieldConfigurator) SetOnAction(h *fluentkit.EventHandler) *TextFieldConfigurator {
	c.field.SetOnAction(h)
	return c
}

// Equal reports whether both configurators wrap the same text field.
func (c *TextFieldConfigurator) Equal(other *TextFieldConfigurator) bool {
	return other != nil && c.field == other.field
}

// ============================================================================
// TextAreaConfigurator
// ============================================================================

// TextAreaConfigurator is the fluent configurator for a multiline text
// area.
type TextAreaConfigurator struct {
	textInputConfigurator[*TextAreaConfigurator]
	area *fluentkit.TextArea
}

var _ TextAreaConfig[*TextAreaConfigurator] = (*TextAreaConfigurator)(nil)

// NewTextAreaConfigurator wraps a text area. Panics if a is nil.
func NewTextAreaConfigurator(a *fluentkit.TextArea) *TextAreaConfigurator {
	requireWidget("NewTextAreaConfigurator", a != nil)
	c := &TextAreaConfigurator{}
	c.attach(a)
	return c
}

func (c *TextAreaConfigurator) attach(a *fluentkit.TextArea) {
	c.area = a
	c.initTextInput(c, a, a.TextInputBase())
}

// TextArea returns the wrapped text area.
func (c *TextAreaConfigurator) TextArea() *fluentkit.TextArea {
	return c.area
}

// SetNode reassigns the configurator to another text area. Panics if n is
// nil or not a *fluentkit.TextArea; the held widget is unchanged on
// failure.
func (c *TextAreaConfigurator) SetNode(n fluentkit.Node) *TextAreaConfigurator {
	a, ok := n.(*fluentkit.TextArea)
	if !ok || a == nil {
		wrongNodeType("TextAreaConfigurator.SetNode", "*fluentkit.TextArea")
	}
	c.attach(a)
	return c
}

func (c *TextAreaConfigurator) AddWrapTextChangeListener(l *observe.ChangeListener[bool]) *TextAreaConfigurator {
	c.area.WrapTextProperty().AddListener(l)
	return c
}

func (c *TextAreaConfigurator) RemoveWrapTextChangeListener(l *observe.ChangeListener[bool]) *TextAreaConfigurator {
	c.area.WrapTextProperty().RemoveListener(l)
	return c
}

func (c *TextAreaConfigurator) AddWrapTextInvalidationListener(l *observe.InvalidationListener) *TextAreaConfigurator {
	c.area.WrapTextProperty().AddInvalidationListener(l)
	return c
}

func (c *TextAreaConfigurator) RemoveWrapTextInvalidationListener(l *observe.InvalidationListener) *TextAreaConfigurator {
	c.area.WrapTextProperty().RemoveInvalidationListener(l)
	return c
}

func (c *TextAreaConfigurator) BindWrapTextProperty(source observe.ObservableValue[bool]) *TextAreaConfigurator {
	c.area.WrapTextProperty().Bind(source)
	return c
}

func (c *TextAreaConfigurator) UnbindWrapTextProperty() *TextAreaConfigurator {
	c.area.WrapTextProperty().Unbind()
	return c
}

func (c *TextAreaConfigurator) BindBidirectionalWrapTextProperty(other *observe.Property[bool]) *TextAreaConfigurator {
	c.area.WrapTextProperty().BindBidirectional(other)
	return c
}

func (c *TextAreaConfigurator) UnbindBidirectionalWrapTextProperty(other *observe.Property[bool]) *TextAreaConfigurator {
	c.area.WrapTextProperty().UnbindBidirectional(other)
	return c
}

// SetWrapText sets whether long lines wrap.
func (c *TextAreaConfigurator) SetWrapText(wrap bool) *TextAreaConfigurator {
	c.area.SetWrapText(wrap)
	return c
}

// Equal reports whether both configurators wrap the same text area.
func (c *TextAreaConfigurator) Equal(other *TextAreaConfigurator) bool {
	return other != nil && c.area == other.area
}
