package fluentkit

import "github.com/fluentkit/fluentkit/observe"

// Labeled is the base for controls that display text content: labels,
// buttons, check boxes. Font size and text color default from the active
// theme.
type Labeled struct {
	Control

	text      *observe.Property[string]
	fontSize  *observe.Property[float64]
	textColor *observe.Property[uint32]
	wrapText  *observe.Property[bool]
}

func (l *Labeled) initLabeled(self Node, text string) {
	l.initControl(self)
	l.text = observe.NewStringProperty(self, "text", text)
	l.fontSize = observe.NewFloat64Property(self, "fontSize", activeTheme.FontSize)
	l.textColor = observe.NewProperty[uint32](self, "textColor", activeTheme.TextColor)
	l.wrapText = observe.NewBoolProperty(self, "wrapText", false)
}

// LabeledBase returns the embedded labeled control.
func (l *Labeled) LabeledBase() *Labeled {
	return l
}

// TextProperty returns the text property.
func (l *Labeled) TextProperty() *observe.Property[string] { return l.text }

// Text returns the displayed text.
func (l *Labeled) Text() string { return l.text.Get() }

// SetText sets the displayed text.
func (l *Labeled) SetText(text string) { l.text.Set(text) }

// FontSizeProperty returns the font size property.
func (l *Labeled) FontSizeProperty() *observe.Property[float64] { return l.fontSize }

// FontSize returns the font size in points.
func (l *Labeled) FontSize() float64 { return l.fontSize.Get() }

// SetFontSize sets the font size in points.
func (l *Labeled) SetFontSize(size float64) { l.fontSize.Set(size) }

// TextColorProperty returns the text color property (RGBA, 0xRRGGBBAA).
func (l *Labeled) TextColorProperty() *observe.Property[uint32] { return l.textColor }

// TextColor returns the text color.
func (l *Labeled) TextColor() uint32 { return l.textColor.Get() }

// SetTextColor sets the text color.
func (l *Labeled) SetTextColor(c uint32) { l.textColor.Set(c) }

// WrapTextProperty returns the text wrapping property.
func (l *Labeled) WrapTextProperty() *observe.Property[bool] { return l.wrapText }

// WrapText returns whether text wraps within the control's width.
func (l *Labeled) WrapText() bool { return l.wrapText.Get() }

// SetWrapText sets whether text wraps.
func (l *Labeled) SetWrapText(wrap bool) { l.wrapText.Set(wrap) }

// ============================================================================
// Label
// ============================================================================

// Label is a non-interactive text control. It can be associated with an
// input control so interactions with the label (mnemonics, clicks) forward
// focus to the labeled control.
type Label struct {
	Labeled

	labelFor *observe.Property[any]
}

// NewLabel creates a label with the given text.
func NewLabel(text string) *Label {
	l := &Label{}
	l.initLabeled(l, text)
	l.labelFor = observe.NewObjectProperty(l, "labelFor", nil)

	l.AddEventHandler(EventClick, HandlerFunc(func(Event) {
		if c, ok := l.labelFor.Get().(interface{ RequestFocus() }); ok && c != nil {
			c.RequestFocus()
		}
	}))
	return l
}

// LabelForProperty returns the label-for association property.
func (l *Label) LabelForProperty() *observe.Property[any] { return l.labelFor }

// LabelFor returns the control this label describes, or nil.
func (l *Label) LabelFor() Node {
	n, _ := l.labelFor.Get().(Node)
	return n
}

// SetLabelFor associates the label with a control. Clicking the label then
// forwards focus to it.
func (l *Label) SetLabelFor(n Node) {
	if n == nil {
		l.labelFor.Set(nil)
		return
	}
	l.labelFor.Set(n)
}
