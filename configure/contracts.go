// Package configure provides fluent, chainable configurators over the
// fluentkit widget set. A configurator wraps exactly one widget instance;
// every mutating method validates its arguments, forwards to the widget's
// native property or operation, and returns the receiver so calls chain.
//
// The capability contracts below are generic over the concrete configurator
// type, so a chain started on a ButtonConfigurator never degrades to a
// base type and loses access to button-only methods. Contracts compose by
// embedding, mirroring the widget hierarchy.
package configure

import (
	"github.com/fluentkit/fluentkit"
	"github.com/fluentkit/fluentkit/observe"
)

// NodeConfig is the configurable surface shared by every widget: the
// node-level properties, style classes, and event registration.
type NodeConfig[T any] interface {
	// Node returns the wrapped widget.
	Node() fluentkit.Node

	AddIDChangeListener(l *observe.ChangeListener[string]) T
	RemoveIDChangeListener(l *observe.ChangeListener[string]) T
	AddIDInvalidationListener(l *observe.InvalidationListener) T
	RemoveIDInvalidationListener(l *observe.InvalidationListener) T
	BindIDProperty(source observe.ObservableValue[string]) T
	UnbindIDProperty() T
	BindBidirectionalIDProperty(other *observe.Property[string]) T
	UnbindBidirectionalIDProperty(other *observe.Property[string]) T
	SetID(id string) T

	AddVisibleChangeListener(l *observe.ChangeListener[bool]) T
	RemoveVisibleChangeListener(l *observe.ChangeListener[bool]) T
	AddVisibleInvalidationListener(l *observe.InvalidationListener) T
	RemoveVisibleInvalidationListener(l *observe.InvalidationListener) T
	BindVisibleProperty(source observe.ObservableValue[bool]) T
	UnbindVisibleProperty() T
	BindBidirectionalVisibleProperty(other *observe.Property[bool]) T
	UnbindBidirectionalVisibleProperty(other *observe.Property[bool]) T
	SetVisible(visible bool) T

	AddOpacityChangeListener(l *observe.ChangeListener[float64]) T
	RemoveOpacityChangeListener(l *observe.ChangeListener[float64]) T
	AddOpacityInvalidationListener(l *observe.InvalidationListener) T
	RemoveOpacityInvalidationListener(l *observe.InvalidationListener) T
	BindOpacityProperty(source observe.ObservableValue[float64]) T
	UnbindOpacityProperty() T
	BindBidirectionalOpacityProperty(other *observe.Property[float64]) T
	UnbindBidirectionalOpacityProperty(other *observe.Property[float64]) T
	SetOpacity(opacity float64) T

	AddStyleClass(class string) T
	RemoveStyleClass(class string) T
	SetStyleClasses(classes ...string) T
	AddStyleClassInvalidationListener(l *observe.InvalidationListener) T
	RemoveStyleClassInvalidationListener(l *observe.InvalidationListener) T

	AddEventHandler(eventType fluentkit.EventType, h *fluentkit.EventHandler) T
	RemoveEventHandler(eventType fluentkit.EventType, h *fluentkit.EventHandler) T
	AddEventFilter(eventType fluentkit.EventType, h *fluentkit.EventHandler) T
	RemoveEventFilter(eventType fluentkit.EventType, h *fluentkit.EventHandler) T
	FireEvent(e fluentkit.Event) T
}

// RegionConfig adds the layout sizing surface, background color, and
// stylesheets.
type RegionConfig[T any] interface {
	NodeConfig[T]

	AddPrefWidthChangeListener(l *observe.ChangeListener[float64]) T
	RemovePrefWidthChangeListener(l *observe.ChangeListener[float64]) T
	AddPrefWidthInvalidationListener(l *observe.InvalidationListener) T
	RemovePrefWidthInvalidationListener(l *observe.InvalidationListener) T
	BindPrefWidthProperty(source observe.ObservableValue[float64]) T
	UnbindPrefWidthProperty() T
	BindBidirectionalPrefWidthProperty(other *observe.Property[float64]) T
	UnbindBidirectionalPrefWidthProperty(other *observe.Property[float64]) T
	SetPrefWidth(v float64) T

	AddPrefHeightChangeListener(l *observe.ChangeListener[float64]) T
	RemovePrefHeightChangeListener(l *observe.ChangeListener[float64]) T
	AddPrefHeightInvalidationListener(l *observe.InvalidationListener) T
	RemovePrefHeightInvalidationListener(l *observe.InvalidationListener) T
	BindPrefHeightProperty(source observe.ObservableValue[float64]) T
	UnbindPrefHeightProperty() T
	BindBidirectionalPrefHeightProperty(other *observe.Property[float64]) T
	UnbindBidirectionalPrefHeightProperty(other *observe.Property[float64]) T
	SetPrefHeight(v float64) T

	AddMinWidthChangeListener(l *observe.ChangeListener[float64]) T
	RemoveMinWidthChangeListener(l *observe.ChangeListener[float64]) T
	AddMinWidthInvalidationListener(l *observe.InvalidationListener) T
	RemoveMinWidthInvalidationListener(l *observe.InvalidationListener) T
	BindMinWidthProperty(source observe.ObservableValue[float64]) T
	UnbindMinWidthProperty() T
	BindBidirectionalMinWidthProperty(other *observe.Property[float64]) T
	UnbindBidirectionalMinWidthProperty(other *observe.Property[float64]) T
	SetMinWidth(v float64) T

	AddMinHeightChangeListener(l *observe.ChangeListener[float64]) T
	RemoveMinHeightChangeListener(l *observe.ChangeListener[float64]) T
	AddMinHeightInvalidationListener(l *observe.InvalidationListener) T
	RemoveMinHeightInvalidationListener(l *observe.InvalidationListener) T
	BindMinHeightProperty(source observe.ObservableValue[float64]) T
	UnbindMinHeightProperty() T
	BindBidirectionalMinHeightProperty(other *observe.Property[float64]) T
	UnbindBidirectionalMinHeightProperty(other *observe.Property[float64]) T
	SetMinHeight(v float64) T

	AddMaxWidthChangeListener(l *observe.ChangeListener[float64]) T
	RemoveMaxWidthChangeListener(l *observe.ChangeListener[float64]) T
	AddMaxWidthInvalidationListener(l *observe.InvalidationListener) T
	RemoveMaxWidthInvalidationListener(l *observe.InvalidationListener) T
	BindMaxWidthProperty(source observe.ObservableValue[float64]) T
	UnbindMaxWidthProperty() T
	BindBidirectionalMaxWidthProperty(other *observe.Property[float64]) T
	UnbindBidirectionalMaxWidthProperty(other *observe.Property[float64]) T
	SetMaxWidth(v float64) T

	AddMaxHeightChangeListener(l *observe.ChangeListener[float64]) T
	RemoveMaxHeightChangeListener(l *observe.ChangeListener[float64]) T
	AddMaxHeightInvalidationListener(l *observe.InvalidationListener) T
	RemoveMaxHeightInvalidationListener(l *observe.InvalidationListener) T
	BindMaxHeightProperty(source observe.ObservableValue[float64]) T
	UnbindMaxHeightProperty() T
	BindBidirectionalMaxHeightProperty(other *observe.Property[float64]) T
	UnbindBidirectionalMaxHeightProperty(other *observe.Property[float64]) T
	SetMaxHeight(v float64) T

	SetPrefSize(width, height float64) T
	SetMinSize(width, height float64) T
	SetMaxSize(width, height float64) T

	AddBackgroundColorChangeListener(l *observe.ChangeListener[uint32]) T
	RemoveBackgroundColorChangeListener(l *observe.ChangeListener[uint32]) T
	AddBackgroundColorInvalidationListener(l *observe.InvalidationListener) T
	RemoveBackgroundColorInvalidationListener(l *observe.InvalidationListener) T
	BindBackgroundColorProperty(source observe.ObservableValue[uint32]) T
	UnbindBackgroundColorProperty() T
	BindBidirectionalBackgroundColorProperty(other *observe.Property[uint32]) T
	UnbindBidirectionalBackgroundColorProperty(other *observe.Property[uint32]) T
	SetBackgroundColor(c uint32) T

	AddStylesheet(sheet string) T
	RemoveStylesheet(sheet string) T
	SetStylesheets(sheets ...string) T
	AddStylesheetInvalidationListener(l *observe.InvalidationListener) T
	RemoveStylesheetInvalidationListener(l *observe.InvalidationListener) T
}

// ControlConfig adds the interactive-control surface: tooltip, disable,
// and focus observation.
type ControlConfig[T any] interface {
	RegionConfig[T]

	AddTooltipChangeListener(l *observe.ChangeListener[string]) T
	RemoveTooltipChangeListener(l *observe.ChangeListener[string]) T
	AddTooltipInvalidationListener(l *observe.InvalidationListener) T
	RemoveTooltipInvalidationListener(l *observe.InvalidationListener) T
	BindTooltipProperty(source observe.ObservableValue[string]) T
	UnbindTooltipProperty() T
	BindBidirectionalTooltipProperty(other *observe.Property[string]) T
	UnbindBidirectionalTooltipProperty(other *observe.Property[string]) T
	SetTooltip(text string) T

	AddDisableChangeListener(l *observe.ChangeListener[bool]) T
	RemoveDisableChangeListener(l *observe.ChangeListener[bool]) T
	AddDisableInvalidationListener(l *observe.InvalidationListener) T
	RemoveDisableInvalidationListener(l *observe.InvalidationListener) T
	BindDisableProperty(source observe.ObservableValue[bool]) T
	UnbindDisableProperty() T
	BindBidirectionalDisableProperty(other *observe.Property[bool]) T
	UnbindBidirectionalDisableProperty(other *observe.Property[bool]) T
	SetDisable(disabled bool) T

	AddFocusedChangeListener(l *observe.ChangeListener[bool]) T
	RemoveFocusedChangeListener(l *observe.ChangeListener[bool]) T
	AddFocusedInvalidationListener(l *observe.InvalidationListener) T
	RemoveFocusedInvalidationListener(l *observe.InvalidationListener) T
	RequestFocus() T
}

// LabeledConfig adds the text-display surface shared by labels, buttons
// and check boxes.
type LabeledConfig[T any] interface {
	ControlConfig[T]

	AddTextChangeListener(l *observe.ChangeListener[string]) T
	RemoveTextChangeListener(l *observe.ChangeListener[string]) T
	AddTextInvalidationListener(l *observe.InvalidationListener) T
	RemoveTextInvalidationListener(l *observe.InvalidationListener) T
	BindTextProperty(source observe.ObservableValue[string]) T
	UnbindTextProperty() T
	BindBidirectionalTextProperty(other *observe.Property[string]) T
	UnbindBidirectionalTextProperty(other *observe.Property[string]) T
	SetText(text string) T

	AddFontSizeChangeListener(l *observe.ChangeListener[float64]) T
	RemoveFontSizeChangeListener(l *observe.ChangeListener[float64]) T
	AddFontSizeInvalidationListener(l *observe.InvalidationListener) T
	RemoveFontSizeInvalidationListener(l *observe.InvalidationListener) T
	BindFontSizeProperty(source observe.ObservableValue[float64]) T
	UnbindFontSizeProperty() T
	BindBidirectionalFontSizeProperty(other *observe.Property[float64]) T
	UnbindBidirectionalFontSizeProperty(other *observe.Property[float64]) T
	SetFontSize(size float64) T

	AddTextColorChangeListener(l *observe.ChangeListener[uint32]) T
	RemoveTextColorChangeListener(l *observe.ChangeListener[uint32]) T
	AddTextColorInvalidationListener(l *observe.InvalidationListener) T
	RemoveTextColorInvalidationListener(l *observe.InvalidationListener) T
	BindTextColorProperty(source observe.ObservableValue[uint32]) T
	UnbindTextColorProperty() T
	BindBidirectionalTextColorProperty(other *observe.Property[uint32]) T
	UnbindBidirectionalTextColorProperty(other *observe.Property[uint32]) T
	SetTextColor(c uint32) T

	AddWrapTextChangeListener(l *observe.ChangeListener[bool]) T
	RemoveWrapTextChangeListener(l *observe.ChangeListener[bool]) T
	AddWrapTextInvalidationListener(l *observe.InvalidationListener) T
	RemoveWrapTextInvalidationListener(l *observe.InvalidationListener) T
	BindWrapTextProperty(source observe.ObservableValue[bool]) T
	UnbindWrapTextProperty() T
	BindBidirectionalWrapTextProperty(other *observe.Property[bool]) T
	UnbindBidirectionalWrapTextProperty(other *observe.Property[bool]) T
	SetWrapText(wrap bool) T
}

// ButtonBaseConfig adds the action surface shared by buttons, toggle
// buttons and check boxes.
type ButtonBaseConfig[T any] interface {
	LabeledConfig[T]

	SetOnAction(h *fluentkit.EventHandler) T
	Fire() T
}

// ButtonConfig is the push-button contract.
type ButtonConfig[T any] interface {
	ButtonBaseConfig[T]

	AddDefaultButtonChangeListener(l *observe.ChangeListener[bool]) T
	RemoveDefaultButtonChangeListener(l *observe.ChangeListener[bool]) T
	AddDefaultButtonInvalidationListener(l *observe.InvalidationListener) T
	RemoveDefaultButtonInvalidationListener(l *observe.InvalidationListener) T
	BindDefaultButtonProperty(source observe.ObservableValue[bool]) T
	UnbindDefaultButtonProperty() T
	BindBidirectionalDefaultButtonProperty(other *observe.Property[bool]) T
	UnbindBidirectionalDefaultButtonProperty(other *observe.Property[bool]) T
	SetDefaultButton(v bool) T

	AddCancelButtonChangeListener(l *observe.ChangeListener[bool]) T
	RemoveCancelButtonChangeListener(l *observe.ChangeListener[bool]) T
	AddCancelButtonInvalidationListener(l *observe.InvalidationListener) T
	RemoveCancelButtonInvalidationListener(l *observe.InvalidationListener) T
	BindCancelButtonProperty(source observe.ObservableValue[bool]) T
	UnbindCancelButtonProperty() T
	BindBidirectionalCancelButtonProperty(other *observe.Property[bool]) T
	UnbindBidirectionalCancelButtonProperty(other *observe.Property[bool]) T
	SetCancelButton(v bool) T
}

// ToggleButtonConfig is the toggle-button contract.
type ToggleButtonConfig[T any] interface {
	ButtonBaseConfig[T]

	AddSelectedChangeListener(l *observe.ChangeListener[bool]) T
	RemoveSelectedChangeListener(l *observe.ChangeListener[bool]) T
	AddSelectedInvalidationListener(l *observe.InvalidationListener) T
	RemoveSelectedInvalidationListener(l *observe.InvalidationListener) T
	BindSelectedProperty(source observe.ObservableValue[bool]) T
	UnbindSelectedProperty() T
	BindBidirectionalSelectedProperty(other *observe.Property[bool]) T
	UnbindBidirectionalSelectedProperty(other *observe.Property[bool]) T
	SetSelected(selected bool) T

	SetToggleGroup(g *fluentkit.ToggleGroup) T
}

// CheckBoxConfig is the check-box contract.
type CheckBoxConfig[T any] interface {
	ButtonBaseConfig[T]

	AddSelectedChangeListener(l *observe.ChangeListener[bool]) T
	RemoveSelectedChangeListener(l *observe.ChangeListener[bool]) T
	AddSelectedInvalidationListener(l *observe.InvalidationListener) T
	RemoveSelectedInvalidationListener(l *observe.InvalidationListener) T
	BindSelectedProperty(source observe.ObservableValue[bool]) T
	UnbindSelectedProperty() T
	BindBidirectionalSelectedProperty(other *observe.Property[bool]) T
	UnbindBidirectionalSelectedProperty(other *observe.Property[bool]) T
	SetSelected(selected bool) T

	AddIndeterminateChangeListener(l *observe.ChangeListener[bool]) T
	RemoveIndeterminateChangeListener(l *observe.ChangeListener[bool]) T
	AddIndeterminateInvalidationListener(l *observe.InvalidationListener) T
	RemoveIndeterminateInvalidationListener(l *observe.InvalidationListener) T
	BindIndeterminateProperty(source observe.ObservableValue[bool]) T
	UnbindIndeterminateProperty() T
	BindBidirectionalIndeterminateProperty(other *observe.Property[bool]) T
	UnbindBidirectionalIndeterminateProperty(other *observe.Property[bool]) T
	SetIndeterminate(v bool) T
}

// LabelConfig is the label contract.
type LabelConfig[T any] interface {
	LabeledConfig[T]

	SetLabelFor(n fluentkit.Node) T
	AddLabelForChangeListener(l *observe.ChangeListener[any]) T
	RemoveLabelForChangeListener(l *observe.ChangeListener[any]) T
	AddLabelForInvalidationListener(l *observe.InvalidationListener) T
	RemoveLabelForInvalidationListener(l *observe.InvalidationListener) T
}

// TextInputControlConfig is the shared text-entry contract: the text,
// prompt and editable properties plus the full editing surface, forwarded
// verbatim to the wrapped control's editing model.
type TextInputControlConfig[T any] interface {
	ControlConfig[T]

	AddTextChangeListener(l *observe.ChangeListener[string]) T
	RemoveTextChangeListener(l *observe.ChangeListener[string]) T
	AddTextInvalidationListener(l *observe.InvalidationListener) T
	RemoveTextInvalidationListener(l *observe.InvalidationListener) T
	BindTextProperty(source observe.ObservableValue[string]) T
	UnbindTextProperty() T
	BindBidirectionalTextProperty(other *observe.Property[string]) T
	UnbindBidirectionalTextProperty(other *observe.Property[string]) T
	SetText(text string) T

	AddPromptTextChangeListener(l *observe.ChangeListener[string]) T
	RemovePromptTextChangeListener(l *observe.ChangeListener[string]) T
	AddPromptTextInvalidationListener(l *observe.InvalidationListener) T
	RemovePromptTextInvalidationListener(l *observe.InvalidationListener) T
	BindPromptTextProperty(source observe.ObservableValue[string]) T
	UnbindPromptTextProperty() T
	BindBidirectionalPromptTextProperty(other *observe.Property[string]) T
	UnbindBidirectionalPromptTextProperty(other *observe.Property[string]) T
	SetPromptText(text string) T

	AddEditableChangeListener(l *observe.ChangeListener[bool]) T
	RemoveEditableChangeListener(l *observe.ChangeListener[bool]) T
	AddEditableInvalidationListener(l *observe.InvalidationListener) T
	RemoveEditableInvalidationListener(l *observe.InvalidationListener) T
	BindEditableProperty(source observe.ObservableValue[bool]) T
	UnbindEditableProperty() T
	BindBidirectionalEditableProperty(other *observe.Property[bool]) T
	UnbindBidirectionalEditableProperty(other *observe.Property[bool]) T
	SetEditable(editable bool) T

	InsertText(index int, text string) T
	DeleteText(start, end int) T
	ReplaceText(start, end int, text string) T
	AppendText(text string) T
	ReplaceSelection(text string) T
	Clear() T
	Cut() T
	Copy() T
	Paste() T
	SelectRange(anchor, caret int) T
	SelectAll() T
	DeselectAll() T
	PositionCaret(pos int) T
	Forward() T
	Backward() T
	Home() T
	End() T
	NextWord() T
	PreviousWord() T
	Undo() T
	Redo() T
}

// TextFieldConfig is the single-line text input contract.
type TextFieldConfig[T any] interface {
	TextInputControlConfig[T]

	SetOnAction(h *fluentkit.EventHandler) T
}

// TextAreaConfig is the multiline text input contract.
type TextAreaConfig[T any] interface {
	TextInputControlConfig[T]

	AddWrapTextChangeListener(l *observe.ChangeListener[bool]) T
	RemoveWrapTextChangeListener(l *observe.ChangeListener[bool]) T
	AddWrapTextInvalidationListener(l *observe.InvalidationListener) T
	RemoveWrapTextInvalidationListener(l *observe.InvalidationListener) T
	BindWrapTextProperty(source observe.ObservableValue[bool]) T
	UnbindWrapTextProperty() T
	BindBidirectionalWrapTextProperty(other *observe.Property[bool]) T
	UnbindBidirectionalWrapTextProperty(other *observe.Property[bool]) T
	SetWrapText(wrap bool) T
}

// SliderConfig is the slider contract.
type SliderConfig[T any] interface {
	ControlConfig[T]

	AddValueChangeListener(l *observe.ChangeListener[float64]) T
	RemoveValueChangeListener(l *observe.ChangeListener[float64]) T
	AddValueInvalidationListener(l *observe.InvalidationListener) T
	RemoveValueInvalidationListener(l *observe.InvalidationListener) T
	BindValueProperty(source observe.ObservableValue[float64]) T
	UnbindValueProperty() T
	BindBidirectionalValueProperty(other *observe.Property[float64]) T
	UnbindBidirectionalValueProperty(other *observe.Property[float64]) T
	SetValue(v float64) T

	AddMinChangeListener(l *observe.ChangeListener[float64]) T
	RemoveMinChangeListener(l *observe.ChangeListener[float64]) T
	AddMinInvalidationListener(l *observe.InvalidationListener) T
	RemoveMinInvalidationListener(l *observe.InvalidationListener) T
	BindMinProperty(source observe.ObservableValue[float64]) T
	UnbindMinProperty() T
	BindBidirectionalMinProperty(other *observe.Property[float64]) T
	UnbindBidirectionalMinProperty(other *observe.Property[float64]) T
	SetMin(v float64) T

	AddMaxChangeListener(l *observe.ChangeListener[float64]) T
	RemoveMaxChangeListener(l *observe.ChangeListener[float64]) T
	AddMaxInvalidationListener(l *observe.InvalidationListener) T
	RemoveMaxInvalidationListener(l *observe.InvalidationListener) T
	BindMaxProperty(source observe.ObservableValue[float64]) T
	UnbindMaxProperty() T
	BindBidirectionalMaxProperty(other *observe.Property[float64]) T
	UnbindBidirectionalMaxProperty(other *observe.Property[float64]) T
	SetMax(v float64) T
}

// CustomConfig is the contract for configurators of arbitrary widget
// types. Properties are supplied by the caller rather than named by the
// interface, so every method is ownership-validated: the property must be
// owned by the held control. One method family exists per primitive kind;
// Go has no numeric supertype, so there is no combined number family.
type CustomConfig[T any, C fluentkit.Node] interface {
	NodeConfig[T]

	CustomControl() C
	SetCustomControl(control C) T

	AddInvalidationListener(o ownedObservable, l *observe.InvalidationListener) T
	RemoveInvalidationListener(o ownedObservable, l *observe.InvalidationListener) T

	SetBoolValue(p *observe.Property[bool], v bool) T
	AddBoolChangeListener(p *observe.Property[bool], l *observe.ChangeListener[bool]) T
	RemoveBoolChangeListener(p *observe.Property[bool], l *observe.ChangeListener[bool]) T
	BindBoolProperty(p *observe.Property[bool], source observe.ObservableValue[bool]) T
	UnbindBoolProperty(p *observe.Property[bool]) T
	BindBidirectionalBoolProperty(p, other *observe.Property[bool]) T
	UnbindBidirectionalBoolProperty(p, other *observe.Property[bool]) T

	SetIntValue(p *observe.Property[int], v int) T
	AddIntChangeListener(p *observe.Property[int], l *observe.ChangeListener[int]) T
	RemoveIntChangeListener(p *observe.Property[int], l *observe.ChangeListener[int]) T
	BindIntProperty(p *observe.Property[int], source observe.ObservableValue[int]) T
	UnbindIntProperty(p *observe.Property[int]) T
	BindBidirectionalIntProperty(p, other *observe.Property[int]) T
	UnbindBidirectionalIntProperty(p, other *observe.Property[int]) T

	SetInt64Value(p *observe.Property[int64], v int64) T
	AddInt64ChangeListener(p *observe.Property[int64], l *observe.ChangeListener[int64]) T
	RemoveInt64ChangeListener(p *observe.Property[int64], l *observe.ChangeListener[int64]) T
	BindInt64Property(p *observe.Property[int64], source observe.ObservableValue[int64]) T
	UnbindInt64Property(p *observe.Property[int64]) T
	BindBidirectionalInt64Property(p, other *observe.Property[int64]) T
	UnbindBidirectionalInt64Property(p, other *observe.Property[int64]) T

	SetFloat32Value(p *observe.Property[float32], v float32) T
	AddFloat32ChangeListener(p *observe.Property[float32], l *observe.ChangeListener[float32]) T
	RemoveFloat32ChangeListener(p *observe.Property[float32], l *observe.ChangeListener[float32]) T
	BindFloat32Property(p *observe.Property[float32], source observe.ObservableValue[float32]) T
	UnbindFloat32Property(p *observe.Property[float32]) T
	BindBidirectionalFloat32Property(p, other *observe.Property[float32]) T
	UnbindBidirectionalFloat32Property(p, other *observe.Property[float32]) T

	SetFloat64Value(p *observe.Property[float64], v float64) T
	AddFloat64ChangeListener(p *observe.Property[float64], l *observe.ChangeListener[float64]) T
	RemoveFloat64ChangeListener(p *observe.Property[float64], l *observe.ChangeListener[float64]) T
	BindFloat64Property(p *observe.Property[float64], source observe.ObservableValue[float64]) T
	UnbindFloat64Property(p *observe.Property[float64]) T
	BindBidirectionalFloat64Property(p, other *observe.Property[float64]) T
	UnbindBidirectionalFloat64Property(p, other *observe.Property[float64]) T

	SetStringValue(p *observe.Property[string], v string) T
	AddStringChangeListener(p *observe.Property[string], l *observe.ChangeListener[string]) T
	RemoveStringChangeListener(p *observe.Property[string], l *observe.ChangeListener[string]) T
	BindStringProperty(p *observe.Property[string], source observe.ObservableValue[string]) T
	UnbindStringProperty(p *observe.Property[string]) T
	BindBidirectionalStringProperty(p, other *observe.Property[string]) T
	UnbindBidirectionalStringProperty(p, other *observe.Property[string]) T

	SetObjectValue(p *observe.Property[any], v any) T
	AddObjectChangeListener(p *observe.Property[any], l *observe.ChangeListener[any]) T
	RemoveObjectChangeListener(p *observe.Property[any], l *observe.ChangeListener[any]) T
	BindObjectProperty(p *observe.Property[any], source observe.ObservableValue[any]) T
	UnbindObjectProperty(p *observe.Property[any]) T
	BindBidirectionalObjectProperty(p, other *observe.Property[any]) T
	UnbindBidirectionalObjectProperty(p, other *observe.Property[any]) T
}
