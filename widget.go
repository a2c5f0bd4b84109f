// Package fluentkit is a retained-mode widget toolkit whose widgets expose
// their configurable state as observable properties. The configure
// subpackage layers fluent, chainable configurators on top of it.
package fluentkit

import (
	"sync"

	errors "github.com/agilira/go-errors"

	"github.com/fluentkit/fluentkit/observe"
)

// Node is any member of the widget tree. WidgetBase exposes the node's
// embedded Widget, which carries the tree links and the node-level
// properties shared by every widget family.
type Node interface {
	WidgetBase() *Widget
}

// Widget is the base of every widget family. It owns the node-level
// properties (id, visible, opacity), the style-class list, the tree links,
// and the event handler/filter registries.
type Widget struct {
	mu sync.RWMutex

	// self is the outermost node embedding this Widget. Properties are
	// owned by self so ownership checks compare against the instance the
	// caller actually holds.
	self Node

	id      *observe.Property[string]
	visible *observe.Property[bool]
	opacity *observe.Property[float64]

	styleClasses *observe.List[string]

	parent   Node
	children []Node

	handlers map[EventType][]*EventHandler
	filters  map[EventType][]*EventHandler
}

// NewWidget creates a standalone widget node.
func NewWidget() *Widget {
	w := &Widget{}
	w.initWidget(w)
	return w
}

// initWidget wires the node-level properties with self as their owner.
// Every widget family constructor calls this with the outermost instance.
func (w *Widget) initWidget(self Node) {
	w.self = self
	w.id = observe.NewStringProperty(self, "id", "")
	w.visible = observe.NewBoolProperty(self, "visible", true)
	w.opacity = observe.NewFloat64Property(self, "opacity", 1.0)
	w.styleClasses = observe.NewList[string](self, "styleClass")
	w.handlers = make(map[EventType][]*EventHandler)
	w.filters = make(map[EventType][]*EventHandler)
}

// WidgetBase returns the widget itself, satisfying Node.
func (w *Widget) WidgetBase() *Widget {
	return w
}

// node returns the outermost node embedding this widget.
func (w *Widget) node() Node {
	return w.self
}

// ============================================================================
// Node Properties
// ============================================================================

// IDProperty returns the widget's id property.
func (w *Widget) IDProperty() *observe.Property[string] {
	return w.id
}

// ID returns the widget's id.
func (w *Widget) ID() string {
	return w.id.Get()
}

// SetID sets the widget's id.
func (w *Widget) SetID(id string) {
	w.id.Set(id)
}

// VisibleProperty returns the visibility property.
func (w *Widget) VisibleProperty() *observe.Property[bool] {
	return w.visible
}

// Visible returns whether the widget is visible.
func (w *Widget) Visible() bool {
	return w.visible.Get()
}

// SetVisible sets the widget's visibility.
func (w *Widget) SetVisible(visible bool) {
	w.visible.Set(visible)
}

// OpacityProperty returns the opacity property.
func (w *Widget) OpacityProperty() *observe.Property[float64] {
	return w.opacity
}

// Opacity returns the widget's opacity (0.0 to 1.0).
func (w *Widget) Opacity() float64 {
	return w.opacity.Get()
}

// SetOpacity sets the widget's opacity.
func (w *Widget) SetOpacity(opacity float64) {
	w.opacity.Set(opacity)
}

// StyleClasses returns the observable style-class list.
func (w *Widget) StyleClasses() *observe.List[string] {
	return w.styleClasses
}

// ============================================================================
// Tree Structure
// ============================================================================

// Parent returns the widget's parent node, or nil if it's a root.
func (w *Widget) Parent() Node {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.parent
}

// Children returns a copy of the widget's children slice.
func (w *Widget) Children() []Node {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]Node, len(w.children))
	copy(result, w.children)
	return result
}

// AddChild appends a child node. Panics if child is nil.
func (w *Widget) AddChild(child Node) {
	if child == nil || child.WidgetBase() == nil {
		panic(errors.New(ErrCodeNilArgument, "Widget.AddChild: child must not be nil"))
	}

	child.WidgetBase().setParent(w.self)

	w.mu.Lock()
	w.children = append(w.children, child)
	w.mu.Unlock()
}

// RemoveChild removes a child by reference. Returns true if it was present.
func (w *Widget) RemoveChild(child Node) bool {
	if child == nil {
		return false
	}

	w.mu.Lock()
	for i, cand := range w.children {
		if cand == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			w.mu.Unlock()
			child.WidgetBase().setParent(nil)
			return true
		}
	}
	w.mu.Unlock()
	return false
}

func (w *Widget) setParent(parent Node) {
	w.mu.Lock()
	w.parent = parent
	w.mu.Unlock()
}

// ============================================================================
// Event Registration
// ============================================================================

// AddEventHandler registers a handler invoked during the target and bubble
// phases for events of the given type. Panics if the handler is nil.
func (w *Widget) AddEventHandler(eventType EventType, h *EventHandler) {
	requireHandler("Widget.AddEventHandler", h)
	w.mu.Lock()
	w.handlers[eventType] = append(w.handlers[eventType], h)
	w.mu.Unlock()
}

// RemoveEventHandler unregisters a handler. Removing a handler that is not
// registered is a no-op.
func (w *Widget) RemoveEventHandler(eventType EventType, h *EventHandler) {
	w.mu.Lock()
	regs := w.handlers[eventType]
	for i, cand := range regs {
		if cand == h {
			w.handlers[eventType] = append(regs[:i], regs[i+1:]...)
			break
		}
	}
	w.mu.Unlock()
}

// AddEventFilter registers a filter invoked during the capture phase,
// before the target's handlers. Panics if the filter is nil.
func (w *Widget) AddEventFilter(eventType EventType, h *EventHandler) {
	requireHandler("Widget.AddEventFilter", h)
	w.mu.Lock()
	w.filters[eventType] = append(w.filters[eventType], h)
	w.mu.Unlock()
}

// RemoveEventFilter unregisters a filter. Removing a filter that is not
// registered is a no-op.
func (w *Widget) RemoveEventFilter(eventType EventType, h *EventHandler) {
	w.mu.Lock()
	regs := w.filters[eventType]
	for i, cand := range regs {
		if cand == h {
			w.filters[eventType] = append(regs[:i], regs[i+1:]...)
			break
		}
	}
	w.mu.Unlock()
}

func (w *Widget) filtersFor(eventType EventType) []*EventHandler {
	w.mu.RLock()
	defer w.mu.RUnlock()
	regs := w.filters[eventType]
	out := make([]*EventHandler, len(regs))
	copy(out, regs)
	return out
}

func (w *Widget) handlersFor(eventType EventType) []*EventHandler {
	w.mu.RLock()
	defer w.mu.RUnlock()
	regs := w.handlers[eventType]
	out := make([]*EventHandler, len(regs))
	copy(out, regs)
	return out
}
