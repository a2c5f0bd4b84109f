package fluentkit

import (
	"sync"
	"time"

	errors "github.com/agilira/go-errors"
	"github.com/agilira/go-timecache"
)

// ============================================================================
// Event Types
// ============================================================================

// EventType identifies the kind of event.
type EventType uint8

const (
	// Mouse events
	EventMouseEnter EventType = iota + 1
	EventMouseLeave
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventClick

	// Keyboard events
	EventKeyDown
	EventKeyUp
	EventKeyPress // Character input

	// Focus events
	EventFocus
	EventBlur

	// Control events
	EventAction
)

// EventPhase indicates when in the event propagation cycle we are.
type EventPhase uint8

const (
	// PhaseCapture - event travels from root down to target.
	// Filters run here and can intercept before the target sees it.
	PhaseCapture EventPhase = iota

	// PhaseTarget - event is at the target widget.
	PhaseTarget

	// PhaseBubble - event travels from target up to root.
	// Handlers run here; most registrations use this.
	PhaseBubble
)

// MouseButton identifies which mouse button was pressed.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Modifiers are the modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win on Windows
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// ============================================================================
// Event Interface and Base
// ============================================================================

// Event is the interface for all events routed through FireEvent.
type Event interface {
	// Type returns the event type.
	Type() EventType

	// Target returns the widget the event was fired on.
	Target() Node

	// CurrentTarget returns the widget currently handling the event
	// during propagation.
	CurrentTarget() Node

	// Phase returns the current propagation phase.
	Phase() EventPhase

	// Consume prevents the event from continuing to propagate.
	Consume()

	// IsConsumed returns true if propagation was stopped.
	IsConsumed() bool

	// Timestamp returns the event creation time in nanoseconds.
	Timestamp() int64

	// When returns the event creation time.
	When() time.Time

	// internal methods for event dispatch
	setTarget(n Node)
	setCurrentTarget(n Node)
	setPhase(p EventPhase)
}

// eventBase provides common event functionality. Timestamps come from the
// time cache: events are high-frequency and pooled, so a syscall per event
// is not worth it.
type eventBase struct {
	eventType     EventType
	target        Node
	currentTarget Node
	phase         EventPhase
	consumed      bool
	timestamp     int64
}

func (e *eventBase) Type() EventType        { return e.eventType }
func (e *eventBase) Target() Node           { return e.target }
func (e *eventBase) CurrentTarget() Node    { return e.currentTarget }
func (e *eventBase) Phase() EventPhase      { return e.phase }
func (e *eventBase) Consume()               { e.consumed = true }
func (e *eventBase) IsConsumed() bool       { return e.consumed }
func (e *eventBase) Timestamp() int64       { return e.timestamp }
func (e *eventBase) When() time.Time        { return time.Unix(0, e.timestamp) }
func (e *eventBase) setTarget(n Node)       { e.target = n }
func (e *eventBase) setCurrentTarget(n Node) { e.currentTarget = n }
func (e *eventBase) setPhase(p EventPhase)  { e.phase = p }

func (e *eventBase) reset(eventType EventType) {
	e.eventType = eventType
	e.target = nil
	e.currentTarget = nil
	e.phase = PhaseTarget
	e.consumed = false
	e.timestamp = timecache.CachedTimeNano()
}

// ============================================================================
// Mouse Event
// ============================================================================

// MouseEvent represents mouse interaction events.
type MouseEvent struct {
	eventBase

	// Screen coordinates (relative to window)
	X, Y float32

	// Local coordinates (relative to target widget's top-left)
	LocalX, LocalY float32

	// Which button triggered the event (for down/up/click)
	Button MouseButton

	// Modifier keys held during the event
	Modifiers Modifiers

	// Click count for detecting double/triple clicks
	ClickCount int
}

// NewMouseEvent creates a mouse event. Uses an object pool because mouse
// move events fire continuously.
func NewMouseEvent(eventType EventType, x, y float32, button MouseButton, mods Modifiers) *MouseEvent {
	e := mouseEventPool.Get().(*MouseEvent)
	e.reset(eventType)
	e.X = x
	e.Y = y
	e.LocalX = x
	e.LocalY = y
	e.Button = button
	e.Modifiers = mods
	e.ClickCount = 1
	return e
}

// Release returns the event to the pool. Call when done processing.
func (e *MouseEvent) Release() {
	mouseEventPool.Put(e)
}

var mouseEventPool = sync.Pool{
	New: func() any {
		return &MouseEvent{}
	},
}

// ============================================================================
// Keyboard Event
// ============================================================================

// KeyEvent represents keyboard events.
type KeyEvent struct {
	eventBase

	// Physical key code (platform-specific)
	KeyCode uint32

	// Logical key (e.g., 'a', 'Enter', 'Escape')
	Key string

	// For KeyPress events, the character that was typed
	Char rune

	// Modifier keys held during the event
	Modifiers Modifiers
}

// NewKeyEvent creates a keyboard event.
func NewKeyEvent(eventType EventType, keyCode uint32, key string, char rune, mods Modifiers) *KeyEvent {
	e := keyEventPool.Get().(*KeyEvent)
	e.reset(eventType)
	e.KeyCode = keyCode
	e.Key = key
	e.Char = char
	e.Modifiers = mods
	return e
}

// Release returns the event to the pool.
func (e *KeyEvent) Release() {
	keyEventPool.Put(e)
}

var keyEventPool = sync.Pool{
	New: func() any {
		return &KeyEvent{}
	},
}

// ============================================================================
// Action Event
// ============================================================================

// ActionEvent is fired when a control's primary action triggers, such as a
// button press or a text field commit.
type ActionEvent struct {
	eventBase
}

// NewActionEvent creates an action event.
func NewActionEvent() *ActionEvent {
	e := &ActionEvent{}
	e.reset(EventAction)
	return e
}

// ============================================================================
// Focus Event
// ============================================================================

// FocusEvent represents focus change events.
type FocusEvent struct {
	eventBase

	// RelatedTarget is the widget losing focus (for Focus) or gaining
	// focus (for Blur).
	RelatedTarget Node
}

// NewFocusEvent creates a focus event.
func NewFocusEvent(eventType EventType, relatedTarget Node) *FocusEvent {
	e := &FocusEvent{RelatedTarget: relatedTarget}
	e.reset(eventType)
	return e
}

// ============================================================================
// Event Handler
// ============================================================================

// EventHandler is an identity-bearing event callback. Construct with
// HandlerFunc; the pointer is the registration identity, so the same
// handler can be removed symmetrically.
type EventHandler struct {
	fn func(Event)
}

// HandlerFunc wraps a callback as a removable event handler.
func HandlerFunc(fn func(Event)) *EventHandler {
	return &EventHandler{fn: fn}
}

func requireHandler(method string, h *EventHandler) {
	if h == nil {
		panic(errors.New(ErrCodeNilArgument, method+": handler must not be nil"))
	}
}
