package observe

import (
	"reflect"
	"sync"
	"sync/atomic"

	errors "github.com/agilira/go-errors"
)

// Property is a mutable observable value owned by a single object (its
// "bean", usually a widget). Properties support change and invalidation
// listeners, unidirectional binding to any ObservableValue, and
// bidirectional binding to other properties of the same type.
//
// Properties are safe for concurrent access. Listeners are invoked outside
// the property's lock, in registration order, with invalidation listeners
// before change listeners.
type Property[T any] struct {
	mu    sync.RWMutex
	owner any
	name  string
	value T

	// Unidirectional binding source, nil when unbound.
	bound         ObservableValue[T]
	boundListener *ChangeListener[T]

	// Active bidirectional links involving this property.
	bidi []*bidiBinding[T]

	changeListeners []*ChangeListener[T]
	invListeners    []*InvalidationListener
}

// NewProperty creates a property with the given owner, name and initial value.
func NewProperty[T any](owner any, name string, initial T) *Property[T] {
	return &Property[T]{
		owner: owner,
		name:  name,
		value: initial,
	}
}

// Typed constructors mirroring the per-type property families widgets expose.

// NewBoolProperty creates a boolean property.
func NewBoolProperty(owner any, name string, initial bool) *Property[bool] {
	return NewProperty(owner, name, initial)
}

// NewIntProperty creates an integer property.
func NewIntProperty(owner any, name string, initial int) *Property[int] {
	return NewProperty(owner, name, initial)
}

// NewInt64Property creates a 64-bit integer property.
func NewInt64Property(owner any, name string, initial int64) *Property[int64] {
	return NewProperty(owner, name, initial)
}

// NewFloat32Property creates a 32-bit float property.
func NewFloat32Property(owner any, name string, initial float32) *Property[float32] {
	return NewProperty(owner, name, initial)
}

// NewFloat64Property creates a 64-bit float property.
func NewFloat64Property(owner any, name string, initial float64) *Property[float64] {
	return NewProperty(owner, name, initial)
}

// NewStringProperty creates a string property.
func NewStringProperty(owner any, name string, initial string) *Property[string] {
	return NewProperty(owner, name, initial)
}

// NewObjectProperty creates a property holding an arbitrary value.
func NewObjectProperty(owner any, name string, initial any) *Property[any] {
	return NewProperty(owner, name, initial)
}

var _ ObservableValue[int] = (*Property[int])(nil)
var _ Handle = (*Property[int])(nil)

// Owner returns the object this property belongs to.
func (p *Property[T]) Owner() any {
	return p.owner
}

// Name returns the property's name within its owner.
func (p *Property[T]) Name() string {
	return p.name
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Set assigns the value directly. Panics with ErrCodeBoundValue while the
// property is unidirectionally bound; call Unbind first.
func (p *Property[T]) Set(v T) {
	p.mu.RLock()
	bound := p.bound != nil
	p.mu.RUnlock()
	if bound {
		panic(errors.New(ErrCodeBoundValue, "Property.Set: "+p.name+" is bound and cannot be set directly; call Unbind first"))
	}
	p.update(v)
}

// IsBound reports whether the property is unidirectionally bound.
func (p *Property[T]) IsBound() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.bound != nil
}

// Bind makes this property track the source observable's value, replacing
// any prior binding. The property adopts the source's current value
// immediately. Panics if source is nil or the property itself.
func (p *Property[T]) Bind(source ObservableValue[T]) {
	if source == nil {
		panic(errors.New(ErrCodeNilObservable, "Property.Bind: "+p.name+": source observable must not be nil"))
	}
	if any(source) == any(p) {
		panic(errors.New(ErrCodeSelfBinding, "Property.Bind: "+p.name+" cannot be bound to itself"))
	}

	p.Unbind()

	l := OnChange(func(_ ObservableValue[T], _, newValue T) {
		p.update(newValue)
	})
	p.mu.Lock()
	p.bound = source
	p.boundListener = l
	p.mu.Unlock()

	p.update(source.Get())
	source.AddListener(l)
}

// Unbind detaches the property from its binding source, leaving the last
// bound value in place. No-op when unbound.
func (p *Property[T]) Unbind() {
	p.mu.Lock()
	source, l := p.bound, p.boundListener
	p.bound, p.boundListener = nil, nil
	p.mu.Unlock()

	if source != nil {
		source.RemoveListener(l)
	}
}

// BindBidirectional links this property with another so a write to either
// side propagates to the other. This property adopts the other's current
// value when the link is established. The link is last-writer-wins: after
// any write both ends converge to the written value.
func (p *Property[T]) BindBidirectional(other *Property[T]) {
	if other == nil {
		panic(errors.New(ErrCodeNilObservable, "Property.BindBidirectional: "+p.name+": other property must not be nil"))
	}
	if other == p {
		panic(errors.New(ErrCodeSelfBinding, "Property.BindBidirectional: "+p.name+" cannot be bound to itself"))
	}

	p.update(other.Get())

	bb := &bidiBinding[T]{a: p, b: other}
	bb.aListener = OnChange(func(_ ObservableValue[T], _, newValue T) {
		bb.propagate(other, newValue)
	})
	bb.bListener = OnChange(func(_ ObservableValue[T], _, newValue T) {
		bb.propagate(p, newValue)
	})

	p.mu.Lock()
	p.bidi = append(p.bidi, bb)
	p.mu.Unlock()
	other.mu.Lock()
	other.bidi = append(other.bidi, bb)
	other.mu.Unlock()

	p.AddListener(bb.aListener)
	other.AddListener(bb.bListener)
}

// UnbindBidirectional removes the two-way link between this property and
// the other. Each side keeps its current value. No-op if no link exists.
func (p *Property[T]) UnbindBidirectional(other *Property[T]) {
	if other == nil {
		return
	}

	p.mu.Lock()
	var bb *bidiBinding[T]
	for i, cand := range p.bidi {
		if (cand.a == p && cand.b == other) || (cand.a == other && cand.b == p) {
			bb = cand
			p.bidi = append(p.bidi[:i], p.bidi[i+1:]...)
			break
		}
	}
	p.mu.Unlock()
	if bb == nil {
		return
	}

	other.mu.Lock()
	for i, cand := range other.bidi {
		if cand == bb {
			other.bidi = append(other.bidi[:i], other.bidi[i+1:]...)
			break
		}
	}
	other.mu.Unlock()

	bb.a.RemoveListener(bb.aListener)
	bb.b.RemoveListener(bb.bListener)
}

// AddListener registers a change listener. Panics if l is nil.
func (p *Property[T]) AddListener(l *ChangeListener[T]) {
	if l == nil {
		panic(errors.New(ErrCodeNilListener, "Property.AddListener: "+p.name+": listener must not be nil"))
	}
	p.mu.Lock()
	p.changeListeners = append(p.changeListeners, l)
	p.mu.Unlock()
}

// RemoveListener unregisters a change listener. No-op if not registered.
func (p *Property[T]) RemoveListener(l *ChangeListener[T]) {
	p.mu.Lock()
	for i, cand := range p.changeListeners {
		if cand == l {
			p.changeListeners = append(p.changeListeners[:i], p.changeListeners[i+1:]...)
			break
		}
	}
	p.mu.Unlock()
}

// AddInvalidationListener registers an invalidation listener. Panics if l is nil.
func (p *Property[T]) AddInvalidationListener(l *InvalidationListener) {
	if l == nil {
		panic(errors.New(ErrCodeNilListener, "Property.AddInvalidationListener: "+p.name+": listener must not be nil"))
	}
	p.mu.Lock()
	p.invListeners = append(p.invListeners, l)
	p.mu.Unlock()
}

// RemoveInvalidationListener unregisters an invalidation listener.
// No-op if not registered.
func (p *Property[T]) RemoveInvalidationListener(l *InvalidationListener) {
	p.mu.Lock()
	for i, cand := range p.invListeners {
		if cand == l {
			p.invListeners = append(p.invListeners[:i], p.invListeners[i+1:]...)
			break
		}
	}
	p.mu.Unlock()
}

// update assigns the value regardless of binding state and notifies
// listeners on effective change. Binding and bidirectional propagation go
// through here so they bypass the bound-value guard.
func (p *Property[T]) update(v T) {
	p.mu.Lock()
	old := p.value
	if valuesEqual(old, v) {
		p.mu.Unlock()
		return
	}
	p.value = v

	inv := make([]*InvalidationListener, len(p.invListeners))
	copy(inv, p.invListeners)
	chg := make([]*ChangeListener[T], len(p.changeListeners))
	copy(chg, p.changeListeners)
	p.mu.Unlock()

	for _, l := range inv {
		l.fn(p)
	}
	for _, l := range chg {
		l.fn(p, old, v)
	}
}

// valuesEqual reports whether a change is effective. DeepEqual never
// panics on incomparable values, unlike ==.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// bidiBinding links two properties. The updating flag breaks the
// propagation cycle: the side that observed the original write forwards it
// once, and the echo from the far side is dropped.
type bidiBinding[T any] struct {
	a, b      *Property[T]
	aListener *ChangeListener[T]
	bListener *ChangeListener[T]
	updating  atomic.Bool
}

func (bb *bidiBinding[T]) propagate(to *Property[T], v T) {
	if !bb.updating.CompareAndSwap(false, true) {
		return
	}
	defer bb.updating.Store(false)
	to.update(v)
}
