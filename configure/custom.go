package configure

import (
	"reflect"

	errors "github.com/agilira/go-errors"

	"github.com/fluentkit/fluentkit"
	"github.com/fluentkit/fluentkit/observe"
)

// CustomConfigurator configures arbitrary widget types through their
// properties instead of named methods. Every property-touching operation
// requires the supplied property to be owned by the held control and
// panics before mutating anything when it is not.
type CustomConfigurator[C fluentkit.Node] struct {
	nodeConfigurator[*CustomConfigurator[C]]
	control C
}

var _ CustomConfig[*CustomConfigurator[*fluentkit.Button], *fluentkit.Button] = (*CustomConfigurator[*fluentkit.Button])(nil)

// NewCustomConfigurator wraps any widget type. Panics if control is nil.
func NewCustomConfigurator[C fluentkit.Node](control C) *CustomConfigurator[C] {
	requireWidget("NewCustomConfigurator", !isNilNode(control))
	c := &CustomConfigurator[C]{}
	c.attach(control)
	return c
}

func (c *CustomConfigurator[C]) attach(control C) {
	c.control = control
	c.initNode(c, control)
}

// CustomControl returns the wrapped widget.
func (c *CustomConfigurator[C]) CustomControl() C {
	return c.control
}

// SetCustomControl reassigns the configurator to another widget of the
// same type. Panics if control is nil; the held widget is unchanged on
// failure.
func (c *CustomConfigurator[C]) SetCustomControl(control C) *CustomConfigurator[C] {
	if isNilNode(control) {
		panic(errors.New(fluentkit.ErrCodeNilArgument, "CustomConfigurator.SetCustomControl: control must not be nil"))
	}
	c.attach(control)
	return c
}

// Equal reports whether both configurators wrap the same widget.
func (c *CustomConfigurator[C]) Equal(other *CustomConfigurator[C]) bool {
	return other != nil && any(c.control) == any(other.control)
}

// isNilNode reports whether a Node-typed value is nil, including a typed
// nil pointer stored in the interface.
func isNilNode(n fluentkit.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ownedObservable is the handle shape required for ownership validation of
// invalidation-only operations.
type ownedObservable interface {
	observe.Observable
	observe.Handle
}

// checkOwner panics unless the handle is non-nil and owned by the held
// control. Nothing is mutated on failure.
func (c *CustomConfigurator[C]) checkOwner(method string, h observe.Handle) {
	if h == nil || reflect.ValueOf(h).IsNil() {
		panic(errors.New(fluentkit.ErrCodeNilArgument, method+": property must not be nil"))
	}
	if h.Owner() != any(c.control) {
		panic(errors.New(fluentkit.ErrCodeOwnershipMismatch,
			method+": property "+h.Name()+" is not owned by the configured control"))
	}
}

// ============================================================================
// Generic ownership-validated operations
// ============================================================================

// SetValue assigns a property after validating the configurator's held
// control owns it.
func SetValue[C fluentkit.Node, T any](c *CustomConfigurator[C], p *observe.Property[T], v T) *CustomConfigurator[C] {
	c.checkOwner("configure.SetValue", p)
	p.Set(v)
	return c
}

// AddChangeListener registers a change listener on an owned property.
func AddChangeListener[C fluentkit.Node, T any](c *CustomConfigurator[C], p *observe.Property[T], l *observe.ChangeListener[T]) *CustomConfigurator[C] {
	c.checkOwner("configure.AddChangeListener", p)
	p.AddListener(l)
	return c
}

// RemoveChangeListener unregisters a change listener from an owned
// property.
func RemoveChangeListener[C fluentkit.Node, T any](c *CustomConfigurator[C], p *observe.Property[T], l *observe.ChangeListener[T]) *CustomConfigurator[C] {
	c.checkOwner("configure.RemoveChangeListener", p)
	p.RemoveListener(l)
	return c
}

// BindProperty binds an owned property to a source observable.
func BindProperty[C fluentkit.Node, T any](c *CustomConfigurator[C], p *observe.Property[T], source observe.ObservableValue[T]) *CustomConfigurator[C] {
	c.checkOwner("configure.BindProperty", p)
	p.Bind(source)
	return c
}

// UnbindProperty detaches an owned property from its binding source.
func UnbindProperty[C fluentkit.Node, T any](c *CustomConfigurator[C], p *observe.Property[T]) *CustomConfigurator[C] {
	c.checkOwner("configure.UnbindProperty", p)
	p.Unbind()
	return c
}

// BindBidirectionalProperty links an owned property with another property
// in both directions.
func BindBidirectionalProperty[C fluentkit.Node, T any](c *CustomConfigurator[C], p *observe.Property[T], other *observe.Property[T]) *CustomConfigurator[C] {
	c.checkOwner("configure.BindBidirectionalProperty", p)
	p.BindBidirectional(other)
	return c
}

// UnbindBidirectionalProperty removes a two-way link from an owned
// property.
func UnbindBidirectionalProperty[C fluentkit.Node, T any](c *CustomConfigurator[C], p *observe.Property[T], other *observe.Property[T]) *CustomConfigurator[C] {
	c.checkOwner("configure.UnbindBidirectionalProperty", p)
	p.UnbindBidirectional(other)
	return c
}

// AddInvalidationListener registers an invalidation listener on an owned
// observable (property or list).
func (c *CustomConfigurator[C]) AddInvalidationListener(o ownedObservable, l *observe.InvalidationListener) *CustomConfigurator[C] {
	c.checkOwner("CustomConfigurator.AddInvalidationListener", o)
	o.AddInvalidationListener(l)
	return c
}

// RemoveInvalidationListener unregisters an invalidation listener from an
// owned observable.
func (c *CustomConfigurator[C]) RemoveInvalidationListener(o ownedObservable, l *observe.InvalidationListener) *CustomConfigurator[C] {
	c.checkOwner("CustomConfigurator.RemoveInvalidationListener", o)
	o.RemoveInvalidationListener(l)
	return c
}

// ============================================================================
// Typed method families
//
// Go methods cannot take type parameters, so the per-type families are
// thin wrappers over the generic functions above. There is no "number"
// family: Go has no numeric supertype, so callers use the concrete
// numeric kind.
// ============================================================================

func (c *CustomConfigurator[C]) SetBoolValue(p *observe.Property[bool], v bool) *CustomConfigurator[C] {
	return SetValue(c, p, v)
}

func (c *CustomConfigurator[C]) AddBoolChangeListener(p *observe.Property[bool], l *observe.ChangeListener[bool]) *CustomConfigurator[C] {
	return AddChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) RemoveBoolChangeListener(p *observe.Property[bool], l *observe.ChangeListener[bool]) *CustomConfigurator[C] {
	return RemoveChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) BindBoolProperty(p *observe.Property[bool], source observe.ObservableValue[bool]) *CustomConfigurator[C] {
	return BindProperty(c, p, source)
}

func (c *CustomConfigurator[C]) UnbindBoolProperty(p *observe.Property[bool]) *CustomConfigurator[C] {
	return UnbindProperty(c, p)
}

func (c *CustomConfigurator[C]) BindBidirectionalBoolProperty(p, other *observe.Property[bool]) *CustomConfigurator[C] {
	return BindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) UnbindBidirectionalBoolProperty(p, other *observe.Property[bool]) *CustomConfigurator[C] {
	return UnbindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) SetIntValue(p *observe.Property[int], v int) *CustomConfigurator[C] {
	return SetValue(c, p, v)
}

func (c *CustomConfigurator[C]) AddIntChangeListener(p *observe.Property[int], l *observe.ChangeListener[int]) *CustomConfigurator[C] {
	return AddChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) RemoveIntChangeListener(p *observe.Property[int], l *observe.ChangeListener[int]) *CustomConfigurator[C] {
	return RemoveChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) BindIntProperty(p *observe.Property[int], source observe.ObservableValue[int]) *CustomConfigurator[C] {
	return BindProperty(c, p, source)
}

func (c *CustomConfigurator[C]) UnbindIntProperty(p *observe.Property[int]) *CustomConfigurator[C] {
	return UnbindProperty(c, p)
}

func (c *CustomConfigurator[C]) BindBidirectionalIntProperty(p, other *observe.Property[int]) *CustomConfigurator[C] {
	return BindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) UnbindBidirectionalIntProperty(p, other *observe.Property[int]) *CustomConfigurator[C] {
	return UnbindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) SetInt64Value(p *observe.Property[int64], v int64) *CustomConfigurator[C] {
	return SetValue(c, p, v)
}

func (c *CustomConfigurator[C]) AddInt64ChangeListener(p *observe.Property[int64], l *observe.ChangeListener[int64]) *CustomConfigurator[C] {
	return AddChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) RemoveInt64ChangeListener(p *observe.Property[int64], l *observe.ChangeListener[int64]) *CustomConfigurator[C] {
	return RemoveChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) BindInt64Property(p *observe.Property[int64], source observe.ObservableValue[int64]) *CustomConfigurator[C] {
	return BindProperty(c, p, source)
}

func (c *CustomConfigurator[C]) UnbindInt64Property(p *observe.Property[int64]) *CustomConfigurator[C] {
	return UnbindProperty(c, p)
}

func (c *CustomConfigurator[C]) BindBidirectionalInt64Property(p, other *observe.Property[int64]) *CustomConfigurator[C] {
	return BindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) UnbindBidirectionalInt64Property(p, other *observe.Property[int64]) *CustomConfigurator[C] {
	return UnbindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) SetFloat32Value(p *observe.Property[float32], v float32) *CustomConfigurator[C] {
	return SetValue(c, p, v)
}

func (c *CustomConfigurator[C]) AddFloat32ChangeListener(p *observe.Property[float32], l *observe.ChangeListener[float32]) *CustomConfigurator[C] {
	return AddChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) RemoveFloat32ChangeListener(p *observe.Property[float32], l *observe.ChangeListener[float32]) *CustomConfigurator[C] {
	return RemoveChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) BindFloat32Property(p *observe.Property[float32], source observe.ObservableValue[float32]) *CustomConfigurator[C] {
	return BindProperty(c, p, source)
}

func (c *CustomConfigurator[C]) UnbindFloat32Property(p *observe.Property[float32]) *CustomConfigurator[C] {
	return UnbindProperty(c, p)
}

func (c *CustomConfigurator[C]) BindBidirectionalFloat32Property(p, other *observe.Property[float32]) *CustomConfigurator[C] {
	return BindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) UnbindBidirectionalFloat32Property(p, other *observe.Property[float32]) *CustomConfigurator[C] {
	return UnbindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) SetFloat64Value(p *observe.Property[float64], v float64) *CustomConfigurator[C] {
	return SetValue(c, p, v)
}

func (c *CustomConfigurator[C]) AddFloat64ChangeListener(p *observe.Property[float64], l *observe.ChangeListener[float64]) *CustomConfigurator[C] {
	return AddChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) RemoveFloat64ChangeListener(p *observe.Property[float64], l *observe.ChangeListener[float64]) *CustomConfigurator[C] {
	return RemoveChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) BindFloat64Property(p *observe.Property[float64], source observe.ObservableValue[float64]) *CustomConfigurator[C] {
	return BindProperty(c, p, source)
}

func (c *CustomConfigurator[C]) UnbindFloat64Property(p *observe.Property[float64]) *CustomConfigurator[C] {
	return UnbindProperty(c, p)
}

func (c *CustomConfigurator[C]) BindBidirectionalFloat64Property(p, other *observe.Property[float64]) *CustomConfigurator[C] {
	return BindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) UnbindBidirectionalFloat64Property(p, other *observe.Property[float64]) *CustomConfigurator[C] {
	return UnbindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) SetStringValue(p *observe.Property[string], v string) *CustomConfigurator[C] {
	return SetValue(c, p, v)
}

func (c *CustomConfigurator[C]) AddStringChangeListener(p *observe.Property[string], l *observe.ChangeListener[string]) *CustomConfigurator[C] {
	return AddChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) RemoveStringChangeListener(p *observe.Property[string], l *observe.ChangeListener[string]) *CustomConfigurator[C] {
	return RemoveChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) BindStringProperty(p *observe.Property[string], source observe.ObservableValue[string]) *CustomConfigurator[C] {
	return BindProperty(c, p, source)
}

func (c *CustomConfigurator[C]) UnbindStringProperty(p *observe.Property[string]) *CustomConfigurator[C] {
	return UnbindProperty(c, p)
}

func (c *CustomConfigurator[C]) BindBidirectionalStringProperty(p, other *observe.Property[string]) *CustomConfigurator[C] {
	return BindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) UnbindBidirectionalStringProperty(p, other *observe.Property[string]) *CustomConfigurator[C] {
	return UnbindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) SetObjectValue(p *observe.Property[any], v any) *CustomConfigurator[C] {
	return SetValue(c, p, v)
}

func (c *CustomConfigurator[C]) AddObjectChangeListener(p *observe.Property[any], l *observe.ChangeListener[any]) *CustomConfigurator[C] {
	return AddChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) RemoveObjectChangeListener(p *observe.Property[any], l *observe.ChangeListener[any]) *CustomConfigurator[C] {
	return RemoveChangeListener(c, p, l)
}

func (c *CustomConfigurator[C]) BindObjectProperty(p *observe.Property[any], source observe.ObservableValue[any]) *CustomConfigurator[C] {
	return BindProperty(c, p, source)
}

func (c *CustomConfigurator[C]) UnbindObjectProperty(p *observe.Property[any]) *CustomConfigurator[C] {
	return UnbindProperty(c, p)
}

func (c *CustomConfigurator[C]) BindBidirectionalObjectProperty(p, other *observe.Property[any]) *CustomConfigurator[C] {
	return BindBidirectionalProperty(c, p, other)
}

func (c *CustomConfigurator[C]) UnbindBidirectionalObjectProperty(p, other *observe.Property[any]) *CustomConfigurator[C] {
	return UnbindBidirectionalProperty(c, p, other)
}
