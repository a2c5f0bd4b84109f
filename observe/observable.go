// Package observe provides the property, binding, and listener engine that
// fluentkit widgets expose and configurators delegate to.
//
// Values are modeled as properties owned by a widget instance. Listeners are
// identity-bearing handles so they can be removed symmetrically; removing a
// handle that was never registered is a no-op.
package observe

// Observable is a value that reports invalidation to registered listeners.
type Observable interface {
	// AddInvalidationListener registers a listener fired whenever the
	// value becomes stale. Panics if the listener is nil.
	AddInvalidationListener(l *InvalidationListener)

	// RemoveInvalidationListener unregisters a listener. Removing a
	// listener that is not registered is a no-op.
	RemoveInvalidationListener(l *InvalidationListener)
}

// ObservableValue is an Observable carrying a typed current value.
type ObservableValue[T any] interface {
	Observable

	// Get returns the current value.
	Get() T

	// AddListener registers a change listener fired with the old and new
	// value on every effective change. Panics if the listener is nil.
	AddListener(l *ChangeListener[T])

	// RemoveListener unregisters a change listener. Removing a listener
	// that is not registered is a no-op.
	RemoveListener(l *ChangeListener[T])
}

// Handle is the type-erased view of a property used for ownership checks.
type Handle interface {
	// Owner returns the object the property belongs to.
	Owner() any

	// Name returns the property's name within its owner.
	Name() string
}

// InvalidationListener is an identity-bearing invalidation callback.
// Construct with OnInvalidated; the pointer is the registration identity.
type InvalidationListener struct {
	fn func(Observable)
}

// OnInvalidated wraps a callback as a removable invalidation listener.
func OnInvalidated(fn func(Observable)) *InvalidationListener {
	return &InvalidationListener{fn: fn}
}

// ChangeListener is an identity-bearing change callback.
// Construct with OnChange; the pointer is the registration identity.
type ChangeListener[T any] struct {
	fn func(value ObservableValue[T], oldValue, newValue T)
}

// OnChange wraps a callback as a removable change listener.
func OnChange[T any](fn func(value ObservableValue[T], oldValue, newValue T)) *ChangeListener[T] {
	return &ChangeListener[T]{fn: fn}
}
