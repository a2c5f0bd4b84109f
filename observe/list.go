package observe

import (
	"sync"

	errors "github.com/agilira/go-errors"
)

// List is an observable, set-like slice owned by a widget. It backs the
// style-class and stylesheet lists. Mutations fire invalidation listeners;
// element order follows insertion order.
type List[T comparable] struct {
	mu    sync.RWMutex
	owner any
	name  string
	items []T

	invListeners []*InvalidationListener
}

// NewList creates an empty observable list with the given owner and name.
func NewList[T comparable](owner any, name string) *List[T] {
	return &List[T]{owner: owner, name: name}
}

var _ Observable = (*List[string])(nil)
var _ Handle = (*List[string])(nil)

// Owner returns the object this list belongs to.
func (l *List[T]) Owner() any {
	return l.owner
}

// Name returns the list's name within its owner.
func (l *List[T]) Name() string {
	return l.name
}

// Add appends an item. Adding an item already present is a no-op.
func (l *List[T]) Add(item T) {
	l.mu.Lock()
	for _, cand := range l.items {
		if cand == item {
			l.mu.Unlock()
			return
		}
	}
	l.items = append(l.items, item)
	l.mu.Unlock()
	l.invalidate()
}

// Remove deletes an item. Removing an item not present is a no-op.
func (l *List[T]) Remove(item T) {
	l.mu.Lock()
	found := false
	for i, cand := range l.items {
		if cand == item {
			l.items = append(l.items[:i], l.items[i+1:]...)
			found = true
			break
		}
	}
	l.mu.Unlock()
	if found {
		l.invalidate()
	}
}

// Contains reports whether the item is present.
func (l *List[T]) Contains(item T) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, cand := range l.items {
		if cand == item {
			return true
		}
	}
	return false
}

// Items returns a copy of the list contents.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Clear removes all items.
func (l *List[T]) Clear() {
	l.mu.Lock()
	empty := len(l.items) == 0
	l.items = l.items[:0]
	l.mu.Unlock()
	if !empty {
		l.invalidate()
	}
}

// SetAll replaces the contents with the given items.
func (l *List[T]) SetAll(items ...T) {
	l.mu.Lock()
	l.items = l.items[:0]
	for _, item := range items {
		dup := false
		for _, cand := range l.items {
			if cand == item {
				dup = true
				break
			}
		}
		if !dup {
			l.items = append(l.items, item)
		}
	}
	l.mu.Unlock()
	l.invalidate()
}

// AddInvalidationListener registers an invalidation listener. Panics if il is nil.
func (l *List[T]) AddInvalidationListener(il *InvalidationListener) {
	if il == nil {
		panic(errors.New(ErrCodeNilListener, "List.AddInvalidationListener: "+l.name+": listener must not be nil"))
	}
	l.mu.Lock()
	l.invListeners = append(l.invListeners, il)
	l.mu.Unlock()
}

// RemoveInvalidationListener unregisters an invalidation listener.
// No-op if not registered.
func (l *List[T]) RemoveInvalidationListener(il *InvalidationListener) {
	l.mu.Lock()
	for i, cand := range l.invListeners {
		if cand == il {
			l.invListeners = append(l.invListeners[:i], l.invListeners[i+1:]...)
			break
		}
	}
	l.mu.Unlock()
}

func (l *List[T]) invalidate() {
	l.mu.RLock()
	listeners := make([]*InvalidationListener, len(l.invListeners))
	copy(listeners, l.invListeners)
	l.mu.RUnlock()

	for _, il := range listeners {
		il.fn(l)
	}
}
