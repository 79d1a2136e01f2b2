// Package observe provides a small synchronous observer registry used by the
// stores to announce changes to the data they own.
package observe

import (
	"slices"
	"sync"
)

type observer[T any] struct {
	id int
	fn func(T)
}

// Registry holds callbacks that are invoked, in registration order, each time
// Notify is called. The zero value is ready to use.
type Registry[T any] struct {
	mu        sync.Mutex
	nextID    int
	observers []observer[T]
}

// Subscribe registers fn and returns a function that removes it again.
// Calling cancel more than once is harmless.
func (r *Registry[T]) Subscribe(fn func(T)) (cancel func()) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.observers = append(r.observers, observer[T]{id: id, fn: fn})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.observers = slices.DeleteFunc(r.observers, func(o observer[T]) bool {
				return o.id == id
			})
		})
	}
}

// Notify calls every registered observer with v. The registry lock is not held
// while observers run, so an observer may subscribe or cancel from inside its callback.
func (r *Registry[T]) Notify(v T) {
	r.mu.Lock()
	current := slices.Clone(r.observers)
	r.mu.Unlock()

	for _, o := range current {
		o.fn(v)
	}
}

// Len returns the number of registered observers.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.observers)
}
