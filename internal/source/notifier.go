package source

import "sync"

// Notifier keeps a list of change observers. The zero value is ready to use.
type Notifier struct {
	mu        sync.Mutex
	next      int
	observers []observer
}

type observer struct {
	id int
	fn func()
}

// Observe registers fn and returns a func that removes it. Calling the
// returned func more than once is harmless.
func (n *Notifier) Observe(fn func()) (cancel func()) {
	n.mu.Lock()
	id := n.next
	n.next++
	n.observers = append(n.observers, observer{id: id, fn: fn})
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { n.remove(id) })
	}
}

// Notify calls every registered observer in registration order.
// Observers may cancel themselves or register others while being notified.
func (n *Notifier) Notify() {
	n.mu.Lock()
	fns := make([]func(), len(n.observers))
	for i, o := range n.observers {
		fns[i] = o.fn
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Observers returns the number of registered observers.
func (n *Notifier) Observers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.observers)
}

func (n *Notifier) remove(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, o := range n.observers {
		if o.id == id {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}
