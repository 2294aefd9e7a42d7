package domain

import "fmt"

// UniqueList is an ordered sequence in which no two elements share an identity.
// Identity is decided by the same function given to NewUniqueList; removal and
// replacement locate their target with the stricter equal function.
//
// Every mutation re-checks the invariant and, on success, synchronously
// notifies subscribers. A UniqueList is not safe for concurrent use.
type UniqueList[T any] struct {
	items     []T
	same      func(a, b T) bool
	equal     func(a, b T) bool
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func()
}

// NewUniqueList creates an empty list using same for identity and equal for
// full equality.
func NewUniqueList[T any](same, equal func(a, b T) bool) *UniqueList[T] {
	return &UniqueList[T]{same: same, equal: equal}
}

// Contains reports whether an element with the same identity as item exists.
func (l *UniqueList[T]) Contains(item T) bool {
	for _, existing := range l.items {
		if l.same(existing, item) {
			return true
		}
	}
	return false
}

// Add appends item. It fails with ErrDuplicate if an identity-equal element exists.
func (l *UniqueList[T]) Add(item T) error {
	if l.Contains(item) {
		return ErrDuplicate
	}
	l.items = append(l.items, item)
	l.notify()
	return nil
}

// Set replaces target with edited.
// It fails with ErrElementNotFound if target is absent, or ErrDuplicate if
// edited has the identity of some other element.
func (l *UniqueList[T]) Set(target, edited T) error {
	idx := l.indexOf(target)
	if idx < 0 {
		return ErrElementNotFound
	}
	if !l.same(target, edited) && l.Contains(edited) {
		return ErrDuplicate
	}
	l.items[idx] = edited
	l.notify()
	return nil
}

// Remove deletes item. It fails with ErrElementNotFound if item is absent.
func (l *UniqueList[T]) Remove(item T) error {
	idx := l.indexOf(item)
	if idx < 0 {
		return ErrElementNotFound
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	l.notify()
	return nil
}

// RemoveIf deletes every element matching pred and returns how many were removed.
func (l *UniqueList[T]) RemoveIf(pred func(T) bool) int {
	kept := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if !pred(item) {
			kept = append(kept, item)
		}
	}
	removed := len(l.items) - len(kept)
	if removed > 0 {
		l.items = kept
		l.notify()
	}
	return removed
}

// SetAll replaces the contents with items.
// If items contains identity duplicates the list is left untouched and
// ErrDuplicate is returned.
func (l *UniqueList[T]) SetAll(items []T) error {
	if err := l.CheckUnique(items); err != nil {
		return err
	}
	l.items = append(make([]T, 0, len(items)), items...)
	l.notify()
	return nil
}

// CheckUnique returns ErrDuplicate if items contains two identity-equal elements.
func (l *UniqueList[T]) CheckUnique(items []T) error {
	for i := 0; i < len(items)-1; i++ {
		for j := i + 1; j < len(items); j++ {
			if l.same(items[i], items[j]) {
				return fmt.Errorf("elements %d and %d: %w", i, j, ErrDuplicate)
			}
		}
	}
	return nil
}

// Items returns a copy of the elements in order.
func (l *UniqueList[T]) Items() []T {
	return append(make([]T, 0, len(l.items)), l.items...)
}

// Len returns the number of elements.
func (l *UniqueList[T]) Len() int {
	return len(l.items)
}

// Equal reports whether both lists hold equal elements in the same order.
func (l *UniqueList[T]) Equal(other *UniqueList[T]) bool {
	if other == nil || len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if !l.equal(l.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

// Subscribe registers fn to be called after every successful mutation.
// The returned function removes the subscription.
func (l *UniqueList[T]) Subscribe(fn func()) func() {
	id := l.nextID
	l.nextID++
	l.listeners = append(l.listeners, listener{id: id, fn: fn})
	return func() {
		for i, ln := range l.listeners {
			if ln.id == id {
				l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
				return
			}
		}
	}
}

func (l *UniqueList[T]) notify() {
	for _, ln := range append([]listener(nil), l.listeners...) {
		ln.fn()
	}
}

func (l *UniqueList[T]) indexOf(item T) int {
	for i, existing := range l.items {
		if l.equal(existing, item) {
			return i
		}
	}
	return -1
}
