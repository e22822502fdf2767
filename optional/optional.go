// Package optional provides a value-semantics nullable wrapper.
package optional

// Optional holds either a T or nothing. The zero Optional is empty.
type Optional[T any] struct {
	value T
	set   bool
}

// New returns an Optional holding v.
func New[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Empty returns an Optional holding nothing.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the contained value.
//
// Precondition: IsSet(). Violations panic; guard with IsSet or use
// GetOr.
func (o Optional[T]) Get() T {
	if !o.set {
		panic("optional: Get on empty Optional")
	}
	return o.value
}

// GetOr returns the contained value, or def when empty.
func (o Optional[T]) GetOr(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// Set stores v, making the Optional present.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.set = true
}

// Clear empties the Optional.
func (o *Optional[T]) Clear() {
	var zero T
	o.value = zero
	o.set = false
}
