package variant

import (
	"fmt"

	"github.com/Neumenon/variant/optional"
)

// Generic adapters built purely on the conversion protocol. They
// require only that the element type itself participates, so a []T,
// map[T]struct{}, optional.Optional[T], or *T converts as soon as T
// does.

// MarshalSlice serializes s to an array value, in order.
func MarshalSlice[T any](s []T) (Value, error) {
	elems := make(Array, len(s))
	for i := range s {
		v, err := New(s[i])
		if err != nil {
			return Null(), fmt.Errorf("array[%d]: %w", i, err)
		}
		elems[i] = v
	}
	return FromArray(elems), nil
}

// UnmarshalSlice deserializes an array value into *out, preserving
// order. A non-array source is a type-mismatch error.
func UnmarshalSlice[T any](v Value, out *[]T) error {
	elems, err := v.GetArray()
	if err != nil {
		return err
	}
	res := make([]T, 0, len(elems))
	for i := range elems {
		e, err := As[T](elems[i])
		if err != nil {
			return fmt.Errorf("array[%d]: %w", i, err)
		}
		res = append(res, e)
	}
	*out = res
	return nil
}

// MarshalSet serializes s to an array value in map iteration order.
// The encoded order is not semantically meaningful; anything needing a
// stable form must canonicalize downstream.
func MarshalSet[T comparable](s map[T]struct{}) (Value, error) {
	elems := make(Array, 0, len(s))
	for k := range s {
		v, err := New(k)
		if err != nil {
			return Null(), fmt.Errorf("set element: %w", err)
		}
		elems = append(elems, v)
	}
	return FromArray(elems), nil
}

// UnmarshalSet deserializes an array value into *out. Encoded
// duplicates collapse per map key uniqueness. A non-array source is a
// type-mismatch error.
func UnmarshalSet[T comparable](v Value, out *map[T]struct{}) error {
	elems, err := v.GetArray()
	if err != nil {
		return err
	}
	res := make(map[T]struct{}, len(elems))
	for i := range elems {
		e, err := As[T](elems[i])
		if err != nil {
			return fmt.Errorf("array[%d]: %w", i, err)
		}
		res[e] = struct{}{}
	}
	*out = res
	return nil
}

// MarshalOptional serializes an absent optional to null and a present
// one exactly as its contained value.
func MarshalOptional[T any](o optional.Optional[T]) (Value, error) {
	if !o.IsSet() {
		return Null(), nil
	}
	return New(o.Get())
}

// UnmarshalOptional deserializes null to an absent optional and any
// other value to a present optional holding the converted T.
func UnmarshalOptional[T any](v Value, out *optional.Optional[T]) error {
	if v.IsNull() {
		out.Clear()
		return nil
	}
	t, err := As[T](v)
	if err != nil {
		return err
	}
	out.Set(t)
	return nil
}

// MarshalPtr serializes a nil pointer to null and a non-nil pointer by
// converting the pointee, not the pointer identity.
func MarshalPtr[T any](p *T) (Value, error) {
	if p == nil {
		return Null(), nil
	}
	if m, ok := any(p).(Marshaler); ok {
		return m.MarshalVariant()
	}
	return New(*p)
}

// UnmarshalPtr deserializes null to a nil pointer. For any other value
// it converts into the existing pointee in place when *out is non-nil,
// preserving sharing topology already established by the caller, and
// otherwise allocates a fresh T. Sharing topology itself is not
// recoverable from the encoded form; only the pointee's value round
// trips.
func UnmarshalPtr[T any](v Value, out **T) error {
	if v.IsNull() {
		*out = nil
		return nil
	}
	if *out != nil {
		return FromVariant(v, *out)
	}
	p := new(T)
	if err := FromVariant(v, p); err != nil {
		return err
	}
	*out = p
	return nil
}
