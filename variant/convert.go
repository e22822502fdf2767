package variant

import (
	"encoding/hex"
	"fmt"
)

// Marshaler is the serialize half of the conversion protocol. A type
// implements it to declare how it becomes a Value.
type Marshaler interface {
	MarshalVariant() (Value, error)
}

// Unmarshaler is the deserialize half of the conversion protocol.
// Implementations use a pointer receiver: conversion starts from the
// zero value of the target type and mutates it in place.
type Unmarshaler interface {
	UnmarshalVariant(v Value) error
}

// New is the generic converting constructor. It dispatches on the type
// of x: the built-in scalars (all signed and unsigned integer widths
// delegate through the 64-bit forms), strings, byte slices (encoded as
// hex text), Values, Arrays, and Objects convert directly; anything
// else must implement Marshaler.
func New(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t.Clone(), nil
	case *Value:
		if t == nil {
			return Null(), nil
		}
		return t.Clone(), nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case int:
		return Int64(int64(t)), nil
	case int8:
		return Int64(int64(t)), nil
	case int16:
		return Int64(int64(t)), nil
	case int32:
		return Int64(int64(t)), nil
	case int64:
		return Int64(t), nil
	case uint:
		return Uint64(uint64(t)), nil
	case uint8:
		return Uint64(uint64(t)), nil
	case uint16:
		return Uint64(uint64(t)), nil
	case uint32:
		return Uint64(uint64(t)), nil
	case uint64:
		return Uint64(t), nil
	case float32:
		return Double(float64(t)), nil
	case float64:
		return Double(t), nil
	case []byte:
		return Str(hex.EncodeToString(t)), nil
	case Array:
		return FromArray(t).Clone(), nil
	case []Value:
		return FromArray(Array(t)).Clone(), nil
	case *Object:
		return FromObject(t.Clone()), nil
	case Marshaler:
		return t.MarshalVariant()
	default:
		return Null(), fmt.Errorf("variant: type %T does not implement Marshaler", x)
	}
}

// FromVariant deserializes v into out, which must be a pointer to a
// built-in scalar, string, byte slice, Value, Array, or Object, or an
// Unmarshaler. Integer widths narrower than 64 bits delegate through
// the 64-bit readers and truncate, consistently with AsInt64.
func FromVariant(v Value, out any) error {
	switch t := out.(type) {
	case *Value:
		*t = v.Clone()
		return nil
	case *bool:
		b, err := v.AsBool()
		if err != nil {
			return err
		}
		*t = b
		return nil
	case *string:
		s, err := v.AsString()
		if err != nil {
			return err
		}
		*t = s
		return nil
	case *int:
		n, err := v.AsInt64()
		if err != nil {
			return err
		}
		*t = int(n)
		return nil
	case *int8:
		n, err := v.AsInt64()
		if err != nil {
			return err
		}
		*t = int8(n)
		return nil
	case *int16:
		n, err := v.AsInt64()
		if err != nil {
			return err
		}
		*t = int16(n)
		return nil
	case *int32:
		n, err := v.AsInt64()
		if err != nil {
			return err
		}
		*t = int32(n)
		return nil
	case *int64:
		n, err := v.AsInt64()
		if err != nil {
			return err
		}
		*t = n
		return nil
	case *uint:
		n, err := v.AsUint64()
		if err != nil {
			return err
		}
		*t = uint(n)
		return nil
	case *uint8:
		n, err := v.AsUint64()
		if err != nil {
			return err
		}
		*t = uint8(n)
		return nil
	case *uint16:
		n, err := v.AsUint64()
		if err != nil {
			return err
		}
		*t = uint16(n)
		return nil
	case *uint32:
		n, err := v.AsUint64()
		if err != nil {
			return err
		}
		*t = uint32(n)
		return nil
	case *uint64:
		n, err := v.AsUint64()
		if err != nil {
			return err
		}
		*t = n
		return nil
	case *float32:
		d, err := v.AsDouble()
		if err != nil {
			return err
		}
		*t = float32(d)
		return nil
	case *float64:
		d, err := v.AsDouble()
		if err != nil {
			return err
		}
		*t = d
		return nil
	case *[]byte:
		s, err := v.AsString()
		if err != nil {
			return err
		}
		b, err := hex.DecodeString(s)
		if err != nil {
			return fmt.Errorf("variant: decode hex from %q: %w", s, err)
		}
		*t = b
		return nil
	case *Array:
		a, err := v.GetArray()
		if err != nil {
			return err
		}
		elems := make(Array, len(a))
		for i := range a {
			elems[i] = a[i].Clone()
		}
		*t = elems
		return nil
	case **Object:
		o, err := v.GetObject()
		if err != nil {
			return err
		}
		*t = o.Clone()
		return nil
	case Unmarshaler:
		return t.UnmarshalVariant(v)
	default:
		return fmt.Errorf("variant: type %T does not implement Unmarshaler", out)
	}
}

// As deserializes v into a fresh zero value of T and returns it. It
// propagates whatever error the underlying Unmarshaler raises, adding
// none of its own. T must be usable from its zero value; that is the
// instance the protocol mutates in place.
func As[T any](v Value) (T, error) {
	var out T
	if err := FromVariant(v, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
