// Package variant implements a dynamically-typed universal value.
//
// A Value stores exactly one of: null, int64, uint64, double, bool,
// string, an ordered array of Values, or an insertion-ordered object of
// uniquely-keyed Values. Scalars are stored inline and never allocate;
// string, array, and object payloads are heap-backed and owned by the
// Value holding them.
//
// # Conversion protocol
//
// Application types participate in conversion without modifying the
// Value type. A type that wants to serialize implements Marshaler; a
// type that wants to deserialize implements Unmarshaler on a pointer
// receiver:
//
//	func (p Point) MarshalVariant() (variant.Value, error)
//	func (p *Point) UnmarshalVariant(v variant.Value) error
//
// New builds a Value from any participating type, As converts back:
//
//	v, err := variant.New(Point{1, 2})
//	p, err := variant.As[Point](v)
//
// Built-in adapters cover slices, sets, optionals, and pointers, so a
// []Point is convertible as soon as Point itself is.
//
// # Errors and preconditions
//
// Accessors that can reasonably be asked of the wrong tag (AsString on
// an array, GetArray on a bool) return a *TypeMismatchError matching
// ErrTypeMismatch. Accessors whose contract requires a specific tag
// (GetString, At, Get, Len) treat a wrong tag as a caller bug and
// panic; guard them with the Is* predicates.
package variant
