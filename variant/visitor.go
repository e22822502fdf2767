package variant

import "math"

// Visitor is a read-only inspection interface with one method per tag.
// Implementing it gives exhaustive, compiler-enforced tag handling
// without exposing the value's internal representation; a generic
// encoder is the typical consumer.
//
// Array and object payloads are passed by reference for efficiency and
// must not be mutated by the visitor.
type Visitor interface {
	VisitNull() error
	VisitInt64(int64) error
	VisitUint64(uint64) error
	VisitDouble(float64) error
	VisitBool(bool) error
	VisitString(string) error
	VisitArray(Array) error
	VisitObject(*Object) error
}

// Visit dispatches exactly one Visitor method based on the active tag
// and returns its error. Visit never mutates the value.
func (v Value) Visit(vis Visitor) error {
	switch v.tag {
	case TypeInt64:
		return vis.VisitInt64(int64(v.num))
	case TypeUint64:
		return vis.VisitUint64(v.num)
	case TypeDouble:
		return vis.VisitDouble(math.Float64frombits(v.num))
	case TypeBool:
		return vis.VisitBool(v.num != 0)
	case TypeString:
		return vis.VisitString(v.str)
	case TypeArray:
		return vis.VisitArray(*v.arr)
	case TypeObject:
		return vis.VisitObject(v.obj)
	default:
		return vis.VisitNull()
	}
}
