package variant

import (
	"fmt"
	"math"
	"strconv"
)

// Tag identifies which payload a Value currently holds.
type Tag uint8

const (
	TypeNull Tag = iota
	TypeInt64
	TypeUint64
	TypeDouble
	TypeBool
	TypeString
	TypeArray
	TypeObject
)

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeDouble:
		return "double"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value stores null, int64, uint64, double, bool, string, Array, or
// Object. The zero Value is null.
//
// Scalars live in an inline 8-byte slot and never allocate. String,
// array, and object payloads are heap-backed and owned by the Value.
// The footprint is the same for every tag: 48 bytes on 64-bit
// platforms.
//
// Plain assignment of a Value is a borrow: both copies alias the same
// heap payload. Use Clone for an independently owned deep copy and
// Take to move the payload out, leaving the source null.
type Value struct {
	tag Tag
	num uint64 // int64/uint64 raw bits, float64 bits, bool 0/1
	str string
	arr *Array
	obj *Object
}

// Array is an ordered sequence of Values.
type Array []Value

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() Value {
	return Value{}
}

// Bool creates a boolean value.
func Bool(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{tag: TypeBool, num: n}
}

// Int64 creates a signed integer value.
func Int64(v int64) Value {
	return Value{tag: TypeInt64, num: uint64(v)}
}

// Uint64 creates an unsigned integer value.
func Uint64(v uint64) Value {
	return Value{tag: TypeUint64, num: v}
}

// Double creates a floating-point value.
func Double(v float64) Value {
	return Value{tag: TypeDouble, num: math.Float64bits(v)}
}

// Str creates a string value. The string is assumed to be UTF-8.
func Str(v string) Value {
	return Value{tag: TypeString, str: v}
}

// List creates an array value from the given elements.
func List(elems ...Value) Value {
	a := Array(elems)
	return Value{tag: TypeArray, arr: &a}
}

// Obj creates an object value from the given fields. Duplicate keys
// collapse to a single entry: the last value wins, at the position of
// the first occurrence.
func Obj(fields ...Field) Value {
	return Value{tag: TypeObject, obj: NewObject(fields...)}
}

// FromArray creates an array value that takes ownership of a.
func FromArray(a Array) Value {
	return Value{tag: TypeArray, arr: &a}
}

// FromObject creates an object value that takes ownership of o. A nil
// object becomes an empty one.
func FromObject(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{tag: TypeObject, obj: o}
}

// ============================================================
// Inspection
// ============================================================

// Type returns the active tag.
func (v Value) Type() Tag {
	return v.tag
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.tag == TypeNull }

// IsString reports whether the value is a string.
func (v Value) IsString() bool { return v.tag == TypeString }

// IsBool reports whether the value is a boolean.
func (v Value) IsBool() bool { return v.tag == TypeBool }

// IsInt64 reports whether the value is a signed integer.
func (v Value) IsInt64() bool { return v.tag == TypeInt64 }

// IsUint64 reports whether the value is an unsigned integer.
func (v Value) IsUint64() bool { return v.tag == TypeUint64 }

// IsDouble reports whether the value is a floating-point number.
func (v Value) IsDouble() bool { return v.tag == TypeDouble }

// IsObject reports whether the value is an object.
func (v Value) IsObject() bool { return v.tag == TypeObject }

// IsArray reports whether the value is an array.
func (v Value) IsArray() bool { return v.tag == TypeArray }

// IsNumeric reports whether the value is int64, uint64, double, or
// bool.
func (v Value) IsNumeric() bool {
	switch v.tag {
	case TypeInt64, TypeUint64, TypeDouble, TypeBool:
		return true
	default:
		return false
	}
}

// ============================================================
// Converting readers
// ============================================================

// AsInt64 converts the value to a signed integer. Numeric tags
// convert (cross-width conversion truncates), null reads as 0, and
// strings are parsed as base-10 integers. Arrays and objects yield a
// type-mismatch error.
func (v Value) AsInt64() (int64, error) {
	switch v.tag {
	case TypeNull:
		return 0, nil
	case TypeInt64, TypeUint64:
		return int64(v.num), nil
	case TypeDouble:
		return int64(math.Float64frombits(v.num)), nil
	case TypeBool:
		if v.num != 0 {
			return 1, nil
		}
		return 0, nil
	case TypeString:
		n, err := strconv.ParseInt(v.str, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("variant: parse int64 from %q: %w", v.str, err)
		}
		return n, nil
	default:
		return 0, typeMismatch("int64", v.tag)
	}
}

// AsUint64 converts the value to an unsigned integer, following the
// same rules as AsInt64.
func (v Value) AsUint64() (uint64, error) {
	switch v.tag {
	case TypeNull:
		return 0, nil
	case TypeInt64, TypeUint64:
		return v.num, nil
	case TypeDouble:
		return uint64(math.Float64frombits(v.num)), nil
	case TypeBool:
		if v.num != 0 {
			return 1, nil
		}
		return 0, nil
	case TypeString:
		n, err := strconv.ParseUint(v.str, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("variant: parse uint64 from %q: %w", v.str, err)
		}
		return n, nil
	default:
		return 0, typeMismatch("uint64", v.tag)
	}
}

// AsDouble converts the value to a floating-point number, following
// the same rules as AsInt64.
func (v Value) AsDouble() (float64, error) {
	switch v.tag {
	case TypeNull:
		return 0, nil
	case TypeInt64:
		return float64(int64(v.num)), nil
	case TypeUint64:
		return float64(v.num), nil
	case TypeDouble:
		return math.Float64frombits(v.num), nil
	case TypeBool:
		if v.num != 0 {
			return 1, nil
		}
		return 0, nil
	case TypeString:
		f, err := strconv.ParseFloat(v.str, 64)
		if err != nil {
			return 0, fmt.Errorf("variant: parse double from %q: %w", v.str, err)
		}
		return f, nil
	default:
		return 0, typeMismatch("double", v.tag)
	}
}

// AsBool converts the value to a boolean. Numeric tags convert
// (nonzero is true), null reads as false, and strings are parsed with
// strconv.ParseBool. Arrays and objects yield a type-mismatch error.
func (v Value) AsBool() (bool, error) {
	switch v.tag {
	case TypeNull:
		return false, nil
	case TypeInt64, TypeUint64, TypeBool:
		return v.num != 0, nil
	case TypeDouble:
		return math.Float64frombits(v.num) != 0, nil
	case TypeString:
		b, err := strconv.ParseBool(v.str)
		if err != nil {
			return false, fmt.Errorf("variant: parse bool from %q: %w", v.str, err)
		}
		return b, nil
	default:
		return false, typeMismatch("bool", v.tag)
	}
}

// AsString renders any scalar tag as text: null is "", booleans are
// "true"/"false", doubles use the shortest round-trip form. Arrays and
// objects yield a type-mismatch error.
func (v Value) AsString() (string, error) {
	switch v.tag {
	case TypeNull:
		return "", nil
	case TypeInt64:
		return strconv.FormatInt(int64(v.num), 10), nil
	case TypeUint64:
		return strconv.FormatUint(v.num, 10), nil
	case TypeDouble:
		return strconv.FormatFloat(math.Float64frombits(v.num), 'g', -1, 64), nil
	case TypeBool:
		return strconv.FormatBool(v.num != 0), nil
	case TypeString:
		return v.str, nil
	default:
		return "", typeMismatch("string", v.tag)
	}
}

// ============================================================
// Strict accessors
// ============================================================

// GetString returns the string payload.
//
// Precondition: Type() == TypeString. Violations panic; guard with
// IsString.
func (v Value) GetString() string {
	if v.tag != TypeString {
		panic(fmt.Sprintf("variant: GetString on %s value", v.tag))
	}
	return v.str
}

// GetArray returns the array payload for read access. Any other tag,
// including null, yields a type-mismatch error.
func (v Value) GetArray() (Array, error) {
	if v.tag != TypeArray {
		return nil, typeMismatch("array", v.tag)
	}
	return *v.arr, nil
}

// MutableArray returns the array payload for mutation. A null value is
// converted in place to an empty array, supporting lazy population.
// Any other non-array tag yields a type-mismatch error.
func (v *Value) MutableArray() (*Array, error) {
	switch v.tag {
	case TypeArray:
		return v.arr, nil
	case TypeNull:
		*v = List()
		return v.arr, nil
	default:
		return nil, typeMismatch("array", v.tag)
	}
}

// GetObject returns the object payload for read access. Any other tag,
// including null, yields a type-mismatch error.
func (v Value) GetObject() (*Object, error) {
	if v.tag != TypeObject {
		return nil, typeMismatch("object", v.tag)
	}
	return v.obj, nil
}

// MutableObject returns the object payload for mutation. A null value
// is converted in place to an empty object, supporting lazy
// population. Any other non-object tag yields a type-mismatch error.
func (v *Value) MutableObject() (*Object, error) {
	switch v.tag {
	case TypeObject:
		return v.obj, nil
	case TypeNull:
		*v = Obj()
		return v.obj, nil
	default:
		return nil, typeMismatch("object", v.tag)
	}
}

// Get returns a pointer to the value stored under key. An absent key
// returns a pointer to a fresh null Value; mutating it does not insert
// into the object.
//
// Precondition: Type() == TypeObject. Violations panic; guard with
// IsObject.
func (v Value) Get(key string) *Value {
	if v.tag != TypeObject {
		panic(fmt.Sprintf("variant: Get on %s value", v.tag))
	}
	if f := v.obj.field(key); f != nil {
		return &f.Value
	}
	return &Value{}
}

// At returns the element at position i.
//
// Precondition: Type() == TypeArray and i in range. Violations panic.
func (v Value) At(i int) Value {
	if v.tag != TypeArray {
		panic(fmt.Sprintf("variant: At on %s value", v.tag))
	}
	a := *v.arr
	if i < 0 || i >= len(a) {
		panic(fmt.Sprintf("variant: index %d out of range (len=%d)", i, len(a)))
	}
	return a[i]
}

// Len returns the element count of an array value.
//
// Precondition: Type() == TypeArray. Violations panic; guard with
// IsArray.
func (v Value) Len() int {
	if v.tag != TypeArray {
		panic(fmt.Sprintf("variant: Len on %s value", v.tag))
	}
	return len(*v.arr)
}

// ============================================================
// Ownership
// ============================================================

// Clone returns an independently owned deep copy. Array and object
// payloads are copied recursively; strings are immutable in Go and
// shared safely.
func (v Value) Clone() Value {
	switch v.tag {
	case TypeArray:
		elems := make(Array, len(*v.arr))
		for i, e := range *v.arr {
			elems[i] = e.Clone()
		}
		return Value{tag: TypeArray, arr: &elems}
	case TypeObject:
		return Value{tag: TypeObject, obj: v.obj.Clone()}
	default:
		return v
	}
}

// Take moves the payload out of v and returns it, leaving v null. The
// heap payload is transferred, not copied.
func (v *Value) Take() Value {
	out := *v
	*v = Value{}
	return out
}

// Equal reports whether two values hold the same tag and payload.
// Arrays compare elementwise in order; objects compare field sets by
// key, ignoring insertion order.
func (v Value) Equal(o Value) bool {
	if v.tag != o.tag {
		return false
	}
	switch v.tag {
	case TypeNull:
		return true
	case TypeString:
		return v.str == o.str
	case TypeArray:
		a, b := *v.arr, *o.arr
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		return v.obj.equal(o.obj)
	default:
		return v.num == o.num
	}
}
