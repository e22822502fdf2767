package codec

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/fxamacker/cbor/v2"

	"github.com/Neumenon/variant/variant"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical data always
// produces identical bytes.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured to accept standard CBOR with
// string-keyed maps decoding to map[string]any.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Variant objects are always string-keyed. When decoding into
		// any-typed targets the CBOR default map type allows arbitrary
		// keys; pinning map[string]any rejects non-string keys up
		// front instead of failing during conversion.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// EncodeCBOR renders v as deterministic CBOR. Object fields are sorted
// by key on the wire, so insertion order does not survive a CBOR round
// trip; content does.
func EncodeCBOR(v variant.Value) ([]byte, error) {
	x, err := toPlain(v)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(x)
}

// DecodeCBOR parses CBOR into a value. Map fields decode in sorted key
// order.
func DecodeCBOR(data []byte) (variant.Value, error) {
	var x any
	if err := decMode.Unmarshal(data, &x); err != nil {
		return variant.Null(), fmt.Errorf("codec: decode CBOR: %w", err)
	}
	return fromPlain(x)
}

// toPlain converts a value to the any-tree shape the CBOR encoder
// consumes. Objects become Go maps; deterministic encoding restores a
// stable (sorted) field order.
func toPlain(v variant.Value) (any, error) {
	switch v.Type() {
	case variant.TypeNull:
		return nil, nil
	case variant.TypeInt64:
		n, err := v.AsInt64()
		return n, err
	case variant.TypeUint64:
		n, err := v.AsUint64()
		return n, err
	case variant.TypeDouble:
		d, err := v.AsDouble()
		return d, err
	case variant.TypeBool:
		b, err := v.AsBool()
		return b, err
	case variant.TypeString:
		return v.GetString(), nil
	case variant.TypeArray:
		a, err := v.GetArray()
		if err != nil {
			return nil, err
		}
		out := make([]any, len(a))
		for i := range a {
			out[i], err = toPlain(a[i])
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
		}
		return out, nil
	case variant.TypeObject:
		o, err := v.GetObject()
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, o.Len())
		for _, f := range o.Fields() {
			out[f.Key], err = toPlain(f.Value)
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", f.Key, err)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("codec: unknown tag %s", v.Type())
	}
}

// fromPlain converts a decoded any-tree back to a value. Map keys are
// sorted so the result is deterministic regardless of Go map order.
func fromPlain(x any) (variant.Value, error) {
	switch t := x.(type) {
	case nil:
		return variant.Null(), nil
	case bool:
		return variant.Bool(t), nil
	case int64:
		return variant.Int64(t), nil
	case uint64:
		// CBOR does not distinguish signedness; non-negative integers
		// arrive as uint64. Prefer the int64 tag when the value fits,
		// mirroring the JSON decoder, so small integers round trip
		// with a stable tag.
		if t <= math.MaxInt64 {
			return variant.Int64(int64(t)), nil
		}
		return variant.Uint64(t), nil
	case float64:
		return variant.Double(t), nil
	case float32:
		return variant.Double(float64(t)), nil
	case string:
		return variant.Str(t), nil
	case []byte:
		return variant.New(t)
	case []any:
		elems := make(variant.Array, len(t))
		for i := range t {
			e, err := fromPlain(t[i])
			if err != nil {
				return variant.Null(), fmt.Errorf("array[%d]: %w", i, err)
			}
			elems[i] = e
		}
		return variant.FromArray(elems), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := variant.NewObject()
		for _, k := range keys {
			e, err := fromPlain(t[k])
			if err != nil {
				return variant.Null(), fmt.Errorf("object[%q]: %w", k, err)
			}
			obj.Set(k, e)
		}
		return variant.FromObject(obj), nil
	default:
		return variant.Null(), fmt.Errorf("codec: unsupported CBOR type %T", x)
	}
}
