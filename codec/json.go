package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/Neumenon/variant/variant"
)

// JSONDecodeOptions configures DecodeJSONWithOptions.
type JSONDecodeOptions struct {
	// AllowComments strips // and /* */ comments and trailing commas
	// before decoding.
	AllowComments bool
}

// EncodeJSON renders v as JSON. Object fields are emitted in insertion
// order. NaN and infinities have no JSON representation and are
// rejected.
func EncodeJSON(v variant.Value) ([]byte, error) {
	enc := &jsonEncoder{}
	if err := v.Visit(enc); err != nil {
		return nil, err
	}
	return enc.buf.Bytes(), nil
}

// jsonEncoder writes JSON text while visiting a value.
type jsonEncoder struct {
	buf bytes.Buffer
}

func (e *jsonEncoder) VisitNull() error {
	e.buf.WriteString("null")
	return nil
}

func (e *jsonEncoder) VisitInt64(n int64) error {
	e.buf.WriteString(strconv.FormatInt(n, 10))
	return nil
}

func (e *jsonEncoder) VisitUint64(n uint64) error {
	e.buf.WriteString(strconv.FormatUint(n, 10))
	return nil
}

func (e *jsonEncoder) VisitDouble(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("codec: %v has no JSON representation", f)
	}
	e.buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}

func (e *jsonEncoder) VisitBool(b bool) error {
	e.buf.WriteString(strconv.FormatBool(b))
	return nil
}

func (e *jsonEncoder) VisitString(s string) error {
	return e.writeString(s)
}

func (e *jsonEncoder) VisitArray(a variant.Array) error {
	e.buf.WriteByte('[')
	for i := range a {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if err := a[i].Visit(e); err != nil {
			return fmt.Errorf("array[%d]: %w", i, err)
		}
	}
	e.buf.WriteByte(']')
	return nil
}

func (e *jsonEncoder) VisitObject(o *variant.Object) error {
	e.buf.WriteByte('{')
	for i, f := range o.Fields() {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if err := e.writeString(f.Key); err != nil {
			return err
		}
		e.buf.WriteByte(':')
		if err := f.Value.Visit(e); err != nil {
			return fmt.Errorf("object[%q]: %w", f.Key, err)
		}
	}
	e.buf.WriteByte('}')
	return nil
}

func (e *jsonEncoder) writeString(s string) error {
	quoted, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("codec: encode string: %w", err)
	}
	e.buf.Write(quoted)
	return nil
}

// DecodeJSON parses JSON into a value with default options.
func DecodeJSON(data []byte) (variant.Value, error) {
	return DecodeJSONWithOptions(data, JSONDecodeOptions{})
}

// DecodeJSONWithOptions parses JSON into a value. Object field order
// follows the document. Integral numbers that fit int64 decode to the
// int64 tag, larger non-negative integers to uint64, everything else
// to double.
func DecodeJSONWithOptions(data []byte, opts JSONDecodeOptions) (variant.Value, error) {
	if opts.AllowComments {
		data = jsonc.ToJSON(data)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return variant.Null(), err
	}
	if dec.More() {
		return variant.Null(), fmt.Errorf("codec: trailing data after JSON value")
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (variant.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return variant.Null(), fmt.Errorf("codec: decode JSON: %w", err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return decodeJSONArray(dec)
		case '{':
			return decodeJSONObject(dec)
		default:
			return variant.Null(), fmt.Errorf("codec: unexpected %q", t)
		}
	case bool:
		return variant.Bool(t), nil
	case string:
		return variant.Str(t), nil
	case json.Number:
		return decodeJSONNumber(t)
	case nil:
		return variant.Null(), nil
	default:
		return variant.Null(), fmt.Errorf("codec: unexpected JSON token %v", tok)
	}
}

func decodeJSONArray(dec *json.Decoder) (variant.Value, error) {
	elems := variant.Array{}
	for dec.More() {
		e, err := decodeJSONValue(dec)
		if err != nil {
			return variant.Null(), fmt.Errorf("array[%d]: %w", len(elems), err)
		}
		elems = append(elems, e)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return variant.Null(), fmt.Errorf("codec: decode JSON: %w", err)
	}
	return variant.FromArray(elems), nil
}

func decodeJSONObject(dec *json.Decoder) (variant.Value, error) {
	obj := variant.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return variant.Null(), fmt.Errorf("codec: decode JSON: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return variant.Null(), fmt.Errorf("codec: object key is %v, not a string", keyTok)
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return variant.Null(), fmt.Errorf("object[%q]: %w", key, err)
		}
		obj.Set(key, val)
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return variant.Null(), fmt.Errorf("codec: decode JSON: %w", err)
	}
	return variant.FromObject(obj), nil
}

func decodeJSONNumber(n json.Number) (variant.Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return variant.Int64(i), nil
		}
		if !strings.HasPrefix(s, "-") {
			if u, err := strconv.ParseUint(s, 10, 64); err == nil {
				return variant.Uint64(u), nil
			}
		}
	}
	f, err := n.Float64()
	if err != nil {
		return variant.Null(), fmt.Errorf("codec: parse number %q: %w", s, err)
	}
	return variant.Double(f), nil
}
