package variant

// Field is a single key/value entry in an Object.
type Field struct {
	Key   string
	Value Value
}

// Object is an ordered collection of uniquely-keyed fields. Insertion
// order is preserved and observable. Setting an existing key replaces
// its value in place, keeping the key's original position.
type Object struct {
	fields []Field
}

// NewObject creates an object from the given fields. Duplicate keys
// collapse: the last value wins, at the position of the first
// occurrence.
func NewObject(fields ...Field) *Object {
	o := &Object{fields: make([]Field, 0, len(fields))}
	for _, f := range fields {
		o.Set(f.Key, f.Value)
	}
	return o
}

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

// Get returns the value stored under key and whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	if f := o.field(key); f != nil {
		return f.Value, true
	}
	return Value{}, false
}

// Set stores v under key. An existing key keeps its position; a new
// key is appended. Returns o for chaining.
func (o *Object) Set(key string, v Value) *Object {
	if f := o.field(key); f != nil {
		f.Value = v
		return o
	}
	o.fields = append(o.fields, Field{Key: key, Value: v})
	return o
}

// Delete removes key and reports whether it was present. Remaining
// fields keep their relative order.
func (o *Object) Delete(key string) bool {
	for i := range o.fields {
		if o.fields[i].Key == key {
			o.fields = append(o.fields[:i], o.fields[i+1:]...)
			return true
		}
	}
	return false
}

// Keys returns the field keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.fields))
	for i, f := range o.fields {
		keys[i] = f.Key
	}
	return keys
}

// Fields returns the fields in insertion order. The returned slice is
// the object's backing storage; callers must treat it as read-only.
func (o *Object) Fields() []Field {
	if o == nil {
		return nil
	}
	return o.fields
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	if o == nil {
		return NewObject()
	}
	fields := make([]Field, len(o.fields))
	for i, f := range o.fields {
		fields[i] = Field{Key: f.Key, Value: f.Value.Clone()}
	}
	return &Object{fields: fields}
}

func (o *Object) field(key string) *Field {
	if o == nil {
		return nil
	}
	for i := range o.fields {
		if o.fields[i].Key == key {
			return &o.fields[i]
		}
	}
	return nil
}

func (o *Object) equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for _, f := range o.Fields() {
		ov, ok := other.Get(f.Key)
		if !ok || !f.Value.Equal(ov) {
			return false
		}
	}
	return true
}
