package variant

import (
	"errors"
	"math"
	"testing"
)

// ============================================================
// Constructors and predicates
// ============================================================

func TestTagPredicates_ExclusiveAndExhaustive(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		tag  Tag
	}{
		{"null", Null(), TypeNull},
		{"int64", Int64(-5), TypeInt64},
		{"uint64", Uint64(5), TypeUint64},
		{"double", Double(1.5), TypeDouble},
		{"bool", Bool(true), TypeBool},
		{"string", Str("x"), TypeString},
		{"array", List(Int64(1)), TypeArray},
		{"object", Obj(Field{Key: "k", Value: Int64(1)}), TypeObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Type() != tt.tag {
				t.Fatalf("Type() = %s, want %s", tt.v.Type(), tt.tag)
			}
			preds := map[Tag]bool{
				TypeNull:   tt.v.IsNull(),
				TypeInt64:  tt.v.IsInt64(),
				TypeUint64: tt.v.IsUint64(),
				TypeDouble: tt.v.IsDouble(),
				TypeBool:   tt.v.IsBool(),
				TypeString: tt.v.IsString(),
				TypeArray:  tt.v.IsArray(),
				TypeObject: tt.v.IsObject(),
			}
			for tag, got := range preds {
				want := tag == tt.tag
				if got != want {
					t.Errorf("predicate for %s = %v, want %v", tag, got, want)
				}
			}
			wantNumeric := tt.tag == TypeInt64 || tt.tag == TypeUint64 ||
				tt.tag == TypeDouble || tt.tag == TypeBool
			if tt.v.IsNumeric() != wantNumeric {
				t.Errorf("IsNumeric() = %v, want %v", tt.v.IsNumeric(), wantNumeric)
			}
		})
	}
}

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	if !v.IsNull() {
		t.Fatalf("zero Value has tag %s, want null", v.Type())
	}
}

// ============================================================
// Converting readers
// ============================================================

func TestNumericConversions(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		i64  int64
		u64  uint64
		f64  float64
		b    bool
	}{
		{"int64", Int64(-3), -3, uint64(0xfffffffffffffffd), -3, true},
		{"uint64", Uint64(7), 7, 7, 7, true},
		{"double", Double(2.75), 2, 2, 2.75, true},
		{"bool true", Bool(true), 1, 1, 1, true},
		{"bool false", Bool(false), 0, 0, 0, false},
		{"null", Null(), 0, 0, 0, false},
		{"numeric string", Str("42"), 42, 42, 42, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name == "numeric string" {
				// ParseBool("42") fails; only check the numeric readers.
				if _, err := tt.v.AsBool(); err == nil {
					t.Errorf("AsBool(%q) succeeded, want parse error", "42")
				}
			} else {
				b, err := tt.v.AsBool()
				if err != nil || b != tt.b {
					t.Errorf("AsBool() = %v, %v, want %v", b, err, tt.b)
				}
			}
			i, err := tt.v.AsInt64()
			if err != nil || i != tt.i64 {
				t.Errorf("AsInt64() = %v, %v, want %v", i, err, tt.i64)
			}
			u, err := tt.v.AsUint64()
			if err != nil || u != tt.u64 {
				t.Errorf("AsUint64() = %v, %v, want %v", u, err, tt.u64)
			}
			f, err := tt.v.AsDouble()
			if err != nil || f != tt.f64 {
				t.Errorf("AsDouble() = %v, %v, want %v", f, err, tt.f64)
			}
		})
	}
}

func TestNumericConversions_Extremes(t *testing.T) {
	if got, err := Int64(math.MinInt64).AsInt64(); err != nil || got != math.MinInt64 {
		t.Errorf("AsInt64(min) = %v, %v", got, err)
	}
	if got, err := Uint64(math.MaxUint64).AsUint64(); err != nil || got != math.MaxUint64 {
		t.Errorf("AsUint64(max) = %v, %v", got, err)
	}
	if got, err := Double(math.MaxFloat64).AsDouble(); err != nil || got != math.MaxFloat64 {
		t.Errorf("AsDouble(max) = %v, %v", got, err)
	}
}

func TestConversions_TypeMismatch(t *testing.T) {
	arr := List(Int64(1))
	obj := Obj(Field{Key: "k", Value: Int64(1)})

	for _, v := range []Value{arr, obj} {
		if _, err := v.AsInt64(); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("AsInt64 on %s: err = %v, want ErrTypeMismatch", v.Type(), err)
		}
		if _, err := v.AsString(); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("AsString on %s: err = %v, want ErrTypeMismatch", v.Type(), err)
		}
		var tme *TypeMismatchError
		_, err := v.AsString()
		if !errors.As(err, &tme) {
			t.Errorf("AsString on %s: err = %T, want *TypeMismatchError", v.Type(), err)
		}
	}
}

func TestAsString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), ""},
		{"int64", Int64(-12), "-12"},
		{"uint64", Uint64(12), "12"},
		{"double", Double(1.5), "1.5"},
		{"bool", Bool(true), "true"},
		{"string", Str("héllo"), "héllo"},
		{"empty string", Str(""), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.v.AsString()
			if err != nil {
				t.Fatalf("AsString() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AsString() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ============================================================
// Strict accessors
// ============================================================

func TestGetString_Precondition(t *testing.T) {
	if got := Str("abc").GetString(); got != "abc" {
		t.Fatalf("GetString() = %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("GetString on int64 did not panic")
		}
	}()
	Int64(1).GetString()
}

func TestGetArray(t *testing.T) {
	v := List(Int64(1), Int64(2))
	a, err := v.GetArray()
	if err != nil {
		t.Fatalf("GetArray() error: %v", err)
	}
	if len(a) != 2 {
		t.Fatalf("len = %d, want 2", len(a))
	}

	if _, err := Null().GetArray(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetArray on null: err = %v, want ErrTypeMismatch", err)
	}
	if _, err := Str("x").GetArray(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetArray on string: err = %v, want ErrTypeMismatch", err)
	}
}

func TestMutableArray_LazyNull(t *testing.T) {
	v := Null()
	a, err := v.MutableArray()
	if err != nil {
		t.Fatalf("MutableArray() error: %v", err)
	}
	if !v.IsArray() {
		t.Fatalf("value did not convert to array, tag = %s", v.Type())
	}
	*a = append(*a, Int64(9))
	if v.Len() != 1 {
		t.Fatalf("Len() = %d after append through MutableArray", v.Len())
	}

	bad := Str("x")
	if _, err := bad.MutableArray(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("MutableArray on string: err = %v, want ErrTypeMismatch", err)
	}
}

func TestMutableObject_LazyNull(t *testing.T) {
	v := Null()
	o, err := v.MutableObject()
	if err != nil {
		t.Fatalf("MutableObject() error: %v", err)
	}
	o.Set("k", Int64(1))
	if !v.IsObject() {
		t.Fatalf("value did not convert to object, tag = %s", v.Type())
	}
	if got := v.Get("k"); !got.Equal(Int64(1)) {
		t.Fatalf("Get(k) after lazy init = %v", got.Type())
	}

	bad := Bool(true)
	if _, err := bad.MutableObject(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("MutableObject on bool: err = %v, want ErrTypeMismatch", err)
	}
}

func TestGet_AbsentKeyIsNullAndDoesNotInsert(t *testing.T) {
	v := Obj(Field{Key: "a", Value: Int64(1)})
	got := v.Get("missing")
	if !got.IsNull() {
		t.Fatalf("Get(missing) tag = %s, want null", got.Type())
	}
	*got = Int64(99)
	o, _ := v.GetObject()
	if o.Len() != 1 {
		t.Fatalf("mutation through absent-key pointer inserted a field")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("Get on array did not panic")
		}
	}()
	List().Get("k")
}

func TestAtAndLen_Preconditions(t *testing.T) {
	v := List(Int64(3), Int64(1), Int64(2))
	if v.Len() != 3 {
		t.Fatalf("Len() = %d", v.Len())
	}
	if got := v.At(1); !got.Equal(Int64(1)) {
		t.Fatalf("At(1) wrong element")
	}

	t.Run("out of range", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("At(3) did not panic")
			}
		}()
		v.At(3)
	})
	t.Run("len on non-array", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("Len on string did not panic")
			}
		}()
		Str("x").Len()
	})
}

// ============================================================
// Ownership
// ============================================================

func TestClone_DeepCopies(t *testing.T) {
	inner := List(Int64(1))
	v := Obj(Field{Key: "a", Value: inner})
	cp := v.Clone()

	o, _ := v.GetObject()
	arr, _ := o.field("a").Value.MutableArray()
	*arr = append(*arr, Int64(2))

	co, _ := cp.GetObject()
	got, _ := co.Get("a")
	if got.Len() != 1 {
		t.Fatalf("clone observed mutation of original, len = %d", got.Len())
	}
}

func TestTake_MovesPayloadWithoutCopy(t *testing.T) {
	v := List(Int64(1), Int64(2))
	a1, _ := v.GetArray()
	before := &a1[0]

	moved := v.Take()
	if !v.IsNull() {
		t.Fatalf("source tag after Take = %s, want null", v.Type())
	}
	a2, err := moved.GetArray()
	if err != nil || len(a2) != 2 {
		t.Fatalf("destination payload wrong: %v, len %d", err, len(a2))
	}
	if &a2[0] != before {
		t.Fatal("Take copied the heap payload instead of moving it")
	}
}

func TestTake_String(t *testing.T) {
	v := Str("payload")
	moved := v.Take()
	if !v.IsNull() {
		t.Fatalf("source tag after Take = %s, want null", v.Type())
	}
	if moved.GetString() != "payload" {
		t.Fatalf("moved payload = %q", moved.GetString())
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same ints", Int64(1), Int64(1), true},
		{"int vs uint tag", Int64(1), Uint64(1), false},
		{"arrays ordered", List(Int64(1), Int64(2)), List(Int64(2), Int64(1)), false},
		{"objects ignore order",
			Obj(Field{"a", Int64(1)}, Field{"b", Int64(2)}),
			Obj(Field{"b", Int64(2)}, Field{"a", Int64(1)}),
			true},
		{"nulls", Null(), Null(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}
