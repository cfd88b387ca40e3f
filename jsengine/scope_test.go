package jsengine

import (
	"math"
	"testing"

	denocore "github.com/nathanwhit/deno-core"
)

func eval(t *testing.T, s *Scope, src string) denocore.Value {
	t.Helper()
	v, err := s.Eval(src)
	if err != nil {
		t.Fatalf("eval %q: %v", src, err)
	}
	return v
}

func TestScope_Allocators(t *testing.T) {
	s := NewScope()

	if v, ok := s.NewInteger(-42).Int32(); !ok || v != -42 {
		t.Errorf("NewInteger(-42).Int32() = %d, %v", v, ok)
	}
	if v, ok := s.NewNumber(2.75).Float64(); !ok || v != 2.75 {
		t.Errorf("NewNumber(2.75).Float64() = %v, %v", v, ok)
	}
	if !s.NewBoolean(true).IsTrue() {
		t.Error("NewBoolean(true) should be truthy")
	}
	if s.NewBoolean(false).IsTrue() {
		t.Error("NewBoolean(false) should be falsy")
	}
}

func TestScope_NewArray(t *testing.T) {
	s := NewScope()

	val := s.NewArray([]denocore.Value{
		s.NewInteger(1),
		s.NewNumber(2.5),
		s.NewBoolean(false),
	})

	arr, ok := val.AsArray()
	if !ok {
		t.Fatal("NewArray result is not array-like")
	}
	if n := arr.Len(); n != 3 {
		t.Fatalf("Len = %d, want 3", n)
	}

	e0, err := arr.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := e0.Int32(); !ok || v != 1 {
		t.Errorf("element 0 = %d, %v", v, ok)
	}
	e1, err := arr.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := e1.Float64(); !ok || v != 2.5 {
		t.Errorf("element 1 = %v, %v", v, ok)
	}
	e2, err := arr.Get(2)
	if err != nil {
		t.Fatal(err)
	}
	if e2.IsTrue() {
		t.Error("element 2 should be falsy")
	}
}

func TestValue_IntegerReaders(t *testing.T) {
	s := NewScope()

	v := eval(t, s, "42")
	if n, ok := v.Int32(); !ok || n != 42 {
		t.Errorf("Int32 = %d, %v", n, ok)
	}
	if n, ok := v.Uint32(); !ok || n != 42 {
		t.Errorf("Uint32 = %d, %v", n, ok)
	}
	if n, ok := v.Int64(); !ok || n != 42 {
		t.Errorf("Int64 = %d, %v", n, ok)
	}
	if n, ok := v.Uint64(); !ok || n != 42 {
		t.Errorf("Uint64 = %d, %v", n, ok)
	}

	neg := eval(t, s, "-7")
	if _, ok := neg.Uint32(); ok {
		t.Error("Uint32 of -7 should report no value")
	}
	if _, ok := neg.Uint64(); ok {
		t.Error("Uint64 of -7 should report no value")
	}
	if n, ok := neg.Int32(); !ok || n != -7 {
		t.Errorf("Int32 of -7 = %d, %v", n, ok)
	}

	frac := eval(t, s, "3.5")
	if _, ok := frac.Int32(); ok {
		t.Error("Int32 of 3.5 should report no value")
	}
	if _, ok := frac.Int64(); ok {
		t.Error("Int64 of 3.5 should report no value")
	}
	if f, ok := frac.Float64(); !ok || f != 3.5 {
		t.Errorf("Float64 of 3.5 = %v, %v", f, ok)
	}

	big := eval(t, s, "4294967296") // 2^32, integral but beyond 32 bits
	if _, ok := big.Int32(); ok {
		t.Error("Int32 of 2^32 should report no value")
	}
	if n, ok := big.Int64(); !ok || n != 1<<32 {
		t.Errorf("Int64 of 2^32 = %d, %v", n, ok)
	}
}

func TestValue_NonNumericKinds(t *testing.T) {
	s := NewScope()

	for _, src := range []string{"'12'", "true", "null", "undefined", "({})", "[1]"} {
		v := eval(t, s, src)
		if _, ok := v.Float64(); ok {
			t.Errorf("Float64 of %s should report no value", src)
		}
		if _, ok := v.Int64(); ok {
			t.Errorf("Int64 of %s should report no value", src)
		}
	}
}

func TestValue_FloatBoundaries(t *testing.T) {
	s := NewScope()

	exact := eval(t, s, "Math.pow(2, 53)")
	if n, ok := exact.Uint64(); !ok || n != 1<<53 {
		t.Errorf("Uint64 of 2^53 = %d, %v", n, ok)
	}

	for _, src := range []string{"NaN", "Infinity", "-Infinity"} {
		v := eval(t, s, src)
		if _, ok := v.Int64(); ok {
			t.Errorf("Int64 of %s should report no value", src)
		}
		if _, ok := v.Float64(); !ok {
			t.Errorf("Float64 of %s should succeed", src)
		}
	}
}

func TestValue_Truthiness(t *testing.T) {
	s := NewScope()

	tests := []struct {
		src  string
		want bool
	}{
		{"0", false},
		{"1", true},
		{"NaN", false},
		{"''", false},
		{"'0'", true},
		{"null", false},
		{"undefined", false},
		{"[]", true},
		{"({})", true},
	}
	for _, tt := range tests {
		if got := eval(t, s, tt.src).IsTrue(); got != tt.want {
			t.Errorf("IsTrue(%s) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestValue_AsArray(t *testing.T) {
	s := NewScope()

	if _, ok := eval(t, s, "42").AsArray(); ok {
		t.Error("number should not be array-like")
	}
	if _, ok := eval(t, s, "({length: 2})").AsArray(); ok {
		t.Error("plain object should not be array-like")
	}

	arr, ok := eval(t, s, "[1, 2, 3]").AsArray()
	if !ok {
		t.Fatal("array literal should be array-like")
	}
	if arr.Len() != 3 {
		t.Errorf("Len = %d, want 3", arr.Len())
	}
}

func TestArray_HoleReadsAsUndefined(t *testing.T) {
	s := NewScope()

	arr, ok := eval(t, s, "[1, , 3]").AsArray()
	if !ok {
		t.Fatal("not array-like")
	}
	hole, err := arr.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := hole.Int32(); ok {
		t.Error("hole should not read as an integer")
	}
	if hole.IsTrue() {
		t.Error("hole should be falsy")
	}
}

func TestArray_ThrowingGetter(t *testing.T) {
	s := NewScope()

	src := `(() => {
		const a = [1, 2];
		Object.defineProperty(a, '1', { get() { throw new Error('nope'); } });
		return a;
	})()`
	arr, ok := eval(t, s, src).AsArray()
	if !ok {
		t.Fatal("not array-like")
	}
	if _, err := arr.Get(1); err == nil {
		t.Error("throwing getter should surface as an error")
	}
	if _, err := arr.Get(0); err != nil {
		t.Errorf("element 0: %v", err)
	}
}

func TestScopeFor_SharesRuntime(t *testing.T) {
	base := NewScope()
	if _, err := base.Eval("globalThis.x = 5"); err != nil {
		t.Fatal(err)
	}

	adopted := ScopeFor(base.Runtime())
	v, err := adopted.Eval("x")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := v.Int32(); !ok || n != 5 {
		t.Errorf("adopted runtime did not share globals: %d, %v", n, ok)
	}
}

func TestValue_MinInt64Boundary(t *testing.T) {
	s := NewScope()

	v := eval(t, s, "-9223372036854775808") // -2^63, exactly representable
	if n, ok := v.Int64(); !ok || n != math.MinInt64 {
		t.Errorf("Int64 of -2^63 = %d, %v", n, ok)
	}
	if _, ok := v.Uint64(); ok {
		t.Error("Uint64 of -2^63 should report no value")
	}
}
