package jsengine

import (
	"math"
	"strconv"

	"github.com/dop251/goja"

	denocore "github.com/nathanwhit/deno-core"
)

// value implements denocore.Value over a goja value.
type value struct {
	rt *goja.Runtime
	v  goja.Value
}

// number reports the value as a double if it is a number of either engine
// representation (immediate integer or double).
func (v *value) number() (float64, bool) {
	switch ex := v.v.Export().(type) {
	case int64:
		return float64(ex), true
	case float64:
		return ex, true
	}
	return 0, false
}

func isIntegral(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

func (v *value) Int32() (int32, bool) {
	n, ok := v.Int64()
	if !ok || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int32(n), true
}

func (v *value) Uint32() (uint32, bool) {
	n, ok := v.Int64()
	if !ok || n < 0 || n > math.MaxUint32 {
		return 0, false
	}
	return uint32(n), true
}

func (v *value) Int64() (int64, bool) {
	switch ex := v.v.Export().(type) {
	case int64:
		return ex, true
	case float64:
		if isIntegral(ex) && ex >= math.MinInt64 && ex < math.MaxInt64 {
			return int64(ex), true
		}
	}
	return 0, false
}

func (v *value) Uint64() (uint64, bool) {
	switch ex := v.v.Export().(type) {
	case int64:
		if ex >= 0 {
			return uint64(ex), true
		}
	case float64:
		if isIntegral(ex) && ex >= 0 && ex < math.MaxUint64 {
			return uint64(ex), true
		}
	}
	return 0, false
}

func (v *value) Float32() (float32, bool) {
	f, ok := v.number()
	if !ok {
		return 0, false
	}
	return float32(f), true
}

func (v *value) Float64() (float64, bool) {
	return v.number()
}

// IsTrue applies ECMAScript truthiness. Total for every engine value.
func (v *value) IsTrue() bool {
	return v.v.ToBoolean()
}

func (v *value) AsArray() (denocore.Array, bool) {
	obj, ok := v.v.(*goja.Object)
	if !ok || obj.ClassName() != "Array" {
		return nil, false
	}
	return &array{value: value{rt: v.rt, v: v.v}, obj: obj}, true
}

func (v *value) String() string {
	return v.v.String()
}

// array implements denocore.Array for goja array objects.
type array struct {
	value
	obj *goja.Object
}

func (a *array) Len() uint32 {
	return uint32(a.obj.Get("length").ToInteger())
}

// Get reads the i-th element. A throwing getter surfaces as an error
// instead of unwinding through the conversion.
func (a *array) Get(i uint32) (v denocore.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			ex, ok := r.(*goja.Exception)
			if !ok {
				panic(r)
			}
			v, err = nil, ex
		}
	}()

	gv := a.obj.Get(strconv.FormatUint(uint64(i), 10))
	if gv == nil {
		gv = goja.Undefined()
	}
	return &value{rt: a.rt, v: gv}, nil
}
