package jsengine

import (
	"github.com/dop251/goja"
	"go.uber.org/zap"

	denocore "github.com/nathanwhit/deno-core"
)

var (
	_ denocore.Scope = (*Scope)(nil)
	_ denocore.Value = (*value)(nil)
	_ denocore.Array = (*array)(nil)
)

// Scope implements denocore.Scope on top of a goja runtime.
type Scope struct {
	rt *goja.Runtime
}

// NewScope creates a scope with a fresh goja runtime.
func NewScope() *Scope {
	return &Scope{rt: goja.New()}
}

// ScopeFor adopts an existing runtime, for embedders that already run
// script code through goja.
func ScopeFor(rt *goja.Runtime) *Scope {
	return &Scope{rt: rt}
}

// Runtime exposes the underlying goja runtime.
func (s *Scope) Runtime() *goja.Runtime {
	return s.rt
}

// Eval runs src in the scope's runtime and returns the completion value.
func (s *Scope) Eval(src string) (denocore.Value, error) {
	v, err := s.rt.RunString(src)
	if err != nil {
		denocore.Logger().Debug("eval failed", zap.String("src", src), zap.Error(err))
		return nil, err
	}
	return &value{rt: s.rt, v: v}, nil
}

func (s *Scope) NewInteger(v int32) denocore.Value {
	return &value{rt: s.rt, v: s.rt.ToValue(v)}
}

func (s *Scope) NewNumber(v float64) denocore.Value {
	return &value{rt: s.rt, v: s.rt.ToValue(v)}
}

func (s *Scope) NewBoolean(v bool) denocore.Value {
	return &value{rt: s.rt, v: s.rt.ToValue(v)}
}

func (s *Scope) NewArray(elems []denocore.Value) denocore.Value {
	items := make([]any, len(elems))
	for i, e := range elems {
		items[i] = unwrap(e)
	}
	return &value{rt: s.rt, v: s.rt.NewArray(items...)}
}

// unwrap recovers the goja value behind a denocore.Value produced by this
// package.
func unwrap(v denocore.Value) goja.Value {
	switch ev := v.(type) {
	case *value:
		return ev.v
	case *array:
		return ev.v
	}
	panic("jsengine: value does not belong to this engine")
}
