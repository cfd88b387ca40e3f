package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates which direction of conversion the error occurred in
type Phase string

const (
	PhaseToValue   Phase = "to_value"   // native to engine
	PhaseFromValue Phase = "from_value" // engine to native
)

// Kind categorizes the error
type Kind string

const (
	// KindTypeMismatch means the engine value's runtime kind does not match
	// the kind the target native type expects.
	KindTypeMismatch Kind = "type_mismatch"

	// KindElement wraps the first element failure of a compound conversion.
	KindElement Kind = "element"

	// KindUnsupported means the native type has no conversion in the
	// requested direction.
	KindUnsupported Kind = "unsupported"
)

// Error is the structured error type used throughout the conversion layer
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Expected string // native type name the conversion expected
	Index    int    // element position for compound failures, -1 otherwise
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Index >= 0 {
		b.WriteString(" at index ")
		b.WriteString(strconv.Itoa(e.Index))
	}

	if e.Expected != "" {
		b.WriteString(": Expected ")
		b.WriteString(e.Expected)
	}

	if e.Detail != "" {
		if e.Expected != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
			Index: -1,
		},
	}
}

// Expected sets the native type name the conversion expected
func (b *Builder) Expected(name string) *Builder {
	b.err.Expected = name
	return b
}

// Index sets the offending element position
func (b *Builder) Index(i int) *Builder {
	b.err.Index = i
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error naming the expected native type
func TypeMismatch(phase Phase, expected string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Expected: expected,
		Index:    -1,
	}
}

// Element wraps the failure of the element at index i during a compound
// conversion. The cause's message and chain are preserved.
func Element(phase Phase, i int, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindElement,
		Index: i,
		Cause: cause,
	}
}

// Unsupported creates an unsupported conversion error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
		Index:  -1,
	}
}
