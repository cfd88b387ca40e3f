// Package errors provides structured error types for the conversion layer.
//
// Errors are categorized by Phase (which conversion direction failed) and
// Kind (error category). The Error type includes the expected native type,
// the element index for compound failures, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseFromValue, errors.KindTypeMismatch).
//		Expected("u32").
//		Detail("value is not an integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseFromValue, "u32")
//	err := errors.Element(errors.PhaseFromValue, 2, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
