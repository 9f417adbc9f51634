package apgamma

import "errors"

// Failure taxonomy of the evaluation engine. Kernels report recoverable
// conditions through these sentinels rather than panicking; callers can
// branch with errors.Is.
var (
	// ErrInvalidInput marks parameters outside a branch's domain
	// (negative Pochhammer index, non-positive x in the half-integer
	// gamma branches). Detected up front, never retried.
	ErrInvalidInput = errors.New("apgamma: invalid input")

	// ErrPrecisionNotReached means a series kernel hit its term cap
	// before the truncation tolerance was met. The caller may retry at a
	// higher working precision; the kernel itself never does.
	ErrPrecisionNotReached = errors.New("apgamma: requested precision not reached")

	// ErrNotImplemented marks explicitly unsupported domains
	// (negative-integer order incomplete gamma).
	ErrNotImplemented = errors.New("apgamma: not implemented")
)
