package apgamma

import "fmt"

// Pochhammer returns the rising factorial a(a+1)...(a+k-1) at the precision
// of a. k == 0 yields 1. k < 0 is rejected with ErrInvalidInput.
func Pochhammer(a *Real, k int, opts ...Option) (*Real, error) {
	cfg := newConfig(opts)
	if k < 0 {
		return nil, fmt.Errorf("%w: pochhammer index %d must be >= 0", ErrInvalidInput, k)
	}
	p := a.Prec()
	res := New(p).SetInt64(1)
	f := New(p)
	for j := 0; j < k; j++ {
		f.AddInt64(a, int64(j))
		res.Mul(res, f)
	}
	cfg.tracef(2, "pochhammer", "k", k, "result", res.Float64())
	return res, nil
}
