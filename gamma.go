package apgamma

import "fmt"

// IncGammaInt evaluates the upper incomplete gamma function
//
//	Γ(n,x) = ∫_x^∞ e^{-t} t^{n-1} dt
//
// for integer order n at the precision of x. n > 0 uses the closed finite
// sum Γ(n,x) = (n-1)!·e^{-x}·Σ_{k=0}^{n-1} x^k/k!; n = 0 reduces to
// Γ(0,x) = -Ei(-x). Negative n is not implemented.
func IncGammaInt(n int, x *Real, opts ...Option) (*Real, error) {
	cfg := newConfig(opts)
	switch {
	case n > 0:
		return incGammaPosInt(n, x, cfg)
	case n == 0:
		return incGammaZeroInt(x, cfg)
	default:
		return nil, fmt.Errorf("%w: incomplete gamma of negative integer order %d", ErrNotImplemented, n)
	}
}

// incGammaPosInt accumulates the partial sum and the running factorial in a
// single forward pass, then multiplies by e^{-x}. Purely algebraic: no
// truncation, no failure mode.
func incGammaPosInt(n int, x *Real, cfg *config) (*Real, error) {
	prec := x.Prec()
	wp := prec + guardBits
	xw := New(wp).Set(x)
	term := New(wp).SetInt64(1) // x^k / k!
	sum := New(wp).SetInt64(1)
	fact := New(wp).SetInt64(1)
	for k := int64(1); k < int64(n); k++ {
		term.Mul(term, xw)
		term.DivInt64(term, k)
		sum.Add(sum, term)
		fact.MulInt64(fact, k)
	}
	cfg.tracef(1, "incomplete gamma", "branch", "positive integer", "n", n)
	res := New(wp).Neg(xw)
	res.Exp(res)
	res.Mul(res, fact) // (n-1)!
	res.Mul(res, sum)
	return New(prec).Set(res), nil
}

// incGammaZeroInt computes Γ(0,x) = -Ei(-x) through the shared Ei branch
// selection at the caller's precision plus the guard bits.
func incGammaZeroInt(x *Real, cfg *config) (*Real, error) {
	prec := x.Prec()
	cfg.tracef(1, "incomplete gamma", "branch", "order zero via Ei")
	nx := New(prec).Neg(x)
	y, err := eiAuto(nx, prec+guardBits, cfg)
	if err != nil {
		return nil, err
	}
	return New(prec).Neg(y), nil
}
