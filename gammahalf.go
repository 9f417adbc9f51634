package apgamma

import "fmt"

// Half-integer-order incomplete gamma, i.e. Γ(n+1/2, x) for integer n.
// Both sign branches are exact compositions of a finite Pochhammer-weighted
// sum and a sqrt(π)·erfc(sqrt(x)) closed-form term, so unlike the Ei
// kernels they carry no truncation failure mode.

// IncGammaHalfInt evaluates Γ(n+1/2, x) at the precision of x. Requires
// x > 0 so that sqrt(x) and the x^{1/2-n} powers stay real-valued; other x
// are rejected with ErrInvalidInput.
func IncGammaHalfInt(n int, x *Real, opts ...Option) (*Real, error) {
	cfg := newConfig(opts)
	if x.Sign() <= 0 || x.IsNaN() {
		return nil, fmt.Errorf("%w: half-integer incomplete gamma needs x > 0", ErrInvalidInput)
	}
	switch {
	case n == 0:
		return incGammaHalf(x, cfg)
	case n > 0:
		return incGammaPosHalf(n, x, cfg)
	default:
		return incGammaNegHalf(-n, x, cfg)
	}
}

// incGammaHalf computes Γ(1/2, x) = sqrt(π)·erfc(sqrt(x)).
func incGammaHalf(x *Real, cfg *config) (*Real, error) {
	prec := x.Prec()
	wp := prec + guardBits
	cfg.tracef(1, "incomplete gamma", "branch", "order one half")
	xw := New(wp).Set(x)
	res := New(wp).Erfc(New(wp).Sqrt(xw))
	res.Mul(res, New(wp).Sqrt(Pi(wp)))
	return New(prec).Set(res), nil
}

// incGammaPosHalf computes, for n >= 1,
//
//	Γ(n+1/2, x) = (2n-1)!!·2^{-n}·sqrt(π)·erfc(sqrt(x))
//	            + e^{-x}·sqrt(x)·Σ_{j=0}^{n-1} (-1)^{n-j-1}·(1/2-n)_{n-j-1}·x^j
//
// where (a)_k is the rising factorial.
func incGammaPosHalf(n int, x *Real, cfg *config) (*Real, error) {
	prec := x.Prec()
	wp := prec + guardBits
	cfg.tracef(1, "incomplete gamma", "branch", "positive half integer", "n", n)
	xw := New(wp).Set(x)

	// base of the correction-sum Pochhammers: 1/2 - n
	base := New(wp).SetInt64(int64(1 - 2*n))
	base.DivInt64(base, 2)

	sum := New(wp)
	xpow := New(wp).SetInt64(1)
	t := New(wp)
	for j := 0; j < n; j++ {
		w, err := Pochhammer(base, n-j-1)
		if err != nil {
			return nil, err
		}
		if (n-j-1)%2 == 1 {
			w.Neg(w)
		}
		sum.Add(sum, t.Mul(w, xpow))
		xpow.Mul(xpow, xw)
	}
	sqx := New(wp).Sqrt(xw)
	emx := New(wp).Neg(xw)
	emx.Exp(emx)
	sum.Mul(sum, sqx)
	sum.Mul(sum, emx)

	// (2n-1)!! · 2^{-n} · sqrt(π) · erfc(sqrt(x))
	dfact := New(wp).SetInt64(1)
	for j := int64(1); j <= int64(n); j++ {
		dfact.MulInt64(dfact, 2*j-1)
	}
	cf := New(wp).Erfc(sqx)
	cf.Mul(cf, New(wp).Sqrt(Pi(wp)))
	cf.Mul(cf, dfact)
	cf.Mul(cf, New(wp).SetPow2(-int64(n)))

	sum.Add(sum, cf)
	return New(prec).Set(sum), nil
}

// incGammaNegHalf computes, for n >= 1 (order 1/2 - n),
//
//	Γ(1/2-n, x) = (-1)^n·sqrt(π)·erfc(sqrt(x))/(1/2)_n
//	            - e^{-x}·Σ_{j=0}^{n-1} x^{1/2-n+j}/(1/2-n)_{j+1}
//
// with a running power of x climbing from x^{1/2-n} toward x^{-1/2}.
func incGammaNegHalf(n int, x *Real, cfg *config) (*Real, error) {
	prec := x.Prec()
	wp := prec + guardBits
	cfg.tracef(1, "incomplete gamma", "branch", "negative half integer", "n", -n)
	xw := New(wp).Set(x)

	base := New(wp).SetInt64(int64(1 - 2*n))
	base.DivInt64(base, 2) // 1/2 - n

	xpow := New(wp).Pow(xw, base) // x^{1/2-n}
	sum := New(wp)
	t := New(wp)
	for j := 0; j < n; j++ {
		w, err := Pochhammer(base, j+1)
		if err != nil {
			return nil, err
		}
		sum.Add(sum, t.Div(xpow, w))
		xpow.Mul(xpow, xw)
	}
	emx := New(wp).Neg(xw)
	emx.Exp(emx)
	sum.Mul(sum, emx)

	half := New(wp).SetInt64(1)
	half.DivInt64(half, 2)
	ph, err := Pochhammer(half, n)
	if err != nil {
		return nil, err
	}
	cf := New(wp).Erfc(New(wp).Sqrt(xw))
	cf.Mul(cf, New(wp).Sqrt(Pi(wp)))
	cf.Div(cf, ph)
	if n%2 == 1 {
		cf.Neg(cf)
	}

	res := New(wp).Sub(cf, sum)
	return New(prec).Set(res), nil
}
