package apgamma

import (
	"fmt"
	"math"
)

// Exponential integral Ei(x) for real x, evaluated either by the Taylor
// series around 0 or the large-|x| asymptotic expansion. The Taylor branch
// has alternating-sign cancellation for x < 0, which the dispatcher absorbs
// by elevating the working precision with |x|.

// Ei evaluates the exponential integral at the precision of x, elevating
// the working precision internally and rounding the result back.
func Ei(x *Real, opts ...Option) (*Real, error) {
	cfg := newConfig(opts)
	prec := x.Prec()
	y, err := eiAuto(x, prec+guardBits, cfg)
	if err != nil {
		return nil, err
	}
	return New(prec).Set(y), nil
}

// EiTaylor evaluates Ei via the power series around 0, directly at the
// precision of x. Exposed for diagnostics; Ei is the production entry point.
func EiTaylor(x *Real, opts ...Option) (*Real, error) {
	return eiTaylor(x, x.Prec(), newConfig(opts))
}

// EiAsymp evaluates Ei via the divergent asymptotic expansion, directly at
// the precision of x. Only meaningful for |x| large relative to the
// precision; elsewhere the series never meets its tolerance and the call
// fails with ErrPrecisionNotReached.
func EiAsymp(x *Real, opts ...Option) (*Real, error) {
	return eiAsymp(x, x.Prec(), newConfig(opts))
}

// eiAuto picks the asymptotic or Taylor branch for the given working
// precision. Shared by Ei and the n=0 integer-gamma branch.
func eiAuto(x *Real, wp uint, cfg *config) (*Real, error) {
	ax := x.Int64()
	if ax < 0 {
		ax = -ax
	}
	// Past this point e^x/x dominates the requested precision and the
	// asymptotic truncation error fits under it.
	threshold := int64(float64(wp)*math.Ln2) + 10
	if ax > threshold {
		cfg.tracef(1, "ei dispatch", "branch", "asymptotic", "intpart", ax, "threshold", threshold, "wp", wp)
		return eiAsymp(x, wp, cfg)
	}
	twp := wp + 2*uint(ax)
	cfg.tracef(1, "ei dispatch", "branch", "taylor", "intpart", ax, "threshold", threshold, "wp", twp)
	return eiTaylor(x, twp, cfg)
}

// eiShifted computes Ei(x) - ln|x| = γ + Σ_{k>=1} x^k / (k·k!) at the
// precision of x, stopping once the running term drops below 2^-(p+20).
func eiShifted(x *Real, cfg *config) (*Real, error) {
	p := x.Prec()
	eps := New(p).SetPow2(-int64(p) - guardBits)
	term := New(p).Set(x) // t_1 = x
	sum := New(p).Set(x)
	converged := false
	// t_k = t_{k-1} · x · (k-1) / k²
	for k := int64(2); k <= int64(cfg.maxTerms); k++ {
		term.Mul(term, x)
		term.MulInt64(term, k-1)
		term.DivInt64(term, k*k)
		sum.Add(sum, term)
		if term.CmpAbs(eps) < 0 {
			cfg.tracef(2, "ei taylor converged", "terms", k)
			converged = true
			break
		}
	}
	if !converged {
		return nil, fmt.Errorf("ei taylor series: %w after %d terms", ErrPrecisionNotReached, cfg.maxTerms)
	}
	return sum.Add(sum, EulerGamma(p)), nil
}

// eiTaylor evaluates the series at working precision wp and adds back ln|x|.
func eiTaylor(x *Real, wp uint, cfg *config) (*Real, error) {
	xw := New(wp).Set(x)
	sum, err := eiShifted(xw, cfg)
	if err != nil {
		return nil, err
	}
	lnAbs := New(wp).Log(New(wp).Abs(xw))
	return sum.Add(sum, lnAbs), nil
}

// eiAsymp evaluates (e^x/x) · Σ_{k>=0} k!/x^k at working precision wp,
// truncating as soon as a term falls below 2^-(wp+1). The whole sum is
// scaled by e^x/x afterwards, so the cut is relative to the result. The
// expansion diverges, so hitting the cap means |x| was too small for this
// precision, not that more terms would help.
func eiAsymp(x *Real, wp uint, cfg *config) (*Real, error) {
	xw := New(wp).Set(x)
	r := New(wp).Inv(xw)
	lead := New(wp).Exp(xw)
	lead.Mul(lead, r) // e^x / x
	eps := New(wp).SetPow2(-int64(wp) - 1)
	term := New(wp).SetInt64(1) // t_0 = 1
	sum := New(wp).SetInt64(1)
	converged := false
	// t_k = t_{k-1} · k · r
	for k := int64(1); k <= int64(cfg.maxTerms); k++ {
		term.Mul(term, r)
		term.MulInt64(term, k)
		if term.CmpAbs(eps) < 0 {
			cfg.tracef(2, "ei asymptotic converged", "terms", k)
			converged = true
			break
		}
		sum.Add(sum, term)
	}
	if !converged {
		return nil, fmt.Errorf("ei asymptotic series: %w after %d terms", ErrPrecisionNotReached, cfg.maxTerms)
	}
	return sum.Mul(sum, lead), nil
}
