// Package apgamma evaluates the upper incomplete gamma function Γ(n,x) and
// the exponential integral Ei(x) to arbitrary precision for Go, for integer
// and half-integer orders n.
//
// It wraps the GNU MPFR/GMP libraries via cgo and exposes a Go-friendly API
// with parsing/formatting from/to strings, configurable precision in bits,
// and the series/finite-sum engines for the gamma and Ei families.
//
// Build requirements:
//   - libmpfr, libgmp (headers + libs)
//     Debian/Ubuntu: sudo apt-get install -y libmpfr-dev libgmp-dev build-essential
//     macOS/Homebrew: brew install mpfr gmp
//
// Minimal usage:
//
//	x := apgamma.MustParse("0.2234", 256)
//	g, err := apgamma.IncGammaInt(1, x)
//	fmt.Println(g.StringFixed(50), err)
//
// SPDX-License-Identifier: MIT
package apgamma

/*
#cgo CFLAGS: -O2
#cgo LDFLAGS: -lmpfr -lgmp
#include <stdlib.h>
#include <string.h>
#include <mpfr.h>

// Helpers to format MPFR values to C strings we can return to Go.
static char* apg_mpfr_to_str_fixed(mpfr_srcptr x, int digits) {
    if (digits < 0) digits = 0;
    int n = mpfr_snprintf(NULL, 0, "%.*Rf", digits, x);
    if (n < 0) return NULL;
    char *buf = (char*)malloc((size_t)n + 1);
    if (!buf) return NULL;
    if (mpfr_snprintf(buf, (size_t)n + 1, "%.*Rf", digits, x) < 0) {
        free(buf);
        return NULL;
    }
    return buf;
}

static char* apg_mpfr_to_str_sci(mpfr_srcptr x, int digits) {
    if (digits < 1) digits = 1;
    int n = mpfr_snprintf(NULL, 0, "%.*Re", digits, x);
    if (n < 0) return NULL;
    char *buf = (char*)malloc((size_t)n + 1);
    if (!buf) return NULL;
    if (mpfr_snprintf(buf, (size_t)n + 1, "%.*Re", digits, x) < 0) {
        free(buf);
        return NULL;
    }
    return buf;
}

// Helpers so Go code doesn't reference MPFR macros directly (cgo can't see macros).
static void apg_mpfr_set(mpfr_ptr rop, mpfr_srcptr op, mpfr_rnd_t rnd) {
    mpfr_set(rop, op, rnd);
}
static void apg_mpfr_abs(mpfr_ptr rop, mpfr_srcptr op, mpfr_rnd_t rnd) {
    mpfr_abs(rop, op, rnd);
}
static int apg_mpfr_cmp(mpfr_srcptr a, mpfr_srcptr b) {
    return mpfr_cmp(a, b);
}
static int apg_mpfr_sgn(mpfr_srcptr x) {
    return mpfr_sgn(x);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"unsafe"
)

// default rounding mode (nearest)
var defaultRnd = C.mpfr_rnd_t(C.MPFR_RNDN)

// Real is an arbitrary-precision real backed by GNU MPFR.
// Use New/Parse; zero value is not usable. The precision of a Real is fixed
// at construction; raising precision means constructing a new value.
type Real struct {
	x    C.mpfr_t
	prec uint
	init bool
}

// New allocates a value with the given precision in bits (like MPFR). If bits==0, 53 is used.
// The value starts at 0.
func New(bits uint) *Real {
	if bits == 0 {
		bits = 53
	}
	r := &Real{prec: bits}
	C.mpfr_init2(&r.x[0], C.mpfr_prec_t(bits))
	C.mpfr_set_zero(&r.x[0], 1)
	r.init = true
	runtime.SetFinalizer(r, func(rr *Real) {
		if rr.init {
			C.mpfr_clear(&rr.x[0])
			rr.init = false
		}
	})
	return r
}

// Close frees C resources.
func (r *Real) Close() {
	if r != nil && r.init {
		C.mpfr_clear(&r.x[0])
		r.init = false
	}
}

// Prec returns precision in bits.
func (r *Real) Prec() uint { return r.prec }

// SetPrec changes precision (rounding the value to the new precision).
func (r *Real) SetPrec(bits uint) *Real {
	if !r.init {
		panic("apgamma: not initialized")
	}
	if bits == 0 {
		bits = 53
	}
	if bits == r.prec {
		return r
	}
	C.mpfr_prec_round(&r.x[0], C.mpfr_prec_t(bits), defaultRnd)
	r.prec = bits
	return r
}

// Clone returns a deep copy.
func (r *Real) Clone() *Real {
	out := New(r.prec)
	C.apg_mpfr_set(&out.x[0], &r.x[0], defaultRnd)
	return out
}

// Parse parses a decimal real literal (fixed or scientific) at given precision.
func Parse(s string, prec uint) (*Real, error) {
	r := New(prec)
	if err := r.SetString(s); err != nil {
		r.Close()
		return nil, err
	}
	return r, nil
}

// MustParse panics on error.
func MustParse(s string, prec uint) *Real {
	r, err := Parse(s, prec)
	if err != nil {
		panic(err)
	}
	return r
}

// SetString sets r from a base-10 real string.
func (r *Real) SetString(s string) error {
	if !r.init {
		return errors.New("apgamma: not initialized")
	}
	return r.SetBase(s, 10)
}

// SetBase sets r from a string in the given base (<=0 defaults to 10).
func (r *Real) SetBase(s string, base int) error {
	if !r.init {
		return errors.New("apgamma: not initialized")
	}
	t := strings.TrimSpace(s)
	if t == "" {
		return fmt.Errorf("apgamma: invalid real literal %q", s)
	}
	if t[0] == '+' {
		t = t[1:]
	}
	cs := C.CString(t)
	defer C.free(unsafe.Pointer(cs))
	b := C.int(base)
	if base <= 0 {
		b = 10
	}
	if C.mpfr_set_str(&r.x[0], cs, b, C.MPFR_RNDN) != 0 {
		return fmt.Errorf("apgamma: invalid real literal %q", s)
	}
	return nil
}

// SetInt64 sets r to the given integer.
func (r *Real) SetInt64(v int64) *Real {
	C.mpfr_set_si(&r.x[0], C.long(v), defaultRnd)
	return r
}

// SetFloat64 sets r to the given float64.
func (r *Real) SetFloat64(v float64) *Real {
	C.mpfr_set_d(&r.x[0], C.double(v), defaultRnd)
	return r
}

// SetPow2 sets r to 2^e exactly.
func (r *Real) SetPow2(e int64) *Real {
	C.mpfr_set_ui_2exp(&r.x[0], 1, C.mpfr_exp_t(e), defaultRnd)
	return r
}

// Formatting
func (r *Real) StringFixed(digits int) string {
	if digits < 0 {
		digits = 0
	}
	if !r.init {
		return "(invalid)"
	}
	p := C.apg_mpfr_to_str_fixed(&r.x[0], C.int(digits))
	if p == nil {
		return "<oom>"
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

func (r *Real) StringScientific(digits int) string {
	if digits < 1 {
		digits = 1
	}
	if !r.init {
		return "(invalid)"
	}
	p := C.apg_mpfr_to_str_sci(&r.x[0], C.int(digits))
	if p == nil {
		return "<oom>"
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

// Algebraic ops (mutating; return receiver for chaining)
func (r *Real) Set(a *Real) *Real { C.apg_mpfr_set(&r.x[0], &a.x[0], defaultRnd); return r }
func (r *Real) Add(a, b *Real) *Real {
	C.mpfr_add(&r.x[0], &a.x[0], &b.x[0], defaultRnd)
	return r
}
func (r *Real) Sub(a, b *Real) *Real {
	C.mpfr_sub(&r.x[0], &a.x[0], &b.x[0], defaultRnd)
	return r
}
func (r *Real) Mul(a, b *Real) *Real {
	C.mpfr_mul(&r.x[0], &a.x[0], &b.x[0], defaultRnd)
	return r
}
func (r *Real) Div(a, b *Real) *Real {
	C.mpfr_div(&r.x[0], &a.x[0], &b.x[0], defaultRnd)
	return r
}
func (r *Real) Neg(a *Real) *Real { C.mpfr_neg(&r.x[0], &a.x[0], defaultRnd); return r }
func (r *Real) Abs(a *Real) *Real { C.apg_mpfr_abs(&r.x[0], &a.x[0], defaultRnd); return r }
func (r *Real) Inv(a *Real) *Real {
	// r = 1 / a
	C.mpfr_ui_div(&r.x[0], 1, &a.x[0], defaultRnd)
	return r
}

// Mixed real/int ops; the series kernels lean on these for term recurrences.
func (r *Real) AddInt64(a *Real, v int64) *Real {
	C.mpfr_add_si(&r.x[0], &a.x[0], C.long(v), defaultRnd)
	return r
}
func (r *Real) SubInt64(a *Real, v int64) *Real {
	C.mpfr_sub_si(&r.x[0], &a.x[0], C.long(v), defaultRnd)
	return r
}
func (r *Real) MulInt64(a *Real, v int64) *Real {
	C.mpfr_mul_si(&r.x[0], &a.x[0], C.long(v), defaultRnd)
	return r
}
func (r *Real) DivInt64(a *Real, v int64) *Real {
	C.mpfr_div_si(&r.x[0], &a.x[0], C.long(v), defaultRnd)
	return r
}

// Elementary/transcendental
func (r *Real) Sqrt(a *Real) *Real { C.mpfr_sqrt(&r.x[0], &a.x[0], defaultRnd); return r }
func (r *Real) Exp(a *Real) *Real  { C.mpfr_exp(&r.x[0], &a.x[0], defaultRnd); return r }
func (r *Real) Log(a *Real) *Real  { C.mpfr_log(&r.x[0], &a.x[0], defaultRnd); return r }
func (r *Real) Erfc(a *Real) *Real { C.mpfr_erfc(&r.x[0], &a.x[0], defaultRnd); return r }
func (r *Real) Pow(a, b *Real) *Real {
	C.mpfr_pow(&r.x[0], &a.x[0], &b.x[0], defaultRnd)
	return r
}
func (r *Real) PowInt64(a *Real, e int64) *Real {
	C.mpfr_pow_si(&r.x[0], &a.x[0], C.long(e), defaultRnd)
	return r
}

// Constants
func EulerGamma(prec uint) *Real {
	r := New(prec)
	C.mpfr_const_euler(&r.x[0], defaultRnd)
	return r
}

func Pi(prec uint) *Real {
	r := New(prec)
	C.mpfr_const_pi(&r.x[0], defaultRnd)
	return r
}

// Comparison/classification
func (r *Real) Cmp(a *Real) int    { return int(C.apg_mpfr_cmp(&r.x[0], &a.x[0])) }
func (r *Real) CmpAbs(a *Real) int { return int(C.mpfr_cmpabs(&r.x[0], &a.x[0])) }
func (r *Real) Sign() int          { return int(C.apg_mpfr_sgn(&r.x[0])) }
func (r *Real) IsNaN() bool        { return C.mpfr_nan_p(&r.x[0]) != 0 }
func (r *Real) IsInf() bool        { return C.mpfr_inf_p(&r.x[0]) != 0 }

// Int64 returns the integer part of r (truncation toward zero), saturating at
// the long range.
func (r *Real) Int64() int64 {
	return int64(C.mpfr_get_si(&r.x[0], C.MPFR_RNDZ))
}

// Float64 returns the nearest float64.
func (r *Real) Float64() float64 {
	return float64(C.mpfr_get_d(&r.x[0], defaultRnd))
}

// Non-mutating convenience wrappers
func Add(a, b *Real) *Real { return New(maxPrec(a, b)).Add(a, b) }
func Sub(a, b *Real) *Real { return New(maxPrec(a, b)).Sub(a, b) }
func Mul(a, b *Real) *Real { return New(maxPrec(a, b)).Mul(a, b) }
func Div(a, b *Real) *Real { return New(maxPrec(a, b)).Div(a, b) }
func Neg(a *Real) *Real    { return New(a.prec).Neg(a) }
func Abs(a *Real) *Real    { return New(a.prec).Abs(a) }
func Inv(a *Real) *Real    { return New(a.prec).Inv(a) }
func Sqrt(a *Real) *Real   { return New(a.prec).Sqrt(a) }
func Exp(a *Real) *Real    { return New(a.prec).Exp(a) }
func Log(a *Real) *Real    { return New(a.prec).Log(a) }
func Erfc(a *Real) *Real   { return New(a.prec).Erfc(a) }
func Pow(a, b *Real) *Real { return New(maxPrec(a, b)).Pow(a, b) }

func maxPrec(a, b *Real) uint {
	p := a.prec
	if b.prec > p {
		p = b.prec
	}
	return p
}
