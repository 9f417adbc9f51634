package apgamma

import (
	"math"
	"math/big"
	"strings"
	"testing"
)

// helper: parse with test precision
func tp(s string) *Real { return MustParse(s, 128) }

// helper: |a-b| <= tol
func equalApprox(a, b *Real, tol float64) bool {
	diff := Sub(a, b)
	return math.Abs(diff.Float64()) <= tol
}

func TestParseFormatRoundTrip(t *testing.T) {
	tests := []string{
		"0",
		"1",
		"-1",
		"3.1415926535",
		"-2.718281828",
		"+0.5",
		"1.25e-10",
		"-4.5E+3",
	}
	for _, s := range tests {
		r, err := Parse(s, 128)
		if err != nil {
			t.Fatalf("Parse %q failed: %v", s, err)
		}
		_ = r.StringFixed(30)      // ensure formatting works
		_ = r.StringScientific(20) // ensure sci formatting works
	}
	if _, err := Parse("not-a-number", 128); err == nil {
		t.Fatalf("Parse accepted garbage input")
	}
	if _, err := Parse("", 128); err == nil {
		t.Fatalf("Parse accepted empty input")
	}
}

func TestBasicAlgebra(t *testing.T) {
	x := tp("3.25")
	negx := Neg(x)
	sum := Add(x, negx)
	if !equalApprox(sum, tp("0"), 1e-30) {
		t.Fatalf("x + (-x) != 0, got %s", sum.StringFixed(20))
	}

	one := tp("1")
	invx := Inv(x)
	prod := Mul(x, invx)
	if !equalApprox(prod, one, 1e-28) { // slightly looser because of division
		t.Fatalf("x * inv(x) != 1, got %s", prod.StringFixed(20))
	}

	absNeg := Abs(negx)
	if !equalApprox(absNeg, x, 1e-30) {
		t.Fatalf("abs(-x) != x, got %s vs %s", absNeg.StringFixed(20), x.StringFixed(20))
	}
}

func TestExpLog(t *testing.T) {
	x := tp("0.75")
	el := Exp(Log(x)) // exp(log(x)) ~= x
	if !equalApprox(el, x, 1e-30) {
		t.Fatalf("exp(log(x)) != x, got %s vs %s", el.StringFixed(20), x.StringFixed(20))
	}
}

func TestIntOpsAndTruncation(t *testing.T) {
	x := tp("-2.75")
	if got := x.Int64(); got != -2 {
		t.Fatalf("Int64 truncation: got %d, want -2", got)
	}
	y := New(128).MulInt64(tp("1.5"), 4)
	if !equalApprox(y, tp("6"), 1e-30) {
		t.Fatalf("MulInt64 mismatch: got %s", y.StringFixed(10))
	}
	z := New(128).DivInt64(tp("7"), 2)
	if !equalApprox(z, tp("3.5"), 1e-30) {
		t.Fatalf("DivInt64 mismatch: got %s", z.StringFixed(10))
	}
	w := New(128).AddInt64(tp("0.25"), 3)
	if !equalApprox(w, tp("3.25"), 1e-30) {
		t.Fatalf("AddInt64 mismatch: got %s", w.StringFixed(10))
	}
}

func TestSetPow2(t *testing.T) {
	r := New(64).SetPow2(-3)
	if got := r.Float64(); got != 0.125 {
		t.Fatalf("SetPow2(-3): got %v, want 0.125", got)
	}
	r.SetPow2(10)
	if got := r.Float64(); got != 1024 {
		t.Fatalf("SetPow2(10): got %v, want 1024", got)
	}
}

func TestErfcAndConstants(t *testing.T) {
	e := Erfc(tp("1"))
	if math.Abs(e.Float64()-math.Erfc(1)) > 1e-15 {
		t.Fatalf("erfc(1): got %v, want %v", e.Float64(), math.Erfc(1))
	}
	if math.Abs(Pi(128).Float64()-math.Pi) > 1e-15 {
		t.Fatalf("pi mismatch: got %v", Pi(128).Float64())
	}
	const euler = 0.5772156649015329
	if math.Abs(EulerGamma(128).Float64()-euler) > 1e-15 {
		t.Fatalf("euler gamma mismatch: got %v", EulerGamma(128).Float64())
	}
}

// --- High-precision tests for exp/log and very large integers ---

// bigPow2String returns the exact decimal string of 2^n using math/big.
func bigPow2String(n uint) string {
	b := new(big.Int).Lsh(big.NewInt(1), n)
	return b.String()
}

// trimPlusZero removes a leading '+' and normalizes "-0" to "0".
func trimPlusZero(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "-0" {
		return "0"
	}
	return s
}

func TestFormatPow2_1024_AllDigits(t *testing.T) {
	want := bigPow2String(1024)
	r, err := Parse(want, 2048)
	if err != nil {
		t.Fatalf("Parse(2^1024) failed: %v", err)
	}
	got := r.StringFixed(0)
	if trimPlusZero(got) != want {
		t.Fatalf("format mismatch for 2^1024: got %q", got)
	}
}

func TestExpLog_Pow2_1024_AllDigits(t *testing.T) {
	prec := uint(4096)
	want := bigPow2String(1024)
	two := MustParse("2", prec)
	ln2 := New(prec).Log(two)
	k := MustParse("1024", prec)
	tval := New(prec).Mul(ln2, k)
	pow := New(prec).Exp(tval) // exp(ln(2)*1024) = 2^1024
	got := pow.StringFixed(0)
	if trimPlusZero(got) != want {
		t.Fatalf("exp(log(2)*1024) mismatch: got %q", got)
	}
}

func TestCloneAndSetPrec(t *testing.T) {
	x := MustParse("1.2345678901234567890123456789", 256)
	c := x.Clone()
	if c.Prec() != 256 {
		t.Fatalf("clone precision: got %d", c.Prec())
	}
	if !equalApprox(c, x, 0) {
		t.Fatalf("clone value mismatch")
	}
	c.SetPrec(64)
	if c.Prec() != 64 {
		t.Fatalf("SetPrec: got %d", c.Prec())
	}
	// rounded, but still close
	if math.Abs(c.Float64()-x.Float64()) > 1e-15 {
		t.Fatalf("SetPrec rounding too lossy: %v vs %v", c.Float64(), x.Float64())
	}
}
