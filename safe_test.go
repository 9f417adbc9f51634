package apgamma

import (
	"math"
	"sync"
	"testing"
	"time"
)

func approxEqualSafe(a, b *Safe, tol float64) bool {
	d := a.Sub(b)
	return math.Abs(d.Float64()) <= tol
}

// Ensure Add is commutative under heavy parallel calls and lock ordering
// (exercises lockPairR stable ordering).
func TestSafeDeadlockFreeAdd(t *testing.T) {
	a := MustParseSafe("3.25", 256)
	b := MustParseSafe("-1.75", 256)
	defer a.Close()
	defer b.Close()

	const N = 64
	var wg sync.WaitGroup
	wg.Add(N)
	errs := make(chan string, N)

	for i := 0; i < N; i++ {
		go func() {
			defer wg.Done()
			u := a.Add(b)
			v := b.Add(a)
			// Tight tolerance; both results should be identical
			if !approxEqualSafe(u, v, 1e-35) {
				errs <- "a+b != b+a"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatalf("parallel add mismatch: %s", e)
	}
}

// Run Exp(Log(x)) concurrently from many goroutines; should equal x within tight tolerance.
func TestSafeConcurrentExpLog(t *testing.T) {
	x := MustParseSafe("0.75", 384)
	defer x.Close()

	const G = 32
	var wg sync.WaitGroup
	wg.Add(G)
	errs := make(chan string, G)

	for i := 0; i < G; i++ {
		go func() {
			defer wg.Done()
			back := x.Log().Exp()
			if !approxEqualSafe(back, x, 1e-28) {
				errs <- "exp(log(x)) != x"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatalf("concurrent exp/log mismatch: %s", e)
	}
}

// Evaluate the special functions concurrently against a shared input.
func TestSafeConcurrentSpecialFunctions(t *testing.T) {
	x := MustParseSafe("0.2234", 256)
	defer x.Close()

	const G = 16
	var wg sync.WaitGroup
	wg.Add(G)
	errs := make(chan string, G)

	wantGamma := 0.799794867355491 // Γ(1, 0.2234) = e^{-0.2234}
	for i := 0; i < G; i++ {
		go func() {
			defer wg.Done()
			g, err := x.IncGammaInt(1)
			if err != nil {
				errs <- "IncGammaInt failed: " + err.Error()
				return
			}
			if math.Abs(g.Float64()-wantGamma) > 1e-14 {
				errs <- "IncGammaInt value mismatch"
				return
			}
			h, err := x.IncGammaHalfInt(1)
			if err != nil {
				errs <- "IncGammaHalfInt failed: " + err.Error()
				return
			}
			if math.Abs(h.Float64()-0.824557698593135) > 1e-14 {
				errs <- "IncGammaHalfInt value mismatch"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Fatalf("concurrent special function mismatch: %s", e)
	}
}

// Continually change precision while other goroutines read (Log/Exp).
// This specifically checks we have no data races or panics and that results stay finite/parseable.
func TestSafeSetPrecWhileReading(t *testing.T) {
	s := MustParseSafe("1.234567890123456789", 256)
	defer s.Close()

	stop := make(chan struct{})
	var wg sync.WaitGroup

	// Writer goroutine toggles precision.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				s.SetPrec(320)
				s.SetPrec(256)
			}
		}
	}()

	// Readers perform functions that take RLock.
	const R = 8
	wg.Add(R)
	for i := 0; i < R; i++ {
		go func() {
			defer wg.Done()
			// Do some work; errors will be visible with -race if any races exist.
			for j := 0; j < 50; j++ {
				_ = s.Log().StringScientific(80)
				_ = s.Exp().StringScientific(80)
				_ = s.StringFixed(10)
			}
		}()
	}

	// Let the system run for a short period.
	time.Sleep(200 * time.Millisecond)
	close(stop)
	wg.Wait()
}
