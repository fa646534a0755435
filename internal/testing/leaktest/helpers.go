// Package leaktest checks that code under test leaves no goroutines running.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettle is how long Check waits for goroutines to exit.
const DefaultSettle = 500 * time.Millisecond

// GoroutineChecker compares the goroutine count against a baseline.
type GoroutineChecker struct {
	baseline int
	t        testing.TB
}

// NewGoroutineChecker records the current goroutine count as the baseline.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{baseline: runtime.NumGoroutine(), t: t}
}

// Check fails the test when more than tolerance goroutines above the baseline are
// still running after settle.
func (g *GoroutineChecker) Check(tolerance int, settle time.Duration) {
	g.t.Helper()

	deadline := time.Now().Add(settle)
	for {
		n := runtime.NumGoroutine()
		if n-g.baseline <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: baseline=%d, now=%d, tolerance=%d", g.baseline, n, tolerance)
			return
		}
		runtime.Gosched()
		time.Sleep(5 * time.Millisecond)
	}
}

// Run calls fn and checks that every goroutine it started has exited.
func Run(t testing.TB, fn func()) {
	t.Helper()
	g := NewGoroutineChecker(t)
	fn()
	g.Check(0, DefaultSettle)
}
