// Package leaktest detects goroutines left running by a test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	defaultSettle = time.Second
	pollInterval  = 10 * time.Millisecond
	stackBufSize  = 1 << 16
)

// GoroutineChecker compares the goroutine count against a baseline taken
// when it was created.
type GoroutineChecker struct {
	t        testing.TB
	baseline int
	settle   time.Duration
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		t:        t,
		baseline: runtime.NumGoroutine(),
		settle:   defaultSettle,
	}
}

// Check fails the test when more than tolerance goroutines above the
// baseline are still running once the settle period has passed.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	target := g.baseline + tolerance
	if n, ok := waitFor(target, g.settle); !ok {
		g.t.Errorf("goroutine leak: baseline=%d now=%d tolerance=%d\n%s",
			g.baseline, n, tolerance, allStacks())
	}
}

// Verify runs fn and fails the test if any goroutine it started outlives it
func Verify(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// waitFor polls until at most target goroutines run or timeout elapses.
// It returns the last count seen.
func waitFor(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}

func allStacks() string {
	buf := make([]byte, stackBufSize)
	return string(buf[:runtime.Stack(buf, true)])
}
