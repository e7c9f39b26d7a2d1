package editor

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalesces(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func() { calls.Add(1) })
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("expected 1 call after burst, got %d", got)
	}
}

func TestDebouncerFiresAgainAfterQuiet(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(10*time.Millisecond, func() { calls.Add(1) })
	defer d.Stop()

	d.Trigger()
	time.Sleep(50 * time.Millisecond)
	d.Trigger()
	time.Sleep(50 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Errorf("expected 2 calls, got %d", got)
	}
}

func TestDebouncerFlushRunsImmediately(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(time.Hour, func() { calls.Add(1) })
	defer d.Stop()

	d.Trigger()
	d.Flush()
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected flush to run the function, got %d calls", got)
	}

	// The pending timer was consumed by the flush.
	time.Sleep(20 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("timer fired after flush, got %d calls", got)
	}
}

func TestDebouncerFlushWithoutTrigger(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(time.Hour, func() { calls.Add(1) })
	defer d.Stop()

	d.Flush()
	if got := calls.Load(); got != 1 {
		t.Errorf("expected flush to run even without a pending trigger, got %d", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(10*time.Millisecond, func() { calls.Add(1) })

	d.Trigger()
	d.Stop()
	time.Sleep(50 * time.Millisecond)

	if got := calls.Load(); got != 0 {
		t.Errorf("expected no calls after stop, got %d", got)
	}
}
