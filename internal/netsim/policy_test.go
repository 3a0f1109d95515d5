package netsim

import (
	"context"
	"errors"
	"testing"
	"time"
)

// failEverything always injects a transport failure with no delay.
type failEverything struct{ NoFaults }

func (failEverything) FailRequest() bool { return true }

func TestWait_NoFaults(t *testing.T) {
	if err := Wait(context.Background(), NoFaults{}); err != nil {
		t.Errorf("Wait with NoFaults = %v, want nil", err)
	}
}

func TestWait_InjectedFailure(t *testing.T) {
	err := Wait(context.Background(), failEverything{})
	if !errors.Is(err, ErrInjected) {
		t.Errorf("Wait = %v, want ErrInjected", err)
	}
}

func TestWait_ContextCancelled(t *testing.T) {
	p := &RandomPolicy{MinLatency: time.Minute, MaxLatency: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Wait(ctx, p)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Wait = %v, want context.Canceled", err)
	}
}

func TestRandomPolicy_LatencyWithinRange(t *testing.T) {
	p := &RandomPolicy{MinLatency: 200 * time.Millisecond, MaxLatency: 1200 * time.Millisecond}
	for i := 0; i < 100; i++ {
		d := p.Latency()
		if d < p.MinLatency || d >= p.MaxLatency {
			t.Fatalf("latency %v outside [%v, %v)", d, p.MinLatency, p.MaxLatency)
		}
	}
}

func TestRandomPolicy_RateExtremes(t *testing.T) {
	never := &RandomPolicy{FailRate: 0, ReorderRate: 0}
	always := &RandomPolicy{FailRate: 1, ReorderRate: 1}

	for i := 0; i < 50; i++ {
		if never.FailRequest() || never.FailReorder() {
			t.Fatal("zero-rate policy injected a failure")
		}
		if !always.FailRequest() || !always.FailReorder() {
			t.Fatal("full-rate policy skipped a failure")
		}
	}
}
