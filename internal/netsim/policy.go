// Package netsim simulates unreliable network conditions for the API layer.
//
// The original deployment of this app has no server at all: requests resolve
// against a local store behind artificial latency and random failure. The
// policy keeps those semantics pluggable so the serve command can run with
// realistic faults while tests substitute a zero-fault policy.
package netsim

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// ErrInjected is the transport error produced by an injected failure.
var ErrInjected = errors.New("simulated network error")

// Policy decides the artificial latency and failures applied to each
// simulated call. Implementations must be safe for concurrent use.
type Policy interface {
	// Latency returns the artificial delay for one call.
	Latency() time.Duration

	// FailRequest reports whether this call should fail with a transport
	// error. Evaluated before any store access.
	FailRequest() bool

	// FailReorder reports whether a reorder call should additionally fail.
	// Evaluated independently of FailRequest, also before any write.
	FailReorder() bool
}

// Wait sleeps for the policy's latency, honoring context cancellation,
// then reports an injected transport failure if the policy demands one.
func Wait(ctx context.Context, p Policy) error {
	d := p.Latency()
	if d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if p.FailRequest() {
		return ErrInjected
	}
	return nil
}

// RandomPolicy injects uniformly distributed latency and independent
// random failures, matching the original simulation: 200-1200ms delay,
// 5% transport failure, 10% extra reorder failure.
type RandomPolicy struct {
	MinLatency  time.Duration
	MaxLatency  time.Duration
	FailRate    float64
	ReorderRate float64
}

// DefaultPolicy returns a RandomPolicy with the original simulation's rates.
func DefaultPolicy() *RandomPolicy {
	return &RandomPolicy{
		MinLatency:  200 * time.Millisecond,
		MaxLatency:  1200 * time.Millisecond,
		FailRate:    0.05,
		ReorderRate: 0.10,
	}
}

// Latency draws a uniform delay from [MinLatency, MaxLatency).
func (p *RandomPolicy) Latency() time.Duration {
	if p.MaxLatency <= p.MinLatency {
		return p.MinLatency
	}
	return p.MinLatency + rand.N(p.MaxLatency-p.MinLatency)
}

// FailRequest fails with probability FailRate.
func (p *RandomPolicy) FailRequest() bool {
	return rand.Float64() < p.FailRate
}

// FailReorder fails with probability ReorderRate.
func (p *RandomPolicy) FailReorder() bool {
	return rand.Float64() < p.ReorderRate
}

// NoFaults is a Policy with zero latency and no failures, for tests and
// for running the server as an ordinary API.
type NoFaults struct{}

func (NoFaults) Latency() time.Duration { return 0 }
func (NoFaults) FailRequest() bool      { return false }
func (NoFaults) FailReorder() bool      { return false }
