package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"

	"github.com/glowmora/storefront-api/models"
)

var (
	// ErrDeclined means the provider rejected the charge.
	ErrDeclined = errors.New("payment: declined")
	// ErrUnavailable means the provider is unreachable or the breaker is open.
	ErrUnavailable = errors.New("payment: provider unavailable")
)

// Provider charges a payment method. Charge must honor ctx cancellation and
// deadlines; a cancelled charge returns ctx.Err().
type Provider interface {
	Charge(ctx context.Context, amount float64, method models.PaymentMethod) (ref string, err error)
}

// Simulated is a stand-in provider with configurable latency. Unlike a fixed
// sleep it aborts as soon as the caller's context is done.
type Simulated struct {
	Latency time.Duration
	// Decline forces every charge to fail; used by tests.
	Decline bool
}

func (p *Simulated) Charge(ctx context.Context, amount float64, method models.PaymentMethod) (string, error) {
	if p.Latency > 0 {
		timer := time.NewTimer(p.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	if p.Decline {
		return "", ErrDeclined
	}
	// Cash on delivery is collected later; no authorization happens here.
	return "pay_" + uuid.NewString(), nil
}

// Breaker wraps a provider in a circuit breaker so a failing gateway stops
// being hammered by new checkouts.
type Breaker struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker[string]
}

func NewBreaker(provider Provider) *Breaker {
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:    "payment",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &Breaker{provider: provider, cb: cb}
}

func (b *Breaker) Charge(ctx context.Context, amount float64, method models.PaymentMethod) (string, error) {
	ref, err := b.cb.Execute(func() (string, error) {
		return b.provider.Charge(ctx, amount, method)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return ref, err
}
