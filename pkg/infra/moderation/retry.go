package moderation

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxRetries          = 3
	DefaultBaseDelay           = time.Second
	DefaultMaxDelay            = 30 * time.Second
	DefaultMultiplier          = 2.0
	DefaultRandomizationFactor = 0.5
)

// RetryPolicy bounds the retries of a single Check call. Only exchanges that
// produced no response are retried, plus 5xx replies when RetryOnServerError
// is set.
type RetryPolicy struct {
	MaxRetries          uint64
	BaseDelay           time.Duration
	MaxDelay            time.Duration
	Multiplier          float64
	RandomizationFactor float64
	RetryOnServerError  bool
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:          DefaultMaxRetries,
		BaseDelay:           DefaultBaseDelay,
		MaxDelay:            DefaultMaxDelay,
		Multiplier:          DefaultMultiplier,
		RandomizationFactor: DefaultRandomizationFactor,
	}
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.BaseDelay <= 0 {
		p.BaseDelay = DefaultBaseDelay
	}
	if p.MaxDelay < p.BaseDelay {
		p.MaxDelay = p.BaseDelay
	}
	if p.Multiplier < 1 {
		p.Multiplier = DefaultMultiplier
	}
	if p.RandomizationFactor < 0 || p.RandomizationFactor > 1 {
		p.RandomizationFactor = 0
	}
	return p
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOffContext {
	p = p.normalized()
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.MaxInterval = p.MaxDelay
	b.Multiplier = p.Multiplier
	b.RandomizationFactor = p.RandomizationFactor
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx)
}

// serverStatusError marks a 5xx reply as retryable while keeping the reply
// for classification once the budget runs out.
type serverStatusError struct {
	reply *upstreamReply
}

func (e *serverStatusError) Error() string {
	return fmt.Sprintf("moderation service returned status %d", e.reply.status)
}
