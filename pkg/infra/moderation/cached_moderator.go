package moderation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/qa-service/pkg/infra/cache"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const defaultExchangeTimeout = 2 * time.Minute

// CachedModerator remembers successful results per input text. Failures are
// never cached and cache outages fall through to the wrapped moderator.
type CachedModerator struct {
	next            Moderator
	cache           cache.Client
	local           *cache.TTLMap
	ttl             time.Duration
	exchangeTimeout time.Duration
	logger          *logrus.Logger
	group           singleflight.Group
}

type CachedModeratorOption func(*CachedModerator)

// WithExchangeTimeout bounds a shared upstream exchange, which no longer
// follows any single caller's context.
func WithExchangeTimeout(timeout time.Duration) CachedModeratorOption {
	return func(m *CachedModerator) {
		if timeout > 0 {
			m.exchangeTimeout = timeout
		}
	}
}

func NewCachedModerator(
	next Moderator,
	cacheClient cache.Client,
	ttl time.Duration,
	logger *logrus.Logger,
	opts ...CachedModeratorOption,
) *CachedModerator {
	local := cacheClient.GetTTLMap(cache.ModerationTTLName)
	if local == nil {
		local = cacheClient.CreateTTLMap(cache.ModerationTTLName, ttl)
	}
	m := &CachedModerator{
		next:            next,
		cache:           cacheClient,
		local:           local,
		ttl:             ttl,
		exchangeTimeout: defaultExchangeTimeout,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *CachedModerator) Check(ctx context.Context, text string) (string, error) {
	key := cacheKey(text)
	if censored, ok := m.local.Get(key); ok {
		return censored, nil
	}

	censored, err := m.cache.Get(ctx, key)
	switch {
	case err == nil:
		m.local.Set(key, censored)
		return censored, nil
	case !errors.Is(err, cache.ErrMiss):
		m.logger.WithError(err).Warn("moderation cache lookup failed")
	}

	// Concurrent checks of the same text share one exchange. A caller that
	// gives up leaves it running for the others.
	ch := m.group.DoChan(key, func() (interface{}, error) {
		shared, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.exchangeTimeout)
		defer cancel()

		censored, err := m.next.Check(shared, text)
		if err != nil {
			return "", err
		}
		m.local.Set(key, censored)
		if err := m.cache.Set(shared, key, censored, m.ttl); err != nil {
			m.logger.WithError(err).Warn("failed to store moderation result")
		}
		return censored, nil
	})

	select {
	case <-ctx.Done():
		return "", &TransportError{Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		censored, ok := res.Val.(string)
		if !ok {
			return "", fmt.Errorf("unexpected moderation cache value %T", res.Val)
		}
		return censored, nil
	}
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf(cache.ModerationKeyPattern, hex.EncodeToString(sum[:]))
}
