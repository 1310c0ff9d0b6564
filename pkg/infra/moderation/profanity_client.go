package moderation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/NeuralTrust/qa-service/pkg/infra/httpx"
	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

const (
	badWordsPath           = "/bad_words"
	defaultCensorCharacter = "*"
	apiKeyHeader           = "apikey"
)

// ProfanityClient calls the bad_words endpoint of the APILayer profanity filter.
type ProfanityClient struct {
	client    httpx.Client
	logger    *logrus.Logger
	config    Config
	policy    RetryPolicy
	breaker   httpx.CircuitBreaker
	onAttempt func()
}

func NewProfanityClient(logger *logrus.Logger, config Config, opts ...ProfanityClientOption) *ProfanityClient {
	c := &ProfanityClient{
		client: &http.Client{Timeout: httpx.DefaultTimeout},
		logger: logger,
		config: config,
		policy: DefaultRetryPolicy(),
		breaker: httpx.NewCircuitBreaker(
			"moderation",
			30*time.Second,
			5,
			httpx.WithSuccessFilter(httpx.IgnoreCanceled),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ProfanityClient) Check(ctx context.Context, text string) (string, error) {
	if err := c.config.Validate(); err != nil {
		return "", err
	}
	endpoint := c.config.endpoint()

	attempts := 0
	operation := func() (*upstreamReply, error) {
		attempts++
		if c.onAttempt != nil {
			c.onAttempt()
		}
		// An open breaker refuses the attempt without a network call but it
		// still spends one unit of the retry budget.
		reply, err := c.attempt(ctx, endpoint, text)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if c.policy.RetryOnServerError && reply.status >= http.StatusInternalServerError {
			return nil, &serverStatusError{reply: reply}
		}
		return reply, nil
	}
	notify := func(err error, next time.Duration) {
		c.logger.WithError(err).WithFields(logrus.Fields{
			"attempt":    attempts,
			"next_delay": next.String(),
		}).Warn("moderation request failed, retrying")
	}

	reply, err := backoff.RetryNotifyWithData(operation, c.policy.backOff(ctx), notify)
	if err != nil {
		var statusErr *serverStatusError
		if !errors.As(err, &statusErr) {
			c.logger.WithError(err).WithField("attempts", attempts).Error("moderation request failed")
			return "", &TransportError{Attempts: attempts, Err: err}
		}
		reply = statusErr.reply
	}

	censored, err := classify(reply.status, reply.body)
	if err != nil {
		c.logger.WithError(err).WithField("status", reply.status).Error("moderation request rejected")
		return "", err
	}
	return censored, nil
}

// attempt performs one exchange inside the circuit breaker. Only exchanges
// that produced no reply count as breaker failures; any HTTP status is
// returned for classification.
func (c *ProfanityClient) attempt(ctx context.Context, endpoint, text string) (*upstreamReply, error) {
	var reply *upstreamReply
	err := c.breaker.Execute(func() error {
		var err error
		reply, err = c.send(ctx, endpoint, text)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reply, nil
}

func (c *ProfanityClient) send(ctx context.Context, endpoint, text string) (*upstreamReply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.config.APIKey)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &upstreamReply{status: resp.StatusCode, body: body}, nil
}
