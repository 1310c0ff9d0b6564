package moderation

import (
	"github.com/NeuralTrust/qa-service/pkg/infra/httpx"
)

type ProfanityClientOption func(*ProfanityClient)

func WithHTTPClient(client httpx.Client) ProfanityClientOption {
	return func(c *ProfanityClient) {
		if client != nil {
			c.client = client
		}
	}
}

func WithRetryPolicy(policy RetryPolicy) ProfanityClientOption {
	return func(c *ProfanityClient) {
		c.policy = policy
	}
}

func WithCircuitBreaker(breaker httpx.CircuitBreaker) ProfanityClientOption {
	return func(c *ProfanityClient) {
		if breaker != nil {
			c.breaker = breaker
		}
	}
}

// WithAttemptObserver is called once per outbound exchange, retries included.
func WithAttemptObserver(observe func()) ProfanityClientOption {
	return func(c *ProfanityClient) {
		c.onAttempt = observe
	}
}
