package httpx

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircuitBreaker(t *testing.T) {
	breaker := NewCircuitBreaker("moderation", 30*time.Second, 3)

	wrapper, ok := breaker.(*circuitBreakerWrapper)
	require.True(t, ok)
	assert.Equal(t, "moderation", wrapper.breaker.Name())
	assert.Equal(t, gobreaker.StateClosed, wrapper.breaker.State())
}

func TestCircuitBreaker_ExecuteWrapsErrors(t *testing.T) {
	breaker := NewCircuitBreaker("wrap-test", 30*time.Second, 3)
	cause := errors.New("connection reset")

	err := breaker.Execute(func() error { return cause })

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "breaker (wrap-test)")
	assert.NoError(t, breaker.Execute(func() error { return nil }))
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := NewCircuitBreaker("open-test", 30*time.Second, 2)
	wrapper := breaker.(*circuitBreakerWrapper) //nolint:errcheck

	for i := 0; i < 2; i++ {
		assert.Error(t, breaker.Execute(func() error { return errors.New("failure") }))
	}
	assert.Equal(t, gobreaker.StateOpen, wrapper.breaker.State())

	called := false
	err := breaker.Execute(func() error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.True(t, IsOpen(err))
	assert.Contains(t, err.Error(), "circuit breaker is open")
}

func TestCircuitBreaker_Recovers(t *testing.T) {
	breaker := NewCircuitBreaker("recovery-test", 50*time.Millisecond, 1)

	assert.Error(t, breaker.Execute(func() error { return errors.New("trigger") }))
	time.Sleep(100 * time.Millisecond)

	assert.NoError(t, breaker.Execute(func() error { return nil }))
}

func TestCircuitBreaker_SuccessFilter(t *testing.T) {
	rejected := errors.New("rejected by upstream")
	breaker := NewCircuitBreaker("filter-test", 30*time.Second, 1, WithSuccessFilter(func(err error) bool {
		return err == nil || errors.Is(err, rejected)
	}))
	wrapper := breaker.(*circuitBreakerWrapper) //nolint:errcheck

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, breaker.Execute(func() error { return rejected }), rejected)
	}
	assert.Equal(t, gobreaker.StateClosed, wrapper.breaker.State())
}

func TestCircuitBreaker_IgnoreCanceled(t *testing.T) {
	breaker := NewCircuitBreaker("canceled-test", 30*time.Second, 1, WithSuccessFilter(IgnoreCanceled))
	wrapper := breaker.(*circuitBreakerWrapper) //nolint:errcheck

	for i := 0; i < 3; i++ {
		err := breaker.Execute(func() error { return fmt.Errorf("failed to send request: %w", context.Canceled) })
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, gobreaker.StateClosed, wrapper.breaker.State())

	_ = breaker.Execute(func() error { return errors.New("connection refused") }) //nolint:errcheck
	assert.Equal(t, gobreaker.StateOpen, wrapper.breaker.State())
}

func TestCircuitBreaker_StateLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	breaker := NewCircuitBreaker("log-test", 30*time.Second, 1, WithStateLogger(logger))

	_ = breaker.Execute(func() error { return errors.New("boom") }) //nolint:errcheck

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "circuit breaker state changed", hook.LastEntry().Message)
	assert.Equal(t, "open", hook.LastEntry().Data["to"])
}

func TestCircuitBreaker_ConcurrentAccess(t *testing.T) {
	breaker := NewCircuitBreaker("concurrent-test", 30*time.Second, 100)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			err := breaker.Execute(func() error {
				if id%2 == 0 {
					return nil
				}
				return errors.New("failure")
			})
			if err != nil {
				assert.Contains(t, err.Error(), "concurrent-test")
			}
		}(i)
	}
	wg.Wait()
}
