package moderation

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/NeuralTrust/qa-service/pkg/infra/httpx"
	"github.com/NeuralTrust/qa-service/pkg/infra/httpx/mocks"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	cleanBody   = `{"content":"hello world","bad_words_total":0,"bad_words_list":[],"censored_content":"hello world"}`
	flaggedBody = `{"content":"what the hell","bad_words_total":1,"bad_words_list":[{"original":"hell","word":"hell",` +
		`"deviations":0,"info":2,"start":9,"end":13,"replacedLen":4}],"censored_content":"what the ****"}`
)

func fastPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2,
	}
}

func newTestClient(t *testing.T, baseURL string, opts ...ProfanityClientOption) (*ProfanityClient, *test.Hook, *int32) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	var attempts int32
	opts = append([]ProfanityClientOption{
		WithRetryPolicy(fastPolicy()),
		WithAttemptObserver(func() { atomic.AddInt32(&attempts, 1) }),
	}, opts...)
	client := NewProfanityClient(logger, Config{BaseURL: baseURL, APIKey: "test-key"}, opts...)
	return client, hook, &attempts
}

func newUpstream(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestProfanityClient_CleanTextUnchanged(t *testing.T) {
	server, hits := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bad_words", r.URL.Path)
		assert.Equal(t, "*", r.URL.Query().Get("censor_character"))
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Equal(t, "hello world", string(body))
		respond(http.StatusOK, cleanBody)(w, r)
	})
	client, _, _ := newTestClient(t, server.URL+"/")

	censored, err := client.Check(context.Background(), "hello world")

	require.NoError(t, err)
	assert.Equal(t, "hello world", censored)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestProfanityClient_FlaggedTermMasked(t *testing.T) {
	server, _ := newUpstream(t, respond(http.StatusOK, flaggedBody))
	client, _, _ := newTestClient(t, server.URL)

	censored, err := client.Check(context.Background(), "what the hell")

	require.NoError(t, err)
	assert.Equal(t, "what the ****", censored)
}

func TestProfanityClient_CustomCensorCharacter(t *testing.T) {
	server, _ := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "#", r.URL.Query().Get("censor_character"))
		respond(http.StatusOK, cleanBody)(w, r)
	})
	logger, _ := test.NewNullLogger()
	client := NewProfanityClient(logger, Config{BaseURL: server.URL, APIKey: "k", CensorCharacter: "#"})

	_, err := client.Check(context.Background(), "hello world")
	assert.NoError(t, err)
}

func TestProfanityClient_TransportFailureExhaustsRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, hook, attempts := newTestClient(t, baseURL)

	_, err := client.Check(context.Background(), "hello")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 4, transportErr.Attempts)
	assert.Equal(t, int32(4), atomic.LoadInt32(attempts))

	var delays []interface{}
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Message == "moderation request failed, retrying" {
			delays = append(delays, entry.Data["next_delay"])
		}
	}
	assert.Equal(t, []interface{}{"1ms", "2ms", "4ms"}, delays)
}

func TestProfanityClient_EachCallGetsFullRetryBudget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client, _, attempts := newTestClient(t, baseURL)

	for call := 1; call <= 2; call++ {
		_, err := client.Check(context.Background(), "hello")

		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr, "call %d", call)
		assert.Equal(t, 4, transportErr.Attempts, "call %d", call)
	}
	assert.Equal(t, int32(8), atomic.LoadInt32(attempts))
}

func TestProfanityClient_RecoversAfterTransportFailure(t *testing.T) {
	httpClient := new(mocks.MockHTTPClient)
	httpClient.On("Do", mock.Anything).Return(nil, errors.New("connection reset by peer")).Once()
	httpClient.On("Do", mock.Anything).Return(mocks.Response(http.StatusOK, flaggedBody), nil).Once()

	client, _, attempts := newTestClient(t, "https://api.example.com", WithHTTPClient(httpClient))

	censored, err := client.Check(context.Background(), "what the hell")

	require.NoError(t, err)
	assert.Equal(t, "what the ****", censored)
	assert.Equal(t, int32(2), atomic.LoadInt32(attempts))
	httpClient.AssertNumberOfCalls(t, "Do", 2)
}

func TestProfanityClient_RecoversAfterDroppedConnection(t *testing.T) {
	var calls int32
	server, _ := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			if hijacker, ok := w.(http.Hijacker); ok {
				if conn, _, err := hijacker.Hijack(); err == nil {
					_ = conn.Close()
				}
			}
			return
		}
		respond(http.StatusOK, cleanBody)(w, r)
	})
	client, _, _ := newTestClient(t, server.URL)

	censored, err := client.Check(context.Background(), "hello world")

	require.NoError(t, err)
	assert.Equal(t, "hello world", censored)
}

func TestProfanityClient_ClientErrorNotRetried(t *testing.T) {
	server, hits := newUpstream(t, respond(http.StatusBadRequest, `{"message":"Invalid input"}`))
	client, _, _ := newTestClient(t, server.URL)

	_, err := client.Check(context.Background(), "hello")

	var clientErr *UpstreamClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusBadRequest, clientErr.Status)
	assert.Equal(t, "Invalid input", clientErr.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestProfanityClient_ClientErrorNotRetriedWithServerRetries(t *testing.T) {
	server, hits := newUpstream(t, respond(http.StatusUnauthorized, `{"message":"No API key found in request"}`))
	policy := fastPolicy()
	policy.RetryOnServerError = true
	client, _, _ := newTestClient(t, server.URL, WithRetryPolicy(policy))

	_, err := client.Check(context.Background(), "hello")

	var clientErr *UpstreamClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Equal(t, http.StatusUnauthorized, clientErr.Status)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestProfanityClient_ServerError(t *testing.T) {
	server, hits := newUpstream(t, respond(http.StatusInternalServerError, `{"message":"Something went wrong"}`))
	client, _, _ := newTestClient(t, server.URL)

	_, err := client.Check(context.Background(), "hello")

	var serverErr *UpstreamServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusInternalServerError, serverErr.Status)
	assert.Equal(t, "Something went wrong", serverErr.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestProfanityClient_ServerErrorRetriedWhenEnabled(t *testing.T) {
	server, hits := newUpstream(t, respond(http.StatusServiceUnavailable, `{"message":"overloaded"}`))
	policy := fastPolicy()
	policy.RetryOnServerError = true
	client, _, _ := newTestClient(t, server.URL, WithRetryPolicy(policy))

	_, err := client.Check(context.Background(), "hello")

	var serverErr *UpstreamServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, http.StatusServiceUnavailable, serverErr.Status)
	assert.Equal(t, "overloaded", serverErr.Message)
	assert.Equal(t, int32(4), atomic.LoadInt32(hits))

	var transportErr *TransportError
	assert.False(t, errors.As(err, &transportErr))
}

func TestProfanityClient_ServerErrorThenSuccessWhenEnabled(t *testing.T) {
	var calls int32
	server, _ := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			respond(http.StatusBadGateway, "")(w, r)
			return
		}
		respond(http.StatusOK, cleanBody)(w, r)
	})
	policy := fastPolicy()
	policy.RetryOnServerError = true
	client, _, _ := newTestClient(t, server.URL, WithRetryPolicy(policy))

	censored, err := client.Check(context.Background(), "hello world")

	require.NoError(t, err)
	assert.Equal(t, "hello world", censored)
}

func TestProfanityClient_MalformedSuccessBody(t *testing.T) {
	server, hits := newUpstream(t, respond(http.StatusOK, `{"content": "hel`))
	client, _, _ := newTestClient(t, server.URL)

	var (
		censored string
		err      error
	)
	assert.NotPanics(t, func() {
		censored, err = client.Check(context.Background(), "hello")
	})

	var decodeErr *ResponseDecodeError
	assert.ErrorAs(t, err, &decodeErr)
	assert.Empty(t, censored)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestProfanityClient_NotConfigured(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{name: "missing endpoint", config: Config{APIKey: "key"}},
		{name: "missing api key", config: Config{BaseURL: "https://api.example.com"}},
		{name: "invalid endpoint", config: Config{BaseURL: "not a url", APIKey: "key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpClient := new(mocks.MockHTTPClient)
			logger, _ := test.NewNullLogger()
			client := NewProfanityClient(logger, tt.config, WithHTTPClient(httpClient))

			_, err := client.Check(context.Background(), "hello")

			assert.ErrorIs(t, err, ErrModerationNotConfigured)
			httpClient.AssertNotCalled(t, "Do", mock.Anything)
		})
	}
}

func TestProfanityClient_ContextCanceled(t *testing.T) {
	httpClient := new(mocks.MockHTTPClient)
	httpClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused"))

	policy := fastPolicy()
	policy.BaseDelay = time.Minute
	policy.MaxDelay = time.Minute
	client, _, attempts := newTestClient(t, "https://api.example.com", WithHTTPClient(httpClient), WithRetryPolicy(policy))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Check(ctx, "hello")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(1), atomic.LoadInt32(attempts))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestProfanityClient_NoRetriesWhenDisabled(t *testing.T) {
	httpClient := new(mocks.MockHTTPClient)
	httpClient.On("Do", mock.Anything).Return(nil, errors.New("i/o timeout"))

	policy := fastPolicy()
	policy.MaxRetries = 0
	client, _, _ := newTestClient(t, "https://api.example.com", WithHTTPClient(httpClient), WithRetryPolicy(policy))

	_, err := client.Check(context.Background(), "hello")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 1, transportErr.Attempts)
	httpClient.AssertNumberOfCalls(t, "Do", 1)
}

func TestProfanityClient_OpenBreakerKeepsRetryBudget(t *testing.T) {
	httpClient := new(mocks.MockHTTPClient)
	httpClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused"))

	client, _, _ := newTestClient(t, "https://api.example.com",
		WithHTTPClient(httpClient),
		WithCircuitBreaker(httpx.NewCircuitBreaker("moderation-test", time.Minute, 2)),
	)

	_, err := client.Check(context.Background(), "hello")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 4, transportErr.Attempts)
	assert.True(t, httpx.IsOpen(err))
	httpClient.AssertNumberOfCalls(t, "Do", 2)
}

func TestProfanityClient_ServerErrorsDoNotOpenBreaker(t *testing.T) {
	server, hits := newUpstream(t, respond(http.StatusInternalServerError, `{"message":"Something went wrong"}`))
	client, _, _ := newTestClient(t, server.URL)

	for call := 1; call <= 6; call++ {
		_, err := client.Check(context.Background(), "hello")

		var serverErr *UpstreamServerError
		require.ErrorAs(t, err, &serverErr, "call %d", call)
		assert.Equal(t, http.StatusInternalServerError, serverErr.Status)
	}
	assert.Equal(t, int32(6), atomic.LoadInt32(hits))
}

func TestProfanityClient_ConcurrentChecks(t *testing.T) {
	server, hits := newUpstream(t, respond(http.StatusOK, cleanBody))
	client, _, _ := newTestClient(t, server.URL)

	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func() {
			_, err := client.Check(context.Background(), "hello world")
			errs <- err
		}()
	}
	for i := 0; i < 20; i++ {
		assert.NoError(t, <-errs)
	}
	assert.Equal(t, int32(20), atomic.LoadInt32(hits))
}
