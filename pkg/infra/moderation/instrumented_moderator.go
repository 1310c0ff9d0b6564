package moderation

import (
	"context"
	"errors"
	"time"

	"github.com/NeuralTrust/qa-service/pkg/infra/prometheus"
)

const (
	outcomeSuccess        = "success"
	outcomeClientError    = "client_error"
	outcomeServerError    = "server_error"
	outcomeTransportError = "transport_error"
	outcomeDecodeError    = "decode_error"
	outcomeNotConfigured  = "not_configured"
	outcomeOther          = "other"
)

type InstrumentedModerator struct {
	next Moderator
}

func NewInstrumentedModerator(next Moderator) *InstrumentedModerator {
	return &InstrumentedModerator{next: next}
}

func (m *InstrumentedModerator) Check(ctx context.Context, text string) (string, error) {
	start := time.Now()
	censored, err := m.next.Check(ctx, text)
	if prometheus.Config.EnableModeration {
		prometheus.ModerationRequestsTotal.WithLabelValues(Outcome(err)).Inc()
		prometheus.ModerationLatency.Observe(float64(time.Since(start).Milliseconds()))
	}
	return censored, err
}

// Outcome names the error kind of a Check result for metrics and logs.
func Outcome(err error) string {
	var (
		clientErr    *UpstreamClientError
		serverErr    *UpstreamServerError
		transportErr *TransportError
		decodeErr    *ResponseDecodeError
	)
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.As(err, &clientErr):
		return outcomeClientError
	case errors.As(err, &serverErr):
		return outcomeServerError
	case errors.As(err, &transportErr):
		return outcomeTransportError
	case errors.As(err, &decodeErr):
		return outcomeDecodeError
	case errors.Is(err, ErrModerationNotConfigured):
		return outcomeNotConfigured
	default:
		return outcomeOther
	}
}

// IsModerationError reports whether err is one of the error kinds a Check
// call can produce.
func IsModerationError(err error) bool {
	switch Outcome(err) {
	case outcomeSuccess, outcomeOther:
		return false
	}
	return true
}
