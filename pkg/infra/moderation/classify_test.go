package moderation

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantCensored string
		wantErr      interface{}
		wantStatus   int
		wantMessage  string
	}{
		{
			name:         "clean text",
			status:       http.StatusOK,
			body:         `{"content":"hello world","bad_words_total":0,"bad_words_list":[],"censored_content":"hello world"}`,
			wantCensored: "hello world",
		},
		{
			name:   "flagged text",
			status: http.StatusOK,
			body: `{"content":"you shit","bad_words_total":1,"bad_words_list":[{"original":"shit","word":"shit",` +
				`"deviations":0,"info":2,"start":4,"end":8,"replacedLen":4}],"censored_content":"you ****"}`,
			wantCensored: "you ****",
		},
		{
			name:    "malformed success body",
			status:  http.StatusOK,
			body:    `not json`,
			wantErr: &ResponseDecodeError{},
		},
		{
			name:    "success body without censored content",
			status:  http.StatusOK,
			body:    `{"content":"hello"}`,
			wantErr: &ResponseDecodeError{},
		},
		{
			name:        "bad request",
			status:      http.StatusBadRequest,
			body:        `{"message":"Invalid authentication credentials"}`,
			wantErr:     &UpstreamClientError{},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid authentication credentials",
		},
		{
			name:        "rate limited with plain body",
			status:      http.StatusTooManyRequests,
			body:        "  quota exceeded \n",
			wantErr:     &UpstreamClientError{},
			wantStatus:  http.StatusTooManyRequests,
			wantMessage: "quota exceeded",
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        `{"message":"internal failure"}`,
			wantErr:     &UpstreamServerError{},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal failure",
		},
		{
			name:        "server error with empty body",
			status:      http.StatusBadGateway,
			body:        "",
			wantErr:     &UpstreamServerError{},
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Bad Gateway",
		},
		{
			name:        "redirect is a contract violation",
			status:      http.StatusMovedPermanently,
			body:        `{"message":"moved"}`,
			wantErr:     &UpstreamServerError{},
			wantStatus:  http.StatusMovedPermanently,
			wantMessage: "moved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			censored, err := classify(tt.status, []byte(tt.body))

			switch want := tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
				assert.Equal(t, tt.wantCensored, censored)
			case *ResponseDecodeError:
				assert.ErrorAs(t, err, &want)
			case *UpstreamClientError:
				require.ErrorAs(t, err, &want)
				assert.Equal(t, tt.wantStatus, want.Status)
				assert.Equal(t, tt.wantMessage, want.Message)
			case *UpstreamServerError:
				require.ErrorAs(t, err, &want)
				assert.Equal(t, tt.wantStatus, want.Status)
				assert.Equal(t, tt.wantMessage, want.Message)
			}
		})
	}
}

func TestExtractMessage_NonStringMessage(t *testing.T) {
	assert.Equal(t, `{"message":42}`, extractMessage(http.StatusBadRequest, []byte(`{"message":42}`)))
}
