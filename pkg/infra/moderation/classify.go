package moderation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/valyala/fastjson"
)

var errMissingCensoredContent = errors.New("censored_content missing from response")

// classify turns one upstream reply into either censored text or a typed error.
func classify(status int, body []byte) (string, error) {
	switch {
	case status >= 200 && status < 300:
		var payload badWordsPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return "", &ResponseDecodeError{Err: err}
		}
		if payload.CensoredContent == nil {
			return "", &ResponseDecodeError{Err: errMissingCensoredContent}
		}
		return *payload.CensoredContent, nil
	case status >= 400 && status < 500:
		return "", &UpstreamClientError{Status: status, Message: extractMessage(status, body)}
	default:
		return "", &UpstreamServerError{Status: status, Message: extractMessage(status, body)}
	}
}

// extractMessage reads the "message" field of an error body. Bodies that are not
// JSON or carry no message fall back to the raw text, then to the status text.
func extractMessage(status int, body []byte) string {
	var p fastjson.Parser
	if v, err := p.ParseBytes(body); err == nil {
		if msg := v.GetStringBytes("message"); len(msg) > 0 {
			return string(msg)
		}
	}
	if raw := strings.TrimSpace(string(body)); raw != "" {
		return raw
	}
	return http.StatusText(status)
}
