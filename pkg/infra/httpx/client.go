package httpx

import "net/http"

// Client is the transport used by outbound integrations. Implementations must be
// safe for concurrent use.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
