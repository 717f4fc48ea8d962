package nets

import (
	"net/http"
	"time"
)

// UserAgent is sent with every request that does not set its own.
const UserAgent = "github.com/reusee/aoc2019"

type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
) HTTPClient {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: userAgentTransport{
			RoundTripper: &http.Transport{
				DialContext:         dialer.DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

type userAgentTransport struct {
	http.RoundTripper
}

func (u userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return u.RoundTripper.RoundTrip(req)
}
