// Package http builds the outbound HTTP client shared by the market data adapters.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client for external API calls.
//
// http.DefaultClient has no timeout, so adapters always get one of these.
// The transport honours HTTP_PROXY/HTTPS_PROXY, keeps idle connections to the
// provider warm and bounds dial, TLS and header waits separately from the
// overall request timeout. When userAgent is non-empty it is set on every
// request that does not carry one.
func NewHTTPClient(timeout time.Duration, userAgent string) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	var rt http.RoundTripper = t
	if userAgent != "" {
		rt = &userAgentTransport{next: t, userAgent: userAgent}
	}
	return &http.Client{Timeout: timeout, Transport: rt}
}

type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (u *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return u.next.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", u.userAgent)
	return u.next.RoundTrip(r)
}
