package app

import (
	"net"
	"net/http"
	"time"
)

// newWebhookHTTPClient returns an HTTP client tuned for a single long-lived
// webhook conversation. The attempt timeout is enforced per request via
// context, so no client-level timeout is set here.
func newWebhookHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{Transport: transport}
}
