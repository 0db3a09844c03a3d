package web

import (
	"context"
	"net"
	"net/http"

	"github.com/JonMunkholm/catalogdash/internal/catalog"
)

// WithRequestMetadata adds the client IP and User-Agent to ctx so dashboard
// log lines can be traced back to a browser.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	ctx = catalog.ContextWithIPAddress(ctx, clientIP(r))
	ctx = catalog.ContextWithUserAgent(ctx, r.UserAgent())
	return ctx
}

// clientIP returns the host part of RemoteAddr, which TrustedRealIP has
// already rewritten for requests from trusted proxies.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
