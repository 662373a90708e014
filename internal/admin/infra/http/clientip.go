package http

import (
	"net"
	"net/http"
	"strings"
)

const (
	forwardedForHeader = "X-Forwarded-For"
	realIPHeader       = "X-Real-IP"
)

// ClientIPResolver reads forwarded headers only behind a trusted proxy, any client can set them otherwise.
type ClientIPResolver struct {
	trustProxyHeaders bool
}

func NewClientIPResolver(trustProxyHeaders bool) ClientIPResolver {
	return ClientIPResolver{trustProxyHeaders: trustProxyHeaders}
}

func (c ClientIPResolver) Resolve(r *http.Request) string {
	if c.trustProxyHeaders {
		if ip := proxyHeaderIP(r); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func proxyHeaderIP(r *http.Request) string {
	if forwarded := r.Header.Get(forwardedForHeader); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	return strings.TrimSpace(r.Header.Get(realIPHeader))
}
