package httpapi

import (
	"net/http"
	"net/netip"
	"strings"
)

// clientIPHeaders are consulted in order before RemoteAddr.
var clientIPHeaders = []string{"Fly-Client-IP", "X-Forwarded-For", "X-Real-IP"}

// resolveClientIP returns the address used to key per-client limits.
func resolveClientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		if ip, ok := parseClientIP(r.Header.Get(header)); ok {
			return ip
		}
	}
	if ip, ok := parseClientIP(r.RemoteAddr); ok {
		return ip
	}
	return "unknown"
}

// parseClientIP accepts a bare address, host:port, or a comma list whose first entry wins.
func parseClientIP(raw string) (string, bool) {
	first, _, _ := strings.Cut(raw, ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return "", false
	}
	if addrPort, err := netip.ParseAddrPort(first); err == nil {
		return addrPort.Addr().Unmap().String(), true
	}
	if addr, err := netip.ParseAddr(first); err == nil {
		return addr.Unmap().String(), true
	}
	return "", false
}
