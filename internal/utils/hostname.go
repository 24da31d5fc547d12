package utils

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// NormalizeDomainKey reduces a raw domain input to the bare lowercase hostname
// used as the tenant key. Schemes, paths, query strings and ports are stripped
// when accidentally present. An empty result means the input was unusable.
func NormalizeDomainKey(raw string) string {
	key := strings.TrimSpace(strings.ToLower(raw))
	if key == "" {
		return ""
	}

	if strings.Contains(key, "://") {
		if u, err := url.Parse(key); err == nil && u.Hostname() != "" {
			return u.Hostname()
		}
	}

	// Drop any path/query fragment pasted alongside the hostname.
	if i := strings.IndexAny(key, "/?#"); i >= 0 {
		key = key[:i]
	}

	if host, _, err := net.SplitHostPort(key); err == nil {
		key = host
	}

	return key
}

// HostFromReferrer extracts the bare hostname from a Referer header value.
// Referrers are best-effort input: any parse failure is an error the caller
// degrades from, never propagates.
func HostFromReferrer(referrer string) (string, error) {
	if strings.TrimSpace(referrer) == "" {
		return "", fmt.Errorf("empty referrer")
	}
	u, err := url.Parse(referrer)
	if err != nil {
		return "", fmt.Errorf("unparseable referrer %q: %w", referrer, err)
	}
	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("referrer %q has no hostname", referrer)
	}
	return strings.ToLower(host), nil
}
