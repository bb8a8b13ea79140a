package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/utils/response"
)

// RateLimiter counts an attempt for subject and reports whether it is allowed,
// the attempts left in the window and, when denied, the seconds until the next
// attempt is accepted.
type RateLimiter interface {
	CheckRateLimit(ctx context.Context, subject string) (allowed bool, remaining int, retryAfter int, err error)
}

// RateLimit limits requests per client address, resolved by ClientIP. When the
// limiter itself fails the request is let through.
func RateLimit(limiter RateLimiter, trustedProxies []netip.Prefix) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			logger := LoggerFromContext(r.Context())
			subject := ClientIP(r, trustedProxies)

			allowed, remaining, retryAfter, err := limiter.CheckRateLimit(r.Context(), subject)
			if err != nil {
				logger.Error("Rate limit check failed", slog.String("subject", subject), slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if !allowed {
				logger.Warn("Rate limit exceeded", slog.String("subject", subject), slog.Int("retryAfter", retryAfter))
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				response.Error(w, errors.TooManyRequestsError("Too many requests, please try again later"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ParseTrustedProxies accepts CIDR ranges or single addresses.
func ParseTrustedProxies(entries []string) ([]netip.Prefix, error) {

	prefixes := make([]netip.Prefix, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}

	return prefixes, nil
}

// ClientIP returns the peer address. X-Forwarded-For is only read when the peer
// is a trusted proxy, and then the rightmost hop that is not itself trusted wins.
func ClientIP(r *http.Request, trustedProxies []netip.Prefix) string {

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if !isTrusted(host, trustedProxies) {
		return host
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}

		if _, err := netip.ParseAddr(hop); err != nil {
			return host
		}

		if !isTrusted(hop, trustedProxies) {
			return hop
		}
	}

	return host
}

func isTrusted(ip string, trustedProxies []netip.Prefix) bool {

	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, prefix := range trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}

	return false
}
