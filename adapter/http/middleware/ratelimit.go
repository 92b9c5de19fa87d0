package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	domainerror "lingua-proxy/domain/error"
	"lingua-proxy/domain/port"
)

// RateLimiter enforces a global and a per-IP token bucket over the handler.
// Disabled by default; a disabled limiter passes everything through so the
// single-attempt-per-user-action semantics are unchanged.
type RateLimiter struct {
	mu           sync.RWMutex
	global       *rate.Limiter
	perIP        map[string]*rate.Limiter
	configGetter func() port.RateLimitConfig
}

// NewRateLimiter creates a rate limiter over the given config provider.
func NewRateLimiter(config port.ConfigProvider) *RateLimiter {
	configGetter := config.GetRateLimit
	rl := &RateLimiter{
		perIP:        make(map[string]*rate.Limiter),
		configGetter: configGetter,
	}
	cfg := configGetter()
	if cfg.Enabled {
		rl.global = rate.NewLimiter(rate.Limit(cfg.GlobalRPS), burst(cfg.GlobalRPS, cfg.BurstFactor))
	}
	return rl
}

// Middleware wraps next with the rate limit check.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			domainerror.WriteJSONError(w, domainerror.NewRateLimited())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	cfg := rl.configGetter()
	if !cfg.Enabled {
		return true
	}

	rl.mu.RLock()
	global := rl.global
	rl.mu.RUnlock()
	if global != nil && !global.Allow() {
		return false
	}

	return rl.ipLimiter(ip, cfg).Allow()
}

func (rl *RateLimiter) ipLimiter(ip string, cfg port.RateLimitConfig) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.perIP[ip]
	rl.mu.RUnlock()
	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if limiter, exists = rl.perIP[ip]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(rate.Limit(cfg.PerIPRPS), burst(cfg.PerIPRPS, cfg.BurstFactor))
	rl.perIP[ip] = limiter
	return limiter
}

func burst(rps, factor float64) int {
	if factor <= 0 {
		factor = 1.5
	}
	b := int(rps * factor)
	if b < 1 {
		b = 1
	}
	return b
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
