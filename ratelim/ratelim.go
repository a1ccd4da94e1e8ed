package ratelim

import (
	"net"
	"net/http"
	"sync"

	"mixie/utils"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"
)

// RateLimiter hands out a token bucket per client address.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    rate.Limit(5),
		burst:    10,
	}
}

func (rl *RateLimiter) limiter(addr string) *rate.Limiter {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	lim, ok := rl.visitors[host]
	if !ok {
		lim = rate.NewLimiter(rl.limit, rl.burst)
		rl.visitors[host] = lim
	}
	return lim
}

// Limit rejects requests over the per-client budget with 429.
func (rl *RateLimiter) Limit(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !rl.limiter(r.RemoteAddr).Allow() {
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too Many Requests")
			return
		}
		next(w, r, ps)
	}
}

var defaultLimiter = NewRateLimiter()

// RateLimit wraps a handler with the process-wide default limiter.
func RateLimit(next httprouter.Handle) httprouter.Handle {
	return defaultLimiter.Limit(next)
}
