package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/vfg2006/sales-insight-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insight-api/pkg/log"
	"golang.org/x/time/rate"
)

// Tempo sem uso após o qual o limitador de um cliente é descartado
const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limita as requisições por endereço do cliente
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	interval time.Duration
	now      func() time.Time
}

// NewRateLimiter permite perMinute requisições por minuto para cada cliente.
// perMinute <= 0 desabilita o limite.
func NewRateLimiter(perMinute int) *RateLimiter {
	limit := rate.Inf
	burst := 1
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
		burst = perMinute
	}

	return &RateLimiter{
		clients:  make(map[string]*clientLimiter),
		limit:    limit,
		burst:    burst,
		interval: time.Minute,
		now:      time.Now,
	}
}

// Middleware recusa com 429 as requisições acima do limite
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.limit == rate.Inf {
				next.ServeHTTP(w, r)
				return
			}

			client := clientAddress(r)
			if !rl.allow(client) {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":        r.URL.Path,
					"client_addr": client,
				}).Warn("rate-limit: requisição recusada")

				w.Header().Set("Retry-After", strconv.Itoa(int(rl.interval.Seconds())))
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > limiterIdleTTL {
			delete(rl.clients, key)
		}
	}

	c, ok := rl.clients[client]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[client] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
