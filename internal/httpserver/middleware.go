package httpserver

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tasklist/internal/auth"
)

const (
	sessionCookie = "session_id"
	identityKey   = "identity"
)

// notAuthenticated is the exact body unauthenticated requests receive on
// protected endpoints. A struct keeps statusCode ahead of message on the
// wire.
type notAuthenticated struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// requireLogin is the authorization gate: every task-reading or
// task-mutating route passes through it before reaching the repository.
// Requests without a resolvable session identity are rejected.
func (s *Server) requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err == nil {
			if identity, rerr := s.sessions.Resolve(c.Request.Context(), token); rerr == nil {
				c.Set(identityKey, identity)
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, notAuthenticated{
			StatusCode: http.StatusUnauthorized,
			Message:    "not authenticated",
		})
	}
}

// currentIdentity reads the identity the gate stored for this request.
func currentIdentity(c *gin.Context) auth.Identity {
	value, _ := c.Get(identityKey)
	identity, _ := value.(auth.Identity)
	return identity
}

// RateLimiter applies a per-client-IP token bucket.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	var visitors = make(map[string]*rate.Limiter)
	var mu sync.Mutex

	getVisitor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		limiter, exists := visitors[ip]
		if !exists {
			limiter = rate.NewLimiter(r, b)
			visitors[ip] = limiter
		}
		return limiter
	}

	return func(c *gin.Context) {
		if !getVisitor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
