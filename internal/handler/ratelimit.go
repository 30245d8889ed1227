package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// SolveLimiter caps how often solves are started across all clients. The page
// and JSON routes draw from the same bucket.
type SolveLimiter struct {
	limiter *rate.Limiter
}

// NewSolveLimiter creates a limiter of limit solves per second. A non-positive
// limit disables limiting.
func NewSolveLimiter(limit float64, burst int) *SolveLimiter {
	if limit <= 0 {
		return &SolveLimiter{}
	}
	return &SolveLimiter{limiter: rate.NewLimiter(rate.Limit(limit), burst)}
}

func (l *SolveLimiter) allow(ctx *gin.Context) bool {
	if l.limiter == nil || l.limiter.Allow() {
		return true
	}
	log.Warn().Str("path", ctx.FullPath()).Msg("solve rate limit exceeded")
	return false
}

// JSON answers 429 with a JSON error when the limit is exceeded.
func (l *SolveLimiter) JSON() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.allow(ctx) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		ctx.Next()
	}
}

// Page renders the solver page with the failure banner when the limit is exceeded.
func (l *SolveLimiter) Page() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.allow(ctx) {
			ctx.HTML(http.StatusTooManyRequests, "index.html", gin.H{"Result": nil})
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
