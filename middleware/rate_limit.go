package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tripgo-web/logging"
)

// RateLimiter — скользящее окно попыток по ключу (IP). Память процесса:
// веб-слой своей БД не имеет, а для логина и формы поддержки этого хватает.
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		attempts: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
}

// Exceeded регистрирует попытку и сообщает, превышен ли лимит.
func (rl *RateLimiter) Exceeded(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	var valid []time.Time
	for _, t := range rl.attempts[key] {
		if now.Sub(t) < rl.window {
			valid = append(valid, t)
		}
	}

	if len(valid) >= rl.limit {
		rl.attempts[key] = valid
		return true
	}

	rl.attempts[key] = append(valid, now)
	return false
}

// Limit ограничивает частоту запросов к эндпоинту по IP клиента.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.Exceeded(c.ClientIP()) {
			logging.Logger.Warn("rate limit exceeded",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Слишком много запросов, попробуйте позже",
			})
			return
		}
		c.Next()
	}
}
