package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// maxRateLimitClients 同时跟踪的客户端数量，超出后淘汰最久未访问的
const maxRateLimitClients = 10000

// RateLimit 按客户端 IP 的令牌桶限流，rps <= 0 时不限流
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	// lru.Cache 是线程安全的
	clients, _ := lru.New[string, *rate.Limiter](maxRateLimitClients)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter, ok := clients.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
			// 并发的首个请求只保留一个限流器
			if prev, found, _ := clients.PeekOrAdd(ip, limiter); found {
				limiter = prev
			}
		}

		if !limiter.Allow() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "Слишком много запросов",
				"success": false,
			})
			return
		}
		c.Next()
	}
}
