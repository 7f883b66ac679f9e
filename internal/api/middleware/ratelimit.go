package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit limits requests per client IP using an in-memory store.
// rate uses the limiter format, e.g. "600-M". An empty rate disables limiting.
func RateLimit(rate string) (gin.HandlerFunc, error) {
	if rate == "" {
		return func(c *gin.Context) { c.Next() }, nil
	}

	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rate, err)
	}

	return mgin.NewMiddleware(
		limiter.New(memory.NewStore(), r),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
		}),
	), nil
}
