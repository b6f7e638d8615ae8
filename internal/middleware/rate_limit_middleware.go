package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"cjpowerhouse-backend/pkg/redis"
)

// RateLimit throttles a route by client IP using a redis counter. A nil
// redis client or a redis error lets the request through, so the limiter
// never takes the login path down with it.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil {
			return c.Next()
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.IP(), c.Path())
		allowed, err := rdb.CheckRateLimit(c.Context(), key, limit, window)
		if err != nil {
			return c.Next()
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many requests, try again later"})
		}

		return c.Next()
	}
}
