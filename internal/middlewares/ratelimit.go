package middlewares

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimit applies a fixed-window per-IP ceiling backed by redis, so the
// window survives restarts and is shared across replicas. Redis being down
// fails open rather than blocking all traffic.
func RateLimit(rdb *redis.Client, window time.Duration, max int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("ratelimit:%s", c.IP())
		ctx := c.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("⚠️ Rate limiter unavailable: %v", err)
			return c.Next()
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(max) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests",
			})
		}

		return c.Next()
	}
}
