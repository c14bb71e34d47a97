package pagination

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// MaxLimit caps how many rows a single list call may return
const MaxLimit = 500

// Limit extracts the optional `limit` query parameter. Zero means no cap:
// list endpoints are not paginated, limit only trims the result count.
func Limit(c *fiber.Ctx) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
