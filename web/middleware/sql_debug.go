package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hrdash/database"
)

// SQLDebug exposes the SQL statements executed during each request to the
// templates, so every report page can show the queries that produced it
func SQLDebug() fiber.Handler {
	return func(c *fiber.Ctx) error {
		before := len(database.SQLLogger.GetQueries())

		err := c.Next()

		after := database.SQLLogger.GetQueries()
		requestQueries := []database.QueryLog{}
		if diff := len(after) - before; diff > 0 && diff <= len(after) {
			// Newest entries come first
			requestQueries = after[:diff]
		}

		c.Locals("SQLQueries", requestQueries)
		c.Locals("TotalSQLQueries", len(requestQueries))

		return err
	}
}
