package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hrdash/database"
)

// SQLLogs returns the most recent SQL statements as JSON
func (h *Handler) SQLLogs(c *fiber.Ctx) error {
	return c.JSON(database.SQLLogger.GetRecentQueries(20))
}

// ClearSQLLogs clears the captured SQL statements
func (h *Handler) ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.SendStatus(fiber.StatusOK)
}
