package handlers

import (
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hrdash/reports"
)

// SalaryList displays the salary roster sorted by total compensation,
// optionally restricted to a compensation range. An inverted range simply
// shows an empty table.
func (h *Handler) SalaryList(c *fiber.Ctx) error {
	minComp := parseFloatQuery(c, "min", 0)
	maxComp := parseFloatQuery(c, "max", math.MaxFloat64)

	rows, err := h.repo.ListSalariesInRange(c.UserContext(), minComp, maxComp)
	if err != nil {
		return renderError(c, "Salaries", err)
	}

	return c.Render("pages/salaries", fiber.Map{
		"Title":    "Salaries",
		"Active":   "salaries",
		"Salaries": rows,
		"Filters": fiber.Map{
			"Min": c.Query("min", ""),
			"Max": c.Query("max", ""),
		},
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// SalaryExport downloads the salary roster as an Excel workbook
func (h *Handler) SalaryExport(c *fiber.Ctx) error {
	rows, err := h.repo.ListSalaries(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	filename := "salaries-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	if err := reports.WriteSalariesXLSX(c.Response().BodyWriter(), rows); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return nil
}

// parseFloatQuery reads a float query parameter, falling back when the
// parameter is absent or malformed
func parseFloatQuery(c *fiber.Ctx, key string, fallback float64) float64 {
	raw := c.Query(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
