package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hrdash/reports"
)

// topEarnerCount is how many earners the analytics page highlights
const topEarnerCount = 5

// Analytics displays the department compensation comparison, the payroll
// distribution and the top earners table
func (h *Handler) Analytics(c *fiber.Ctx) error {
	var (
		stats      []reports.DepartmentStatsRow
		topEarners []reports.SalaryRow
	)

	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error {
		var err error
		stats, err = h.repo.DepartmentSalaryStats(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		topEarners, err = h.repo.TopEarners(ctx, topEarnerCount)
		return err
	})
	if err := g.Wait(); err != nil {
		return renderError(c, "Analytics", err)
	}

	return c.Render("pages/analytics", fiber.Map{
		"Title":           "Analytics",
		"Active":          "analytics",
		"Stats":           stats,
		"TopEarners":      topEarners,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}
