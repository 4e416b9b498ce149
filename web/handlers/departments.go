package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hrdash/reports"
)

// DepartmentList displays the department roster with employee counts plus
// the per-department salary statistics table
func (h *Handler) DepartmentList(c *fiber.Ctx) error {
	var (
		departments []reports.DepartmentRow
		stats       []reports.DepartmentStatsRow
	)

	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error {
		var err error
		departments, err = h.repo.ListDepartments(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = h.repo.DepartmentSalaryStats(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return renderError(c, "Departments", err)
	}

	return c.Render("pages/departments", fiber.Map{
		"Title":           "Departments",
		"Active":          "departments",
		"Departments":     departments,
		"Stats":           stats,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}
