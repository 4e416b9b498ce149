package handlers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hrdash/reports"
)

// Overview displays the dashboard with headline metrics, the employees-per-
// department chart and the compensation distribution. The three views are
// independent, so they are fetched concurrently.
func (h *Handler) Overview(c *fiber.Ctx) error {
	var (
		stats       reports.OverviewStats
		departments []reports.DepartmentRow
		salaries    []reports.SalaryRow
	)

	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() error {
		var err error
		stats, err = h.repo.Overview(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		departments, err = h.repo.ListDepartments(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		salaries, err = h.repo.ListSalaries(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return renderError(c, "Overview", err)
	}

	return c.Render("pages/overview", fiber.Map{
		"Title":           "Overview",
		"Active":          "overview",
		"Stats":           stats,
		"Departments":     departments,
		"Salaries":        salaries,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}
