package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hrdash/reports"
)

// Handler bundles the page and API handlers around the reporting
// repository. The repository is injected here instead of being pulled from
// a package global so the query layer owns no ambient state.
type Handler struct {
	repo *reports.Repository
}

// NewHandler creates the handler set for a repository
func NewHandler(repo *reports.Repository) *Handler {
	return &Handler{repo: repo}
}

// renderError renders the shared error page
func renderError(c *fiber.Ctx, title string, err error) error {
	return c.Status(fiber.StatusInternalServerError).Render("pages/error", fiber.Map{
		"Title":           title,
		"Active":          "",
		"Error":           err.Error(),
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}
