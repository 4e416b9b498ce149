package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// EmployeeList displays the employee roster, optionally filtered by the
// search box (substring match on name or email)
func (h *Handler) EmployeeList(c *fiber.Ctx) error {
	term := c.Query("q", "")

	rows, err := h.repo.SearchEmployees(c.UserContext(), term)
	if err != nil {
		return renderError(c, "Employees", err)
	}

	return c.Render("pages/employees", fiber.Map{
		"Title":           "Employees",
		"Active":          "employees",
		"Employees":       rows,
		"Search":          term,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}

// EmployeeView displays the detail rows for one employee. An unknown id is
// not an error: the page reports that nothing matched.
func (h *Handler) EmployeeView(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid employee id")
	}

	rows, err := h.repo.GetEmployee(c.UserContext(), uint(id))
	if err != nil {
		return renderError(c, "Employee", err)
	}

	return c.Render("pages/employee_detail", fiber.Map{
		"Title":           "Employee Detail",
		"Active":          "employees",
		"EmployeeID":      id,
		"Rows":            rows,
		"SQLQueries":      c.Locals("SQLQueries"),
		"TotalSQLQueries": c.Locals("TotalSQLQueries"),
	}, "layouts/base")
}
