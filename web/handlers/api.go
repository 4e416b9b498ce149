package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// JSON API mirroring the page views, consumed by the dashboard charts and
// by anything that wants the raw report rows.

// APIEmployees returns the employee roster as JSON
func (h *Handler) APIEmployees(c *fiber.Ctx) error {
	rows, err := h.repo.SearchEmployees(c.UserContext(), c.Query("q", ""))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(rows)
}

// APIEmployee returns the detail rows for one employee. An unknown id
// yields an empty array, not a 404: absence is a valid query result.
func (h *Handler) APIEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid employee id")
	}
	rows, err := h.repo.GetEmployee(c.UserContext(), uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(rows)
}

// APISalaries returns the salary roster as JSON
func (h *Handler) APISalaries(c *fiber.Ctx) error {
	rows, err := h.repo.ListSalaries(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(rows)
}

// APIDepartments returns the department roster as JSON
func (h *Handler) APIDepartments(c *fiber.Ctx) error {
	rows, err := h.repo.ListDepartments(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(rows)
}

// APIDepartmentStats returns the per-department aggregates as JSON
func (h *Handler) APIDepartmentStats(c *fiber.Ctx) error {
	rows, err := h.repo.DepartmentSalaryStats(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(rows)
}

// APITopEarners returns the top n earners as JSON; n defaults to 5 and is
// normalized rather than rejected
func (h *Handler) APITopEarners(c *fiber.Ctx) error {
	n := c.QueryInt("n", topEarnerCount)
	rows, err := h.repo.TopEarners(c.UserContext(), n)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(rows)
}
