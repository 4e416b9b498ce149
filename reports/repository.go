package reports

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Repository builds the derived reporting views from the three base
// relations (department, employee, salary). It is stateless: each call
// executes a single statement through the shared connection pool, so a
// connection is checked out for the statement and returned regardless of
// success or failure. All views are computed at query time; nothing is
// cached.
type Repository struct {
	db *gorm.DB
}

// NewRepository wraps a database handle in a reporting repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListEmployees returns the full employee roster ordered by employee id.
// The department join is a left join: employees without a department stay
// in the result with nil department fields, so the row count always equals
// the employee count.
func (r *Repository) ListEmployees(ctx context.Context) ([]EmployeeRow, error) {
	var rows []EmployeeRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.employee_id,
			e.first_name,
			e.last_name,
			e.email,
			e.hire_date,
			d.department_name,
			d.location
		FROM employee e
		LEFT JOIN department d ON e.department_id = d.department_id
		ORDER BY e.employee_id
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return rows, nil
}

// SearchEmployees filters the roster by a case-insensitive substring match
// on first name, last name or email. An empty term returns the full roster.
func (r *Repository) SearchEmployees(ctx context.Context, term string) ([]EmployeeRow, error) {
	if term == "" {
		return r.ListEmployees(ctx)
	}

	pattern := "%" + strings.ToLower(term) + "%"
	var rows []EmployeeRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.employee_id,
			e.first_name,
			e.last_name,
			e.email,
			e.hire_date,
			d.department_name,
			d.location
		FROM employee e
		LEFT JOIN department d ON e.department_id = d.department_id
		WHERE LOWER(e.first_name) LIKE ?
		   OR LOWER(e.last_name) LIKE ?
		   OR LOWER(e.email) LIKE ?
		ORDER BY e.employee_id
	`, pattern, pattern, pattern).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	return rows, nil
}

// ListSalaries returns the salary roster ordered by total compensation,
// highest first, with salary_id as the tie-break so equal compensations
// keep their insertion order across calls. The employee join is inner: a
// salary row referencing a missing employee is a data integrity violation
// and silently drops out, while the department join stays left so
// unassigned employees keep their rows.
func (r *Repository) ListSalaries(ctx context.Context) ([]SalaryRow, error) {
	var rows []SalaryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.employee_id,
			e.first_name || ' ' || e.last_name AS employee_name,
			s.base_salary,
			s.bonus,
			s.base_salary + s.bonus AS total_compensation,
			s.effective_date,
			d.department_name
		FROM salary s
		JOIN employee e ON s.employee_id = e.employee_id
		LEFT JOIN department d ON e.department_id = d.department_id
		ORDER BY total_compensation DESC, s.salary_id
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	return rows, nil
}

// ListSalariesInRange returns the salary roster restricted to rows whose
// total compensation lies within [min, max]. An inverted range produces an
// empty result rather than an error.
func (r *Repository) ListSalariesInRange(ctx context.Context, min, max float64) ([]SalaryRow, error) {
	var rows []SalaryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.employee_id,
			e.first_name || ' ' || e.last_name AS employee_name,
			s.base_salary,
			s.bonus,
			s.base_salary + s.bonus AS total_compensation,
			s.effective_date,
			d.department_name
		FROM salary s
		JOIN employee e ON s.employee_id = e.employee_id
		LEFT JOIN department d ON e.department_id = d.department_id
		WHERE s.base_salary + s.bonus BETWEEN ? AND ?
		ORDER BY total_compensation DESC, s.salary_id
	`, min, max).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list salaries in range: %w", err)
	}
	return rows, nil
}

// ListDepartments returns one row per department with its employee count,
// busiest departments first. The employee join is left so a department
// with no employees reports a count of zero instead of vanishing;
// department_id breaks count ties to keep the output stable across runs.
func (r *Repository) ListDepartments(ctx context.Context) ([]DepartmentRow, error) {
	var rows []DepartmentRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			d.department_id,
			d.department_name,
			d.location,
			COUNT(e.employee_id) AS employee_count
		FROM department d
		LEFT JOIN employee e ON d.department_id = e.department_id
		GROUP BY d.department_id, d.department_name, d.location
		ORDER BY employee_count DESC, d.department_id
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return rows, nil
}

// DepartmentSalaryStats computes per-department compensation aggregates
// over the salary rows reached via department -> employee -> salary, all
// left joins. A department whose employees carry no salary records keeps
// its employee count but reports NULL aggregates; aggregating an empty set
// is undefined, not zero. Departments sort by average compensation with
// undefined averages last.
func (r *Repository) DepartmentSalaryStats(ctx context.Context) ([]DepartmentStatsRow, error) {
	var rows []DepartmentStatsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			d.department_name,
			COUNT(DISTINCT e.employee_id) AS employee_count,
			ROUND(AVG(s.base_salary + s.bonus), 2) AS avg_total_compensation,
			ROUND(SUM(s.base_salary + s.bonus), 2) AS total_compensation,
			ROUND(MIN(s.base_salary + s.bonus), 2) AS min_compensation,
			ROUND(MAX(s.base_salary + s.bonus), 2) AS max_compensation
		FROM department d
		LEFT JOIN employee e ON d.department_id = e.department_id
		LEFT JOIN salary s ON e.employee_id = s.employee_id
		GROUP BY d.department_id, d.department_name
		ORDER BY avg_total_compensation DESC NULLS LAST, d.department_name
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("department salary stats: %w", err)
	}
	return rows, nil
}

// GetEmployee returns the detail rows for one employee, department and
// salary left-joined. An unknown id yields an empty slice, not an error.
// An employee with several salary records yields one row per record,
// ordered by effective date; picking one arbitrarily would make the
// lookup non-deterministic.
func (r *Repository) GetEmployee(ctx context.Context, employeeID uint) ([]EmployeeDetailRow, error) {
	var rows []EmployeeDetailRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.employee_id,
			e.first_name,
			e.last_name,
			e.email,
			e.hire_date,
			d.department_name,
			d.location,
			s.base_salary,
			s.bonus,
			s.base_salary + s.bonus AS total_compensation
		FROM employee e
		LEFT JOIN department d ON e.department_id = d.department_id
		LEFT JOIN salary s ON e.employee_id = s.employee_id
		WHERE e.employee_id = ?
		ORDER BY s.effective_date, s.salary_id
	`, employeeID).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("get employee %d: %w", employeeID, err)
	}
	return rows, nil
}

// TopEarners returns the n salary rows with the greatest total
// compensation, ordered exactly like ListSalaries. Asking for more rows
// than exist returns everything; n <= 0 normalizes to an empty result.
func (r *Repository) TopEarners(ctx context.Context, n int) ([]SalaryRow, error) {
	if n <= 0 {
		return []SalaryRow{}, nil
	}

	var rows []SalaryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			e.employee_id,
			e.first_name || ' ' || e.last_name AS employee_name,
			s.base_salary,
			s.bonus,
			s.base_salary + s.bonus AS total_compensation,
			s.effective_date,
			d.department_name
		FROM salary s
		JOIN employee e ON s.employee_id = e.employee_id
		LEFT JOIN department d ON e.department_id = d.department_id
		ORDER BY total_compensation DESC, s.salary_id
		LIMIT ?
	`, n).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("top earners: %w", err)
	}
	return rows, nil
}

// Overview returns the dashboard headline metrics. The payroll aggregates
// follow the salary roster's join semantics, so orphaned salary rows do
// not contribute.
func (r *Repository) Overview(ctx context.Context) (OverviewStats, error) {
	var stats OverviewStats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM employee) AS total_employees,
			(SELECT COUNT(*) FROM department) AS total_departments,
			AVG(s.base_salary + s.bonus) AS avg_total_compensation,
			SUM(s.base_salary + s.bonus) AS total_payroll
		FROM salary s
		JOIN employee e ON s.employee_id = e.employee_id
	`).Scan(&stats).Error
	if err != nil {
		return OverviewStats{}, fmt.Errorf("overview: %w", err)
	}
	return stats, nil
}
