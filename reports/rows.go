package reports

import "time"

// EmployeeRow is one row of the employee roster. Department fields are
// pointers because an unassigned employee still appears, with no
// department to join against.
type EmployeeRow struct {
	EmployeeID     uint      `json:"employee_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	HireDate       time.Time `json:"hire_date"`
	DepartmentName *string   `json:"department_name"`
	Location       *string   `json:"location"`
}

// SalaryRow is one row of the salary roster. TotalCompensation is derived
// at query time as base salary plus bonus and never stored.
type SalaryRow struct {
	EmployeeID        uint      `json:"employee_id"`
	EmployeeName      string    `json:"employee_name"`
	BaseSalary        float64   `json:"base_salary"`
	Bonus             float64   `json:"bonus"`
	TotalCompensation float64   `json:"total_compensation"`
	EffectiveDate     time.Time `json:"effective_date"`
	DepartmentName    *string   `json:"department_name"`
}

// DepartmentRow is one row of the department roster with its derived
// employee count.
type DepartmentRow struct {
	DepartmentID   uint   `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Location       string `json:"location"`
	EmployeeCount  int64  `json:"employee_count"`
}

// DepartmentStatsRow carries per-department compensation aggregates. The
// aggregate fields are pointers: a department whose employees have no
// salary records has an undefined average, sum, min and max, which must
// not collapse to zero.
type DepartmentStatsRow struct {
	DepartmentName       string   `json:"department_name"`
	EmployeeCount        int64    `json:"employee_count"`
	AvgTotalCompensation *float64 `json:"avg_total_compensation"`
	TotalCompensation    *float64 `json:"total_compensation"`
	MinCompensation      *float64 `json:"min_compensation"`
	MaxCompensation      *float64 `json:"max_compensation"`
}

// EmployeeDetailRow is one row of the single-employee lookup. An employee
// with several salary records produces one row per record; an employee
// with none produces a single row with nil salary fields.
type EmployeeDetailRow struct {
	EmployeeID        uint      `json:"employee_id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	HireDate          time.Time `json:"hire_date"`
	DepartmentName    *string   `json:"department_name"`
	Location          *string   `json:"location"`
	BaseSalary        *float64  `json:"base_salary"`
	Bonus             *float64  `json:"bonus"`
	TotalCompensation *float64  `json:"total_compensation"`
}

// OverviewStats carries the dashboard headline metrics. The payroll
// aggregates are undefined when no salary records exist.
type OverviewStats struct {
	TotalEmployees       int64    `json:"total_employees"`
	TotalDepartments     int64    `json:"total_departments"`
	AvgTotalCompensation *float64 `json:"avg_total_compensation"`
	TotalPayroll         *float64 `json:"total_payroll"`
}
