package models

import "time"

// Salary represents the salary table. An employee can accumulate several
// salary records over time, each with its own effective date. Total
// compensation (base + bonus) is never stored; the reporting layer derives
// it at query time.
type Salary struct {
	SalaryID      uint      `gorm:"primaryKey;column:salary_id" json:"salary_id"`
	EmployeeID    uint      `gorm:"not null" json:"employee_id"`
	BaseSalary    float64   `gorm:"type:decimal(12,2);not null;check:base_salary >= 0" json:"base_salary"`
	Bonus         float64   `gorm:"type:decimal(12,2);not null;default:0;check:bonus >= 0" json:"bonus"`
	EffectiveDate time.Time `gorm:"type:date;not null" json:"effective_date"`

	// Relationships
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// TableName specifies the table name for Salary
func (Salary) TableName() string {
	return "salary"
}
