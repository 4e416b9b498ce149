package models

import "time"

// Employee represents the employee table. DepartmentID is nullable: an
// employee may be unassigned, and the reporting queries must keep such
// rows visible.
type Employee struct {
	EmployeeID   uint      `gorm:"primaryKey;column:employee_id" json:"employee_id"`
	FirstName    string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(50);not null" json:"last_name"`
	Email        string    `gorm:"type:varchar(100);not null" json:"email"`
	HireDate     time.Time `gorm:"type:date;not null" json:"hire_date"`
	DepartmentID *uint     `gorm:"column:department_id" json:"department_id,omitempty"`

	// Relationships
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName specifies the table name for Employee
func (Employee) TableName() string {
	return "employee"
}
