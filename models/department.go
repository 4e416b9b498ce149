package models

// Department represents the department table
type Department struct {
	DepartmentID   uint   `gorm:"primaryKey;column:department_id" json:"department_id"`
	DepartmentName string `gorm:"type:varchar(100);not null" json:"department_name"`
	Location       string `gorm:"type:varchar(100);not null" json:"location"`

	// Reverse relationship - commented out to avoid circular dependency issues during migration
	// Employees []Employee `gorm:"foreignKey:DepartmentID" json:"employees,omitempty"`
}

// TableName specifies the table name for Department
func (Department) TableName() string {
	return "department"
}
