package database

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/hrdash/models"
)

// SeedData loads the sample dataset into empty tables. The dataset is the
// fixed bootstrap described by the reporting engine: five departments, ten
// employees, one salary record per employee.
func SeedData(db *gorm.DB) error {
	log.Info().Msg("checking if database needs seeding")

	var count int64
	db.Model(&models.Department{}).Count(&count)
	if count > 0 {
		log.Info().Msg("database already has data, skipping seed")
		return nil
	}

	log.Info().Msg("database is empty, starting seed process")

	// Use transaction for data integrity
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedDepartments(tx); err != nil {
			return fmt.Errorf("failed to seed departments: %w", err)
		}
		if err := seedEmployees(tx); err != nil {
			return fmt.Errorf("failed to seed employees: %w", err)
		}
		if err := seedSalaries(tx); err != nil {
			return fmt.Errorf("failed to seed salaries: %w", err)
		}
		return nil
	})
}

// ClearData removes all rows in reverse dependency order. Used by the seed
// tool's -force flag to rebuild the dataset from scratch.
func ClearData(db *gorm.DB) error {
	tables := []string{"salary", "employee", "department"}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
		log.Info().Str("table", table).Msg("cleared table")
	}
	return nil
}

func seedDepartments(tx *gorm.DB) error {
	departments := []models.Department{
		{DepartmentID: 1, DepartmentName: "Engineering", Location: "New York"},
		{DepartmentID: 2, DepartmentName: "Human Resources", Location: "Boston"},
		{DepartmentID: 3, DepartmentName: "Marketing", Location: "San Francisco"},
		{DepartmentID: 4, DepartmentName: "Sales", Location: "Chicago"},
		{DepartmentID: 5, DepartmentName: "Finance", Location: "New York"},
	}

	if err := tx.Create(&departments).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(departments)).Msg("seeded departments")
	return nil
}

func seedEmployees(tx *gorm.DB) error {
	employees := []models.Employee{
		{EmployeeID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@company.com", HireDate: date("2020-01-15"), DepartmentID: uintPtr(1)},
		{EmployeeID: 2, FirstName: "Jane", LastName: "Smith", Email: "jane.smith@company.com", HireDate: date("2019-03-22"), DepartmentID: uintPtr(1)},
		{EmployeeID: 3, FirstName: "Michael", LastName: "Johnson", Email: "michael.j@company.com", HireDate: date("2021-06-10"), DepartmentID: uintPtr(2)},
		{EmployeeID: 4, FirstName: "Emily", LastName: "Williams", Email: "emily.w@company.com", HireDate: date("2020-11-05"), DepartmentID: uintPtr(3)},
		{EmployeeID: 5, FirstName: "David", LastName: "Brown", Email: "david.b@company.com", HireDate: date("2018-09-12"), DepartmentID: uintPtr(4)},
		{EmployeeID: 6, FirstName: "Sarah", LastName: "Davis", Email: "sarah.d@company.com", HireDate: date("2022-02-28"), DepartmentID: uintPtr(1)},
		{EmployeeID: 7, FirstName: "Robert", LastName: "Miller", Email: "robert.m@company.com", HireDate: date("2019-07-19"), DepartmentID: uintPtr(5)},
		{EmployeeID: 8, FirstName: "Lisa", LastName: "Wilson", Email: "lisa.w@company.com", HireDate: date("2021-04-03"), DepartmentID: uintPtr(3)},
		{EmployeeID: 9, FirstName: "James", LastName: "Moore", Email: "james.m@company.com", HireDate: date("2020-08-17"), DepartmentID: uintPtr(4)},
		{EmployeeID: 10, FirstName: "Maria", LastName: "Taylor", Email: "maria.t@company.com", HireDate: date("2022-01-10"), DepartmentID: uintPtr(2)},
	}

	if err := tx.Create(&employees).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(employees)).Msg("seeded employees")
	return nil
}

func seedSalaries(tx *gorm.DB) error {
	salaries := []models.Salary{
		{SalaryID: 1, EmployeeID: 1, BaseSalary: 95000, Bonus: 5000, EffectiveDate: date("2020-01-15")},
		{SalaryID: 2, EmployeeID: 2, BaseSalary: 105000, Bonus: 7000, EffectiveDate: date("2019-03-22")},
		{SalaryID: 3, EmployeeID: 3, BaseSalary: 65000, Bonus: 3000, EffectiveDate: date("2021-06-10")},
		{SalaryID: 4, EmployeeID: 4, BaseSalary: 78000, Bonus: 4000, EffectiveDate: date("2020-11-05")},
		{SalaryID: 5, EmployeeID: 5, BaseSalary: 88000, Bonus: 6000, EffectiveDate: date("2018-09-12")},
		{SalaryID: 6, EmployeeID: 6, BaseSalary: 92000, Bonus: 4500, EffectiveDate: date("2022-02-28")},
		{SalaryID: 7, EmployeeID: 7, BaseSalary: 110000, Bonus: 8000, EffectiveDate: date("2019-07-19")},
		{SalaryID: 8, EmployeeID: 8, BaseSalary: 72000, Bonus: 3500, EffectiveDate: date("2021-04-03")},
		{SalaryID: 9, EmployeeID: 9, BaseSalary: 85000, Bonus: 5500, EffectiveDate: date("2020-08-17")},
		{SalaryID: 10, EmployeeID: 10, BaseSalary: 68000, Bonus: 3200, EffectiveDate: date("2022-01-10")},
	}

	if err := tx.Create(&salaries).Error; err != nil {
		return err
	}
	log.Info().Int("count", len(salaries)).Msg("seeded salaries")
	return nil
}

// date parses a fixture date; fixture dates are compile-time constants so a
// parse failure is a programming error.
func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func uintPtr(u uint) *uint {
	return &u
}
