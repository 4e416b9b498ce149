package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hrdash/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive and shared
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func uintPtr(u uint) *uint {
	return &u
}

// seedFixture loads a small dataset exercising every join edge case:
// a department with salaried employees, two empty departments, a
// department whose employee has no salary record, an employee without a
// department, and a salary row referencing a missing employee.
func seedFixture(t *testing.T, db *gorm.DB) {
	t.Helper()

	departments := []models.Department{
		{DepartmentID: 1, DepartmentName: "Engineering", Location: "New York"},
		{DepartmentID: 2, DepartmentName: "HR", Location: "Boston"},
		{DepartmentID: 3, DepartmentName: "Marketing", Location: "San Francisco"},
		{DepartmentID: 4, DepartmentName: "Finance", Location: "Chicago"},
	}
	require.NoError(t, db.Create(&departments).Error)

	employees := []models.Employee{
		{EmployeeID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@company.com", HireDate: date(t, "2020-01-15"), DepartmentID: uintPtr(1)},
		{EmployeeID: 2, FirstName: "Jane", LastName: "Smith", Email: "jane.smith@company.com", HireDate: date(t, "2019-03-22"), DepartmentID: uintPtr(1)},
		{EmployeeID: 3, FirstName: "Mike", LastName: "Ross", Email: "mike.ross@company.com", HireDate: date(t, "2021-06-10"), DepartmentID: uintPtr(3)},
		{EmployeeID: 4, FirstName: "Dana", LastName: "Lee", Email: "dana.lee@company.com", HireDate: date(t, "2022-02-01")},
	}
	require.NoError(t, db.Create(&employees).Error)

	salaries := []models.Salary{
		{SalaryID: 1, EmployeeID: 1, BaseSalary: 95000, Bonus: 5000, EffectiveDate: date(t, "2020-01-15")},
		{SalaryID: 2, EmployeeID: 2, BaseSalary: 105000, Bonus: 7000, EffectiveDate: date(t, "2019-03-22")},
		// Orphan: no employee 999 exists
		{SalaryID: 3, EmployeeID: 999, BaseSalary: 50000, Bonus: 0, EffectiveDate: date(t, "2021-01-01")},
	}
	require.NoError(t, db.Create(&salaries).Error)
}

func TestListEmployeesKeepsUnassigned(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewRepository(db)

	rows, err := repo.ListEmployees(context.Background())
	require.NoError(t, err)

	// Every employee appears, ordered by id, including the one without a
	// department
	require.Len(t, rows, 4)
	for i, row := range rows {
		assert.Equal(t, uint(i+1), row.EmployeeID)
	}

	require.NotNil(t, rows[0].DepartmentName)
	assert.Equal(t, "Engineering", *rows[0].DepartmentName)
	assert.Equal(t, "New York", *rows[0].Location)

	assert.Nil(t, rows[3].DepartmentName)
	assert.Nil(t, rows[3].Location)
	assert.Equal(t, "2022-02-01", rows[3].HireDate.Format("2006-01-02"))
}

func TestSearchEmployees(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewRepository(db)

	rows, err := repo.SearchEmployees(context.Background(), "JANE")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, uint(2), rows[0].EmployeeID)

	rows, err = repo.SearchEmployees(context.Background(), "company.com")
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	rows, err = repo.SearchEmployees(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, rows, 4)

	rows, err = repo.SearchEmployees(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListSalariesDerivationAndOrdering(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewRepository(db)

	rows, err := repo.ListSalaries(context.Background())
	require.NoError(t, err)

	// The orphan salary row drops out of the employee join
	require.Len(t, rows, 2)

	assert.Equal(t, "Jane Smith", rows[0].EmployeeName)
	assert.Equal(t, 112000.0, rows[0].TotalCompensation)
	assert.Equal(t, "John Doe", rows[1].EmployeeName)
	assert.Equal(t, 100000.0, rows[1].TotalCompensation)

	for _, row := range rows {
		assert.Equal(t, row.BaseSalary+row.Bonus, row.TotalCompensation)
		require.NotNil(t, row.DepartmentName)
		assert.Equal(t, "Engineering", *row.DepartmentName)
	}
}

func TestListSalariesStableOnEqualCompensation(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, db.Create(&models.Department{DepartmentID: 1, DepartmentName: "Engineering", Location: "New York"}).Error)
	employees := []models.Employee{
		{EmployeeID: 1, FirstName: "Ada", LastName: "Byron", Email: "ada@company.com", HireDate: date(t, "2020-01-01"), DepartmentID: uintPtr(1)},
		{EmployeeID: 2, FirstName: "Bob", LastName: "Gray", Email: "bob@company.com", HireDate: date(t, "2020-01-02"), DepartmentID: uintPtr(1)},
	}
	require.NoError(t, db.Create(&employees).Error)

	// Equal total compensation via different base/bonus splits
	salaries := []models.Salary{
		{SalaryID: 1, EmployeeID: 1, BaseSalary: 50000, Bonus: 0, EffectiveDate: date(t, "2020-01-01")},
		{SalaryID: 2, EmployeeID: 2, BaseSalary: 40000, Bonus: 10000, EffectiveDate: date(t, "2020-01-02")},
	}
	require.NoError(t, db.Create(&salaries).Error)

	first, err := repo.ListSalaries(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "Ada Byron", first[0].EmployeeName)
	assert.Equal(t, "Bob Gray", first[1].EmployeeName)

	// Ties keep their relative order across repeated calls
	second, err := repo.ListSalaries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestListSalariesInRange(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewRepository(db)

	rows, err := repo.ListSalariesInRange(context.Background(), 0, 105000)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 100000.0, rows[0].TotalCompensation)

	// Inverted range degrades to an empty result, not an error
	rows, err = repo.ListSalariesInRange(context.Background(), 105000, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListDepartmentsCountsAndOrdering(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewRepository(db)

	rows, err := repo.ListDepartments(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Descending by count; the two empty departments tie and fall back to
	// department id so the output is stable across runs
	assert.Equal(t, "Engineering", rows[0].DepartmentName)
	assert.Equal(t, int64(2), rows[0].EmployeeCount)
	assert.Equal(t, "Marketing", rows[1].DepartmentName)
	assert.Equal(t, int64(1), rows[1].EmployeeCount)
	assert.Equal(t, "HR", rows[2].DepartmentName)
	assert.Equal(t, int64(0), rows[2].EmployeeCount)
	assert.Equal(t, "Finance", rows[3].DepartmentName)
	assert.Equal(t, int64(0), rows[3].EmployeeCount)
}

func TestDepartmentSalaryStats(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewRepository(db)

	rows, err := repo.DepartmentSalaryStats(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Engineering has the only defined average and sorts first
	eng := rows[0]
	assert.Equal(t, "Engineering", eng.DepartmentName)
	assert.Equal(t, int64(2), eng.EmployeeCount)
	require.NotNil(t, eng.AvgTotalCompensation)
	assert.InDelta(t, 106000.00, *eng.AvgTotalCompensation, 0.001)
	require.NotNil(t, eng.TotalCompensation)
	assert.InDelta(t, 212000.00, *eng.TotalCompensation, 0.001)
	require.NotNil(t, eng.MinCompensation)
	assert.InDelta(t, 100000.00, *eng.MinCompensation, 0.001)
	require.NotNil(t, eng.MaxCompensation)
	assert.InDelta(t, 112000.00, *eng.MaxCompensation, 0.001)

	// Undefined averages sort last, alphabetically by department
	assert.Equal(t, "Finance", rows[1].DepartmentName)
	assert.Equal(t, "HR", rows[2].DepartmentName)
	assert.Equal(t, "Marketing", rows[3].DepartmentName)

	// Empty departments keep a zero count but undefined aggregates
	for _, row := range rows[1:3] {
		assert.Equal(t, int64(0), row.EmployeeCount)
		assert.Nil(t, row.AvgTotalCompensation)
		assert.Nil(t, row.TotalCompensation)
		assert.Nil(t, row.MinCompensation)
		assert.Nil(t, row.MaxCompensation)
	}

	// Marketing has an employee but no salary rows: count > 0, aggregates
	// still undefined rather than zero
	marketing := rows[3]
	assert.Equal(t, int64(1), marketing.EmployeeCount)
	assert.Nil(t, marketing.AvgTotalCompensation)
	assert.Nil(t, marketing.TotalCompensation)
	assert.Nil(t, marketing.MinCompensation)
	assert.Nil(t, marketing.MaxCompensation)
}

func TestGetEmployee(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewRepository(db)

	rows, err := repo.GetEmployee(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "John", rows[0].FirstName)
	require.NotNil(t, rows[0].TotalCompensation)
	assert.Equal(t, 100000.0, *rows[0].TotalCompensation)

	// Employee without salary records still resolves, with nil salary fields
	rows, err = repo.GetEmployee(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Mike", rows[0].FirstName)
	assert.Nil(t, rows[0].BaseSalary)
	assert.Nil(t, rows[0].Bonus)
	assert.Nil(t, rows[0].TotalCompensation)
}

func TestGetEmployeeMissingIDIsEmpty(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewRepository(db)

	rows, err := repo.GetEmployee(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGetEmployeeSalaryFanOut(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewRepository(db)

	// A raise: second salary record for the same employee
	require.NoError(t, db.Create(&models.Salary{
		SalaryID: 10, EmployeeID: 1, BaseSalary: 99000, Bonus: 5000,
		EffectiveDate: date(t, "2021-01-15"),
	}).Error)

	rows, err := repo.GetEmployee(context.Background(), 1)
	require.NoError(t, err)

	// One row per salary record, oldest effective date first
	require.Len(t, rows, 2)
	assert.Equal(t, 100000.0, *rows[0].TotalCompensation)
	assert.Equal(t, 104000.0, *rows[1].TotalCompensation)
}

func TestTopEarners(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewRepository(db)

	rows, err := repo.TopEarners(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane Smith", rows[0].EmployeeName)
	assert.Equal(t, 112000.0, rows[0].TotalCompensation)

	// Asking for more rows than exist returns the whole roster in the
	// roster's order
	all, err := repo.ListSalaries(context.Background())
	require.NoError(t, err)
	rows, err = repo.TopEarners(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, all, rows)

	// Non-positive n normalizes to an empty result
	rows, err = repo.TopEarners(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
	rows, err = repo.TopEarners(context.Background(), -3)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestOverview(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	repo := NewRepository(db)

	stats, err := repo.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalEmployees)
	assert.Equal(t, int64(4), stats.TotalDepartments)
	require.NotNil(t, stats.AvgTotalCompensation)
	assert.InDelta(t, 106000.0, *stats.AvgTotalCompensation, 0.001)
	require.NotNil(t, stats.TotalPayroll)
	assert.InDelta(t, 212000.0, *stats.TotalPayroll, 0.001)
}

func TestOverviewEmptyDataset(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	stats, err := repo.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalEmployees)
	assert.Equal(t, int64(0), stats.TotalDepartments)
	assert.Nil(t, stats.AvgTotalCompensation)
	assert.Nil(t, stats.TotalPayroll)
}
