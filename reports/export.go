package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const salarySheet = "Salaries"

var salaryHeader = []interface{}{
	"Employee ID", "Employee Name", "Department",
	"Base Salary", "Bonus", "Total Compensation", "Effective Date",
}

// WriteSalariesXLSX writes the salary roster to w as an Excel workbook,
// one row per salary record in the roster's order.
func WriteSalariesXLSX(w io.Writer, rows []SalaryRow) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", salarySheet)
	if err := f.SetSheetRow(salarySheet, "A1", &salaryHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		dept := ""
		if row.DepartmentName != nil {
			dept = *row.DepartmentName
		}
		values := []interface{}{
			row.EmployeeID,
			row.EmployeeName,
			dept,
			row.BaseSalary,
			row.Bonus,
			row.TotalCompensation,
			row.EffectiveDate.Format("2006-01-02"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(salarySheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
