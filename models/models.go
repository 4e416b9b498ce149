package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Department{},

		// 2. Tables with single dependencies
		&Employee{}, // depends on: Department

		// 3. Child tables
		&Salary{}, // depends on: Employee
	}
}
