package ports

import (
	"context"
	"time"
)

const (
	PayrollPaid       = "paid"
	PayrollProcessing = "processing"
	PayrollPending    = "pending"
)

// SalaryRecord is one payroll line, derived from a directory entry that
// carries a salary.
type SalaryRecord struct {
	EmployeeID   string
	EmployeeName string
	Role         string
	Department   string
	BaseSalary   float64
	Bonus        float64
	Deductions   float64
	Total        float64
	Status       string
	PaymentDate  time.Time
}

// SalaryTotals aggregates the filtered payroll lines.
type SalaryTotals struct {
	Salaries   float64
	Bonuses    float64
	Deductions float64
}

// ListSalariesInput carries the payroll filters. Search matches employee
// name and department case-insensitively.
type ListSalariesInput struct {
	Search string
	Status string
}

// SalaryService computes the payroll view over the directory.
type SalaryService interface {
	List(ctx context.Context, input ListSalariesInput) ([]SalaryRecord, SalaryTotals, error)
}
