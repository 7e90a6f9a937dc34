package service

import (
	"context"
	"hash/fnv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/photoalbums/studio-api/internal/core/ports"
	"github.com/photoalbums/studio-api/internal/core/store"
)

// SalaryService derives the monthly payroll view from directory entries
// that carry a salary. Bonus, deductions and payment status are synthetic
// but deterministic per employee and month, so the view is stable across
// requests within a pay period.
type SalaryService struct {
	store *store.Store
	log   zerolog.Logger
}

func NewSalaryService(st *store.Store, log zerolog.Logger) *SalaryService {
	return &SalaryService{store: st, log: log}
}

var payrollStatuses = []string{ports.PayrollPaid, ports.PayrollProcessing, ports.PayrollPending}

// List returns payroll records matching the filters plus totals over the
// filtered set.
func (s *SalaryService) List(_ context.Context, input ports.ListSalariesInput) ([]ports.SalaryRecord, ports.SalaryTotals, error) {
	now := time.Now().UTC()
	paymentDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	month := now.Format("2006-01")

	needle := strings.ToLower(input.Search)
	records := make([]ports.SalaryRecord, 0)
	var totals ports.SalaryTotals

	for _, u := range s.store.Users() {
		if u.Salary <= 0 {
			continue
		}

		seed := payrollSeed(u.ID, month)
		bonus := float64(seed % 20000)
		deductions := float64(seed % 5000)
		status := payrollStatuses[seed%3]

		if input.Status != "" && status != input.Status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Department), needle) {
			continue
		}

		rec := ports.SalaryRecord{
			EmployeeID:   u.ID,
			EmployeeName: u.Name,
			Role:         u.Role,
			Department:   u.Department,
			BaseSalary:   u.Salary,
			Bonus:        bonus,
			Deductions:   deductions,
			Total:        u.Salary + bonus - deductions,
			Status:       status,
			PaymentDate:  paymentDate,
		}
		records = append(records, rec)

		totals.Salaries += rec.Total
		totals.Bonuses += rec.Bonus
		totals.Deductions += rec.Deductions
	}

	return records, totals, nil
}

// payrollSeed maps an employee and pay period deterministically to a number.
func payrollSeed(employeeID, month string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(employeeID))
	_, _ = h.Write([]byte(month))
	return h.Sum32()
}
