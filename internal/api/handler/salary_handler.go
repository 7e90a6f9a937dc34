package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/photoalbums/studio-api/internal/core/ports"
)

// SalaryHandler handles the admin payroll view.
type SalaryHandler struct {
	salaries ports.SalaryService
}

func NewSalaryHandler(salaries ports.SalaryService) *SalaryHandler {
	return &SalaryHandler{salaries: salaries}
}

type salaryRecordResponse struct {
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Role         string    `json:"role"`
	Department   string    `json:"department,omitempty"`
	BaseSalary   float64   `json:"base_salary"`
	Bonus        float64   `json:"bonus"`
	Deductions   float64   `json:"deductions"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	PaymentDate  time.Time `json:"payment_date"`
}

type salaryTotalsResponse struct {
	Salaries   float64 `json:"salaries"`
	Bonuses    float64 `json:"bonuses"`
	Deductions float64 `json:"deductions"`
}

type listSalariesResponse struct {
	Data   []salaryRecordResponse `json:"data"`
	Totals salaryTotalsResponse   `json:"totals"`
}

// List returns the payroll records and totals over the filtered set.
//
// @Summary      List payroll records
// @Tags         salaries
// @Produce      json
// @Param        search  query     string  false  "Matches employee name or department"
// @Param        status  query     string  false  "paid | processing | pending"
// @Success      200     {object}  listSalariesResponse
// @Failure      403     {object}  map[string]string
// @Router       /v1/salaries [get]
func (h *SalaryHandler) List(c echo.Context) error {
	records, totals, err := h.salaries.List(c.Request().Context(), ports.ListSalariesInput{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	})
	if err != nil {
		return err
	}

	resp := listSalariesResponse{
		Data: make([]salaryRecordResponse, 0, len(records)),
		Totals: salaryTotalsResponse{
			Salaries:   totals.Salaries,
			Bonuses:    totals.Bonuses,
			Deductions: totals.Deductions,
		},
	}
	for _, r := range records {
		resp.Data = append(resp.Data, salaryRecordResponse{
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.EmployeeName,
			Role:         r.Role,
			Department:   r.Department,
			BaseSalary:   r.BaseSalary,
			Bonus:        r.Bonus,
			Deductions:   r.Deductions,
			Total:        r.Total,
			Status:       r.Status,
			PaymentDate:  r.PaymentDate,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
