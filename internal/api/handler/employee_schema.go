package handler

import "github.com/photoalbums/studio-api/internal/core/domain"

// createEmployeeRequest is the admin "add employee" form.
type createEmployeeRequest struct {
	Name       string  `json:"name"       validate:"required"`
	Email      string  `json:"email"      validate:"required"`
	Role       string  `json:"role"       validate:"required,oneof=photographer designer admin"`
	Phone      string  `json:"phone"`
	Telegram   string  `json:"telegram"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Salary     float64 `json:"salary"     validate:"gte=0"`
	Avatar     string  `json:"avatar"`
}

// updateEmployeeRequest is a partial update; absent fields stay untouched.
// The record's id and creation time are immutable and not accepted here.
type updateEmployeeRequest struct {
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	Role       *string  `json:"role"       validate:"omitempty,oneof=photographer designer admin"`
	Phone      *string  `json:"phone"`
	Telegram   *string  `json:"telegram"`
	Department *string  `json:"department"`
	Position   *string  `json:"position"`
	Salary     *float64 `json:"salary"     validate:"omitempty,gte=0"`
	Avatar     *string  `json:"avatar"`
}

type listEmployeesResponse struct {
	Data  []domain.User `json:"data"`
	Total int           `json:"total"`
}
