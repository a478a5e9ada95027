package dto

import "employee_service/internal/feature/employee/domain/entity"

// EmployeeRes is the public projection of an employee.
// Unset optional fields are serialized as null.
type EmployeeRes struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// NewEmployeeRes projects e onto the response shape.
func NewEmployeeRes(e *entity.Employee) EmployeeRes {
	return EmployeeRes{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Phone:     e.Phone,
		Address:   e.Address,
	}
}

// ErrorRes is the body returned for every failed request.
type ErrorRes struct {
	Error string `json:"error"`
}
