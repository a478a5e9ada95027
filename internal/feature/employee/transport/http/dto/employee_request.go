// Package dto defines data transfer objects for the employee HTTP API.
package dto

// CreateEmployeeReq represents the request body for POST /api/employees.
// Name and email are required and must not be blank; phone is optional.
type CreateEmployeeReq struct {
	Name  string  `json:"name" binding:"required,notblank"`
	Email string  `json:"email" binding:"required,notblank,email"`
	Phone *string `json:"phone"`
}

// UpdateEmployeeReq represents the request body for PUT /api/employees/:email.
// Omitted or null fields are left unchanged.
type UpdateEmployeeReq struct {
	LastName *string `json:"lastName"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// UpdatePhoneReq represents the request body for PATCH /api/employees/:email/phone.
type UpdatePhoneReq struct {
	Phone string `json:"phone" binding:"required,notblank"`
}
