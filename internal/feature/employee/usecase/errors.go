// Package usecase implements the business logic for the employee feature.
package usecase

import "errors"

var (
	// ErrEmployeeNotFound is returned when no employee matches a lookup key.
	// Callers wrap it with the key that was searched.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmailAlreadyExists is returned when creating an employee whose email is taken.
	ErrEmailAlreadyExists = errors.New("email already exists")
)
