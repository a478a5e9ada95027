// Package entity defines the domain entities for the employee feature.
package entity

import "time"

// Employee represents a single employee record.
// Email is the external lookup key and must be unique across all employees;
// ID is the surrogate key assigned by the store on creation.
type Employee struct {
	// ID is assigned once at creation and never changes.
	ID uint `gorm:"primaryKey" json:"id"`

	// FirstName is required on creation.
	FirstName string `gorm:"column:first_name;size:255;not null;index" json:"firstName"`

	// LastName, Phone and Address are optional. nil means "never set".
	LastName *string `gorm:"column:last_name;size:255" json:"lastName"`
	Email    string  `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Phone    *string `gorm:"size:50" json:"phone"`
	Address  *string `gorm:"size:512" json:"address"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the table name for GORM.
func (Employee) TableName() string {
	return "employees"
}
