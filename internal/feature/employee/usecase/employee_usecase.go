package usecase

import (
	"context"
	"errors"
	"fmt"

	"employee_service/internal/feature/employee/domain"
	"employee_service/internal/feature/employee/domain/entity"
)

// EmployeeRepository abstracts the persistence layer for employee records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type EmployeeRepository interface {
	// FindOne returns the single employee whose field equals value, using the given strategy.
	// It returns ErrEmployeeNotFound if nothing matches.
	FindOne(ctx context.Context, strategy domain.Strategy, field domain.Field, value string) (*entity.Employee, error)

	// ExistsByEmail reports whether an employee with the email is stored.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Insert persists a new employee and assigns its ID.
	// It returns ErrEmailAlreadyExists if the store rejects the email as a duplicate.
	Insert(ctx context.Context, e *entity.Employee) error

	// Update persists the mutable fields of an already stored employee.
	// It returns ErrEmployeeNotFound if the row no longer exists.
	Update(ctx context.Context, e *entity.Employee) error

	// Delete removes an already stored employee.
	Delete(ctx context.Context, e *entity.Employee) error

	// ListAll returns every stored employee in insertion order.
	ListAll(ctx context.Context) ([]entity.Employee, error)
}

// CreateInput carries the fields accepted when creating an employee.
type CreateInput struct {
	Name  string
	Email string
	Phone *string
}

// UpdateInput carries the fields accepted by a full update.
// A nil field is left untouched.
type UpdateInput struct {
	LastName *string
	Phone    *string
	Address  *string
}

// EmployeeUsecase provides business logic for employee operations.
type EmployeeUsecase struct {
	repo EmployeeRepository
}

// NewEmployeeUsecase creates a new EmployeeUsecase with the given repository.
func NewEmployeeUsecase(r EmployeeRepository) *EmployeeUsecase {
	return &EmployeeUsecase{repo: r}
}

// GetByEmail looks an employee up by email with the given strategy.
func (u *EmployeeUsecase) GetByEmail(ctx context.Context, strategy domain.Strategy, email string) (*entity.Employee, error) {
	return u.find(ctx, strategy, domain.FieldEmail, email)
}

// GetByName looks an employee up by first name with the given strategy.
// When several employees share the name, the one with the lowest ID is returned.
func (u *EmployeeUsecase) GetByName(ctx context.Context, strategy domain.Strategy, name string) (*entity.Employee, error) {
	return u.find(ctx, strategy, domain.FieldFirstName, name)
}

func (u *EmployeeUsecase) find(ctx context.Context, strategy domain.Strategy, field domain.Field, value string) (*entity.Employee, error) {
	e, err := u.repo.FindOne(ctx, strategy, field, value)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			return nil, fmt.Errorf("%w with %s: %s", ErrEmployeeNotFound, field, value)
		}
		return nil, err
	}
	return e, nil
}

// Create registers a new employee. The email must not already be in use.
func (u *EmployeeUsecase) Create(ctx context.Context, in CreateInput) (*entity.Employee, error) {
	exists, err := u.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrEmailAlreadyExists, in.Email)
	}

	e := &entity.Employee{
		FirstName: in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
	}
	// The unique index still decides when two creates race past the check above.
	if err := u.repo.Insert(ctx, e); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, fmt.Errorf("%w: %s", ErrEmailAlreadyExists, in.Email)
		}
		return nil, err
	}
	return e, nil
}

// Update overwrites the non-nil fields of in on the employee identified by email.
func (u *EmployeeUsecase) Update(ctx context.Context, email string, in UpdateInput) (*entity.Employee, error) {
	e, err := u.GetByEmail(ctx, domain.StrategyQuery, email)
	if err != nil {
		return nil, err
	}

	if in.LastName != nil {
		e.LastName = in.LastName
	}
	if in.Phone != nil {
		e.Phone = in.Phone
	}
	if in.Address != nil {
		e.Address = in.Address
	}

	if err := u.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// UpdatePhone replaces the phone of the employee identified by email.
func (u *EmployeeUsecase) UpdatePhone(ctx context.Context, email, phone string) (*entity.Employee, error) {
	e, err := u.GetByEmail(ctx, domain.StrategyQuery, email)
	if err != nil {
		return nil, err
	}

	e.Phone = &phone
	if err := u.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteByEmail removes the employee identified by email.
func (u *EmployeeUsecase) DeleteByEmail(ctx context.Context, email string) error {
	e, err := u.GetByEmail(ctx, domain.StrategyQuery, email)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, e)
}

// ListAll returns every employee in storage order.
func (u *EmployeeUsecase) ListAll(ctx context.Context) ([]entity.Employee, error) {
	return u.repo.ListAll(ctx)
}
