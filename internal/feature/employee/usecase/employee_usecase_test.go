package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee_service/internal/feature/employee/domain"
	"employee_service/internal/feature/employee/domain/entity"
	"employee_service/internal/feature/employee/usecase"
)

// mockEmployeeRepository is a mock implementation of the EmployeeRepository interface.
type mockEmployeeRepository struct {
	FindOneFunc       func(ctx context.Context, strategy domain.Strategy, field domain.Field, value string) (*entity.Employee, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	InsertFunc        func(ctx context.Context, e *entity.Employee) error
	UpdateFunc        func(ctx context.Context, e *entity.Employee) error
	DeleteFunc        func(ctx context.Context, e *entity.Employee) error
	ListAllFunc       func(ctx context.Context) ([]entity.Employee, error)
}

func (m *mockEmployeeRepository) FindOne(ctx context.Context, strategy domain.Strategy, field domain.Field, value string) (*entity.Employee, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, strategy, field, value)
	}
	return nil, usecase.ErrEmployeeNotFound
}

func (m *mockEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockEmployeeRepository) Insert(ctx context.Context, e *entity.Employee) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, e)
	}
	e.ID = 1
	return nil
}

func (m *mockEmployeeRepository) Update(ctx context.Context, e *entity.Employee) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, e)
	}
	return nil
}

func (m *mockEmployeeRepository) Delete(ctx context.Context, e *entity.Employee) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, e)
	}
	return nil
}

func (m *mockEmployeeRepository) ListAll(ctx context.Context) ([]entity.Employee, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func ptr(s string) *string { return &s }

// storedJohn returns a fresh copy of a fully populated employee.
func storedJohn() *entity.Employee {
	return &entity.Employee{
		ID:        7,
		FirstName: "John",
		LastName:  ptr("Doe"),
		Email:     "john.doe@example.com",
		Phone:     ptr("1234567890"),
		Address:   ptr("123 Main St"),
	}
}

func findJohn(_ context.Context, _ domain.Strategy, _ domain.Field, value string) (*entity.Employee, error) {
	if value == "john.doe@example.com" {
		return storedJohn(), nil
	}
	return nil, usecase.ErrEmployeeNotFound
}

func TestNewEmployeeUsecase(t *testing.T) {
	t.Parallel()

	uc := usecase.NewEmployeeUsecase(&mockEmployeeRepository{})

	assert.NotNil(t, uc, "usecase should not be nil")
}

func TestEmployeeUsecase_GetByEmail(t *testing.T) {
	t.Parallel()

	for _, strategy := range domain.Strategies {
		t.Run(string(strategy), func(t *testing.T) {
			t.Parallel()

			var gotStrategy domain.Strategy
			var gotField domain.Field
			repo := &mockEmployeeRepository{
				FindOneFunc: func(ctx context.Context, s domain.Strategy, f domain.Field, v string) (*entity.Employee, error) {
					gotStrategy, gotField = s, f
					return findJohn(ctx, s, f, v)
				},
			}
			uc := usecase.NewEmployeeUsecase(repo)

			e, err := uc.GetByEmail(context.Background(), strategy, "john.doe@example.com")

			require.NoError(t, err)
			assert.Equal(t, "John", e.FirstName)
			assert.Equal(t, strategy, gotStrategy)
			assert.Equal(t, domain.FieldEmail, gotField)

			_, err = uc.GetByEmail(context.Background(), strategy, "missing@example.com")
			assert.ErrorIs(t, err, usecase.ErrEmployeeNotFound)
			assert.EqualError(t, err, "employee not found with email: missing@example.com")
		})
	}
}

func TestEmployeeUsecase_GetByName(t *testing.T) {
	t.Parallel()

	repo := &mockEmployeeRepository{
		FindOneFunc: func(_ context.Context, _ domain.Strategy, f domain.Field, v string) (*entity.Employee, error) {
			if f == domain.FieldFirstName && v == "John" {
				return storedJohn(), nil
			}
			return nil, usecase.ErrEmployeeNotFound
		},
	}
	uc := usecase.NewEmployeeUsecase(repo)

	e, err := uc.GetByName(context.Background(), domain.StrategyNative, "John")
	require.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", e.Email)

	_, err = uc.GetByName(context.Background(), domain.StrategyNative, "Nobody")
	assert.ErrorIs(t, err, usecase.ErrEmployeeNotFound)
	assert.EqualError(t, err, "employee not found with name: Nobody")
}

func TestEmployeeUsecase_GetByEmail_StorageFault(t *testing.T) {
	t.Parallel()

	repo := &mockEmployeeRepository{
		FindOneFunc: func(context.Context, domain.Strategy, domain.Field, string) (*entity.Employee, error) {
			return nil, errors.New("database connection failed")
		},
	}
	uc := usecase.NewEmployeeUsecase(repo)

	_, err := uc.GetByEmail(context.Background(), domain.StrategyQuery, "john.doe@example.com")

	assert.EqualError(t, err, "database connection failed")
	assert.NotErrorIs(t, err, usecase.ErrEmployeeNotFound)
}

func TestEmployeeUsecase_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       usecase.CreateInput
		exists      bool
		existsErr   error
		insertErr   error
		wantErr     error
		wantInserts int
	}{
		{
			name:        "success: name, email and phone",
			input:       usecase.CreateInput{Name: "Jane", Email: "jane@example.com", Phone: ptr("9876543210")},
			wantInserts: 1,
		},
		{
			name:        "success: without phone",
			input:       usecase.CreateInput{Name: "John", Email: "john@x.com"},
			wantInserts: 1,
		},
		{
			name:        "failure: email already exists",
			input:       usecase.CreateInput{Name: "Jane", Email: "jane@example.com"},
			exists:      true,
			wantErr:     usecase.ErrEmailAlreadyExists,
			wantInserts: 0,
		},
		{
			name:        "failure: unique index rejects a racing insert",
			input:       usecase.CreateInput{Name: "Jane", Email: "jane@example.com"},
			insertErr:   usecase.ErrEmailAlreadyExists,
			wantErr:     usecase.ErrEmailAlreadyExists,
			wantInserts: 1,
		},
		{
			name:        "failure: existence check fails",
			input:       usecase.CreateInput{Name: "Jane", Email: "jane@example.com"},
			existsErr:   errors.New("connection refused"),
			wantInserts: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var inserted []*entity.Employee
			repo := &mockEmployeeRepository{
				ExistsByEmailFunc: func(context.Context, string) (bool, error) { return tt.exists, tt.existsErr },
				InsertFunc: func(_ context.Context, e *entity.Employee) error {
					inserted = append(inserted, e)
					if tt.insertErr != nil {
						return tt.insertErr
					}
					e.ID = 42
					return nil
				},
			}
			uc := usecase.NewEmployeeUsecase(repo)

			e, err := uc.Create(context.Background(), tt.input)

			assert.Len(t, inserted, tt.wantInserts)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, e)
			case tt.existsErr != nil:
				assert.ErrorIs(t, err, tt.existsErr)
				assert.Nil(t, e)
			default:
				require.NoError(t, err)
				assert.Equal(t, uint(42), e.ID)
				assert.Equal(t, tt.input.Name, e.FirstName)
				assert.Equal(t, tt.input.Email, e.Email)
				assert.Equal(t, tt.input.Phone, e.Phone)
				assert.Nil(t, e.LastName)
				assert.Nil(t, e.Address)
			}
		})
	}
}

func TestEmployeeUsecase_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    usecase.UpdateInput
		expected func(e *entity.Employee)
	}{
		{
			name:  "only last name supplied",
			input: usecase.UpdateInput{LastName: ptr("Smith")},
			expected: func(e *entity.Employee) {
				e.LastName = ptr("Smith")
			},
		},
		{
			name:  "all fields supplied",
			input: usecase.UpdateInput{LastName: ptr("Smith"), Phone: ptr("9999999999"), Address: ptr("456 New St")},
			expected: func(e *entity.Employee) {
				e.LastName = ptr("Smith")
				e.Phone = ptr("9999999999")
				e.Address = ptr("456 New St")
			},
		},
		{
			name:     "nothing supplied",
			input:    usecase.UpdateInput{},
			expected: func(*entity.Employee) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var saved *entity.Employee
			repo := &mockEmployeeRepository{
				FindOneFunc: findJohn,
				UpdateFunc: func(_ context.Context, e *entity.Employee) error {
					saved = e
					return nil
				},
			}
			uc := usecase.NewEmployeeUsecase(repo)

			e, err := uc.Update(context.Background(), "john.doe@example.com", tt.input)

			require.NoError(t, err)
			want := storedJohn()
			tt.expected(want)
			assert.Equal(t, want, e)
			assert.Equal(t, want, saved)
		})
	}
}

func TestEmployeeUsecase_Update_NotFound(t *testing.T) {
	t.Parallel()

	updated := false
	repo := &mockEmployeeRepository{
		FindOneFunc: findJohn,
		UpdateFunc: func(context.Context, *entity.Employee) error {
			updated = true
			return nil
		},
	}
	uc := usecase.NewEmployeeUsecase(repo)

	_, err := uc.Update(context.Background(), "notfound@example.com", usecase.UpdateInput{LastName: ptr("X")})

	assert.ErrorIs(t, err, usecase.ErrEmployeeNotFound)
	assert.False(t, updated, "no write on a missing employee")
}

func TestEmployeeUsecase_UpdatePhone(t *testing.T) {
	t.Parallel()

	repo := &mockEmployeeRepository{FindOneFunc: findJohn}
	uc := usecase.NewEmployeeUsecase(repo)

	e, err := uc.UpdatePhone(context.Background(), "john.doe@example.com", "1111111111")

	require.NoError(t, err)
	assert.Equal(t, "1111111111", *e.Phone)
	assert.Equal(t, "123 Main St", *e.Address, "address is untouched")
	assert.Equal(t, "Doe", *e.LastName, "last name is untouched")

	_, err = uc.UpdatePhone(context.Background(), "notfound@example.com", "1111111111")
	assert.ErrorIs(t, err, usecase.ErrEmployeeNotFound)
}

func TestEmployeeUsecase_DeleteByEmail(t *testing.T) {
	t.Parallel()

	var deleted *entity.Employee
	repo := &mockEmployeeRepository{
		FindOneFunc: findJohn,
		DeleteFunc: func(_ context.Context, e *entity.Employee) error {
			deleted = e
			return nil
		},
	}
	uc := usecase.NewEmployeeUsecase(repo)

	require.NoError(t, uc.DeleteByEmail(context.Background(), "john.doe@example.com"))
	require.NotNil(t, deleted)
	assert.Equal(t, uint(7), deleted.ID)

	deleted = nil
	err := uc.DeleteByEmail(context.Background(), "notfound@example.com")
	assert.ErrorIs(t, err, usecase.ErrEmployeeNotFound)
	assert.Nil(t, deleted)
}

func TestEmployeeUsecase_ListAll(t *testing.T) {
	t.Parallel()

	repo := &mockEmployeeRepository{
		ListAllFunc: func(context.Context) ([]entity.Employee, error) {
			return []entity.Employee{*storedJohn(), {ID: 8, FirstName: "Jane", Email: "jane@example.com"}}, nil
		},
	}
	uc := usecase.NewEmployeeUsecase(repo)

	employees, err := uc.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, uint(7), employees[0].ID)
	assert.Equal(t, uint(8), employees[1].ID)
}

func TestEmployeeUsecase_ListAll_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := &mockEmployeeRepository{
		ListAllFunc: func(ctx context.Context) ([]entity.Employee, error) {
			return nil, ctx.Err()
		},
	}
	uc := usecase.NewEmployeeUsecase(repo)

	employees, err := uc.ListAll(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, employees)
}
