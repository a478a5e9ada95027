// Package adapters provides repository implementations for the employee feature.
package adapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"employee_service/internal/feature/employee/domain"
	"employee_service/internal/feature/employee/domain/entity"
	"employee_service/internal/feature/employee/usecase"
	"employee_service/internal/platform/metrics"
)

// pgUniqueViolation is the Postgres SQLSTATE for a unique index violation.
const pgUniqueViolation = "23505"

// lookupColumns whitelists the columns an equality lookup may target.
var lookupColumns = map[domain.Field]string{
	domain.FieldEmail:     "email",
	domain.FieldFirstName: "first_name",
}

// employeeSQL is the SQL implementation of the EmployeeRepository interface.
// It uses GORM and works against both Postgres and SQLite.
type employeeSQL struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

var _ usecase.EmployeeRepository = (*employeeSQL)(nil)

// NewEmployeeRepository creates a new employeeSQL with the given DB connection.
// m may be nil, in which case query durations are not recorded.
func NewEmployeeRepository(db *gorm.DB, m *metrics.Metrics) *employeeSQL {
	return &employeeSQL{db: db, metrics: m}
}

// FindOne returns the employee whose field equals value.
// Every strategy orders by id, so duplicate first names resolve to the same row.
func (r *employeeSQL) FindOne(ctx context.Context, strategy domain.Strategy, field domain.Field, value string) (*entity.Employee, error) {
	column, ok := lookupColumns[field]
	if !ok {
		return nil, fmt.Errorf("unsupported lookup field: %s", field)
	}
	defer r.metrics.ObserveQuery(fmt.Sprintf("find_%s_%s", field, strategy), time.Now())

	var (
		e   entity.Employee
		err error
	)
	switch strategy {
	case domain.StrategySpecification:
		err = r.db.WithContext(ctx).Scopes(hasValue(column, value)).First(&e).Error
	case domain.StrategyQuery:
		err = r.db.WithContext(ctx).
			Where(column+" = @value", sql.Named("value", value)).
			First(&e).Error
	case domain.StrategyNative:
		err = r.findNative(ctx, column, value, &e)
	default:
		return nil, fmt.Errorf("unsupported lookup strategy: %s", strategy)
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee by %s: %w", field, err)
	}
	return &e, nil
}

// hasValue is a criteria scope matching rows whose column equals value.
func hasValue(column, value string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause.Eq{Column: clause.Column{Name: column}, Value: value})
	}
}

// findNative runs the lookup as literal SQL. column must come from lookupColumns.
func (r *employeeSQL) findNative(ctx context.Context, column, value string, dest *entity.Employee) error {
	query := "SELECT * FROM employees WHERE " + column + " = ? ORDER BY id LIMIT 1"
	res := r.db.WithContext(ctx).Raw(query, value).Scan(dest)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByEmail reports whether an employee with the email is stored.
func (r *employeeSQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	defer r.metrics.ObserveQuery("exists_email", time.Now())

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Employee{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check employee email: %w", err)
	}
	return count > 0, nil
}

// Insert adds the employee to the database and sets its ID.
// A duplicate email returns usecase.ErrEmailAlreadyExists.
func (r *employeeSQL) Insert(ctx context.Context, e *entity.Employee) error {
	defer r.metrics.ObserveQuery("insert", time.Now())

	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

// Update writes lastName, phone and address back to the employee's row.
// It never recreates a row: if the row is gone it returns
// usecase.ErrEmployeeNotFound.
func (r *employeeSQL) Update(ctx context.Context, e *entity.Employee) error {
	defer r.metrics.ObserveQuery("update", time.Now())

	res := r.db.WithContext(ctx).
		Model(e).
		Select("last_name", "phone", "address", "updated_at").
		Updates(e)
	if res.Error != nil {
		return fmt.Errorf("failed to update employee: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrEmployeeNotFound
	}
	return nil
}

// Delete removes the employee row by primary key.
func (r *employeeSQL) Delete(ctx context.Context, e *entity.Employee) error {
	defer r.metrics.ObserveQuery("delete", time.Now())

	if err := r.db.WithContext(ctx).Delete(e).Error; err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// ListAll returns every employee ordered by id.
func (r *employeeSQL) ListAll(ctx context.Context) ([]entity.Employee, error) {
	defer r.metrics.ObserveQuery("list_all", time.Now())

	var employees []entity.Employee
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// isUniqueViolation detects a duplicate key from either GORM's translated
// error or a raw Postgres error.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
