// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"employee_service/internal/feature/employee/adapters"
	"employee_service/internal/feature/employee/transport/handler"
	"employee_service/internal/feature/employee/usecase"
	"employee_service/internal/platform/cache"
	"employee_service/internal/platform/metrics"
)

// NewEmployeeRepository creates an EmployeeRepository implementation.
// If Redis is available, the SQL repository is wrapped with the lookup cache.
// Otherwise the SQL repository is returned as is.
func NewEmployeeRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration, m *metrics.Metrics) usecase.EmployeeRepository {
	repo := adapters.NewEmployeeRepository(db, m)
	if rdb != nil {
		return cache.NewCachingEmployeeRepository(rdb, ttl, repo, "employees")
	}
	return repo
}

// NewEmployeeUsecase wires the business layer over the repository chosen by NewEmployeeRepository.
func NewEmployeeUsecase(db *gorm.DB, rdb *redis.Client, ttl time.Duration, m *metrics.Metrics) *usecase.EmployeeUsecase {
	return usecase.NewEmployeeUsecase(NewEmployeeRepository(db, rdb, ttl, m))
}

// NewEmployeeHandler wires the full employee stack down to storage.
func NewEmployeeHandler(db *gorm.DB, rdb *redis.Client, ttl time.Duration, m *metrics.Metrics) *handler.EmployeeHandler {
	return handler.NewEmployeeHandler(NewEmployeeUsecase(db, rdb, ttl, m))
}
