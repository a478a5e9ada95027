// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"employee_service/internal/feature/employee/domain"
	"employee_service/internal/feature/employee/domain/entity"
	"employee_service/internal/feature/employee/usecase"
)

// CachingEmployeeRepository decorates an EmployeeRepository with Redis caching
// of email lookups. Other reads pass straight through.
type CachingEmployeeRepository struct {
	inner     usecase.EmployeeRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.EmployeeRepository = (*CachingEmployeeRepository)(nil)

// NewCachingEmployeeRepository decorates an EmployeeRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "employees".
// A nil rdb disables caching.
func NewCachingEmployeeRepository(rdb *redis.Client, ttl time.Duration, inner usecase.EmployeeRepository, namespace string) *CachingEmployeeRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "employees"
	}
	return &CachingEmployeeRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindOne serves email lookups from the cache when possible.
// Every strategy returns the same row, so the key ignores the strategy.
func (c *CachingEmployeeRepository) FindOne(ctx context.Context, strategy domain.Strategy, field domain.Field, value string) (*entity.Employee, error) {
	if c.rdb == nil || field != domain.FieldEmail {
		return c.inner.FindOne(ctx, strategy, field, value)
	}

	key := c.emailKey(value)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Employee
		if err := json.Unmarshal(b, &out); err == nil && out.Email == value {
			return &out, nil
		}
		// corrupted or foreign entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database. Misses are not cached.
	out, err := c.inner.FindOne(ctx, strategy, field, value)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.Warn("employee cache write failed", "key", key, "error", err)
		}
	}
	return out, nil
}

func (c *CachingEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return c.inner.ExistsByEmail(ctx, email)
}

// Insert stores the employee and drops any entry left under its email.
func (c *CachingEmployeeRepository) Insert(ctx context.Context, e *entity.Employee) error {
	if err := c.inner.Insert(ctx, e); err != nil {
		return err
	}
	c.invalidate(ctx, e.Email)
	return nil
}

// Update writes through and invalidates the cached lookup, also when the
// row is already gone.
func (c *CachingEmployeeRepository) Update(ctx context.Context, e *entity.Employee) error {
	if err := c.inner.Update(ctx, e); err != nil {
		if errors.Is(err, usecase.ErrEmployeeNotFound) {
			c.invalidate(ctx, e.Email)
		}
		return err
	}
	c.invalidate(ctx, e.Email)
	return nil
}

// Delete removes the employee and invalidates the cached lookup.
func (c *CachingEmployeeRepository) Delete(ctx context.Context, e *entity.Employee) error {
	if err := c.inner.Delete(ctx, e); err != nil {
		return err
	}
	c.invalidate(ctx, e.Email)
	return nil
}

func (c *CachingEmployeeRepository) ListAll(ctx context.Context) ([]entity.Employee, error) {
	return c.inner.ListAll(ctx)
}

// invalidate drops the cached lookup for email. Failures are only logged.
func (c *CachingEmployeeRepository) invalidate(ctx context.Context, email string) {
	if c.rdb == nil {
		return
	}
	key := c.emailKey(email)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		slog.Warn("employee cache invalidation failed", "key", key, "error", err)
	}
}

// emailKey generates the cache key for an email lookup.
// The email is used verbatim; Redis keys are binary safe.
func (c *CachingEmployeeRepository) emailKey(email string) string {
	return c.namespace + ":email:" + email
}
