// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"patient_backend/internal/feature/patients/domain/entity"
	"patient_backend/internal/feature/patients/usecase"
)

// CachingPatientRepository decorates a PatientRepository with Redis caching
// of the full patient listing. It implements the decorator pattern,
// transparently adding caching without modifying the underlying repository.
// Existence probes and single-row reads always go to the database since they
// feed uniqueness decisions.
type CachingPatientRepository struct {
	inner     usecase.PatientRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator satisfies usecase.PatientRepository.
var _ usecase.PatientRepository = (*CachingPatientRepository)(nil)

// NewCachingPatientRepository decorates a PatientRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is empty, it
// uses "patients".
func NewCachingPatientRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PatientRepository, namespace string) *CachingPatientRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "patients"
	}
	return &CachingPatientRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listKey is the cache key holding the serialized listing.
func (c *CachingPatientRepository) listKey() string {
	return c.namespace + ":all"
}

// invalidate drops the cached listing. Best effort: a cache that cannot be
// cleaned must not fail the write that already committed.
func (c *CachingPatientRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey()).Err()
}

// FindAll retrieves the listing, checking the cache first and falling back
// to the database.
func (c *CachingPatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Patient
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID always hits the database.
func (c *CachingPatientRepository) FindByID(ctx context.Context, id uint) (*entity.Patient, error) {
	return c.inner.FindByID(ctx, id)
}

// EmailExists always hits the database; a stale answer here would break the
// email probe.
func (c *CachingPatientRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return c.inner.EmailExists(ctx, email)
}

// IDNoExists always hits the database for the same reason as EmailExists.
func (c *CachingPatientRepository) IDNoExists(ctx context.Context, idNo string, excludeUserID uint) (bool, error) {
	return c.inner.IDNoExists(ctx, idNo, excludeUserID)
}

// Create writes through to the database and invalidates the cached listing.
func (c *CachingPatientRepository) Create(ctx context.Context, user *entity.User, patient *entity.Patient) error {
	if err := c.inner.Create(ctx, user, patient); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Update writes through to the database and invalidates the cached listing.
func (c *CachingPatientRepository) Update(ctx context.Context, patientID, userID uint, userCols, patientCols map[string]any) error {
	if err := c.inner.Update(ctx, patientID, userID, userCols, patientCols); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete writes through to the database and invalidates the cached listing.
func (c *CachingPatientRepository) Delete(ctx context.Context, patient *entity.Patient) error {
	if err := c.inner.Delete(ctx, patient); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}
