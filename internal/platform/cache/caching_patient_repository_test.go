package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"

	"patient_backend/internal/feature/patients/domain/entity"
)

// mockPatientRepository is a test double for the inner repository.
type mockPatientRepository struct {
	findAllFn  func(ctx context.Context) ([]entity.Patient, error)
	findByIDFn func(ctx context.Context, id uint) (*entity.Patient, error)
	createFn   func(ctx context.Context, user *entity.User, patient *entity.Patient) error
	deleteFn   func(ctx context.Context, patient *entity.Patient) error
	updateFn   func(ctx context.Context, patientID, userID uint, userCols, patientCols map[string]any) error
}

func (m *mockPatientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return nil, nil
}

func (m *mockPatientRepository) FindByID(ctx context.Context, id uint) (*entity.Patient, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPatientRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (m *mockPatientRepository) IDNoExists(ctx context.Context, idNo string, excludeUserID uint) (bool, error) {
	return false, nil
}

func (m *mockPatientRepository) Create(ctx context.Context, user *entity.User, patient *entity.Patient) error {
	if m.createFn != nil {
		return m.createFn(ctx, user, patient)
	}
	return nil
}

func (m *mockPatientRepository) Update(ctx context.Context, patientID, userID uint, userCols, patientCols map[string]any) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, patientID, userID, userCols, patientCols)
	}
	return nil
}

func (m *mockPatientRepository) Delete(ctx context.Context, patient *entity.Patient) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, patient)
	}
	return nil
}

func TestNewCachingPatientRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{
			name:              "default values when zero/empty",
			ttl:               0,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "patients",
		},
		{
			name:              "negative ttl uses default",
			ttl:               -1 * time.Minute,
			namespace:         "",
			expectedTTL:       5 * time.Minute,
			expectedNamespace: "patients",
		},
		{
			name:              "custom values preserved",
			ttl:               10 * time.Minute,
			namespace:         "custom",
			expectedTTL:       10 * time.Minute,
			expectedNamespace: "custom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingPatientRepository(nil, tt.ttl, &mockPatientRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

func TestCachingPatientRepository_FindAll_NilRedis(t *testing.T) {
	t.Parallel()

	innerCalled := false
	inner := &mockPatientRepository{
		findAllFn: func(ctx context.Context) ([]entity.Patient, error) {
			innerCalled = true
			return []entity.Patient{{ID: 1}}, nil
		},
	}

	repo := NewCachingPatientRepository(nil, time.Minute, inner, "patients")
	out, err := repo.FindAll(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !innerCalled {
		t.Error("inner repository should be called when Redis is nil")
	}
	if len(out) != 1 || out[0].ID != 1 {
		t.Errorf("unexpected result: %+v", out)
	}
}

func TestCachingPatientRepository_FindAll_CacheHit(t *testing.T) {
	t.Parallel()

	cached := []entity.Patient{{ID: 1, MediumAcquisition: "Online"}}
	b, err := json.Marshal(cached)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("patients:all").SetVal(string(b))

	inner := &mockPatientRepository{
		findAllFn: func(ctx context.Context) ([]entity.Patient, error) {
			t.Error("inner repository must not be called on a cache hit")
			return nil, nil
		},
	}

	repo := NewCachingPatientRepository(rdb, time.Minute, inner, "patients")
	out, err := repo.FindAll(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].MediumAcquisition != "Online" {
		t.Errorf("unexpected result: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestCachingPatientRepository_FindAll_CacheMissStores(t *testing.T) {
	t.Parallel()

	fresh := []entity.Patient{{ID: 2, MediumAcquisition: "Referral"}}
	b, err := json.Marshal(fresh)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("patients:all").RedisNil()
	mock.ExpectSet("patients:all", b, time.Minute).SetVal("OK")

	inner := &mockPatientRepository{
		findAllFn: func(ctx context.Context) ([]entity.Patient, error) {
			return fresh, nil
		},
	}

	repo := NewCachingPatientRepository(rdb, time.Minute, inner, "patients")
	out, err := repo.FindAll(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != 2 {
		t.Errorf("unexpected result: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestCachingPatientRepository_FindAll_InnerError(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("patients:all").RedisNil()

	expectedErr := errors.New("database error")
	inner := &mockPatientRepository{
		findAllFn: func(ctx context.Context) ([]entity.Patient, error) {
			return nil, expectedErr
		},
	}

	repo := NewCachingPatientRepository(rdb, time.Minute, inner, "patients")
	_, err := repo.FindAll(context.Background())

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected the inner error, got %v", err)
	}
}

func TestCachingPatientRepository_Create_Invalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("patients:all").SetVal(1)

	inner := &mockPatientRepository{}
	repo := NewCachingPatientRepository(rdb, time.Minute, inner, "patients")

	err := repo.Create(context.Background(), &entity.User{}, &entity.Patient{})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestCachingPatientRepository_Create_ErrorSkipsInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()

	expectedErr := errors.New("write failed")
	inner := &mockPatientRepository{
		createFn: func(ctx context.Context, user *entity.User, patient *entity.Patient) error {
			return expectedErr
		},
	}

	repo := NewCachingPatientRepository(rdb, time.Minute, inner, "patients")
	err := repo.Create(context.Background(), &entity.User{}, &entity.Patient{})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected the inner error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("cache must stay untouched on a failed write: %v", err)
	}
}

func TestCachingPatientRepository_Delete_Invalidates(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel("patients:all").SetVal(1)

	repo := NewCachingPatientRepository(rdb, time.Minute, &mockPatientRepository{}, "patients")
	err := repo.Delete(context.Background(), &entity.Patient{ID: 1})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet redis expectations: %v", err)
	}
}

func TestCachingPatientRepository_FindByID_BypassesCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()

	inner := &mockPatientRepository{
		findByIDFn: func(ctx context.Context, id uint) (*entity.Patient, error) {
			return &entity.Patient{ID: id}, nil
		},
	}

	repo := NewCachingPatientRepository(rdb, time.Minute, inner, "patients")
	out, err := repo.FindByID(context.Background(), 5)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != 5 {
		t.Errorf("unexpected result: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("single-row reads must not touch the cache: %v", err)
	}
}
