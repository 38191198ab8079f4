// Package adapters provides the repository implementations for the patients feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"patient_backend/internal/feature/patients/domain/entity"
	"patient_backend/internal/feature/patients/usecase"
)

// pgUniqueViolation is the postgres SQLSTATE for a unique constraint violation.
const pgUniqueViolation = "23505"

// patientGorm is the GORM implementation of the PatientRepository interface.
type patientGorm struct {
	db *gorm.DB
}

// Compile-time check that patientGorm satisfies usecase.PatientRepository.
var _ usecase.PatientRepository = (*patientGorm)(nil)

// NewPatientGorm creates a patientGorm instance on the given gorm.DB
// connection. Constructor for dependency injection.
func NewPatientGorm(db *gorm.DB) *patientGorm {
	return &patientGorm{db: db}
}

// isUniqueViolation reports whether err came from a uniqueness constraint.
// GORM's error translation covers the sqlite test driver; the pgconn check
// covers postgres deployments regardless of translation settings.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// FindAll returns every patient with its user preloaded, ordered by ID.
func (r *patientGorm) FindAll(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	if err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// FindByID returns the patient with its user preloaded.
// It returns usecase.ErrPatientNotFound when no row exists.
func (r *patientGorm) FindByID(ctx context.Context, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&patient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// EmailExists reports whether any user holds the given email.
func (r *patientGorm) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IDNoExists reports whether a user other than excludeUserID holds the given
// identity-document number. excludeUserID 0 means no exclusion.
func (r *patientGorm) IDNoExists(ctx context.Context, idNo string, excludeUserID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&entity.User{}).Where("id_no = ?", idNo)
	if excludeUserID != 0 {
		q = q.Where("id <> ?", excludeUserID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the user and its patient inside a single transaction so a
// partial failure never leaves an orphan user behind. A uniqueness violation
// (email probe race, id_no race) is reported as usecase.ErrDuplicateRecord.
func (r *patientGorm) Create(ctx context.Context, user *entity.User, patient *entity.Patient) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		patient.UserID = user.ID
		return tx.Create(patient).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrDuplicateRecord
		}
		return err
	}
	return nil
}

// Update applies the given column sets to the user and patient rows in one
// transaction. Empty maps are skipped so untouched rows keep their
// updated_at timestamps.
func (r *patientGorm) Update(ctx context.Context, patientID, userID uint, userCols, patientCols map[string]any) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(userCols) > 0 {
			if err := tx.Model(&entity.User{}).Where("id = ?", userID).Updates(userCols).Error; err != nil {
				return err
			}
		}
		if len(patientCols) > 0 {
			if err := tx.Model(&entity.Patient{}).Where("id = ?", patientID).Updates(patientCols).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrDuplicateRecord
		}
		return err
	}
	return nil
}

// Delete removes the owning user first and then the patient, wrapped in a
// transaction so the pair can never half-disappear.
func (r *patientGorm) Delete(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.User{}, patient.UserID).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Patient{}, patient.ID).Error
	})
}
