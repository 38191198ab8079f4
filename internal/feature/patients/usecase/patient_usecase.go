package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"patient_backend/internal/feature/patients/domain/entity"
)

// defaultPassword is the fixed credential every generated user starts with.
// It is hashed with bcrypt before storage and never exposed.
const defaultPassword = "Physiomobile2025@!"

// dobLayout is the wire format for dates of birth.
const dobLayout = "2006-01-02"

// PatientRepository abstracts the persistence layer for patients and their
// backing users. Following Go convention the interface is defined by the
// consumer (usecase), not the provider (adapters).
type PatientRepository interface {
	// FindAll returns every patient with its user preloaded.
	FindAll(ctx context.Context) ([]entity.Patient, error)

	// FindByID returns the patient with its user preloaded, or
	// ErrPatientNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Patient, error)

	// EmailExists reports whether any user holds the given email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// IDNoExists reports whether a user other than excludeUserID holds the
	// given identity-document number. Pass 0 to exclude nobody.
	IDNoExists(ctx context.Context, idNo string, excludeUserID uint) (bool, error)

	// Create persists the user and its patient as a single atomic unit,
	// wiring patient.UserID to the new user. A uniqueness violation is
	// reported as ErrDuplicateRecord.
	Create(ctx context.Context, user *entity.User, patient *entity.Patient) error

	// Update applies the given column sets to the user and patient rows as a
	// single atomic unit. Empty maps are skipped.
	Update(ctx context.Context, patientID, userID uint, userCols, patientCols map[string]any) error

	// Delete removes the user first and then the patient, atomically.
	Delete(ctx context.Context, patient *entity.Patient) error
}

// CreatePatientInput carries the already-validated fields of a create request.
type CreatePatientInput struct {
	Name              string
	IDType            string
	IDNo              string
	Gender            string
	DOB               string
	Address           string
	MediumAcquisition string
}

// UpdatePatientInput carries the optional fields of an update request.
// Nil pointers mean "leave untouched".
type UpdatePatientInput struct {
	Name              *string
	IDType            *string
	IDNo              *string
	Gender            *string
	DOB               *string
	Address           *string
	MediumAcquisition *string
}

// patientUsecase implements the patient workflow on top of a PatientRepository.
type patientUsecase struct {
	patients PatientRepository
}

// NewPatientUsecase creates a new patientUsecase instance.
func NewPatientUsecase(patients PatientRepository) *patientUsecase {
	return &patientUsecase{patients: patients}
}

// List returns all patients with their users.
func (u *patientUsecase) List(ctx context.Context) ([]entity.Patient, error) {
	return u.patients.FindAll(ctx)
}

// Create registers a new patient together with its backing user.
// The email is derived from the name (smallest free integer suffix) and the
// user starts with the bcrypt hash of the default password. Both rows are
// written in one transaction by the repository.
func (u *patientUsecase) Create(ctx context.Context, in CreatePatientInput) (*entity.Patient, error) {
	taken, err := u.patients.IDNoExists(ctx, in.IDNo, 0)
	if err != nil {
		return nil, fmt.Errorf("checking id_no uniqueness: %w", err)
	}
	if taken {
		return nil, ErrIDNoTaken
	}

	email, err := u.nextAvailableEmail(ctx, in.Name)
	if err != nil {
		return nil, err
	}

	dob, err := time.Parse(dobLayout, in.DOB)
	if err != nil {
		return nil, fmt.Errorf("parsing dob: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing default password: %w", err)
	}

	user := &entity.User{
		Name:     in.Name,
		IDType:   in.IDType,
		IDNo:     in.IDNo,
		Gender:   in.Gender,
		DOB:      dob,
		Address:  in.Address,
		Email:    email,
		Password: string(hashed),
	}
	patient := &entity.Patient{MediumAcquisition: in.MediumAcquisition}

	if err := u.patients.Create(ctx, user, patient); err != nil {
		return nil, err
	}
	return u.patients.FindByID(ctx, patient.ID)
}

// Get returns a single patient with its user, or ErrPatientNotFound.
func (u *patientUsecase) Get(ctx context.Context, id uint) (*entity.Patient, error) {
	return u.patients.FindByID(ctx, id)
}

// Update applies a partial update. Only present fields are written; the
// id_no uniqueness check excludes the patient's own user. An input with no
// fields set is a no-op returning the current state.
func (u *patientUsecase) Update(ctx context.Context, id uint, in UpdatePatientInput) (*entity.Patient, error) {
	patient, err := u.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.IDNo != nil {
		taken, err := u.patients.IDNoExists(ctx, *in.IDNo, patient.UserID)
		if err != nil {
			return nil, fmt.Errorf("checking id_no uniqueness: %w", err)
		}
		if taken {
			return nil, ErrIDNoTaken
		}
	}

	userCols := map[string]any{}
	if in.Name != nil {
		userCols["name"] = *in.Name
	}
	if in.IDType != nil {
		userCols["id_type"] = *in.IDType
	}
	if in.IDNo != nil {
		userCols["id_no"] = *in.IDNo
	}
	if in.Gender != nil {
		userCols["gender"] = *in.Gender
	}
	if in.DOB != nil {
		dob, err := time.Parse(dobLayout, *in.DOB)
		if err != nil {
			return nil, fmt.Errorf("parsing dob: %w", err)
		}
		userCols["dob"] = dob
	}
	if in.Address != nil {
		userCols["address"] = *in.Address
	}

	patientCols := map[string]any{}
	if in.MediumAcquisition != nil {
		patientCols["medium_acquisition"] = *in.MediumAcquisition
	}

	if len(userCols) == 0 && len(patientCols) == 0 {
		return patient, nil
	}

	if err := u.patients.Update(ctx, patient.ID, patient.UserID, userCols, patientCols); err != nil {
		return nil, err
	}
	return u.patients.FindByID(ctx, id)
}

// Delete removes the patient and its user, user first, in one transaction.
func (u *patientUsecase) Delete(ctx context.Context, id uint) error {
	patient, err := u.patients.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return u.patients.Delete(ctx, patient)
}
