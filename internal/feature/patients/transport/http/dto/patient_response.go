package dto

import (
	"patient_backend/internal/feature/patients/domain/entity"
)

// timestampLayout is the rendering format for created_at/updated_at fields.
const timestampLayout = "2006-01-02 15:04:05"

// dobLayout is the rendering format for dates of birth.
const dobLayout = "2006-01-02"

// PatientSummary is one element of the GET /patients listing.
type PatientSummary struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	MediumAcquisition string `json:"medium_acquisition"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// UserBody is the embedded user object of a detailed response.
// The password hash is deliberately absent.
type UserBody struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	IDType    string `json:"id_type"`
	IDNo      string `json:"id_no"`
	Gender    string `json:"gender"`
	DOB       string `json:"dob"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// PatientDetail is the nested representation returned by create, show and
// update: the patient fields plus the embedded user.
type PatientDetail struct {
	ID                uint     `json:"id"`
	UserID            uint     `json:"user_id"`
	MediumAcquisition string   `json:"medium_acquisition"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
	User              UserBody `json:"user"`
}

// NewPatientSummaries maps patients to listing rows.
// It always returns a non-nil slice so an empty table renders as [].
func NewPatientSummaries(patients []entity.Patient) []PatientSummary {
	out := make([]PatientSummary, 0, len(patients))
	for _, p := range patients {
		out = append(out, PatientSummary{
			ID:                p.ID,
			Name:              p.User.Name,
			MediumAcquisition: p.MediumAcquisition,
			CreatedAt:         p.CreatedAt.Format(timestampLayout),
			UpdatedAt:         p.UpdatedAt.Format(timestampLayout),
		})
	}
	return out
}

// NewPatientDetail maps a patient with its preloaded user to the nested
// representation.
func NewPatientDetail(p *entity.Patient) PatientDetail {
	return PatientDetail{
		ID:                p.ID,
		UserID:            p.UserID,
		MediumAcquisition: p.MediumAcquisition,
		CreatedAt:         p.CreatedAt.Format(timestampLayout),
		UpdatedAt:         p.UpdatedAt.Format(timestampLayout),
		User: UserBody{
			ID:        p.User.ID,
			Name:      p.User.Name,
			IDType:    p.User.IDType,
			IDNo:      p.User.IDNo,
			Gender:    p.User.Gender,
			DOB:       p.User.DOB.Format(dobLayout),
			Address:   p.User.Address,
			Email:     p.User.Email,
			CreatedAt: p.User.CreatedAt.Format(timestampLayout),
			UpdatedAt: p.User.UpdatedAt.Format(timestampLayout),
		},
	}
}
