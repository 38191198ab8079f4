package entity

import "time"

// Patient is the clinical extension of a User. Each patient owns exactly
// one user and no user is shared between patients.
type Patient struct {
	// ID is the unique identifier for the patient.
	ID uint `gorm:"primaryKey"`

	// UserID references the owning user. The unique index enforces the
	// exclusive 1:1 relationship.
	UserID uint `gorm:"uniqueIndex;not null"`

	// MediumAcquisition is the free-text channel the patient came through,
	// e.g. "Online" or "Referral".
	MediumAcquisition string `gorm:"size:255;not null"`

	// User is the backing identity record, loaded via UserID.
	User User `gorm:"foreignKey:UserID"`

	// CreatedAt is the timestamp when the patient was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the patient was last updated.
	UpdatedAt time.Time
}
