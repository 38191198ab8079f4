// Package entity defines the domain entities for the patients feature.
package entity

import "time"

// User is the identity record backing a patient. It is created exclusively
// as part of patient creation and deleted together with its patient.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name. Only letters, spaces and periods are allowed.
	Name string `gorm:"size:255;not null"`

	// IDType is the kind of identity document (KTP, SIM, passport, ...).
	IDType string `gorm:"column:id_type;size:100;not null"`

	// IDNo is the identity-document number. It must be unique across all users.
	IDNo string `gorm:"column:id_no;uniqueIndex;size:100;not null"`

	// Gender is either "male" or "female".
	Gender string `gorm:"size:10;not null"`

	// DOB is the date of birth. Only the calendar date is significant.
	DOB time.Time `gorm:"column:dob;type:date;not null"`

	// Address is the free-text postal address.
	Address string `gorm:"not null"`

	// Email is system-generated at creation and unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the default credential.
	// It is never exposed through the API.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
