// Package usecase implements the business logic for the patients feature.
package usecase

import "errors"

var (
	// ErrPatientNotFound is returned when no patient exists with the given ID.
	ErrPatientNotFound = errors.New("patient not found")

	// ErrIDNoTaken is returned when another user already holds the requested
	// identity-document number.
	ErrIDNoTaken = errors.New("id_no already taken")

	// ErrDuplicateRecord is returned when a write hits a uniqueness constraint
	// in the datastore, e.g. two concurrent creates racing for the same
	// generated email.
	ErrDuplicateRecord = errors.New("duplicate record")

	// ErrEmailProbesExhausted is returned when no free email address could be
	// found within the probe bound. It indicates datastore corruption rather
	// than a client mistake.
	ErrEmailProbesExhausted = errors.New("no available email address found")
)
