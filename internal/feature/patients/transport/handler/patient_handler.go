// Package handler provides the HTTP handlers for the patients feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"patient_backend/internal/feature/patients/domain/entity"
	"patient_backend/internal/feature/patients/transport/http/dto"
	"patient_backend/internal/feature/patients/usecase"
	"patient_backend/internal/platform/requestid"
)

// PatientUsecase defines the patient workflow operations the handler needs.
// Following Go convention the interface is defined by the consumer (handler),
// not the provider (usecase).
type PatientUsecase interface {
	List(ctx context.Context) ([]entity.Patient, error)
	Create(ctx context.Context, in usecase.CreatePatientInput) (*entity.Patient, error)
	Get(ctx context.Context, id uint) (*entity.Patient, error)
	Update(ctx context.Context, id uint, in usecase.UpdatePatientInput) (*entity.Patient, error)
	Delete(ctx context.Context, id uint) error
}

// PatientHandler handles the /patients HTTP surface.
type PatientHandler struct {
	patients PatientUsecase
}

// NewPatientHandler creates a new PatientHandler instance.
// Constructor for dependency injection.
func NewPatientHandler(patients PatientUsecase) *PatientHandler {
	return &PatientHandler{patients: patients}
}

// List handles GET /patients.
// Responds 200 with an array of summaries, [] when the table is empty.
func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.patients.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "patient list failed", err,
			"Failed to fetch patients. Please try again later.")
		return
	}
	c.JSON(http.StatusOK, dto.NewPatientSummaries(patients))
}

// Create handles POST /patients.
// - binds and validates the request body; 422 with a field error map on violation
// - 422 when the id_no is already taken, before any write
// - 409 when a write races into a uniqueness constraint
// - 201 with the nested representation on success
func (h *PatientHandler) Create(c *gin.Context) {
	var req dto.CreatePatientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationError(c, err)
		return
	}

	patient, err := h.patients.Create(c.Request.Context(), usecase.CreatePatientInput{
		Name:              req.Name,
		IDType:            req.IDType,
		IDNo:              req.IDNo,
		Gender:            req.Gender,
		DOB:               req.DOB,
		Address:           req.Address,
		MediumAcquisition: req.MediumAcquisition,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrIDNoTaken):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": dto.IDNoTakenErrors()})
		case errors.Is(err, usecase.ErrDuplicateRecord):
			c.JSON(http.StatusConflict, gin.H{"message": "Patient could not be created due to a conflicting record."})
		default:
			h.serverError(c, "patient create failed", err,
				"Failed to create patient. Please try again later.")
		}
		return
	}
	c.JSON(http.StatusCreated, dto.NewPatientDetail(patient))
}

// Show handles GET /patients/{id}.
func (h *PatientHandler) Show(c *gin.Context) {
	id, ok := h.patientID(c)
	if !ok {
		return
	}
	patient, err := h.patients.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "patient show failed", err,
			"Failed to fetch patient data. Please try again later.")
		return
	}
	c.JSON(http.StatusOK, dto.NewPatientDetail(patient))
}

// Update handles PUT /patients/{id}.
// Every body field is optional; only present fields are validated and
// persisted. An empty body is a no-op returning the current state.
func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := h.patientID(c)
	if !ok {
		return
	}

	var req dto.UpdatePatientReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.validationError(c, err)
		return
	}

	patient, err := h.patients.Update(c.Request.Context(), id, usecase.UpdatePatientInput{
		Name:              req.Name,
		IDType:            req.IDType,
		IDNo:              req.IDNo,
		Gender:            req.Gender,
		DOB:               req.DOB,
		Address:           req.Address,
		MediumAcquisition: req.MediumAcquisition,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			h.notFound(c)
		case errors.Is(err, usecase.ErrIDNoTaken):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": dto.IDNoTakenErrors()})
		case errors.Is(err, usecase.ErrDuplicateRecord):
			c.JSON(http.StatusConflict, gin.H{"message": "Patient could not be updated due to a conflicting record."})
		default:
			h.serverError(c, "patient update failed", err,
				"Failed to update patient. Please try again later.")
		}
		return
	}
	c.JSON(http.StatusOK, dto.NewPatientDetail(patient))
}

// Delete handles DELETE /patients/{id}.
func (h *PatientHandler) Delete(c *gin.Context) {
	id, ok := h.patientID(c)
	if !ok {
		return
	}
	if err := h.patients.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "patient delete failed", err,
			"Failed to delete patient. Please try again later.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}

// patientID parses the {id} path parameter. A non-numeric id behaves like a
// missing record, mirroring route-model binding.
func (h *PatientHandler) patientID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c)
		return 0, false
	}
	return uint(id), true
}

// validationError renders a binding failure: 422 with the field error map for
// rule violations, 400 for bodies that could not be parsed at all.
func (h *PatientHandler) validationError(c *gin.Context, err error) {
	if fields, ok := dto.FieldErrors(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fields})
		return
	}
	slog.Warn("patient request body unparseable",
		"error", err, "request_id", requestid.FromContext(c), "remote_addr", c.ClientIP())
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
}

// notFound renders the 404 envelope.
func (h *PatientHandler) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
}

// serverError logs the detailed failure and responds with a generic message.
// The underlying error never reaches the client.
func (h *PatientHandler) serverError(c *gin.Context, logMsg string, err error, userMsg string) {
	slog.Error(logMsg,
		"error", err, "request_id", requestid.FromContext(c), "remote_addr", c.ClientIP())
	c.JSON(http.StatusInternalServerError, gin.H{"message": userMsg})
}
