// Package dto defines data transfer objects for the patients HTTP API.
package dto

// CreatePatientReq represents the request body for POST /patients.
// Every field is required; validation mirrors the registration rules
// (personname is a custom tag registered in RegisterValidations).
type CreatePatientReq struct {
	Name              string `json:"name" binding:"required,personname"`
	IDType            string `json:"id_type" binding:"required"`
	IDNo              string `json:"id_no" binding:"required"`
	Gender            string `json:"gender" binding:"required,oneof=male female"`
	DOB               string `json:"dob" binding:"required,datetime=2006-01-02"`
	Address           string `json:"address" binding:"required"`
	MediumAcquisition string `json:"medium_acquisition" binding:"required"`
}
