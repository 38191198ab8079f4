package dto

// UpdatePatientReq represents the request body for PUT /patients/{id}.
// Every field is optional; a nil pointer leaves the stored value untouched,
// while a present field is validated with the same rules as creation
// (omitnil skips absent fields but still rejects present-but-empty values).
type UpdatePatientReq struct {
	Name              *string `json:"name" binding:"omitnil,personname"`
	IDType            *string `json:"id_type" binding:"omitnil,min=1"`
	IDNo              *string `json:"id_no" binding:"omitnil,min=1"`
	Gender            *string `json:"gender" binding:"omitnil,oneof=male female"`
	DOB               *string `json:"dob" binding:"omitnil,datetime=2006-01-02"`
	Address           *string `json:"address" binding:"omitnil,min=1"`
	MediumAcquisition *string `json:"medium_acquisition" binding:"omitnil,min=1"`
}
