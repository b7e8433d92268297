package dto

// UpdateStatusRequest is the approval-workflow mutation the dashboard sends.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected requested_for_edit"`
}
