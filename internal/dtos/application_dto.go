package dtos

type SubmitApplicationRequest struct {
	Education  string `json:"education" binding:"required"`
	Experience string `json:"experience" binding:"required"`
	Skills     string `json:"skills" binding:"required"`
	Resume     string `json:"resume" binding:"required"` // opaque reference, not a file
}

type UpdateStatusRequest struct {
	ApplicationID string `json:"applicationId" binding:"required"`
	Status        string `json:"status" binding:"required,oneof=Applied Interviewing Hired Rejected"`
}
