package dtos

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional fields
	Location    string `json:"location"`
	Type        string `json:"type"`
	Requirement string `json:"requirement"`
	CompanyID   string `json:"companyId"` // empty posts the job independently
}

type FindJobRequest struct {
	Title string `json:"title" binding:"required"`
}
