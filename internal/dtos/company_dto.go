package dtos

type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
	Logo string `json:"logo"`
}

type FindCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}
