package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanuchaudhary/Job-Portal/internal/dtos"
	"github.com/hanuchaudhary/Job-Portal/internal/services"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

type CompanyHandler struct {
	companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// Create registers a company. A duplicate name answers 400, not 409.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dtos.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindErrorMessage(err))
		return
	}

	company, err := h.companies.Create(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "company created",
			"company": company,
		})
	case errors.Is(err, shared.ErrConflict):
		badRequest(c, "company with this name already exists")
	default:
		internalError(c, err)
	}
}

// Bulk lists every company with its jobs preloaded.
func (h *CompanyHandler) Bulk(c *gin.Context) {
	companies, err := h.companies.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "companies": companies})
}

// Find searches companies by name substring.
func (h *CompanyHandler) Find(c *gin.Context) {
	var req dtos.FindCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindErrorMessage(err))
		return
	}

	companies, err := h.companies.Find(c.Request.Context(), req)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "companies": companies})
}
