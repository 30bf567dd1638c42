package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanuchaudhary/Job-Portal/internal/dtos"
	"github.com/hanuchaudhary/Job-Portal/internal/middleware"
	"github.com/hanuchaudhary/Job-Portal/internal/models"
	"github.com/hanuchaudhary/Job-Portal/internal/services"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// Submit files an application for the job in the path.
//
// The status codes here are the ones this API has always answered with:
// 401 for a missing job, 404 for a non-candidate caller and 402 for a
// duplicate application. Clients key off them, so they stay.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dtos.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindErrorMessage(err))
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	application, err := h.applications.Submit(c.Request.Context(), c.Param("jobId"), userID, req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"success":     true,
			"message":     "application submitted",
			"application": application,
		})
	case errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "job not found"})
	case errors.Is(err, shared.ErrForbidden):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "only candidates can apply"})
	case errors.Is(err, shared.ErrConflict):
		c.JSON(http.StatusPaymentRequired, gin.H{"success": false, "message": "already applied to this job"})
	default:
		internalError(c, err)
	}
}

// ListForJob returns every application for the job in the path, oldest
// first. Recruiter-only.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	applications, err := h.applications.ListForJob(c.Request.Context(), c.Param("jobId"), userID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "applications": applications})
	case errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "job not found"})
	case errors.Is(err, shared.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "only recruiters can view applications"})
	default:
		internalError(c, err)
	}
}

// UpdateStatus moves an application to the status in the body.
// Recruiter-only.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindErrorMessage(err))
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	application, err := h.applications.UpdateStatus(c.Request.Context(), req.ApplicationID, models.ApplicationStatus(req.Status), userID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"message":     "status updated",
			"application": application,
		})
	case errors.Is(err, shared.ErrValidation):
		badRequest(c, "unknown application status")
	case errors.Is(err, shared.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "only recruiters can update status"})
	case errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "application not found"})
	default:
		internalError(c, err)
	}
}
