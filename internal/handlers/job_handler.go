package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanuchaudhary/Job-Portal/internal/dtos"
	"github.com/hanuchaudhary/Job-Portal/internal/middleware"
	"github.com/hanuchaudhary/Job-Portal/internal/services"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

type JobHandler struct {
	jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// Create posts a job opening. Recruiter-only.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindErrorMessage(err))
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	job, err := h.jobs.Create(c.Request.Context(), userID, req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "job created",
			"job":     job,
		})
	case errors.Is(err, shared.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "only recruiters can post jobs"})
	case errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "company not found"})
	default:
		internalError(c, err)
	}
}

// Bulk lists every job with its company preloaded.
func (h *JobHandler) Bulk(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}

// Find searches jobs by title substring.
func (h *JobHandler) Find(c *gin.Context) {
	var req dtos.FindJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindErrorMessage(err))
		return
	}

	jobs, err := h.jobs.Find(c.Request.Context(), req)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "jobs": jobs})
}
