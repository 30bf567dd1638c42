package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hanuchaudhary/Job-Portal/internal/middleware"
	"github.com/hanuchaudhary/Job-Portal/internal/services"
	"github.com/hanuchaudhary/Job-Portal/internal/shared"
)

type SavedJobHandler struct {
	savedJobs *services.SavedJobService
}

func NewSavedJobHandler(savedJobs *services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{savedJobs: savedJobs}
}

// Save bookmarks the job in the path for the caller.
func (h *SavedJobHandler) Save(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	saved, err := h.savedJobs.Save(c.Request.Context(), userID, c.Param("jobId"))
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"success":  true,
			"message":  "job saved",
			"savedJob": saved,
		})
	case errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "job not found"})
	case errors.Is(err, shared.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "job already saved"})
	default:
		internalError(c, err)
	}
}

// Unsave removes the caller's bookmark for the job in the path.
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	err := h.savedJobs.Unsave(c.Request.Context(), userID, c.Param("jobId"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "job unsaved"})
	case errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "saved job not found"})
	default:
		internalError(c, err)
	}
}

// List returns the caller's bookmarks with their jobs attached.
func (h *SavedJobHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	saved, err := h.savedJobs.List(c.Request.Context(), userID)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "savedJobs": saved})
}
