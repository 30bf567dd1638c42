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

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Signup registers a new account and hands back a signed token so the
// client is logged in immediately.
func (h *UserHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindErrorMessage(err))
		return
	}

	user, token, err := h.users.Register(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "user registered",
			"user":    dtos.NewUserResponse(user),
			"token":   token,
		})
	case errors.Is(err, shared.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "user with this email already exists"})
	case errors.Is(err, shared.ErrValidation):
		badRequest(c, "invalid signup payload")
	default:
		internalError(c, err)
	}
}

// Signin checks credentials and issues a fresh token. An unknown email
// answers 409 and a wrong password 401; clients distinguish the two.
func (h *UserHandler) Signin(c *gin.Context) {
	var req dtos.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindErrorMessage(err))
		return
	}

	user, token, err := h.users.Authenticate(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "signed in",
			"user":    dtos.NewUserResponse(user),
			"token":   token,
		})
	case errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "no account with this email"})
	case errors.Is(err, shared.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "incorrect password"})
	default:
		internalError(c, err)
	}
}

// Me returns the caller's profile with applications, posted jobs and
// saved jobs preloaded.
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	user, err := h.users.GetProfile(c.Request.Context(), userID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
	case errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
	default:
		internalError(c, err)
	}
}

// Bulk lists users, optionally narrowed by the filter query param.
func (h *UserHandler) Bulk(c *gin.Context) {
	users, err := h.users.Search(c.Request.Context(), c.Query("filter"))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// Update patches the caller's own name and password.
func (h *UserHandler) Update(c *gin.Context) {
	var req dtos.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindErrorMessage(err))
		return
	}

	userID := c.GetString(middleware.UserIDKey)
	user, err := h.users.UpdateSelf(c.Request.Context(), userID, req)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "user updated",
		"user":    dtos.NewUserResponse(user),
	})
}

// Remove deletes the caller's account along with its jobs, applications
// and saved jobs.
func (h *UserHandler) Remove(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)

	err := h.users.DeleteSelf(c.Request.Context(), userID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "user deleted"})
	case errors.Is(err, shared.ErrNotFound):
		badRequest(c, "user not found")
	default:
		internalError(c, err)
	}
}
