package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolportal/internal/model"
	"schoolportal/internal/service"
	"schoolportal/pkg/util"
)

// ProfileHandler handles profile reads, updates and school reassignment
type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get returns the profile of the official with the given email
// GET /profile/:email
func (h *ProfileHandler) Get(c *gin.Context) {
	email := util.NormalizeEmail(c.Param("email"))

	profile, err := h.profiles.Get(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("User not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error"))
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Update applies a partial profile update
// POST /updateProfile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body"))
		return
	}

	req.Email = util.NormalizeEmail(req.Email)
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email is required"))
		return
	}

	if err := h.profiles.Update(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("User not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error"))
		return
	}

	c.JSON(http.StatusOK, model.NewMessageResponse("Profile updated successfully"))
}

// ChangeSchoolKey moves the official to another school
// POST /changeSchoolKey
func (h *ProfileHandler) ChangeSchoolKey(c *gin.Context) {
	var req model.ChangeSchoolKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid request body"))
		return
	}

	req.Email = util.NormalizeEmail(req.Email)
	if req.Email == "" || req.NewSchoolCode == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email and new school code are required"))
		return
	}

	if err := h.profiles.ChangeSchoolKey(c.Request.Context(), req.Email, req.NewSchoolCode); err != nil {
		switch {
		case errors.Is(err, service.ErrSchoolNotFound):
			c.JSON(http.StatusNotFound, model.NewErrorResponse("School code not found."))
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, model.NewErrorResponse("User not found."))
		default:
			c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error"))
		}
		return
	}

	c.JSON(http.StatusOK, model.NewMessageResponse("School key updated successfully."))
}
