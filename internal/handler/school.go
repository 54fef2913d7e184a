package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolportal/internal/model"
	"schoolportal/internal/service"
)

// SchoolHandler handles school code validation
type SchoolHandler struct {
	schools *service.SchoolService
}

func NewSchoolHandler(schools *service.SchoolService) *SchoolHandler {
	return &SchoolHandler{schools: schools}
}

// Validate checks that a school code exists
// POST /validate-school
func (h *SchoolHandler) Validate(c *gin.Context) {
	var req model.ValidateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SchoolCode == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("School code is required"))
		return
	}

	if err := h.schools.Validate(c.Request.Context(), req.SchoolCode); err != nil {
		if errors.Is(err, service.ErrSchoolNotFound) {
			c.JSON(http.StatusBadRequest, model.NewErrorResponse("School code not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error while checking school code"))
		return
	}

	c.JSON(http.StatusOK, model.NewMessageResponse("School code is valid"))
}
