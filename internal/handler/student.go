package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolportal/internal/model"
	"schoolportal/internal/service"
	"schoolportal/pkg/util"
)

// StudentHandler lists students for an official's school
type StudentHandler struct {
	students *service.StudentService
}

func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List returns the students of the school the official belongs to
// GET /students/:email
func (h *StudentHandler) List(c *gin.Context) {
	email := util.NormalizeEmail(c.Param("email"))

	students, err := h.students.ListForOfficial(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("School not found for the user."))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error"))
		return
	}
	if len(students) == 0 {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("No students found."))
		return
	}

	c.JSON(http.StatusOK, students)
}
