package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolportal/internal/model"
	"schoolportal/internal/service"
	"schoolportal/pkg/util"
)

// ReportHandler serves the opportunities report
type ReportHandler struct {
	locator *service.LocatorService
	reports *service.ReportService
}

func NewReportHandler(locator *service.LocatorService, reports *service.ReportService) *ReportHandler {
	return &ReportHandler{locator: locator, reports: reports}
}

// Opportunities resolves the official's school from the email query
// parameter and returns the aggregated report rows.
// GET /opportunities?email=
func (h *ReportHandler) Opportunities(c *gin.Context) {
	email := util.NormalizeEmail(c.Query("email"))
	if email == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email is required."))
		return
	}

	located, err := h.locator.Locate(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("School not found for the user."))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Failed to fetch opportunities."))
		return
	}

	report, err := h.reports.Aggregate(c.Request.Context(), located.SchoolCode)
	if err != nil {
		if errors.Is(err, service.ErrNoStudents) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("No students found with opportunities."))
			return
		}
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Failed to fetch opportunities."))
		return
	}

	c.JSON(http.StatusOK, report.Rows)
}
