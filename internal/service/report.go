package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"schoolportal/internal/model"
	"schoolportal/internal/repository"
)

// Skip reasons recorded on report rows that could not be assembled
const (
	SkipOpportunityNotFound = "opportunity not found"
	SkipLookupFailed        = "lookup failed"
)

// ReportService assembles the opportunities report for one school by
// joining each student's last-opportunity reference against the
// system-wide opportunity lookup.
type ReportService struct {
	students      repository.IStudentRepository
	opportunities repository.IOpportunityRepository
	logger        *zap.Logger
}

func NewReportService(students repository.IStudentRepository, opportunities repository.IOpportunityRepository,
	logger *zap.Logger) *ReportService {
	return &ReportService{students: students, opportunities: opportunities, logger: logger}
}

// Aggregate builds the report for a school. Students without a
// recorded opportunity are excluded up front; ErrNoStudents is
// returned when that filter leaves nothing. A reference that
// resolves to no opportunity, or whose lookup errors, skips that row
// only and is recorded in Skipped; one bad record never aborts the
// batch.
func (s *ReportService) Aggregate(ctx context.Context, schoolCode string) (*model.Report, error) {
	students, err := s.students.ListWithOpportunity(ctx, schoolCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	if len(students) == 0 {
		return nil, ErrNoStudents
	}

	report := &model.Report{Rows: []model.ReportRow{}}
	for _, student := range students {
		opp, err := s.opportunities.FindByID(ctx, student.LastOpportunity)
		if err != nil {
			reason := SkipLookupFailed
			if errors.Is(err, repository.ErrNotFound) {
				reason = SkipOpportunityNotFound
			} else {
				s.logger.Warn("opportunity lookup failed",
					zap.String("school", schoolCode),
					zap.String("student", student.Name),
					zap.String("opportunityId", student.LastOpportunity),
					zap.Error(err))
			}
			report.Skipped = append(report.Skipped, model.SkippedStudent{
				StudentName:   student.Name,
				OpportunityID: student.LastOpportunity,
				Reason:        reason,
			})
			continue
		}

		report.Rows = append(report.Rows, model.ReportRow{
			StudentName:      student.Name,
			OpportunityName:  opp.Name,
			Hour:             opp.Hour,
			Date:             opp.Date,
			Level:            student.Level,
			City:             student.City,
			Description:      opp.Description,
			OrganizationName: opp.OrganizationName,
		})
	}
	return report, nil
}
