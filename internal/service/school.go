package service

import (
	"context"
	"fmt"

	"schoolportal/internal/repository"
)

// SchoolService handles school code validation
type SchoolService struct {
	schools repository.ISchoolRepository
}

func NewSchoolService(schools repository.ISchoolRepository) *SchoolService {
	return &SchoolService{schools: schools}
}

// Validate returns nil when a school with the code exists and
// ErrSchoolNotFound when it does not.
func (s *SchoolService) Validate(ctx context.Context, code string) error {
	exists, err := s.schools.Exists(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to check school code: %w", err)
	}
	if !exists {
		return ErrSchoolNotFound
	}
	return nil
}
