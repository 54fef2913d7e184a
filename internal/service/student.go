package service

import (
	"context"
	"fmt"

	"schoolportal/internal/model"
	"schoolportal/internal/repository"
)

// StudentService lists students for the school an official belongs to
type StudentService struct {
	students repository.IStudentRepository
	locator  *LocatorService
}

func NewStudentService(students repository.IStudentRepository, locator *LocatorService) *StudentService {
	return &StudentService{students: students, locator: locator}
}

// ListForOfficial resolves the official's school and returns its
// students. ErrUserNotFound means the official (and so the school)
// could not be resolved; an empty slice means the school has no
// students.
func (s *StudentService) ListForOfficial(ctx context.Context, email string) ([]model.Student, error) {
	located, err := s.locator.Locate(ctx, email)
	if err != nil {
		return nil, err
	}

	students, err := s.students.ListBySchool(ctx, located.SchoolCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return students, nil
}
