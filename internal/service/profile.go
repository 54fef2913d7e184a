package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"schoolportal/internal/model"
	"schoolportal/internal/repository"
)

// ProfileService handles profile reads, partial updates and moving an
// official between schools.
type ProfileService struct {
	schools   repository.ISchoolRepository
	officials repository.IOfficialRepository
	locator   *LocatorService
	logger    *zap.Logger
}

func NewProfileService(schools repository.ISchoolRepository, officials repository.IOfficialRepository,
	locator *LocatorService, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		schools:   schools,
		officials: officials,
		locator:   locator,
		logger:    logger,
	}
}

// Get returns the official's profile with the school code resolved by
// the locator.
func (s *ProfileService) Get(ctx context.Context, email string) (*model.ProfileResponse, error) {
	located, err := s.locator.Locate(ctx, email)
	if err != nil {
		return nil, err
	}
	profile := located.Official.ToProfile(located.SchoolCode)
	return &profile, nil
}

// Update applies a partial update built from the fields present in the
// request. Absent fields are left untouched, so repeating the same
// update is idempotent.
func (s *ProfileService) Update(ctx context.Context, req *model.UpdateProfileRequest) error {
	fields := make(map[string]any)
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}

	located, err := s.locator.Locate(ctx, req.Email)
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.officials.Update(ctx, located.SchoolCode, located.DocID, fields); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// ChangeSchoolKey moves an official to another school. The target
// school is validated first, then the located document is moved in one
// transaction with its schoolCode field rewritten, keeping its ID.
func (s *ProfileService) ChangeSchoolKey(ctx context.Context, email, newSchoolCode string) error {
	exists, err := s.schools.Exists(ctx, newSchoolCode)
	if err != nil {
		return fmt.Errorf("failed to check school code: %w", err)
	}
	if !exists {
		return ErrSchoolNotFound
	}

	located, err := s.locator.Locate(ctx, email)
	if err != nil {
		return err
	}

	moved := *located.Official
	moved.SchoolCode = newSchoolCode
	if err := s.officials.Move(ctx, located.SchoolCode, newSchoolCode, located.DocID, &moved); err != nil {
		return fmt.Errorf("failed to move official: %w", err)
	}

	s.logger.Info("official reassigned",
		zap.String("from", located.SchoolCode),
		zap.String("to", newSchoolCode))
	return nil
}
