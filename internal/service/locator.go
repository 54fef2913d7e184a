package service

import (
	"context"
	"fmt"

	"schoolportal/internal/model"
	"schoolportal/internal/repository"
)

// LocatedOfficial is a locator result: the official record, its
// document ID and the code of the school it was found under.
type LocatedOfficial struct {
	Official   *model.Official
	DocID      string
	SchoolCode string
}

// LocatorService finds an official by email by scanning every school's
// officials subcollection in turn. The scan is sequential and uncached,
// so each call costs one query per school; an email-to-school index
// would remove that ceiling but is not part of the current data model.
type LocatorService struct {
	schools   repository.ISchoolRepository
	officials repository.IOfficialRepository
}

func NewLocatorService(schools repository.ISchoolRepository, officials repository.IOfficialRepository) *LocatorService {
	return &LocatorService{schools: schools, officials: officials}
}

// Locate returns the first official matching the email across all
// schools, or ErrUserNotFound after the scan is exhausted.
func (s *LocatorService) Locate(ctx context.Context, email string) (*LocatedOfficial, error) {
	codes, err := s.schools.Codes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}

	for _, code := range codes {
		official, docID, err := s.officials.FindByEmail(ctx, code, email)
		if err == repository.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to search school %s: %w", code, err)
		}
		return &LocatedOfficial{Official: official, DocID: docID, SchoolCode: code}, nil
	}
	return nil, ErrUserNotFound
}
