package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"schoolportal/internal/model"
	"schoolportal/internal/repository"
	"schoolportal/internal/store"
)

// ErrInvalidCredentials is returned on any login failure that should
// not reveal which part of the credentials was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AccountService handles signup and login
type AccountService struct {
	schools   repository.ISchoolRepository
	officials repository.IOfficialRepository
	locator   *LocatorService
	identity  store.IdentityProvider
	logger    *zap.Logger
}

func NewAccountService(schools repository.ISchoolRepository, officials repository.IOfficialRepository,
	locator *LocatorService, identity store.IdentityProvider, logger *zap.Logger) *AccountService {
	return &AccountService{
		schools:   schools,
		officials: officials,
		locator:   locator,
		identity:  identity,
		logger:    logger,
	}
}

// Signup creates an official under the given school. The password is
// stored as a bcrypt hash on the official document; the school must
// already exist.
func (s *AccountService) Signup(ctx context.Context, req *model.SignupRequest) error {
	exists, err := s.schools.Exists(ctx, req.SchoolCode)
	if err != nil {
		return fmt.Errorf("failed to check school code: %w", err)
	}
	if !exists {
		return ErrSchoolNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	official := &model.Official{
		Name:         req.Name,
		Email:        req.Email,
		SchoolCode:   req.SchoolCode,
		UID:          req.UID,
		PasswordHash: string(hash),
	}

	docID := uuid.NewString()
	if err := s.officials.Add(ctx, req.SchoolCode, docID, official); err != nil {
		return fmt.Errorf("failed to save official: %w", err)
	}

	s.logger.Info("official created",
		zap.String("school", req.SchoolCode),
		zap.String("docId", docID))
	return nil
}

// Login resolves the email through the identity provider, then checks
// the password against the hash stored on the official document. A
// missing account, missing official or missing hash all fail closed as
// ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	uid, err := s.identity.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("identity lookup failed: %w", err)
	}

	located, err := s.locator.Locate(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if located.Official.PasswordHash == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(located.Official.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return uid, nil
}
