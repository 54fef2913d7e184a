package service

import (
	"context"

	"schoolportal/internal/model"
	"schoolportal/internal/repository"
)

// mockSchoolRepo is a fake school repository for testing
type mockSchoolRepo struct {
	ExistsFunc func(ctx context.Context, code string) (bool, error)
	CodesFunc  func(ctx context.Context) ([]string, error)
}

func (m *mockSchoolRepo) Exists(ctx context.Context, code string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, code)
	}
	return true, nil
}

func (m *mockSchoolRepo) Codes(ctx context.Context) ([]string, error) {
	if m.CodesFunc != nil {
		return m.CodesFunc(ctx)
	}
	return nil, nil
}

// mockOfficialRepo is a fake official repository for testing
type mockOfficialRepo struct {
	FindByEmailFunc func(ctx context.Context, schoolCode, email string) (*model.Official, string, error)
	AddFunc         func(ctx context.Context, schoolCode, docID string, official *model.Official) error
	UpdateFunc      func(ctx context.Context, schoolCode, docID string, fields map[string]any) error
	MoveFunc        func(ctx context.Context, fromCode, toCode, docID string, official *model.Official) error
}

func (m *mockOfficialRepo) FindByEmail(ctx context.Context, schoolCode, email string) (*model.Official, string, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, schoolCode, email)
	}
	return nil, "", repository.ErrNotFound
}

func (m *mockOfficialRepo) Add(ctx context.Context, schoolCode, docID string, official *model.Official) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, schoolCode, docID, official)
	}
	return nil
}

func (m *mockOfficialRepo) Update(ctx context.Context, schoolCode, docID string, fields map[string]any) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, schoolCode, docID, fields)
	}
	return nil
}

func (m *mockOfficialRepo) Move(ctx context.Context, fromCode, toCode, docID string, official *model.Official) error {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, fromCode, toCode, docID, official)
	}
	return nil
}

// mockStudentRepo is a fake student repository for testing
type mockStudentRepo struct {
	ListBySchoolFunc        func(ctx context.Context, schoolCode string) ([]model.Student, error)
	ListWithOpportunityFunc func(ctx context.Context, schoolCode string) ([]model.Student, error)
}

func (m *mockStudentRepo) ListBySchool(ctx context.Context, schoolCode string) ([]model.Student, error) {
	if m.ListBySchoolFunc != nil {
		return m.ListBySchoolFunc(ctx, schoolCode)
	}
	return nil, nil
}

func (m *mockStudentRepo) ListWithOpportunity(ctx context.Context, schoolCode string) ([]model.Student, error) {
	if m.ListWithOpportunityFunc != nil {
		return m.ListWithOpportunityFunc(ctx, schoolCode)
	}
	return nil, nil
}

// mockOpportunityRepo is a fake opportunity repository for testing
type mockOpportunityRepo struct {
	FindByIDFunc func(ctx context.Context, id string) (*model.Opportunity, error)
}

func (m *mockOpportunityRepo) FindByID(ctx context.Context, id string) (*model.Opportunity, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

// mockIdentity is a fake identity provider for testing
type mockIdentity struct {
	GetUserByEmailFunc func(ctx context.Context, email string) (string, error)
}

func (m *mockIdentity) GetUserByEmail(ctx context.Context, email string) (string, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	return "uid-123", nil
}

// locatorOver builds a locator that finds officials in the given
// school-to-official map.
func locatorOver(codes []string, officials map[string]*model.Official) *LocatorService {
	schools := &mockSchoolRepo{
		CodesFunc: func(ctx context.Context) ([]string, error) { return codes, nil },
	}
	repo := &mockOfficialRepo{
		FindByEmailFunc: func(ctx context.Context, schoolCode, email string) (*model.Official, string, error) {
			if o, ok := officials[schoolCode]; ok && o.Email == email {
				return o, "doc-" + schoolCode, nil
			}
			return nil, "", repository.ErrNotFound
		},
	}
	return NewLocatorService(schools, repo)
}
