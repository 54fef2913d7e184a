package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolportal/internal/model"
)

func TestListForOfficial_ReturnsSchoolStudents(t *testing.T) {
	locator := locatorOver([]string{"SCH1"}, map[string]*model.Official{
		"SCH1": {Email: "amal@sch1.edu"},
	})
	students := &mockStudentRepo{
		ListBySchoolFunc: func(ctx context.Context, schoolCode string) ([]model.Student, error) {
			assert.Equal(t, "SCH1", schoolCode)
			return []model.Student{{Name: "Sara"}, {Name: "Omar"}}, nil
		},
	}
	svc := NewStudentService(students, locator)

	got, err := svc.ListForOfficial(context.Background(), "amal@sch1.edu")

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListForOfficial_UnknownUser(t *testing.T) {
	svc := NewStudentService(&mockStudentRepo{}, locatorOver(nil, nil))

	_, err := svc.ListForOfficial(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListForOfficial_EmptySchoolIsNotAnError(t *testing.T) {
	locator := locatorOver([]string{"SCH1"}, map[string]*model.Official{
		"SCH1": {Email: "amal@sch1.edu"},
	})
	svc := NewStudentService(&mockStudentRepo{}, locator)

	got, err := svc.ListForOfficial(context.Background(), "amal@sch1.edu")

	assert.NoError(t, err)
	assert.Empty(t, got)
}
