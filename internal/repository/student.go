package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"schoolportal/internal/model"
)

// IStudentRepository defines read-only student access
type IStudentRepository interface {
	ListBySchool(ctx context.Context, schoolCode string) ([]model.Student, error)
	// ListWithOpportunity returns only students whose lastOpportunity
	// field is non-empty.
	ListWithOpportunity(ctx context.Context, schoolCode string) ([]model.Student, error)
}

// StudentRepository implements student access on Firestore
type StudentRepository struct {
	client *firestore.Client
}

func NewStudentRepository(client *firestore.Client) IStudentRepository {
	return &StudentRepository{client: client}
}

func (r *StudentRepository) students(schoolCode string) *firestore.CollectionRef {
	return r.client.Collection(colSchools).Doc(schoolCode).Collection(colStudents)
}

func (r *StudentRepository) ListBySchool(ctx context.Context, schoolCode string) ([]model.Student, error) {
	return collectStudents(r.students(schoolCode).Documents(ctx))
}

func (r *StudentRepository) ListWithOpportunity(ctx context.Context, schoolCode string) ([]model.Student, error) {
	query := r.students(schoolCode).Where("lastOpportunity", "!=", "")
	return collectStudents(query.Documents(ctx))
}

func collectStudents(iter *firestore.DocumentIterator) ([]model.Student, error) {
	defer iter.Stop()

	var students []model.Student
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var student model.Student
		if err := doc.DataTo(&student); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, nil
}
