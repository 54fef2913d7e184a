package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ISchoolRepository defines school document access
type ISchoolRepository interface {
	Exists(ctx context.Context, code string) (bool, error)
	Codes(ctx context.Context) ([]string, error)
}

// SchoolRepository implements school access on Firestore
type SchoolRepository struct {
	client *firestore.Client
}

func NewSchoolRepository(client *firestore.Client) ISchoolRepository {
	return &SchoolRepository{client: client}
}

// Exists reports whether a school document with the given code exists
func (r *SchoolRepository) Exists(ctx context.Context, code string) (bool, error) {
	_, err := r.client.Collection(colSchools).Doc(code).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Codes enumerates the IDs of all school documents. This is a full
// collection scan with no pagination, matching the store's default
// enumeration order.
func (r *SchoolRepository) Codes(ctx context.Context) ([]string, error) {
	iter := r.client.Collection(colSchools).Documents(ctx)
	defer iter.Stop()

	var codes []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		codes = append(codes, doc.Ref.ID)
	}
	return codes, nil
}
