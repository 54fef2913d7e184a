package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"schoolportal/internal/model"
)

// IOfficialRepository defines school-official persistence
type IOfficialRepository interface {
	// FindByEmail queries one school's officials by email and returns
	// the first match with its document ID, or ErrNotFound.
	FindByEmail(ctx context.Context, schoolCode, email string) (*model.Official, string, error)
	Add(ctx context.Context, schoolCode, docID string, official *model.Official) error
	Update(ctx context.Context, schoolCode, docID string, fields map[string]any) error
	// Move copies the official document into the target school's
	// officials collection under the same document ID and deletes the
	// original, in a single transaction.
	Move(ctx context.Context, fromCode, toCode, docID string, official *model.Official) error
}

// OfficialRepository implements official persistence on Firestore
type OfficialRepository struct {
	client *firestore.Client
}

func NewOfficialRepository(client *firestore.Client) IOfficialRepository {
	return &OfficialRepository{client: client}
}

func (r *OfficialRepository) officials(schoolCode string) *firestore.CollectionRef {
	return r.client.Collection(colSchools).Doc(schoolCode).Collection(colOfficials)
}

func (r *OfficialRepository) FindByEmail(ctx context.Context, schoolCode, email string) (*model.Official, string, error) {
	iter := r.officials(schoolCode).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}

	var official model.Official
	if err := doc.DataTo(&official); err != nil {
		return nil, "", err
	}
	return &official, doc.Ref.ID, nil
}

func (r *OfficialRepository) Add(ctx context.Context, schoolCode, docID string, official *model.Official) error {
	_, err := r.officials(schoolCode).Doc(docID).Set(ctx, official)
	return err
}

func (r *OfficialRepository) Update(ctx context.Context, schoolCode, docID string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	_, err := r.officials(schoolCode).Doc(docID).Update(ctx, updates)
	return err
}

func (r *OfficialRepository) Move(ctx context.Context, fromCode, toCode, docID string, official *model.Official) error {
	src := r.officials(fromCode).Doc(docID)
	dst := r.officials(toCode).Doc(docID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Set(dst, official); err != nil {
			return err
		}
		return tx.Delete(src)
	})
}
