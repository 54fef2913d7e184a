package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"schoolportal/internal/model"
)

// IOpportunityRepository defines system-wide opportunity lookup
type IOpportunityRepository interface {
	// FindByID searches every school's opportunities subcollection for
	// a document whose id field matches, irrespective of the owning
	// school, and returns the first match or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Opportunity, error)
}

// OpportunityRepository implements opportunity lookup on Firestore
// using a collection-group query.
type OpportunityRepository struct {
	client *firestore.Client
}

func NewOpportunityRepository(client *firestore.Client) IOpportunityRepository {
	return &OpportunityRepository{client: client}
}

func (r *OpportunityRepository) FindByID(ctx context.Context, id string) (*model.Opportunity, error) {
	iter := r.client.CollectionGroup(colOpportunities).Where("id", "==", id).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var opp model.Opportunity
	if err := doc.DataTo(&opp); err != nil {
		return nil, err
	}
	return &opp, nil
}
