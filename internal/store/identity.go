package store

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"schoolportal/internal/repository"
)

// IdentityProvider resolves an email to an identity-provider account ID
type IdentityProvider interface {
	GetUserByEmail(ctx context.Context, email string) (string, error)
}

// FirebaseIdentity implements IdentityProvider on Firebase Auth
type FirebaseIdentity struct {
	client *auth.Client
}

func NewFirebaseIdentity(client *auth.Client) IdentityProvider {
	return &FirebaseIdentity{client: client}
}

// GetUserByEmail returns the UID of the account registered under the
// email, or repository.ErrNotFound when no such account exists.
func (p *FirebaseIdentity) GetUserByEmail(ctx context.Context, email string) (string, error) {
	user, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return "", repository.ErrNotFound
		}
		return "", err
	}
	return user.UID, nil
}
