package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"schoolportal/internal/config"
)

// Store owns the Firebase app and the clients derived from it
type Store struct {
	Firestore *firestore.Client
	Auth      *auth.Client
}

// Connect initializes the Firebase app from the configured service
// account and opens the Firestore and Auth clients.
func Connect(cfg *config.Config) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	credsJSON, err := cfg.Firebase.ServiceAccountJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to build service account credentials: %w", err)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID},
		option.WithCredentialsJSON(credsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open Firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		fsClient.Close()
		return nil, fmt.Errorf("failed to open Auth client: %w", err)
	}

	return &Store{Firestore: fsClient, Auth: authClient}, nil
}

// Close releases the Firestore client
func (s *Store) Close() error {
	if s.Firestore != nil {
		return s.Firestore.Close()
	}
	return nil
}
