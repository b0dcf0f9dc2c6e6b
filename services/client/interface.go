// File: services/client/interface.go
package client

import (
	"context"

	"clinic/models"
)

// ClientService manages patient profiles.
type ClientService interface {
	GetClient(ctx context.Context, userID string) (*models.Client, error)
	// RegisterClient creates the profile unless it already exists and
	// returns the stored profile either way.
	RegisterClient(ctx context.Context, userID, fullName, birthDate, phone string) (*models.Client, error)
	UpdateClient(ctx context.Context, userID, fullName, birthDate, phone string) error
}
