// Package preferences provides the interface for preference persistence
package preferences

//go:generate mockgen -destination=mock/mock_repository.go -package=preferencesmock github.com/osrstools/dps-store/repositories/preferences Repository

import (
	"context"

	"github.com/osrstools/dps-store/osrs"
)

// Repository defines the interface for the opaque preferences blob store
type Repository interface {
	// Get retrieves the persisted preferences record
	// Returns errors.NotFound if nothing has been persisted yet (first run)
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set persists the preferences record, overwriting any previous value
	// Returns errors.InvalidArgument if the record is nil
	// Returns errors.Internal for storage failures
	Set(ctx context.Context, input SetInput) (*SetOutput, error)
}

// GetInput defines the input for loading preferences
type GetInput struct {
	// Empty for now, can be extended later
}

// GetOutput defines the output for loading preferences
type GetOutput struct {
	Preferences *osrs.PreferencesPartial
}

// SetInput defines the input for saving preferences
type SetInput struct {
	Preferences *osrs.PreferencesPartial
}

// SetOutput defines the output for saving preferences
type SetOutput struct {
	// Empty for now, can be extended later
}
