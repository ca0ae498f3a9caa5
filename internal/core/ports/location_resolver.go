package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/location"
)

// LocationResolver resolves location identifiers against the location
// directory. The directory is reference data; resolvers only read.
type LocationResolver interface {
	// Resolve returns the location behind the identifier.
	// An unknown identifier is reported as errs.ObjectNotFoundError.
	Resolve(ctx context.Context, identifier string) (location.Location, error)

	// GetAll returns every location in the directory.
	GetAll(ctx context.Context) ([]location.Location, error)
}
