package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/store"
)

// LegacyStoreGateway mirrors store changes to the legacy store manager.
//
// Callers invoke it strictly after the local transaction has committed; a
// gateway failure therefore never rolls anything back. Implementations are
// expected to absorb legacy outages (circuit breaking, retries) rather than
// propagate them into request handling.
type LegacyStoreGateway interface {
	// CreateStore announces a newly created store to the legacy system.
	CreateStore(ctx context.Context, aggregate *store.Store) error

	// UpdateStore announces an updated store to the legacy system.
	UpdateStore(ctx context.Context, aggregate *store.Store) error
}
