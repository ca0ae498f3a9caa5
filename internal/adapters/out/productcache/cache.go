// Package productcache stores the product listing read model in Redis.
// It serves the catalogue query as a read-through cache and gives the
// product commands a way to invalidate after a mutation.
package productcache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fulfilment/internal/core/application/usecases/queries"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/cache"
)

const listingKey = "products:listing"

// DefaultTTL bounds staleness in case an invalidation is lost.
const DefaultTTL = 5 * time.Minute

// cachedProduct is the wire shape of a cached listing entry. The read model
// carries a kernel.UUID, which does not survive JSON, so the ID is stored as
// its string form.
type cachedProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int    `json:"priceCents"`
}

// Cache implements queries.ProductListingCache and the invalidation hook
// used by the product command handlers.
type Cache struct {
	client cache.Client
	ttl    time.Duration
}

// NewCache creates a product listing cache with the default TTL.
func NewCache(client cache.Client) *Cache {
	return &Cache{client: client, ttl: DefaultTTL}
}

// GetListing returns the cached listing, or found=false on a miss.
// A corrupt cache entry counts as a miss.
func (c *Cache) GetListing(ctx context.Context) ([]queries.ProductResponse, bool, error) {
	raw, err := c.client.Get(ctx, listingKey)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cached []cachedProduct
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, false, nil
	}

	products := make([]queries.ProductResponse, 0, len(cached))
	for _, entry := range cached {
		id, idErr := kernel.UUIDFromString(entry.ID)
		if idErr != nil {
			return nil, false, nil
		}
		products = append(products, queries.ProductResponse{
			ID:          id,
			Name:        entry.Name,
			Description: entry.Description,
			PriceCents:  entry.PriceCents,
		})
	}

	return products, true, nil
}

// SetListing stores the listing with the configured TTL.
func (c *Cache) SetListing(ctx context.Context, products []queries.ProductResponse) error {
	cached := make([]cachedProduct, 0, len(products))
	for _, p := range products {
		cached = append(cached, cachedProduct{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			PriceCents:  p.PriceCents,
		})
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, listingKey, payload, c.ttl)
}

// InvalidateProducts drops the cached listing.
func (c *Cache) InvalidateProducts(ctx context.Context) error {
	return c.client.Delete(ctx, listingKey)
}
