// Package legacy mirrors store changes to the legacy store manager.
//
// The legacy system predates this service and remains the master record for
// store data in a handful of downstream processes, so every local store
// create or update is announced to it after commit. The legacy API has a
// history of outages; calls go through a circuit breaker and failed
// notifications are parked in a retry queue.
package legacy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"fulfilment/internal/core/domain/model/store"

	"github.com/sony/gobreaker"
)

const requestTimeout = 5 * time.Second

// storePayload is the legacy wire shape of a store.
type storePayload struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

// Client is the HTTP client for the legacy store manager API.
// All calls run through a circuit breaker so a legacy outage stops costing
// request latency after a few consecutive failures.
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient creates a legacy API client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    "legacy-store-manager",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
		logger:     logger,
	}
}

// CreateStore announces a newly created store to the legacy system.
func (c *Client) CreateStore(ctx context.Context, aggregate *store.Store) error {
	return c.send(ctx, http.MethodPost, c.baseURL+"/stores", aggregate)
}

// UpdateStore announces an updated store to the legacy system.
func (c *Client) UpdateStore(ctx context.Context, aggregate *store.Store) error {
	return c.send(ctx, http.MethodPut, c.baseURL+"/stores/"+aggregate.ID().String(), aggregate)
}

func (c *Client) send(ctx context.Context, method, url string, aggregate *store.Store) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(storePayload{
		ID:                      aggregate.ID().String(),
		Name:                    aggregate.Name(),
		QuantityProductsInStock: aggregate.QuantityProductsInStock(),
	})
	if err != nil {
		return err
	}

	_, err = c.breaker.Execute(func() (interface{}, error) {
		req, reqErr := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
		if reqErr != nil {
			return nil, reqErr
		}
		req.Header.Set("Content-Type", "application/json")

		resp, doErr := c.httpClient.Do(req)
		if doErr != nil {
			return nil, doErr
		}
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()

		if resp.StatusCode >= http.StatusMultipleChoices {
			return nil, fmt.Errorf("legacy store manager returned status %d", resp.StatusCode)
		}

		return nil, nil
	})
	if err != nil {
		c.logger.Warn("legacy store notification failed",
			"method", method,
			"url", url,
			"storeID", aggregate.ID().String(),
			"error", err,
		)
		return err
	}

	return nil
}
