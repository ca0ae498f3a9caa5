package legacy

import (
	"context"
	"log/slog"
	"sync"

	"fulfilment/internal/core/domain/model/store"
)

// notifier is the slice of Client the dispatcher needs.
type notifier interface {
	CreateStore(ctx context.Context, aggregate *store.Store) error
	UpdateStore(ctx context.Context, aggregate *store.Store) error
}

type operation int

const (
	operationCreate operation = iota
	operationUpdate
)

type pendingNotification struct {
	op       operation
	snapshot *store.Store
}

// Dispatcher implements ports.LegacyStoreGateway. Notifications that fail are
// parked in an in-memory retry queue; a background job drains it with Flush.
// Updates supersede queued creates for the same store, so the queue retries
// the create with the latest state instead of replaying stale data.
type Dispatcher struct {
	client notifier
	logger *slog.Logger

	mu      sync.Mutex
	pending []pendingNotification
}

// NewDispatcher creates a dispatcher around the given legacy client.
func NewDispatcher(client notifier, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		client: client,
		logger: logger,
	}
}

// CreateStore forwards the notification and queues it on failure.
func (d *Dispatcher) CreateStore(ctx context.Context, aggregate *store.Store) error {
	if err := d.client.CreateStore(ctx, aggregate); err != nil {
		d.enqueue(operationCreate, aggregate)
		return err
	}

	return nil
}

// UpdateStore forwards the notification and queues it on failure.
func (d *Dispatcher) UpdateStore(ctx context.Context, aggregate *store.Store) error {
	if err := d.client.UpdateStore(ctx, aggregate); err != nil {
		d.enqueue(operationUpdate, aggregate)
		return err
	}

	return nil
}

// PendingCount returns the number of queued notifications.
func (d *Dispatcher) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.pending)
}

// Flush retries every queued notification once, in order. Notifications that
// fail again stay queued for the next run.
func (d *Dispatcher) Flush(ctx context.Context) error {
	d.mu.Lock()
	batch := d.pending
	d.pending = nil
	d.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	d.logger.Info("retrying legacy store notifications", "count", len(batch))

	var requeue []pendingNotification
	for _, notification := range batch {
		var err error
		switch notification.op {
		case operationCreate:
			err = d.client.CreateStore(ctx, notification.snapshot)
		case operationUpdate:
			err = d.client.UpdateStore(ctx, notification.snapshot)
		}
		if err != nil {
			requeue = append(requeue, notification)
		}
	}

	if len(requeue) > 0 {
		d.mu.Lock()
		d.pending = append(requeue, d.pending...)
		d.mu.Unlock()

		d.logger.Warn("legacy store notifications still failing", "count", len(requeue))
	}

	return nil
}

func (d *Dispatcher) enqueue(op operation, aggregate *store.Store) {
	snapshot := *aggregate

	d.mu.Lock()
	defer d.mu.Unlock()

	// An update carries the full store state, so it replaces any queued
	// notification for the same store. The queued operation is kept: the
	// legacy system must still see a create before it can accept updates.
	for i, queued := range d.pending {
		if queued.snapshot.IsEqual(aggregate) {
			d.pending[i].snapshot = &snapshot
			return
		}
	}

	d.pending = append(d.pending, pendingNotification{op: op, snapshot: &snapshot})
}
