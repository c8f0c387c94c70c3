package repository

import (
	"context"

	"noodlebar/internal/model"
)

// OrderRepository defines data access for order documents.
type OrderRepository interface {
	// Save upserts an order by its ID and returns the stored document.
	Save(ctx context.Context, order *model.Order) (*model.Order, error)

	// FindByID returns an order by its document ID.
	FindByID(ctx context.Context, id string) (*model.Order, error)

	// List returns orders newest-first with limit/offset and a total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Order], error)

	// Delete removes an order by ID. Missing documents are not an error.
	Delete(ctx context.Context, id string) error
}

// OrderStatusRepository defines access to the order-status region. The region
// keeps the full status history per order in memory; entries are append-only.
type OrderStatusRepository interface {
	// Save stores a status entry. Entries are never updated in place.
	Save(ctx context.Context, status *model.OrderStatus) (*model.OrderStatus, error)

	// FindByID returns a single status entry by its own ID.
	FindByID(ctx context.Context, id string) (*model.OrderStatus, error)

	// FindByOrderID returns the status history of an order, newest first.
	FindByOrderID(ctx context.Context, orderID string) ([]model.OrderStatus, error)

	// Latest returns the most recent status entry for an order. Ties on
	// StatusDate resolve to the most recently saved entry.
	Latest(ctx context.Context, orderID string) (*model.OrderStatus, error)

	// DeleteAll clears the region.
	DeleteAll(ctx context.Context) error
}
