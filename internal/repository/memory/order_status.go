package memory

import (
	"context"
	"errors"
	"sort"

	"github.com/puzpuzpuz/xsync/v3"

	"noodlebar/internal/model"
	"noodlebar/internal/repository"
)

// ErrNotFound is returned when a status entry does not exist in the region.
var ErrNotFound = errors.New("order status not found")

// OrderStatusRegion is an in-process implementation of
// repository.OrderStatusRepository. Status history lives in memory, keyed
// both by entry ID and by order ID; the per-order history slices are
// copy-on-write so readers never observe a partial append. Safe for
// concurrent use by multiple goroutines.
type OrderStatusRegion struct {
	entries *xsync.MapOf[string, model.OrderStatus]
	byOrder *xsync.MapOf[string, []model.OrderStatus]
}

// NewOrderStatusRegion creates an empty order-status region.
func NewOrderStatusRegion() *OrderStatusRegion {
	return &OrderStatusRegion{
		entries: xsync.NewMapOf[string, model.OrderStatus](),
		byOrder: xsync.NewMapOf[string, []model.OrderStatus](),
	}
}

var _ repository.OrderStatusRepository = (*OrderStatusRegion)(nil)

// Save stores a status entry. Entries are append-only; saving an entry with
// an ID already present replaces that entry in place but keeps its history
// position.
func (r *OrderStatusRegion) Save(ctx context.Context, status *model.OrderStatus) (*model.OrderStatus, error) {
	entry := *status
	_, existed := r.entries.LoadAndStore(entry.ID, entry)

	r.byOrder.Compute(entry.OrderID, func(history []model.OrderStatus, _ bool) ([]model.OrderStatus, bool) {
		next := make([]model.OrderStatus, 0, len(history)+1)
		replaced := false
		for _, h := range history {
			if existed && h.ID == entry.ID {
				next = append(next, entry)
				replaced = true
				continue
			}
			next = append(next, h)
		}
		if !replaced {
			next = append(next, entry)
		}
		return next, false
	})

	out := entry
	return &out, nil
}

// FindByID returns a single status entry by its own ID.
func (r *OrderStatusRegion) FindByID(ctx context.Context, id string) (*model.OrderStatus, error) {
	entry, ok := r.entries.Load(id)
	if !ok {
		return nil, ErrNotFound
	}
	out := entry
	return &out, nil
}

// FindByOrderID returns the status history of an order, newest first.
// Entries sharing a StatusDate keep most-recently-saved-first order.
func (r *OrderStatusRegion) FindByOrderID(ctx context.Context, orderID string) ([]model.OrderStatus, error) {
	history, ok := r.byOrder.Load(orderID)
	if !ok {
		return []model.OrderStatus{}, nil
	}

	// Reverse insertion order, then stable sort: ties stay newest-saved first.
	out := make([]model.OrderStatus, len(history))
	for i, h := range history {
		out[len(history)-1-i] = h
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StatusDate.After(out[j].StatusDate)
	})
	return out, nil
}

// Latest returns the most recent status entry for an order.
func (r *OrderStatusRegion) Latest(ctx context.Context, orderID string) (*model.OrderStatus, error) {
	history, err := r.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrNotFound
	}
	out := history[0]
	return &out, nil
}

// DeleteAll clears the region.
func (r *OrderStatusRegion) DeleteAll(ctx context.Context) error {
	r.entries.Clear()
	r.byOrder.Clear()
	return nil
}
