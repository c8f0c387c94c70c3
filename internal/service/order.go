package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"noodlebar/internal/model"
	"noodlebar/internal/repository"
	"noodlebar/internal/repository/memory"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrNoItems        = errors.New("order has no items")
	ErrUnknownStatus  = errors.New("unknown order status")
	ErrStatusNotFound = errors.New("order has no status yet")
	ErrOrderClosed    = errors.New("order already delivered or cancelled")
)

// OrderListResult is the service-level DTO for paginated orders.
type OrderListResult struct {
	Items []model.Order `json:"data"`
	Total int           `json:"total"`
}

// OrderService defines the use cases for placing orders and tracking their
// status. Orders live in MongoDB; status history lives in the status region.
type OrderService interface {
	// Place stores a new order with a generated ID and submission time, and
	// writes the initial "Order Received" entry to the status region.
	Place(ctx context.Context, order *model.Order) (*model.Order, error)

	// Get returns a single order by its ID.
	Get(ctx context.Context, id string) (*model.Order, error)

	// List returns orders newest-first using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*OrderListResult, error)

	// SetStatus appends a status entry for an existing order.
	SetStatus(ctx context.Context, orderID, status string) (*model.OrderStatus, error)

	// Status returns the latest status entry for an order.
	Status(ctx context.Context, orderID string) (*model.OrderStatus, error)

	// StatusHistory returns the full status history, newest first.
	StatusHistory(ctx context.Context, orderID string) ([]model.OrderStatus, error)

	// Cancel appends a Cancelled entry unless the order is already closed.
	Cancel(ctx context.Context, orderID string) (*model.OrderStatus, error)
}

// orderService is a concrete implementation of OrderService.
type orderService struct {
	orders   repository.OrderRepository
	statuses repository.OrderStatusRepository
}

// NewOrderService constructs a new OrderService.
func NewOrderService(orders repository.OrderRepository, statuses repository.OrderStatusRepository) OrderService {
	return &orderService{orders: orders, statuses: statuses}
}

func (s *orderService) Place(ctx context.Context, order *model.Order) (*model.Order, error) {
	if order == nil || len(order.Items) == 0 {
		return nil, ErrNoItems
	}

	order.ID = uuid.New().String()
	order.DateTimeOfSubmission = time.Now().UTC()

	stored, err := s.orders.Save(ctx, order)
	if err != nil {
		return nil, err
	}

	_, err = s.statuses.Save(ctx, &model.OrderStatus{
		ID:         uuid.New().String(),
		OrderID:    stored.ID,
		Status:     model.StatusReceived,
		StatusDate: stored.DateTimeOfSubmission,
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*model.Order, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) List(ctx context.Context, limit, offset int) (*OrderListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.orders.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &OrderListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *orderService) SetStatus(ctx context.Context, orderID, status string) (*model.OrderStatus, error) {
	if !model.ValidStatus(status) {
		return nil, ErrUnknownStatus
	}
	if _, err := s.Get(ctx, orderID); err != nil {
		return nil, err
	}

	return s.statuses.Save(ctx, &model.OrderStatus{
		ID:         uuid.New().String(),
		OrderID:    orderID,
		Status:     status,
		StatusDate: time.Now().UTC(),
	})
}

func (s *orderService) Status(ctx context.Context, orderID string) (*model.OrderStatus, error) {
	if orderID == "" {
		return nil, ErrIDRequired
	}
	latest, err := s.statuses.Latest(ctx, orderID)
	if err != nil {
		if errors.Is(err, memory.ErrNotFound) {
			return nil, ErrStatusNotFound
		}
		return nil, err
	}
	return latest, nil
}

func (s *orderService) StatusHistory(ctx context.Context, orderID string) ([]model.OrderStatus, error) {
	if orderID == "" {
		return nil, ErrIDRequired
	}
	return s.statuses.FindByOrderID(ctx, orderID)
}

func (s *orderService) Cancel(ctx context.Context, orderID string) (*model.OrderStatus, error) {
	latest, err := s.Status(ctx, orderID)
	if err != nil && !errors.Is(err, ErrStatusNotFound) {
		return nil, err
	}
	if latest != nil && (latest.Status == model.StatusDelivered || latest.Status == model.StatusCancelled) {
		return nil, ErrOrderClosed
	}
	return s.SetStatus(ctx, orderID, model.StatusCancelled)
}
