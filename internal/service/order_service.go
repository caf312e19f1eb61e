package service

import (
	"context"

	"order-store/internal/broker"
	"order-store/internal/models"
	"order-store/internal/redisclient"
	"order-store/internal/store"
	"order-store/internal/util"

	"go.uber.org/zap"
)

// OrderService handles order CRUD, including the order's item list
type OrderService struct {
	store  *store.Store
	cache  *redisclient.Client
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(st *store.Store, cache *redisclient.Client, events *broker.EventPublisher) *OrderService {
	return &OrderService{
		store:  st,
		cache:  cache,
		events: events,
		logger: util.GetLogger(),
	}
}

// OrderRequest is the body of order create and update calls. Items may
// repeat ids and may be empty; an update with an empty list clears the
// order's items. The referenced customer and item ids are not checked
// for existence.
type OrderRequest struct {
	CustomerID int64   `json:"customer_id" binding:"required"`
	Timestamp  int64   `json:"timestamp"`
	Notes      *string `json:"notes"`
	Items      []int64 `json:"items"`
}

// Create records a new order with its item list. The response echoes the
// submitted item list verbatim; it is not re-read from the store.
func (s *OrderService) Create(ctx context.Context, req *OrderRequest) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Create")
	defer span.End()

	order := &models.Order{
		CustomerID: req.CustomerID,
		Timestamp:  req.Timestamp,
		Notes:      req.Notes,
		Items:      normalizeItems(req.Items),
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	util.EntityWritesTotal.WithLabelValues(models.EntityOrder, "create").Inc()
	s.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("customer_id", order.CustomerID),
		zap.Int("item_count", len(order.Items)))
	s.publish(ctx, models.ActionCreated, order.ID, order)

	return order, nil
}

// Get retrieves an order and its item ids in insertion order
func (s *OrderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Get")
	defer span.End()

	util.EntityReadsTotal.WithLabelValues(models.EntityOrder).Inc()

	var cached models.Order
	if cacheGet(ctx, s.cache, models.EntityOrder, orderCacheKey(id), &cached) {
		cached.Items = normalizeItems(cached.Items)
		return &cached, nil
	}

	order, err := s.store.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, s.cache, orderCacheKey(id), order)

	return order, nil
}

// Update overwrites the order's scalar fields and replaces its item list
// wholesale. A missing order fails before any item rows are touched.
func (s *OrderService) Update(ctx context.Context, id int64, req *OrderRequest) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Update")
	defer span.End()

	order := &models.Order{
		ID:         id,
		CustomerID: req.CustomerID,
		Timestamp:  req.Timestamp,
		Notes:      req.Notes,
		Items:      normalizeItems(req.Items),
	}

	if err := s.store.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}

	util.EntityWritesTotal.WithLabelValues(models.EntityOrder, "update").Inc()
	cacheDel(ctx, s.cache, orderCacheKey(id))
	s.publish(ctx, models.ActionUpdated, id, order)

	return order, nil
}

// Delete removes an order
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "OrderService.Delete")
	defer span.End()

	if err := s.store.DeleteOrder(ctx, id); err != nil {
		return err
	}

	util.EntityWritesTotal.WithLabelValues(models.EntityOrder, "delete").Inc()
	cacheDel(ctx, s.cache, orderCacheKey(id))
	s.publish(ctx, models.ActionDeleted, id, nil)

	return nil
}

func (s *OrderService) publish(ctx context.Context, action string, id int64, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEntityEvent(ctx, models.EntityOrder, action, id, payload); err != nil {
		util.EventsPublishFailedTotal.Inc()
		s.logger.Error("Failed to publish order event",
			zap.String("action", action),
			zap.Int64("order_id", id),
			zap.Error(err))
		return
	}
	util.EventsPublishedTotal.WithLabelValues(models.EntityOrder, action).Inc()
}

// normalizeItems guarantees a non-nil list so responses always encode
// items as a JSON array, never null.
func normalizeItems(items []int64) []int64 {
	if items == nil {
		return []int64{}
	}
	return items
}
