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

// ItemService handles catalog item CRUD
type ItemService struct {
	store  *store.Store
	cache  *redisclient.Client
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewItemService creates a new item service
func NewItemService(st *store.Store, cache *redisclient.Client, events *broker.EventPublisher) *ItemService {
	return &ItemService{
		store:  st,
		cache:  cache,
		events: events,
		logger: util.GetLogger(),
	}
}

// ItemRequest is the body of item create and update calls
type ItemRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
}

// Create adds a new catalog item. Names are not unique.
func (s *ItemService) Create(ctx context.Context, req *ItemRequest) (*models.Item, error) {
	ctx, span := util.StartSpan(ctx, "ItemService.Create")
	defer span.End()

	item := &models.Item{Name: req.Name, Price: req.Price}
	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	util.EntityWritesTotal.WithLabelValues(models.EntityItem, "create").Inc()
	s.logger.Info("Item created", zap.Int64("item_id", item.ID))
	s.publish(ctx, models.ActionCreated, item.ID, item)

	return item, nil
}

// Get retrieves an item by id, consulting the cache first
func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	ctx, span := util.StartSpan(ctx, "ItemService.Get")
	defer span.End()

	util.EntityReadsTotal.WithLabelValues(models.EntityItem).Inc()

	var cached models.Item
	if cacheGet(ctx, s.cache, models.EntityItem, itemCacheKey(id), &cached) {
		return &cached, nil
	}

	item, err := s.store.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, s.cache, itemCacheKey(id), item)

	return item, nil
}

// Update overwrites both fields of an existing item
func (s *ItemService) Update(ctx context.Context, id int64, req *ItemRequest) (*models.Item, error) {
	ctx, span := util.StartSpan(ctx, "ItemService.Update")
	defer span.End()

	item := &models.Item{ID: id, Name: req.Name, Price: req.Price}
	if err := s.store.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	util.EntityWritesTotal.WithLabelValues(models.EntityItem, "update").Inc()
	cacheDel(ctx, s.cache, itemCacheKey(id))
	s.publish(ctx, models.ActionUpdated, id, item)

	return item, nil
}

// Delete removes an item. Orders referencing the item keep their join rows;
// the dangling reference is tolerated.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "ItemService.Delete")
	defer span.End()

	if err := s.store.DeleteItem(ctx, id); err != nil {
		return err
	}

	util.EntityWritesTotal.WithLabelValues(models.EntityItem, "delete").Inc()
	cacheDel(ctx, s.cache, itemCacheKey(id))
	s.publish(ctx, models.ActionDeleted, id, nil)

	return nil
}

func (s *ItemService) publish(ctx context.Context, action string, id int64, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEntityEvent(ctx, models.EntityItem, action, id, payload); err != nil {
		util.EventsPublishFailedTotal.Inc()
		s.logger.Error("Failed to publish item event",
			zap.String("action", action),
			zap.Int64("item_id", id),
			zap.Error(err))
		return
	}
	util.EventsPublishedTotal.WithLabelValues(models.EntityItem, action).Inc()
}
