package service

import (
	"context"
	"errors"

	"order-store/internal/broker"
	"order-store/internal/models"
	"order-store/internal/redisclient"
	"order-store/internal/store"
	"order-store/internal/util"

	"go.uber.org/zap"
)

// CustomerService handles customer CRUD
type CustomerService struct {
	store  *store.Store
	cache  *redisclient.Client
	events *broker.EventPublisher
	logger *zap.Logger
}

// NewCustomerService creates a new customer service. cache and events may
// be nil when those subsystems are disabled.
func NewCustomerService(st *store.Store, cache *redisclient.Client, events *broker.EventPublisher) *CustomerService {
	return &CustomerService{
		store:  st,
		cache:  cache,
		events: events,
		logger: util.GetLogger(),
	}
}

// CustomerRequest is the body of customer create and update calls
type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// Create registers a new customer. Fails with store.ErrConflict when the
// phone number is already taken.
func (s *CustomerService) Create(ctx context.Context, req *CustomerRequest) (*models.Customer, error) {
	ctx, span := util.StartSpan(ctx, "CustomerService.Create")
	defer span.End()

	customer := &models.Customer{Name: req.Name, Phone: req.Phone}
	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		if errors.Is(err, store.ErrConflict) {
			util.PhoneConflictsTotal.Inc()
		}
		return nil, err
	}

	util.EntityWritesTotal.WithLabelValues(models.EntityCustomer, "create").Inc()
	s.logger.Info("Customer created", zap.Int64("customer_id", customer.ID))
	s.publish(ctx, models.ActionCreated, customer.ID, customer)

	return customer, nil
}

// Get retrieves a customer by id, consulting the cache first
func (s *CustomerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	ctx, span := util.StartSpan(ctx, "CustomerService.Get")
	defer span.End()

	util.EntityReadsTotal.WithLabelValues(models.EntityCustomer).Inc()

	var cached models.Customer
	if cacheGet(ctx, s.cache, models.EntityCustomer, customerCacheKey(id), &cached) {
		return &cached, nil
	}

	customer, err := s.store.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, s.cache, customerCacheKey(id), customer)

	return customer, nil
}

// Update overwrites both fields of an existing customer
func (s *CustomerService) Update(ctx context.Context, id int64, req *CustomerRequest) (*models.Customer, error) {
	ctx, span := util.StartSpan(ctx, "CustomerService.Update")
	defer span.End()

	customer := &models.Customer{ID: id, Name: req.Name, Phone: req.Phone}
	if err := s.store.UpdateCustomer(ctx, customer); err != nil {
		if errors.Is(err, store.ErrConflict) {
			util.PhoneConflictsTotal.Inc()
		}
		return nil, err
	}

	util.EntityWritesTotal.WithLabelValues(models.EntityCustomer, "update").Inc()
	cacheDel(ctx, s.cache, customerCacheKey(id))
	s.publish(ctx, models.ActionUpdated, id, customer)

	return customer, nil
}

// Delete removes a customer. Orders referencing the customer are not
// touched; they keep the now-dangling customer id.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "CustomerService.Delete")
	defer span.End()

	if err := s.store.DeleteCustomer(ctx, id); err != nil {
		return err
	}

	util.EntityWritesTotal.WithLabelValues(models.EntityCustomer, "delete").Inc()
	cacheDel(ctx, s.cache, customerCacheKey(id))
	s.publish(ctx, models.ActionDeleted, id, nil)

	return nil
}

func (s *CustomerService) publish(ctx context.Context, action string, id int64, payload interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEntityEvent(ctx, models.EntityCustomer, action, id, payload); err != nil {
		util.EventsPublishFailedTotal.Inc()
		s.logger.Error("Failed to publish customer event",
			zap.String("action", action),
			zap.Int64("customer_id", id),
			zap.Error(err))
		return
	}
	util.EventsPublishedTotal.WithLabelValues(models.EntityCustomer, action).Inc()
}
