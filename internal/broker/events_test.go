package broker

import (
	"context"
	"testing"

	"order-store/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilPublisherDropsEvents(t *testing.T) {
	var ep *EventPublisher
	assert.NoError(t, ep.PublishEntityEvent(context.Background(), models.EntityCustomer, models.ActionCreated, 1, nil))

	ep = NewEventPublisher(nil)
	assert.NoError(t, ep.PublishEntityEvent(context.Background(), models.EntityOrder, models.ActionDeleted, 2, nil))
}

func TestNewEntityEvent(t *testing.T) {
	order := &models.Order{ID: 5, CustomerID: 1, Timestamp: 100, Items: []int64{1, 1}}

	event := newEntityEvent(models.EntityOrder, models.ActionUpdated, order.ID, order)

	assert.Equal(t, "order.updated", event.EventType)
	assert.Equal(t, models.EntityOrder, event.Entity)
	assert.Equal(t, models.ActionUpdated, event.Action)
	assert.Equal(t, int64(5), event.EntityID)
	assert.Equal(t, order, event.Payload)
	assert.False(t, event.Timestamp.IsZero())

	_, err := uuid.Parse(event.EventID)
	require.NoError(t, err)
}
