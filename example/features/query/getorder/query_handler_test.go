package getorder_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventflux/domain-eventbus-go/example/features/query/getorder"
	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/projectionstore/memoryengine"
)

func Test_QueryHandler_Handle_ReturnsProjection_WhenOrderExists(t *testing.T) {
	// arrange
	store := memoryengine.NewProjectionStore()
	projection := shell.OrderProjection{
		OrderID:     "order-1",
		CustomerID:  "customer-1",
		TotalAmount: "229.8",
		Currency:    core.DefaultCurrencyCode,
		ConfirmedAt: core.ToOccurredAt(time.Unix(0, 0)),
		Status:      core.StatusConfirmed.String(),
	}
	require.NoError(t, store.Save(context.Background(), projection))

	handler := getorder.NewQueryHandler(store)

	// act
	loaded, found, err := handler.Handle(context.Background(), getorder.BuildQuery("order-1"))

	// assert
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, projection, loaded)
}

func Test_QueryHandler_Handle_ReturnsNotFoundWithoutError_WhenOrderUnknown(t *testing.T) {
	// arrange
	handler := getorder.NewQueryHandler(memoryengine.NewProjectionStore())

	// act
	_, found, err := handler.Handle(context.Background(), getorder.BuildQuery("order-unknown"))

	// assert
	require.NoError(t, err)
	assert.False(t, found)
}
