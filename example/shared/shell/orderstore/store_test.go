package orderstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/orderstore"
)

func fakeClock() time.Time {
	return time.Unix(0, 0).UTC()
}

func Test_Store_Get_ReturnsFalse_WhenOrderUnknown(t *testing.T) {
	// arrange
	store := orderstore.NewStore()

	// act
	_, found := store.Get("order-unknown")

	// assert
	assert.False(t, found)
}

func Test_Store_SaveAndGet_RoundTripsOrder(t *testing.T) {
	// arrange
	store := orderstore.NewStore()
	order := core.BuildOrder("customer-1", fakeClock())

	// act
	store.Save(order)
	loaded, found := store.Get(order.OrderID())

	// assert
	require.True(t, found)
	assert.Same(t, order, loaded)
	assert.Equal(t, 1, store.Count())
}

func Test_Store_Save_ReplacesExistingOrder(t *testing.T) {
	// arrange
	store := orderstore.NewStore()
	order := core.BuildOrder("customer-1", fakeClock())
	store.Save(order)

	// act: mutate and save again under the same ID
	order.ChangeStatus(core.StatusPaid, fakeClock())
	store.Save(order)

	// assert
	loaded, found := store.Get(order.OrderID())
	require.True(t, found)
	assert.Equal(t, core.StatusPaid, loaded.Status())
	assert.Equal(t, 1, store.Count())
}
