package createorder_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventflux/domain-eventbus-go/eventbus"
	"github.com/eventflux/domain-eventbus-go/example/features/command/createorder"
	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/orderstore"
)

type publisherSpy struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (p *publisherSpy) PublishDeferred(event eventbus.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)
}

func (p *publisherSpy) publishedEvents() []eventbus.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]eventbus.Event(nil), p.events...)
}

func fakeClock() time.Time {
	return time.Unix(0, 0).UTC()
}

func mustMoney(t *testing.T, amount string) core.Money {
	t.Helper()

	money, err := core.MoneyFromString(amount, core.DefaultCurrencyCode)
	require.NoError(t, err)

	return money
}

func givenItems(t *testing.T) []createorder.ItemInput {
	t.Helper()

	return []createorder.ItemInput{
		{ProductID: "product-1", ProductName: "Wireless Mouse", UnitPrice: mustMoney(t, "99.95"), Quantity: 2},
		{ProductID: "product-2", ProductName: "Mouse Pad", UnitPrice: mustMoney(t, "29.9"), Quantity: 1},
	}
}

func Test_CommandHandler_Handle_CreatesConfirmedOrderAndPublishesEvent(t *testing.T) {
	// arrange
	store := orderstore.NewStore()
	publisher := &publisherSpy{}
	handler := createorder.NewCommandHandler(store, publisher)
	command := createorder.BuildCommand("customer-1", givenItems(t), fakeClock())

	// act
	orderID, err := handler.Handle(context.Background(), command)

	// assert
	require.NoError(t, err)
	require.NotEmpty(t, orderID)

	order, found := store.Get(orderID)
	require.True(t, found)
	assert.Equal(t, core.StatusConfirmed, order.Status())
	assert.Empty(t, order.PendingEvents())

	published := publisher.publishedEvents()
	require.Len(t, published, 1)

	confirmed, ok := published[0].(core.OrderConfirmed)
	require.True(t, ok)
	assert.Equal(t, orderID, confirmed.OrderID)
	assert.True(t, confirmed.TotalAmount.Equals(mustMoney(t, "229.8")))
}

func Test_CommandHandler_Handle_StoresNothing_WhenAnItemIsInvalid(t *testing.T) {
	// arrange
	store := orderstore.NewStore()
	publisher := &publisherSpy{}
	handler := createorder.NewCommandHandler(store, publisher)

	items := givenItems(t)
	items[1].Quantity = 0
	command := createorder.BuildCommand("customer-1", items, fakeClock())

	// act
	_, err := handler.Handle(context.Background(), command)

	// assert: all-or-nothing
	assert.ErrorIs(t, err, core.ErrQuantityNotPositive)
	assert.Equal(t, 0, store.Count())
	assert.Empty(t, publisher.publishedEvents())
}

func Test_CommandHandler_Handle_StoresNothing_WhenOrderHasNoItems(t *testing.T) {
	// arrange
	store := orderstore.NewStore()
	publisher := &publisherSpy{}
	handler := createorder.NewCommandHandler(store, publisher)
	command := createorder.BuildCommand("customer-1", nil, fakeClock())

	// act
	_, err := handler.Handle(context.Background(), command)

	// assert
	assert.ErrorIs(t, err, core.ErrOrderHasNoItems)
	assert.Equal(t, 0, store.Count())
	assert.Empty(t, publisher.publishedEvents())
}
