package getcustomerorders_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventflux/domain-eventbus-go/example/features/query/getcustomerorders"
	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/projectionstore/memoryengine"
)

func givenProjection(orderID core.OrderIDString, confirmedAt time.Time) shell.OrderProjection {
	return shell.OrderProjection{
		OrderID:     orderID,
		CustomerID:  "customer-1",
		TotalAmount: "229.8",
		Currency:    core.DefaultCurrencyCode,
		ConfirmedAt: core.ToOccurredAt(confirmedAt),
		Status:      core.StatusConfirmed.String(),
	}
}

func Test_BuildQuery_NormalizesNonPositivePageAndSize(t *testing.T) {
	// act
	query := getcustomerorders.BuildQuery("customer-1", 0, -5)

	// assert
	assert.Equal(t, getcustomerorders.DefaultPage, query.Page)
	assert.Equal(t, getcustomerorders.DefaultSize, query.Size)
}

func Test_BuildQuery_KeepsExplicitPageAndSize(t *testing.T) {
	// act
	query := getcustomerorders.BuildQuery("customer-1", 3, 7)

	// assert
	assert.Equal(t, 3, query.Page)
	assert.Equal(t, 7, query.Size)
}

func Test_QueryHandler_Handle_ReturnsOrderedPage(t *testing.T) {
	// arrange
	store := memoryengine.NewProjectionStore()
	base := time.Unix(1000, 0).UTC()
	require.NoError(t, store.Save(context.Background(), givenProjection("order-b", base.Add(time.Minute))))
	require.NoError(t, store.Save(context.Background(), givenProjection("order-a", base)))

	handler := getcustomerorders.NewQueryHandler(store)

	// act
	result, err := handler.Handle(context.Background(), getcustomerorders.BuildQuery("customer-1", 1, 20))

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.CustomerIDString("customer-1"), result.CustomerID)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Orders, 2)
	assert.Equal(t, core.OrderIDString("order-a"), result.Orders[0].OrderID)
	assert.Equal(t, core.OrderIDString("order-b"), result.Orders[1].OrderID)
}

func Test_QueryHandler_Handle_PaginatesAcrossPages(t *testing.T) {
	// arrange
	store := memoryengine.NewProjectionStore()
	base := time.Unix(1000, 0).UTC()
	require.NoError(t, store.Save(context.Background(), givenProjection("order-a", base)))
	require.NoError(t, store.Save(context.Background(), givenProjection("order-b", base.Add(time.Minute))))

	handler := getcustomerorders.NewQueryHandler(store)

	// act
	firstPage, err := handler.Handle(context.Background(), getcustomerorders.BuildQuery("customer-1", 1, 1))
	require.NoError(t, err)
	secondPage, err := handler.Handle(context.Background(), getcustomerorders.BuildQuery("customer-1", 2, 1))
	require.NoError(t, err)

	// assert
	require.Equal(t, 1, firstPage.Count)
	require.Equal(t, 1, secondPage.Count)
	assert.Equal(t, core.OrderIDString("order-a"), firstPage.Orders[0].OrderID)
	assert.Equal(t, core.OrderIDString("order-b"), secondPage.Orders[0].OrderID)
}

func Test_QueryHandler_Handle_ReturnsEmptyResult_ForPageBeyondData(t *testing.T) {
	// arrange
	store := memoryengine.NewProjectionStore()
	require.NoError(t, store.Save(context.Background(), givenProjection("order-a", time.Unix(0, 0).UTC())))

	handler := getcustomerorders.NewQueryHandler(store)

	// act
	result, err := handler.Handle(context.Background(), getcustomerorders.BuildQuery("customer-1", 9, 20))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Orders)
}
