package sqliteengine_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/projectionstore/sqliteengine"
)

func givenStore(t *testing.T) *sqliteengine.ProjectionStore {
	t.Helper()

	db, err := sqliteengine.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	store, err := sqliteengine.NewProjectionStoreFromSQLX(db)
	require.NoError(t, err)

	return store
}

func givenStoreFromSQLDB(t *testing.T) *sqliteengine.ProjectionStore {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})

	store, err := sqliteengine.NewProjectionStoreFromSQLDB(db)
	require.NoError(t, err)

	return store
}

func givenProjection(orderID core.OrderIDString, customerID core.CustomerIDString, confirmedAt time.Time) shell.OrderProjection {
	return shell.OrderProjection{
		OrderID:     orderID,
		CustomerID:  customerID,
		TotalAmount: "229.8",
		Currency:    core.DefaultCurrencyCode,
		ConfirmedAt: core.ToOccurredAt(confirmedAt),
		Status:      core.StatusConfirmed.String(),
	}
}

func Test_ProjectionStore_NewProjectionStoreFromSQLX_RejectsNilConnection(t *testing.T) {
	// act
	_, err := sqliteengine.NewProjectionStoreFromSQLX(nil)

	// assert
	assert.Error(t, err)
}

func Test_ProjectionStore_NewProjectionStoreFromSQLDB_RejectsNilConnection(t *testing.T) {
	// act
	_, err := sqliteengine.NewProjectionStoreFromSQLDB(nil)

	// assert
	assert.Error(t, err)
}

func Test_ProjectionStore_FulfillsStoreContract_WithSQLDBConnection(t *testing.T) {
	// arrange
	store := givenStoreFromSQLDB(t)
	base := time.Unix(1000, 0).UTC()

	require.NoError(t, store.Save(context.Background(), givenProjection("order-b", "customer-1", base)))
	require.NoError(t, store.Save(context.Background(), givenProjection("order-a", "customer-1", base)))
	require.NoError(t, store.Save(context.Background(), givenProjection("order-c", "customer-2", base)))

	// act
	loaded, found, err := store.Get(context.Background(), "order-a")
	require.NoError(t, err)
	orders, byCustomerErr := store.ByCustomer(context.Background(), "customer-1", 1, 20)
	require.NoError(t, byCustomerErr)

	// assert
	require.True(t, found)
	assert.Equal(t, core.OrderIDString("order-a"), loaded.OrderID)
	require.Len(t, orders, 2)
	assert.Equal(t, core.OrderIDString("order-a"), orders[0].OrderID)
	assert.Equal(t, core.OrderIDString("order-b"), orders[1].OrderID)
}

func Test_ProjectionStore_Get_ReturnsFalse_WhenOrderUnknown(t *testing.T) {
	// arrange
	store := givenStore(t)

	// act
	_, found, err := store.Get(context.Background(), "order-unknown")

	// assert
	require.NoError(t, err)
	assert.False(t, found)
}

func Test_ProjectionStore_SaveAndGet_RoundTripsProjection(t *testing.T) {
	// arrange
	store := givenStore(t)
	projection := givenProjection("order-1", "customer-1", time.Unix(0, 0).UTC())

	// act
	require.NoError(t, store.Save(context.Background(), projection))
	loaded, found, err := store.Get(context.Background(), "order-1")

	// assert
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, projection.OrderID, loaded.OrderID)
	assert.Equal(t, projection.CustomerID, loaded.CustomerID)
	assert.Equal(t, projection.Status, loaded.Status)
	assert.True(t, projection.ConfirmedAt.Equal(loaded.ConfirmedAt))

	total, err := loaded.TotalMoney()
	require.NoError(t, err)
	expected, err := core.MoneyFromString("229.8", core.DefaultCurrencyCode)
	require.NoError(t, err)
	assert.True(t, total.Equals(expected))
}

func Test_ProjectionStore_Save_UpsertsByOrderID(t *testing.T) {
	// arrange
	store := givenStore(t)
	projection := givenProjection("order-1", "customer-1", time.Unix(0, 0).UTC())
	require.NoError(t, store.Save(context.Background(), projection))

	// act: save again with a changed status
	projection.Status = core.StatusShipped.String()
	require.NoError(t, store.Save(context.Background(), projection))

	// assert: still one record, with the new status
	orders, err := store.ByCustomer(context.Background(), "customer-1", 1, 20)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, core.StatusShipped.String(), orders[0].Status)
}

func Test_ProjectionStore_ByCustomer_OrdersByConfirmedAtThenOrderID(t *testing.T) {
	// arrange
	store := givenStore(t)
	base := time.Unix(1000, 0).UTC()

	require.NoError(t, store.Save(context.Background(), givenProjection("order-b", "customer-1", base)))
	require.NoError(t, store.Save(context.Background(), givenProjection("order-a", "customer-1", base)))
	require.NoError(t, store.Save(context.Background(), givenProjection("order-c", "customer-1", base.Add(-time.Hour))))
	require.NoError(t, store.Save(context.Background(), givenProjection("order-d", "customer-2", base)))

	// act
	orders, err := store.ByCustomer(context.Background(), "customer-1", 1, 20)

	// assert
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, core.OrderIDString("order-c"), orders[0].OrderID)
	assert.Equal(t, core.OrderIDString("order-a"), orders[1].OrderID)
	assert.Equal(t, core.OrderIDString("order-b"), orders[2].OrderID)
}

func Test_ProjectionStore_ByCustomer_PaginatesDeterministically(t *testing.T) {
	// arrange
	store := givenStore(t)
	base := time.Unix(1000, 0).UTC()

	require.NoError(t, store.Save(context.Background(), givenProjection("order-a", "customer-1", base)))
	require.NoError(t, store.Save(context.Background(), givenProjection("order-b", "customer-1", base.Add(time.Minute))))

	// act
	firstPage, err := store.ByCustomer(context.Background(), "customer-1", 1, 1)
	require.NoError(t, err)
	secondPage, err := store.ByCustomer(context.Background(), "customer-1", 2, 1)
	require.NoError(t, err)

	// assert
	require.Len(t, firstPage, 1)
	require.Len(t, secondPage, 1)
	assert.Equal(t, core.OrderIDString("order-a"), firstPage[0].OrderID)
	assert.Equal(t, core.OrderIDString("order-b"), secondPage[0].OrderID)
}

func Test_ProjectionStore_ByCustomer_ReturnsEmptySlice_ForPageBeyondData(t *testing.T) {
	// arrange
	store := givenStore(t)
	require.NoError(t, store.Save(context.Background(), givenProjection("order-a", "customer-1", time.Unix(0, 0).UTC())))

	// act
	orders, err := store.ByCustomer(context.Background(), "customer-1", 5, 20)

	// assert
	require.NoError(t, err)
	assert.Empty(t, orders)
}
