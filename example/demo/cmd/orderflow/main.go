// Command orderflow wires the full order example together and runs one
// order lifecycle end to end: create and confirm an order, wait for the
// read model to catch up, pay the order and list the customer's orders.
//
// Configuration comes from the environment, see the config package. With
// OTLP_ENDPOINT set, traces are exported via OTLP over HTTP.
package main

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/eventflux/domain-eventbus-go/eventbus"
	"github.com/eventflux/domain-eventbus-go/eventbus/oteladapters"
	"github.com/eventflux/domain-eventbus-go/example/features/command/createorder"
	"github.com/eventflux/domain-eventbus-go/example/features/command/updateorderstatus"
	"github.com/eventflux/domain-eventbus-go/example/features/projection/orderprojection"
	"github.com/eventflux/domain-eventbus-go/example/features/query/getcustomerorders"
	"github.com/eventflux/domain-eventbus-go/example/features/query/getorder"
	"github.com/eventflux/domain-eventbus-go/example/shared/core"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/config"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/orderstore"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/projectionstore"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/projectionstore/memoryengine"
	"github.com/eventflux/domain-eventbus-go/example/shared/shell/projectionstore/sqliteengine"
)

const serviceName = "orderflow-demo"

// readModelTimeout bounds how long the demo waits for the projector to
// catch up after a fire-and-forget publish.
const readModelTimeout = 2 * time.Second

func main() {
	ctx := context.Background()

	cfg, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	shutdownTracing := setupTracing(ctx, cfg)
	defer shutdownTracing()

	shutdownMetrics := setupMetrics()
	defer shutdownMetrics()

	bus, err := eventbus.NewEventBus(
		eventbus.WithPoolSize(cfg.PoolSize),
		eventbus.WithQueueCapacity(cfg.QueueCapacity),
		eventbus.WithContextualLogger(oteladapters.NewSlogBridgeLogger(serviceName)),
		eventbus.WithMetrics(oteladapters.NewMetricsCollector(otel.Meter(serviceName))),
		eventbus.WithTracing(oteladapters.NewTracingCollector(otel.Tracer(serviceName))),
	)
	if err != nil {
		log.Fatalf("Failed to create event bus: %v", err)
	}
	defer bus.Close()

	orders := orderstore.NewStore()

	projections, err := newProjectionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create projection store: %v", err)
	}

	if _, err = orderprojection.NewProjector(bus, projections); err != nil {
		log.Fatalf("Failed to create projector: %v", err)
	}

	if err = subscribeSideEffects(bus); err != nil {
		log.Fatalf("Failed to subscribe side effects: %v", err)
	}

	createHandler := createorder.NewCommandHandler(orders, bus)
	updateHandler := updateorderstatus.NewCommandHandler(orders)
	getOrderHandler := getorder.NewQueryHandler(projections)
	listOrdersHandler := getcustomerorders.NewQueryHandler(projections)

	log.Printf("Order flow demo started: pool_size=%d queue_capacity=%d projection_engine=%s",
		cfg.PoolSize, cfg.QueueCapacity, cfg.ProjectionEngine)

	if err := runOrderFlow(ctx, createHandler, updateHandler, getOrderHandler, listOrdersHandler); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}

	log.Printf("Order flow demo finished")
}

func runOrderFlow(
	ctx context.Context,
	createHandler createorder.CommandHandler,
	updateHandler updateorderstatus.CommandHandler,
	getOrderHandler getorder.QueryHandler,
	listOrdersHandler getcustomerorders.QueryHandler,
) error {

	mousePrice, err := core.MoneyFromString("99.95", core.DefaultCurrencyCode)
	if err != nil {
		return err
	}

	padPrice, err := core.MoneyFromString("29.9", core.DefaultCurrencyCode)
	if err != nil {
		return err
	}

	command := createorder.BuildCommand(
		"customer-1",
		[]createorder.ItemInput{
			{ProductID: "product-1", ProductName: "Wireless Mouse", UnitPrice: mousePrice, Quantity: 2},
			{ProductID: "product-2", ProductName: "Mouse Pad", UnitPrice: padPrice, Quantity: 1},
		},
		time.Now(),
	)

	orderID, err := createHandler.Handle(ctx, command)
	if err != nil {
		return err
	}

	log.Printf("Order created and confirmed: order_id=%s", orderID)

	projection, err := awaitProjection(ctx, getOrderHandler, orderID)
	if err != nil {
		return err
	}

	log.Printf("Read model caught up: order_id=%s total=%s %s status=%s",
		projection.OrderID, projection.TotalAmount, projection.Currency, projection.Status)

	payCommand := updateorderstatus.BuildCommand(orderID, core.StatusPaid, time.Now())
	if err := updateHandler.Handle(ctx, payCommand); err != nil {
		return err
	}

	log.Printf("Order paid: order_id=%s", orderID)

	result, err := listOrdersHandler.Handle(ctx, getcustomerorders.BuildQuery("customer-1", 0, 0))
	if err != nil {
		return err
	}

	log.Printf("Customer orders: customer_id=%s page=%d count=%d", result.CustomerID, result.Page, result.Count)
	for _, order := range result.Orders {
		log.Printf("  order_id=%s confirmed_at=%s total=%s %s",
			order.OrderID, order.ConfirmedAt.Format(time.RFC3339), order.TotalAmount, order.Currency)
	}

	return nil
}

// awaitProjection polls the read side until the projector has processed the
// deferred OrderConfirmed event or the timeout expires.
func awaitProjection(
	ctx context.Context,
	handler getorder.QueryHandler,
	orderID core.OrderIDString,
) (shell.OrderProjection, error) {

	deadline := time.Now().Add(readModelTimeout)

	for time.Now().Before(deadline) {
		loaded, found, getErr := handler.Handle(ctx, getorder.BuildQuery(orderID))
		if getErr != nil {
			return shell.OrderProjection{}, getErr
		}

		if found {
			return loaded, nil
		}

		time.Sleep(10 * time.Millisecond)
	}

	return shell.OrderProjection{}, core.ErrOrderNotFound
}

// subscribeSideEffects registers the fan-out consumers that ride on
// OrderConfirmed next to the projector: a confirmation email, an inventory
// reservation and an analytics tick. In this demo they only log.
func subscribeSideEffects(bus *eventbus.EventBus) error {
	sendConfirmationEmail := func(_ context.Context, event eventbus.Event) error {
		if confirmed, ok := event.(core.OrderConfirmed); ok {
			log.Printf("Email notification: order confirmed for customer_id=%s order_id=%s",
				confirmed.CustomerID, confirmed.OrderID)
		}

		return nil
	}

	reserveInventory := func(_ context.Context, event eventbus.Event) error {
		if confirmed, ok := event.(core.OrderConfirmed); ok {
			log.Printf("Inventory update: reserving stock for order_id=%s", confirmed.OrderID)
		}

		return nil
	}

	recordAnalytics := func(_ context.Context, event eventbus.Event) error {
		if confirmed, ok := event.(core.OrderConfirmed); ok {
			log.Printf("Analytics: order_id=%s confirmed_at=%s",
				confirmed.OrderID, confirmed.ConfirmedAt.Format(time.RFC3339))
		}

		return nil
	}

	for _, handler := range []eventbus.Handler{sendConfirmationEmail, reserveInventory, recordAnalytics} {
		if err := bus.Subscribe(core.OrderConfirmedEventType, handler); err != nil {
			return err
		}
	}

	return nil
}

func newProjectionStore(cfg config.Config) (projectionstore.Store, error) {
	if cfg.ProjectionEngine == config.EngineSQLite {
		db, err := sqliteengine.OpenInMemory()
		if err != nil {
			return nil, err
		}

		return sqliteengine.NewProjectionStoreFromSQLX(db)
	}

	return memoryengine.NewProjectionStore(), nil
}

// setupMetrics installs a real SDK meter provider so the bus's instruments
// are backed by actual aggregation. No exporter is attached here; hook one
// up via sdkmetric.WithReader when a metrics backend is available.
func setupMetrics() func() {
	meterProvider := sdkmetric.NewMeterProvider()
	otel.SetMeterProvider(meterProvider)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if shutdownErr := meterProvider.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Printf("Error shutting down meter provider: %v", shutdownErr)
		}
	}
}

// setupTracing installs a global OTLP trace exporter when OTLP_ENDPOINT is
// configured and returns the shutdown function. Without an endpoint the
// default no-op providers stay in place.
func setupTracing(ctx context.Context, cfg config.Config) func() {
	if cfg.OTLPEndpoint == "" {
		return func() {}
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		log.Printf("Failed to create tracing resource: %v", err)
		return func() {}
	}

	traceExporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		log.Printf("Failed to create trace exporter: %v", err)
		return func() {}
	}

	tracerProvider := trace.NewTracerProvider(
		trace.WithBatcher(traceExporter),
		trace.WithResource(res),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if shutdownErr := tracerProvider.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Printf("Error shutting down tracer provider: %v", shutdownErr)
		}
	}
}
