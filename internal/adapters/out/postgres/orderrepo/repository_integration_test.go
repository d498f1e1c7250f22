package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence and the
// conditional-update concurrency behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithItems() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(original.VendorID(), retrieved.VendorID())
	suite.Nil(retrieved.RiderID())
	suite.Equal(original.TotalAmount().MinorUnits(), retrieved.TotalAmount().MinorUnits())
	suite.Equal(original.DeliveryFee().MinorUnits(), retrieved.DeliveryFee().MinorUnits())
	suite.Equal(order.StatusNewOrder, retrieved.Status())
	suite.Equal(original.DeliveryAddress(), retrieved.DeliveryAddress())
	suite.Len(retrieved.Items(), 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_MatchingRow_PersistsTransition() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	from := testOrder.Status()
	err := testOrder.TransitionTo(
		order.PendingAcceptance, order.ActorCustomer, testOrder.CustomerID(), time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.UpdateStatus(ctx, testOrder, from))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PendingAcceptance, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_StaleStatus_ReturnsConcurrencyConflict() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := testOrder.TransitionTo(
		order.PendingAcceptance, order.ActorCustomer, testOrder.CustomerID(), time.Now().UTC())
	suite.Require().NoError(err)

	// The caller believes the row is still Preparing, but it holds New Order.
	err = suite.repository.UpdateStatus(ctx, testOrder, order.Preparing)
	suite.Require().Error(err)

	var conflictErr *errs.ConcurrencyConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// The row is untouched.
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusNewOrder, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_UnassignedReadyOrder_AssignsRider() {
	ctx := context.Background()

	testOrder := suite.createReadyForPickupOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	riderID := kernel.NewUUID()
	suite.Require().NoError(testOrder.Claim(riderID, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Claim(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.RiderID())
	suite.Equal(riderID, *retrieved.RiderID())
	suite.Equal(order.ReadyForPickup, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestClaim_AlreadyClaimedOrder_ReturnsConcurrencyConflict() {
	ctx := context.Background()

	testOrder := suite.createReadyForPickupOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two riders loaded the same unassigned order.
	firstClaim := suite.reloadOrder(ctx, testOrder.ID())
	secondClaim := suite.reloadOrder(ctx, testOrder.ID())

	suite.Require().NoError(firstClaim.Claim(kernel.NewUUID(), time.Now().UTC()))
	suite.Require().NoError(secondClaim.Claim(kernel.NewUUID(), time.Now().UTC()))

	suite.Require().NoError(suite.repository.Claim(ctx, firstClaim))

	err := suite.repository.Claim(ctx, secondClaim)
	suite.Require().Error(err)

	var conflictErr *errs.ConcurrencyConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// The first rider keeps the order.
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.RiderID())
	suite.Equal(*firstClaim.RiderID(), *retrieved.RiderID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSumEarnings_DeliveredOrdersOnly() {
	ctx := context.Background()

	vendorID := kernel.NewUUID()
	riderID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	// Two delivered orders: totals 120000 and 80000, fee 20000 each.
	suite.addDeliveredOrder(ctx, vendorID, riderID, 100000, 20000)
	suite.addDeliveredOrder(ctx, vendorID, riderID, 60000, 20000)

	// An order still in flight must not count.
	pending := suite.createTestOrderFor(vendorID, 50000, 20000)
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	vendorEarnings, err := suite.repository.SumVendorEarnings(ctx, vendorID)
	suite.Require().NoError(err)
	suite.Equal(int64(160000), vendorEarnings.MinorUnits())

	riderEarnings, err := suite.repository.SumRiderEarnings(ctx, riderID)
	suite.Require().NoError(err)
	suite.Equal(int64(40000), riderEarnings.MinorUnits())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSumEarnings_NoDeliveredOrders_ReturnsZero() {
	ctx := context.Background()

	earnings, err := suite.repository.SumVendorEarnings(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Equal(int64(0), earnings.MinorUnits())
}

// createTestOrder creates a basic new order with two line items.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderFor(kernel.NewUUID(), 50000, 15000)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderFor(
	vendorID kernel.UUID, itemPrice, fee int64,
) *order.Order {
	itemA, err := order.NewItem(
		kernel.NewUUID(), "jollof rice", kernel.MoneyFromMinorUnits(itemPrice/2), 1)
	suite.Require().NoError(err)
	itemB, err := order.NewItem(
		kernel.NewUUID(), "grilled chicken", kernel.MoneyFromMinorUnits(itemPrice/2), 1)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), vendorID,
		[]order.Item{itemA, itemB},
		kernel.MoneyFromMinorUnits(fee),
		"12 Marina Road", nil, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// createReadyForPickupOrder walks a fresh order to Ready for Pickup.
func (suite *OrderRepositoryIntegrationTestSuite) createReadyForPickupOrder() *order.Order {
	testOrder := suite.createTestOrder()
	now := time.Now().UTC()

	suite.Require().NoError(testOrder.TransitionTo(
		order.PendingAcceptance, order.ActorCustomer, testOrder.CustomerID(), now))
	suite.Require().NoError(testOrder.TransitionTo(
		order.Preparing, order.ActorVendor, testOrder.VendorID(), now))
	suite.Require().NoError(testOrder.TransitionTo(
		order.ReadyForPickup, order.ActorVendor, testOrder.VendorID(), now))
	return testOrder
}

// addDeliveredOrder persists an order already in Delivered status with the
// given rider.
func (suite *OrderRepositoryIntegrationTestSuite) addDeliveredOrder(
	ctx context.Context, vendorID, riderID kernel.UUID, itemPrice, fee int64,
) {
	item, err := order.NewItem(
		kernel.NewUUID(), "suya platter", kernel.MoneyFromMinorUnits(itemPrice), 1)
	suite.Require().NoError(err)

	now := time.Now().UTC()
	delivered, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), vendorID, &riderID,
		[]order.Item{item},
		kernel.MoneyFromMinorUnits(itemPrice+fee),
		kernel.MoneyFromMinorUnits(fee),
		order.Delivered, "12 Marina Road", nil, now, now,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, delivered))
}

func (suite *OrderRepositoryIntegrationTestSuite) reloadOrder(
	ctx context.Context, id kernel.UUID,
) *order.Order {
	loaded, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	return loaded
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
