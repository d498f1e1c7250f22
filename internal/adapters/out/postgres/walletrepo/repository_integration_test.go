package walletrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/walletrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/wallet"
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

// WalletRepositoryIntegrationTestSuite provides integration tests for
// WalletRepository using PostgreSQL containers. The interesting part is the
// conditional balance update: a stale expected balance must write neither the
// balance nor the ledger entry.
type WalletRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *walletrepo.GormWalletRepository
	tracker    *MockAggregateTracker
}

func (suite *WalletRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&walletrepo.WalletDTO{}, &walletrepo.TransactionDTO{}, &walletrepo.SavedCardDTO{}))
}

func (suite *WalletRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE wallets, transactions, saved_cards").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = walletrepo.NewGormWalletRepository(suite.db, suite.tracker)
}

func (suite *WalletRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *WalletRepositoryIntegrationTestSuite) TestAddAndGetByUser_RoundTrip() {
	ctx := context.Background()

	userID := kernel.NewUUID()
	testWallet := suite.createTestWallet(userID, 500000)
	suite.tracker.On("TrackAggregate", testWallet.ID(), testWallet).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testWallet))

	retrieved, err := suite.repository.GetByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(testWallet.ID(), retrieved.ID())
	suite.Equal(userID, retrieved.UserID())
	suite.Equal(int64(500000), retrieved.Balance().MinorUnits())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *WalletRepositoryIntegrationTestSuite) TestGetByUser_NoWallet_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByUser(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *WalletRepositoryIntegrationTestSuite) TestUpdate_MatchingBalance_WritesBalanceAndLedgerEntry() {
	ctx := context.Background()

	userID := kernel.NewUUID()
	testWallet := suite.createTestWallet(userID, 500000)
	suite.tracker.On("TrackAggregate", testWallet.ID(), testWallet).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testWallet))

	expectedBalance := testWallet.Balance()
	orderID := kernel.NewUUID()
	entry, err := testWallet.Debit(kernel.MoneyFromMinorUnits(300000), orderID, time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, testWallet, expectedBalance, entry))

	retrieved, err := suite.repository.GetByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(int64(200000), retrieved.Balance().MinorUnits())
	suite.assertTransactionCount(1)

	hasRef, err := suite.repository.HasTransactionWithReference(ctx, orderID.String())
	suite.Require().NoError(err)
	suite.True(hasRef)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *WalletRepositoryIntegrationTestSuite) TestUpdate_StaleBalance_WritesNothing() {
	ctx := context.Background()

	userID := kernel.NewUUID()
	testWallet := suite.createTestWallet(userID, 500000)
	suite.tracker.On("TrackAggregate", testWallet.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testWallet))

	// Two handlers loaded the same balance and race to spend it.
	first := suite.reloadWallet(ctx, userID)
	second := suite.reloadWallet(ctx, userID)

	firstExpected := first.Balance()
	firstEntry, err := first.Debit(kernel.MoneyFromMinorUnits(300000), kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first, firstExpected, firstEntry))

	secondExpected := second.Balance()
	secondEntry, err := second.Debit(kernel.MoneyFromMinorUnits(300000), kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, second, secondExpected, secondEntry)
	suite.Require().Error(err)

	var conflictErr *errs.ConcurrencyConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// Only the winner's debit landed.
	retrieved, err := suite.repository.GetByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(int64(200000), retrieved.Balance().MinorUnits())
	suite.assertTransactionCount(1)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *WalletRepositoryIntegrationTestSuite) TestHasTransactionWithReference_UnknownReference_ReturnsFalse() {
	ctx := context.Background()

	hasRef, err := suite.repository.HasTransactionWithReference(ctx, "trx_unseen_12345")
	suite.Require().NoError(err)
	suite.False(hasRef)
}

func (suite *WalletRepositoryIntegrationTestSuite) TestAppendTransaction_MakesReferenceVisible() {
	ctx := context.Background()

	// A card charge consumed at checkout leaves a ledger entry with no
	// balance change, which makes the reference unusable afterwards.
	userID := kernel.NewUUID()
	entry, err := wallet.NewTransaction(
		kernel.NewUUID(), userID, wallet.Debit, kernel.MoneyFromMinorUnits(300000),
		"card payment for order "+kernel.NewUUID().String(), "trx_card_charge_77", time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AppendTransaction(ctx, entry))

	hasRef, err := suite.repository.HasTransactionWithReference(ctx, "trx_card_charge_77")
	suite.Require().NoError(err)
	suite.True(hasRef)
	suite.assertTransactionCount(1)
}

func (suite *WalletRepositoryIntegrationTestSuite) TestSaveCard_ValidCard_Persists() {
	ctx := context.Background()

	card := wallet.SavedCard{
		ID:                kernel.NewUUID(),
		UserID:            kernel.NewUUID(),
		AuthorizationCode: "AUTH_8dfhjjdt",
		Last4:             "4081",
		CardType:          "visa",
		Bank:              "TEST BANK",
		ExpMonth:          "12",
		ExpYear:           "2030",
		CreatedAt:         time.Now().UTC(),
	}

	suite.Require().NoError(suite.repository.SaveCard(ctx, card))

	var count int64
	suite.Require().NoError(suite.db.Model(&walletrepo.SavedCardDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// createTestWallet creates a wallet with the given opening balance.
func (suite *WalletRepositoryIntegrationTestSuite) createTestWallet(
	userID kernel.UUID, balance int64,
) *wallet.Wallet {
	testWallet, err := wallet.RestoreWallet(
		kernel.NewUUID(), userID, kernel.MoneyFromMinorUnits(balance))
	suite.Require().NoError(err)
	return testWallet
}

func (suite *WalletRepositoryIntegrationTestSuite) reloadWallet(
	ctx context.Context, userID kernel.UUID,
) *wallet.Wallet {
	loaded, err := suite.repository.GetByUser(ctx, userID)
	suite.Require().NoError(err)
	return loaded
}

func (suite *WalletRepositoryIntegrationTestSuite) assertTransactionCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&walletrepo.TransactionDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestWalletRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(WalletRepositoryIntegrationTestSuite))
}
