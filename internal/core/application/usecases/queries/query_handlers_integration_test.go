package queries_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (t *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container     *postgres.PostgresContainer
	db            *gorm.DB
	listHandler   queries.GetOrdersQueryHandler
	detailHandler queries.GetOrderQueryHandler
	orderRepo     *orderrepo.GormOrderRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.listHandler = queries.NewGetOrdersQueryHandler(db)
	suite.detailHandler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) newOrder(userID kernel.UUID, itemCount int) *order.Order {
	items := make([]*order.Item, 0, itemCount)
	for range itemCount {
		item, err := order.NewItem(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Grinder", 9900, 1)
		suite.Require().NoError(err)
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), userID, items)
	suite.Require().NoError(err)
	return o
}

func (suite *QueryHandlersTestSuite) addOrder(userID kernel.UUID, itemCount int) *order.Order {
	o := suite.newOrder(userID, itemCount)
	err := suite.orderRepo.Add(context.Background(), o)
	suite.Require().NoError(err)
	return o
}

func (suite *QueryHandlersTestSuite) TestGetOrders_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewGetOrdersQuery(kernel.NewUUID(), 1, 20)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result.Orders)
	suite.Empty(result.Orders)
	suite.Zero(result.Total)
}

func (suite *QueryHandlersTestSuite) TestGetOrders_ReturnsOnlyOwnOrders() {
	userID := kernel.NewUUID()
	otherUserID := kernel.NewUUID()

	own1 := suite.addOrder(userID, 2)
	own2 := suite.addOrder(userID, 1)
	suite.addOrder(otherUserID, 1)

	query, err := queries.NewGetOrdersQuery(userID, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Orders, 2)
	suite.Equal(int64(2), result.Total)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result.Orders {
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[own1.ID()])
	suite.True(resultIDs[own2.ID()])
}

func (suite *QueryHandlersTestSuite) TestGetOrders_PaginatesWithTotal() {
	userID := kernel.NewUUID()
	for range 5 {
		suite.addOrder(userID, 1)
	}

	query, err := queries.NewGetOrdersQuery(userID, 2, 2)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result.Orders, 2)
	suite.Equal(int64(5), result.Total)

	// A page beyond the data is empty, not an error.
	query, err = queries.NewGetOrdersQuery(userID, 4, 2)
	suite.Require().NoError(err)

	result, err = suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Orders)
	suite.Equal(int64(5), result.Total)
}

func (suite *QueryHandlersTestSuite) TestGetOrders_AttachesItems() {
	userID := kernel.NewUUID()
	o := suite.addOrder(userID, 3)

	query, err := queries.NewGetOrdersQuery(userID, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)
	suite.Len(result.Orders[0].Items, 3)
	suite.Equal(o.ID(), result.Orders[0].ID)
	for _, item := range result.Orders[0].Items {
		suite.Equal("Grinder", item.ProductName)
		suite.Equal(int64(9900), item.UnitPrice)
		suite.Nil(item.Rating)
	}
}

func (suite *QueryHandlersTestSuite) TestGetOrder_ReturnsFullState() {
	userID := kernel.NewUUID()
	o := suite.newOrder(userID, 2)
	suite.Require().NoError(o.MarkPaid(time.Now()))
	suite.Require().NoError(o.Ship())
	suite.Require().NoError(o.Deliver(time.Now()))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))

	entries := []order.ItemReview{
		{ItemID: o.Items()[0].ID(), Rating: 5, Review: "great"},
	}
	suite.Require().NoError(o.SubmitReview(entries, time.Now()))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), o))

	query, err := queries.NewGetOrderQuery(o.ID(), userID)
	suite.Require().NoError(err)

	result, err := suite.detailHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), result.ID)
	suite.Equal(order.Delivered, result.ShipStatus)
	suite.Equal(order.RefundPending, result.RefundStatus)
	suite.NotNil(result.PaidAt)
	suite.NotNil(result.DeliveredAt)
	suite.True(result.Reviewed)
	suite.Nil(result.RefundReason)
	suite.Require().Len(result.Items, 2)

	reviewed := 0
	for _, item := range result.Items {
		if item.Rating != nil {
			reviewed++
			suite.Equal(5, *item.Rating)
			suite.Require().NotNil(item.Review)
			suite.Equal("great", *item.Review)
			suite.NotNil(item.ReviewedAt)
		}
	}
	suite.Equal(1, reviewed)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_OtherUsersOrderLooksMissing() {
	o := suite.addOrder(kernel.NewUUID(), 1)

	query, err := queries.NewGetOrderQuery(o.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.detailHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_UnknownID_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.detailHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetOrders_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	_, err := suite.listHandler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrdersQuery constructor")
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
