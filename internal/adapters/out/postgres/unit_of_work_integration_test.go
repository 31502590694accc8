package postgres_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormUnitOfWorkTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *GormUnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
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

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GormUnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GormUnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GormUnitOfWorkTestSuite) newPaidOrder() *order.Order {
	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Grinder", 9900, 1)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []*order.Item{item})
	suite.Require().NoError(err)
	suite.Require().NoError(o.MarkPaid(time.Now()))
	return o
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	o := suite.newPaidOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(o))
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	o := suite.newPaidOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GormUnitOfWorkTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *GormUnitOfWorkTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *GormUnitOfWorkTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *GormUnitOfWorkTestSuite) TestRepositoryOutsideTransaction_WritesImmediately() {
	ctx := context.Background()
	o := suite.newPaidOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(o))
}

func (suite *GormUnitOfWorkTestSuite) TestReviewFlow_CommitsAtomically() {
	ctx := context.Background()
	o := suite.newPaidOrder()
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(ctx, o))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	repo := uow.OrderRepository()
	aggregate, err := repo.GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)

	entries := []order.ItemReview{
		{ItemID: aggregate.Items()[0].ID(), Rating: 5, Review: "great"},
	}
	suite.Require().NoError(aggregate.SubmitReview(entries, time.Now()))
	suite.Require().NoError(repo.Update(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(restored.Reviewed())
	suite.True(restored.Items()[0].IsReviewed())
}

func TestGormUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(GormUnitOfWorkTestSuite))
}
