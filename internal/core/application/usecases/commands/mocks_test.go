package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllDeliveredBefore(
	ctx context.Context, cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event order.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// Test fixtures shared by the handler tests.

func newTestOrder(t *testing.T, itemCount int) *order.Order {
	t.Helper()
	items := make([]*order.Item, 0, itemCount)
	for range itemCount {
		item, err := order.NewItem(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Grinder", 9900, 1)
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items)
	require.NoError(t, err)
	return o
}

func newPaidOrder(t *testing.T, itemCount int) *order.Order {
	t.Helper()
	o := newTestOrder(t, itemCount)
	require.NoError(t, o.MarkPaid(time.Now()))
	return o
}

func newDeliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	o := newPaidOrder(t, 1)
	require.NoError(t, o.Ship())
	require.NoError(t, o.Deliver(time.Now()))
	return o
}
