package order_test

import (
	"testing"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipStatusValidate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		for _, s := range []order.ShipStatus{order.Pending, order.Shipped, order.Delivered, order.Received} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.ShipStatusUnknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		require.Error(t, order.ShipStatus(99).Validate())
	})
}

func TestShipStatusString(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Shipped", order.Shipped.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Received", order.Received.String())
	assert.Equal(t, "Unknown", order.ShipStatus(99).String())
}

func TestShipStatusReceive(t *testing.T) {
	t.Run("should transition from delivered", func(t *testing.T) {
		newStatus, err := order.Delivered.Receive()

		require.NoError(t, err)
		assert.Equal(t, order.Received, newStatus)
	})

	t.Run("should reject every other status", func(t *testing.T) {
		for _, s := range []order.ShipStatus{order.Pending, order.Shipped, order.Received} {
			_, err := s.Receive()

			require.Error(t, err, s.String())
			require.ErrorIs(t, err, errs.ErrInvalidState)
			assert.Contains(t, err.Error(), "order not yet delivered")
		}
	})
}

func TestShipStatusShip(t *testing.T) {
	t.Run("should transition from pending", func(t *testing.T) {
		newStatus, err := order.Pending.Ship()

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, newStatus)
	})

	t.Run("should reject every other status", func(t *testing.T) {
		for _, s := range []order.ShipStatus{order.Shipped, order.Delivered, order.Received} {
			_, err := s.Ship()

			require.Error(t, err, s.String())
			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestShipStatusDeliver(t *testing.T) {
	t.Run("should transition from shipped", func(t *testing.T) {
		newStatus, err := order.Shipped.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should reject skipping straight from pending", func(t *testing.T) {
		_, err := order.Pending.Deliver()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject terminal statuses", func(t *testing.T) {
		for _, s := range []order.ShipStatus{order.Delivered, order.Received} {
			_, err := s.Deliver()

			require.Error(t, err, s.String())
		}
	})
}

func TestShipStatusStrictlyForward(t *testing.T) {
	t.Run("full lifecycle walks forward only", func(t *testing.T) {
		s := order.Pending

		s, err := s.Ship()
		require.NoError(t, err)
		s, err = s.Deliver()
		require.NoError(t, err)
		s, err = s.Receive()
		require.NoError(t, err)
		assert.Equal(t, order.Received, s)

		// Received is terminal.
		_, err = s.Ship()
		require.Error(t, err)
		_, err = s.Deliver()
		require.Error(t, err)
		_, err = s.Receive()
		require.Error(t, err)
	})
}
