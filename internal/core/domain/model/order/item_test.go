package order_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItem(t *testing.T) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Espresso Machine", 24900, 1)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should create valid unreviewed item", func(t *testing.T) {
		id := kernel.NewUUID()
		productID := kernel.NewUUID()
		skuID := kernel.NewUUID()

		item, err := order.NewItem(id, productID, skuID, "Espresso Machine", 24900, 2)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.True(t, item.SkuID().IsEqual(skuID))
		assert.Equal(t, "Espresso Machine", item.ProductName())
		assert.Equal(t, int64(24900), item.UnitPrice())
		assert.Equal(t, 2, item.Quantity())
		assert.Nil(t, item.Rating())
		assert.Nil(t, item.Review())
		assert.Nil(t, item.ReviewedAt())
		assert.False(t, item.IsReviewed())
	})

	t.Run("should fail with invalid identifiers", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewItem(invalidID, kernel.NewUUID(), kernel.NewUUID(), "X", 100, 1)
		require.Error(t, err)

		_, err = order.NewItem(kernel.NewUUID(), invalidID, kernel.NewUUID(), "X", 100, 1)
		require.Error(t, err)
	})

	t.Run("should fail with empty product name", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", 100, 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "X", -1, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unit price is invalid")
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "X", 100, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should restore reviewed item", func(t *testing.T) {
		rating := 5
		review := "great"
		reviewedAt := time.Now()

		item, err := order.RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Espresso Machine", 24900, 1,
			&rating, &review, &reviewedAt,
		)

		require.NoError(t, err)
		assert.True(t, item.IsReviewed())
		assert.Equal(t, 5, *item.Rating())
		assert.Equal(t, "great", *item.Review())
	})

	t.Run("should reject partial review state", func(t *testing.T) {
		rating := 5

		_, err := order.RestoreItem(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Espresso Machine", 24900, 1,
			&rating, nil, nil,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be set together")
	})
}

func TestItemSetReview(t *testing.T) {
	t.Run("should record rating, review, and timestamp", func(t *testing.T) {
		item := makeItem(t)
		now := time.Now()

		err := item.SetReview(4, "good", now)

		require.NoError(t, err)
		assert.True(t, item.IsReviewed())
		assert.Equal(t, 4, *item.Rating())
		assert.Equal(t, "good", *item.Review())
		assert.Equal(t, now, *item.ReviewedAt())
	})

	t.Run("should reject rating below minimum", func(t *testing.T) {
		item := makeItem(t)

		err := item.SetReview(0, "good", time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.False(t, item.IsReviewed())
	})

	t.Run("should reject rating above maximum", func(t *testing.T) {
		item := makeItem(t)

		err := item.SetReview(6, "good", time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.False(t, item.IsReviewed())
	})

	t.Run("should reject empty review text without mutating", func(t *testing.T) {
		item := makeItem(t)

		err := item.SetReview(3, "", time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, item.Rating())
		assert.Nil(t, item.ReviewedAt())
	})
}

func TestItemValidate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var item order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})

	t.Run("nil item fails validation", func(t *testing.T) {
		var item *order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}
