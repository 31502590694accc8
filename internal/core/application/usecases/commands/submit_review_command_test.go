package commands_test

import (
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewSubmitReviewCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		reviews := []order.ItemReview{
			{ItemID: kernel.NewUUID(), Rating: 5, Review: "great"},
			{ItemID: kernel.NewUUID(), Rating: 4, Review: "good"},
		}

		cmd, err := commands.NewSubmitReviewCommand(orderID, reviews)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.True(t, cmd.OrderID().IsEqual(orderID))
		require.Len(t, cmd.Reviews(), 2)
	})

	t.Run("rejects empty batch", func(t *testing.T) {
		_, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects entry with invalid item id", func(t *testing.T) {
		reviews := []order.ItemReview{{Rating: 5, Review: "great"}}

		_, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), reviews)

		require.Error(t, err)
	})

	t.Run("rejects entry with empty review text", func(t *testing.T) {
		reviews := []order.ItemReview{{ItemID: kernel.NewUUID(), Rating: 5}}

		_, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), reviews)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		cmd := commands.SubmitReviewCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrSubmitReviewCommandIsNotConstructed)
	})
}
