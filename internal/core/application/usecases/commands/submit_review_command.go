package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents a customer's review batch for an order:
// an ordered sequence of per-item ratings and review texts.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reviews []order.ItemReview

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command carrying a review batch.
// The batch must contain at least one entry, every entry must reference a
// valid item id and carry a non-empty review text; rating bounds are
// enforced by the aggregate.
func NewSubmitReviewCommand(orderID kernel.UUID, reviews []order.ItemReview) (SubmitReviewCommand, error) {
	cmd := SubmitReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReviews(reviews),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being reviewed.
func (c SubmitReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reviews returns the review batch in submission order.
func (c SubmitReviewCommand) Reviews() []order.ItemReview {
	return c.reviews
}

func (c *SubmitReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitReviewCommand) setReviews(reviews []order.ItemReview) error {
	if len(reviews) == 0 {
		return errs.NewValueIsRequiredError("reviews")
	}
	for _, entry := range reviews {
		if err := entry.ItemID.Validate(); err != nil {
			return err
		}
		if entry.Review == "" {
			return errs.NewValueIsRequiredError("review")
		}
	}

	c.reviews = reviews
	return nil
}
