package order

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Rating bounds accepted for an item review.
const (
	MinRating = 1
	MaxRating = 5
)

// Item is one line item within an order. It belongs to exactly one Order
// and carries a read-only product snapshot for display plus its own review
// fields, which stay unset until the order is reviewed.
type Item struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// productID references the purchased product
	productID kernel.UUID

	// skuID references the concrete product variant
	skuID kernel.UUID

	// productName is a display snapshot taken at order creation
	productName string

	// unitPrice is the price per unit in minor currency units
	unitPrice int64

	// quantity is the number of units purchased (must be positive)
	quantity int

	// rating, review, and reviewedAt are nil until the item is reviewed
	rating     *int
	review     *string
	reviewedAt *time.Time

	// isConstructed ensures the item was created via a factory method
	isConstructed bool
}

// NewItem creates a new unreviewed Item with validation.
// Product name must be non-empty, unit price non-negative, and quantity
// positive.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	skuID kernel.UUID,
	productName string,
	unitPrice int64,
	quantity int,
) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProduct(productID, skuID, productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence, including any review
// state. The review fields must be set together: a persisted review always
// carries rating, text, and timestamp.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	skuID kernel.UUID,
	productName string,
	unitPrice int64,
	quantity int,
	rating *int,
	review *string,
	reviewedAt *time.Time,
) (*Item, error) {
	item, err := NewItem(id, productID, skuID, productName, unitPrice, quantity)
	if err != nil {
		return nil, err
	}

	reviewed := rating != nil || review != nil || reviewedAt != nil
	if reviewed && (rating == nil || review == nil || reviewedAt == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("item review is invalid",
			errors.New("rating, review, and reviewed_at must be set together"))
	}

	item.rating = rating
	item.review = review
	item.reviewedAt = reviewedAt
	return item, nil
}

// Validate ensures the Item instance was properly constructed through a
// factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// ID returns the line item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the purchased product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// SkuID returns the purchased product variant's identifier.
func (i *Item) SkuID() kernel.UUID {
	return i.skuID
}

// ProductName returns the display snapshot of the product name.
func (i *Item) ProductName() string {
	return i.productName
}

// UnitPrice returns the price per unit in minor currency units.
func (i *Item) UnitPrice() int64 {
	return i.unitPrice
}

// Quantity returns the number of units purchased.
func (i *Item) Quantity() int {
	return i.quantity
}

// Rating returns the customer rating, or nil if the item is unreviewed.
func (i *Item) Rating() *int {
	return i.rating
}

// Review returns the customer review text, or nil if the item is unreviewed.
func (i *Item) Review() *string {
	return i.review
}

// ReviewedAt returns when the item was reviewed, or nil if unreviewed.
func (i *Item) ReviewedAt() *time.Time {
	return i.reviewedAt
}

// IsReviewed reports whether the item carries a review.
func (i *Item) IsReviewed() bool {
	return i.reviewedAt != nil
}

// SetReview records the customer's rating and review text for the item.
// Rating must lie within [MinRating, MaxRating] and the review text must be
// non-empty. Validation happens before any field is assigned, so a rejected
// review leaves the item untouched.
func (i *Item) SetReview(rating int, review string, now time.Time) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	if review == "" {
		return errs.NewValueIsRequiredError("review")
	}

	i.rating = &rating
	i.review = &review
	i.reviewedAt = &now
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProduct(productID, skuID kernel.UUID, productName string) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if err := skuID.Validate(); err != nil {
		return err
	}
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}

	i.productID = productID
	i.skuID = skuID
	i.productName = productName
	return nil
}

func (i *Item) setUnitPrice(unitPrice int64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%d is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
