package order

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// RefundDetails is the typed record attached to an order once a refund has
// been applied for. It replaces an open-ended key/value side-channel with an
// explicit optional sub-record.
type RefundDetails struct {
	reason string
}

// NewRefundDetails creates refund details carrying the customer's reason.
// The reason must be non-empty.
func NewRefundDetails(reason string) (RefundDetails, error) {
	if reason == "" {
		return RefundDetails{}, errs.NewValueIsRequiredError("reason")
	}
	return RefundDetails{reason: reason}, nil
}

// Reason returns the customer-supplied refund reason.
func (d RefundDetails) Reason() string {
	return d.reason
}

// ItemReview is one entry of a review batch: the targeted line item with the
// customer's rating and review text.
type ItemReview struct {
	ItemID kernel.UUID
	Rating int
	Review string
}

// Order is the aggregate root representing one purchase. It tracks payment,
// shipment, review, and refund state and owns its line items, whose count is
// fixed at order creation.
//
// Order follows these invariants:
//   - Must have valid order and user identifiers
//   - Must own at least one line item
//   - Status transitions follow the lifecycle rules in this package
//   - RefundDetails is present exactly when the refund status has moved
//     beyond RefundPending, which in turn requires the order to be paid
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID is the owning customer's identifier
	userID kernel.UUID

	// shipStatus is the physical delivery stage
	shipStatus ShipStatus

	// refundStatus is the refund claim stage
	refundStatus RefundStatus

	// paidAt is nil until the payment collaborator confirms payment
	paidAt *time.Time

	// deliveredAt is nil until the carrier reports delivery
	deliveredAt *time.Time

	// reviewed is the one-way marker that a review batch was accepted
	reviewed bool

	// refundDetails is set when a refund application is recorded
	refundDetails *RefundDetails

	// items are the order's line items, immutable in count after creation
	items []*Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in its initial state: shipment pending,
// no refund claim, unpaid, and unreviewed. At least one line item is
// required and every item must be valid.
func NewOrder(id kernel.UUID, userID kernel.UUID, items []*Item) (*Order, error) {
	o := &Order{
		shipStatus:    Pending,
		refundStatus:  RefundPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. It validates the
// persisted statuses and the cross-field invariants that cannot be expressed
// by the individual status machines: a refund claim requires payment and
// carries refund details, and no details may exist without a claim.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	shipStatus ShipStatus,
	refundStatus RefundStatus,
	paidAt *time.Time,
	deliveredAt *time.Time,
	reviewed bool,
	refundDetails *RefundDetails,
	items []*Item,
) (*Order, error) {
	o, err := NewOrder(id, userID, items)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(shipStatus.Validate(), refundStatus.Validate()); err != nil {
		return nil, err
	}

	if refundStatus != RefundPending {
		if paidAt == nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("refund status is invalid",
				errors.New("unpaid order cannot carry a refund claim"))
		}
		if refundDetails == nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("refund details are invalid",
				errors.New("refund claim requires refund details"))
		}
	} else if refundDetails != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("refund details are invalid",
			errors.New("refund details present without a refund claim"))
	}

	o.shipStatus = shipStatus
	o.refundStatus = refundStatus
	o.paidAt = paidAt
	o.deliveredAt = deliveredAt
	o.reviewed = reviewed
	o.refundDetails = refundDetails
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call this when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ShipStatus returns the current delivery stage.
func (o *Order) ShipStatus() ShipStatus {
	return o.shipStatus
}

// RefundStatus returns the current refund claim stage.
func (o *Order) RefundStatus() RefundStatus {
	return o.refundStatus
}

// PaidAt returns when the order was paid, or nil if unpaid.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// DeliveredAt returns when the carrier delivered the order, or nil if it
// has not been delivered yet.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// IsPaid reports whether the payment collaborator has confirmed payment.
func (o *Order) IsPaid() bool {
	return o.paidAt != nil
}

// Reviewed reports whether a review batch has been accepted for the order.
func (o *Order) Reviewed() bool {
	return o.reviewed
}

// RefundDetails returns the recorded refund application, or nil if no
// refund has been applied for.
func (o *Order) RefundDetails() *RefundDetails {
	return o.refundDetails
}

// Items returns the order's line items.
func (o *Order) Items() []*Item {
	return o.items
}

// Item resolves a line item by its identifier. Resolution failure returns
// an ObjectNotFoundError: referencing an item that does not belong to the
// order indicates a caller bug, never a skippable condition.
func (o *Order) Item(id kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order item", id.String())
}

// MarkPaid records the payment timestamp. The payment gateway itself is a
// collaborator; this method only applies its effect on order state.
// Paying twice is rejected.
func (o *Order) MarkPaid(at time.Time) error {
	if o.paidAt != nil {
		return errs.NewInvalidStateError("order already paid")
	}

	o.paidAt = &at
	return nil
}

// Ship marks the order as handed to a carrier. Fulfillment collaborator
// transition.
func (o *Order) Ship() error {
	newStatus, err := o.shipStatus.Ship()
	if err != nil {
		return err
	}

	o.shipStatus = newStatus
	return nil
}

// Deliver marks the order as delivered by the carrier at the given time.
// Fulfillment collaborator transition; the timestamp drives automatic
// receipt confirmation later on.
func (o *Order) Deliver(at time.Time) error {
	newStatus, err := o.shipStatus.Deliver()
	if err != nil {
		return err
	}

	o.shipStatus = newStatus
	o.deliveredAt = &at
	return nil
}

// CanMarkReceived checks whether receipt confirmation is legal without
// mutating the order. Legal only when the order has been delivered.
func (o *Order) CanMarkReceived() error {
	return o.shipStatus.ValidateReceive()
}

// MarkReceived confirms receipt of a delivered order, transitioning the
// ship status to its final Received state.
func (o *Order) MarkReceived() error {
	newStatus, err := o.shipStatus.Receive()
	if err != nil {
		return err
	}

	o.shipStatus = newStatus
	return nil
}

// CanReview checks whether a review submission is legal without mutating
// the order. Reviews require a paid order that has not been reviewed yet;
// the two rejection reasons are distinct.
func (o *Order) CanReview() error {
	if !o.IsPaid() {
		return errs.NewInvalidStateError("order unpaid")
	}
	if o.reviewed {
		return errs.NewInvalidStateError("already reviewed")
	}
	return nil
}

// SubmitReview applies a batch of item reviews and flips the reviewed flag.
// The batch must contain at least one entry and every entry must reference
// an item owned by this order; an unresolvable item id fails the whole batch
// before any item is touched. Reviewing a subset of the items is permitted.
//
// The caller is responsible for persisting the mutated aggregate atomically
// and discarding it if persistence fails.
func (o *Order) SubmitReview(entries []ItemReview, now time.Time) error {
	if err := o.CanReview(); err != nil {
		return err
	}
	if len(entries) == 0 {
		return errs.NewValueIsRequiredError("reviews")
	}

	// Resolve every entry before applying any review.
	resolved := make([]*Item, 0, len(entries))
	for _, entry := range entries {
		item, err := o.Item(entry.ItemID)
		if err != nil {
			return err
		}
		resolved = append(resolved, item)
	}

	for i, entry := range entries {
		if err := resolved[i].SetReview(entry.Rating, entry.Review, now); err != nil {
			return err
		}
	}

	o.reviewed = true
	return nil
}

// CanApplyRefund checks whether a refund application is legal without
// mutating the order. Refunds require a paid order with no prior claim;
// the two rejection reasons are distinct.
func (o *Order) CanApplyRefund() error {
	if !o.IsPaid() {
		return errs.NewInvalidStateError("order unpaid")
	}
	return o.refundStatus.ValidateApply()
}

// ApplyRefund records a refund application with the customer's reason,
// transitioning the refund status to RefundApplied. Applying twice is
// rejected and leaves the recorded details untouched.
func (o *Order) ApplyRefund(reason string) error {
	if err := o.CanApplyRefund(); err != nil {
		return err
	}

	details, err := NewRefundDetails(reason)
	if err != nil {
		return err
	}

	newStatus, err := o.refundStatus.Apply()
	if err != nil {
		return err
	}

	o.refundStatus = newStatus
	o.refundDetails = &details
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
