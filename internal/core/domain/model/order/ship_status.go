package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// ShipStatus represents the physical delivery stage of an order.
// It implements a strictly forward state machine:
//
//	Pending ──> Shipped ──> Delivered ──> Received
//
// Pending, Shipped, and Delivered transitions are driven by the fulfillment
// collaborator. Received is triggered by the customer confirming receipt and
// is a final state.
type ShipStatus int

const (
	// ShipStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized ShipStatus values.
	ShipStatusUnknown ShipStatus = iota

	// Pending is the initial status: the order exists but has not been
	// handed to a carrier yet.
	Pending

	// Shipped indicates the order has been handed to a carrier.
	Shipped

	// Delivered indicates the carrier has delivered the order.
	// Only delivered orders can be confirmed as received.
	Delivered

	// Received indicates the customer confirmed receipt.
	// This is a final state with no further transitions allowed.
	Received
)

func getShipStatusStrings() map[ShipStatus]string {
	return map[ShipStatus]string{
		ShipStatusUnknown: "Unknown",
		Pending:           "Pending",
		Shipped:           "Shipped",
		Delivered:         "Delivered",
		Received:          "Received",
	}
}

func getValidShipStatusStrings() map[ShipStatus]string {
	//nolint:exhaustive // ShipStatusUnknown is intentionally excluded as it's invalid
	return map[ShipStatus]string{
		Pending:   "Pending",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Received:  "Received",
	}
}

// Validate checks if the ShipStatus value is valid.
// Valid statuses are Pending, Shipped, Delivered, and Received.
func (s ShipStatus) Validate() error {
	if _, ok := getValidShipStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("ship status is invalid",
			fmt.Errorf("%d is not a valid ship status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on invalid values.
func (s ShipStatus) String() string {
	if str, ok := getShipStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateReceive checks whether receipt confirmation is allowed without
// performing the transition. Only Delivered orders can be received.
func (s ShipStatus) ValidateReceive() error {
	if s != Delivered {
		return errs.NewInvalidStateErrorWithCause(
			"order not yet delivered",
			fmt.Errorf("%s is not a valid status to confirm receipt", s.String()),
		)
	}
	return nil
}

// Receive transitions the status to Received.
//
// Valid transitions:
//   - Delivered -> Received
//
// All other statuses fail with an InvalidStateError. Received is a final
// state, so confirming receipt twice is rejected.
func (s ShipStatus) Receive() (ShipStatus, error) {
	if err := s.ValidateReceive(); err != nil {
		return 0, err
	}

	return Received, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Pending -> Shipped
//
// Triggered by the fulfillment collaborator when the order is handed to
// a carrier.
func (s ShipStatus) Ship() (ShipStatus, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order already shipped",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}

	return Shipped, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Triggered by the fulfillment collaborator on carrier delivery confirmation.
func (s ShipStatus) Deliver() (ShipStatus, error) {
	if s != Shipped {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order not yet shipped",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
