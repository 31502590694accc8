package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// RefundStatus represents the lifecycle stage of a refund claim.
//
//	RefundPending ──> RefundApplied ──> RefundProcessing ──┬──> RefundSuccess
//	                                                       └──> RefundFailed
//
// This core triggers only RefundPending -> RefundApplied when the customer
// applies for a refund. The remaining transitions belong to the downstream
// refund processor. Re-application is rejected, not silently repeated.
type RefundStatus int

const (
	// RefundStatusUnknown represents an invalid or undefined status.
	RefundStatusUnknown RefundStatus = iota

	// RefundPending is the default status: no refund has been requested.
	RefundPending

	// RefundApplied indicates the customer has applied for a refund.
	RefundApplied

	// RefundProcessing indicates the refund processor picked up the claim.
	RefundProcessing

	// RefundSuccess indicates the refund completed. Final state.
	RefundSuccess

	// RefundFailed indicates the refund could not be completed. Final state.
	RefundFailed
)

func getRefundStatusStrings() map[RefundStatus]string {
	return map[RefundStatus]string{
		RefundStatusUnknown: "Unknown",
		RefundPending:       "Pending",
		RefundApplied:       "Applied",
		RefundProcessing:    "Processing",
		RefundSuccess:       "Success",
		RefundFailed:        "Failed",
	}
}

func getValidRefundStatusStrings() map[RefundStatus]string {
	//nolint:exhaustive // RefundStatusUnknown is intentionally excluded as it's invalid
	return map[RefundStatus]string{
		RefundPending:    "Pending",
		RefundApplied:    "Applied",
		RefundProcessing: "Processing",
		RefundSuccess:    "Success",
		RefundFailed:     "Failed",
	}
}

// Validate checks if the RefundStatus value is valid.
func (s RefundStatus) Validate() error {
	if _, ok := getValidRefundStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("refund status is invalid",
			fmt.Errorf("%d is not a valid refund status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on invalid values.
func (s RefundStatus) String() string {
	if str, ok := getRefundStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateApply checks whether a refund application is allowed without
// performing the transition. A refund may only be applied once: any status
// beyond RefundPending rejects re-application.
func (s RefundStatus) ValidateApply() error {
	if s != RefundPending {
		return errs.NewInvalidStateErrorWithCause(
			"refund already requested",
			fmt.Errorf("%s is not a valid status to apply for a refund", s.String()),
		)
	}
	return nil
}

// Apply transitions the status to RefundApplied.
//
// Valid transitions:
//   - RefundPending -> RefundApplied
//
// From this core's viewpoint RefundApplied is terminal; the downstream
// processor owns the remaining transitions.
func (s RefundStatus) Apply() (RefundStatus, error) {
	if err := s.ValidateApply(); err != nil {
		return 0, err
	}

	return RefundApplied, nil
}

// Process transitions the status to RefundProcessing.
//
// Valid transitions:
//   - RefundApplied -> RefundProcessing
func (s RefundStatus) Process() (RefundStatus, error) {
	if s != RefundApplied {
		return 0, errs.NewInvalidStateErrorWithCause(
			"refund not applied",
			fmt.Errorf("%s is not a valid status to start processing", s.String()),
		)
	}

	return RefundProcessing, nil
}

// Succeed transitions the status to RefundSuccess.
//
// Valid transitions:
//   - RefundProcessing -> RefundSuccess
func (s RefundStatus) Succeed() (RefundStatus, error) {
	if s != RefundProcessing {
		return 0, errs.NewInvalidStateErrorWithCause(
			"refund not processing",
			fmt.Errorf("%s is not a valid status to succeed", s.String()),
		)
	}

	return RefundSuccess, nil
}

// Fail transitions the status to RefundFailed.
//
// Valid transitions:
//   - RefundProcessing -> RefundFailed
func (s RefundStatus) Fail() (RefundStatus, error) {
	if s != RefundProcessing {
		return 0, errs.NewInvalidStateErrorWithCause(
			"refund not processing",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}

	return RefundFailed, nil
}
