// Package order contains the Order aggregate and its lifecycle state machines.
//
// An Order is the aggregate root representing one purchase. It tracks four
// independent pieces of lifecycle state:
//
//   - ShipStatus: Pending -> Shipped -> Delivered -> Received, strictly
//     forward. Shipping and delivery are driven by the fulfillment
//     collaborator; this core triggers only the final Delivered -> Received
//     transition, which is terminal.
//   - RefundStatus: RefundPending -> RefundApplied -> RefundProcessing ->
//     {RefundSuccess, RefundFailed}. This core triggers only
//     RefundPending -> RefundApplied; downstream refund processing belongs
//     to a collaborator.
//   - paid_at: set once by the payment collaborator; presence means paid.
//   - reviewed: one-way false -> true, flipped by a successful review batch.
//
// All transitions are guarded. Illegal transitions fail with
// errs.InvalidStateError carrying a stable reason, and the guards
// (CanMarkReceived, CanReview, CanApplyRefund) are side-effect free so
// callers can evaluate legality without mutating the aggregate.
package order
