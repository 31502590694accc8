// Package http adapts the generated API surface to the application's command
// and query handlers. Handlers translate wire types to domain commands, invoke
// the use case, and map domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/generated/servers"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	markReceivedHandler commands.MarkReceivedCommandHandler
	submitReviewHandler commands.SubmitReviewCommandHandler
	applyRefundHandler  commands.ApplyRefundCommandHandler

	// Query handlers
	getOrdersHandler queries.GetOrdersQueryHandler
	getOrderHandler  queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	markReceivedHandler commands.MarkReceivedCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	applyRefundHandler commands.ApplyRefundCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		markReceivedHandler: markReceivedHandler,
		submitReviewHandler: submitReviewHandler,
		applyRefundHandler:  applyRefundHandler,
		getOrdersHandler:    getOrdersHandler,
		getOrderHandler:     getOrderHandler,
	}
}

// GetOrders handles GET /api/v1/orders - lists the customer's orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	userID, err := kernel.UUIDFromBytes(params.XUserId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id")
	}

	page := defaultPage
	if params.Page != nil {
		page = *params.Page
	}
	perPage := defaultPerPage
	if params.PerPage != nil {
		perPage = *params.PerPage
	}

	query, err := queries.NewGetOrdersQuery(userID, page, perPage)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	orders := make([]servers.Order, len(result.Orders))
	for i, o := range result.Orders {
		orders[i] = toAPIOrder(o)
	}

	return ctx.JSON(http.StatusOK, servers.OrdersPage{
		Orders: orders,
		Total:  result.Total,
	})
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.GetOrderParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}
	userID, err := kernel.UUIDFromBytes(params.XUserId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id")
	}

	query, err := queries.NewGetOrderQuery(orderID, userID)
	if err != nil {
		return domainError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAPIOrder(result))
}

// ConfirmOrderReceipt handles POST /api/v1/orders/{orderId}/received.
func (s *Server) ConfirmOrderReceipt(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewMarkReceivedCommand(orderID)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.markReceivedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitOrderReview handles POST /api/v1/orders/{orderId}/review.
func (s *Server) SubmitOrderReview(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var body servers.SubmitOrderReviewJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	entries := make([]order.ItemReview, 0, len(body.Reviews))
	for _, entry := range body.Reviews {
		itemID, idErr := kernel.UUIDFromBytes(entry.ItemId[:])
		if idErr != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Invalid item id")
		}
		entries = append(entries, order.ItemReview{
			ItemID: itemID,
			Rating: entry.Rating,
			Review: entry.Review,
		})
	}

	cmd, err := commands.NewSubmitReviewCommand(orderID, entries)
	if err != nil {
		return domainError(ctx, err)
	}

	if err := s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyOrderRefund handles POST /api/v1/orders/{orderId}/refund.
func (s *Server) ApplyOrderRefund(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var body servers.ApplyOrderRefundJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewApplyRefundCommand(orderID, body.Reason)
	if err != nil {
		return domainError(ctx, err)
	}

	aggregate, err := s.applyRefundHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, aggregateToAPIOrder(aggregate))
}

// domainError maps domain errors onto HTTP status codes: missing objects to
// 404, illegal state transitions to 409, validation failures to 400, and
// everything else to 500.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidState):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    int32(code), //nolint:gosec //HTTP status codes fit in int32
		Message: message,
	})
}

func toAPIOrder(o queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			Id:          item.ID.Bytes(),
			ProductId:   item.ProductID.Bytes(),
			SkuId:       item.SkuID.Bytes(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Rating:      item.Rating,
			Review:      item.Review,
			ReviewedAt:  item.ReviewedAt,
		}
	}

	return servers.Order{
		Id:           o.ID.Bytes(),
		ShipStatus:   toAPIShipStatus(o.ShipStatus),
		RefundStatus: toAPIRefundStatus(o.RefundStatus),
		PaidAt:       o.PaidAt,
		DeliveredAt:  o.DeliveredAt,
		Reviewed:     o.Reviewed,
		RefundReason: o.RefundReason,
		Items:        items,
	}
}

func aggregateToAPIOrder(o *order.Order) servers.Order {
	items := make([]servers.OrderItem, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = servers.OrderItem{
			Id:          item.ID().Bytes(),
			ProductId:   item.ProductID().Bytes(),
			SkuId:       item.SkuID().Bytes(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Rating:      item.Rating(),
			Review:      item.Review(),
			ReviewedAt:  item.ReviewedAt(),
		}
	}

	var refundReason *string
	if details := o.RefundDetails(); details != nil {
		reason := details.Reason()
		refundReason = &reason
	}

	return servers.Order{
		Id:           o.ID().Bytes(),
		ShipStatus:   toAPIShipStatus(o.ShipStatus()),
		RefundStatus: toAPIRefundStatus(o.RefundStatus()),
		PaidAt:       o.PaidAt(),
		DeliveredAt:  o.DeliveredAt(),
		Reviewed:     o.Reviewed(),
		RefundReason: refundReason,
		Items:        items,
	}
}

func toAPIShipStatus(s order.ShipStatus) servers.OrderShipStatus {
	switch s {
	case order.Pending:
		return servers.Pending
	case order.Shipped:
		return servers.Shipped
	case order.Delivered:
		return servers.Delivered
	case order.Received:
		return servers.Received
	default:
		return servers.OrderShipStatus("unknown")
	}
}

func toAPIRefundStatus(s order.RefundStatus) servers.OrderRefundStatus {
	switch s {
	case order.RefundPending:
		return servers.RefundPending
	case order.RefundApplied:
		return servers.RefundApplied
	case order.RefundProcessing:
		return servers.RefundProcessing
	case order.RefundSuccess:
		return servers.RefundSuccess
	case order.RefundFailed:
		return servers.RefundFailed
	default:
		return servers.OrderRefundStatus("unknown")
	}
}
