package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items from the
// database. Read-only: maps rows directly to response structs without going
// through the domain aggregate.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when no order
// with the given ID belongs to the requesting customer.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			ship_status,
			refund_status,
			paid_at,
			delivered_at,
			reviewed,
			refund_reason
		FROM orders
		WHERE id = ? AND user_id = ?
	`, query.OrderID().Bytes(), query.UserID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	orderResp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	items, err := fetchItems(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	orderResp.Items = items

	return orderResp, nil
}

// rowScanner is the subset of *sql.Rows the row mappers need.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var resp OrderResponse
	var id uuid.UUID
	var shipStatus, refundStatus int

	err := row.Scan(
		&id,
		&shipStatus,
		&refundStatus,
		&resp.PaidAt,
		&resp.DeliveredAt,
		&resp.Reviewed,
		&resp.RefundReason,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp.ID = orderID
	resp.ShipStatus = order.ShipStatus(shipStatus)
	resp.RefundStatus = order.RefundStatus(refundStatus)
	return resp, nil
}

func scanItemRow(row rowScanner) (ItemResponse, uuid.UUID, error) {
	var resp ItemResponse
	var id, orderID, productID, skuID uuid.UUID

	err := row.Scan(
		&id,
		&orderID,
		&productID,
		&skuID,
		&resp.ProductName,
		&resp.UnitPrice,
		&resp.Quantity,
		&resp.Rating,
		&resp.Review,
		&resp.ReviewedAt,
	)
	if err != nil {
		return ItemResponse{}, uuid.UUID{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ItemResponse{}, uuid.UUID{}, err
	}
	itemProductID, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return ItemResponse{}, uuid.UUID{}, err
	}
	itemSkuID, err := kernel.UUIDFromBytes(skuID[:])
	if err != nil {
		return ItemResponse{}, uuid.UUID{}, err
	}

	resp.ID = itemID
	resp.ProductID = itemProductID
	resp.SkuID = itemSkuID
	return resp, orderID, nil
}

func fetchItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]ItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			product_id,
			sku_id,
			product_name,
			unit_price,
			quantity,
			rating,
			review,
			reviewed_at
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemResponse, 0)
	for rows.Next() {
		item, _, itemErr := scanItemRow(rows)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
