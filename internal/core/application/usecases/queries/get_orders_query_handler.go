package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves one page of a customer's orders from the
// database, newest first. Line items are fetched in a second query and
// attached to their orders, avoiding a row explosion on the join.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for paginated order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query. A page beyond the last returns an empty
// page with the correct total rather than an error.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT count(*) FROM orders WHERE user_id = ?
	`, query.UserID().Bytes()).Scan(&total).Error
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PerPage()
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
		WHERE user_id = ?
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, query.UserID().Bytes(), query.PerPage(), offset).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0, query.PerPage())
	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return GetOrdersQueryResponse{}, scanErr
		}
		orders = append(orders, orderResp)
	}
	if err = rows.Err(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	if err = h.attachItems(ctx, orders); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return GetOrdersQueryResponse{Orders: orders, Total: total}, nil
}

// attachItems loads the line items for every order on the page in one query
// and distributes them to their owners.
func (h GetOrdersQueryHandler) attachItems(ctx context.Context, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	itemsByOrder := make(map[uuid.UUID][]ItemResponse, len(orders))
	for rows.Next() {
		item, orderID, scanErr := scanItemRow(rows)
		if scanErr != nil {
			return scanErr
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		items := itemsByOrder[orders[i].ID.Bytes()]
		if items == nil {
			items = make([]ItemResponse, 0)
		}
		orders[i].Items = items
	}

	return nil
}
