// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by owner and shipment status.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	ShipStatus   int       `gorm:"index"`
	RefundStatus int
	PaidAt       *time.Time
	DeliveredAt  *time.Time
	Reviewed     bool
	RefundReason *string
	CreatedAt    time.Time `gorm:"index"`
	Items        []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item row, including its review columns.
// The review columns stay NULL until the customer reviews the order.
type ItemDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	SkuID       uuid.UUID `gorm:"type:uuid"`
	ProductName string
	UnitPrice   int64
	Quantity    int
	Rating      *int
	Review      *string
	ReviewedAt  *time.Time
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including line items and the optional refund record.
func fromDomain(aggregate *order.Order) OrderDTO {
	var refundReason *string
	if details := aggregate.RefundDetails(); details != nil {
		reason := details.Reason()
		refundReason = &reason
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     aggregate.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			SkuID:       item.SkuID().Bytes(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
			Rating:      item.Rating(),
			Review:      item.Review(),
			ReviewedAt:  item.ReviewedAt(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		UserID:       aggregate.UserID().Bytes(),
		ShipStatus:   int(aggregate.ShipStatus()),
		RefundStatus: int(aggregate.RefundStatus()),
		PaidAt:       aggregate.PaidAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		Reviewed:     aggregate.Reviewed(),
		RefundReason: refundReason,
		Items:        items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and refund state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var refundDetails *order.RefundDetails
	if dto.RefundReason != nil {
		details, detailsErr := order.NewRefundDetails(*dto.RefundReason)
		if detailsErr != nil {
			return nil, detailsErr
		}
		refundDetails = &details
	}

	return order.RestoreOrder(
		id,
		userID,
		order.ShipStatus(dto.ShipStatus),
		order.RefundStatus(dto.RefundStatus),
		dto.PaidAt,
		dto.DeliveredAt,
		dto.Reviewed,
		refundDetails,
		items,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	skuID, err := kernel.UUIDFromBytes(dto.SkuID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id,
		productID,
		skuID,
		dto.ProductName,
		dto.UnitPrice,
		dto.Quantity,
		dto.Rating,
		dto.Review,
		dto.ReviewedAt,
	)
}
