package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// Pagination bounds for the order listing.
const (
	MinPageSize = 1
	MaxPageSize = 100
)

// GetOrdersQuery retrieves a customer's orders, newest first, one page at a
// time. Each order comes with its line items.
type GetOrdersQuery struct {
	userID  kernel.UUID
	page    int
	perPage int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paginated listing query for the given customer.
// Pages are numbered from 1; page size is capped at MaxPageSize.
func NewGetOrdersQuery(userID kernel.UUID, page int, perPage int) (GetOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if page < 1 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}
	if perPage < MinPageSize || perPage > MaxPageSize {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("perPage", perPage, MinPageSize, MaxPageSize)
	}

	return GetOrdersQuery{
		userID:  userID,
		page:    page,
		perPage: perPage,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the requesting customer.
func (q GetOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// PerPage returns the page size.
func (q GetOrdersQuery) PerPage() int {
	return q.perPage
}

// GetOrdersQueryResponse is one page of a customer's orders plus the total
// row count for building pagination controls.
type GetOrdersQueryResponse struct {
	Orders []OrderResponse
	Total  int64
}
