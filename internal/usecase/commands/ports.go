package commands

import (
	"context"

	"pos-gateway/internal/domain/member"
	"pos-gateway/internal/pkg/money"
)

// TransactionItem is the minimal cart representation the store backend
// accepts. No prices and no discounts, the server recomputes authoritatively.
type TransactionItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type TransactionRequest struct {
	Items         []TransactionItem `json:"items"`
	PaymentMethod string            `json:"payment_method"`
	MemberPhone   *string           `json:"member_phone,omitempty"`
}

// TransactionResult carries the server-computed totals. These supersede any
// local estimate unconditionally.
type TransactionResult struct {
	TransactionID      int64       `json:"transaction_id"`
	Subtotal           money.Money `json:"subtotal"`
	ProductDiscount    money.Money `json:"product_discount"`
	MembershipDiscount money.Money `json:"membership_discount"`
	TotalAmount        money.Money `json:"total_amount"`
}

// CheckoutGateway is the store backend's transaction endpoint.
type CheckoutGateway interface {
	CreateTransaction(ctx context.Context, token string, req TransactionRequest) (*TransactionResult, error)
}

// MemberDirectory covers member lookup and registration on the store backend.
type MemberDirectory interface {
	SearchMembers(ctx context.Context, token, q string) ([]member.Snapshot, error)
	CreateMember(ctx context.Context, token string, name member.Name, phone member.Phone) (*member.Snapshot, error)
}

var allowedPaymentMethods = map[string]struct{}{
	"Cash":    {},
	"Card":    {},
	"QR Code": {},
}

func IsAllowedPaymentMethod(method string) bool {
	_, ok := allowedPaymentMethods[method]
	return ok
}
