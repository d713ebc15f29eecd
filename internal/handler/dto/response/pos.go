package response

import (
	"github.com/jinzhu/copier"

	"pos-gateway/internal/pkg/money"
	"pos-gateway/internal/usecase/commands"
	"pos-gateway/internal/usecase/queries"
)

type CartLineResponse struct {
	ProductID     int64       `json:"productId"`
	Name          string      `json:"name"`
	Barcode       string      `json:"barcode"`
	UnitPrice     money.Money `json:"unitPrice"`
	Quantity      int         `json:"quantity"`
	StockQuantity int         `json:"stockQuantity"`
	LineTotal     money.Money `json:"lineTotal"`
}

type EstimateResponse struct {
	Subtotal           money.Money `json:"subtotal"`
	PromoDiscount      money.Money `json:"promoDiscount"`
	SubtotalAfterPromo money.Money `json:"subtotalAfterPromo"`
	MemberDiscount     money.Money `json:"memberDiscount"`
	EstimatedTotal     money.Money `json:"estimatedTotal"`
	MemberRate         float64     `json:"memberRate"`
}

type MemberStateResponse struct {
	Phone        string  `json:"phone"`
	DiscountRate float64 `json:"discountRate"`
	Resolved     bool    `json:"resolved"`
}

type CartResponse struct {
	Lines    []CartLineResponse   `json:"lines"`
	Member   *MemberStateResponse `json:"member,omitempty"`
	Estimate EstimateResponse     `json:"estimate"`
}

type SearchResponse struct {
	Query   string            `json:"query"`
	Results []ProductResponse `json:"results"`
}

// CheckoutResponse carries the totals as the store backend computed them,
// not the local estimate.
type CheckoutResponse struct {
	TransactionID      int64       `json:"transactionId"`
	Subtotal           money.Money `json:"subtotal"`
	ProductDiscount    money.Money `json:"productDiscount"`
	MembershipDiscount money.Money `json:"membershipDiscount"`
	TotalAmount        money.Money `json:"totalAmount"`
}

func FromCartView(view *queries.CartView) *CartResponse {
	resp := &CartResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return &CartResponse{Lines: []CartLineResponse{}}
	}
	if resp.Lines == nil {
		resp.Lines = []CartLineResponse{}
	}
	return resp
}

func FromSearchView(view *queries.SearchView) *SearchResponse {
	resp := &SearchResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return &SearchResponse{Results: []ProductResponse{}}
	}
	if resp.Results == nil {
		resp.Results = []ProductResponse{}
	}
	return resp
}

func FromTransactionResult(result *commands.TransactionResult) *CheckoutResponse {
	return &CheckoutResponse{
		TransactionID:      result.TransactionID,
		Subtotal:           result.Subtotal,
		ProductDiscount:    result.ProductDiscount,
		MembershipDiscount: result.MembershipDiscount,
		TotalAmount:        result.TotalAmount,
	}
}
