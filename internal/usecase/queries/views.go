package queries

import (
	"context"

	"pos-gateway/internal/domain/catalog"
	"pos-gateway/internal/domain/promotion"
	"pos-gateway/internal/pkg/money"
)

// Read models (DTO for read side)
type ProductView struct {
	ProductID     int64       `json:"product_id"`
	Barcode       string      `json:"barcode"`
	Name          string      `json:"name"`
	Brand         *string     `json:"brand,omitempty"`
	Category      *string     `json:"category,omitempty"`
	SellingPrice  money.Money `json:"selling_price"`
	StockQuantity int         `json:"stock_quantity"`
	PromotionID   *int64      `json:"promotion_id,omitempty"`
}

type PromotionView struct {
	PromotionID   int64   `json:"promotion_id"`
	Name          string  `json:"promotion_name"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	IsActive      bool    `json:"is_active"`
}

type MemberView struct {
	MemberID     int64   `json:"member_id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	DiscountRate float64 `json:"discount_rate"`
}

type CartLineView struct {
	ProductID     int64       `json:"product_id"`
	Name          string      `json:"name"`
	Barcode       string      `json:"barcode"`
	UnitPrice     money.Money `json:"unit_price"`
	Quantity      int         `json:"quantity"`
	StockQuantity int         `json:"stock_quantity"`
	LineTotal     money.Money `json:"line_total"`
}

type EstimateView struct {
	Subtotal           money.Money `json:"subtotal"`
	PromoDiscount      money.Money `json:"promo_discount"`
	SubtotalAfterPromo money.Money `json:"subtotal_after_promo"`
	MemberDiscount     money.Money `json:"member_discount"`
	EstimatedTotal     money.Money `json:"estimated_total"`
	MemberRate         float64     `json:"member_rate"`
}

type MemberStateView struct {
	Phone        string  `json:"phone"`
	DiscountRate float64 `json:"discount_rate"`
	Resolved     bool    `json:"resolved"`
}

type CartView struct {
	Lines    []CartLineView   `json:"lines"`
	Member   *MemberStateView `json:"member,omitempty"`
	Estimate EstimateView     `json:"estimate"`
}

type SearchView struct {
	Query   string        `json:"query"`
	Results []ProductView `json:"results"`
}

// Gateway ports to the remote store API. Implemented by infra/storeapi; the
// bearer token of the calling cashier is forwarded per call.
type CatalogGateway interface {
	SearchProducts(ctx context.Context, token, q, barcode string) ([]catalog.Product, error)
}

type PromotionGateway interface {
	ActivePromotions(ctx context.Context, token string) ([]*promotion.Promotion, error)
}

func toProductView(p catalog.Product) ProductView {
	return ProductView{
		ProductID:     p.ProductID,
		Barcode:       p.Barcode,
		Name:          p.Name,
		Brand:         p.Brand,
		Category:      p.Category,
		SellingPrice:  p.SellingPrice,
		StockQuantity: p.StockQuantity,
		PromotionID:   p.PromotionID,
	}
}

func toProductViews(products []catalog.Product) []ProductView {
	out := make([]ProductView, len(products))
	for i, p := range products {
		out[i] = toProductView(p)
	}
	return out
}
