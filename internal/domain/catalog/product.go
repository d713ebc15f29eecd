package catalog

import (
	"pos-gateway/internal/pkg/money"
)

// Product is a read-only snapshot of a catalog row owned by the store
// backend, captured at search/scan time. The gateway never mutates it; stock
// ceilings are enforced against the snapshot and re-checked at submit time.
type Product struct {
	ProductID     int64
	Barcode       string
	Name          string
	Brand         *string
	Category      *string
	SellingPrice  money.Money
	StockQuantity int
	PromotionID   *int64
}

func (p Product) HasPromotion() bool {
	return p.PromotionID != nil
}
