package response

import (
	"github.com/jinzhu/copier"

	"pos-gateway/internal/pkg/money"
	"pos-gateway/internal/usecase/queries"
)

type ProductResponse struct {
	ProductID     int64       `json:"productId"`
	Barcode       string      `json:"barcode"`
	Name          string      `json:"name"`
	Brand         *string     `json:"brand,omitempty"`
	Category      *string     `json:"category,omitempty"`
	SellingPrice  money.Money `json:"sellingPrice"`
	StockQuantity int         `json:"stockQuantity"`
	PromotionID   *int64      `json:"promotionId,omitempty"`
}

type PromotionResponse struct {
	PromotionID   int64   `json:"promotionId"`
	Name          string  `json:"name"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	IsActive      bool    `json:"isActive"`
}

func FromProductViews(views []queries.ProductView) []ProductResponse {
	out := make([]ProductResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return []ProductResponse{}
	}
	return out
}

func FromPromotionViews(views []queries.PromotionView) []PromotionResponse {
	out := make([]PromotionResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return []PromotionResponse{}
	}
	return out
}
