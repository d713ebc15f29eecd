package storeapi

import (
	"encoding/json"
	"fmt"
	"time"

	"pos-gateway/internal/domain/catalog"
	"pos-gateway/internal/domain/member"
	"pos-gateway/internal/domain/promotion"
	"pos-gateway/internal/pkg/money"
)

const wireDateLayout = "2006-01-02"

type productWire struct {
	ProductID     int64       `json:"product_id"`
	Barcode       string      `json:"barcode"`
	Name          string      `json:"name"`
	Brand         *string     `json:"brand"`
	Category      *string     `json:"category"`
	SellingPrice  money.Money `json:"selling_price"`
	StockQuantity int         `json:"stock_quantity"`
	PromotionID   *int64      `json:"promotion_id"`
}

func toProducts(rows []productWire) []catalog.Product {
	out := make([]catalog.Product, len(rows))
	for i, row := range rows {
		out[i] = catalog.Product{
			ProductID:     row.ProductID,
			Barcode:       row.Barcode,
			Name:          row.Name,
			Brand:         row.Brand,
			Category:      row.Category,
			SellingPrice:  row.SellingPrice,
			StockQuantity: row.StockQuantity,
			PromotionID:   row.PromotionID,
		}
	}
	return out
}

type promotionWire struct {
	PromotionID   int64       `json:"promotion_id"`
	PromotionName string      `json:"promotion_name"`
	DiscountType  string      `json:"discount_type"`
	DiscountValue money.Money `json:"discount_value"`
	StartDate     string      `json:"start_date"`
	EndDate       string      `json:"end_date"`
	IsActive      bool        `json:"is_active"`
}

func (w promotionWire) toDomain() (*promotion.Promotion, error) {
	start, err := time.Parse(wireDateLayout, w.StartDate)
	if err != nil {
		return nil, fmt.Errorf("bad start_date %q: %w", w.StartDate, err)
	}
	end, err := time.Parse(wireDateLayout, w.EndDate)
	if err != nil {
		return nil, fmt.Errorf("bad end_date %q: %w", w.EndDate, err)
	}

	return promotion.NewPromotion(
		w.PromotionID,
		w.PromotionName,
		promotion.DiscountType(w.DiscountType),
		float64(w.DiscountValue.Cents())/100,
		start,
		end,
		w.IsActive,
	)
}

type memberWire struct {
	MemberID     int64       `json:"member_id"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	DiscountRate money.Money `json:"discount_rate"`

	// Member summaries carry the tier rate re-derived from rolling-year
	// spend; it wins over the stored column when present.
	CurrentDiscountRate *money.Money `json:"current_discount_rate"`
}

func (w memberWire) toSnapshot() member.Snapshot {
	rate := w.DiscountRate
	if w.CurrentDiscountRate != nil {
		rate = *w.CurrentDiscountRate
	}
	return member.Snapshot{
		MemberID:     w.MemberID,
		Name:         w.Name,
		Phone:        member.Phone(w.Phone),
		DiscountRate: float64(rate.Cents()) / 100,
	}
}

func toMemberSnapshots(rows []memberWire) []member.Snapshot {
	out := make([]member.Snapshot, len(rows))
	for i, row := range rows {
		out[i] = row.toSnapshot()
	}
	return out
}

// apiError is the FastAPI-style error envelope: detail is either a flat
// string or an array of field-level validation errors.
type apiError struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

type fieldError struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

// extractMessage pulls one human-readable message out of an error body,
// preferring field-qualified validation messages when present.
func extractMessage(body []byte) string {
	var envelope apiError
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}

	if len(envelope.Detail) > 0 {
		var fields []fieldError
		if err := json.Unmarshal(envelope.Detail, &fields); err == nil && len(fields) > 0 {
			f := fields[0]
			if len(f.Loc) > 0 {
				return fmt.Sprintf("%v: %s", f.Loc[len(f.Loc)-1], f.Msg)
			}
			return f.Msg
		}

		var flat string
		if err := json.Unmarshal(envelope.Detail, &flat); err == nil {
			return flat
		}
	}

	return envelope.Message
}
