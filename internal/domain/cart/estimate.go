package cart

import (
	"time"

	"pos-gateway/internal/domain/promotion"
	"pos-gateway/internal/pkg/money"
)

// Estimate is the cashier-facing preview of a checkout. It is advisory only:
// the store backend recomputes all of these numbers authoritatively and its
// transaction supersedes the estimate on success.
type Estimate struct {
	Subtotal           money.Money
	PromoDiscount      money.Money
	SubtotalAfterPromo money.Money
	MemberDiscount     money.Money
	Total              money.Money
	MemberRate         float64
}

// EstimateTotals recomputes the preview from scratch. Ordering is fixed:
// promotion discounts come off the subtotal first, then the membership rate
// applies to the discounted remainder. Reversing the order would change the
// result whenever both discounts are in play, and estimate/server parity
// depends on this exact sequence.
func EstimateTotals(lines []Line, promotions []*promotion.Promotion, memberRate float64, on time.Time) Estimate {
	byID := make(map[int64]*promotion.Promotion, len(promotions))
	for _, p := range promotions {
		if p.IsActiveOn(on) {
			byID[p.ID()] = p
		}
	}

	var subtotal, promoDiscount money.Money
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())

		prod := l.Product()
		if prod.PromotionID == nil {
			continue
		}
		promo, ok := byID[*prod.PromotionID]
		if !ok {
			continue
		}
		promoDiscount = promoDiscount.Add(promo.LineDiscount(prod.SellingPrice, l.Quantity()))
	}

	afterPromo := subtotal.Sub(promoDiscount)

	var memberDiscount money.Money
	if memberRate > 0 {
		memberDiscount = afterPromo.Percent(memberRate)
	}

	return Estimate{
		Subtotal:           subtotal,
		PromoDiscount:      promoDiscount,
		SubtotalAfterPromo: afterPromo,
		MemberDiscount:     memberDiscount,
		Total:              afterPromo.Sub(memberDiscount),
		MemberRate:         memberRate,
	}
}
