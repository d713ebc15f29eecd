package promotion

import (
	"errors"
	"math"
	"time"

	"pos-gateway/internal/pkg/money"
)

var (
	ErrInvalidDiscountType  = errors.New("discount type must be PERCENTAGE or FIXED")
	ErrInvalidDiscountValue = errors.New("discount value must be positive")
	ErrPercentOverLimit     = errors.New("percentage discount cannot exceed 100")
	ErrInvalidDateWindow    = errors.New("end date must not precede start date")
)

type DiscountType string

const (
	TypePercentage DiscountType = "PERCENTAGE"
	TypeFixed      DiscountType = "FIXED"
)

func (t DiscountType) IsValid() bool {
	switch t {
	case TypePercentage, TypeFixed:
		return true
	default:
		return false
	}
}

// Promotion is a time-bounded discount attachable to products. Records are
// owned by the store backend; the gateway only evaluates them for estimates.
type Promotion struct {
	id            int64
	name          string
	discountType  DiscountType
	discountValue float64
	startDate     time.Time
	endDate       time.Time
	isActive      bool
}

func NewPromotion(
	id int64,
	name string,
	discountType DiscountType,
	discountValue float64,
	startDate, endDate time.Time,
	isActive bool,
) (*Promotion, error) {
	if !discountType.IsValid() {
		return nil, ErrInvalidDiscountType
	}
	if discountValue <= 0 {
		return nil, ErrInvalidDiscountValue
	}
	if discountType == TypePercentage && discountValue > 100 {
		return nil, ErrPercentOverLimit
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateWindow
	}

	return &Promotion{
		id:            id,
		name:          name,
		discountType:  discountType,
		discountValue: discountValue,
		startDate:     startDate,
		endDate:       endDate,
		isActive:      isActive,
	}, nil
}

// IsActiveOn mirrors the backend's active_only filter: the flag must be set
// and the date must fall inside the inclusive window.
func (p *Promotion) IsActiveOn(t time.Time) bool {
	day := t.Truncate(24 * time.Hour)
	return p.isActive &&
		!day.Before(p.startDate.Truncate(24*time.Hour)) &&
		!day.After(p.endDate.Truncate(24*time.Hour))
}

// LineDiscount computes this promotion's contribution for one cart line.
// PERCENTAGE discounts apply to the line total; FIXED discounts apply per
// unit (value × quantity), capped at the line total.
func (p *Promotion) LineDiscount(unitPrice money.Money, quantity int) money.Money {
	lineTotal := unitPrice.MulQty(quantity)

	var discount money.Money
	switch p.discountType {
	case TypePercentage:
		discount = lineTotal.Percent(p.discountValue)
	case TypeFixed:
		// Rounded, not truncated: 19.99 in binary float is 19.9899..., and
		// truncation would lose a cent per unit.
		discount = money.New(int64(math.Round(p.discountValue * 100))).MulQty(quantity)
	}

	if discount.Cents() > lineTotal.Cents() {
		return lineTotal
	}
	return discount
}

func (p *Promotion) ID() int64                  { return p.id }
func (p *Promotion) Name() string               { return p.name }
func (p *Promotion) DiscountType() DiscountType { return p.discountType }
func (p *Promotion) DiscountValue() float64     { return p.discountValue }
func (p *Promotion) StartDate() time.Time       { return p.startDate }
func (p *Promotion) EndDate() time.Time         { return p.endDate }
func (p *Promotion) IsActive() bool             { return p.isActive }
