//go:build unit || e2e

package builder

import (
	"time"

	"pos-gateway/internal/domain/promotion"
)

type PromotionBuilder struct {
	ID            int64
	Name          string
	DiscountType  promotion.DiscountType
	DiscountValue float64
	StartDate     time.Time
	EndDate       time.Time
	IsActive      bool
}

func NewPromotionBuilder() *PromotionBuilder {
	now := time.Now()
	return &PromotionBuilder{
		ID:            100,
		Name:          "Test Promotion",
		DiscountType:  promotion.TypePercentage,
		DiscountValue: 10,
		StartDate:     now.AddDate(0, 0, -7),
		EndDate:       now.AddDate(0, 0, 7),
		IsActive:      true,
	}
}

func (b *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(b)
	return b
}

func (b *PromotionBuilder) Build() (*promotion.Promotion, error) {
	return promotion.NewPromotion(b.ID, b.Name, b.DiscountType, b.DiscountValue, b.StartDate, b.EndDate, b.IsActive)
}

// MustBuild panics on invalid input; for tests that only need a valid promotion.
func (b *PromotionBuilder) MustBuild() *promotion.Promotion {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

// Fluent builder methods
func (b *PromotionBuilder) WithID(id int64) *PromotionBuilder {
	b.ID = id
	return b
}

func (b *PromotionBuilder) WithName(name string) *PromotionBuilder {
	b.Name = name
	return b
}

func (b *PromotionBuilder) WithPercentage(value float64) *PromotionBuilder {
	b.DiscountType = promotion.TypePercentage
	b.DiscountValue = value
	return b
}

func (b *PromotionBuilder) WithFixed(value float64) *PromotionBuilder {
	b.DiscountType = promotion.TypeFixed
	b.DiscountValue = value
	return b
}

func (b *PromotionBuilder) WithWindow(start, end time.Time) *PromotionBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *PromotionBuilder) AsInactive() *PromotionBuilder {
	b.IsActive = false
	return b
}

func (b *PromotionBuilder) AsExpired() *PromotionBuilder {
	now := time.Now()
	b.StartDate = now.AddDate(0, 0, -30)
	b.EndDate = now.AddDate(0, 0, -10)
	return b
}
