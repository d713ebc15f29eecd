//go:build unit || e2e

package builder

import (
	"fmt"

	"pos-gateway/internal/domain/catalog"
	"pos-gateway/internal/pkg/money"
)

type ProductBuilder struct {
	ProductID     int64
	Barcode       string
	Name          string
	Brand         *string
	Category      *string
	SellingPrice  money.Money
	StockQuantity int
	PromotionID   *int64
}

func NewProductBuilder() *ProductBuilder {
	brand := "Test Brand"
	category := "Beverages"
	return &ProductBuilder{
		ProductID:     1,
		Barcode:       "8850001000011",
		Name:          "Test Product",
		Brand:         &brand,
		Category:      &category,
		SellingPrice:  money.New(2500), // 25.00
		StockQuantity: 10,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) Build() catalog.Product {
	return catalog.Product{
		ProductID:     b.ProductID,
		Barcode:       b.Barcode,
		Name:          b.Name,
		Brand:         b.Brand,
		Category:      b.Category,
		SellingPrice:  b.SellingPrice,
		StockQuantity: b.StockQuantity,
		PromotionID:   b.PromotionID,
	}
}

// Fluent builder methods
func (b *ProductBuilder) WithID(id int64) *ProductBuilder {
	b.ProductID = id
	b.Barcode = fmt.Sprintf("885000100%04d", id)
	return b
}

func (b *ProductBuilder) WithBarcode(barcode string) *ProductBuilder {
	b.Barcode = barcode
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPriceCents(cents int64) *ProductBuilder {
	b.SellingPrice = money.New(cents)
	return b
}

func (b *ProductBuilder) WithStock(quantity int) *ProductBuilder {
	b.StockQuantity = quantity
	return b
}

func (b *ProductBuilder) WithPromotionID(id int64) *ProductBuilder {
	b.PromotionID = &id
	return b
}
