package queries

import (
	"context"
)

const dateLayout = "2006-01-02"

type CatalogQueries interface {
	SearchProducts(ctx context.Context, token, q, barcode string) ([]ProductView, error)
	ActivePromotions(ctx context.Context, token string) ([]PromotionView, error)
}

type catalogQueriesImpl struct {
	catalog    CatalogGateway
	promotions PromotionGateway
}

func NewCatalogQueries(catalog CatalogGateway, promotions PromotionGateway) CatalogQueries {
	return &catalogQueriesImpl{catalog: catalog, promotions: promotions}
}

func (q *catalogQueriesImpl) SearchProducts(ctx context.Context, token, query, barcode string) ([]ProductView, error) {
	products, err := q.catalog.SearchProducts(ctx, token, query, barcode)
	if err != nil {
		return nil, err
	}
	return toProductViews(products), nil
}

func (q *catalogQueriesImpl) ActivePromotions(ctx context.Context, token string) ([]PromotionView, error) {
	promos, err := q.promotions.ActivePromotions(ctx, token)
	if err != nil {
		return nil, err
	}

	out := make([]PromotionView, len(promos))
	for i, p := range promos {
		out[i] = PromotionView{
			PromotionID:   p.ID(),
			Name:          p.Name(),
			DiscountType:  string(p.DiscountType()),
			DiscountValue: p.DiscountValue(),
			StartDate:     p.StartDate().Format(dateLayout),
			EndDate:       p.EndDate().Format(dateLayout),
			IsActive:      p.IsActive(),
		}
	}
	return out, nil
}
