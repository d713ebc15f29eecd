package queries

import (
	"context"

	"github.com/google/uuid"

	"pos-gateway/internal/domain/cart"
	"pos-gateway/internal/pkg/clock"
	"pos-gateway/internal/usecase/shared"
)

type RegisterQueries interface {
	// Cart returns the register's current cart plus a freshly recomputed
	// estimate. The estimate is advisory; the checkout response carries the
	// server's authoritative numbers.
	Cart(ctx context.Context, token string, cashierID uuid.UUID) (*CartView, error)

	// Search returns the latest settled search-as-you-type results.
	Search(ctx context.Context, cashierID uuid.UUID) (*SearchView, error)
}

type registerQueriesImpl struct {
	store      shared.RegisterStore
	promotions PromotionGateway
	clock      clock.Clock
}

func NewRegisterQueries(store shared.RegisterStore, promotions PromotionGateway, clk clock.Clock) RegisterQueries {
	return &registerQueriesImpl{store: store, promotions: promotions, clock: clk}
}

func (q *registerQueriesImpl) Cart(ctx context.Context, token string, cashierID uuid.UUID) (*CartView, error) {
	session := q.store.Session(cashierID)

	if err := q.ensurePromotions(ctx, token, session); err != nil {
		return nil, err
	}

	var view *CartView
	session.View(func(s *shared.RegisterState) {
		view = buildCartView(s, q.clock)
	})
	return view, nil
}

func (q *registerQueriesImpl) Search(_ context.Context, cashierID uuid.UUID) (*SearchView, error) {
	session := q.store.Session(cashierID)

	var view SearchView
	session.View(func(s *shared.RegisterState) {
		view.Query = s.SearchQuery
		view.Results = toProductViews(s.SearchResults)
	})
	return &view, nil
}

// ensurePromotions lazily loads the active promotion list on the first cart
// read. Failures degrade to a promotion-free estimate rather than blocking
// the register; the list is retried on the next read.
func (q *registerQueriesImpl) ensurePromotions(ctx context.Context, token string, session shared.RegisterSession) error {
	var loaded bool
	session.View(func(s *shared.RegisterState) {
		loaded = s.PromotionsLoaded
	})
	if loaded {
		return nil
	}

	promos, err := q.promotions.ActivePromotions(ctx, token)
	if err != nil {
		return nil //nolint:nilerr // estimate degrades gracefully, next read retries
	}

	return session.Update(func(s *shared.RegisterState) error {
		s.Promotions = promos
		s.PromotionsLoaded = true
		return nil
	})
}

func buildCartView(s *shared.RegisterState, clk clock.Clock) *CartView {
	lines := s.Cart.Lines()

	view := &CartView{
		Lines: make([]CartLineView, len(lines)),
	}
	for i, l := range lines {
		p := l.Product()
		view.Lines[i] = CartLineView{
			ProductID:     p.ProductID,
			Name:          p.Name,
			Barcode:       p.Barcode,
			UnitPrice:     p.SellingPrice,
			Quantity:      l.Quantity(),
			StockQuantity: p.StockQuantity,
			LineTotal:     l.Total(),
		}
	}

	if s.MemberPhone != "" {
		view.Member = &MemberStateView{
			Phone:        s.MemberPhone,
			DiscountRate: s.MemberRate,
			Resolved:     s.MemberResolved,
		}
	}

	est := cart.EstimateTotals(lines, s.Promotions, s.MemberRate, clk.Now())
	view.Estimate = EstimateView{
		Subtotal:           est.Subtotal,
		PromoDiscount:      est.PromoDiscount,
		SubtotalAfterPromo: est.SubtotalAfterPromo,
		MemberDiscount:     est.MemberDiscount,
		EstimatedTotal:     est.Total,
		MemberRate:         est.MemberRate,
	}

	return view
}
