//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"pos-gateway/internal/domain/catalog"
	"pos-gateway/internal/domain/promotion"
	"pos-gateway/internal/infra/sessions"
	"pos-gateway/internal/pkg/clock"
	"pos-gateway/internal/usecase/queries"
	"pos-gateway/internal/usecase/shared"
	"pos-gateway/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePromotionGateway struct {
	calls  int
	promos []*promotion.Promotion
	err    error
}

func (g *fakePromotionGateway) ActivePromotions(_ context.Context, _ string) ([]*promotion.Promotion, error) {
	g.calls++
	return g.promos, g.err
}

type queryFixture struct {
	store      *sessions.Store
	promotions *fakePromotionGateway
	usecase    queries.RegisterQueries
	cashierID  uuid.UUID
}

func newQueryFixture(t *testing.T) *queryFixture {
	t.Helper()
	f := &queryFixture{
		store:      sessions.NewStore(),
		promotions: &fakePromotionGateway{},
		cashierID:  uuid.New(),
	}
	f.usecase = queries.NewRegisterQueries(f.store, f.promotions, clock.NewMockClock(time.Now()))
	return f
}

func TestCartQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("empty register", func(t *testing.T) {
		f := newQueryFixture(t)

		view, err := f.usecase.Cart(ctx, "token", f.cashierID)
		require.NoError(t, err)

		assert.Empty(t, view.Lines)
		assert.Nil(t, view.Member)
		assert.True(t, view.Estimate.Subtotal.IsZero())
	})

	t.Run("lines carry snapshot data and the estimate", func(t *testing.T) {
		f := newQueryFixture(t)
		f.promotions.promos = []*promotion.Promotion{
			builder.NewPromotionBuilder().WithID(100).WithPercentage(10).MustBuild(),
		}
		require.NoError(t, f.store.Session(f.cashierID).Update(func(s *shared.RegisterState) error {
			if err := s.Cart.Add(builder.NewProductBuilder().WithPriceCents(10000).WithPromotionID(100).Build()); err != nil {
				return err
			}
			s.MemberPhone = "0812345678"
			s.MemberRate = 5
			s.MemberResolved = true
			return nil
		}))

		view, err := f.usecase.Cart(ctx, "token", f.cashierID)
		require.NoError(t, err)

		require.Len(t, view.Lines, 1)
		assert.Equal(t, int64(1), view.Lines[0].ProductID)
		assert.Equal(t, int64(10000), view.Lines[0].UnitPrice.Cents())
		assert.Equal(t, int64(10000), view.Lines[0].LineTotal.Cents())

		require.NotNil(t, view.Member)
		assert.Equal(t, "0812345678", view.Member.Phone)
		assert.True(t, view.Member.Resolved)

		assert.Equal(t, int64(10000), view.Estimate.Subtotal.Cents())
		assert.Equal(t, int64(1000), view.Estimate.PromoDiscount.Cents())
		assert.Equal(t, int64(450), view.Estimate.MemberDiscount.Cents())
		assert.Equal(t, int64(8550), view.Estimate.EstimatedTotal.Cents())
	})

	t.Run("promotions load lazily on the first read only", func(t *testing.T) {
		f := newQueryFixture(t)

		_, err := f.usecase.Cart(ctx, "token", f.cashierID)
		require.NoError(t, err)
		_, err = f.usecase.Cart(ctx, "token", f.cashierID)
		require.NoError(t, err)

		assert.Equal(t, 1, f.promotions.calls)
	})

	t.Run("promotion load failure degrades and retries next read", func(t *testing.T) {
		f := newQueryFixture(t)
		f.promotions.err = assert.AnError

		view, err := f.usecase.Cart(ctx, "token", f.cashierID)
		require.NoError(t, err, "estimate degrades instead of failing the read")
		assert.True(t, view.Estimate.PromoDiscount.IsZero())

		f.promotions.err = nil
		_, err = f.usecase.Cart(ctx, "token", f.cashierID)
		require.NoError(t, err)
		assert.Equal(t, 2, f.promotions.calls)
	})
}

func TestSearchQueryView(t *testing.T) {
	ctx := context.Background()

	f := newQueryFixture(t)
	require.NoError(t, f.store.Session(f.cashierID).Update(func(s *shared.RegisterState) error {
		s.SearchQuery = "milk"
		s.SearchResults = []catalog.Product{builder.NewProductBuilder().WithName("Milk 1L").Build()}
		return nil
	}))

	view, err := f.usecase.Search(ctx, f.cashierID)
	require.NoError(t, err)

	assert.Equal(t, "milk", view.Query)
	require.Len(t, view.Results, 1)
	assert.Equal(t, "Milk 1L", view.Results[0].Name)
}
