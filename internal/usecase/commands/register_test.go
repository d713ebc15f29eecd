//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"pos-gateway/internal/domain/catalog"
	"pos-gateway/internal/domain/member"
	"pos-gateway/internal/infra/sessions"
	"pos-gateway/internal/usecase/commands"
	"pos-gateway/internal/usecase/shared"
	"pos-gateway/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settleDelay = 10 * time.Millisecond

type fakeCatalogGateway struct {
	mu       sync.Mutex
	products []catalog.Product
	err      error
	queries  []string
}

func (g *fakeCatalogGateway) SearchProducts(_ context.Context, _ string, q, barcode string) ([]catalog.Product, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if q != "" {
		g.queries = append(g.queries, q)
	} else {
		g.queries = append(g.queries, "barcode:"+barcode)
	}
	return g.products, g.err
}

func (g *fakeCatalogGateway) recorded() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.queries...)
}

type fakeMemberDirectory struct {
	mu      sync.Mutex
	members []member.Snapshot
	err     error
	calls   int
}

func (d *fakeMemberDirectory) SearchMembers(_ context.Context, _, _ string) ([]member.Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	return d.members, d.err
}

func (d *fakeMemberDirectory) CreateMember(_ context.Context, _ string, name member.Name, phone member.Phone) (*member.Snapshot, error) {
	return &member.Snapshot{MemberID: 1, Name: name.String(), Phone: phone}, nil
}

func (d *fakeMemberDirectory) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

type registerFixture struct {
	store     *sessions.Store
	catalog   *fakeCatalogGateway
	members   *fakeMemberDirectory
	usecase   commands.RegisterCommands
	cashierID uuid.UUID
}

func newRegisterFixture(t *testing.T) *registerFixture {
	t.Helper()
	f := &registerFixture{
		store:     sessions.NewStore(),
		catalog:   &fakeCatalogGateway{},
		members:   &fakeMemberDirectory{},
		cashierID: uuid.New(),
	}
	f.usecase = commands.NewRegisterUseCase(f.store, f.catalog, f.members, settleDelay)
	return f
}

func (f *registerFixture) state() shared.RegisterState {
	var snap shared.RegisterState
	f.store.Session(f.cashierID).View(func(s *shared.RegisterState) {
		snap = *s
	})
	return snap
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("adds from the latest search results", func(t *testing.T) {
		f := newRegisterFixture(t)
		p := builder.NewProductBuilder().WithID(7).Build()
		require.NoError(t, f.store.Session(f.cashierID).Update(func(s *shared.RegisterState) error {
			s.SearchResults = []catalog.Product{p}
			return nil
		}))

		require.NoError(t, f.usecase.AddProduct(ctx, "token", f.cashierID, 7))

		state := f.state()
		require.Equal(t, 1, state.Cart.Len())
		assert.Equal(t, int64(7), state.Cart.Lines()[0].Product().ProductID)
	})

	t.Run("id outside the search results is not found", func(t *testing.T) {
		f := newRegisterFixture(t)
		err := f.usecase.AddProduct(ctx, "token", f.cashierID, 7)
		require.ErrorIs(t, err, commands.ErrProductNotFound)
	})
}

func TestAddByBarcode(t *testing.T) {
	ctx := context.Background()

	t.Run("adds the first catalog match", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.catalog.products = []catalog.Product{builder.NewProductBuilder().WithBarcode("8850001000011").Build()}

		require.NoError(t, f.usecase.AddByBarcode(ctx, "token", f.cashierID, "8850001000011"))

		state := f.state()
		assert.Equal(t, 1, state.Cart.Len())
		assert.Equal(t, []string{"barcode:8850001000011"}, f.catalog.recorded())
	})

	t.Run("no match", func(t *testing.T) {
		f := newRegisterFixture(t)
		err := f.usecase.AddByBarcode(ctx, "token", f.cashierID, "0000000000000")
		require.ErrorIs(t, err, commands.ErrProductNotFound)
	})
}

func TestSetSearchQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("query settles into results", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.catalog.products = []catalog.Product{builder.NewProductBuilder().Build()}

		require.NoError(t, f.usecase.SetSearchQuery(ctx, "token", f.cashierID, "milk"))
		assert.Equal(t, "milk", f.state().SearchQuery, "query is recorded immediately")

		require.Eventually(t, func() bool {
			return len(f.state().SearchResults) == 1
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("only the last of rapid keystrokes reaches the backend", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.catalog.products = []catalog.Product{builder.NewProductBuilder().Build()}

		require.NoError(t, f.usecase.SetSearchQuery(ctx, "token", f.cashierID, "m"))
		require.NoError(t, f.usecase.SetSearchQuery(ctx, "token", f.cashierID, "mi"))
		require.NoError(t, f.usecase.SetSearchQuery(ctx, "token", f.cashierID, "milk"))

		require.Eventually(t, func() bool {
			return len(f.state().SearchResults) == 1
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, []string{"milk"}, f.catalog.recorded())
	})

	t.Run("clearing the query empties results without a fetch", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.catalog.products = []catalog.Product{builder.NewProductBuilder().Build()}
		require.NoError(t, f.usecase.SetSearchQuery(ctx, "token", f.cashierID, "milk"))
		require.Eventually(t, func() bool {
			return len(f.state().SearchResults) == 1
		}, time.Second, 5*time.Millisecond)

		require.NoError(t, f.usecase.SetSearchQuery(ctx, "token", f.cashierID, ""))

		state := f.state()
		assert.Empty(t, state.SearchQuery)
		assert.Empty(t, state.SearchResults)

		time.Sleep(3 * settleDelay)
		assert.Equal(t, []string{"milk"}, f.catalog.recorded(), "no extra fetch for the empty query")
	})

	t.Run("failed search empties the results", func(t *testing.T) {
		f := newRegisterFixture(t)
		require.NoError(t, f.store.Session(f.cashierID).Update(func(s *shared.RegisterState) error {
			s.SearchResults = []catalog.Product{builder.NewProductBuilder().Build()}
			return nil
		}))
		f.catalog.err = assert.AnError

		require.NoError(t, f.usecase.SetSearchQuery(ctx, "token", f.cashierID, "milk"))

		require.Eventually(t, func() bool {
			return len(f.state().SearchResults) == 0
		}, time.Second, 5*time.Millisecond)
	})
}

func TestSetMemberPhone(t *testing.T) {
	ctx := context.Background()

	t.Run("full phone resolves the discount rate", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.members.members = []member.Snapshot{
			{MemberID: 1, Phone: "0812345678", DiscountRate: 7.5},
		}

		require.NoError(t, f.usecase.SetMemberPhone(ctx, "token", f.cashierID, "0812345678"))

		state := f.state()
		assert.Equal(t, "0812345678", state.MemberPhone)
		assert.Zero(t, state.MemberRate, "rate is pending until the lookup settles")

		require.Eventually(t, func() bool {
			return f.state().MemberResolved
		}, time.Second, 5*time.Millisecond)
		assert.InDelta(t, 7.5, f.state().MemberRate, 0.0001)
	})

	t.Run("partial phone is stored but never looked up", func(t *testing.T) {
		f := newRegisterFixture(t)

		require.NoError(t, f.usecase.SetMemberPhone(ctx, "token", f.cashierID, "08123"))

		time.Sleep(3 * settleDelay)
		state := f.state()
		assert.Equal(t, "08123", state.MemberPhone)
		assert.Zero(t, state.MemberRate)
		assert.Zero(t, f.members.callCount())
	})

	t.Run("empty phone detaches the member", func(t *testing.T) {
		f := newRegisterFixture(t)
		require.NoError(t, f.store.Session(f.cashierID).Update(func(s *shared.RegisterState) error {
			s.MemberPhone = "0812345678"
			s.MemberRate = 7.5
			s.MemberResolved = true
			return nil
		}))

		require.NoError(t, f.usecase.SetMemberPhone(ctx, "token", f.cashierID, ""))

		state := f.state()
		assert.Empty(t, state.MemberPhone)
		assert.Zero(t, state.MemberRate)
		assert.False(t, state.MemberResolved)
	})

	t.Run("lookup failure parks the rate at zero", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.members.err = assert.AnError

		require.NoError(t, f.usecase.SetMemberPhone(ctx, "token", f.cashierID, "0812345678"))

		require.Eventually(t, func() bool {
			return f.members.callCount() == 1
		}, time.Second, 5*time.Millisecond)
		time.Sleep(settleDelay)
		state := f.state()
		assert.Zero(t, state.MemberRate)
		assert.False(t, state.MemberResolved)
	})

	t.Run("stale rate is not applied after the phone changes", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.members.members = []member.Snapshot{
			{MemberID: 1, Phone: "0812345678", DiscountRate: 7.5},
		}

		require.NoError(t, f.usecase.SetMemberPhone(ctx, "token", f.cashierID, "0812345678"))
		require.NoError(t, f.usecase.SetMemberPhone(ctx, "token", f.cashierID, "08123"))

		time.Sleep(5 * settleDelay)
		state := f.state()
		assert.Equal(t, "08123", state.MemberPhone)
		assert.Zero(t, state.MemberRate)
		assert.False(t, state.MemberResolved)
	})
}

func TestRegisterMember(t *testing.T) {
	ctx := context.Background()

	t.Run("valid input creates through the directory", func(t *testing.T) {
		f := newRegisterFixture(t)
		usecase := commands.NewMemberUseCase(f.members)

		view, err := usecase.RegisterMember(ctx, "token", "Somchai", "0812345678")
		require.NoError(t, err)
		assert.Equal(t, "Somchai", view.Name)
		assert.Equal(t, "0812345678", view.Phone)
	})

	t.Run("short name is rejected locally", func(t *testing.T) {
		f := newRegisterFixture(t)
		usecase := commands.NewMemberUseCase(f.members)

		_, err := usecase.RegisterMember(ctx, "token", "S", "0812345678")
		require.ErrorIs(t, err, commands.ErrNameTooShort)
	})

	t.Run("bad phone is rejected locally", func(t *testing.T) {
		f := newRegisterFixture(t)
		usecase := commands.NewMemberUseCase(f.members)

		_, err := usecase.RegisterMember(ctx, "token", "Somchai", "08123")
		require.ErrorIs(t, err, commands.ErrPhoneFormat)
	})
}
