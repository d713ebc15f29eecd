package commands

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"pos-gateway/internal/domain/catalog"
	"pos-gateway/internal/domain/member"
	"pos-gateway/internal/pkg/errs"
	"pos-gateway/internal/pkg/lookup"
	"pos-gateway/internal/usecase/queries"
	"pos-gateway/internal/usecase/shared"
)

var (
	ErrProductNotFound = errs.New("product not found")
)

// RegisterCommands mutates one cashier's register: cart lines, the attached
// member and the search-as-you-type state. Cart mutations are synchronous and
// serialized per session; the member and search lookups are debounced
// upstream calls whose stale responses are discarded.
type RegisterCommands interface {
	AddProduct(ctx context.Context, token string, cashierID uuid.UUID, productID int64) error
	AddByBarcode(ctx context.Context, token string, cashierID uuid.UUID, barcode string) error
	SetQuantity(ctx context.Context, cashierID uuid.UUID, productID int64, quantity int) error
	RemoveLine(ctx context.Context, cashierID uuid.UUID, productID int64) error
	ClearCart(ctx context.Context, cashierID uuid.UUID) error

	SetMemberPhone(ctx context.Context, token string, cashierID uuid.UUID, phone string) error
	SetSearchQuery(ctx context.Context, token string, cashierID uuid.UUID, query string) error
}

type searchQuery struct {
	cashierID uuid.UUID
	token     string
	q         string
}

type memberQuery struct {
	cashierID uuid.UUID
	token     string
	phone     member.Phone
}

type registerUseCaseImpl struct {
	store   shared.RegisterStore
	catalog queries.CatalogGateway
	members MemberDirectory
	settle  time.Duration

	mu            sync.Mutex
	searchLookups map[uuid.UUID]*lookup.Debouncer[searchQuery, []catalog.Product]
	memberLookups map[uuid.UUID]*lookup.Debouncer[memberQuery, float64]
}

func NewRegisterUseCase(
	store shared.RegisterStore,
	catalogGateway queries.CatalogGateway,
	members MemberDirectory,
	settleDelay time.Duration,
) RegisterCommands {
	return &registerUseCaseImpl{
		store:         store,
		catalog:       catalogGateway,
		members:       members,
		settle:        settleDelay,
		searchLookups: make(map[uuid.UUID]*lookup.Debouncer[searchQuery, []catalog.Product]),
		memberLookups: make(map[uuid.UUID]*lookup.Debouncer[memberQuery, float64]),
	}
}

// AddProduct adds one unit of a product from the register's latest search
// results; the snapshot the cashier saw is the one that enters the cart.
func (r *registerUseCaseImpl) AddProduct(_ context.Context, _ string, cashierID uuid.UUID, productID int64) error {
	session := r.store.Session(cashierID)
	return session.Update(func(s *shared.RegisterState) error {
		for _, p := range s.SearchResults {
			if p.ProductID == productID {
				return s.Cart.Add(p)
			}
		}
		return ErrProductNotFound
	})
}

// AddByBarcode resolves a scanned barcode against the catalog and adds the
// first match. Scans are discrete events, so this lookup is not debounced.
func (r *registerUseCaseImpl) AddByBarcode(ctx context.Context, token string, cashierID uuid.UUID, barcode string) error {
	products, err := r.catalog.SearchProducts(ctx, token, "", barcode)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return ErrProductNotFound
	}

	session := r.store.Session(cashierID)
	return session.Update(func(s *shared.RegisterState) error {
		return s.Cart.Add(products[0])
	})
}

func (r *registerUseCaseImpl) SetQuantity(_ context.Context, cashierID uuid.UUID, productID int64, quantity int) error {
	session := r.store.Session(cashierID)
	return session.Update(func(s *shared.RegisterState) error {
		return s.Cart.SetQuantity(productID, quantity)
	})
}

func (r *registerUseCaseImpl) RemoveLine(_ context.Context, cashierID uuid.UUID, productID int64) error {
	session := r.store.Session(cashierID)
	return session.Update(func(s *shared.RegisterState) error {
		s.Cart.Remove(productID)
		return nil
	})
}

func (r *registerUseCaseImpl) ClearCart(_ context.Context, cashierID uuid.UUID) error {
	session := r.store.Session(cashierID)
	return session.Update(func(s *shared.RegisterState) error {
		s.Cart.Clear()
		return nil
	})
}

// SetMemberPhone records the phone input immediately and resolves the
// discount rate asynchronously. An empty phone detaches the member and
// cancels any pending lookup; a partial (non-10-digit) input parks the rate
// at zero without hitting the backend.
func (r *registerUseCaseImpl) SetMemberPhone(_ context.Context, token string, cashierID uuid.UUID, phone string) error {
	session := r.store.Session(cashierID)

	if phone == "" {
		r.memberLookup(cashierID).Cancel()
		return session.Update(func(s *shared.RegisterState) error {
			s.MemberPhone = ""
			s.MemberRate = 0
			s.MemberResolved = false
			return nil
		})
	}

	parsed, parseErr := member.NewPhone(phone)

	err := session.Update(func(s *shared.RegisterState) error {
		s.MemberPhone = phone
		s.MemberRate = 0
		s.MemberResolved = false
		return nil
	})
	if err != nil {
		return err
	}

	if parseErr != nil {
		r.memberLookup(cashierID).Cancel()
		return nil
	}

	// Detached from the request context: the lookup outlives the HTTP call
	// that submitted it and is superseded only by newer input.
	r.memberLookup(cashierID).Submit(context.Background(), memberQuery{
		cashierID: cashierID,
		token:     token,
		phone:     parsed,
	})
	return nil
}

// SetSearchQuery debounces catalog search so that only the latest input after
// the settle delay reaches the backend.
func (r *registerUseCaseImpl) SetSearchQuery(_ context.Context, token string, cashierID uuid.UUID, query string) error {
	session := r.store.Session(cashierID)

	err := session.Update(func(s *shared.RegisterState) error {
		s.SearchQuery = query
		return nil
	})
	if err != nil {
		return err
	}

	if query == "" {
		r.searchLookup(cashierID).Cancel()
		return session.Update(func(s *shared.RegisterState) error {
			s.SearchResults = nil
			return nil
		})
	}

	r.searchLookup(cashierID).Submit(context.Background(), searchQuery{
		cashierID: cashierID,
		token:     token,
		q:         query,
	})
	return nil
}

func (r *registerUseCaseImpl) searchLookup(cashierID uuid.UUID) *lookup.Debouncer[searchQuery, []catalog.Product] {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.searchLookups[cashierID]
	if !ok {
		d = lookup.NewDebouncer(r.settle, r.fetchSearch, r.applySearch)
		r.searchLookups[cashierID] = d
	}
	return d
}

func (r *registerUseCaseImpl) memberLookup(cashierID uuid.UUID) *lookup.Debouncer[memberQuery, float64] {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.memberLookups[cashierID]
	if !ok {
		d = lookup.NewDebouncer(r.settle, r.fetchMemberRate, r.applyMemberRate)
		r.memberLookups[cashierID] = d
	}
	return d
}

func (r *registerUseCaseImpl) fetchSearch(ctx context.Context, q searchQuery) ([]catalog.Product, error) {
	return r.catalog.SearchProducts(ctx, q.token, q.q, "")
}

// applySearch mirrors the register UI's behavior: a failed search empties the
// result list rather than surfacing an error mid-keystroke.
func (r *registerUseCaseImpl) applySearch(q searchQuery, results []catalog.Product, err error) {
	if err != nil {
		results = nil
	}
	session := r.store.Session(q.cashierID)
	_ = session.Update(func(s *shared.RegisterState) error {
		if s.SearchQuery != q.q {
			return nil
		}
		s.SearchResults = results
		return nil
	})
}

func (r *registerUseCaseImpl) fetchMemberRate(ctx context.Context, q memberQuery) (float64, error) {
	candidates, err := r.members.SearchMembers(ctx, q.token, q.phone.String())
	if err != nil {
		return 0, err
	}
	return member.ResolveRate(candidates, q.phone), nil
}

// applyMemberRate treats a failed lookup as "no discount": checkout must not
// block on the membership lookup, and the server re-derives the rate anyway.
func (r *registerUseCaseImpl) applyMemberRate(q memberQuery, rate float64, err error) {
	if err != nil {
		rate = 0
	}
	session := r.store.Session(q.cashierID)
	_ = session.Update(func(s *shared.RegisterState) error {
		if s.MemberPhone != q.phone.String() {
			return nil
		}
		s.MemberRate = rate
		s.MemberResolved = err == nil
		return nil
	})
}
