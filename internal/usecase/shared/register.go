package shared

import (
	"github.com/google/uuid"

	"pos-gateway/internal/domain/cart"
	"pos-gateway/internal/domain/catalog"
	"pos-gateway/internal/domain/member"
	"pos-gateway/internal/domain/promotion"
)

// RegisterState is everything one cashier's register holds between requests:
// the cart, the attached member, the latest search results and the cached
// promotion list. It is process-local state; the store backend remains the
// authority for all of it.
type RegisterState struct {
	Cart *cart.Cart

	// Member attachment. Rate is zero until a lookup resolves; Resolved marks
	// whether the latest phone input has been answered.
	MemberPhone    string
	MemberRate     float64
	MemberResolved bool

	// Latest search-as-you-type results (stale responses never land here,
	// see pkg/lookup).
	SearchQuery   string
	SearchResults []catalog.Product

	// Active promotion list as last fetched from the store backend. Loaded on
	// first use and refreshed after every successful sale.
	Promotions       []*promotion.Promotion
	PromotionsLoaded bool
}

// MemberAttached resolves the attached phone into a domain phone, if the
// input is currently a well-formed one.
func (s *RegisterState) MemberAttached() (member.Phone, bool) {
	if s.MemberPhone == "" {
		return "", false
	}
	p, err := member.NewPhone(s.MemberPhone)
	if err != nil {
		return "", false
	}
	return p, true
}

// RegisterSession serializes access to one register's state. Mutations run
// under the session lock; the checkout flag is separate so a second checkout
// is refused without blocking behind the first.
type RegisterSession interface {
	Update(fn func(*RegisterState) error) error
	View(fn func(*RegisterState))

	// TryBeginCheckout flips the in-flight flag; false means a checkout is
	// already running. EndCheckout clears it whether the checkout succeeded
	// or failed.
	TryBeginCheckout() bool
	EndCheckout()
}

type RegisterStore interface {
	Session(cashierID uuid.UUID) RegisterSession
}
