package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"pos-gateway/internal/pkg/errs"
	"pos-gateway/internal/usecase/queries"
	"pos-gateway/internal/usecase/shared"
)

var (
	ErrNotSignedIn        = errs.New("not signed in")
	ErrCartEmpty          = errs.New("cart is empty")
	ErrInvalidPhone       = errs.New("member phone must be exactly 10 digits")
	ErrInvalidPayment     = errs.New("invalid payment method")
	ErrStockExceeded      = errs.New("cart exceeds available stock")
	ErrCheckoutInProgress = errs.New("checkout already in progress")
)

type CheckoutCommands interface {
	// Checkout validates the register locally, submits the order intent and
	// reconciles: on success the cart is cleared and promotions re-fetched;
	// on failure the register is left untouched for a corrected retry.
	Checkout(ctx context.Context, token string, cashierID uuid.UUID, paymentMethod string) (*TransactionResult, error)
}

type checkoutUseCaseImpl struct {
	store      shared.RegisterStore
	gateway    CheckoutGateway
	promotions queries.PromotionGateway
}

func NewCheckoutUseCase(
	store shared.RegisterStore,
	gateway CheckoutGateway,
	promotions queries.PromotionGateway,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		store:      store,
		gateway:    gateway,
		promotions: promotions,
	}
}

func (c *checkoutUseCaseImpl) Checkout(ctx context.Context, token string, cashierID uuid.UUID, paymentMethod string) (*TransactionResult, error) {
	session := c.store.Session(cashierID)

	if !session.TryBeginCheckout() {
		return nil, ErrCheckoutInProgress
	}
	defer session.EndCheckout()

	req, err := c.buildRequest(session, token, paymentMethod)
	if err != nil {
		// Local validation failure: nothing was sent, nothing changes.
		return nil, err
	}

	result, err := c.gateway.CreateTransaction(ctx, token, *req)
	if err != nil {
		// Server refusal or transport failure: the cart and all entered
		// fields stay as they were; the cashier corrects and retries.
		return nil, err
	}

	c.reconcile(ctx, token, session)
	return result, nil
}

// buildRequest runs every precondition before any network call and assembles
// the minimal order payload.
func (c *checkoutUseCaseImpl) buildRequest(session shared.RegisterSession, token, paymentMethod string) (*TransactionRequest, error) {
	if token == "" {
		return nil, ErrNotSignedIn
	}
	if !IsAllowedPaymentMethod(paymentMethod) {
		return nil, ErrInvalidPayment
	}

	var req *TransactionRequest
	var buildErr error
	session.View(func(s *shared.RegisterState) {
		if s.Cart.IsEmpty() {
			buildErr = ErrCartEmpty
			return
		}
		// Re-validated here, not just at mutation time: the snapshot stock
		// may have gone stale since the line was added.
		if err := s.Cart.ValidateStock(); err != nil {
			buildErr = errs.Mark(err, ErrStockExceeded)
			return
		}

		var memberPhone *string
		if s.MemberPhone != "" {
			phone, ok := s.MemberAttached()
			if !ok {
				buildErr = ErrInvalidPhone
				return
			}
			p := phone.String()
			memberPhone = &p
		}

		lines := s.Cart.Lines()
		items := make([]TransactionItem, len(lines))
		for i, l := range lines {
			items[i] = TransactionItem{
				ProductID: l.Product().ProductID,
				Quantity:  l.Quantity(),
			}
		}

		req = &TransactionRequest{
			Items:         items,
			PaymentMethod: paymentMethod,
			MemberPhone:   memberPhone,
		}
	})

	if buildErr != nil {
		return nil, buildErr
	}
	return req, nil
}

// reconcile applies the post-sale local state: the server committed the
// transaction, so the optimistic cart is discarded and the promotion list is
// refreshed once (the sale may have invalidated limited offers or stock).
func (c *checkoutUseCaseImpl) reconcile(ctx context.Context, token string, session shared.RegisterSession) {
	promos, err := c.promotions.ActivePromotions(ctx, token)

	updateErr := session.Update(func(s *shared.RegisterState) error {
		s.Cart.Clear()
		s.MemberPhone = ""
		s.MemberRate = 0
		s.MemberResolved = false
		s.SearchQuery = ""
		s.SearchResults = nil
		if err == nil {
			s.Promotions = promos
			s.PromotionsLoaded = true
		}
		return nil
	})
	if updateErr != nil {
		slog.Warn("failed to reconcile register after checkout", "error", updateErr)
	}
	if err != nil {
		slog.Warn("failed to refresh promotions after checkout", "error", err)
	}
}
