package sessions

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"pos-gateway/internal/domain/cart"
	"pos-gateway/internal/usecase/shared"
)

// Store keeps one register session per cashier, in process memory. The store
// backend owns everything durable; losing this state on restart costs an
// unsubmitted cart, nothing more.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*session),
	}
}

func (st *Store) Session(cashierID uuid.UUID) shared.RegisterSession {
	st.mu.RLock()
	s, ok := st.sessions[cashierID]
	st.mu.RUnlock()
	if ok {
		return s
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok = st.sessions[cashierID]; ok {
		return s
	}
	s = newSession()
	st.sessions[cashierID] = s
	return s
}

type session struct {
	mu    sync.Mutex
	state shared.RegisterState

	// Guards against double-submitted checkouts without holding the state
	// lock across the upstream call.
	checkoutInFlight atomic.Bool
}

func newSession() *session {
	return &session{
		state: shared.RegisterState{
			Cart: cart.New(),
		},
	}
}

func (s *session) Update(fn func(*shared.RegisterState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.state)
}

func (s *session) View(fn func(*shared.RegisterState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

func (s *session) TryBeginCheckout() bool {
	return s.checkoutInFlight.CompareAndSwap(false, true)
}

func (s *session) EndCheckout() {
	s.checkoutInFlight.Store(false)
}
