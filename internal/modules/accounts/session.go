package accounts

import (
	"sync"

	"github.com/google/uuid"

	"geministore.com/app/internal/modules/cart"
)

// Role is decided once at login and carried immutably on the session.
// Nothing downstream re-derives it from the email string.
type Role string

const (
	RoleGuest    Role = "guest"
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Session is one logged-in browser. It owns the cart and the last browse
// filter, both cleared on logout.
type Session struct {
	ID       string
	FullName string
	Email    string
	Role     Role
	Cart     *cart.Cart

	mu               sync.Mutex
	searchTerm       string
	selectedCategory string
}

func (s *Session) IsAdmin() bool { return s.Role == RoleAdmin }

// FirstName mirrors Account.FirstName for greeting messages; the admin is
// always addressed by full name.
func (s *Session) FirstName() string {
	if s.Role == RoleAdmin {
		return s.FullName
	}
	return Account{FullName: s.FullName}.FirstName()
}

func (s *Session) SetFilter(term, category string) {
	s.mu.Lock()
	s.searchTerm, s.selectedCategory = term, category
	s.mu.Unlock()
}

func (s *Session) Filter() (term, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchTerm, s.selectedCategory
}

// Registry holds live sessions and pending admin OTP challenges in memory.
// There is no expiry: the demo has no session lifetime requirement.
type Registry struct {
	mu         sync.RWMutex
	sessions   map[string]*Session
	challenges map[string]string // challenge id -> attempted email
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:   make(map[string]*Session),
		challenges: make(map[string]string),
	}
}

func (r *Registry) NewSession(fullName, email string, role Role) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		FullName: fullName,
		Email:    email,
		Role:     role,
		Cart:     cart.New(),
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *Registry) Drop(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) NewChallenge(email string) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.challenges[id] = email
	r.mu.Unlock()
	return id
}

func (r *Registry) ChallengeEmail(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email, ok := r.challenges[id]
	return email, ok
}

func (r *Registry) DropChallenge(id string) {
	r.mu.Lock()
	delete(r.challenges, id)
	r.mu.Unlock()
}
