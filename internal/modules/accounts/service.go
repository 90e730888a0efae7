package accounts

import (
	"context"

	"geministore.com/app/internal/shared/apperr"
)

// Service is the login state machine:
//
//	anonymous --submit(admin email)--> awaitingAdminOtp --valid code--> admin
//	anonymous --submit(email,password)--> customer
//
// Wrong credentials and wrong codes leave the caller where they were; there
// is no lockout and no token concept beyond the in-memory session id.
type Service struct {
	store    *Store
	registry *Registry
}

func NewService(store *Store, registry *Registry) *Service {
	return &Service{store: store, registry: registry}
}

func (s *Service) Registry() *Registry { return s.registry }

type LoginResult struct {
	// AwaitingOTP is set when the reserved admin email was submitted. No
	// password is checked on this branch; the caller follows up with
	// VerifyOTP using ChallengeID.
	AwaitingOTP bool
	ChallengeID string
	Session     *Session
}

func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	_ = ctx

	if email == AdminEmail {
		return LoginResult{AwaitingOTP: true, ChallengeID: s.registry.NewChallenge(email)}, nil
	}

	if password == "" {
		return LoginResult{}, apperr.InvalidErr("Password is required.", map[string]string{"password": "Password is required."})
	}

	acct, ok := s.store.FindByCredentials(email, password)
	if !ok {
		return LoginResult{}, apperr.UnauthorizedErr("Invalid email or password.")
	}

	sess := s.registry.NewSession(acct.FullName, acct.Email, RoleCustomer)
	return LoginResult{Session: sess}, nil
}

// VerifyOTP completes the admin branch. A wrong code keeps the challenge
// alive so the attempt can be repeated.
func (s *Service) VerifyOTP(ctx context.Context, challengeID, code string) (*Session, error) {
	_ = ctx

	email, ok := s.registry.ChallengeEmail(challengeID)
	if !ok {
		return nil, apperr.UnauthorizedErr("OTP challenge expired. Please login again.")
	}
	if email != AdminEmail || code != AdminOTP {
		return nil, apperr.UnauthorizedErr("Invalid OTP.")
	}

	s.registry.DropChallenge(challengeID)
	return s.registry.NewSession(adminFullName, AdminEmail, RoleAdmin), nil
}

// Register appends a new account and logs the caller straight in. The
// reserved admin email can never be registered.
func (s *Service) Register(ctx context.Context, fullName, email, password string) (*Session, error) {
	if email == AdminEmail {
		return nil, apperr.ConflictErr("An account with this email already exists.")
	}
	if _, exists := s.store.FindByEmail(email); exists {
		return nil, apperr.ConflictErr("An account with this email already exists.")
	}

	acct := Account{FullName: fullName, Email: email, Password: password, IsAdmin: false}
	if err := s.store.Append(ctx, acct); err != nil {
		return nil, apperr.Wrap(err)
	}

	return s.registry.NewSession(fullName, email, RoleCustomer), nil
}

// Logout drops the session; the cart and browse filter go with it.
func (s *Service) Logout(sessionID string) {
	if sess, ok := s.registry.Get(sessionID); ok {
		sess.Cart.Clear()
		sess.SetFilter("", "")
	}
	s.registry.Drop(sessionID)
}
