package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/levelup/internal/client/api"
	"github.com/dmitrijs2005/levelup/internal/client/models"
	"github.com/dmitrijs2005/levelup/internal/client/repositories/session"
	"github.com/dmitrijs2005/levelup/internal/client/repositories/users"
	"github.com/dmitrijs2005/levelup/internal/common"
	"github.com/dmitrijs2005/levelup/internal/cryptox"
	"github.com/dmitrijs2005/levelup/internal/logging"
)

// ValidationError is a field-level rejection of user input. The
// presentation layer shows Message next to Field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// AccountService owns login, registration, logout, and profile editing.
// It reconciles the remote identity provider with the local user store,
// preferring the remote but degrading to local-only authentication when
// the remote is unreachable.
//
// The in-memory current user is written without mutual exclusion against
// other operations on the same instance; the hosting shell serializes
// calls, and last-writer-wins is accepted for anything it does not.
type AccountService struct {
	users   users.Repository
	session session.Repository
	api     api.Client
	log     logging.Logger

	current *models.User
}

// NewAccountService constructs an AccountService bound to the given
// repositories and remote client.
func NewAccountService(usersRepo users.Repository, sessionRepo session.Repository, apiClient api.Client, log logging.Logger) *AccountService {
	return &AccountService{users: usersRepo, session: sessionRepo, api: apiClient, log: log}
}

// CurrentUser returns the last loaded or logged-in user, nil when logged out.
func (s *AccountService) CurrentUser() *models.User {
	return s.current
}

// Restore loads the persisted session at startup. It returns (nil, nil)
// when no session is stored or the referenced user no longer exists.
func (s *AccountService) Restore(ctx context.Context) (*models.User, error) {
	st, err := s.session.Current(ctx)
	if err != nil {
		return nil, err
	}
	if !st.LoggedIn {
		return nil, nil
	}
	u, err := s.users.GetByID(ctx, st.UserID)
	if err != nil {
		return nil, err
	}
	s.current = u
	return u, nil
}

// Login authenticates with the remote identity provider first. On remote
// success the local record is reconciled: created from the remote profile
// when absent (keeping the caller-supplied password so offline login works
// later), or refreshed (display name only) when present. On any remote
// failure (transport error, timeout, non-2xx) it falls back to local-only
// authentication. Either way a success sets the persisted session flag.
//
// The caller cannot distinguish remote from local rejection: both surface
// as common.ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, error) {
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.log.Warn(ctx, "remote login failed, trying local fallback", "error", err)
		return s.loginLocal(ctx, email, password)
	}

	local, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if local == nil {
		u := &models.User{
			Email:     res.User.Email,
			Password:  cryptox.HashPassword([]byte(password)),
			Name:      res.User.Name,
			CreatedAt: time.Now(),
		}
		if _, err := s.users.Insert(ctx, u); err != nil {
			return nil, fmt.Errorf("failed to cache remote user: %w", err)
		}
		local, err = s.users.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if local == nil {
			return nil, common.ErrorInternal
		}
	} else {
		local.Name = res.User.Name
		if err := s.users.Update(ctx, local); err != nil {
			return nil, fmt.Errorf("failed to refresh local user: %w", err)
		}
	}

	if err := s.finishLogin(ctx, local, res.Token); err != nil {
		return nil, err
	}
	return local, nil
}

// loginLocal authenticates against the local store only: the user must
// exist under the exact email and the password must verify against the
// stored credential hash.
func (s *AccountService) loginLocal(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !cryptox.VerifyPassword(u.Password, []byte(password)) {
		return nil, common.ErrInvalidCredentials
	}
	if err := s.finishLogin(ctx, u, ""); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AccountService) finishLogin(ctx context.Context, u *models.User, token string) error {
	if token != "" {
		if exp, ok := api.TokenExpiry(token); ok {
			s.log.Info(ctx, "remote session token issued", "user_id", u.ID, "expires_at", exp)
		}
	}
	if err := s.session.SetLoggedIn(ctx, u.ID, token); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.current = u
	return nil
}

// Register creates an account. The local email-taken check runs first;
// remote registration is best-effort only, its failure is logged and
// swallowed so the offline-first flow always reaches local creation. On
// success the created user is re-fetched by id and the session flag set.
func (s *AccountService) Register(ctx context.Context, name, email, password, country string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	country = strings.TrimSpace(country)

	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, common.ErrEmailTaken
	}

	if _, err := s.api.Register(ctx, name, email, password); err != nil {
		s.log.Warn(ctx, "remote registration failed, continuing locally", "error", err)
	}

	u := &models.User{
		Email:     email,
		Password:  cryptox.HashPassword([]byte(password)),
		Name:      name,
		Country:   country,
		CreatedAt: time.Now(),
	}
	id, err := s.users.Insert(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	created, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, common.ErrorInternal
	}

	if err := s.finishLogin(ctx, created, ""); err != nil {
		return nil, err
	}
	return created, nil
}

// Logout clears the persisted session flag unconditionally and resets the
// in-memory user. No remote call is made.
func (s *AccountService) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// UpdateProfile merges the given fields into the current user and persists
// the result. The password is replaced only when newPassword is non-empty.
// An email change is rejected when the new address already belongs to a
// different user. Profile edits are never synced to the remote.
func (s *AccountService) UpdateProfile(ctx context.Context, name, email, country, newPassword string) (*models.User, error) {
	if s.current == nil {
		return nil, common.ErrNoSession
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	country = strings.TrimSpace(country)

	if email != s.current.Email {
		existing, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != s.current.ID {
			return nil, common.ErrEmailTaken
		}
	}

	if country == "" {
		return nil, &ValidationError{Field: "country", Message: "country is required"}
	}

	updated := *s.current
	updated.Name = name
	updated.Email = email
	updated.Country = country
	if newPassword != "" {
		updated.Password = cryptox.HashPassword([]byte(newPassword))
	}

	if err := s.users.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	s.current = &updated
	return &updated, nil
}

// UpdateProfileImage replaces only the profile image reference of the
// current user and persists it.
func (s *AccountService) UpdateProfileImage(ctx context.Context, path string) (*models.User, error) {
	if s.current == nil {
		return nil, common.ErrNoSession
	}

	updated := *s.current
	updated.ProfileImagePath = path

	if err := s.users.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update profile image: %w", err)
	}
	s.current = &updated
	return &updated, nil
}

func validateRegistration(name, email, password string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "invalid email address"}
	}
	if len(password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}
