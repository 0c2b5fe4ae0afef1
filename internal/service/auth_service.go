package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/state"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/storage"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService checks staff credentials and switches admin mode
type AuthService struct {
	store   *state.Store
	adapter *storage.Adapter
	logger  *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(store *state.Store, adapter *storage.Adapter, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:   store,
		adapter: adapter,
		logger:  logger,
	}
}

// Login compares the credentials with the stored admins dataset and enters
// admin mode on a match.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.Admin, error) {
	if username == "" || password == "" {
		return models.Admin{}, ErrInvalidCredentials
	}

	admins := storage.Load(ctx, s.adapter, storage.Admins, []models.Admin{})
	for _, admin := range admins {
		if admin.Username == username && admin.Password == password {
			s.store.Dispatch(state.LoginAdmin{Admin: admin})
			s.logger.InfoContext(ctx, "admin logged in", "admin_id", admin.ID, "username", admin.Username)
			return admin, nil
		}
	}

	s.logger.WarnContext(ctx, "admin login failed", "username", username)
	return models.Admin{}, ErrInvalidCredentials
}

// Logout leaves admin mode
func (s *AuthService) Logout(ctx context.Context) {
	var current *models.Admin
	_, _ = s.store.Update(func(st state.AppState) (state.Action, error) {
		current = st.CurrentAdmin
		return state.LogoutAdmin{}, nil
	})
	if current != nil {
		s.logger.InfoContext(ctx, "admin logged out", "admin_id", current.ID)
	}
}

// Session returns the logged-in admin, if any
func (s *AuthService) Session() (*models.Admin, bool) {
	current := s.store.State()
	return current.CurrentAdmin, current.IsAdminMode
}
