package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shahisiiii/quiz-platform/internal/cache"
	"github.com/shahisiiii/quiz-platform/internal/config"
	"github.com/shahisiiii/quiz-platform/internal/model"
	"github.com/shahisiiii/quiz-platform/internal/repository"
)

// UserService handles registration, credential checks, and profile reads.
type UserService struct {
	userRepo *repository.UserRepository
	auth     *AuthService
	store    *cache.Store
	log      zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository, auth *AuthService, store *cache.Store, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		auth:     auth,
		store:    store,
		log:      log.With().Str("component", "user_service").Logger(),
	}
}

// Register creates an account. The role is fixed here from the is_admin
// flag and never changes afterwards. Username and email are normalized to
// lower case so uniqueness is case-insensitive.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := model.RoleUser
	if req.IsAdmin {
		role = model.RoleAdmin
	}

	user := &model.User{
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

// Authenticate resolves the identifier as an email when it contains '@',
// as a username otherwise, then verifies the password. Lookups and
// password mismatches collapse into one error so callers cannot probe
// which field was wrong.
func (s *UserService) Authenticate(ctx context.Context, identifier, password string) (*model.User, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))

	var (
		user *model.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.GetByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.GetByUsername(ctx, identifier)
	}
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetProfile returns a user's profile view, cached for 5 minutes.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*model.UserView, error) {
	key := config.CacheKey.UserProfile(userID)

	var view model.UserView
	if s.store.GetJSON(ctx, key, &view) {
		return &view, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	view = model.NewUserView(user)
	s.store.SetJSON(ctx, key, view, config.UserProfileTTL)
	return &view, nil
}

// List returns all users for admins and only the caller for everyone else.
func (s *UserService) List(ctx context.Context, caller *Claims) ([]model.UserView, error) {
	if caller.Role != model.RoleAdmin {
		view, err := s.GetProfile(ctx, caller.UserID)
		if err != nil {
			return nil, err
		}
		return []model.UserView{*view}, nil
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]model.UserView, 0, len(users))
	for i := range users {
		views = append(views, model.NewUserView(&users[i]))
	}
	return views, nil
}
