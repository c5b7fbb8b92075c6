package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"veritas-core/internal/domain/entity"
	"veritas-core/internal/domain/repository"
	"veritas-core/internal/logging"

	"github.com/google/uuid"
)

const (
	signInDelay  = 1500 * time.Millisecond
	signOutDelay = 500 * time.Millisecond

	defaultAvatar = "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&dpr=2"
)

// AccountService simulates sign-up and sign-in. Passwords are accepted as is.
type AccountService struct {
	users    repository.UserStore
	sessions repository.SessionStore
	delayer  repository.Delayer
	log      logging.Logger
}

func NewAccountService(users repository.UserStore, sessions repository.SessionStore, delayer repository.Delayer, log logging.Logger) *AccountService {
	return &AccountService{users: users, sessions: sessions, delayer: delayer, log: log}
}

func (a *AccountService) SignUp(ctx context.Context, req entity.SignUpRequest) (*entity.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || strings.TrimSpace(req.Name) == "" {
		return nil, entity.ErrInvalidRequest
	}
	if err := a.delayer.Delay(ctx, signInDelay); err != nil {
		return nil, err
	}
	if _, err := a.users.FindByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: account already exists", entity.ErrInvalidRequest)
	}
	return a.create(ctx, email, strings.TrimSpace(req.Name))
}

// SignIn returns the account registered under the email, creating one
// named after the email's local part if there is none.
func (a *AccountService) SignIn(ctx context.Context, req entity.SignInRequest) (*entity.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, entity.ErrInvalidRequest
	}
	if err := a.delayer.Delay(ctx, signInDelay); err != nil {
		return nil, err
	}
	user, err := a.users.FindByEmail(ctx, email)
	if err == nil {
		a.log.Info("user signed in", "user_id", user.ID)
		return user, nil
	}
	if !errors.Is(err, entity.ErrResourceNotFound) {
		return nil, err
	}
	return a.create(ctx, email, strings.Split(email, "@")[0])
}

// SignOut drops the caller's current analysis session.
func (a *AccountService) SignOut(ctx context.Context, userID string) error {
	if err := a.delayer.Delay(ctx, signOutDelay); err != nil {
		return err
	}
	if err := a.sessions.Clear(ctx, userID); err != nil {
		return err
	}
	a.log.Info("user signed out", "user_id", userID)
	return nil
}

func (a *AccountService) Authenticate(ctx context.Context, userID string) (*entity.User, error) {
	if userID == "" {
		return nil, entity.ErrUnauthenticated
	}
	user, err := a.users.FindByID(ctx, userID)
	if errors.Is(err, entity.ErrResourceNotFound) {
		return nil, entity.ErrUnauthenticated
	}
	return user, err
}

func (a *AccountService) create(ctx context.Context, email, name string) (*entity.User, error) {
	user := &entity.User{
		ID:     uuid.NewString(),
		Email:  email,
		Name:   name,
		Avatar: defaultAvatar,
	}
	if err := a.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	a.log.Info("user created", "user_id", user.ID)
	return user, nil
}
