package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/thesrcielos/TypingSite/internal/apperrors"
	"github.com/thesrcielos/TypingSite/internal/logger"
	"github.com/thesrcielos/TypingSite/internal/session"
)

// SessionTokens converts between store session ids and client tokens.
type SessionTokens interface {
	Issue(sessionID string) (string, error)
	Parse(token string) (string, error)
	ParseForRevocation(token string) (string, error)
}

type UserService struct {
	repo     UserRepository
	sessions session.Store
	tokens   SessionTokens
	cost     int
	log      *logger.Logger
}

func NewUserService(repo UserRepository, sessions session.Store, tokens SessionTokens, bcryptCost int, log *logger.Logger) *UserService {
	return &UserService{
		repo:     repo,
		sessions: sessions,
		tokens:   tokens,
		cost:     bcryptCost,
		log:      log,
	}
}

func (u *UserService) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	_, err := u.repo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperrors.ErrDuplicateEmail
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := hashPassword(req.Password, u.cost)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error hashing password", err)
	}

	newUser := &User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	if err := u.repo.CreateUser(ctx, newUser); err != nil {
		return nil, err
	}

	u.log.Info("user signed up", "user_id", newUser.ID)
	return newUser, nil
}

func (u *UserService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	found, err := u.repo.FindByEmail(ctx, req.Email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	ok, err := checkPassword(found.Password, req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error verifying password", err)
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	s := &session.Session{
		ID:   uuid.NewString(),
		User: found.Snapshot(),
	}
	if err := u.sessions.Create(ctx, s); err != nil {
		return nil, err
	}

	token, err := u.tokens.Issue(s.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error signing session token", err)
	}

	u.log.Info("user logged in", "user_id", found.ID)
	return &LoginResult{SessionID: token, User: found}, nil
}

// ResolveSession returns the login-time snapshot bound to token, or nil when
// there is no live session for it.
func (u *UserService) ResolveSession(ctx context.Context, token string) (*session.Snapshot, error) {
	id, err := u.tokens.Parse(token)
	if err != nil {
		return nil, nil
	}

	s, err := u.sessions.Get(ctx, id)
	if errors.Is(err, apperrors.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s.User, nil
}

// CurrentUser resolves token to the live user row. A session whose user no
// longer exists is treated as absent.
func (u *UserService) CurrentUser(ctx context.Context, token string) (*User, error) {
	snapshot, err := u.ResolveSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, apperrors.ErrSessionNotFound
	}

	found, err := u.repo.GetUser(ctx, snapshot.ID)
	if errors.Is(err, ErrUserNotFound) {
		u.log.Warn("session references missing user", "user_id", snapshot.ID)
		return nil, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	return found, nil
}

// Logout deletes the session. A token past its max age still revokes a session
// that is alive in the store.
func (u *UserService) Logout(ctx context.Context, token string) error {
	id, err := u.tokens.ParseForRevocation(token)
	if err != nil {
		return apperrors.ErrSessionNotFound
	}

	return u.sessions.Delete(ctx, id)
}
