package v1

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thesrcielos/TypingSite/internal/game"
	"github.com/thesrcielos/TypingSite/internal/session"
	"github.com/thesrcielos/TypingSite/internal/user"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, req user.SignupRequest) (*user.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.LoginResult), args.Error(1)
}

func (m *MockAuthService) ResolveSession(ctx context.Context, token string) (*session.Snapshot, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Snapshot), args.Error(1)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, token string) (*user.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) RecordGame(ctx context.Context, owner *user.User, req game.GameRequest) (*game.Game, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.Game), args.Error(1)
}

func (m *MockGameService) GetUserStats(ctx context.Context, owner *user.User) (*game.UserStatsResponse, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*game.UserStatsResponse), args.Error(1)
}
