package game

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type GameRepositoryMock struct {
	mock.Mock
}

func (m *GameRepositoryMock) CreateGame(ctx context.Context, game *Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *GameRepositoryMock) ListGamesByUser(ctx context.Context, userID uint) ([]Game, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Game), args.Error(1)
}
