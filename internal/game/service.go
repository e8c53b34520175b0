package game

import (
	"context"
	"errors"
	"time"

	"github.com/thesrcielos/TypingSite/internal/apperrors"
	"github.com/thesrcielos/TypingSite/internal/user"
)

type GameService struct {
	repo GameRepository
	now  func() time.Time
}

func NewGameService(repo GameRepository) *GameService {
	return &GameService{repo: repo, now: time.Now}
}

// RecordGame stores a finished game for owner. The owner is always the
// session's user, never something taken from the payload.
func (s *GameService) RecordGame(ctx context.Context, owner *user.User, req GameRequest) (*Game, error) {
	if owner == nil {
		return nil, apperrors.ErrSessionNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		UserID:   owner.ID,
		Words:    req.Words,
		Accuracy: req.Accuracy,
		Mistakes: req.Mistakes,
		NumWords: req.NumWords,
		WPM:      req.WPM,
		Time:     req.Time,
		Datetime: s.now(),
	}
	if err := s.repo.CreateGame(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// GetUserStats recomputes the aggregates from the full history on each call.
func (s *GameService) GetUserStats(ctx context.Context, owner *user.User) (*UserStatsResponse, error) {
	if owner == nil {
		return nil, apperrors.ErrSessionNotFound
	}

	games, err := s.repo.ListGamesByUser(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	stats, err := Summarize(games)
	if err != nil && !errors.Is(err, ErrEmptyHistory) {
		return nil, err
	}

	return &UserStatsResponse{
		Games: Recent(games, RecentGamesLimit),
		Data:  stats,
	}, nil
}
