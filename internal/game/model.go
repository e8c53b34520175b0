package game

import (
	"math"
	"time"

	"github.com/thesrcielos/TypingSite/internal/apperrors"
)

// Game is one completed typing session. Rows are created once and never
// updated.
type Game struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Time      float64   `gorm:"not null" json:"time"`
	Words     string    `gorm:"type:text;not null" json:"words"`
	NumWords  int       `gorm:"column:num_words;not null" json:"numWords"`
	WPM       float64   `gorm:"column:wpm;not null" json:"wpm"`
	Accuracy  float64   `gorm:"not null" json:"accuracy"`
	Mistakes  int       `gorm:"not null" json:"mistakes"`
	Datetime  time.Time `gorm:"not null" json:"datetime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GameRequest is the client payload for a finished game. It has no owner
// field: the owner always comes from the session.
type GameRequest struct {
	Words    string  `json:"words"`
	Accuracy float64 `json:"accuracy"`
	Mistakes int     `json:"mistakes"`
	NumWords int     `json:"numWords"`
	WPM      float64 `json:"wpm"`
	Time     float64 `json:"time"`
}

type UserStats struct {
	GamesCompleted  int     `json:"gamesCompleted"`
	HighestWPM      float64 `json:"highestWPM"`
	AverageWPM      float64 `json:"averageWPM"`
	HighestAccuracy float64 `json:"highestAccuracy"`
	AverageAccuracy float64 `json:"averageAccuracy"`
	TotalWords      int     `json:"totalWords"`
}

type UserStatsResponse struct {
	Games []Game    `json:"games"`
	Data  UserStats `json:"data"`
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (r *GameRequest) Validate() error {
	if !finite(r.WPM) || !finite(r.Accuracy) || !finite(r.Time) {
		return apperrors.Validation("game values must be finite numbers")
	}
	if r.Time <= 0 {
		return apperrors.Validation("time must be positive")
	}
	if r.WPM < 0 {
		return apperrors.Validation("wpm must not be negative")
	}
	if r.Accuracy < 0 || r.Accuracy > 100 {
		return apperrors.Validation("accuracy must be between 0 and 100")
	}
	if r.NumWords < 0 || r.Mistakes < 0 {
		return apperrors.Validation("numWords and mistakes must not be negative")
	}
	return nil
}
