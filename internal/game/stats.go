package game

import "errors"

// RecentGamesLimit is the size of the recent-games window returned with stats.
const RecentGamesLimit = 10

var ErrEmptyHistory = errors.New("no games recorded")

// Summarize computes the aggregates over games. For an empty history it
// returns zeroed stats together with ErrEmptyHistory.
func Summarize(games []Game) (UserStats, error) {
	if len(games) == 0 {
		return UserStats{}, ErrEmptyHistory
	}

	stats := UserStats{
		GamesCompleted:  len(games),
		HighestWPM:      games[0].WPM,
		HighestAccuracy: games[0].Accuracy,
	}

	var wpmSum, accuracySum float64
	for _, g := range games {
		wpmSum += g.WPM
		accuracySum += g.Accuracy
		stats.TotalWords += g.NumWords
		if g.WPM > stats.HighestWPM {
			stats.HighestWPM = g.WPM
		}
		if g.Accuracy > stats.HighestAccuracy {
			stats.HighestAccuracy = g.Accuracy
		}
	}

	count := float64(len(games))
	stats.AverageWPM = wpmSum / count
	stats.AverageAccuracy = accuracySum / count

	return stats, nil
}

// Recent returns the last n games, keeping their chronological order. games
// must already be sorted oldest first.
func Recent(games []Game, n int) []Game {
	if n <= 0 || len(games) == 0 {
		return []Game{}
	}
	if len(games) <= n {
		return games
	}
	return games[len(games)-n:]
}
