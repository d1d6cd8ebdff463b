package logic

import (
	"fmt"
	"math"

	"github.com/hooplab/scoring-api/internal/models"
)

// Aggregate groups game log rows by player name (exact, case-sensitive
// match) and computes each player's season totals: total points, games
// played, and points per game.
//
// Points per game is rounded to one decimal using round-half-up
// (math.Round rounds half away from zero, identical for this
// non-negative domain). Output order is first appearance of each
// player in the input, which keeps the stage deterministic for a
// given row set.
//
// An empty input returns ErrEmptyInput. Malformed rows fail with
// DataIntegrityError before any totals are produced.
func Aggregate(rows []models.GameLogRow) ([]models.PlayerSeasonTotals, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	type acc struct {
		points int64
		games  int64
	}

	byPlayer := make(map[string]*acc)
	order := make([]string, 0, 16)

	for i := range rows {
		row := &rows[i]
		if err := checkRow(row); err != nil {
			return nil, err
		}

		a, ok := byPlayer[row.PlayerName]
		if !ok {
			a = &acc{}
			byPlayer[row.PlayerName] = a
			order = append(order, row.PlayerName)
		}
		a.points += row.Points
		a.games++
	}

	totals := make([]models.PlayerSeasonTotals, 0, len(order))
	for _, name := range order {
		a := byPlayer[name]
		totals = append(totals, models.PlayerSeasonTotals{
			PlayerName:    name,
			TotalPoints:   a.points,
			GamesPlayed:   a.games,
			PointsPerGame: roundPPG(a.points, a.games),
		})
	}

	return totals, nil
}

// roundPPG rounds total/games to one decimal, half up.
func roundPPG(points, games int64) float64 {
	return math.Round(float64(points)/float64(games)*10) / 10
}

// checkRow rejects rows that would corrupt the breakdown arithmetic.
func checkRow(row *models.GameLogRow) error {
	if row.PlayerName == "" {
		return &DataIntegrityError{PlayerName: row.PlayerName, Reason: "missing player name"}
	}
	for _, c := range []struct {
		name  string
		value int64
	}{
		{"pts", row.Points},
		{"fgm", row.FGM},
		{"fg3m", row.FG3M},
		{"ftm", row.FTM},
	} {
		if c.value < 0 {
			return &DataIntegrityError{
				PlayerName: row.PlayerName,
				Reason:     fmt.Sprintf("negative %s (%d)", c.name, c.value),
			}
		}
	}
	if row.FG3M > row.FGM {
		return &DataIntegrityError{
			PlayerName: row.PlayerName,
			Reason:     fmt.Sprintf("fg3m (%d) exceeds fgm (%d)", row.FG3M, row.FGM),
		}
	}
	return nil
}
