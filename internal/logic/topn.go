package logic

import (
	"sort"

	"github.com/hooplab/scoring-api/internal/models"
)

// DefaultTopN is the number of players a report covers when the caller
// does not ask for a specific count.
const DefaultTopN = 10

// SelectTopN ranks season totals by points per game, descending, and
// returns the first n. Ties on points per game break on total points
// (descending), then player name (ascending), so the ranking never
// depends on input order. If fewer than n players exist, all of them
// are returned. n <= 0 falls back to DefaultTopN.
func SelectTopN(totals []models.PlayerSeasonTotals, n int) []models.PlayerSeasonTotals {
	if n <= 0 {
		n = DefaultTopN
	}

	ranked := make([]models.PlayerSeasonTotals, len(totals))
	copy(ranked, totals)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].PointsPerGame != ranked[j].PointsPerGame {
			return ranked[i].PointsPerGame > ranked[j].PointsPerGame
		}
		if ranked[i].TotalPoints != ranked[j].TotalPoints {
			return ranked[i].TotalPoints > ranked[j].TotalPoints
		}
		return ranked[i].PlayerName < ranked[j].PlayerName
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
