package logic

import (
	"fmt"

	"github.com/hooplab/scoring-api/internal/models"
)

// ComputeBreakdowns attributes each selected player's total points to
// the three scoring categories, working from that player's raw rows:
//
//	3PT points = three-point makes x 3
//	2PT points = (all makes - three-point makes) x 2
//	FT  points = free throws made
//
// The three categories must reconcile exactly with the player's total
// points; a mismatch means the provider sent inconsistent box scores
// and fails the run with DataIntegrityError. Shares are category
// points over total points. A player with zero total points gets the
// documented sentinel: all shares zero and SharesDefined false.
//
// Output order follows the selected slice, i.e. the ranking from
// SelectTopN is preserved.
func ComputeBreakdowns(rows []models.GameLogRow, selected []models.PlayerSeasonTotals) ([]models.ScoringBreakdown, error) {
	type makes struct {
		fgm, fg3m, ftm int64
	}

	byPlayer := make(map[string]*makes, len(selected))
	for _, t := range selected {
		byPlayer[t.PlayerName] = &makes{}
	}

	for i := range rows {
		row := &rows[i]
		m, ok := byPlayer[row.PlayerName]
		if !ok {
			continue // not in the top-N selection
		}
		if err := checkRow(row); err != nil {
			return nil, err
		}
		m.fgm += row.FGM
		m.fg3m += row.FG3M
		m.ftm += row.FTM
	}

	breakdowns := make([]models.ScoringBreakdown, 0, len(selected))
	for _, t := range selected {
		m := byPlayer[t.PlayerName]

		b := models.ScoringBreakdown{
			PlayerSeasonTotals: t,
			Points3PT:          m.fg3m * 3,
			Points2PT:          (m.fgm - m.fg3m) * 2,
			PointsFT:           m.ftm,
		}

		if sum := b.Points2PT + b.Points3PT + b.PointsFT; sum != t.TotalPoints {
			return nil, &DataIntegrityError{
				PlayerName: t.PlayerName,
				Reason:     fmt.Sprintf("category points (%d) do not sum to total points (%d)", sum, t.TotalPoints),
			}
		}

		if t.TotalPoints > 0 {
			total := float64(t.TotalPoints)
			b.Share2PT = float64(b.Points2PT) / total
			b.Share3PT = float64(b.Points3PT) / total
			b.ShareFT = float64(b.PointsFT) / total
			b.SharesDefined = true
		}

		breakdowns = append(breakdowns, b)
	}

	return breakdowns, nil
}
