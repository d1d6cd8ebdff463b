package render

import (
	"fmt"

	"github.com/hooplab/scoring-api/internal/models"
)

// Commentary produces the narrative lines that accompany the charts:
// the scoring leader, the most three-point-reliant and most
// free-throw-reliant players among the selection, and the group's
// average three-point share. Players with undefined shares are skipped
// for the share-based lines.
func Commentary(season int, breakdowns []models.ScoringBreakdown) []string {
	if len(breakdowns) == 0 {
		return nil
	}

	lines := make([]string, 0, 4)

	leader := breakdowns[0]
	lines = append(lines, fmt.Sprintf(
		"%s led the %d season's top scorers at %.1f points per game (%d total points over %d games).",
		leader.PlayerName, season, leader.PointsPerGame, leader.TotalPoints, leader.GamesPlayed))

	var (
		three      *models.ScoringBreakdown
		ft         *models.ScoringBreakdown
		shareSum   float64
		shareCount int
	)
	for i := range breakdowns {
		b := &breakdowns[i]
		if !b.SharesDefined {
			continue
		}
		shareSum += b.Share3PT
		shareCount++
		if three == nil || b.Share3PT > three.Share3PT {
			three = b
		}
		if ft == nil || b.ShareFT > ft.ShareFT {
			ft = b
		}
	}

	if three != nil {
		lines = append(lines, fmt.Sprintf(
			"%s was the most perimeter-reliant of the group, taking %.0f%% of their points from three.",
			three.PlayerName, three.Share3PT*100))
	}
	if ft != nil {
		lines = append(lines, fmt.Sprintf(
			"%s did the most damage at the line, with free throws accounting for %.0f%% of their scoring.",
			ft.PlayerName, ft.ShareFT*100))
	}
	if shareCount > 0 {
		lines = append(lines, fmt.Sprintf(
			"Across the top %d, three-pointers supplied %.0f%% of all scoring on average.",
			len(breakdowns), shareSum/float64(shareCount)*100))
	}

	return lines
}
