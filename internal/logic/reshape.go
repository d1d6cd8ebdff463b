package logic

import "github.com/hooplab/scoring-api/internal/models"

// Unpivot turns each wide breakdown row into exactly three long-form
// rows, one per category, always in the order 2PT, 3PT, FT. The stable
// category order guarantees a deterministic stacking order for the
// renderer; player order carries over from the input ranking.
func Unpivot(breakdowns []models.ScoringBreakdown) []models.LongFormRow {
	long := make([]models.LongFormRow, 0, len(breakdowns)*len(models.Categories))
	for _, b := range breakdowns {
		for _, cat := range models.Categories {
			long = append(long, models.LongFormRow{
				PlayerName: b.PlayerName,
				Category:   cat,
				Points:     categoryPoints(&b, cat),
			})
		}
	}
	return long
}

// PercentView recomputes, per player, each category's percent of the
// sum of that player's three category points. By construction this
// equals the shares ComputeBreakdowns produced; players whose category
// points sum to zero get zero percents, mirroring the share sentinel.
func PercentView(long []models.LongFormRow) []models.PercentRow {
	sums := make(map[string]int64)
	for _, r := range long {
		sums[r.PlayerName] += r.Points
	}

	out := make([]models.PercentRow, 0, len(long))
	for _, r := range long {
		p := models.PercentRow{PlayerName: r.PlayerName, Category: r.Category}
		if sum := sums[r.PlayerName]; sum > 0 {
			p.Percent = float64(r.Points) / float64(sum)
		}
		out = append(out, p)
	}
	return out
}

// WideBreakdown is a pivoted view of long-form rows: one row per
// player with the three category columns restored.
type WideBreakdown struct {
	PlayerName  string
	Points2PT   int64
	Points3PT   int64
	PointsFT    int64
	TotalPoints int64
}

// Pivot folds long-form rows back into wide form by player and
// category. Unpivot followed by Pivot reproduces the original
// breakdown numbers exactly; the round trip is checked in tests.
func Pivot(long []models.LongFormRow) []WideBreakdown {
	index := make(map[string]int)
	wide := make([]WideBreakdown, 0)

	for _, r := range long {
		i, ok := index[r.PlayerName]
		if !ok {
			i = len(wide)
			index[r.PlayerName] = i
			wide = append(wide, WideBreakdown{PlayerName: r.PlayerName})
		}
		switch r.Category {
		case models.CategoryTwoPoint:
			wide[i].Points2PT += r.Points
		case models.CategoryThreePoint:
			wide[i].Points3PT += r.Points
		case models.CategoryFreeThrow:
			wide[i].PointsFT += r.Points
		}
		wide[i].TotalPoints += r.Points
	}

	return wide
}

func categoryPoints(b *models.ScoringBreakdown, cat models.Category) int64 {
	switch cat {
	case models.CategoryTwoPoint:
		return b.Points2PT
	case models.CategoryThreePoint:
		return b.Points3PT
	case models.CategoryFreeThrow:
		return b.PointsFT
	}
	return 0
}
