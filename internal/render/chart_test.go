package render

import (
	"strings"
	"testing"

	"github.com/hooplab/scoring-api/internal/models"
)

func testBreakdowns() []models.ScoringBreakdown {
	return []models.ScoringBreakdown{
		{
			PlayerSeasonTotals: models.PlayerSeasonTotals{PlayerName: "A. Carver", TotalPoints: 2000, GamesPlayed: 78, PointsPerGame: 25.6},
			Points2PT:          1400, Points3PT: 300, PointsFT: 300,
			Share2PT: 0.70, Share3PT: 0.15, ShareFT: 0.15, SharesDefined: true,
		},
		{
			PlayerSeasonTotals: models.PlayerSeasonTotals{PlayerName: "B. Okafor", TotalPoints: 1500, GamesPlayed: 80, PointsPerGame: 18.8},
			Points2PT:          1200, Points3PT: 0, PointsFT: 300,
			Share2PT: 0.80, Share3PT: 0, ShareFT: 0.20, SharesDefined: true,
		},
	}
}

func TestPointsChartSVG(t *testing.T) {
	svg := PointsChartSVG(DefaultTheme(), "Points by Category", testBreakdowns())

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	for _, want := range []string{"Points by Category", "A. Carver", "B. Okafor", "2000", "1500"} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	// Legend for all three categories
	for _, cat := range models.Categories {
		if !strings.Contains(svg, ">"+string(cat)+"</text>") {
			t.Errorf("SVG missing legend entry for %s", cat)
		}
	}
}

func TestSharesChartSVG_NoNaNForZeroTotal(t *testing.T) {
	breakdowns := append(testBreakdowns(), models.ScoringBreakdown{
		PlayerSeasonTotals: models.PlayerSeasonTotals{PlayerName: "Bench"},
	})

	svg := SharesChartSVG(DefaultTheme(), "Share of Points", breakdowns)

	for _, bad := range []string{"NaN", "Inf"} {
		if strings.Contains(svg, bad) {
			t.Errorf("SVG contains %s", bad)
		}
	}
	if !strings.Contains(svg, "n/a") {
		t.Error("expected n/a label for undefined shares")
	}
}

func TestChartEscapesNames(t *testing.T) {
	breakdowns := []models.ScoringBreakdown{
		{
			PlayerSeasonTotals: models.PlayerSeasonTotals{PlayerName: `O'Neal <Jr> & Co`, TotalPoints: 10},
			Points2PT:          10, SharesDefined: true, Share2PT: 1,
		},
	}

	svg := PointsChartSVG(DefaultTheme(), "t", breakdowns)
	if strings.Contains(svg, "<Jr>") {
		t.Error("player name not escaped")
	}
	if !strings.Contains(svg, "&lt;Jr&gt; &amp; Co") {
		t.Error("expected escaped player name")
	}
}

func TestCommentary(t *testing.T) {
	lines := Commentary(2024, testBreakdowns())

	if len(lines) == 0 {
		t.Fatal("expected commentary lines")
	}
	if !strings.Contains(lines[0], "A. Carver") || !strings.Contains(lines[0], "25.6") {
		t.Errorf("leader line wrong: %s", lines[0])
	}

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "perimeter") {
		t.Error("expected a three-point reliance line")
	}
}

func TestCommentary_Empty(t *testing.T) {
	if lines := Commentary(2024, nil); lines != nil {
		t.Errorf("expected nil commentary for empty input, got %v", lines)
	}
}
