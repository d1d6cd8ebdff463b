// Package render turns report tables into SVG bar charts and narrative
// commentary. It is a pure sink: it never mutates the tables and every
// call receives its style configuration explicitly via Theme.
package render

import (
	"fmt"
	"strings"

	"github.com/hooplab/scoring-api/internal/models"
)

// Theme carries all chart styling. There is no package-level style
// state; callers pass a Theme (usually DefaultTheme) into every render
// call.
type Theme struct {
	Width      int
	Height     int
	Padding    int
	Background string
	TextColor  string
	AxisColor  string
	FontFamily string
	// CategoryColors keys every scoring bucket to a fill color.
	CategoryColors map[models.Category]string
}

func DefaultTheme() Theme {
	return Theme{
		Width:      760,
		Height:     460,
		Padding:    60,
		Background: "#1a1a1a",
		TextColor:  "white",
		AxisColor:  "white",
		FontFamily: "Arial",
		CategoryColors: map[models.Category]string{
			models.CategoryTwoPoint:   "#4a90e2",
			models.CategoryThreePoint: "#e74c3c",
			models.CategoryFreeThrow:  "#f5a623",
		},
	}
}

// PointsChartSVG renders the absolute-volume chart: one stacked bar per
// player, in the ranking order of the input, segments stacked bottom-up
// in the stable category order 2PT, 3PT, FT.
func PointsChartSVG(theme Theme, title string, breakdowns []models.ScoringBreakdown) string {
	var maxTotal int64
	for _, b := range breakdowns {
		if b.TotalPoints > maxTotal {
			maxTotal = b.TotalPoints
		}
	}

	return stackedBars(theme, title, breakdowns, func(b *models.ScoringBreakdown, cat models.Category) float64 {
		if maxTotal == 0 {
			return 0
		}
		return float64(segmentPoints(b, cat)) / float64(maxTotal)
	}, func(b *models.ScoringBreakdown) string {
		return fmt.Sprintf("%d", b.TotalPoints)
	})
}

// SharesChartSVG renders the share-of-total chart: every bar spans the
// full plot height and its segments are the category shares. Players
// with undefined shares (zero total points) render as an empty slot.
func SharesChartSVG(theme Theme, title string, breakdowns []models.ScoringBreakdown) string {
	return stackedBars(theme, title, breakdowns, func(b *models.ScoringBreakdown, cat models.Category) float64 {
		if !b.SharesDefined {
			return 0
		}
		switch cat {
		case models.CategoryTwoPoint:
			return b.Share2PT
		case models.CategoryThreePoint:
			return b.Share3PT
		case models.CategoryFreeThrow:
			return b.ShareFT
		}
		return 0
	}, func(b *models.ScoringBreakdown) string {
		if !b.SharesDefined {
			return "n/a"
		}
		return fmt.Sprintf("%.0f%%", b.Share3PT*100)
	})
}

// stackedBars emits the shared SVG skeleton. segFrac returns each
// segment's height as a fraction of the plot height; topLabel is drawn
// above the bar.
func stackedBars(
	theme Theme,
	title string,
	breakdowns []models.ScoringBreakdown,
	segFrac func(*models.ScoringBreakdown, models.Category) float64,
	topLabel func(*models.ScoringBreakdown) string,
) string {
	w, h, pad := theme.Width, theme.Height, theme.Padding
	plotHeight := h - 2*pad

	barWidth := 0
	if len(breakdowns) > 0 {
		barWidth = (w - 2*pad) / len(breakdowns)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, w, h, w, h))

	sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s" />`, theme.Background))

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="30" fill="%s" font-family="%s" font-size="20" text-anchor="middle">%s</text>`,
		w/2, theme.TextColor, theme.FontFamily, escape(title)))

	// Legend, one swatch per category in stacking order
	for i, cat := range models.Categories {
		lx := w - pad - 150 + i*52
		sb.WriteString(fmt.Sprintf(`<rect x="%d" y="40" width="12" height="12" fill="%s" />`, lx, theme.CategoryColors[cat]))
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="50" fill="%s" font-family="%s" font-size="11">%s</text>`,
			lx+16, theme.TextColor, theme.FontFamily, cat))
	}

	for i := range breakdowns {
		b := &breakdowns[i]
		x := pad + i*barWidth
		y := float64(h - pad)

		// Stack bottom-up so 2PT sits on the axis
		for _, cat := range models.Categories {
			segH := segFrac(b, cat) * float64(plotHeight)
			if segH <= 0 {
				continue
			}
			y -= segH
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%.1f" width="%d" height="%.1f" fill="%s" />`,
				x+5, y, barWidth-10, segH, theme.CategoryColors[cat]))
		}

		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-family="%s" font-size="12" text-anchor="end" transform="rotate(-45 %d %d)">%s</text>`,
			x+barWidth/2, h-pad+20, theme.TextColor, theme.FontFamily, x+barWidth/2, h-pad+20, escape(b.PlayerName)))

		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%.1f" fill="%s" font-family="%s" font-size="10" text-anchor="middle">%s</text>`,
			x+barWidth/2, y-5, theme.TextColor, theme.FontFamily, topLabel(b)))
	}

	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2" />`,
		pad, h-pad, w-pad, h-pad, theme.AxisColor))

	sb.WriteString(`</svg>`)
	return sb.String()
}

func segmentPoints(b *models.ScoringBreakdown, cat models.Category) int64 {
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

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
