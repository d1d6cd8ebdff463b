// chartgen is the one-shot report generator: it fetches a season's
// game logs, runs the scoring breakdown pipeline, and writes the two
// charts plus commentary to an output directory.
//
//	chartgen -provider http://localhost:9090 -season 2024 -top 10 -out out/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/hooplab/scoring-api/internal/logic"
	"github.com/hooplab/scoring-api/internal/provider"
	"github.com/hooplab/scoring-api/internal/render"
)

func main() {
	var (
		providerURL = flag.String("provider", "http://localhost:9090", "game log provider base URL")
		season      = flag.Int("season", 2024, "season year")
		top         = flag.Int("top", logic.DefaultTopN, "number of players")
		outDir      = flag.String("out", "out", "output directory")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := provider.NewClient(*providerURL, 4, logger)
	svc := logic.NewReportService(client, logger)

	report, err := svc.SeasonReport(ctx, *season, *top)
	if err != nil {
		log.Fatalf("report: %v", err)
	}
	report.Commentary = render.Commentary(report.Season, report.Players)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	theme := render.DefaultTheme()

	pointsTitle := fmt.Sprintf("Top %d Scorers - Points by Category (%d)", report.TopN, report.Season)
	save(*outDir, "points.svg", render.PointsChartSVG(theme, pointsTitle, report.Players))

	sharesTitle := fmt.Sprintf("Top %d Scorers - Share of Points (%d)", report.TopN, report.Season)
	save(*outDir, "shares.svg", render.SharesChartSVG(theme, sharesTitle, report.Players))

	commentary := ""
	for _, line := range report.Commentary {
		commentary += line + "\n"
	}
	save(*outDir, "commentary.txt", commentary)

	fmt.Printf("Report %s written to %s\n", report.ReportID, *outDir)
}

func save(dir, name, content string) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated: %s\n", path)
}
