// mockprovider is a local stand-in for the game log provider. It serves
// GET /v1/gamelogs?season=YYYY&page=N with a deterministic synthetic
// roster so reportd and chartgen can be exercised without network
// access to a real stats source.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strconv"
)

const pageSize = 200

type row struct {
	PlayerName string `json:"player_name"`
	Pts        int64  `json:"pts"`
	Fgm        int64  `json:"fgm"`
	Fg3m       int64  `json:"fg3m"`
	Ftm        int64  `json:"ftm"`
}

type page struct {
	Season     int   `json:"season"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	Rows       []row `json:"rows"`
}

var roster = []struct {
	name  string
	pace  float64 // scoring appetite
	arc   float64 // fraction of makes from three
	games int
}{
	{"A. Carver", 1.00, 0.45, 78},
	{"B. Okafor", 0.95, 0.10, 80},
	{"C. Laine", 0.90, 0.38, 74},
	{"D. Whitfield", 0.85, 0.30, 81},
	{"E. Moroz", 0.80, 0.50, 69},
	{"F. Castellanos", 0.75, 0.22, 77},
	{"G. Abara", 0.72, 0.35, 82},
	{"H. Lindqvist", 0.68, 0.41, 70},
	{"I. Dupree", 0.64, 0.15, 79},
	{"J. Kovac", 0.60, 0.33, 75},
	{"K. Ashby", 0.55, 0.28, 66},
	{"L. Ferreira", 0.50, 0.44, 73},
	{"M. Tanaka", 0.45, 0.36, 80},
	{"N. Brandt", 0.40, 0.20, 71},
	{"O. Ilunga", 0.35, 0.12, 68},
}

// seasonRows generates the full season deterministically from the
// season number, so repeated fetches and pagination stay consistent.
func seasonRows(season int) []row {
	rng := rand.New(rand.NewSource(int64(season)))
	var rows []row
	for _, p := range roster {
		for g := 0; g < p.games; g++ {
			fgm := int64(float64(4+rng.Intn(9)) * p.pace)
			fg3m := int64(float64(fgm) * p.arc)
			ftm := int64(rng.Intn(8))
			pts := fg3m*3 + (fgm-fg3m)*2 + ftm
			rows = append(rows, row{
				PlayerName: p.name,
				Pts:        pts,
				Fgm:        fgm,
				Fg3m:       fg3m,
				Ftm:        ftm,
			})
		}
	}
	return rows
}

func main() {
	port := flag.Int("port", 9090, "listen port")
	flag.Parse()

	http.HandleFunc("/v1/gamelogs", func(w http.ResponseWriter, r *http.Request) {
		season, err := strconv.Atoi(r.URL.Query().Get("season"))
		if err != nil {
			http.Error(w, "bad season", http.StatusBadRequest)
			return
		}
		pageNum, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if pageNum < 1 {
			pageNum = 1
		}

		all := seasonRows(season)
		totalPages := (len(all) + pageSize - 1) / pageSize

		start := (pageNum - 1) * pageSize
		if start > len(all) {
			start = len(all)
		}
		end := start + pageSize
		if end > len(all) {
			end = len(all)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(page{
			Season:     season,
			Page:       pageNum,
			TotalPages: totalPages,
			Rows:       all[start:end],
		})
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("mock provider listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, nil))
}
