package models

// GameLogRow is one player's stat line for a single game, as returned by
// the game log provider. Rows are immutable inputs to the pipeline; the
// provider is responsible for mapping absent or null numeric fields to zero.
type GameLogRow struct {
	PlayerName string `json:"player_name"`
	Points     int64  `json:"pts"`
	FGM        int64  `json:"fgm"`
	FG3M       int64  `json:"fg3m"`
	FTM        int64  `json:"ftm"`
}

// Category is one of the three mutually exclusive scoring buckets that
// partition a player's total points.
type Category string

const (
	CategoryTwoPoint   Category = "2PT"
	CategoryThreePoint Category = "3PT"
	CategoryFreeThrow  Category = "FT"
)

// Categories lists the buckets in the stable order used for every
// unpivoted table, so downstream renderers get a deterministic
// stacking order.
var Categories = [3]Category{CategoryTwoPoint, CategoryThreePoint, CategoryFreeThrow}
