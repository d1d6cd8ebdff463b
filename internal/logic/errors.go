package logic

import (
	"errors"
	"fmt"
)

// ErrEmptyInput reports that a season produced no game log rows at all.
// Handlers map it to a not-found response rather than a server error.
var ErrEmptyInput = errors.New("no game log rows to aggregate")

// DataIntegrityError reports rows that fail internal consistency checks:
// negative counters, three-point makes exceeding total makes, or category
// points that do not reconcile with the reported total. It always means
// the provider sent corrupt data, never a bug in the caller's request.
type DataIntegrityError struct {
	PlayerName string
	Reason     string
}

func (e *DataIntegrityError) Error() string {
	if e.PlayerName == "" {
		return fmt.Sprintf("data integrity: %s", e.Reason)
	}
	return fmt.Sprintf("data integrity: player %q: %s", e.PlayerName, e.Reason)
}
