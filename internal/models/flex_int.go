package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexInt is an int64 that unmarshals from a JSON number, a numeric
// string, or null. Stats providers are inconsistent about this: some
// serialize every box score column as a quoted string, and DNP games
// come back with null counters. Null and empty string decode to zero.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	// Fast path: native number
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt(n)
		return nil
	}

	// Native float, e.g. 28.0: truncate
	var nf float64
	if err := json.Unmarshal(data, &nf); err == nil {
		*f = FlexInt(nf)
		return nil
	}

	// Quoted value, coerce. ParseFloat handles "28.0" style strings.
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flex int: %s", string(data))
	}
	if s == "" {
		*f = 0
		return nil
	}
	fl, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("flex int: %q: %w", s, err)
	}
	*f = FlexInt(fl)
	return nil
}

func (f FlexInt) Int64() int64 { return int64(f) }
