package models

import (
	"encoding/json"
	"testing"
)

func TestFlexInt_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    int64
		wantErr bool
	}{
		{"native number", `{"pts":28}`, 28, false},
		{"quoted integer", `{"pts":"28"}`, 28, false},
		{"quoted float", `{"pts":"28.0"}`, 28, false},
		{"null", `{"pts":null}`, 0, false},
		{"missing", `{}`, 0, false},
		{"empty string", `{"pts":""}`, 0, false},
		{"garbage string", `{"pts":"abc"}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Points FlexInt `json:"pts"`
			}
			err := json.Unmarshal([]byte(tt.json), &out)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.json)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if out.Points.Int64() != tt.want {
				t.Errorf("expected %d, got %d", tt.want, out.Points.Int64())
			}
		})
	}
}
