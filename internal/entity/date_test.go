package entity

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateOnlyJSONRoundTrip(t *testing.T) {
	d := NewDateOnly(time.Date(2025, time.March, 14, 17, 30, 0, 0, time.Local))

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(raw) != `"2025-03-14"` {
		t.Errorf("Marshal = %s, want %q", raw, "2025-03-14")
	}

	var back DateOnly
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if back.String() != "2025-03-14" {
		t.Errorf("round trip = %s, want 2025-03-14", back.String())
	}
}

func TestDateOnlyUnmarshalRejectsBadFormat(t *testing.T) {
	var d DateOnly
	if err := json.Unmarshal([]byte(`"14-03-2025"`), &d); err == nil {
		t.Error("Unmarshal accepted DD-MM-YYYY, want error")
	}
}

func TestDateOnlyUnmarshalNull(t *testing.T) {
	var d DateOnly
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("Unmarshal null error = %v", err)
	}
	if !d.IsZero() {
		t.Error("null should produce zero date")
	}
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly
	if err := d.Scan(time.Date(2024, time.December, 1, 13, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan time.Time error = %v", err)
	}
	if d.String() != "2024-12-01" {
		t.Errorf("Scan = %s, want 2024-12-01", d.String())
	}

	if err := d.Scan("2023-01-31"); err != nil {
		t.Fatalf("Scan string error = %v", err)
	}
	if d.String() != "2023-01-31" {
		t.Errorf("Scan = %s, want 2023-01-31", d.String())
	}

	if err := d.Scan(42); err == nil {
		t.Error("Scan accepted int, want error")
	}
}
