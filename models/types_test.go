package models

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestElectionIsOpen(t *testing.T) {
	start := time.Date(2025, 11, 4, 8, 0, 0, 0, time.UTC)
	end := start.Add(12 * time.Hour)
	e := Election{StartTime: start, EndTime: end}

	tests := []struct {
		name       string
		now        time.Time
		wantOpen   bool
		wantClosed bool
	}{
		{"before start", start.Add(-time.Second), false, false},
		{"at start", start, true, false},
		{"mid window", start.Add(time.Hour), true, false},
		{"at end", end, true, true},
		{"after end", end.Add(time.Second), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.IsOpen(tt.now); got != tt.wantOpen {
				t.Errorf("IsOpen() = %v, want %v", got, tt.wantOpen)
			}
			if got := e.IsClosed(tt.now); got != tt.wantClosed {
				t.Errorf("IsClosed() = %v, want %v", got, tt.wantClosed)
			}
		})
	}
}

func TestElectionAdmits(t *testing.T) {
	tx := UserProfile{State: "TX"}
	ca := UserProfile{State: "CA"}

	national := Election{ElectionType: ElectionNational, State: strPtr("TX")}
	texas := Election{ElectionType: ElectionState, State: strPtr("TX")}
	broken := Election{ElectionType: ElectionState}

	if !national.Admits(tx) || !national.Admits(ca) {
		t.Error("NATIONAL elections should admit every state, ignoring their own state field")
	}
	if !texas.Admits(tx) {
		t.Error("STATE election should admit matching state")
	}
	if texas.Admits(ca) {
		t.Error("STATE election should not admit other states")
	}
	if broken.Admits(tx) {
		t.Error("STATE election without a state should admit nobody")
	}
}

func TestElectionValidate(t *testing.T) {
	start := time.Date(2025, 11, 4, 8, 0, 0, 0, time.UTC)
	valid := Election{
		Slug:         "city-council-2025",
		Title:        "City Council",
		ElectionType: ElectionState,
		State:        strPtr("TX"),
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
	}

	tests := []struct {
		name    string
		mutate  func(e *Election)
		wantErr bool
	}{
		{"valid state election", func(e *Election) {}, false},
		{"valid national election", func(e *Election) { e.ElectionType = ElectionNational; e.State = nil }, false},
		{"bad slug", func(e *Election) { e.Slug = "City Council" }, true},
		{"trailing hyphen", func(e *Election) { e.Slug = "council-" }, true},
		{"missing title", func(e *Election) { e.Title = "" }, true},
		{"unknown type", func(e *Election) { e.ElectionType = "LOCAL" }, true},
		{"state election without state", func(e *Election) { e.State = nil }, true},
		{"unknown state", func(e *Election) { e.State = strPtr("XX") }, true},
		{"end before start", func(e *Election) { e.EndTime = e.StartTime.Add(-time.Hour) }, true},
		{"empty window", func(e *Election) { e.EndTime = e.StartTime }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			err := e.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidState(t *testing.T) {
	if len(States) != 51 {
		t.Errorf("expected 51 jurisdictions, got %d", len(States))
	}
	for _, code := range []string{"TX", "CA", "DC"} {
		if !ValidState(code) {
			t.Errorf("expected %s to be valid", code)
		}
	}
	for _, code := range []string{"", "tx", "PR", "XX"} {
		if ValidState(code) {
			t.Errorf("expected %q to be invalid", code)
		}
	}
}
