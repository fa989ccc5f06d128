// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/statevote/models"
	"github.com/danielhkuo/statevote/testutil"
)

func TestHome(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(db, cfg)

	// 2 verified users x 2 elections = 4 possible votes, 1 cast
	alice := testutil.CreateTestUser(t, db, "alice", "TX", true)
	testutil.CreateTestUser(t, db, "bob", "TX", true)
	testutil.CreateTestUser(t, db, "carol", "TX", false)
	first := testutil.CreateOpenElection(t, db, "first", models.ElectionNational, "")
	testutil.CreateClosedElection(t, db, "second", models.ElectionNational, "")
	testutil.AddTestVoterRecord(t, db, alice, first)

	req := testutil.MakeRequest("GET", "/", nil, nil)
	w := httptest.NewRecorder()
	handler.Home(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HomeResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.TurnoutPercentage != 25.0 {
		t.Errorf("Expected turnout 25.0, got %v", resp.TurnoutPercentage)
	}
}

func TestHome_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(db, cfg)

	req := testutil.MakeRequest("GET", "/", nil, nil)
	w := httptest.NewRecorder()
	handler.Home(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HomeResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.TurnoutPercentage != 0 {
		t.Errorf("Expected turnout 0, got %v", resp.TurnoutPercentage)
	}
}

func TestGetResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(db, cfg)

	closed := testutil.CreateClosedElection(t, db, "tx-senate", models.ElectionState, "TX")
	smith := testutil.AddTestCandidate(t, db, closed, "Smith")
	jones := testutil.AddTestCandidate(t, db, closed, "Jones")
	testutil.AddTestVotes(t, db, closed, smith, 2)
	testutil.AddTestVotes(t, db, closed, jones, 4)

	open := testutil.CreateOpenElection(t, db, "president", models.ElectionNational, "")
	lee := testutil.AddTestCandidate(t, db, open, "Lee")
	testutil.AddTestVotes(t, db, open, lee, 3)

	req := testutil.MakeRequest("GET", "/results", nil, nil)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var results []models.ElectionResult
	testutil.AssertJSON(t, w, &results)
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	// Ordered by end time: the closed election ended first
	closedResult, openResult := results[0], results[1]

	if closedResult.Status != models.StatusClosed {
		t.Errorf("Expected closed status, got %s", closedResult.Status)
	}
	if closedResult.Winner == nil || closedResult.Winner.Name != "Jones" {
		t.Errorf("Expected Jones to win, got %+v", closedResult.Winner)
	}
	if closedResult.TotalVotes != 6 {
		t.Errorf("Expected 6 total votes, got %d", closedResult.TotalVotes)
	}
	if !strings.HasPrefix(closedResult.TimeLabel, "closed ") {
		t.Errorf("Expected a 'closed ...' time label, got %q", closedResult.TimeLabel)
	}

	if openResult.Status != models.StatusActive {
		t.Errorf("Expected active status, got %s", openResult.Status)
	}
	if openResult.Winner != nil || len(openResult.Ranking) != 0 || openResult.TotalVotes != 0 {
		t.Error("Active election must not expose a tally")
	}
}

func TestGetElectionResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(db, cfg)

	closed := testutil.CreateClosedElection(t, db, "tie-race", models.ElectionNational, "")
	a := testutil.AddTestCandidate(t, db, closed, "Adams")
	b := testutil.AddTestCandidate(t, db, closed, "Baker")
	testutil.AddTestVotes(t, db, closed, a, 3)
	testutil.AddTestVotes(t, db, closed, b, 3)

	req := testutil.MakeRequest("GET", "/results/tie-race", nil, nil)
	req.SetPathValue("slug", "tie-race")
	w := httptest.NewRecorder()
	handler.GetElectionResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var result models.ElectionResult
	testutil.AssertJSON(t, w, &result)
	if result.Winner == nil || result.Winner.Name != "Adams" {
		t.Errorf("Expected first maximum Adams as winner, got %+v", result.Winner)
	}
	if len(result.TiedWinners) != 2 {
		t.Errorf("Expected 2 tied winners, got %d", len(result.TiedWinners))
	}

	t.Run("unknown election", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/results/missing", nil, nil)
		req.SetPathValue("slug", "missing")
		w := httptest.NewRecorder()
		handler.GetElectionResults(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
