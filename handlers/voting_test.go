// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/statevote/models"
	"github.com/danielhkuo/statevote/testutil"
	"github.com/danielhkuo/statevote/voting"
)

func TestDashboard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, "dave", "TX", true)
	national := testutil.CreateOpenElection(t, db, "president", models.ElectionNational, "")
	testutil.CreateOpenElection(t, db, "tx-governor", models.ElectionState, "TX")
	testutil.CreateOpenElection(t, db, "ca-governor", models.ElectionState, "CA")
	testutil.CreateClosedElection(t, db, "old-race", models.ElectionNational, "")
	testutil.AddTestVoterRecord(t, db, userID, national)

	req := withUser(testutil.MakeRequest("GET", "/dashboard", nil, nil), userID)
	w := httptest.NewRecorder()
	handler.Dashboard(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DashboardResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Profile.UserID != userID {
		t.Errorf("Expected profile for %s, got %s", userID, resp.Profile.UserID)
	}
	if len(resp.EligibleElections) != 2 {
		t.Fatalf("Expected 2 eligible elections, got %d", len(resp.EligibleElections))
	}

	voted := map[string]bool{}
	for _, e := range resp.EligibleElections {
		voted[e.Election.Slug] = e.UserHasVoted
	}
	if v, ok := voted["president"]; !ok || !v {
		t.Error("Expected president to be listed as already voted")
	}
	if v, ok := voted["tx-governor"]; !ok || v {
		t.Error("Expected tx-governor to be listed as not yet voted")
	}
}

func TestDashboard_Unverified(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, "erin", "TX", false)
	testutil.CreateOpenElection(t, db, "president", models.ElectionNational, "")

	req := withUser(testutil.MakeRequest("GET", "/dashboard", nil, nil), userID)
	w := httptest.NewRecorder()
	handler.Dashboard(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DashboardResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.EligibleElections == nil || len(resp.EligibleElections) != 0 {
		t.Errorf("Expected an empty list for an unverified user, got %v", resp.EligibleElections)
	}
}

func TestGetBallot(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, "frank", "TX", true)
	electionID := testutil.CreateOpenElection(t, db, "president", models.ElectionNational, "")
	testutil.AddTestCandidate(t, db, electionID, "Smith")
	testutil.AddTestCandidate(t, db, electionID, "Jones")

	req := withUser(testutil.MakeRequest("GET", "/elections/president/ballot", nil, nil), userID)
	req.SetPathValue("slug", "president")
	w := httptest.NewRecorder()
	handler.GetBallot(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var ballot models.Ballot
	testutil.AssertJSON(t, w, &ballot)
	if len(ballot.Candidates) != 2 || ballot.Candidates[0].Name != "Smith" || ballot.Candidates[1].Name != "Jones" {
		t.Errorf("Expected candidates [Smith Jones] in position order, got %+v", ballot.Candidates)
	}

	t.Run("unknown election", func(t *testing.T) {
		req := withUser(testutil.MakeRequest("GET", "/elections/missing/ballot", nil, nil), userID)
		req.SetPathValue("slug", "missing")
		w := httptest.NewRecorder()
		handler.GetBallot(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestCastVote(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, "grace", "TX", true)
	electionID := testutil.CreateOpenElection(t, db, "tx-governor", models.ElectionState, "TX")
	candidateID := testutil.AddTestCandidate(t, db, electionID, "Smith")

	cast := func(body interface{}) *httptest.ResponseRecorder {
		req := withUser(testutil.MakeRequest("POST", "/elections/tx-governor/vote", body, nil), userID)
		req.SetPathValue("slug", "tx-governor")
		w := httptest.NewRecorder()
		handler.CastVote(w, req)
		return w
	}

	w := cast(models.CastVoteRequest{CandidateID: candidateID})
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CastVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.CandidateName != "Smith" {
		t.Errorf("Expected candidate_name 'Smith', got '%s'", resp.CandidateName)
	}
	if resp.Message != "Your vote for Smith has been cast!" {
		t.Errorf("Unexpected message: %s", resp.Message)
	}

	// Second attempt is rejected and writes nothing
	w = cast(models.CastVoteRequest{CandidateID: candidateID})
	testutil.AssertStatus(t, w, http.StatusConflict)

	var errResp models.ErrorResponse
	testutil.AssertJSON(t, w, &errResp)
	if errResp.Code != voting.CodeAlreadyVoted {
		t.Errorf("Expected code %s, got %s", voting.CodeAlreadyVoted, errResp.Code)
	}

	if n := testutil.CountRows(t, db, "vote", electionID); n != 1 {
		t.Errorf("Expected 1 vote, got %d", n)
	}
	if n := testutil.CountRows(t, db, "voter_record", electionID); n != 1 {
		t.Errorf("Expected 1 voter record, got %d", n)
	}
}

func TestCastVote_Rejections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg)

	verified := testutil.CreateTestUser(t, db, "henry", "TX", true)
	unverified := testutil.CreateTestUser(t, db, "irene", "TX", false)

	open := testutil.CreateOpenElection(t, db, "open-race", models.ElectionNational, "")
	openCandidate := testutil.AddTestCandidate(t, db, open, "Lee")
	closed := testutil.CreateClosedElection(t, db, "closed-race", models.ElectionNational, "")
	closedCandidate := testutil.AddTestCandidate(t, db, closed, "Old")
	testutil.CreateOpenElection(t, db, "ca-race", models.ElectionState, "CA")
	other := testutil.CreateOpenElection(t, db, "other-race", models.ElectionNational, "")
	foreignCandidate := testutil.AddTestCandidate(t, db, other, "Elsewhere")

	testCases := []struct {
		name           string
		userID         string
		slug           string
		body           interface{}
		expectedStatus int
		expectedCode   string
	}{
		{"unknown election", verified, "missing", models.CastVoteRequest{CandidateID: openCandidate}, http.StatusNotFound, voting.CodeNotFound},
		{"unverified user", unverified, "open-race", models.CastVoteRequest{CandidateID: openCandidate}, http.StatusForbidden, voting.CodeNotVerified},
		{"closed election", verified, "closed-race", models.CastVoteRequest{CandidateID: closedCandidate}, http.StatusConflict, voting.CodeNotActive},
		{"other jurisdiction", verified, "ca-race", models.CastVoteRequest{CandidateID: openCandidate}, http.StatusForbidden, voting.CodeNotEligible},
		{"candidate from another election", verified, "open-race", models.CastVoteRequest{CandidateID: foreignCandidate}, http.StatusUnprocessableEntity, voting.CodeInvalidSelection},
		{"malformed candidate id", verified, "open-race", models.CastVoteRequest{CandidateID: "not-a-uuid"}, http.StatusUnprocessableEntity, voting.CodeInvalidSelection},
		{"empty body", verified, "open-race", `{}`, http.StatusUnprocessableEntity, voting.CodeInvalidSelection},
		{"malformed JSON", verified, "open-race", `{"candidate_id":`, http.StatusUnprocessableEntity, voting.CodeInvalidSelection},
		{"malformed body on unknown election", verified, "missing", `{}`, http.StatusNotFound, voting.CodeNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := withUser(testutil.MakeRequest("POST", "/elections/"+tc.slug+"/vote", tc.body, nil), tc.userID)
			req.SetPathValue("slug", tc.slug)
			w := httptest.NewRecorder()
			handler.CastVote(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Code != tc.expectedCode {
				t.Errorf("Expected code %s, got %s", tc.expectedCode, resp.Code)
			}
		})
	}

	if n := testutil.CountRows(t, db, "vote", ""); n != 0 {
		t.Errorf("Expected no votes after rejected casts, got %d", n)
	}
	if n := testutil.CountRows(t, db, "voter_record", ""); n != 0 {
		t.Errorf("Expected no voter records after rejected casts, got %d", n)
	}
}
