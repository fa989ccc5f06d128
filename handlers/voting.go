// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/statevote/cliparse"
	"github.com/danielhkuo/statevote/middleware"
	"github.com/danielhkuo/statevote/models"
	"github.com/danielhkuo/statevote/voting"
)

type VotingHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	engine *voting.Engine
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg, engine: voting.NewEngine(db)}
}

// Dashboard handles GET /dashboard
func (h *VotingHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	profile, err := h.engine.Profile(r.Context(), userID)
	if err != nil {
		writeEngineError(w, "load profile", err)
		return
	}

	eligible, err := h.engine.ComputeEligibility(r.Context(), userID, time.Now())
	if err != nil {
		writeEngineError(w, "compute eligibility", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DashboardResponse{
		Profile:           profile,
		EligibleElections: eligible,
	})
}

// GetBallot handles GET /elections/{slug}/ballot
func (h *VotingHandler) GetBallot(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	ballot, err := h.engine.PrepareBallot(r.Context(), userID, r.PathValue("slug"), time.Now())
	if err != nil {
		writeEngineError(w, "prepare ballot", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ballot)
}

// CastVote handles POST /elections/{slug}/vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	// A body that fails validation carries no candidate. The engine still
	// runs its election and voter checks first, then rejects the selection.
	var req models.CastVoteRequest
	if err := middleware.ParseValidatedJSON(r, castVoteSchema, &req); err != nil {
		slog.Debug("vote body rejected", "error", err)
		req.CandidateID = ""
	}

	result, err := h.engine.CastVote(r.Context(), userID, r.PathValue("slug"), req.CandidateID, time.Now())
	if err != nil {
		writeEngineError(w, "cast vote", err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		CandidateName: result.CandidateName,
		Message:       result.Message,
	})
}
