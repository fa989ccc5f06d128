// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/statevote/auth"
	"github.com/danielhkuo/statevote/cliparse"
	"github.com/danielhkuo/statevote/db"
	"github.com/danielhkuo/statevote/middleware"
	"github.com/danielhkuo/statevote/models"
	"github.com/danielhkuo/statevote/voting"
)

// AdminHandler maintains elections, candidates and voter verification.
// Every route is behind middleware.RequireAdmin.
type AdminHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	engine *voting.Engine
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg, engine: voting.NewEngine(db)}
}

// CreateElection handles POST /admin/elections
func (h *AdminHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateElectionRequest
	if err := middleware.ParseValidatedJSON(r, createElectionSchema, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	election := models.Election{
		ID:           auth.NewID(),
		Slug:         strings.TrimSpace(req.Slug),
		Title:        strings.TrimSpace(req.Title),
		ElectionType: req.ElectionType,
		StartTime:    req.StartTime.UTC(),
		EndTime:      req.EndTime.UTC(),
		CreatedAt:    time.Now().UTC(),
	}
	// A NATIONAL election's state is ignored and stored as NULL
	if req.ElectionType == models.ElectionState {
		state := strings.ToUpper(strings.TrimSpace(req.State))
		election.State = &state
	}

	if err := election.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.db.ExecContext(r.Context(), `
		INSERT INTO election (id, slug, title, election_type, state, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, election.ID, election.Slug, election.Title, election.ElectionType, election.State,
		election.StartTime, election.EndTime, election.CreatedAt)
	if db.IsUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusConflict, "An election with this slug already exists")
		return
	}
	if err != nil {
		slog.Error("failed to insert election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create election")
		return
	}

	slog.Info("election created", "election_id", election.ID, "slug", election.Slug, "type", election.ElectionType)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{
		ElectionID: election.ID,
		Slug:       election.Slug,
	})
}

// AddCandidate handles POST /admin/elections/{slug}/candidates
// Candidates can only be added before the election opens, so the
// positions results rely on never change once voting starts.
func (h *AdminHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	var req models.AddCandidateRequest
	if err := middleware.ParseValidatedJSON(r, addCandidateSchema, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx := r.Context()
	election, err := h.engine.Election(ctx, r.PathValue("slug"))
	if err != nil {
		writeEngineError(w, "load election", err)
		return
	}

	if !time.Now().Before(election.StartTime) {
		middleware.ErrorResponse(w, http.StatusConflict, "Candidates can only be added before the election starts")
		return
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add candidate")
		return
	}
	defer tx.Rollback()

	var position int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position), 0) FROM candidate WHERE election_id = $1
	`, election.ID).Scan(&position)
	if err != nil {
		slog.Error("failed to query candidate position", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add candidate")
		return
	}
	position++

	candidateID := auth.NewID()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO candidate (id, election_id, name, position)
		VALUES ($1, $2, $3, $4)
	`, candidateID, election.ID, name, position)
	if err == nil {
		err = tx.Commit()
	}
	if db.IsUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusConflict, "Another candidate was added concurrently, please retry")
		return
	}
	if err != nil {
		slog.Error("failed to insert candidate", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add candidate")
		return
	}

	slog.Info("candidate added", "election", election.Slug, "candidate_id", candidateID, "position", position)

	middleware.JSONResponse(w, http.StatusCreated, models.AddCandidateResponse{
		CandidateID: candidateID,
		Position:    position,
	})
}

// VerifyUser handles POST /admin/users/{id}/verify
func (h *AdminHandler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "user id is required")
		return
	}

	var req models.VerifyUserRequest
	if err := middleware.ParseValidatedJSON(r, verifyUserSchema, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.db.ExecContext(r.Context(), `
		UPDATE user_profile SET is_verified = $1 WHERE user_id = $2
	`, req.Verified, userID)
	if err != nil {
		slog.Error("failed to update profile", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to verify user")
		return
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	slog.Info("user verification changed", "user_id", userID, "verified", req.Verified)

	profile, err := h.engine.Profile(r.Context(), userID)
	if err != nil {
		writeEngineError(w, "load profile", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}
