// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
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

type AccountHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	engine *voting.Engine
}

func NewAccountHandler(db *sql.DB, cfg cliparse.Config) *AccountHandler {
	return &AccountHandler{db: db, cfg: cfg, engine: voting.NewEngine(db)}
}

// Register handles POST /register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseValidatedJSON(r, registerSchema, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	if req.Age < models.MinVotingAge {
		middleware.ErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("You must be at least %d years old to register", models.MinVotingAge))
		return
	}
	if !models.ValidState(req.State) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "state must be a US state or DC code")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if errors.Is(err, auth.ErrPasswordTooShort) || errors.Is(err, auth.ErrPasswordTooLong) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	userID := auth.NewID()
	ctx := r.Context()

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO app_user (id, username, email, password_hash, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, userID, req.Username, req.Email, hash, req.FirstName, req.LastName, time.Now().UTC())
	if db.IsUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusConflict, "Username or email is already registered")
		return
	}
	if err != nil {
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	// New profiles start unverified; only an admin can verify them
	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_profile (user_id, age, state, is_verified)
		VALUES ($1, $2, $3, $4)
	`, userID, req.Age, req.State, false)
	if err != nil {
		slog.Error("failed to insert profile", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	if err := tx.Commit(); err != nil {
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "Username or email is already registered")
			return
		}
		slog.Error("failed to commit registration", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	slog.Info("user registered", "user_id", userID, "state", req.State)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		UserID:  userID,
		Message: "Registration successful. Your account must be verified before you can vote.",
	})
}

// Login handles POST /login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseValidatedJSON(r, loginSchema, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var userID, hash string
	err := h.db.QueryRowContext(r.Context(), `
		SELECT id, password_hash FROM app_user WHERE username = $1
	`, req.Username).Scan(&userID, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(hash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, expiresAt, err := auth.IssueToken(userID, h.cfg.JWTSecret, h.cfg.TokenTTL, time.Now())
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Me handles GET /me
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
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

	middleware.JSONResponse(w, http.StatusOK, profile)
}
