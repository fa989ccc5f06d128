// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/danielhkuo/statevote/cliparse"
	"github.com/danielhkuo/statevote/middleware"
	"github.com/danielhkuo/statevote/models"
	"github.com/danielhkuo/statevote/voting"
)

type ResultsHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	engine *voting.Engine
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg, engine: voting.NewEngine(db)}
}

// Home handles GET /
// Turnout is best effort and reads 0 when the store is unavailable.
func (h *ResultsHandler) Home(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HomeResponse{
		TurnoutPercentage: h.engine.ComputeTurnout(r.Context()),
	})
}

// GetResults handles GET /results
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.engine.ComputeResults(r.Context(), time.Now())
	if err != nil {
		writeEngineError(w, "compute results", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// GetElectionResults handles GET /results/{slug}
// Tallies stay hidden until the election's end time.
func (h *ResultsHandler) GetElectionResults(w http.ResponseWriter, r *http.Request) {
	result, err := h.engine.ElectionResults(r.Context(), r.PathValue("slug"), time.Now())
	if err != nil {
		writeEngineError(w, "compute election results", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}
