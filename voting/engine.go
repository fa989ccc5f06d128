// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"

	"github.com/danielhkuo/statevote/models"
)

// Engine evaluates eligibility, casts votes and aggregates results against
// a single SQL store. It holds no state of its own; every operation takes
// the acting user and the current time explicitly.
type Engine struct {
	db *sql.DB
}

func NewEngine(db *sql.DB) *Engine {
	return &Engine{db: db}
}

// Election looks up an election by slug.
func (e *Engine) Election(ctx context.Context, slug string) (models.Election, error) {
	return electionBySlug(ctx, e.db, slug)
}
