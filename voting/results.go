// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/statevote/models"
)

type candidateCount struct {
	candidate models.Candidate
	votes     int
}

// outcome is the aggregate of one closed election.
type outcome struct {
	ranking []models.CandidateTally
	winner  *models.Candidate
	tied    []models.Candidate
	total   int
}

// aggregate ranks counts, which must be in candidate position order.
//
// The ranking sorts by votes descending and keeps position order among
// equal counts. The winner is the first candidate to reach the running
// maximum in position order, so a tie at the top goes to the earliest
// position; every candidate sharing the top count is also listed in tied.
// With no votes at all there is no winner.
func aggregate(counts []candidateCount) outcome {
	var out outcome
	out.ranking = make([]models.CandidateTally, len(counts))

	best := -1
	for i, cc := range counts {
		out.total += cc.votes
		out.ranking[i] = models.CandidateTally{Candidate: cc.candidate, Votes: cc.votes}
		if cc.votes > best {
			best = cc.votes
			c := cc.candidate
			out.winner = &c
		}
	}

	sort.SliceStable(out.ranking, func(i, j int) bool {
		return out.ranking[i].Votes > out.ranking[j].Votes
	})
	for i := range out.ranking {
		out.ranking[i].Rank = i + 1
	}

	if out.total == 0 {
		out.winner = nil
		return out
	}

	for _, cc := range counts {
		if cc.votes == best {
			out.tied = append(out.tied, cc.candidate)
		}
	}
	if len(out.tied) < 2 {
		out.tied = nil
	}

	return out
}

func (e *Engine) resultFor(ctx context.Context, election models.Election, now time.Time) (models.ElectionResult, error) {
	if !election.IsClosed(now) {
		// No tally while voting is open.
		return models.ElectionResult{
			Election:  election,
			Status:    models.StatusActive,
			TimeLabel: "closes " + humanize.RelTime(election.EndTime, now, "ago", "from now"),
		}, nil
	}

	counts, err := candidateCounts(ctx, e.db, election.ID)
	if err != nil {
		return models.ElectionResult{}, err
	}
	out := aggregate(counts)

	return models.ElectionResult{
		Election:    election,
		Status:      models.StatusClosed,
		TimeLabel:   "closed " + humanize.RelTime(election.EndTime, now, "ago", "from now"),
		TotalVotes:  out.total,
		Ranking:     out.ranking,
		Winner:      out.winner,
		TiedWinners: out.tied,
	}, nil
}

// ComputeResults reports every election: active ones without a tally,
// closed ones ranked with their winner.
func (e *Engine) ComputeResults(ctx context.Context, now time.Time) ([]models.ElectionResult, error) {
	elections, err := allElections(ctx, e.db)
	if err != nil {
		return nil, err
	}

	results := make([]models.ElectionResult, 0, len(elections))
	for _, election := range elections {
		result, err := e.resultFor(ctx, election, now)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// ElectionResults reports a single election by slug.
func (e *Engine) ElectionResults(ctx context.Context, slug string, now time.Time) (models.ElectionResult, error) {
	election, err := electionBySlug(ctx, e.db, slug)
	if err != nil {
		return models.ElectionResult{}, err
	}
	return e.resultFor(ctx, election, now)
}
