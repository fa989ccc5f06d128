// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"time"

	"github.com/danielhkuo/statevote/models"
)

// IsEligible reports whether the profile may vote in the election at now:
// verified, inside the voting window, and in the election's jurisdiction.
func IsEligible(p models.UserProfile, e models.Election, now time.Time) bool {
	return p.IsVerified && e.IsOpen(now) && e.Admits(p)
}

// ComputeEligibility lists the elections userID may vote in at now, each
// with whether the user already voted there. Unverified users get an
// empty list.
func (e *Engine) ComputeEligibility(ctx context.Context, userID string, now time.Time) ([]models.EligibleElection, error) {
	profile, err := loadProfile(ctx, e.db, userID)
	if err != nil {
		return nil, err
	}

	eligible := []models.EligibleElection{}
	if !profile.IsVerified {
		return eligible, nil
	}

	elections, err := electionsInJurisdiction(ctx, e.db, profile.State)
	if err != nil {
		return nil, err
	}

	voted, err := votedElectionIDs(ctx, e.db, userID)
	if err != nil {
		return nil, err
	}

	for _, election := range elections {
		if !IsEligible(profile, election, now) {
			continue
		}
		_, hasVoted := voted[election.ID]
		eligible = append(eligible, models.EligibleElection{
			Election:     election,
			UserHasVoted: hasVoted,
		})
	}

	return eligible, nil
}

// Profile returns the identity attributes the engine decides on.
func (e *Engine) Profile(ctx context.Context, userID string) (models.UserProfile, error) {
	return loadProfile(ctx, e.db, userID)
}
