// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// Turnout is the global participation percentage: voter records over
// verified users times elections, rounded to one decimal. It is an
// approximation, not a per-election rate. Empty denominators give 0.
func Turnout(voterRecords, verifiedUsers, elections int) float64 {
	if verifiedUsers <= 0 || elections <= 0 || voterRecords < 0 {
		return 0
	}
	pct := float64(voterRecords) / (float64(verifiedUsers) * float64(elections)) * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	return math.Round(pct*10) / 10
}

// ComputeTurnout returns Turnout over the whole store. Failures are logged
// and reported as 0.
func (e *Engine) ComputeTurnout(ctx context.Context) float64 {
	var verified, records, elections int
	err := e.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM user_profile WHERE is_verified = $1),
			(SELECT COUNT(*) FROM voter_record),
			(SELECT COUNT(*) FROM election)
	`, true).Scan(&verified, &records, &elections)
	if err != nil {
		slog.Warn("turnout unavailable", "error", fmt.Errorf("failed to count participation: %w", err))
		return 0
	}
	return Turnout(records, verified, elections)
}
