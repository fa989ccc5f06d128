// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "errors"

// Error is an expected, user-facing rejection. Code is stable for clients;
// Message is safe to show to the voter.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches any *Error with the same code, so ErrUnknownUser is also
// ErrNotFound.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Reason codes
const (
	CodeNotFound         = "not_found"
	CodeNotVerified      = "not_verified"
	CodeNotActive        = "not_active"
	CodeNotEligible      = "not_eligible"
	CodeAlreadyVoted     = "already_voted"
	CodeInvalidSelection = "invalid_selection"
	CodeInternal         = "internal"
)

var (
	ErrNotFound         = &Error{Code: CodeNotFound, Message: "Election not found."}
	ErrUnknownUser      = &Error{Code: CodeNotFound, Message: "User profile not found."}
	ErrNotVerified      = &Error{Code: CodeNotVerified, Message: "You are not verified to vote."}
	ErrNotActive        = &Error{Code: CodeNotActive, Message: "This election is not currently active."}
	ErrNotEligible      = &Error{Code: CodeNotEligible, Message: "You are not eligible for this election."}
	ErrAlreadyVoted     = &Error{Code: CodeAlreadyVoted, Message: "You have already voted in this election."}
	ErrInvalidSelection = &Error{Code: CodeInvalidSelection, Message: "Please select a valid candidate."}
)

// ErrStorageConflict marks a double vote caught by the voter_record
// constraint rather than the pre-check. It never reaches callers alone:
// CastVote wraps it together with ErrAlreadyVoted.
var ErrStorageConflict = errors.New("voter record already exists")

// Reason returns the stable reason code for err, or CodeInternal when err
// is not one of the expected rejections.
func Reason(err error) string {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Code
	}
	return CodeInternal
}

// Message returns the voter-facing text for err. Unexpected errors get a
// generic message so internals never leak.
func Message(err error) string {
	var verr *Error
	if errors.As(err, &verr) {
		return verr.Message
	}
	return "Something went wrong. Please try again."
}
