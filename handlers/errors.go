// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/statevote/middleware"
	"github.com/danielhkuo/statevote/voting"
)

// statusForReason maps an engine reason code to an HTTP status
func statusForReason(code string) int {
	switch code {
	case voting.CodeNotFound:
		return http.StatusNotFound
	case voting.CodeNotVerified, voting.CodeNotEligible:
		return http.StatusForbidden
	case voting.CodeNotActive, voting.CodeAlreadyVoted:
		return http.StatusConflict
	case voting.CodeInvalidSelection:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeEngineError answers with the status and reason for an engine error.
// Unexpected errors are logged and reported without detail.
func writeEngineError(w http.ResponseWriter, op string, err error) {
	code := voting.Reason(err)
	if code == voting.CodeInternal {
		slog.Error(op+" failed", "error", err)
		middleware.CodedErrorResponse(w, http.StatusInternalServerError, code, "Internal error")
		return
	}
	middleware.CodedErrorResponse(w, statusForReason(code), code, voting.Message(err))
}
