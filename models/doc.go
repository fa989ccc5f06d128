// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: username, email, password, names, age, state
  - LoginRequest: username, password
  - CastVoteRequest: candidate_id
  - CreateElectionRequest: slug, title, election_type, state, window
  - AddCandidateRequest: name
  - VerifyUserRequest: verified

# Response Types

  - RegisterResponse, LoginResponse
  - DashboardResponse: profile plus eligible elections
  - CastVoteResponse: candidate_name, message
  - HomeResponse: turnout_percentage
  - CreateElectionResponse, AddCandidateResponse
  - ErrorResponse: error, message, code

# Domain Types

  - User, UserProfile: identity and eligibility attributes
  - Election, Candidate: the registry
  - EligibleElection: election plus the caller's has-voted flag
  - Ballot: election plus ordered candidates
  - CandidateTally, ElectionResult: aggregated results

Election carries the pure predicates shared by eligibility and casting:

	e.IsOpen(now)     // start_time <= now <= end_time
	e.IsClosed(now)   // now >= end_time
	e.Admits(profile) // NATIONAL, or STATE with matching state
	e.Validate()      // slug, type, state and window invariants

# Constants

Election types:

	ElectionNational = "NATIONAL"
	ElectionState    = "STATE"

Result status:

	StatusActive = "active"
	StatusClosed = "closed"

States maps the 51 jurisdiction codes (50 states plus DC) to their names.
*/
package models
