package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Election type constants
const (
	ElectionNational = "NATIONAL"
	ElectionState    = "STATE"
)

// Result status constants
const (
	StatusActive = "active"
	StatusClosed = "closed"
)

// States is the closed set of jurisdictions a profile or STATE election
// may name: the 50 states plus DC.
var States = map[string]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"DC": "District of Columbia", "FL": "Florida", "GA": "Georgia", "HI": "Hawaii",
	"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
	"NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "RI": "Rhode Island",
	"SC": "South Carolina", "SD": "South Dakota", "TN": "Tennessee", "TX": "Texas",
	"UT": "Utah", "VT": "Vermont", "VA": "Virginia", "WA": "Washington",
	"WV": "West Virginia", "WI": "Wisconsin", "WY": "Wyoming",
}

// ValidState reports whether code is a known jurisdiction.
func ValidState(code string) bool {
	_, ok := States[code]
	return ok
}

// MinVotingAge is the youngest age accepted at registration.
const MinVotingAge = 18

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidSlug reports whether s is a lowercase, hyphen-separated slug.
func ValidSlug(s string) bool {
	return len(s) <= 100 && slugPattern.MatchString(s)
}

// Request types

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	State     string `json:"state"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CastVoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

type CreateElectionRequest struct {
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	ElectionType string    `json:"election_type"`
	State        string    `json:"state,omitempty"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
}

type AddCandidateRequest struct {
	Name string `json:"name"`
}

type VerifyUserRequest struct {
	Verified bool `json:"verified"`
}

// Response types

type RegisterResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type DashboardResponse struct {
	Profile           UserProfile        `json:"user_profile"`
	EligibleElections []EligibleElection `json:"eligible_elections"`
}

type CastVoteResponse struct {
	CandidateName string `json:"candidate_name"`
	Message       string `json:"message"`
}

type HomeResponse struct {
	TurnoutPercentage float64 `json:"turnout_percentage"`
}

type CreateElectionResponse struct {
	ElectionID string `json:"election_id"`
	Slug       string `json:"slug"`
}

type AddCandidateResponse struct {
	CandidateID string `json:"candidate_id"`
	Position    int    `json:"position"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserProfile struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username,omitempty"`
	Age        int    `json:"age"`
	State      string `json:"state"`
	IsVerified bool   `json:"is_verified"`
}

type Election struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	ElectionType string    `json:"election_type"`
	State        *string   `json:"state,omitempty"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsOpen reports whether now falls inside the voting window, both ends
// inclusive.
func (e Election) IsOpen(now time.Time) bool {
	return !now.Before(e.StartTime) && !now.After(e.EndTime)
}

// IsClosed reports whether voting has ended. Results are published from
// end_time onwards.
func (e Election) IsClosed(now time.Time) bool {
	return !now.Before(e.EndTime)
}

// Admits reports whether the profile's jurisdiction may take part. A
// NATIONAL election's state is ignored.
func (e Election) Admits(p UserProfile) bool {
	switch e.ElectionType {
	case ElectionNational:
		return true
	case ElectionState:
		return e.State != nil && *e.State == p.State
	default:
		return false
	}
}

// Validate checks the invariants an election must hold before it is stored.
func (e Election) Validate() error {
	if !ValidSlug(e.Slug) {
		return fmt.Errorf("slug %q must be lowercase letters, digits and hyphens", e.Slug)
	}
	if e.Title == "" {
		return errors.New("title is required")
	}
	switch e.ElectionType {
	case ElectionNational:
	case ElectionState:
		if e.State == nil || *e.State == "" {
			return errors.New("state is required for STATE elections")
		}
		if !ValidState(*e.State) {
			return fmt.Errorf("unknown state %q", *e.State)
		}
	default:
		return fmt.Errorf("election_type must be %s or %s", ElectionNational, ElectionState)
	}
	if e.StartTime.IsZero() || e.EndTime.IsZero() {
		return errors.New("start_time and end_time are required")
	}
	if !e.StartTime.Before(e.EndTime) {
		return errors.New("start_time must be before end_time")
	}
	return nil
}

type Candidate struct {
	ID         string `json:"id"`
	ElectionID string `json:"election_id"`
	Name       string `json:"name"`
	Position   int    `json:"position"`
}

// EligibleElection is a read-only view pairing an election with whether
// the requesting user already voted in it.
type EligibleElection struct {
	Election     Election `json:"election"`
	UserHasVoted bool     `json:"user_has_voted"`
}

// Ballot is what a voter sees before casting: the election and its
// candidates in position order.
type Ballot struct {
	Election   Election    `json:"election"`
	Candidates []Candidate `json:"candidates"`
}

// Result Types

type CandidateTally struct {
	Candidate Candidate `json:"candidate"`
	Votes     int       `json:"votes"`
	Rank      int       `json:"rank"` // 1-indexed ranking
}

type ElectionResult struct {
	Election    Election         `json:"election"`
	Status      string           `json:"status"`
	TimeLabel   string           `json:"time_label"` // e.g. "closed 3 days ago"
	TotalVotes  int              `json:"total_votes,omitempty"`
	Ranking     []CandidateTally `json:"ranking,omitempty"`
	Winner      *Candidate       `json:"winner,omitempty"`
	TiedWinners []Candidate      `json:"tied_winners,omitempty"` // set only when the top count is shared
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
