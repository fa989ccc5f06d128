// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/statevote/auth"
	"github.com/danielhkuo/statevote/cliparse"
	"github.com/danielhkuo/statevote/db"
)

// TestPassword is the password every test user is created with
const TestPassword = "correct-horse-battery"

// SetupTestDB creates a fresh SQLite database with the full schema in a
// per-test temporary directory
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, db.TypeSQLite, "file:"+filepath.Join(t.TempDir(), "statevote.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file::memory:",
		DatabaseType: db.TypeSQLite,
		JWTSecret:    "test-jwt-secret",
		AdminKey:     "test-admin-key",
		TokenTTL:     time.Hour,
		RateRPS:      1000,
		RateBurst:    1000,
	}
}

// CreateTestUser creates a user with a profile and returns the user ID
func CreateTestUser(t *testing.T, conn *sql.DB, username, state string, verified bool) string {
	t.Helper()

	hash, err := auth.HashPassword(TestPassword)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	userID := auth.NewID()
	_, err = conn.Exec(`
		INSERT INTO app_user (id, username, email, password_hash, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, 'Test', 'User', $5)
	`, userID, username, username+"@example.com", hash, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO user_profile (user_id, age, state, is_verified)
		VALUES ($1, 30, $2, $3)
	`, userID, state, verified)
	if err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	return userID
}

// CreateTestElection creates an election and returns its ID.
// state is ignored for NATIONAL elections.
func CreateTestElection(t *testing.T, conn *sql.DB, slug, electionType, state string, start, end time.Time) string {
	t.Helper()

	var statePtr *string
	if electionType == "STATE" {
		statePtr = &state
	}

	electionID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO election (id, slug, title, election_type, state, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, electionID, slug, "Election "+slug, electionType, statePtr, start.UTC(), end.UTC(), time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}

	return electionID
}

// CreateOpenElection creates an election that is open for the next day
func CreateOpenElection(t *testing.T, conn *sql.DB, slug, electionType, state string) string {
	t.Helper()
	now := time.Now()
	return CreateTestElection(t, conn, slug, electionType, state, now.Add(-time.Hour), now.Add(24*time.Hour))
}

// CreateClosedElection creates an election that ended an hour ago
func CreateClosedElection(t *testing.T, conn *sql.DB, slug, electionType, state string) string {
	t.Helper()
	now := time.Now()
	return CreateTestElection(t, conn, slug, electionType, state, now.Add(-48*time.Hour), now.Add(-time.Hour))
}

// AddTestCandidate appends a candidate to an election and returns its ID
func AddTestCandidate(t *testing.T, conn *sql.DB, electionID, name string) string {
	t.Helper()

	var position int
	err := conn.QueryRow(`
		SELECT COALESCE(MAX(position), 0) + 1 FROM candidate WHERE election_id = $1
	`, electionID).Scan(&position)
	if err != nil {
		t.Fatalf("Failed to compute candidate position: %v", err)
	}

	candidateID := auth.NewID()
	_, err = conn.Exec(`
		INSERT INTO candidate (id, election_id, name, position)
		VALUES ($1, $2, $3, $4)
	`, candidateID, electionID, name, position)
	if err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}

	return candidateID
}

// AddTestVotes writes n anonymous votes for a candidate directly, without
// voter records. Useful for seeding closed elections.
func AddTestVotes(t *testing.T, conn *sql.DB, electionID, candidateID string, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		_, err := conn.Exec(`
			INSERT INTO vote (id, candidate_id, election_id)
			VALUES ($1, $2, $3)
		`, auth.NewID(), candidateID, electionID)
		if err != nil {
			t.Fatalf("Failed to create test vote: %v", err)
		}
	}
}

// AddTestVoterRecord marks a user as having voted in an election
func AddTestVoterRecord(t *testing.T, conn *sql.DB, userID, electionID string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO voter_record (user_id, election_id) VALUES ($1, $2)
	`, userID, electionID)
	if err != nil {
		t.Fatalf("Failed to create test voter record: %v", err)
	}
}

// CountRows returns the number of rows in table matching an optional
// election ID
func CountRows(t *testing.T, conn *sql.DB, table, electionID string) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	args := []any{}
	if electionID != "" {
		query += " WHERE election_id = $1"
		args = append(args, electionID)
	}

	var count int
	if err := conn.QueryRow(query, args...).Scan(&count); err != nil {
		t.Fatalf("Failed to count %s rows: %v", table, err)
	}
	return count
}

// AuthHeaders returns request headers carrying a session token for userID
func AuthHeaders(t *testing.T, cfg cliparse.Config, userID string) map[string]string {
	t.Helper()

	token, _, err := auth.IssueToken(userID, cfg.JWTSecret, cfg.TokenTTL, time.Now())
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var jsonBody []byte
		if raw, ok := body.(string); ok {
			jsonBody = []byte(raw)
		} else {
			jsonBody, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
