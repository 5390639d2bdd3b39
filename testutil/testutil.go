// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/dotpoll/db"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The database is closed and removed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := "file:" + filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(db.DialectSQLite, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(conn, db.DialectSQLite); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return conn
}

// FailChoiceInserts installs a trigger that aborts any choice insert whose
// details equal the given text.
func FailChoiceInserts(t *testing.T, conn *sql.DB, details string) {
	t.Helper()

	_, err := conn.Exec(`
		CREATE TRIGGER fail_choice_insert BEFORE INSERT ON choices
		WHEN NEW.details = ` + sqlQuote(details) + `
		BEGIN
			SELECT RAISE(ABORT, 'forced choice failure');
		END;
	`)
	if err != nil {
		t.Fatalf("Failed to create choice trigger: %v", err)
	}
}

// FailVoteInserts installs a trigger that aborts any vote insert by the given voter.
func FailVoteInserts(t *testing.T, conn *sql.DB, voter string) {
	t.Helper()

	_, err := conn.Exec(`
		CREATE TRIGGER fail_vote_insert BEFORE INSERT ON votes
		WHEN NEW.voter = ` + sqlQuote(voter) + `
		BEGIN
			SELECT RAISE(ABORT, 'forced vote failure');
		END;
	`)
	if err != nil {
		t.Fatalf("Failed to create vote trigger: %v", err)
	}
}

// sqlQuote renders s as a SQLite string literal
func sqlQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
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
