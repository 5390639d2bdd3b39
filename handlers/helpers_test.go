// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/danielhkuo/dotpoll/models"
	"github.com/danielhkuo/dotpoll/polls"
	"github.com/danielhkuo/dotpoll/store"
	"github.com/danielhkuo/dotpoll/testutil"
)

// setupService creates a poll service over a fresh test database
func setupService(t *testing.T) (*polls.Service, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return polls.NewService(store.New(db)), db
}

// createTestPoll creates a poll through the service and returns it
func createTestPoll(t *testing.T, svc *polls.Service, title string, choices ...string) models.PollWithChoices {
	t.Helper()
	created, err := svc.CreatePoll(context.Background(), title, choices)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return created
}
