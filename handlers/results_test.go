// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/dotpoll/models"
	"github.com/danielhkuo/dotpoll/testutil"
)

func TestGetResults(t *testing.T) {
	svc, _ := setupService(t)
	handler := NewResultsHandler(svc)
	ctx := context.Background()

	created := createTestPoll(t, svc, "Languages", "Go", "Rust", "Zig")
	goID, rustID := created.Choices[0].ID, created.Choices[1].ID

	for _, b := range []struct {
		voter   string
		weights map[int64]int64
	}{
		{"voterX", map[int64]int64{rustID: 2}},
		{"voterY", map[int64]int64{rustID: 3}},
		{"voterZ", map[int64]int64{goID: 1}},
	} {
		if _, err := svc.CastBallot(ctx, created.Poll.UUID, b.voter, b.weights); err != nil {
			t.Fatalf("CastBallot() error = %v", err)
		}
	}

	tests := []struct {
		name           string
		uuid           string
		expectedStatus int
	}{
		{"existing poll", created.Poll.UUID, http.StatusOK},
		{"unknown poll", "00000000-0000-4000-8000-000000000000", http.StatusNotFound},
		{"malformed uuid", "abc", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/polls/"+tt.uuid+"/results", nil)
			req.SetPathValue("uuid", tt.uuid)
			w := httptest.NewRecorder()

			handler.GetResults(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.ResultsResponse
			testutil.AssertJSON(t, w, &resp)

			if resp.Poll.Title != "Languages" {
				t.Errorf("Expected poll title, got %q", resp.Poll.Title)
			}
			want := []models.ChoiceResult{
				{ChoiceID: rustID, Details: "Rust", Total: 5, Voters: "voterX, voterY"},
				{ChoiceID: goID, Details: "Go", Total: 1, Voters: "voterZ"},
				{ChoiceID: created.Choices[2].ID, Details: "Zig", Total: 0, Voters: ""},
			}
			if len(resp.Results) != len(want) {
				t.Fatalf("Expected %d results, got %+v", len(want), resp.Results)
			}
			for i := range want {
				if resp.Results[i] != want[i] {
					t.Errorf("Results[%d] = %+v, want %+v", i, resp.Results[i], want[i])
				}
			}
		})
	}
}
