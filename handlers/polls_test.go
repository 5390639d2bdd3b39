// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/dotpoll/models"
	"github.com/danielhkuo/dotpoll/testutil"
)

func TestCreatePoll(t *testing.T) {
	svc, db := setupService(t)
	handler := NewPollHandler(svc)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.PollWithChoices)
	}{
		{
			name:           "valid poll",
			requestBody:    models.CreatePollRequest{Title: "Lunch?", Choices: []string{"Tacos", "", "Pho"}},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.PollWithChoices) {
				if resp.Poll.UUID == "" {
					t.Error("Expected non-empty uuid")
				}
				if resp.Poll.Title != "Lunch?" {
					t.Errorf("Expected title 'Lunch?', got %q", resp.Poll.Title)
				}
				if len(resp.Choices) != 2 || resp.Choices[0].Details != "Tacos" || resp.Choices[1].Details != "Pho" {
					t.Errorf("Unexpected choices: %+v", resp.Choices)
				}
			},
		},
		{
			name:           "no choices still creates poll",
			requestBody:    models.CreatePollRequest{Title: "Just a title"},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.PollWithChoices) {
				if len(resp.Choices) != 0 {
					t.Errorf("Expected no choices, got %+v", resp.Choices)
				}
			},
		},
		{
			name:           "missing title",
			requestBody:    models.CreatePollRequest{Choices: []string{"A"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			requestBody:    "not json object",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("PUT", "/api/v1/polls", tt.requestBody, nil)
			w := httptest.NewRecorder()

			handler.CreatePoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated && tt.checkResponse != nil {
				var resp models.PollWithChoices
				testutil.AssertJSON(t, w, &resp)
				tt.checkResponse(t, &resp)
			}
		})
	}

	if n := testutil.CountRows(t, db, "polls"); n != 2 {
		t.Errorf("Expected 2 polls after the table above, got %d", n)
	}
}

func TestCreatePollHidesInternalID(t *testing.T) {
	svc, _ := setupService(t)
	handler := NewPollHandler(svc)

	req := testutil.MakeRequest("PUT", "/api/v1/polls", models.CreatePollRequest{Title: "Secret", Choices: []string{"A"}}, nil)
	w := httptest.NewRecorder()
	handler.CreatePoll(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var raw struct {
		Poll    map[string]interface{}   `json:"poll"`
		Choices []map[string]interface{} `json:"choices"`
	}
	testutil.AssertJSON(t, w, &raw)
	if _, ok := raw.Poll["id"]; ok {
		t.Error("Poll JSON must not expose the internal id")
	}
	if _, ok := raw.Poll["uuid"]; !ok {
		t.Error("Poll JSON must expose uuid")
	}
	if len(raw.Choices) != 1 {
		t.Fatalf("Expected 1 choice, got %+v", raw.Choices)
	}
	if _, ok := raw.Choices[0]["poll_id"]; ok {
		t.Error("Choice JSON must not expose the internal poll id")
	}
}

func TestGetPoll(t *testing.T) {
	svc, _ := setupService(t)
	handler := NewPollHandler(svc)

	created := createTestPoll(t, svc, "Movie night", "Alien", "Heat")

	tests := []struct {
		name           string
		uuid           string
		expectedStatus int
	}{
		{"existing poll", created.Poll.UUID, http.StatusOK},
		{"uppercase uuid", strings.ToUpper(created.Poll.UUID), http.StatusOK},
		{"unknown poll", "00000000-0000-4000-8000-000000000000", http.StatusNotFound},
		{"malformed uuid", "nope", http.StatusNotFound},
		{"missing uuid", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/polls/"+tt.uuid, nil)
			req.SetPathValue("uuid", tt.uuid)
			w := httptest.NewRecorder()

			handler.GetPoll(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.PollWithChoices
				testutil.AssertJSON(t, w, &resp)
				if resp.Poll.UUID != created.Poll.UUID {
					t.Errorf("Expected uuid %s, got %s", created.Poll.UUID, resp.Poll.UUID)
				}
				if len(resp.Choices) != 2 || resp.Choices[0].Details != "Alien" {
					t.Errorf("Unexpected choices: %+v", resp.Choices)
				}
			}
		})
	}
}
