package models

import "time"

// DefaultVoter is recorded when a ballot carries no voter label.
const DefaultVoter = "Unknown"

// VoterSeparator joins voter labels in a ChoiceResult.
const VoterSeparator = ", "

// Request types

type CreatePollRequest struct {
	Title   string   `json:"title"`
	Choices []string `json:"choices"`
}

// choice_id -> dots
type CastBallotRequest struct {
	Voter   string          `json:"voter"`
	Choices map[int64]int64 `json:"choices"`
}

// Response types

type CastBallotResponse struct {
	Recorded int    `json:"recorded"`
	Message  string `json:"message"`
}

type ResultsResponse struct {
	Poll    Poll           `json:"poll"`
	Results []ChoiceResult `json:"results"`
}

// Domain types

type Poll struct {
	ID        int64     `json:"-"` // Never expose in JSON
	UUID      string    `json:"uuid"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type Choice struct {
	ID        int64     `json:"id"`
	PollID    int64     `json:"-"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

type PollWithChoices struct {
	Poll    Poll     `json:"poll"`
	Choices []Choice `json:"choices"`
}

type Vote struct {
	ID        int64     `json:"id"`
	PollID    int64     `json:"-"`
	ChoiceID  int64     `json:"choice_id"`
	Voter     string    `json:"voter"`
	Dots      int64     `json:"dots"`
	CreatedAt time.Time `json:"created_at"`
}

// Ballot is one voter's raw submission before validation.
type Ballot struct {
	Voter   string
	Choices map[int64]int64
}

// VoteRow is a validated, non-zero (choice, dots) pair ready to persist.
type VoteRow struct {
	ChoiceID int64
	Voter    string
	Dots     int64
}

// Tally result types

type ChoiceResult struct {
	ChoiceID int64  `json:"choice_id"`
	Details  string `json:"details"`
	Total    int64  `json:"total"`
	Voters   string `json:"voters"`
}

type Results struct {
	Poll    Poll
	Results []ChoiceResult
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
