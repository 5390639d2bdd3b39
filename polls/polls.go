// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/dotpoll/ballot"
	"github.com/danielhkuo/dotpoll/ident"
	"github.com/danielhkuo/dotpoll/models"
	"github.com/danielhkuo/dotpoll/tally"
)

// Store is the persistence the service needs. *store.Store implements it.
type Store interface {
	CreatePollWithChoices(ctx context.Context, title string, choiceDetails []string) (models.Poll, []models.Choice, error)
	FindPollByRef(ctx context.Context, ref string) (models.Poll, error)
	ListChoices(ctx context.Context, pollID int64) ([]models.Choice, error)
	InsertVotes(ctx context.Context, pollID int64, rows []models.VoteRow) error
	ListVotes(ctx context.Context, pollID int64) ([]models.Vote, error)
}

// Service is the entry point for poll operations.
type Service struct {
	store Store
}

// NewService creates a service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreatePoll creates a poll and its non-empty choices atomically.
func (s *Service) CreatePoll(ctx context.Context, title string, choiceDetails []string) (models.PollWithChoices, error) {
	poll, choices, err := s.store.CreatePollWithChoices(ctx, title, choiceDetails)
	if err != nil {
		return models.PollWithChoices{}, err
	}

	slog.Info("poll created", "poll_uuid", poll.UUID, "choices", len(choices), "dropped", len(choiceDetails)-len(choices))

	return models.PollWithChoices{Poll: poll, Choices: choices}, nil
}

// GetPoll returns a poll and its choices in creation order.
func (s *Service) GetPoll(ctx context.Context, pollRef string) (models.PollWithChoices, error) {
	poll, err := s.findPoll(ctx, pollRef)
	if err != nil {
		return models.PollWithChoices{}, err
	}

	choices, err := s.store.ListChoices(ctx, poll.ID)
	if err != nil {
		return models.PollWithChoices{}, err
	}

	return models.PollWithChoices{Poll: poll, Choices: choices}, nil
}

// CastBallot validates a ballot against the poll's choices and records its
// non-zero entries as one atomic batch. It returns the number of rows written.
func (s *Service) CastBallot(ctx context.Context, pollRef, voter string, choiceWeights map[int64]int64) (int, error) {
	poll, err := s.findPoll(ctx, pollRef)
	if err != nil {
		return 0, err
	}

	choices, err := s.store.ListChoices(ctx, poll.ID)
	if err != nil {
		return 0, err
	}

	valid, err := ballot.Validate(models.Ballot{Voter: voter, Choices: choiceWeights}, choices)
	if err != nil {
		return 0, err
	}

	if err := s.store.InsertVotes(ctx, poll.ID, valid.Rows); err != nil {
		return 0, err
	}

	slog.Info("ballot recorded", "poll_uuid", poll.UUID, "voter", valid.Voter, "rows", len(valid.Rows))

	return len(valid.Rows), nil
}

// GetResults tallies every vote of the poll, ranked by total dots.
func (s *Service) GetResults(ctx context.Context, pollRef string) (models.Results, error) {
	poll, err := s.findPoll(ctx, pollRef)
	if err != nil {
		return models.Results{}, err
	}

	choices, err := s.store.ListChoices(ctx, poll.ID)
	if err != nil {
		return models.Results{}, err
	}

	votes, err := s.store.ListVotes(ctx, poll.ID)
	if err != nil {
		return models.Results{}, err
	}

	return models.Results{
		Poll:    poll,
		Results: tally.Tally(poll, choices, votes),
	}, nil
}

// findPoll resolves an external reference; malformed references are reported
// as unknown polls.
func (s *Service) findPoll(ctx context.Context, pollRef string) (models.Poll, error) {
	ref, err := ident.ParseExternalRef(pollRef)
	if err != nil {
		return models.Poll{}, models.NotFoundError("poll %q", pollRef)
	}
	return s.store.FindPollByRef(ctx, ref)
}
