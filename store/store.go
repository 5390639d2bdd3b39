// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/dotpoll/ident"
	"github.com/danielhkuo/dotpoll/models"
)

// Store persists polls, choices, and votes in a SQL database.
// Every multi-row write runs inside a single transaction via WithTx.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a store over an open, migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Tx is the scoped transaction handed to WithTx callbacks.
type Tx struct {
	tx  *sql.Tx
	now time.Time
}

// WithTx begins a transaction, runs fn, and commits if fn returns nil.
// The transaction is rolled back on error or panic, so no partial state is
// ever visible to other connections.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Tx) error) (err error) {
	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.StoreError("begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			sqlTx.Rollback()
			panic(p)
		}
		if err != nil {
			sqlTx.Rollback()
		}
	}()

	if err = fn(&Tx{tx: sqlTx, now: s.now()}); err != nil {
		return err
	}

	if err = sqlTx.Commit(); err != nil {
		return models.StoreError("commit transaction", err)
	}
	return nil
}

// CreatePollWithChoices inserts a poll and one choice per non-empty entry of
// choiceDetails, in order, as one atomic unit.
func (s *Store) CreatePollWithChoices(ctx context.Context, title string, choiceDetails []string) (models.Poll, []models.Choice, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Poll{}, nil, models.ValidationError("title is required")
	}

	var poll models.Poll
	choices := []models.Choice{}

	err := s.WithTx(ctx, func(tx *Tx) error {
		var err error
		poll, err = tx.InsertPoll(ctx, ident.NewExternalRef(), title)
		if err != nil {
			return err
		}

		for _, details := range choiceDetails {
			details = strings.TrimSpace(details)
			if details == "" {
				continue
			}
			choice, err := tx.InsertChoice(ctx, poll.ID, details)
			if err != nil {
				return err
			}
			choices = append(choices, choice)
		}
		return nil
	})
	if err != nil {
		return models.Poll{}, nil, err
	}

	return poll, choices, nil
}

// FindPollByRef looks up a poll by its external reference.
func (s *Store) FindPollByRef(ctx context.Context, ref string) (models.Poll, error) {
	var poll models.Poll
	err := s.db.QueryRowContext(ctx, `
		SELECT id, uuid, title, created_at
		FROM polls
		WHERE uuid = $1
	`, ref).Scan(&poll.ID, &poll.UUID, &poll.Title, &poll.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, models.NotFoundError("poll %s", ref)
	}
	if err != nil {
		return models.Poll{}, models.StoreError("query poll", err)
	}

	return poll, nil
}

// ListChoices returns a poll's choices in creation order.
func (s *Store) ListChoices(ctx context.Context, pollID int64) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, poll_id, details, created_at
		FROM choices
		WHERE poll_id = $1
		ORDER BY id ASC
	`, pollID)
	if err != nil {
		return nil, models.StoreError("query choices", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.PollID, &c.Details, &c.CreatedAt); err != nil {
			return nil, models.StoreError("scan choice", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, models.StoreError("iterate choices", err)
	}

	return choices, nil
}

// InsertVotes records a validated ballot. All rows commit together or not
// at all. Zero-dot rows are skipped.
func (s *Store) InsertVotes(ctx context.Context, pollID int64, rows []models.VoteRow) error {
	if len(rows) == 0 {
		return nil
	}

	return s.WithTx(ctx, func(tx *Tx) error {
		for _, row := range rows {
			if row.Dots == 0 {
				continue
			}
			if err := tx.InsertVote(ctx, pollID, row); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListVotes returns every vote row of a poll, oldest first.
func (s *Store) ListVotes(ctx context.Context, pollID int64) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, poll_id, choice_id, voter, dots, created_at
		FROM votes
		WHERE poll_id = $1
		ORDER BY id ASC
	`, pollID)
	if err != nil {
		return nil, models.StoreError("query votes", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.ID, &v.PollID, &v.ChoiceID, &v.Voter, &v.Dots, &v.CreatedAt); err != nil {
			return nil, models.StoreError("scan vote", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, models.StoreError("iterate votes", err)
	}

	return votes, nil
}

// InsertPoll inserts a poll row and returns it with its assigned ID.
func (t *Tx) InsertPoll(ctx context.Context, ref, title string) (models.Poll, error) {
	poll := models.Poll{UUID: ref, Title: title, CreatedAt: t.now}
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO polls (uuid, title, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, poll.UUID, poll.Title, poll.CreatedAt).Scan(&poll.ID)
	if err != nil {
		return models.Poll{}, models.StoreError("insert poll", err)
	}
	return poll, nil
}

// InsertChoice inserts one choice of a poll.
func (t *Tx) InsertChoice(ctx context.Context, pollID int64, details string) (models.Choice, error) {
	choice := models.Choice{PollID: pollID, Details: details, CreatedAt: t.now}
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO choices (poll_id, details, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, choice.PollID, choice.Details, choice.CreatedAt).Scan(&choice.ID)
	if err != nil {
		return models.Choice{}, models.StoreError("insert choice", err)
	}
	return choice, nil
}

// InsertVote inserts one vote row.
func (t *Tx) InsertVote(ctx context.Context, pollID int64, row models.VoteRow) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO votes (poll_id, choice_id, voter, dots, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, pollID, row.ChoiceID, row.Voter, row.Dots, t.now)
	if err != nil {
		return models.StoreError(fmt.Sprintf("insert vote for choice %d", row.ChoiceID), err)
	}
	return nil
}
