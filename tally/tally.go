// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"sort"
	"strings"

	"github.com/danielhkuo/dotpoll/models"
)

// choiceTally accumulates votes for a single choice
type choiceTally struct {
	choice models.Choice
	total  int64
	voters []string
	seen   map[string]bool
}

// Tally aggregates vote rows into one result per choice, ranked by total
// dots descending. Ties keep the order of choices, which is creation order.
// Votes for choices not in the list are ignored.
func Tally(poll models.Poll, choices []models.Choice, votes []models.Vote) []models.ChoiceResult {
	tallies := make([]*choiceTally, len(choices))
	byChoice := make(map[int64]*choiceTally, len(choices))
	for i, c := range choices {
		ct := &choiceTally{choice: c, seen: make(map[string]bool)}
		tallies[i] = ct
		byChoice[c.ID] = ct
	}

	// Voter lists follow insertion order, which is vote ID order
	ordered := make([]models.Vote, len(votes))
	copy(ordered, votes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	for _, v := range ordered {
		ct, ok := byChoice[v.ChoiceID]
		if !ok || v.PollID != poll.ID || v.Dots == 0 {
			continue
		}
		ct.total += v.Dots
		if !ct.seen[v.Voter] {
			ct.seen[v.Voter] = true
			ct.voters = append(ct.voters, v.Voter)
		}
	}

	// Higher total first; SliceStable keeps creation order for ties
	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].total > tallies[j].total
	})

	results := make([]models.ChoiceResult, len(tallies))
	for i, ct := range tallies {
		results[i] = models.ChoiceResult{
			ChoiceID: ct.choice.ID,
			Details:  ct.choice.Details,
			Total:    ct.total,
			Voters:   strings.Join(ct.voters, models.VoterSeparator),
		}
	}

	return results
}
