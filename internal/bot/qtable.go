package bot

import (
	"fmt"
	"sort"

	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/game"
)

// qEntry is one row of a saved Q-table
type qEntry struct {
	Total  int     `json:"total"`
	Action string  `json:"action"`
	Value  float64 `json:"value"`
}

// SaveValues writes the learned table to path as JSON, sorted by total and
// action.
func (q *QBot) SaveValues(path string) error {
	entries := make([]qEntry, 0, len(q.values))
	for k, v := range q.values {
		entries = append(entries, qEntry{Total: k.Total, Action: k.Action.String(), Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total < entries[j].Total
		}
		return entries[i].Action < entries[j].Action
	})

	if err := fileutil.WriteJSONAtomic(path, entries, 0o644); err != nil {
		return fmt.Errorf("failed to save Q-table: %w", err)
	}
	q.logger.Debug("Saved Q-table", "path", path, "entries", len(entries))
	return nil
}

// LoadValues merges a table saved by SaveValues into the bot. A missing
// file leaves the bot untouched and reports false.
func (q *QBot) LoadValues(path string) (bool, error) {
	var entries []qEntry
	found, err := fileutil.ReadJSON(path, &entries)
	if err != nil || !found {
		return false, err
	}

	for _, e := range entries {
		action, err := game.ParseAction(e.Action)
		if err != nil {
			return false, fmt.Errorf("invalid Q-table entry for total %d: %w", e.Total, err)
		}
		q.values[QKey{Total: e.Total, Action: action}] = e.Value
	}
	q.logger.Debug("Loaded Q-table", "path", path, "entries", len(entries))
	return true, nil
}
