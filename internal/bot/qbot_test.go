package bot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

func greedy(alpha, gamma float64) *QBot {
	return NewQBot(game.PlayerSide, LearningParams{Alpha: alpha, Epsilon: 0, Gamma: gamma}, randutil.New(1), quietLogger())
}

func TestQBotBreaksTiesByOfferOrder(t *testing.T) {
	t.Parallel()
	q := greedy(1, 0.8)
	d := q.MakeDecision(playerState("9s", "Ts3h"), playerActions)
	assert.Equal(t, game.Hit, d.Action)
	assert.Empty(t, q.Values(), "deciding does not write the table")
}

func TestQBotTerminalUpdateUsesReward(t *testing.T) {
	t.Parallel()
	q := greedy(1, 0.8)
	q.ObserveTransition(game.Transition{
		State:    playerState("9s", "Ts3h"),
		Action:   game.Hit,
		Next:     playerState("9s", "Ts3hKd"),
		Reward:   -1,
		Terminal: true,
	})
	assert.Equal(t, -1.0, q.Value(13, game.Hit))

	d := q.MakeDecision(playerState("9s", "Ts3h"), playerActions)
	assert.Equal(t, game.Stand, d.Action, "the first unpenalised action wins")
}

func TestQBotBootstrapsFromNextState(t *testing.T) {
	t.Parallel()
	q := greedy(1, 0.8)
	q.ObserveTransition(game.Transition{
		State:    playerState("9s", "Ts5h"),
		Action:   game.Stand,
		Next:     playerState("9s", "Ts5h"),
		Reward:   1,
		Terminal: true,
	})
	require.Equal(t, 1.0, q.Value(15, game.Stand))

	q.ObserveTransition(game.Transition{
		State:  playerState("9s", "Ts3h"),
		Action: game.Hit,
		Next:   playerState("9s", "Ts3h2d"),
		Reward: 0,
	})
	assert.InDelta(t, 0.8, q.Value(13, game.Hit), 1e-9)
}

func TestQBotTerminalUpdateIgnoresNextState(t *testing.T) {
	t.Parallel()
	q := greedy(1, 0.8)
	q.ObserveTransition(game.Transition{
		State:    playerState("9s", "Ts5h"),
		Action:   game.Stand,
		Next:     playerState("9s", "Ts5h"),
		Reward:   1,
		Terminal: true,
	})
	require.Equal(t, 1.0, q.Value(15, game.Stand))

	// The next state is worth 1, but a terminal step stops at the reward.
	q.ObserveTransition(game.Transition{
		State:    playerState("9s", "Ts3h"),
		Action:   game.Hit,
		Next:     playerState("9s", "Ts3h2d"),
		Reward:   0.5,
		Terminal: true,
	})
	assert.InDelta(t, 0.5, q.Value(13, game.Hit), 1e-9)
}

func TestQBotLearningRate(t *testing.T) {
	t.Parallel()
	q := greedy(0.5, 0.8)
	stand := game.Transition{
		State:    playerState("9s", "TsQh"),
		Action:   game.Stand,
		Next:     playerState("9s", "TsQh"),
		Reward:   1,
		Terminal: true,
	}
	q.ObserveTransition(stand)
	assert.InDelta(t, 0.5, q.Value(20, game.Stand), 1e-9)
	q.ObserveTransition(stand)
	assert.InDelta(t, 0.75, q.Value(20, game.Stand), 1e-9)
}

func TestQBotExploresWithEpsilon(t *testing.T) {
	t.Parallel()
	q := NewQBot(game.PlayerSide, LearningParams{Alpha: 1, Epsilon: 1, Gamma: 0.8}, randutil.New(5), quietLogger())
	seen := make(map[game.Action]bool)
	for i := 0; i < 200; i++ {
		d := q.MakeDecision(playerState("9s", "Ts3h"), playerActions)
		assert.Contains(t, playerActions, d.Action)
		seen[d.Action] = true
	}
	assert.Len(t, seen, len(playerActions))
}

func TestQBotValuesIsACopy(t *testing.T) {
	t.Parallel()
	q := greedy(1, 0.8)
	q.ObserveTransition(game.Transition{
		State: playerState("9s", "TsQh"), Action: game.Stand, Reward: 1, Terminal: true,
	})
	values := q.Values()
	values[QKey{Total: 20, Action: game.Stand}] = 99
	assert.Equal(t, 1.0, q.Value(20, game.Stand))
}

func TestQBotTrainsThroughEngine(t *testing.T) {
	t.Parallel()
	q := NewQBot(game.PlayerSide, DefaultLearningParams(), randutil.New(9), quietLogger())
	shoe := deck.New(randutil.New(9), 1)
	engine := game.NewEngine(shoe, q, NewDealerBot(game.DealerSide))

	require.NoError(t, engine.Train(context.Background(), 500))
	values := q.Values()
	assert.NotEmpty(t, values)
	for key := range values {
		assert.GreaterOrEqual(t, key.Total, 4)
		assert.Less(t, key.Total, 21)
	}
}

func TestQBotSavesAndLoadsValues(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "qtable.json")

	q := greedy(1, 0.8)
	q.ObserveTransition(game.Transition{
		State:    playerState("9s", "TsQh"),
		Action:   game.Stand,
		Next:     playerState("9s", "TsQh"),
		Reward:   1,
		Terminal: true,
	})
	q.ObserveTransition(game.Transition{
		State:    playerState("9s", "Ts6h"),
		Action:   game.DoubleDown,
		Next:     playerState("9s", "Ts6hKd"),
		Reward:   -2,
		Terminal: true,
	})
	require.NoError(t, q.SaveValues(path))

	loaded := greedy(1, 0.8)
	found, err := loaded.LoadValues(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, q.Values(), loaded.Values())
	assert.Equal(t, -2.0, loaded.Value(16, game.DoubleDown))
}

func TestQBotLoadMissingTable(t *testing.T) {
	t.Parallel()
	q := greedy(1, 0.8)
	found, err := q.LoadValues(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, q.Values())
}

func TestQBotLoadRejectsUnknownAction(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"total": 12, "action": "insure", "value": 1}]`), 0o600))

	_, err := greedy(1, 0.8).LoadValues(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total 12")
}
