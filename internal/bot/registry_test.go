package bot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/game"
)

func testRegistry() *Registry {
	return NewRegistry(Deps{
		Seed:   42,
		Decks:  2,
		In:     strings.NewReader(""),
		Out:    &strings.Builder{},
		Logger: quietLogger(),
	})
}

func TestRegistryNames(t *testing.T) {
	t.Parallel()
	r := testRegistry()
	assert.Equal(t, []string{"user", "random", "casino", "hit", "stand", "q", "counter"}, r.Names())

	infos := r.Describe()
	require.Len(t, infos, 7)
	for _, info := range infos {
		assert.NotEmpty(t, info.Description, info.Name)
	}
}

func TestRegistryLookupBuildsEachBot(t *testing.T) {
	t.Parallel()
	r := testRegistry()

	tests := []struct {
		name string
		want any
	}{
		{User, &HumanBot{}},
		{Random, &RandBot{}},
		{Casino, &DealerBot{}},
		{HitOnly, &FixedBot{}},
		{Stand, &FixedBot{}},
		{QLearn, &QBot{}},
		{Counter, &CountBot{}},
	}
	for _, tt := range tests {
		agent, ok := r.Lookup(tt.name, game.PlayerSide)
		assert.True(t, ok, tt.name)
		assert.IsType(t, tt.want, agent, tt.name)
	}
}

func TestRegistryFallsBackToSideDefault(t *testing.T) {
	t.Parallel()
	r := testRegistry()

	agent, ok := r.Lookup("nonsense", game.PlayerSide)
	assert.False(t, ok)
	assert.IsType(t, &HumanBot{}, agent)

	agent, ok = r.Lookup("", game.DealerSide)
	assert.False(t, ok)
	assert.IsType(t, &DealerBot{}, agent)
}

func TestRegistryLookupReturnsFreshInstances(t *testing.T) {
	t.Parallel()
	r := testRegistry()
	a, _ := r.Lookup(QLearn, game.PlayerSide)
	b, _ := r.Lookup(QLearn, game.PlayerSide)
	assert.NotSame(t, a, b)
}

func TestRegistryQBotIsTrainable(t *testing.T) {
	t.Parallel()
	r := testRegistry()
	agent, _ := r.Lookup(QLearn, game.PlayerSide)
	_, ok := agent.(game.Trainable)
	assert.True(t, ok)

	agent, _ = r.Lookup(Casino, game.PlayerSide)
	_, ok = agent.(game.Trainable)
	assert.False(t, ok)
}

func TestRegistryRegisterOverrides(t *testing.T) {
	t.Parallel()
	r := testRegistry()
	r.Register(Casino, "stands on everything", func(game.Side) game.Agent { return NewFixedBot(game.Stand) })
	r.Register("custom", "custom bot", func(game.Side) game.Agent { return NewFixedBot(game.Hit) })

	agent, ok := r.Lookup(Casino, game.DealerSide)
	assert.True(t, ok)
	assert.IsType(t, &FixedBot{}, agent)
	assert.Equal(t, "custom", r.Names()[len(r.Names())-1])
	assert.True(t, r.Has("custom"))
	assert.Len(t, r.Names(), 8)
}
