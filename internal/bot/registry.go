package bot

import (
	"io"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// Selector names for the built-in bots.
const (
	User    = "user"
	Random  = "random"
	Casino  = "casino"
	HitOnly = "hit"
	Stand   = "stand"
	QLearn  = "q"
	Counter = "counter"
)

// Default selectors used when a name is not registered.
const (
	DefaultPlayer = User
	DefaultDealer = Casino
)

// Deps are the shared inputs bots are built from.
type Deps struct {
	Seed     int64 // randomised bots derive their stream from this
	Decks    int
	Learning LearningParams
	In       io.Reader // interactive input, stdin when nil
	Out      io.Writer // interactive output, stdout when nil
	Logger   *log.Logger
}

// Constructor builds a bot for one side of the table.
type Constructor func(side game.Side) game.Agent

// Info describes a registered selector.
type Info struct {
	Name        string
	Description string
}

type entry struct {
	info  Info
	build Constructor
}

// Registry maps selector names to bot constructors. It is built once at
// startup and only read afterwards.
type Registry struct {
	deps    Deps
	entries map[string]entry
	order   []string
	built   int
}

// NewRegistry creates a registry holding every built-in bot.
func NewRegistry(deps Deps) *Registry {
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}
	if deps.Learning == (LearningParams{}) {
		deps.Learning = DefaultLearningParams()
	}

	r := &Registry{deps: deps, entries: make(map[string]entry)}
	r.Register(User, "asks on the terminal for every decision", func(side game.Side) game.Agent {
		return NewHumanBot(side, r.deps.In, r.deps.Out, r.logger("user"))
	})
	r.Register(Random, "uniformly random legal action", func(side game.Side) game.Agent {
		return NewRandBot(r.rng(), r.logger("random"))
	})
	r.Register(Casino, "house rules: hit below 17, stand on 17 or more", func(side game.Side) game.Agent {
		return NewDealerBot(side)
	})
	r.Register(HitOnly, "always hits", func(side game.Side) game.Agent {
		return NewFixedBot(game.Hit)
	})
	r.Register(Stand, "always stands", func(side game.Side) game.Agent {
		return NewFixedBot(game.Stand)
	})
	r.Register(QLearn, "Q-learning on hand total, trained before play", func(side game.Side) game.Agent {
		return NewQBot(side, r.deps.Learning, r.rng(), r.logger("q"))
	})
	r.Register(Counter, "counts seen cards and hits while a bust is unlikely", func(side game.Side) game.Agent {
		return NewCountBot(side, r.deps.Decks, r.logger("counter"))
	})
	return r
}

// Register adds or replaces a selector.
func (r *Registry) Register(name, description string, build Constructor) {
	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}
	r.entries[name] = entry{info: Info{Name: name, Description: description}, build: build}
}

// Lookup builds the bot registered as name for side. Unknown names build
// the side's default instead and report false.
func (r *Registry) Lookup(name string, side game.Side) (game.Agent, bool) {
	if e, ok := r.entries[name]; ok {
		return e.build(side), true
	}
	fallback := DefaultPlayer
	if side == game.DealerSide {
		fallback = DefaultDealer
	}
	return r.entries[fallback].build(side), false
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Names lists registered selectors in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Describe lists every selector with its description.
func (r *Registry) Describe() []Info {
	out := make([]Info, len(r.order))
	for i, name := range r.order {
		out[i] = r.entries[name].info
	}
	return out
}

// rng hands each randomised bot its own stream derived from the seed.
func (r *Registry) rng() *rand.Rand {
	r.built++
	return randutil.New(randutil.Derive(r.deps.Seed, r.built))
}

func (r *Registry) logger(prefix string) *log.Logger {
	return r.deps.Logger.WithPrefix(prefix)
}
