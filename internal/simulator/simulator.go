package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
)

// ErrInteractiveSample is returned when sampling is asked to seat an agent
// that waits on terminal input.
var ErrInteractiveSample = errors.New("interactive agents cannot be sampled")

// Option configures a Simulator
type Option func(*Simulator)

// WithIO sets where interactive agents read from and where game output goes.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Simulator) {
		s.in = in
		s.out = out
	}
}

// WithClock sets the clock used to time samples.
func WithClock(clock quartz.Clock) Option {
	return func(s *Simulator) { s.clock = clock }
}

// WithRenderer sets the renderer for verbose output and prompts.
func WithRenderer(renderer *display.Renderer) Option {
	return func(s *Simulator) { s.renderer = renderer }
}

// Simulator builds sessions from configuration and runs them, either as a
// single game or as a batched performance sample.
type Simulator struct {
	cfg      *config.Config
	logger   *log.Logger
	clock    quartz.Clock
	in       io.Reader
	out      io.Writer
	renderer *display.Renderer
	seed     int64
}

// New creates a simulator for cfg. A zero seed in cfg is replaced with a
// time-derived one, available from Seed.
func New(cfg *config.Config, logger *log.Logger, opts ...Option) (*Simulator, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Simulator{
		cfg:    cfg,
		logger: logger,
		clock:  quartz.NewReal(),
		in:     os.Stdin,
		out:    os.Stdout,
		seed:   randutil.Resolve(cfg.Game.Seed),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		s.renderer = display.NewRenderer(s.out, true)
	}
	return s, nil
}

// Seed returns the seed every session of this simulator derives from.
func (s *Simulator) Seed() int64 { return s.seed }

// Config returns the configuration the simulator was built with.
func (s *Simulator) Config() *config.Config { return s.cfg }

// Play seats the configured player and dealer and plays one game. With
// unbounded set it plays until ctx is cancelled.
func (s *Simulator) Play(ctx context.Context, rounds int, unbounded bool) (float64, error) {
	settings := s.cfg.Game
	session, err := s.newSession(ctx, s.seed, settings.Player, settings.Dealer, settings.Verbose, true)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Starting game",
		"player", settings.Player,
		"dealer", settings.Dealer,
		"decks", settings.Decks,
		"rounds", rounds,
		"endless", unbounded,
		"seed", s.seed)

	score, err := session.Play(ctx, rounds, unbounded)
	s.logger.Info("Game finished", "rounds", session.Rounds(), "score", score)
	return score, err
}

// newSession builds fresh agents and a fresh shoe from seed, and trains the
// player first if it can learn. With persist set a Q-learning player starts
// from the configured table and saves it back after training.
func (s *Simulator) newSession(ctx context.Context, seed int64, playerName, dealerName string, verbose, persist bool) (*game.Session, error) {
	registry := bot.NewRegistry(bot.Deps{
		Seed:  seed,
		Decks: s.cfg.Game.Decks,
		Learning: bot.LearningParams{
			Alpha:   s.cfg.Learning.Alpha,
			Epsilon: s.cfg.Learning.Epsilon,
			Gamma:   s.cfg.Learning.Gamma,
		},
		In:     s.in,
		Out:    s.out,
		Logger: s.logger,
	})

	player := s.lookup(registry, playerName, game.PlayerSide)
	dealer := s.lookup(registry, dealerName, game.DealerSide)
	for _, agent := range []game.Agent{player, dealer} {
		if human, ok := agent.(*bot.HumanBot); ok {
			human.SetRenderer(s.renderer.State)
		}
	}

	shoe := deck.New(randutil.New(randutil.Derive(seed, 0)), s.cfg.Game.Decks)
	engine := game.NewEngine(shoe, player, dealer,
		game.WithRules(game.Rules{SurrenderAnyTime: s.cfg.SurrenderAnyTime()}),
		game.WithLogger(s.logger))
	session := game.NewSession(engine, s.logger)

	if verbose {
		session.Events().Subscribe(display.NewPrinter(s.out, s.renderer))
	}

	table := s.cfg.Learning.Table
	qbot, learns := player.(*bot.QBot)
	persist = persist && learns && table != ""
	if persist {
		found, err := qbot.LoadValues(table)
		if err != nil {
			return nil, err
		}
		if found {
			s.logger.Info("Loaded Q-table", "path", table)
		}
	}

	if _, ok := player.(game.Trainable); ok && s.cfg.Game.TrainRounds > 0 {
		s.logger.Debug("Training player", "agent", playerName, "rounds", s.cfg.Game.TrainRounds)
		if err := session.Train(ctx, s.cfg.Game.TrainRounds); err != nil {
			return nil, fmt.Errorf("training failed: %w", err)
		}
		if learns {
			s.logger.Debug("Learned values", "values", qbot.Values())
		}
	}

	if persist {
		if err := qbot.SaveValues(table); err != nil {
			return nil, err
		}
		s.logger.Info("Saved Q-table", "path", table)
	}
	return session, nil
}

func (s *Simulator) lookup(registry *bot.Registry, name string, side game.Side) game.Agent {
	agent, ok := registry.Lookup(name, side)
	if !ok {
		fallback := bot.DefaultPlayer
		if side == game.DealerSide {
			fallback = bot.DefaultDealer
		}
		s.logger.Warn("Unknown agent, using default", "side", side, "requested", name, "using", fallback)
	}
	return agent
}

// SampleOptions configures a performance sample
type SampleOptions struct {
	Player  string
	Dealer  string
	Samples int // games per batch
	Rounds  int // rounds per game
	Batches int
	Workers int // batches run concurrently
}

// SampleOptions returns the sample settings from the configuration.
func (s *Simulator) SampleOptions() SampleOptions {
	cfg := s.cfg.Sample
	return SampleOptions{
		Player:  cfg.Player,
		Dealer:  cfg.Dealer,
		Samples: cfg.Samples,
		Rounds:  cfg.Rounds,
		Batches: cfg.Batches,
		Workers: cfg.Workers,
	}
}

// validate rejects sizes below one and any matchup that would seat the
// interactive agent, including an unknown player name, which falls back to it.
func (o SampleOptions) validate() error {
	registry := bot.NewRegistry(bot.Deps{})
	if o.Player == bot.User || o.Dealer == bot.User || !registry.Has(o.Player) {
		return ErrInteractiveSample
	}
	if o.Samples < 1 || o.Rounds < 1 || o.Batches < 1 {
		return fmt.Errorf("samples, rounds and batches must be at least 1 (got %d, %d, %d)", o.Samples, o.Rounds, o.Batches)
	}
	return nil
}

// Reporter receives sampling progress. Calls are serialised.
type Reporter interface {
	OnGameComplete(done, total int)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(done, total int)

// OnGameComplete calls f.
func (f ReporterFunc) OnGameComplete(done, total int) { f(done, total) }

// Summary describes a finished sample
type Summary struct {
	Player          string
	Dealer          string
	Seed            int64
	Samples         int
	Rounds          int
	Batches         int
	BatchWinRates   []float64 // share of games with a positive score, per batch
	WinRate         float64   // mean of BatchWinRates
	Elapsed         time.Duration
	RoundsPerSecond float64
}

// Games returns how many games the sample played.
func (s Summary) Games() int { return s.Samples * s.Batches }

// Sample plays Batches batches of Samples games, each game Rounds rounds
// long, and reports the share of games won. Every batch owns its own
// session, shoe and agents, so batches run concurrently on up to Workers
// goroutines. A game counts as won when its final score is positive.
func (s *Simulator) Sample(ctx context.Context, opts SampleOptions, reporter Reporter) (*statistics.Statistics, Summary, error) {
	if err := opts.validate(); err != nil {
		return nil, Summary{}, err
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}

	s.logger.Info("Starting sample",
		"player", opts.Player,
		"dealer", opts.Dealer,
		"samples", opts.Samples,
		"rounds", opts.Rounds,
		"batches", opts.Batches,
		"workers", opts.Workers,
		"seed", s.seed)

	total := opts.Samples * opts.Batches
	var (
		mu   sync.Mutex
		done int
	)
	progress := func() {
		mu.Lock()
		defer mu.Unlock()
		done++
		if reporter != nil {
			reporter.OnGameComplete(done, total)
		}
	}

	batchStats := make([]*statistics.Statistics, opts.Batches)
	batchWins := make([]int, opts.Batches)
	start := s.clock.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for b := 0; b < opts.Batches; b++ {
		g.Go(func() error {
			stats, wins, err := s.runBatch(gctx, randutil.Derive(s.seed, b+1), opts, progress)
			if err != nil {
				return fmt.Errorf("batch %d: %w", b+1, err)
			}
			batchStats[b] = stats
			batchWins[b] = wins
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	elapsed := s.clock.Since(start)

	stats := &statistics.Statistics{}
	summary := Summary{
		Player:        opts.Player,
		Dealer:        opts.Dealer,
		Seed:          s.seed,
		Samples:       opts.Samples,
		Rounds:        opts.Rounds,
		Batches:       opts.Batches,
		BatchWinRates: make([]float64, opts.Batches),
		Elapsed:       elapsed,
	}
	for b := range batchStats {
		stats.Merge(batchStats[b])
		rate := float64(batchWins[b]) / float64(opts.Samples)
		summary.BatchWinRates[b] = rate
		summary.WinRate += rate / float64(opts.Batches)
	}
	if elapsed > 0 {
		summary.RoundsPerSecond = float64(stats.Rounds) / elapsed.Seconds()
	}

	if err := stats.Validate(); err != nil {
		return nil, Summary{}, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Sample complete",
		"games", total,
		"rounds", stats.Rounds,
		"win_rate", summary.WinRate,
		"elapsed", elapsed)
	return stats, summary, nil
}

// runBatch plays opts.Samples games on one session, resetting the score
// before each game.
func (s *Simulator) runBatch(ctx context.Context, seed int64, opts SampleOptions, progress func()) (*statistics.Statistics, int, error) {
	session, err := s.newSession(ctx, seed, opts.Player, opts.Dealer, false, false)
	if err != nil {
		return nil, 0, err
	}

	stats := &statistics.Statistics{}
	session.Events().Subscribe(game.SubscriberFunc(func(event game.GameEvent) {
		if e, ok := event.(game.RoundEndEvent); ok {
			stats.Add(statistics.FromRound(e.Result, seed))
		}
	}))

	wins := 0
	for i := 0; i < opts.Samples; i++ {
		score, err := session.Play(ctx, opts.Rounds, false)
		if err != nil {
			return nil, 0, err
		}
		if score > 0 {
			wins++
		}
		progress()
	}
	return stats, wins, nil
}
