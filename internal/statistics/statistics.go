package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/internal/game"
)

// RoundResult represents the outcome of a single blackjack round
type RoundResult struct {
	Score    float64        // net units won/lost by the player
	Seed     int64          // RNG seed of the batch the round came from (for replay)
	Outcomes []game.Outcome // one per player hand
	Scores   []float64      // per-hand scores, summing to Score
	Doubled  bool           // any hand doubled down
	Split    bool
}

// FromRound converts an engine result into a statistics record.
func FromRound(r game.RoundResult, seed int64) RoundResult {
	out := RoundResult{
		Score:    r.Score,
		Seed:     seed,
		Outcomes: make([]game.Outcome, len(r.Hands)),
		Scores:   make([]float64, len(r.Hands)),
		Split:    r.Split,
	}
	for i, h := range r.Hands {
		out.Outcomes[i] = h.Outcome
		out.Scores[i] = h.Score
		if h.Multiplier > 1 {
			out.Doubled = true
		}
	}
	return out
}

// numOutcomes covers game.OutcomeLose through game.OutcomeBust.
const numOutcomes = int(game.OutcomeBust) + 1

// OutcomeStats tracks hands that finished a particular way
type OutcomeStats struct {
	Hands int
	Score float64
}

// Statistics tracks per-round simulation statistics
type Statistics struct {
	Rounds int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	WinningRounds int
	LosingRounds  int
	PushRounds    int

	// Outcome analytics, by hand rather than by round
	Outcomes [numOutcomes]OutcomeStats
	AllScore float64 // Total score for sanity check

	DoubledRounds int
	DoubledScore  float64
	SplitRounds   int
	SplitScore    float64
}

// Mean returns the arithmetic mean score per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.Sum / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	score := result.Score
	s.Rounds++
	s.Sum += score
	s.Sum2 += score * score
	s.Values = append(s.Values, score)

	switch {
	case score > 0:
		s.WinningRounds++
	case score < 0:
		s.LosingRounds++
	default:
		s.PushRounds++
	}

	for i, outcome := range result.Outcomes {
		if int(outcome) < 0 || int(outcome) >= numOutcomes {
			continue
		}
		s.Outcomes[outcome].Hands++
		if i < len(result.Scores) {
			s.Outcomes[outcome].Score += result.Scores[i]
		}
	}
	s.AllScore += score

	if result.Doubled {
		s.DoubledRounds++
		s.DoubledScore += score
	}
	if result.Split {
		s.SplitRounds++
		s.SplitScore += score
	}
}

// Merge folds other into s.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.Values = append(s.Values, other.Values...)
	s.WinningRounds += other.WinningRounds
	s.LosingRounds += other.LosingRounds
	s.PushRounds += other.PushRounds
	for i := range s.Outcomes {
		s.Outcomes[i].Hands += other.Outcomes[i].Hands
		s.Outcomes[i].Score += other.Outcomes[i].Score
	}
	s.AllScore += other.AllScore
	s.DoubledRounds += other.DoubledRounds
	s.DoubledScore += other.DoubledScore
	s.SplitRounds += other.SplitRounds
	s.SplitScore += other.SplitScore
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// OutcomeRate returns the share of hands that finished with outcome
func (s *Statistics) OutcomeRate(outcome game.Outcome) float64 {
	total := s.Hands()
	if total == 0 || int(outcome) < 0 || int(outcome) >= numOutcomes {
		return 0
	}
	return float64(s.Outcomes[outcome].Hands) / float64(total)
}

// Hands returns how many player hands were settled, counting split hands
// separately.
func (s *Statistics) Hands() int {
	total := 0
	for _, o := range s.Outcomes {
		total += o.Hands
	}
	return total
}

// WinRate returns the share of rounds with a positive score
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.WinningRounds) / float64(s.Rounds)
}

// IsLedgerBalanced checks that per-outcome scores add up to the total
func (s *Statistics) IsLedgerBalanced() bool {
	sum := 0.0
	for _, o := range s.Outcomes {
		sum += o.Score
	}
	return math.Abs(s.AllScore-sum) <= 1e-6
}

// Validate performs comprehensive validation of statistics data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: AllScore=%.6f does not match outcome totals", s.AllScore)
	}

	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)",
			len(s.Values), s.Rounds)
	}

	if total := s.WinningRounds + s.LosingRounds + s.PushRounds; total != s.Rounds {
		return fmt.Errorf("win/lose/push total (%d) does not match rounds count (%d)", total, s.Rounds)
	}

	if hands := s.Hands(); hands < s.Rounds {
		return fmt.Errorf("hands count (%d) is below rounds count (%d)", hands, s.Rounds)
	}

	return nil
}
