package simulator

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/statistics"
)

var summaryOutcomes = []game.Outcome{
	game.OutcomeBlackjack,
	game.OutcomeWin,
	game.OutcomePush,
	game.OutcomeLose,
	game.OutcomeBust,
	game.OutcomeSurrender,
}

// PrintSummary prints a comprehensive summary of sample results
func PrintSummary(w io.Writer, r *display.Renderer, stats *statistics.Statistics, summary Summary) {
	mean := stats.Mean()
	median := stats.Median()
	stdDev := stats.StdDev()
	stdErr := stats.StdError()
	low, high := stats.ConfidenceInterval95()
	p05 := stats.Percentile(0.05)
	p25 := stats.Percentile(0.25)
	p75 := stats.Percentile(0.75)
	p95 := stats.Percentile(0.95)

	fmt.Fprintln(w, strings.Repeat("-", 50))
	fmt.Fprintf(w, "%s\n", r.Header(fmt.Sprintf("SAMPLE DISTRIBUTION: %s vs %s", summary.Player, summary.Dealer)))
	fmt.Fprintf(w, "Number of Samples: %d\n", summary.Samples)
	fmt.Fprintf(w, "Number of Games per Sample: %d\n", summary.Rounds)
	fmt.Fprintf(w, "Batches: %d\n", summary.Batches)
	fmt.Fprintf(w, "Sample mean: %.4f\n", summary.WinRate)
	rates := make([]string, len(summary.BatchWinRates))
	for i, rate := range summary.BatchWinRates {
		rates[i] = fmt.Sprintf("%.3f", rate)
	}
	fmt.Fprintf(w, "Batch win rates: %s\n", strings.Join(rates, ", "))
	fmt.Fprintf(w, "Time elapsed (seconds): %.2f\n", summary.Elapsed.Seconds())
	fmt.Fprintf(w, "Throughput: %.0f rounds/sec\n", summary.RoundsPerSecond)
	fmt.Fprintf(w, "Seed: %d\n", summary.Seed)

	fmt.Fprintf(w, "\n%s\n", r.Header("STATISTICAL RESULTS"))
	fmt.Fprintf(w, "Rounds played: %d (%d hands)\n", stats.Rounds, stats.Hands())
	fmt.Fprintf(w, "Mean: %.4f units/round\n", mean)
	fmt.Fprintf(w, "Median: %.4f units/round\n", median)
	fmt.Fprintf(w, "Std Dev: %.4f units\n", stdDev)
	fmt.Fprintf(w, "Std Error: %.4f units\n", stdErr)
	fmt.Fprintf(w, "95%% CI: [%.4f, %.4f] units/round\n", low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.3f, P25=%.3f, P75=%.3f, P95=%.3f\n", p05, p25, p75, p95)
	fmt.Fprintf(w, "Rounds won/pushed/lost: %d/%d/%d (%.1f%% won)\n",
		stats.WinningRounds, stats.PushRounds, stats.LosingRounds, stats.WinRate()*100)

	fmt.Fprintf(w, "\n%s\n", r.Header("OUTCOME ANALYSIS"))
	for _, outcome := range summaryOutcomes {
		o := stats.Outcomes[outcome]
		fmt.Fprintf(w, "%-10s %6d hands (%5.1f%%), %+.1f units\n",
			outcome.String()+":", o.Hands, stats.OutcomeRate(outcome)*100, o.Score)
	}
	if stats.DoubledRounds > 0 {
		fmt.Fprintf(w, "Doubled: %d rounds, %.3f units/round\n",
			stats.DoubledRounds, stats.DoubledScore/float64(stats.DoubledRounds))
	}
	if stats.SplitRounds > 0 {
		fmt.Fprintf(w, "Split: %d rounds, %.3f units/round\n",
			stats.SplitRounds, stats.SplitScore/float64(stats.SplitRounds))
	}
}
