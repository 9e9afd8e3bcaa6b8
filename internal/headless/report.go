package headless

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a batch of rounds.
type Summary struct {
	Rounds       int
	MeanScore    float64
	StdDevScore  float64
	MedianScore  float64
	MinScore     int
	MaxScore     int
	SurvivalRate float64 // fraction of rounds that reached the duration
	MeanSurvived time.Duration
}

// Summarize computes score statistics over results.
// The standard deviation of a single round is zero.
func Summarize(results []RoundResult) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	scores := make([]float64, len(results))
	survived := make([]float64, len(results))
	alive := 0
	for i, r := range results {
		scores[i] = float64(r.Score)
		survived[i] = float64(r.SurvivedMs)
		if r.Survived {
			alive++
		}
	}

	s := Summary{
		Rounds:       len(results),
		MeanScore:    stat.Mean(scores, nil),
		SurvivalRate: float64(alive) / float64(len(results)),
		MeanSurvived: time.Duration(stat.Mean(survived, nil)) * time.Millisecond,
	}
	if len(scores) > 1 {
		s.StdDevScore = stat.StdDev(scores, nil)
	}

	sort.Float64s(scores)
	s.MedianScore = stat.Quantile(0.5, stat.Empirical, scores, nil)
	s.MinScore = int(scores[0])
	s.MaxScore = int(scores[len(scores)-1])
	return s
}

// WriteCSV writes one CSV row per round with a header line.
func WriteCSV(w io.Writer, results []RoundResult) error {
	if err := gocsv.Marshal(results, w); err != nil {
		return fmt.Errorf("headless: writing csv: %w", err)
	}
	return nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// WriteTable writes the rounds as a bordered table followed by the summary.
func WriteTable(w io.Writer, results []RoundResult, sum Summary) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Round", "Score", "Survived", "Alive", "Spawned", "Seekers", "Hits").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range results {
		alive := "no"
		if r.Survived {
			alive = "yes"
		}
		t.Row(
			strconv.Itoa(r.Round),
			strconv.Itoa(r.Score),
			(time.Duration(r.SurvivedMs) * time.Millisecond).String(),
			alive,
			strconv.Itoa(r.Spawned),
			strconv.Itoa(r.Seekers),
			strconv.Itoa(r.Hits),
		)
	}

	_, err := fmt.Fprintf(w, "%s\n\nrounds %d  mean %.1f  stddev %.1f  median %.1f  min %d  max %d  survived %.0f%%  mean time %v\n",
		t.Render(), sum.Rounds, sum.MeanScore, sum.StdDevScore, sum.MedianScore,
		sum.MinScore, sum.MaxScore, sum.SurvivalRate*100, sum.MeanSurvived.Round(time.Millisecond))
	return err
}
