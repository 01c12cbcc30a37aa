package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type GameRecord struct {
	ID      int
	Player1 string // agent name
	Player2 string // agent name
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Outcome is one agent's line in the results chart.
type Outcome struct {
	Agent       string
	Wins        int
	Losses      int
	Draws       int
	AvgMoveTime time.Duration
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> for the files of one experiment.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteSetup stores the experiment configuration as YAML.
func (w *Writer) WriteSetup(setup any) error {
	data, err := yaml.Marshal(setup)
	if err != nil {
		return fmt.Errorf("failed to encode setup: %w", err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, "setup.yaml"), data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write setup file: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "player1", "player2", "starting_player", "winner", "utility", "total_moves", "start_time", "end_time", "duration"}
	rows := lo.Map(records, func(record GameRecord, _ int) []string {
		return []string{
			strconv.Itoa(record.ID),
			record.Player1,
			record.Player2,
			record.StartingPlayer,
			record.Winner,
			strconv.FormatFloat(record.Utility, 'g', -1, 64),
			strconv.Itoa(record.TotalMoves),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		}
	})
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "algorithm", "goroutines", "duration", "evaluations", "nodes", "episodes", "full_playouts"}
	rows := lo.Map(records, func(record MoveRecord, _ int) []string {
		return []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			record.Algorithm,
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Evaluations),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.FullPlayouts),
		}
	})
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	// Create a file
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Write header
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

// WriteChart renders game outcomes and average move times per agent to
// results.html.
func (w *Writer) WriteChart(title string, outcomes []Outcome) error {
	agents := lo.Map(outcomes, func(o Outcome, _ int) string { return o.Agent })

	results := charts.NewBar()
	results.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "game outcomes"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)
	results.SetXAxis(agents).
		AddSeries("wins", barData(outcomes, func(o Outcome) float64 { return float64(o.Wins) })).
		AddSeries("draws", barData(outcomes, func(o Outcome) float64 { return float64(o.Draws) })).
		AddSeries("losses", barData(outcomes, func(o Outcome) float64 { return float64(o.Losses) }))

	times := charts.NewBar()
	times.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "average move time (ms)"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)
	times.SetXAxis(agents).
		AddSeries("move time", barData(outcomes, func(o Outcome) float64 {
			return float64(o.AvgMoveTime) / float64(time.Millisecond)
		}))

	page := components.NewPage()
	page.AddCharts(results, times)

	f, err := os.Create(filepath.Join(w.baseDir, "results.html"))
	if err != nil {
		return fmt.Errorf("failed to create results chart: %w", err)
	}
	defer f.Close()

	err = page.Render(f)
	if err != nil {
		return fmt.Errorf("failed to render results chart: %w", err)
	}
	return nil
}

func barData(outcomes []Outcome, value func(Outcome) float64) []opts.BarData {
	return lo.Map(outcomes, func(o Outcome, _ int) opts.BarData {
		return opts.BarData{Value: value(o)}
	})
}
