// Package metrics stores self-play match outcomes as CSV tables for
// offline analysis.
package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"terra/game"
)

// MatchRecord summarizes one finished match.
type MatchRecord struct {
	ID     int
	Seed   int64
	Opener string // player who took the first turn
	Winner string
	Rounds int
}

// ScoreRecord is one player's final tally in one match.
type ScoreRecord struct {
	Game    int // MatchRecord.ID
	Faction string
	game.Score
}

// Writer stores experiment tables under a timestamped directory so
// repeated runs never clobber each other.
type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("results", name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create results directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory this writer stores tables under.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteMatches stores one row per finished match.
func (w *Writer) WriteMatches(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "matches.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create match table: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "seed", "opener", "winner", "rounds"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write match table header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			strconv.FormatInt(r.Seed, 10),
			r.Opener,
			r.Winner,
			strconv.Itoa(r.Rounds),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("cannot write match row: %w", err)
		}
	}
	return nil
}

// WriteScores stores one row per player per match.
func (w *Writer) WriteScores(records []ScoreRecord) error {
	path := filepath.Join(w.baseDir, "scores.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create score table: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{
		"game", "player", "faction", "points", "dwellings",
		"dwelling_points", "network", "area_bonus", "leftover_points", "total",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write score table header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Game),
			r.Player,
			r.Faction,
			strconv.Itoa(r.Points),
			strconv.Itoa(r.Dwellings),
			strconv.Itoa(r.DwellingPoints),
			strconv.Itoa(r.NetworkSize),
			strconv.Itoa(r.AreaBonus),
			strconv.Itoa(r.CoinPoints),
			strconv.Itoa(r.Total),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("cannot write score row: %w", err)
		}
	}
	return nil
}
