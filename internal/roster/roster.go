// Package roster is the entry point from CSV text to the working set of
// players. The working set is a plain []provider.Player owned by the caller;
// this package keeps no state between calls.
package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/albapepper/worth-the-bag/internal/provider"
	"github.com/albapepper/worth-the-bag/internal/provider/csvfile"
)

// ErrLoad marks the one fatal condition: the CSV could not be read at all.
var ErrLoad = errors.New("roster load failed")

// LoadAndNormalize decodes CSV text and normalizes every row. It never fails;
// malformed rows and cells degrade as described in csvfile.
func LoadAndNormalize(csvText string) []provider.Player {
	return csvfile.NormalizeAll(csvfile.Decode(csvText))
}

// Load fetches the CSV once from src and normalizes it. A fetch failure is
// returned wrapped in ErrLoad; it is never turned into an empty roster.
func Load(ctx context.Context, src csvfile.Source, logger *slog.Logger) ([]provider.Player, LoadResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	result := LoadResult{Source: src.String()}

	logger.Info("Loading roster...", "source", result.Source)
	start := time.Now()
	text, err := src.Fetch(ctx)
	if err != nil {
		return nil, result, fmt.Errorf("%w: %s: %w", ErrLoad, result.Source, err)
	}

	players := LoadAndNormalize(text)
	result.Columns = csvfile.Headers(text)
	result.Players = len(players)
	result.Teams = len(Teams(players))
	result.Duration = time.Since(start)

	if len(players) == 0 {
		logger.Warn("Roster is empty", "source", result.Source)
	}
	logger.Info("Roster loaded", "summary", result.Summary())
	return players, result, nil
}
