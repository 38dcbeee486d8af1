// Command roster inspects a player CSV from the terminal.
//
// Usage:
//
//	bag-roster validate
//	bag-roster list --team "San Antonio Spurs"
//	bag-roster show --player "Victor Wembanyama"
//	bag-roster verdict --player "Stephen Curry" --csv data/players.csv
//	bag-roster impact --metric PER --value 24,9
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/worth-the-bag/internal/config"
	"github.com/albapepper/worth-the-bag/internal/locale"
	"github.com/albapepper/worth-the-bag/internal/provider"
	"github.com/albapepper/worth-the-bag/internal/provider/csvfile"
	"github.com/albapepper/worth-the-bag/internal/roster"
	"github.com/albapepper/worth-the-bag/internal/scoring"
)

// session is the state every subcommand shares: the loaded config, with
// --csv applied, and a logger on stderr at LOG_LEVEL.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var csvPath string
	s := &session{}
	root := &cobra.Command{
		Use:          "bag-roster",
		Short:        "Inspect an NBA roster CSV and its salary verdicts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if csvPath != "" {
				cfg.RosterCSV = csvPath
			}
			s.cfg = cfg
			s.logger = cfg.LoggerTo(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&csvPath, "csv", "", "Roster CSV path or URL (default: ROSTER_CSV)")

	root.AddCommand(validateCmd(s))
	root.AddCommand(listCmd(s))
	root.AddCommand(showCmd(s))
	root.AddCommand(verdictCmd(s))
	root.AddCommand(impactCmd(s))
	return root
}

// --------------------------------------------------------------------------
// validate command
// --------------------------------------------------------------------------

func validateCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the CSV and report missing columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(players []provider.Player, result roster.LoadResult) error {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, result.Summary())

				var missing []string
				for _, col := range csvfile.Columns() {
					if !result.HasColumn(col) {
						missing = append(missing, col)
					}
				}
				if len(missing) > 0 {
					fmt.Fprintf(out, "missing columns (read as 0): %s\n", strings.Join(missing, ", "))
				}

				unnamed := 0
				for _, p := range players {
					if p.Name == "" {
						unnamed++
					}
				}
				if unnamed > 0 {
					fmt.Fprintf(out, "rows without a player name: %d\n", unnamed)
				}

				if !result.HasColumn(provider.ColPlayer) {
					return fmt.Errorf("column %q is required", provider.ColPlayer)
				}
				fmt.Fprintln(out, "ok")
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// list command
// --------------------------------------------------------------------------

func listCmd(s *session) *cobra.Command {
	var team string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players with their verdicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(players []provider.Player, _ roster.LoadResult) error {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "PLAYER\tTEAM\tAGE\tPTS\tSALARY\tINDEX\tVERDICT")
				for _, p := range roster.ByTeam(players, team) {
					v := scoring.Classify(p)
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
						p.Name, p.Team, p.Age,
						scoring.FormatNumber(p.Points, 1),
						scoring.FormatSalary(p.SalaryNumeric),
						scoring.FormatNumber(v.ValueIndex, 2),
						v.Classification)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&team, "team", "", "Filter by team (case-insensitive)")
	return cmd
}

// --------------------------------------------------------------------------
// show command
// --------------------------------------------------------------------------

func showCmd(s *session) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one player's profile and advanced metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(players []provider.Player, _ roster.LoadResult) error {
				p, err := pick(players, name)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%s), %d years, %d games / %d started\n",
					p.Name, p.Team, p.Age, p.GamesPlayed, p.GamesStarted)
				fmt.Fprintf(out, "salary %s\n\n", scoring.FormatSalary(p.SalaryNumeric))

				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "AXIS\tVALUE\tSCALED")
				for _, a := range scoring.Radar(p) {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Label, scoring.FormatNumber(a.Value, 1), scoring.FormatNumber(a.Scaled, 0))
				}
				fmt.Fprintln(tw, "\t\t")
				fmt.Fprintln(tw, "SHOOTING\tPCT\t")
				for _, b := range scoring.ShootingSplits(p) {
					fmt.Fprintf(tw, "%s\t%s%%\t\n", b.Label, scoring.FormatNumber(b.Value, 1))
				}
				fmt.Fprintln(tw, "\t\t")
				fmt.Fprintln(tw, "METRIC\tVALUE\tLABEL")
				for _, c := range scoring.AdvancedCards(p) {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Metric, c.Display, c.Label)
				}
				if err := tw.Flush(); err != nil {
					return err
				}

				split := scoring.OffDefSplit(p)
				fmt.Fprintf(out, "\noffence %s%% / defence %s%%\n",
					scoring.FormatNumber(split.Offensive, 0), scoring.FormatNumber(split.Defensive, 0))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "player", "", "Player name (default: first on the roster)")
	return cmd
}

// --------------------------------------------------------------------------
// verdict command
// --------------------------------------------------------------------------

func verdictCmd(s *session) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "verdict",
		Short: "Classify one player's salary against performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run(func(players []provider.Player, _ roster.LoadResult) error {
				p, err := pick(players, name)
				if err != nil {
					return err
				}
				printVerdict(cmd.OutOrStdout(), p)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "player", "", "Player name (default: first on the roster)")
	return cmd
}

func printVerdict(w io.Writer, p provider.Player) {
	v := scoring.Classify(p)
	fmt.Fprintf(w, "%s: %s [%s]\n", p.Name, v.Classification, v.Badge)
	fmt.Fprintf(w, "performance %s, salary %s, index %s\n",
		scoring.FormatNumber(v.PerformanceScore, 1),
		scoring.FormatSalary(p.SalaryNumeric),
		scoring.FormatNumber(v.ValueIndex, 2))
	fmt.Fprintln(w, v.Explanation)
}

// --------------------------------------------------------------------------
// impact command
// --------------------------------------------------------------------------

func impactCmd(s *session) *cobra.Command {
	var metric, value string
	cmd := &cobra.Command{
		Use:   "impact",
		Short: "Label a metric value (" + strings.Join(scoring.Metrics(), ", ") + ")",
		RunE: func(cmd *cobra.Command, args []string) error {
			if metric == "" {
				return fmt.Errorf("--metric is required")
			}
			v, err := locale.Decimal(value)
			if err != nil {
				return fmt.Errorf("--value: %w", err)
			}
			if scoring.Thresholds(metric) == nil {
				s.logger.Warn("unknown metric", "metric", metric, "known", scoring.Metrics())
			}
			fmt.Fprintln(cmd.OutOrStdout(), scoring.ImpactLabel(metric, v))
			return nil
		},
	}
	cmd.Flags().StringVar(&metric, "metric", "", "Metric name")
	cmd.Flags().StringVar(&value, "value", "", "Metric value (decimal comma accepted)")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// pick finds name on the roster, or the first player when name is empty.
func pick(players []provider.Player, name string) (provider.Player, error) {
	if strings.TrimSpace(name) == "" {
		p, ok := roster.Default(players)
		if !ok {
			return provider.Player{}, fmt.Errorf("roster is empty")
		}
		return p, nil
	}
	p, ok := roster.Find(players, name)
	if !ok {
		return provider.Player{}, fmt.Errorf("player not found: %s", name)
	}
	return p, nil
}

// run fetches the roster once and hands it to fn. Interrupts cancel the
// fetch.
func (s *session) run(fn func(players []provider.Player, result roster.LoadResult) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	src := csvfile.NewSource(s.cfg.RosterCSV, s.cfg.SourceTimeout, s.logger)
	players, result, err := roster.Load(ctx, src, s.logger)
	if err != nil {
		return err
	}
	return fn(players, result)
}
