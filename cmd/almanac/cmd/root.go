package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"almanac/pkg/config"
	"almanac/pkg/goal"
	"almanac/pkg/store"
	gsync "almanac/pkg/sync"
	"almanac/pkg/tui"
)

var (
	dataDir string
	jsonOut bool

	cfg config.Config
	st  *store.Store
	fsb *store.FSBackend
)

var rootCmd = &cobra.Command{
	Use:   "almanac",
	Short: "A goal-tracking calendar over plain markdown files",
	Long: `almanac tracks daily, weekly, and monthly goals stored as markdown
files with YAML frontmatter. Run without arguments for the interactive
calendar; subcommands cover scripting and quick edits.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(dataDir)
		if err != nil {
			return err
		}
		root := dataDir
		if cfg.GoalsDir != "" {
			root = cfg.GoalsDir
		}
		fsb, err = store.NewFSBackend(root)
		if err != nil {
			return err
		}
		// CLI commands save synchronously; the TUI swaps in a debouncer.
		st = store.NewStore(fsb, nil, store.Immediate{}, goal.Options{
			FarFuture: cfg.FarFutureDate(),
		})
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", store.DefaultDataDir(), "data directory")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output JSON")
}

func runTUI() error {
	sched := store.NewDebouncer(cfg.Debounce())
	ts := store.NewStore(fsb, nil, sched, goal.Options{FarFuture: cfg.FarFutureDate()})

	if err := gsync.EnsureRepo(fsb.Root); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: git init failed: %v\n", err)
	}

	m := tui.NewModel(ts, fsb.Root)
	p := tea.NewProgram(m, tea.WithAltScreen())

	cleanup, err := tui.StartWatcher(fsb.GoalsDir(), cfg.Debounce(), p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file watcher failed: %v\n", err)
	} else {
		defer cleanup()
	}

	_, err = p.Run()
	ts.Flush()
	return err
}

// loadGoal finds one goal by its id.
func loadGoal(id string) (*goal.Goal, error) {
	goals, err := st.LoadGoals()
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, fmt.Errorf("no goal with id %q", id)
}

// JSON helpers

func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func goalToMap(g *goal.Goal) map[string]interface{} {
	return map[string]interface{}{
		"id":          g.ID,
		"title":       g.Title,
		"type":        string(g.Type),
		"status":      string(g.Status),
		"priority":    string(g.Priority),
		"category":    g.Category,
		"startDate":   goal.DayKey(g.StartDate),
		"endDate":     goal.DayKey(g.EndDate),
		"tags":        g.Tags,
		"completions": g.Completions,
		"path":        g.FilePath,
	}
}

func goalsToMap(goals []*goal.Goal) []map[string]interface{} {
	var result []map[string]interface{}
	for _, g := range goals {
		result = append(result, goalToMap(g))
	}
	return result
}
