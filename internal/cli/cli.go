// Package cli wires the application together and exposes the cobra
// command surface. Running tablero with no subcommand opens the TUI;
// the project/task subcommands drive the same core for scripting.
package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tablero/internal/config"
	"tablero/internal/logging"
	"tablero/internal/models"
	"tablero/internal/storage"
	"tablero/internal/store"
	"tablero/internal/tui"
)

// App bundles the wired services the commands operate on.
type App struct {
	Store  store.Service
	Config *config.Config
}

// Execute initializes logging, storage, and the project store, then
// dispatches the command line.
func Execute(ctx context.Context) error {
	if err := logging.Init(); err != nil {
		// No log file is annoying but not fatal.
		fmt.Printf("Warning: logging disabled: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Warning: bad config, using defaults: %v\n", err)
		cfg = config.Default()
	}

	db, err := storage.InitDB(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	gw := storage.New(db)
	defer func() { _ = gw.Close() }()

	st := store.NewService(gw)
	if err := st.LoadAll(ctx); err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	app := &App{Store: st, Config: cfg}

	root := newRootCmd(app)
	root.AddCommand(
		newProjectCmd(app),
		newTaskCmd(app),
		newOverviewCmd(app),
	)
	return root.ExecuteContext(ctx)
}

// newRootCmd builds the root command; with no subcommand it launches
// the TUI.
func newRootCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tablero",
		Short: "Tablero - a terminal kanban board for personal projects",
		Long: `Tablero is a terminal kanban board. Each project has three lanes -
To Do, In Progress, Done - and everything is saved locally as you go.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(tui.InitialModel(app.Store, app.Config), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running program: %w", err)
			}
			return nil
		},
	}
}

// findProject resolves a CLI project argument by exact name first,
// then by id or unique id prefix.
func findProject(app *App, arg string) (*models.Project, error) {
	if p, ok := app.Store.FindByName(arg); ok {
		return p, nil
	}
	if p, ok := app.Store.Get(arg); ok {
		return p, nil
	}

	var match *models.Project
	for _, p := range app.Store.Projects() {
		if strings.HasPrefix(p.ID, arg) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous project %q", arg)
			}
			match = p
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no project named %q", arg)
	}
	return match, nil
}
