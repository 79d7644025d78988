package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"tablero/internal/models"
)

func newOverviewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "overview [project]",
		Short: "Render a project's board as markdown",
		Long:  "Render a markdown summary of a project's board, nicely formatted for the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := findProject(app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Store.OpenBoard(cmd.Context(), project.ID)
			if err != nil {
				return err
			}

			md := overviewMarkdown(b.Project())
			rendered, err := glamour.Render(md, "dark")
			if err != nil {
				// Fall back to raw markdown on rendering trouble.
				fmt.Print(md)
				return nil
			}
			fmt.Print(rendered)
			return nil
		},
	}
}

// overviewMarkdown builds the markdown summary of one board.
func overviewMarkdown(p *models.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	if p.DueDate != nil {
		fmt.Fprintf(&b, "Due **%s**. ", p.DueDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "Status: **%s**.\n\n", p.Status)

	for _, lane := range models.AllLanes {
		fmt.Fprintf(&b, "## %s\n\n", lane.Title())
		tasks := p.Lanes.Get(lane)
		if len(tasks) == 0 {
			b.WriteString("*(empty)*\n\n")
			continue
		}
		mark := " "
		if lane == models.LaneDone {
			mark = "x"
		}
		for _, task := range tasks {
			fmt.Fprintf(&b, "- [%s] %s\n", mark, task)
		}
		b.WriteString("\n")
	}
	return b.String()
}
