package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tablero/internal/models"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		Long:  "Create, list, and delete projects",
	}
	cmd.AddCommand(
		newProjectCreateCmd(app),
		newProjectListCmd(app),
		newProjectDeleteCmd(app),
	)
	return cmd
}

func newProjectCreateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var due *time.Time
			if dueStr, _ := cmd.Flags().GetString("due"); dueStr != "" {
				parsed, err := time.Parse("2006-01-02", dueStr)
				if err != nil {
					return fmt.Errorf("invalid due date %q, use YYYY-MM-DD", dueStr)
				}
				due = &parsed
			}

			project, err := app.Store.CreateProject(cmd.Context(), args[0], due)
			if err != nil {
				return err
			}

			// The store renames on collision; tell the user what it
			// actually picked.
			fmt.Printf("Created project %q (%s)\n", project.Name, project.ID)
			return nil
		},
	}
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects := app.Store.Projects()
			if len(projects) == 0 {
				fmt.Println("No projects found. Create one with 'tablero project create'")
				return nil
			}

			completed := color.New(color.FgGreen)
			overdue := color.New(color.FgRed)
			muted := color.New(color.FgHiBlack)

			now := time.Now()
			for _, p := range projects {
				fmt.Printf("%s", p.Name)
				switch {
				case p.Status == models.StatusCompleted:
					_, _ = completed.Print("  completed")
				case p.Overdue(now):
					_, _ = overdue.Printf("  overdue (was due %s)", p.DueDate.Format("2006-01-02"))
				case p.DueDate != nil:
					_, _ = muted.Printf("  due %s", p.DueDate.Format("2006-01-02"))
				}
				_, _ = muted.Printf("  %d/%d done\n", len(p.Lanes.Done), p.Lanes.Count())
			}
			return nil
		},
	}
}

func newProjectDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [project]",
		Short: "Delete a project",
		Long:  "Delete a project and its saved board state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := findProject(app, args[0])
			if err != nil {
				return err
			}

			force, _ := cmd.Flags().GetBool("force")
			if !force {
				fmt.Printf("Are you sure you want to delete project '%s'? (y/n): ", project.Name)
				var confirmation string
				if _, err := fmt.Scanln(&confirmation); err != nil || (confirmation != "y" && confirmation != "Y") {
					fmt.Println("Project deletion cancelled.")
					return nil
				}
			}

			if err := app.Store.DeleteProject(cmd.Context(), project.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted project %q\n", project.Name)
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Delete without confirmation")
	return cmd
}
