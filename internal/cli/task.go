package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tablero/internal/models"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks on a project's board",
	}
	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskMoveCmd(app),
		newTaskRemoveCmd(app),
		newTaskListCmd(app),
	)
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [project] [task]",
		Short: "Add a task to a lane",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := findProject(app, args[0])
			if err != nil {
				return err
			}
			if args[1] == "" {
				return fmt.Errorf("task name cannot be empty")
			}

			laneStr, _ := cmd.Flags().GetString("lane")
			lane, err := models.ParseLane(laneStr)
			if err != nil {
				return err
			}

			b, err := app.Store.OpenBoard(cmd.Context(), project.ID)
			if err != nil {
				return err
			}
			final, err := b.AddTask(cmd.Context(), args[1], lane)
			if err != nil {
				return err
			}
			fmt.Printf("Added %q to %s\n", final, lane.Title())
			return nil
		},
	}
	cmd.Flags().String("lane", "todo", "Target lane: todo, in-progress, done")
	return cmd
}

func newTaskMoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [project] [task] [lane]",
		Short: "Move a task to another lane",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := findProject(app, args[0])
			if err != nil {
				return err
			}
			lane, err := models.ParseLane(args[2])
			if err != nil {
				return err
			}

			b, err := app.Store.OpenBoard(cmd.Context(), project.ID)
			if err != nil {
				return err
			}
			if _, _, ok := b.Project().Lanes.Find(args[1]); !ok {
				return fmt.Errorf("no task named %q on %s", args[1], project.Name)
			}

			index, _ := cmd.Flags().GetInt("index")
			if index < 0 {
				index = len(b.Tasks(lane))
			}
			if err := b.MoveTasks(cmd.Context(), []string{args[1]}, lane, index); err != nil {
				return err
			}
			fmt.Printf("Moved %q to %s\n", args[1], lane.Title())
			return nil
		},
	}
	cmd.Flags().Int("index", -1, "Insertion position in the target lane (default: end)")
	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [project] [task]",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := findProject(app, args[0])
			if err != nil {
				return err
			}
			b, err := app.Store.OpenBoard(cmd.Context(), project.ID)
			if err != nil {
				return err
			}
			// Removing an absent task is a no-op; still say so.
			if _, _, ok := b.Project().Lanes.Find(args[1]); !ok {
				fmt.Printf("No task named %q on %s\n", args[1], project.Name)
				return nil
			}
			if err := b.RemoveTask(cmd.Context(), args[1]); err != nil {
				return err
			}
			fmt.Printf("Removed %q\n", args[1])
			return nil
		},
	}
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [project]",
		Short: "List a project's tasks by lane",
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

			laneTitle := color.New(color.FgCyan, color.Bold)
			doneStyle := color.New(color.FgGreen)

			for _, lane := range models.AllLanes {
				tasks := b.Tasks(lane)
				_, _ = laneTitle.Printf("%s (%d)\n", lane.Title(), len(tasks))
				for _, task := range tasks {
					if lane == models.LaneDone {
						_, _ = doneStyle.Printf("  ✓ %s\n", task)
					} else {
						fmt.Printf("  - %s\n", task)
					}
				}
			}
			if b.Status() == models.StatusCompleted {
				_, _ = doneStyle.Println("Project completed")
			}
			return nil
		},
	}
}
