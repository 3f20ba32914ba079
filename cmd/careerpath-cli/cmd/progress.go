package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"careerpath/internal/application/commands"
	"careerpath/internal/domain"
)

var toggleDone bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Track task completion",
	Long: `Show, toggle and reset the task checklist of a project.

Progress is stored per project id and survives the end of a session.

Examples:
  careerpath-cli progress show robotics_automation_project_2
  careerpath-cli progress toggle robotics_automation_project_2 task-1
  careerpath-cli progress toggle robotics_automation_project_2 task-1 --done=false
  careerpath-cli progress reset robotics_automation_project_2
  careerpath-cli progress list`,
}

var progressShowCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show the checklist of a project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()

		svc := GetServices()
		res, err := svc.Resolver.ResolveSelected(ctx, firstArg(args))
		if err != nil {
			return err
		}

		printResolution(res)
		titleColor.Println(res.Project.Title)
		printTasks(res.Project, svc.Progress.Load(ctx, res.ID))
		return nil
	},
}

var progressToggleCmd = &cobra.Command{
	Use:   "toggle <project-id> <task-id>",
	Short: "Mark a task done, or not done with --done=false",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()

		svc := GetServices()
		toggle := commands.NewToggleTaskCommand(svc.Resolver, svc.Progress, args[0], args[1], toggleDone)
		result, err := toggle.Execute(ctx)
		if err != nil {
			return err
		}

		successColor.Println(result.Message)
		fmt.Println(domain.ProgressLine(result.Summary, 20))
		if result.Post != "" {
			fmt.Println()
			dimColor.Println("Share it:")
			fmt.Println(result.Post)
		}
		return nil
	},
}

var progressResetCmd = &cobra.Command{
	Use:   "reset <project-id>",
	Short: "Clear every completed task of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()

		if err := GetServices().Progress.Reset(ctx, args[0]); err != nil {
			return err
		}
		successColor.Printf("Reset progress of %s\n", args[0])
		return nil
	},
}

var progressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects with saved progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()

		svc := GetServices()
		ids, err := svc.Progress.Tracked(ctx)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			fmt.Println("No progress saved yet.")
			return nil
		}

		for _, id := range ids {
			res := svc.Resolver.Resolve(ctx, id)
			summary := svc.Progress.Summary(ctx, id, res.Project)
			fmt.Printf("%-40s %3d%%  %s\n", id, summary.Percent, dimColor.Sprint(res.Project.Title))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressShowCmd)
	progressCmd.AddCommand(progressToggleCmd)
	progressCmd.AddCommand(progressResetCmd)
	progressCmd.AddCommand(progressListCmd)

	progressToggleCmd.Flags().BoolVar(&toggleDone, "done", true, "completion state to set")
}

// firstArg returns the optional positional argument, empty when absent
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
