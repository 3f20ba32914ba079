package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"careerpath/internal/adapters/browser"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Resolve and select projects",
	Long: `Resolve a project id into a full project, or remember one as the
current project for this session.

Examples:
  careerpath-cli project show robotics_automation_project_2
  careerpath-cli project select robotics_automation_project_2
  careerpath-cli project show
  careerpath-cli project open robotics_automation_project_2 2`,
}

var projectShowCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show a project and its checklist",
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
		printProject(res.Project, svc.Progress.Load(ctx, res.ID))
		return nil
	},
}

var projectSelectCmd = &cobra.Command{
	Use:   "select <project-id>",
	Short: "Remember a project as the current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()

		svc := GetServices()
		if err := svc.Resolver.SelectProject(ctx, args[0]); err != nil {
			return err
		}
		res := svc.Resolver.Resolve(ctx, args[0])

		printResolution(res)
		successColor.Printf("Selected %s", res.Project.Title)
		fmt.Printf(" (%s)\n", args[0])
		return nil
	},
}

var projectForgetCmd = &cobra.Command{
	Use:   "forget <project-id>",
	Short: "Drop a project from the session cache so it is fetched again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()

		if err := GetServices().Resolver.Forget(ctx, args[0]); err != nil {
			return err
		}
		fmt.Printf("Forgot cached project %s\n", args[0])
		return nil
	},
}

var projectOpenCmd = &cobra.Command{
	Use:   "open <project-id> [link-number]",
	Short: "Open one of the project's resource links in the browser",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()

		res := GetServices().Resolver.Resolve(ctx, args[0])
		links := res.Project.ResourceLinks
		if len(links) == 0 {
			return fmt.Errorf("project %s has no resource links", args[0])
		}

		n := 1
		if len(args) == 2 {
			var err error
			if n, err = strconv.Atoi(args[1]); err != nil || n < 1 || n > len(links) {
				return fmt.Errorf("link number must be between 1 and %d", len(links))
			}
		}

		link := links[n-1]
		if err := browser.NewOpener().Open(link.URL); err != nil {
			return err
		}
		fmt.Printf("Opened %s ", link.Title)
		dimColor.Printf("%s\n", link.URL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectSelectCmd)
	projectCmd.AddCommand(projectForgetCmd)
	projectCmd.AddCommand(projectOpenCmd)
}
