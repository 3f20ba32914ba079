package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"careerpath/internal/application"
	"careerpath/internal/domain"
)

var shareCmd = &cobra.Command{
	Use:   "share <project-id> <task-id>",
	Short: "Print a social post announcing a completed task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := opContext(cmd)
		defer cancel()

		res := GetServices().Resolver.Resolve(ctx, args[0])
		if err := application.ValidateTaskID(&res.Project, args[1]); err != nil {
			return err
		}

		var title string
		for _, t := range res.Project.Tasks {
			if t.ID == args[1] {
				title = t.Title
			}
		}
		fmt.Println(domain.ComposeProgressPost(res.Project.Title, title))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
}
