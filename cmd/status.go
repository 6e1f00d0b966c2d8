package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/fugue/runtask/monitor"
	"github.com/fugue/runtask/task"
	"github.com/spf13/cobra"
)

// NewStatusCommand returns a command that shows container results of
// existing tasks
func NewStatusCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "status TASK...",
		Short: "Show container exit codes of tasks",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {

			opts := getRuntaskOptions()
			if opts.Cluster == "" {
				fatal(errors.New("No cluster provided"))
			}

			var tasks []*task.Task
			for _, arg := range args {
				tasks = append(tasks, task.NewTask(arg))
			}

			runner := task.NewFargate(ecs.New(mustSession(opts.Region)), task.FargateConfig{})
			outcomes, err := runner.Describe(context.Background(), opts.Cluster, tasks)
			if err != nil {
				fatal(err)
			}
			table, err := monitor.Summary(outcomes)
			if err != nil {
				fatal(err)
			}
			for _, row := range table {
				fmt.Println(row)
			}

			for _, outcome := range outcomes {
				if !outcome.Succeeded() {
					os.Exit(1)
				}
			}
		},
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(NewStatusCommand())
}
