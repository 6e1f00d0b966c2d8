// Copyright 2020 Fugue, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/fugue/runtask/action"
	"github.com/fugue/runtask/config"
	"github.com/fugue/runtask/definition"
	"github.com/fugue/runtask/task"
	uuid "github.com/satori/go.uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRunCommand returns a command that runs a task and optionally waits
// for it to stop
func NewRunCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a task and optionally wait for it to finish",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {

			opts := getRuntaskOptions()
			log := newLogger(opts, os.Stderr)

			raw, err := getRawInputs(os.LookupEnv)
			if err != nil {
				fatal(err)
			}
			inputs, err := config.Parse(raw)
			if err != nil {
				fatal(err)
			}

			sess := mustSession(opts.Region)
			runner := task.NewFargate(ecs.New(sess), task.FargateConfig{
				PollInterval: viper.GetDuration("poll-interval"),
			})

			runID := uuid.NewV4().String()
			startedBy := "runtask-" + runID[:8]
			log.WithField("run_id", runID).Debug("Starting run")

			err = action.Run(context.Background(), action.Options{
				Inputs:     *inputs,
				Runner:     runner,
				Parameters: definition.NewSSM(ssm.New(sess)),
				Logger:     log,
				Output:     os.Stdout,
				StartedBy:  startedBy,
				ReportPath: viper.GetString("summary-file"),
			})
			if err != nil {
				fatal(err)
			}
		},
	}

	cmd.Flags().String("task-definition", "", "Task definition family:revision or ARN")
	cmd.Flags().String("task-definition-parameter", "", "SSM parameter holding the task definition")
	cmd.Flags().String("subnets", "", "Comma separated subnet IDs")
	cmd.Flags().String("security-groups", "", "Comma separated security group IDs")
	cmd.Flags().String("wait-for-finish", "false", "Wait for the task to stop (true | false)")
	cmd.Flags().String("wait-timeout", "", "Seconds to wait for the task to stop (default 300)")
	cmd.Flags().Duration("poll-interval", task.DefaultPollInterval, "Delay between task status checks")
	cmd.Flags().String("summary-file", "", "Write a YAML run report to this path")

	viper.BindPFlag("task-definition", cmd.Flags().Lookup("task-definition"))
	viper.BindPFlag("task-definition-parameter", cmd.Flags().Lookup("task-definition-parameter"))
	viper.BindPFlag("subnets", cmd.Flags().Lookup("subnets"))
	viper.BindPFlag("security-groups", cmd.Flags().Lookup("security-groups"))
	viper.BindPFlag("wait-for-finish", cmd.Flags().Lookup("wait-for-finish"))
	viper.BindPFlag("wait-timeout", cmd.Flags().Lookup("wait-timeout"))
	viper.BindPFlag("poll-interval", cmd.Flags().Lookup("poll-interval"))
	viper.BindPFlag("summary-file", cmd.Flags().Lookup("summary-file"))

	return cmd
}

func init() {
	rootCmd.AddCommand(NewRunCommand())
}
