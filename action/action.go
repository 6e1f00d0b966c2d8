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

// Package action runs one task invocation end to end. Every failure, including
// a recovered panic, is returned from Run; the caller decides how to exit.
package action

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/fugue/runtask/config"
	"github.com/fugue/runtask/definition"
	"github.com/fugue/runtask/monitor"
	"github.com/fugue/runtask/network"
	"github.com/fugue/runtask/task"
	"github.com/sirupsen/logrus"
)

// ErrTasksFailed is returned when tasks stopped but at least one container
// exited with a non-zero code
var ErrTasksFailed = errors.New("One or more containers exited with a non-zero code")

// Options used for one invocation
type Options struct {
	Inputs     config.Inputs
	Runner     task.Runner
	Parameters definition.ParameterStore
	Logger     logrus.FieldLogger

	// Output receives the container summary table. Nil disables it.
	Output io.Writer

	// StartedBy tags the tasks in ECS
	StartedBy string

	// ReportPath is where a YAML report is written, if set
	ReportPath string
}

// Run resolves the inputs, dispatches the task, and waits for it when
// requested
func Run(ctx context.Context, opts Options) (err error) {
	log := opts.Logger
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("Unexpected failure: %v", r)
			log.Error(err.Error())
			log.Debug(string(debug.Stack()))
		}
	}()
	return run(ctx, opts, log)
}

func run(ctx context.Context, opts Options, log logrus.FieldLogger) (err error) {

	inputs := opts.Inputs

	definitionID, err := definition.Resolve(ctx,
		inputs.TaskDefinition, inputs.TaskDefinitionParameter, opts.Parameters, log)
	if err != nil {
		return err
	}
	netCfg, err := network.Resolve(inputs.Subnets, inputs.SecurityGroups)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"cluster":         inputs.Cluster,
		"task_definition": definitionID,
		"started_by":      opts.StartedBy,
	}).Infof("Running task definition %s", definitionID)

	tasks, err := monitor.Dispatch(ctx, opts.Runner, task.Options{
		Cluster:    inputs.Cluster,
		Definition: definitionID,
		Network:    *netCfg,
		StartedBy:  opts.StartedBy,
	}, log)
	if err != nil {
		return err
	}

	report := &monitor.Report{
		Cluster:        inputs.Cluster,
		TaskDefinition: definitionID,
		StartedBy:      opts.StartedBy,
	}
	report.SetTasks(tasks)
	if opts.ReportPath != "" {
		defer func() {
			if writeErr := report.Write(opts.ReportPath); writeErr != nil {
				log.Warn(writeErr.Error())
				if err == nil {
					err = writeErr
				}
			}
		}()
	}

	if !inputs.WaitForFinish {
		return nil
	}

	result, err := monitor.Wait(ctx, opts.Runner, inputs.Cluster, tasks, inputs.WaitTimeout, log)
	if err != nil {
		return err
	}
	report.AddResult(result)

	if opts.Output != nil {
		lines, err := monitor.Summary(result.Outcomes)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Fprintln(opts.Output, line)
		}
	}

	if !result.Succeeded {
		return ErrTasksFailed
	}
	return nil
}
