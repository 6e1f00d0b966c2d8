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

// Package monitor dispatches tasks and, optionally, waits for them to stop
// and turns their container exit codes into a single verdict.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fugue/runtask/task"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// ErrNoTasksStarted is returned when a run request succeeds but places
// no tasks
var ErrNoTasksStarted = errors.New("No tasks were started")

// ContainerFailure describes a container that did not exit with code zero
type ContainerFailure struct {
	Task      string
	Container string
	ExitCode  *int64
	Reason    string
}

func (f *ContainerFailure) Error() string {
	if f.ExitCode == nil {
		return fmt.Sprintf("container %s in task %s has no exit code (%s)",
			f.Container, f.Task, f.Reason)
	}
	return fmt.Sprintf("container %s in task %s exited with code %d",
		f.Container, f.Task, *f.ExitCode)
}

// TaskFailure describes a task ECS was unable to describe
type TaskFailure struct {
	Task   string
	Reason string
}

func (f *TaskFailure) Error() string {
	return fmt.Sprintf("task %s could not be described: %s", f.Task, f.Reason)
}

// Result of waiting on a group of tasks
type Result struct {
	Outcomes  []*task.Outcome
	Succeeded bool

	// Failures lists each failed container or task when Succeeded is false
	Failures error
}

// Dispatch submits one run request and returns the started tasks in the
// order ECS returned them
func Dispatch(ctx context.Context, runner task.Runner, opts task.Options, log logrus.FieldLogger) ([]*task.Task, error) {

	placement, err := runner.Run(ctx, opts)
	if err != nil {
		return nil, err
	}
	for _, f := range placement.Failures {
		log.WithFields(logrus.Fields{
			"cluster": opts.Cluster,
			"reason":  f.String(),
		}).Warnf("Failed to place task: %s", f.ARN)
	}
	if len(placement.Tasks) == 0 {
		log.WithField("cluster", opts.Cluster).Error(ErrNoTasksStarted.Error())
		return nil, ErrNoTasksStarted
	}
	log.WithField("cluster", opts.Cluster).Infof("Started tasks: %s",
		strings.Join(task.ARNs(placement.Tasks), ", "))
	return placement.Tasks, nil
}

// Wait blocks until all tasks stop or the timeout elapses, then describes
// the tasks and aggregates their container exit codes. A timeout or
// transport error aborts the wait without producing a Result.
func Wait(ctx context.Context, runner task.Runner, cluster string, tasks []*task.Task, timeout time.Duration, log logrus.FieldLogger) (*Result, error) {

	log.WithField("cluster", cluster).Infof("Waiting for tasks to stop: %s",
		strings.Join(task.ARNs(tasks), ", "))

	if err := runner.WaitUntilStopped(ctx, cluster, tasks, timeout); err != nil {
		return nil, err
	}
	outcomes, err := runner.Describe(ctx, cluster, tasks)
	if err != nil {
		return nil, err
	}

	result := Aggregate(outcomes, log)
	if result.Succeeded {
		log.Info("All containers exited successfully")
	} else {
		log.Errorf("Tasks failed: %s", result.Failures)
	}
	return result, nil
}

// Aggregate logs each container result and computes the verdict. Every
// container is reported even after the verdict has failed.
func Aggregate(outcomes []*task.Outcome, log logrus.FieldLogger) *Result {

	var failures *multierror.Error

	for _, outcome := range outcomes {
		taskARN := outcome.Task.ARN

		if outcome.Failure != "" {
			log.WithFields(logrus.Fields{
				"task":   taskARN,
				"reason": outcome.Failure,
			}).Errorf("Task %s could not be described", taskARN)
			failures = multierror.Append(failures, &TaskFailure{
				Task:   taskARN,
				Reason: outcome.Failure,
			})
			continue
		}

		for _, c := range outcome.Containers {
			entry := log.WithFields(logrus.Fields{
				"task":      taskARN,
				"container": c.Name,
			})
			if c.ExitCode != nil {
				entry.WithField("exit_code", *c.ExitCode).Infof(
					"Task %s container %s exited with code %d",
					taskARN, c.Name, *c.ExitCode)
			} else {
				entry.WithField("reason", c.Reason).Infof(
					"Task %s container %s has no exit code", taskARN, c.Name)
			}
			if !c.Succeeded() {
				failures = multierror.Append(failures, &ContainerFailure{
					Task:      taskARN,
					Container: c.Name,
					ExitCode:  c.ExitCode,
					Reason:    c.Reason,
				})
			}
		}
	}

	result := &Result{Outcomes: outcomes, Succeeded: true}
	if failures != nil {
		failures.ErrorFormat = joinErrors
		result.Succeeded = false
		result.Failures = failures
	}
	return result
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
