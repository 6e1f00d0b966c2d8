package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws/arn"
	"github.com/fugue/runtask/network"
)

// Options configures a task to run
type Options struct {
	Cluster    string
	Definition string
	Network    network.Configuration
	StartedBy  string
}

// Task that was run
type Task struct {
	ARN string `json:"arn" yaml:"arn"`
	ID  string `json:"id" yaml:"id"`
}

// NewTask returns a Task for the given task ARN
func NewTask(taskARN string) *Task {
	return &Task{ARN: taskARN, ID: taskID(taskARN)}
}

// Task ARNs come in two forms: task/<id> and task/<cluster>/<id>
func taskID(taskARN string) string {
	resource := taskARN
	if parsed, err := arn.Parse(taskARN); err == nil {
		resource = parsed.Resource
	}
	parts := strings.Split(resource, "/")
	return parts[len(parts)-1]
}

// Failure reported by ECS for a task that could not be placed or described
type Failure struct {
	ARN    string
	Reason string
	Detail string
}

func (f Failure) String() string {
	if f.Detail != "" {
		return fmt.Sprintf("%s (%s)", f.Reason, f.Detail)
	}
	return f.Reason
}

// Placement is the result of a run request
type Placement struct {
	Tasks    []*Task
	Failures []Failure
}

// ContainerResult describes how one container in a stopped task exited.
// ExitCode is nil when the container never produced one.
type ContainerResult struct {
	Name     string
	ExitCode *int64
	Reason   string
}

// Succeeded returns true if the container exited with code zero
func (c ContainerResult) Succeeded() bool {
	return c.ExitCode != nil && *c.ExitCode == 0
}

// Outcome of a stopped task. Failure is set when ECS could not describe the
// task, in which case there are no container results.
type Outcome struct {
	Task          *Task
	LastStatus    string
	StoppedReason string
	StartedAt     *time.Time
	StoppedAt     *time.Time
	Containers    []ContainerResult
	Failure       string
}

// Succeeded returns true if the task was described and every container
// exited with code zero
func (o *Outcome) Succeeded() bool {
	if o.Failure != "" {
		return false
	}
	for _, c := range o.Containers {
		if !c.Succeeded() {
			return false
		}
	}
	return true
}

// TimeoutError is returned when tasks did not stop within the timeout
type TimeoutError struct {
	Timeout time.Duration
	Tasks   []string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Timed out after %s waiting for tasks to stop: %s",
		e.Timeout, strings.Join(e.Tasks, ", "))
}

// ARNs returns the ARN of each task
func ARNs(tasks []*Task) []string {
	arns := make([]string, len(tasks))
	for i, t := range tasks {
		arns[i] = t.ARN
	}
	return arns
}

// Runner is an interface used to run tasks
type Runner interface {

	// Run starts tasks from a task definition
	Run(ctx context.Context, opts Options) (*Placement, error)

	// WaitUntilStopped blocks until all tasks stop or the timeout elapses
	WaitUntilStopped(ctx context.Context, cluster string, tasks []*Task, timeout time.Duration) error

	// Describe returns the outcome of each task with one request
	Describe(ctx context.Context, cluster string, tasks []*Task) ([]*Outcome, error)
}
