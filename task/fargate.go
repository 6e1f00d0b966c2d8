package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/aws/aws-sdk-go/service/ecs/ecsiface"
)

// DefaultPollInterval matches the delay of the ECS TasksStopped waiter
const DefaultPollInterval = 6 * time.Second

// FargateConfig defines a Fargate setup
type FargateConfig struct {
	PollInterval time.Duration
}

type ecsRunner struct {
	ecs ecsiface.ECSAPI
	cfg FargateConfig
}

// NewFargate returns a task runner backended by ECS Fargate
func NewFargate(api ecsiface.ECSAPI, cfg FargateConfig) Runner {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	return &ecsRunner{ecs: api, cfg: cfg}
}

func (r *ecsRunner) Run(ctx context.Context, opts Options) (*Placement, error) {

	if opts.Cluster == "" {
		return nil, errors.New("Cluster unset")
	}
	if opts.Definition == "" {
		return nil, errors.New("TaskDefinition unset")
	}

	input := &ecs.RunTaskInput{
		LaunchType:     aws.String(ecs.LaunchTypeFargate),
		Cluster:        aws.String(opts.Cluster),
		TaskDefinition: aws.String(opts.Definition),
		NetworkConfiguration: &ecs.NetworkConfiguration{
			AwsvpcConfiguration: &ecs.AwsVpcConfiguration{
				AssignPublicIp: aws.String(string(opts.Network.AssignPublicIP)),
				SecurityGroups: aws.StringSlice(opts.Network.SecurityGroups),
				Subnets:        aws.StringSlice(opts.Network.Subnets),
			},
		},
	}
	if opts.StartedBy != "" {
		input.StartedBy = aws.String(opts.StartedBy)
	}

	result, err := r.ecs.RunTaskWithContext(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("Failed to run task: %w", err)
	}

	placement := &Placement{}
	for _, t := range result.Tasks {
		if t.TaskArn == nil {
			continue
		}
		placement.Tasks = append(placement.Tasks, NewTask(*t.TaskArn))
	}
	for _, f := range result.Failures {
		placement.Failures = append(placement.Failures, newFailure(f))
	}
	return placement, nil
}

func (r *ecsRunner) WaitUntilStopped(ctx context.Context, cluster string, tasks []*Task, timeout time.Duration) error {
	if len(tasks) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	poll := r.cfg.PollInterval
	err := r.ecs.WaitUntilTasksStoppedWithContext(ctx, &ecs.DescribeTasksInput{
		Cluster: aws.String(cluster),
		Tasks:   aws.StringSlice(ARNs(tasks)),
	},
		request.WithWaiterDelay(request.ConstantWaiterDelay(poll)),
		request.WithWaiterMaxAttempts(maxAttempts(timeout, poll)),
	)
	if err != nil {
		if isTimeout(ctx, err) {
			return &TimeoutError{Timeout: timeout, Tasks: ARNs(tasks)}
		}
		return fmt.Errorf("Failed to wait until tasks stopped: %w", err)
	}
	return nil
}

func (r *ecsRunner) Describe(ctx context.Context, cluster string, tasks []*Task) ([]*Outcome, error) {
	if len(tasks) == 0 {
		return nil, nil
	}
	result, err := r.ecs.DescribeTasksWithContext(ctx, &ecs.DescribeTasksInput{
		Cluster: aws.String(cluster),
		Tasks:   aws.StringSlice(ARNs(tasks)),
	})
	if err != nil {
		return nil, fmt.Errorf("Failed to describe tasks: %w", err)
	}

	var outcomes []*Outcome
	for _, t := range result.Tasks {
		outcome := &Outcome{
			Task:          NewTask(aws.StringValue(t.TaskArn)),
			LastStatus:    aws.StringValue(t.LastStatus),
			StoppedReason: aws.StringValue(t.StoppedReason),
			StartedAt:     t.StartedAt,
			StoppedAt:     t.StoppedAt,
		}
		for _, c := range t.Containers {
			outcome.Containers = append(outcome.Containers, ContainerResult{
				Name:     aws.StringValue(c.Name),
				ExitCode: c.ExitCode,
				Reason:   aws.StringValue(c.Reason),
			})
		}
		outcomes = append(outcomes, outcome)
	}
	for _, f := range result.Failures {
		failure := newFailure(f)
		outcomes = append(outcomes, &Outcome{
			Task:    NewTask(failure.ARN),
			Failure: failure.String(),
		})
	}
	return outcomes, nil
}

func newFailure(f *ecs.Failure) Failure {
	return Failure{
		ARN:    aws.StringValue(f.Arn),
		Reason: aws.StringValue(f.Reason),
		Detail: aws.StringValue(f.Detail),
	}
}

// Number of waiter attempts that fit in the timeout, at least one
func maxAttempts(timeout, poll time.Duration) int {
	n := int((timeout + poll - 1) / poll)
	if n < 1 {
		n = 1
	}
	return n
}

func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() == context.DeadlineExceeded {
		return true
	}
	if aerr, ok := err.(awserr.Error); ok {
		return aerr.Code() == request.WaiterResourceNotReadyErrorCode
	}
	return false
}
