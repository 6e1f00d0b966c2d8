package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/aws/aws-sdk-go/service/ecs/ecsiface"
	"github.com/fugue/runtask/network"
	"github.com/stretchr/testify/require"
)

const (
	arnA = "arn:aws:ecs:us-east-1:123456789012:task/main/aaaa1111"
	arnB = "arn:aws:ecs:us-east-1:123456789012:task/main/bbbb2222"
)

type fakeECS struct {
	ecsiface.ECSAPI

	runInput  *ecs.RunTaskInput
	runOutput *ecs.RunTaskOutput
	runErr    error

	waitInput *ecs.DescribeTasksInput
	waiter    request.Waiter
	waitFunc  func(ctx aws.Context) error

	describeCalls  int
	describeOutput *ecs.DescribeTasksOutput

	pages [][]string
}

func (f *fakeECS) RunTaskWithContext(ctx aws.Context, input *ecs.RunTaskInput, opts ...request.Option) (*ecs.RunTaskOutput, error) {
	f.runInput = input
	return f.runOutput, f.runErr
}

func (f *fakeECS) WaitUntilTasksStoppedWithContext(ctx aws.Context, input *ecs.DescribeTasksInput, opts ...request.WaiterOption) error {
	f.waitInput = input
	f.waiter.ApplyOptions(opts...)
	if f.waitFunc != nil {
		return f.waitFunc(ctx)
	}
	return nil
}

func (f *fakeECS) DescribeTasksWithContext(ctx aws.Context, input *ecs.DescribeTasksInput, opts ...request.Option) (*ecs.DescribeTasksOutput, error) {
	f.describeCalls++
	f.waitInput = input
	return f.describeOutput, nil
}

func (f *fakeECS) ListTaskDefinitionsPagesWithContext(ctx aws.Context, input *ecs.ListTaskDefinitionsInput, fn func(*ecs.ListTaskDefinitionsOutput, bool) bool, opts ...request.Option) error {
	for i, page := range f.pages {
		if !fn(&ecs.ListTaskDefinitionsOutput{TaskDefinitionArns: aws.StringSlice(page)}, i == len(f.pages)-1) {
			break
		}
	}
	return nil
}

func testOptions() Options {
	return Options{
		Cluster:    "main",
		Definition: "app:3",
		StartedBy:  "runtask-abcd1234",
		Network: network.Configuration{
			Subnets:        []string{"subnet-1", "subnet-2"},
			SecurityGroups: []string{"sg-1"},
			AssignPublicIP: network.PublicIPDisabled,
		},
	}
}

func TestFargateRun(t *testing.T) {

	api := &fakeECS{runOutput: &ecs.RunTaskOutput{
		Tasks: []*ecs.Task{
			{TaskArn: aws.String(arnA)},
			{TaskArn: aws.String(arnB)},
		},
	}}
	runner := NewFargate(api, FargateConfig{})

	placement, err := runner.Run(context.Background(), testOptions())
	require.Nil(t, err)
	require.Equal(t, []*Task{
		{ARN: arnA, ID: "aaaa1111"},
		{ARN: arnB, ID: "bbbb2222"},
	}, placement.Tasks)
	require.Empty(t, placement.Failures)

	input := api.runInput
	require.Equal(t, ecs.LaunchTypeFargate, *input.LaunchType)
	require.Equal(t, "main", *input.Cluster)
	require.Equal(t, "app:3", *input.TaskDefinition)
	require.Equal(t, "runtask-abcd1234", *input.StartedBy)

	vpc := input.NetworkConfiguration.AwsvpcConfiguration
	require.Equal(t, ecs.AssignPublicIpDisabled, *vpc.AssignPublicIp)
	require.Equal(t, []string{"subnet-1", "subnet-2"}, aws.StringValueSlice(vpc.Subnets))
	require.Equal(t, []string{"sg-1"}, aws.StringValueSlice(vpc.SecurityGroups))
}

func TestFargateRunNoTasks(t *testing.T) {

	api := &fakeECS{runOutput: &ecs.RunTaskOutput{
		Failures: []*ecs.Failure{
			{Arn: aws.String("arn:aws:ecs:us-east-1:123456789012:container-instance/x"), Reason: aws.String("RESOURCE:MEMORY")},
		},
	}}
	placement, err := NewFargate(api, FargateConfig{}).Run(context.Background(), testOptions())
	require.Nil(t, err)
	require.Empty(t, placement.Tasks)
	require.Len(t, placement.Failures, 1)
	require.Equal(t, "RESOURCE:MEMORY", placement.Failures[0].String())
}

func TestFargateRunError(t *testing.T) {

	cause := errors.New("AccessDenied")
	api := &fakeECS{runErr: cause}
	_, err := NewFargate(api, FargateConfig{}).Run(context.Background(), testOptions())
	require.True(t, errors.Is(err, cause))

	opts := testOptions()
	opts.Cluster = ""
	_, err = NewFargate(api, FargateConfig{}).Run(context.Background(), opts)
	require.Equal(t, "Cluster unset", err.Error())
}

func TestFargateWaitUntilStopped(t *testing.T) {

	api := &fakeECS{}
	runner := NewFargate(api, FargateConfig{PollInterval: 10 * time.Second})
	tasks := []*Task{NewTask(arnA), NewTask(arnB)}

	err := runner.WaitUntilStopped(context.Background(), "main", tasks, 300*time.Second)
	require.Nil(t, err)
	require.Equal(t, "main", *api.waitInput.Cluster)
	require.Equal(t, []string{arnA, arnB}, aws.StringValueSlice(api.waitInput.Tasks))
	require.Equal(t, 30, api.waiter.MaxAttempts)
	require.Equal(t, 10*time.Second, api.waiter.Delay(1))
}

func TestFargateWaitNoTasks(t *testing.T) {
	api := &fakeECS{}
	err := NewFargate(api, FargateConfig{}).WaitUntilStopped(context.Background(), "main", nil, time.Minute)
	require.Nil(t, err)
	require.Nil(t, api.waitInput)
}

func TestFargateWaitAttemptsExceeded(t *testing.T) {

	api := &fakeECS{waitFunc: func(ctx aws.Context) error {
		return awserr.New(request.WaiterResourceNotReadyErrorCode, "exceeded wait attempts", nil)
	}}
	err := NewFargate(api, FargateConfig{}).WaitUntilStopped(context.Background(), "main",
		[]*Task{NewTask(arnA)}, time.Minute)

	var timeoutErr *TimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	require.Equal(t, time.Minute, timeoutErr.Timeout)
	require.Equal(t, []string{arnA}, timeoutErr.Tasks)
}

func TestFargateWaitDeadline(t *testing.T) {

	api := &fakeECS{waitFunc: func(ctx aws.Context) error {
		<-ctx.Done()
		return awserr.New(request.CanceledErrorCode, "request context canceled", ctx.Err())
	}}
	err := NewFargate(api, FargateConfig{}).WaitUntilStopped(context.Background(), "main",
		[]*Task{NewTask(arnA)}, 10*time.Millisecond)

	var timeoutErr *TimeoutError
	require.True(t, errors.As(err, &timeoutErr))
}

func TestFargateWaitTransportError(t *testing.T) {

	cause := awserr.New("ClusterNotFoundException", "cluster not found", nil)
	api := &fakeECS{waitFunc: func(ctx aws.Context) error { return cause }}
	err := NewFargate(api, FargateConfig{}).WaitUntilStopped(context.Background(), "main",
		[]*Task{NewTask(arnA)}, time.Minute)

	var timeoutErr *TimeoutError
	require.False(t, errors.As(err, &timeoutErr))
	require.True(t, errors.Is(err, cause))
}

func TestFargateDescribe(t *testing.T) {

	started := time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)
	stopped := started.Add(90 * time.Second)

	api := &fakeECS{describeOutput: &ecs.DescribeTasksOutput{
		Tasks: []*ecs.Task{
			{
				TaskArn:       aws.String(arnA),
				LastStatus:    aws.String("STOPPED"),
				StoppedReason: aws.String("Essential container in task exited"),
				StartedAt:     &started,
				StoppedAt:     &stopped,
				Containers: []*ecs.Container{
					{Name: aws.String("app"), ExitCode: aws.Int64(0)},
					{Name: aws.String("sidecar"), Reason: aws.String("CannotPullContainerError")},
				},
			},
		},
		Failures: []*ecs.Failure{
			{Arn: aws.String(arnB), Reason: aws.String("MISSING")},
		},
	}}

	outcomes, err := NewFargate(api, FargateConfig{}).Describe(context.Background(), "main",
		[]*Task{NewTask(arnA), NewTask(arnB)})
	require.Nil(t, err)
	require.Equal(t, 1, api.describeCalls)
	require.Equal(t, []string{arnA, arnB}, aws.StringValueSlice(api.waitInput.Tasks))
	require.Len(t, outcomes, 2)

	a := outcomes[0]
	require.Equal(t, "aaaa1111", a.Task.ID)
	require.Equal(t, "STOPPED", a.LastStatus)
	require.Equal(t, &started, a.StartedAt)
	require.Len(t, a.Containers, 2)
	require.True(t, a.Containers[0].Succeeded())
	require.False(t, a.Containers[1].Succeeded())
	require.Nil(t, a.Containers[1].ExitCode)
	require.Equal(t, "CannotPullContainerError", a.Containers[1].Reason)

	b := outcomes[1]
	require.Equal(t, "bbbb2222", b.Task.ID)
	require.Equal(t, "MISSING", b.Failure)
	require.Empty(t, b.Containers)
}

func TestListDefinitions(t *testing.T) {

	api := &fakeECS{pages: [][]string{
		{"arn:aws:ecs:us-east-1:123456789012:task-definition/app:1"},
		{"arn:aws:ecs:us-east-1:123456789012:task-definition/migrate:14"},
	}}
	defs, err := ListDefinitions(context.Background(), api, "")
	require.Nil(t, err)
	require.Equal(t, []Definition{
		{ARN: "arn:aws:ecs:us-east-1:123456789012:task-definition/app:1", Name: "app", Revision: "1"},
		{ARN: "arn:aws:ecs:us-east-1:123456789012:task-definition/migrate:14", Name: "migrate", Revision: "14"},
	}, defs)

	api = &fakeECS{pages: [][]string{{"arn:aws:ecs:us-east-1:123456789012:task-definition/app"}}}
	_, err = ListDefinitions(context.Background(), api, "")
	require.NotNil(t, err)
}

func TestTaskID(t *testing.T) {
	require.Equal(t, "aaaa1111", NewTask(arnA).ID)
	require.Equal(t, "cccc", NewTask("arn:aws:ecs:us-east-1:123456789012:task/cccc").ID)
	require.Equal(t, "plain", NewTask("plain").ID)
}

func TestMaxAttempts(t *testing.T) {
	require.Equal(t, 50, maxAttempts(300*time.Second, 6*time.Second))
	require.Equal(t, 2, maxAttempts(7*time.Second, 6*time.Second))
	require.Equal(t, 1, maxAttempts(time.Millisecond, 6*time.Second))
}
