package task

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/require"
)

func TestOutcomeSucceeded(t *testing.T) {

	ok := &Outcome{Containers: []ContainerResult{
		{Name: "a", ExitCode: aws.Int64(0)},
		{Name: "b", ExitCode: aws.Int64(0)},
	}}
	require.True(t, ok.Succeeded())

	failed := &Outcome{Containers: []ContainerResult{
		{Name: "a", ExitCode: aws.Int64(0)},
		{Name: "b", ExitCode: aws.Int64(255)},
	}}
	require.False(t, failed.Succeeded())

	noExitCode := &Outcome{Containers: []ContainerResult{{Name: "a"}}}
	require.False(t, noExitCode.Succeeded())

	missing := &Outcome{Failure: "MISSING"}
	require.False(t, missing.Succeeded())
}

func TestTimeoutError(t *testing.T) {
	err := &TimeoutError{Timeout: 5 * time.Minute, Tasks: []string{"a", "b"}}
	require.Equal(t, "Timed out after 5m0s waiting for tasks to stop: a, b", err.Error())
}

func TestFailureString(t *testing.T) {
	require.Equal(t, "MISSING", Failure{Reason: "MISSING"}.String())
	require.Equal(t, "RESOURCE:ENI (no ENIs available)",
		Failure{Reason: "RESOURCE:ENI", Detail: "no ENIs available"}.String())
}
