package definition

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
)

// NotFound indicates a parameter does not exist or has no value
type NotFound string

func (e NotFound) Error() string { return string(e) }

// ParameterStore is an interface used to look up stored string values
type ParameterStore interface {

	// Get the value of a parameter
	Get(ctx context.Context, name string) (string, error)
}

type ssmStore struct {
	api ssmiface.SSMAPI
}

// NewSSM returns a ParameterStore backed by SSM Parameter Store
func NewSSM(api ssmiface.SSMAPI) ParameterStore {
	return &ssmStore{api: api}
}

// Get the decrypted value of an SSM parameter
func (s *ssmStore) Get(ctx context.Context, name string) (string, error) {

	result, err := s.api.GetParameterWithContext(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		if isNotFound(err) {
			return "", NotFound(fmt.Sprintf("Parameter not found: %s", name))
		}
		return "", fmt.Errorf("Failed to get parameter %s: %w", name, err)
	}
	if result.Parameter == nil || aws.StringValue(result.Parameter.Value) == "" {
		return "", NotFound(fmt.Sprintf("Parameter has no value: %s", name))
	}
	return *result.Parameter.Value, nil
}

func isNotFound(err error) bool {
	if aerr, ok := err.(awserr.Error); ok {
		switch aerr.Code() {
		case ssm.ErrCodeParameterNotFound, ssm.ErrCodeParameterVersionNotFound:
			return true
		}
	}
	return false
}
