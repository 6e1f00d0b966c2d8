package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/arn"
	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/aws/aws-sdk-go/service/ecs/ecsiface"
)

// Definition carries information about an ECS task definition
type Definition struct {
	ARN      string
	Name     string
	Revision string
}

// ParseDefinitionARN splits a task definition ARN into family and revision
func ParseDefinitionARN(value string) (Definition, error) {
	defARN, err := arn.Parse(value)
	if err != nil {
		return Definition{}, err
	}
	parts := strings.Split(defARN.Resource, "/")
	if len(parts) != 2 {
		return Definition{}, fmt.Errorf("Unexpected resource fmt: %s", defARN.Resource)
	}
	nameParts := strings.Split(parts[1], ":")
	if len(nameParts) != 2 {
		return Definition{}, fmt.Errorf("Unexpected resource fmt: %s", defARN.Resource)
	}
	return Definition{
		ARN:      value,
		Name:     nameParts[0],
		Revision: nameParts[1],
	}, nil
}

// ListDefinitions returns active task definitions, optionally restricted to
// families with the given prefix
func ListDefinitions(ctx context.Context, api ecsiface.ECSAPI, familyPrefix string) (defs []Definition, finalErr error) {

	input := &ecs.ListTaskDefinitionsInput{
		Status: aws.String(ecs.TaskDefinitionStatusActive),
	}
	if familyPrefix != "" {
		input.FamilyPrefix = aws.String(familyPrefix)
	}

	err := api.ListTaskDefinitionsPagesWithContext(ctx, input,
		func(page *ecs.ListTaskDefinitionsOutput, done bool) bool {
			for _, arnPtr := range page.TaskDefinitionArns {
				def, err := ParseDefinitionARN(aws.StringValue(arnPtr))
				if err != nil {
					finalErr = err
					return false
				}
				defs = append(defs, def)
			}
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("Failed to list task definitions: %w", err)
	}
	return
}
