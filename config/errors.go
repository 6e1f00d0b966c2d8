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
package config

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a class of configuration error
type ErrorKind int

const (
	// NoSubnets indicates the subnet list was empty after parsing
	NoSubnets ErrorKind = iota + 1

	// NoSecurityGroups indicates the security group list was empty after parsing
	NoSecurityGroups

	// NoTaskDefinitionProvided indicates neither a task definition nor a
	// parameter key was given
	NoTaskDefinitionProvided

	// ParameterHasNoValue indicates the parameter lookup failed or was empty
	ParameterHasNoValue

	// NoCluster indicates the cluster was not given
	NoCluster

	// InvalidWaitTimeout indicates the wait timeout is not a positive integer
	InvalidWaitTimeout
)

// ConfigError is returned when inputs are missing or invalid. Key carries the
// offending value where one exists, e.g. the parameter name.
type ConfigError struct {
	Kind ErrorKind
	Key  string
}

// Error message for the failed input
func (e *ConfigError) Error() string {
	switch e.Kind {
	case NoSubnets:
		return "No subnets provided"
	case NoSecurityGroups:
		return "No security groups provided"
	case NoTaskDefinitionProvided:
		return "No task definition or SSM parameter provided"
	case ParameterHasNoValue:
		return fmt.Sprintf("SSM Parameter %s has no value", e.Key)
	case NoCluster:
		return "No cluster provided"
	case InvalidWaitTimeout:
		return fmt.Sprintf("Invalid wait timeout: %q", e.Key)
	}
	return fmt.Sprintf("Invalid configuration: %s", e.Key)
}

// NewError returns a ConfigError of the given kind
func NewError(kind ErrorKind, key string) *ConfigError {
	return &ConfigError{Kind: kind, Key: key}
}

// IsKind returns true if err is a ConfigError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var cerr *ConfigError
	if errors.As(err, &cerr) {
		return cerr.Kind == kind
	}
	return false
}
