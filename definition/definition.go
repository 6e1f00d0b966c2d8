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

// Package definition determines which ECS task definition to run. The task
// definition is either given directly or read from a parameter store.
package definition

import (
	"context"

	"github.com/fugue/runtask/config"
	"github.com/sirupsen/logrus"
)

// Kind of task definition source
type Kind int

const (
	// Direct sources carry the task definition itself
	Direct Kind = iota

	// FromParameter sources carry the name of a parameter holding the
	// task definition
	FromParameter
)

func (k Kind) String() string {
	if k == FromParameter {
		return "parameter"
	}
	return "direct"
}

// Source of the task definition to run
type Source struct {
	Kind  Kind
	Value string
}

// NewSource selects the source of the task definition. A direct value
// always takes precedence over a parameter name.
func NewSource(direct, parameter string) (Source, error) {
	if direct != "" {
		return Source{Kind: Direct, Value: direct}, nil
	}
	if parameter != "" {
		return Source{Kind: FromParameter, Value: parameter}, nil
	}
	return Source{}, config.NewError(config.NoTaskDefinitionProvided, "")
}

// Resolve returns the task definition identifier. The store is only
// consulted for FromParameter sources. The identifier is returned as-is.
func (s Source) Resolve(ctx context.Context, store ParameterStore, log logrus.FieldLogger) (string, error) {
	if s.Kind == Direct {
		return s.Value, nil
	}
	value, err := store.Get(ctx, s.Value)
	if err != nil {
		log.WithField("parameter", s.Value).Debugf("Parameter lookup failed: %s", err)
		return "", config.NewError(config.ParameterHasNoValue, s.Value)
	}
	if value == "" {
		return "", config.NewError(config.ParameterHasNoValue, s.Value)
	}
	return value, nil
}

// Resolve the task definition from a direct value or a parameter name
func Resolve(ctx context.Context, direct, parameter string, store ParameterStore, log logrus.FieldLogger) (string, error) {
	src, err := NewSource(direct, parameter)
	if err != nil {
		return "", err
	}
	return src.Resolve(ctx, store, log)
}
