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
	"strconv"
	"strings"
	"time"
)

// DefaultWaitTimeout bounds the wait phase when no timeout is given
const DefaultWaitTimeout = 300 * time.Second

// Raw contains the string inputs exactly as they were supplied
type Raw struct {
	TaskDefinition          string
	TaskDefinitionParameter string
	Cluster                 string
	Subnets                 string
	SecurityGroups          string
	WaitForFinish           string
	WaitTimeout             string
}

// Inputs are the parsed inputs for one invocation. Subnets and security
// groups stay raw here and are resolved by the network package.
type Inputs struct {
	TaskDefinition          string
	TaskDefinitionParameter string
	Cluster                 string
	Subnets                 string
	SecurityGroups          string
	WaitForFinish           bool
	WaitTimeout             time.Duration
}

// Parse validates raw inputs and converts the wait settings
func Parse(raw Raw) (*Inputs, error) {

	cluster := strings.TrimSpace(raw.Cluster)
	if cluster == "" {
		return nil, NewError(NoCluster, "")
	}
	timeout, err := ParseWaitTimeout(raw.WaitTimeout)
	if err != nil {
		return nil, err
	}
	return &Inputs{
		TaskDefinition:          strings.TrimSpace(raw.TaskDefinition),
		TaskDefinitionParameter: strings.TrimSpace(raw.TaskDefinitionParameter),
		Cluster:                 cluster,
		Subnets:                 raw.Subnets,
		SecurityGroups:          raw.SecurityGroups,
		WaitForFinish:           ParseWaitForFinish(raw.WaitForFinish),
		WaitTimeout:             timeout,
	}, nil
}

// ParseWaitForFinish returns true only for a case-insensitive "true"
func ParseWaitForFinish(value string) bool {
	return strings.EqualFold(value, "true")
}

// ParseWaitTimeout converts a number of seconds to a duration. A blank value
// selects DefaultWaitTimeout.
func ParseWaitTimeout(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultWaitTimeout, nil
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return 0, NewError(InvalidWaitTimeout, value)
	}
	return time.Duration(seconds) * time.Second, nil
}
