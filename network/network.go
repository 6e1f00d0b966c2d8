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
package network

import (
	"strings"

	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/fugue/runtask/config"
)

// PublicIPAssignment controls whether tasks receive a public IP
type PublicIPAssignment string

// PublicIPDisabled is the only assignment tasks are launched with
const PublicIPDisabled PublicIPAssignment = ecs.AssignPublicIpDisabled

// Configuration places a task inside a VPC
type Configuration struct {
	Subnets        []string
	SecurityGroups []string
	AssignPublicIP PublicIPAssignment
}

// Resolve builds a Configuration from comma separated subnet and security
// group lists. Both lists must contain at least one entry.
func Resolve(subnetsRaw, securityGroupsRaw string) (*Configuration, error) {
	subnets := SplitList(subnetsRaw)
	if len(subnets) == 0 {
		return nil, config.NewError(config.NoSubnets, "")
	}
	securityGroups := SplitList(securityGroupsRaw)
	if len(securityGroups) == 0 {
		return nil, config.NewError(config.NoSecurityGroups, "")
	}
	return &Configuration{
		Subnets:        subnets,
		SecurityGroups: securityGroups,
		AssignPublicIP: PublicIPDisabled,
	}, nil
}

// SplitList splits on commas, trims each item, and drops empty items.
// Order and duplicates are preserved.
func SplitList(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
