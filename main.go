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
package main

//go:generate mockgen -source=task/task.go -package task -destination task/runner_mock.go
//go:generate mockgen -source=definition/store.go -package definition -destination definition/store_mock.go

import (
	"github.com/fugue/runtask/cmd"
)

func main() {
	cmd.Execute()
}
