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
package format

import "time"

// Duration formats the time between two timestamps, rounded to the second
func Duration(start, stop *time.Time) string {
	if start == nil || stop == nil || start.IsZero() || stop.IsZero() {
		return "-"
	}
	return stop.Sub(*start).Round(time.Second).String()
}
