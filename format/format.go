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

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/fatih/structs"
)

// TableOpts are options used when rendering a table
type TableOpts struct {
	Rows       []interface{}
	Colors     []*color.Color
	Columns    []string
	Separator  string
	ShowHeader bool
}

// Table builds a text table from the given struct rows and chosen columns.
// It returns a list of lines that can be printed. Colors, when given, must
// have one entry per row.
func Table(opts TableOpts) ([]string, error) {

	if len(opts.Rows) == 0 {
		return nil, errors.New("No rows to display")
	}
	if len(opts.Columns) == 0 {
		return nil, errors.New("No columns to display")
	}
	separator := opts.Separator
	if separator == "" {
		separator = " | "
	}

	cells := make([][]string, len(opts.Rows))
	for i, row := range opts.Rows {
		fields := structs.Map(row)
		cells[i] = make([]string, len(opts.Columns))
		for j, column := range opts.Columns {
			value, ok := fields[column]
			if !ok {
				return nil, fmt.Errorf("Item has no attribute: %s", column)
			}
			cells[i][j] = fmt.Sprintf("%v", value)
		}
	}

	headers := make([]string, len(opts.Columns))
	widths := make([]int, len(opts.Columns))
	for j, column := range opts.Columns {
		headers[j] = strings.ToUpper(toSnakeCase(column))
		if opts.ShowHeader {
			widths[j] = len(headers[j])
		}
	}
	for _, row := range cells {
		for j, value := range row {
			if len(value) > widths[j] {
				widths[j] = len(value)
			}
		}
	}

	var lines []string
	if opts.ShowHeader {
		total := len(separator) * (len(widths) - 1)
		for _, w := range widths {
			total += w
		}
		rule := strings.Repeat("=", total)
		lines = append(lines, rule, pad(headers, widths, separator, nil), rule)
	}

	var rowColors []*color.Color
	if len(opts.Colors) == len(opts.Rows) {
		rowColors = opts.Colors
	}
	for i, row := range cells {
		var c *color.Color
		if rowColors != nil {
			c = rowColors[i]
		}
		lines = append(lines, pad(row, widths, separator, c))
	}
	return lines, nil
}

func pad(values []string, widths []int, separator string, c *color.Color) string {
	items := make([]string, len(values))
	for i, value := range values {
		f := fmt.Sprintf("%%-%ds", widths[i])
		if c != nil {
			items[i] = c.Sprintf(f, value)
		} else {
			items[i] = fmt.Sprintf(f, value)
		}
	}
	return strings.Join(items, separator)
}

// ExitCode -> exit_code, TaskARN -> task_arn
func toSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
