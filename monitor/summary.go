package monitor

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/fugue/runtask/format"
	"github.com/fugue/runtask/task"
)

type summaryRow struct {
	Task      string
	Container string
	ExitCode  string
	Reason    string
	Duration  string
}

var summaryColumns = []string{
	"Task",
	"Container",
	"ExitCode",
	"Reason",
	"Duration",
}

// Summary renders one table row per container, colored by result
func Summary(outcomes []*task.Outcome) ([]string, error) {

	var rows []interface{}
	var colors []*color.Color

	for _, outcome := range outcomes {
		if outcome.Failure != "" {
			rows = append(rows, summaryRow{
				Task:      outcome.Task.ID,
				Container: "-",
				ExitCode:  "-",
				Reason:    outcome.Failure,
				Duration:  "-",
			})
			colors = append(colors, format.Failed)
			continue
		}
		duration := format.Duration(outcome.StartedAt, outcome.StoppedAt)
		for _, c := range outcome.Containers {
			exitCode := "-"
			if c.ExitCode != nil {
				exitCode = fmt.Sprintf("%d", *c.ExitCode)
			}
			reason := c.Reason
			if reason == "" {
				reason = "-"
			}
			rows = append(rows, summaryRow{
				Task:      outcome.Task.ID,
				Container: c.Name,
				ExitCode:  exitCode,
				Reason:    reason,
				Duration:  duration,
			})
			if c.Succeeded() {
				colors = append(colors, format.OK)
			} else {
				colors = append(colors, format.Failed)
			}
		}
	}

	if len(rows) == 0 {
		return nil, nil
	}
	return format.Table(format.TableOpts{
		Rows:       rows,
		Colors:     colors,
		Columns:    summaryColumns,
		ShowHeader: true,
	})
}
