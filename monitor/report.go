package monitor

import (
	"fmt"
	"io/ioutil"

	"github.com/fugue/runtask/task"
	"github.com/go-yaml/yaml"
)

// Report summarizes one invocation for consumption by later pipeline steps
type Report struct {
	Cluster        string            `yaml:"cluster"`
	TaskDefinition string            `yaml:"task_definition"`
	StartedBy      string            `yaml:"started_by"`
	Tasks          []string          `yaml:"tasks"`
	Waited         bool              `yaml:"waited"`
	Succeeded      bool              `yaml:"succeeded"`
	Containers     []ReportContainer `yaml:"containers,omitempty"`
}

// ReportContainer is the result of one container. Failure is set instead
// when the task itself could not be described.
type ReportContainer struct {
	Task      string `yaml:"task"`
	Container string `yaml:"container,omitempty"`
	ExitCode  *int64 `yaml:"exit_code,omitempty"`
	Reason    string `yaml:"reason,omitempty"`
	Failure   string `yaml:"failure,omitempty"`
}

// AddResult records the outcome of a completed wait
func (r *Report) AddResult(result *Result) {
	r.Waited = true
	r.Succeeded = result.Succeeded
	for _, outcome := range result.Outcomes {
		if outcome.Failure != "" {
			r.Containers = append(r.Containers, ReportContainer{
				Task:    outcome.Task.ARN,
				Failure: outcome.Failure,
			})
			continue
		}
		for _, c := range outcome.Containers {
			r.Containers = append(r.Containers, ReportContainer{
				Task:      outcome.Task.ARN,
				Container: c.Name,
				ExitCode:  c.ExitCode,
				Reason:    c.Reason,
			})
		}
	}
}

// SetTasks records the dispatched tasks
func (r *Report) SetTasks(tasks []*task.Task) {
	r.Tasks = task.ARNs(tasks)
}

// Write the report as YAML
func (r *Report) Write(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("Failed to marshal report: %w", err)
	}
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("Failed to write report %s: %w", path, err)
	}
	return nil
}
