// pkg/registry/registry.go
package registry

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

//go:embed activities.json
var embeddedActivities []byte

// TaskTypeMatchCareer is the job type the assessment worker subscribes to.
const TaskTypeMatchCareer = "match-career"

// LoadRegistry reads an activity registry from a JSON file.
func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

// Default returns the registry compiled into the binary.
func Default() (*ActivityRegistry, error) {
	return parse(embeddedActivities)
}

func parse(data []byte) (*ActivityRegistry, error) {
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse activity registry: %w", err)
	}
	return &reg, nil
}

// Find returns the activity registered for taskType.
func (r *ActivityRegistry) Find(taskType string) (Activity, bool) {
	for _, a := range r.Activities {
		if a.TaskType == taskType {
			return a, true
		}
	}
	return Activity{}, false
}

// InputSchema returns the input schema of the activity for taskType.
func InputSchema(taskType string) (map[string]interface{}, error) {
	reg, err := Default()
	if err != nil {
		return nil, err
	}
	activity, ok := reg.Find(taskType)
	if !ok {
		return nil, fmt.Errorf("no activity registered for task type %q", taskType)
	}
	if len(activity.InputSchema) == 0 {
		return nil, fmt.Errorf("activity %s has no input schema", activity.ID)
	}
	return activity.InputSchema, nil
}

// Validate checks that every activity carries the fields a worker needs and
// that ids and task types are unique.
func (r *ActivityRegistry) Validate() error {
	if len(r.Activities) == 0 {
		return errors.New("registry contains no activities")
	}

	var errs []error
	ids := make(map[string]bool)
	taskTypes := make(map[string]bool)
	for _, activity := range r.Activities {
		if activity.ID == "" {
			errs = append(errs, errors.New("activity missing required field: ID"))
			continue
		}
		if ids[activity.ID] {
			errs = append(errs, fmt.Errorf("duplicate activity ID: %s", activity.ID))
		}
		ids[activity.ID] = true

		if activity.DisplayName == "" {
			errs = append(errs, fmt.Errorf("activity %s missing required field: DisplayName", activity.ID))
		}
		if activity.Category == "" {
			errs = append(errs, fmt.Errorf("activity %s missing required field: Category", activity.ID))
		}
		if activity.TaskType == "" {
			errs = append(errs, fmt.Errorf("activity %s missing required field: TaskType", activity.ID))
		} else if taskTypes[activity.TaskType] {
			errs = append(errs, fmt.Errorf("duplicate task type: %s", activity.TaskType))
		}
		taskTypes[activity.TaskType] = true

		if activity.Timeout != "" {
			if _, err := time.ParseDuration(activity.Timeout); err != nil {
				errs = append(errs, fmt.Errorf("activity %s has invalid timeout %q", activity.ID, activity.Timeout))
			}
		}
		if activity.Retries < 0 {
			errs = append(errs, fmt.Errorf("activity %s has negative retries", activity.ID))
		}
	}
	return errors.Join(errs...)
}
