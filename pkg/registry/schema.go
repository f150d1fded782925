// pkg/registry/schema.go
package registry

// ActivityRegistry is the catalog of BPMN service tasks this binary can serve.
type ActivityRegistry struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Activities  []Activity `json:"activities"`
}

// Activity describes one job type. InputSchema is enforced on every job and
// HTTP request; OutputSchema documents the completed job variables.
type Activity struct {
	ID                   string                 `json:"id"`
	DisplayName          string                 `json:"displayName"`
	Description          string                 `json:"description"`
	Category             string                 `json:"category"`
	Version              string                 `json:"version"`
	TaskType             string                 `json:"taskType"`
	ImplementationStatus string                 `json:"implementationStatus"`
	InputSchema          map[string]interface{} `json:"inputSchema"`
	OutputSchema         map[string]interface{} `json:"outputSchema"`
	ErrorCodes           []string               `json:"errorCodes"`
	// Timeout is a Go duration string, e.g. "10s".
	Timeout   string   `json:"timeout"`
	Retries   int      `json:"retries"`
	Workflows []string `json:"workflows"`
}
