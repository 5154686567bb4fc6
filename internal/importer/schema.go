package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportSchema is the top-level YAML structure for a scope import: calendar
// settings, the team, and the project backlog in one file.
type ImportSchema struct {
	Settings *SettingsImport `yaml:"settings,omitempty"`
	Members  []MemberImport  `yaml:"members,omitempty"`
	Projects []ProjectImport `yaml:"projects"`
}

// SettingsImport overrides the scope's calendar configuration.
type SettingsImport struct {
	IncludeHolidays *bool  `yaml:"include_holidays,omitempty"`
	Country         string `yaml:"country,omitempty"`
	Subdivision     string `yaml:"subdivision,omitempty"`
}

// MemberImport defines a team member in the import file.
type MemberImport struct {
	Name      string           `yaml:"name"`
	Role      string           `yaml:"role"`
	FTE       *float64         `yaml:"fte,omitempty"`
	Vacations []VacationImport `yaml:"vacations,omitempty"`
}

// VacationImport is an inclusive date interval on a member.
type VacationImport struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Note  string `yaml:"note,omitempty"`
}

// ProjectImport defines one backlog project with its role plan and optional
// workflow and assignments.
type ProjectImport struct {
	Name        string                `yaml:"name"`
	Priority    *int                  `yaml:"priority,omitempty"`
	Status      string                `yaml:"status,omitempty"`
	Deadline    *string               `yaml:"deadline,omitempty"`
	StartDay    *string               `yaml:"start_day,omitempty"`
	Roles       map[string]RoleImport `yaml:"roles"`
	Workflow    *WorkflowImport       `yaml:"workflow,omitempty"`
	Assignments []AssignmentImport    `yaml:"assignments,omitempty"`
}

// RoleImport is the planned/done pair for one role.
type RoleImport struct {
	Planned float64 `yaml:"planned"`
	Done    float64 `yaml:"done,omitempty"`
}

// WorkflowImport defines role ordering constraints and worker states.
type WorkflowImport struct {
	Parallel     bool               `yaml:"parallel,omitempty"`
	Dependencies []DependencyImport `yaml:"dependencies,omitempty"`
	Statuses     map[string]string  `yaml:"statuses,omitempty"`
}

// DependencyImport declares that role "to" waits for role "from".
type DependencyImport struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// AssignmentImport pins a member (referenced by name) to a project role.
type AssignmentImport struct {
	Member     string   `yaml:"member"`
	Role       string   `yaml:"role"`
	Allocation *float64 `yaml:"allocation,omitempty"`
}

// LoadImportSchema reads and parses a scope import YAML file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
