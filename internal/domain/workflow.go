package domain

// RoleDependency declares that ToRole cannot start before FromRole finishes.
type RoleDependency struct {
	FromRole string
	ToRole   string
}

// Workflow holds the per-project role ordering constraints and worker states.
// Parallel disables the dependency graph entirely (all roles concurrent).
type Workflow struct {
	ProjectID    string
	Parallel     bool
	Dependencies []RoleDependency
	Statuses     map[string]WorkerStatus
}

// StatusFor returns the worker status for a role, defaulting to active.
func (w *Workflow) StatusFor(role string) WorkerStatus {
	if w == nil || w.Statuses == nil {
		return WorkerActive
	}
	if s, ok := w.Statuses[role]; ok {
		return s
	}
	return WorkerActive
}

// HasDependencies reports whether the workflow constrains role ordering.
func (w *Workflow) HasDependencies() bool {
	return w != nil && !w.Parallel && len(w.Dependencies) > 0
}
