package domain

type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectPaused     ProjectStatus = "paused"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
	ProjectArchived   ProjectStatus = "archived"
	ProjectSuspended  ProjectStatus = "suspended"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"not_started": true, "in_progress": true, "paused": true,
	"completed": true, "cancelled": true, "archived": true, "suspended": true,
}

// Schedulable reports whether a project in this status participates in
// forward scheduling. Completed, cancelled, archived and suspended projects
// consume no team capacity.
func (s ProjectStatus) Schedulable() bool {
	switch s {
	case ProjectNotStarted, ProjectInProgress, ProjectPaused:
		return true
	}
	return false
}

// SequenceRank orders statuses inside the priority sequencer:
// in_progress before not_started before paused.
func (s ProjectStatus) SequenceRank() int {
	switch s {
	case ProjectInProgress:
		return 0
	case ProjectNotStarted:
		return 1
	case ProjectPaused:
		return 2
	default:
		return 3
	}
}

type WorkerStatus string

const (
	WorkerActive  WorkerStatus = "active"
	WorkerWaiting WorkerStatus = "waiting"
	WorkerBlocked WorkerStatus = "blocked"
)

// ValidWorkerStatuses is the canonical set of accepted worker status strings.
var ValidWorkerStatuses = map[string]bool{
	"active": true, "waiting": true, "blocked": true,
}

// Standard role labels. Custom labels are allowed everywhere a role appears;
// these constants only name the conventional five.
const (
	RoleFrontend = "fe"
	RoleBackend  = "be"
	RoleQA       = "qa"
	RolePM       = "pm"
	RoleDeploy   = "dpl"
)

// StandardRoles lists the conventional roles in display order.
var StandardRoles = []string{RoleFrontend, RoleBackend, RoleQA, RolePM, RoleDeploy}
