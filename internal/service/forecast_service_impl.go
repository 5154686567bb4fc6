package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/martinhruska/scopeburn/internal/app"
	"github.com/martinhruska/scopeburn/internal/calendar"
	"github.com/martinhruska/scopeburn/internal/domain"
	"github.com/martinhruska/scopeburn/internal/repository"
	"github.com/martinhruska/scopeburn/internal/scheduler"
)

type forecastService struct {
	projects    repository.ProjectRepo
	members     repository.TeamMemberRepo
	assignments repository.AssignmentRepo
	workflows   repository.WorkflowRepo
	settings    repository.SettingsRepo
	calendar    *calendar.Calendar
}

func NewForecastService(
	projects repository.ProjectRepo,
	members repository.TeamMemberRepo,
	assignments repository.AssignmentRepo,
	workflows repository.WorkflowRepo,
	settings repository.SettingsRepo,
	cal *calendar.Calendar,
) ForecastService {
	return &forecastService{
		projects:    projects,
		members:     members,
		assignments: assignments,
		workflows:   workflows,
		settings:    settings,
		calendar:    cal,
	}
}

// scopeSnapshot is everything the estimation pipeline reads, loaded once per
// request so all derived numbers agree with each other.
type scopeSnapshot struct {
	cfg         scheduler.Config
	projects    []*domain.Project
	members     []*domain.TeamMember
	assignments map[string][]*domain.Assignment
	workflows   map[string]*domain.Workflow
	estimates   map[string]scheduler.Estimate
	windows     map[string]*scheduler.PriorityWindow
}

func (s *forecastService) Forecast(ctx context.Context, req app.ForecastRequest) (*app.ForecastResponse, error) {
	snap, err := s.loadSnapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	var views []app.ProjectForecastView
	var slips []*int
	for _, p := range snap.projects {
		if !p.Status.Schedulable() {
			continue
		}
		view := buildForecastView(snap, p)
		views = append(views, view)
		slips = append(slips, view.SlipDays)
	}
	sortForecastViews(views)

	report := scheduler.BuildSlipReport(slips)
	return &app.ForecastResponse{
		Summary: app.SlipSummary{
			GeneratedAt:     snap.cfg.Today,
			AverageSlipDays: report.AverageSlip,
			Total:           report.TotalProjects,
			Delayed:         report.DelayedProjects,
			OnTime:          report.OnTimeProjects,
			Ahead:           report.AheadProjects,
		},
		Projects: views,
	}, nil
}

func (s *forecastService) ForecastProject(ctx context.Context, projectID string, req app.ForecastRequest) (*app.ProjectForecastView, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !p.Status.Schedulable() {
		return nil, fmt.Errorf("project %q is %s and cannot be forecast", p.Name, p.Status)
	}

	// Windows depend on the whole backlog, so the full snapshot is loaded
	// even for a single project.
	req.ProjectScope = nil
	snap, err := s.loadSnapshot(ctx, req)
	if err != nil {
		return nil, err
	}
	view := buildForecastView(snap, p)
	return &view, nil
}

func (s *forecastService) Timeline(ctx context.Context, req app.ForecastRequest) ([]app.TimelineEntry, error) {
	snap, err := s.loadSnapshot(ctx, req)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Project, len(snap.projects))
	var items []scheduler.SequenceItem
	for _, p := range snap.projects {
		if !p.Status.Schedulable() {
			continue
		}
		byID[p.ID] = p
		items = append(items, scheduler.SequenceItem{Project: p, Estimate: snap.estimates[p.ID]})
	}
	windows := scheduler.SequenceProjects(snap.cfg, items)

	entries := make([]app.TimelineEntry, 0, len(windows))
	for _, w := range windows {
		p := byID[w.ProjectID]
		entry := app.TimelineEntry{
			ProjectID:     w.ProjectID,
			ProjectName:   w.ProjectName,
			Priority:      p.Priority,
			Status:        p.Status,
			BlockedBy:     w.BlockedBy,
			Unschedulable: w.Unschedulable,
		}
		if !w.Unschedulable {
			entry.Start = formatDate(w.Start)
			entry.End = formatDate(w.End)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *forecastService) loadSnapshot(ctx context.Context, req app.ForecastRequest) (*scopeSnapshot, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading scope settings: %w", err)
	}

	projects, err := s.projects.List(ctx, req.IncludeArchived)
	if err != nil {
		return nil, fmt.Errorf("loading projects: %w", err)
	}
	projects = filterProjectsByScope(projects, req.ProjectScope)

	members, err := s.members.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading team: %w", err)
	}

	allAssignments, err := s.assignments.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading assignments: %w", err)
	}
	byProject := make(map[string][]*domain.Assignment)
	for _, a := range allAssignments {
		byProject[a.ProjectID] = append(byProject[a.ProjectID], a)
	}

	workflows, err := s.workflows.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading workflows: %w", err)
	}

	snap := &scopeSnapshot{
		cfg:         scheduler.Config{Calendar: s.calendar, Settings: settings, Today: now},
		projects:    projects,
		members:     members,
		assignments: byProject,
		workflows:   workflows,
		estimates:   make(map[string]scheduler.Estimate),
		windows:     make(map[string]*scheduler.PriorityWindow),
	}

	var items []scheduler.SequenceItem
	for _, p := range projects {
		if !p.Status.Schedulable() {
			continue
		}
		loads := scheduler.BuildRoleLoads(p, members, byProject[p.ID])
		est := scheduler.EstimateProject(snap.cfg, loads, workflows[p.ID])
		snap.estimates[p.ID] = est
		items = append(items, scheduler.SequenceItem{Project: p, Estimate: est})
	}
	for _, w := range scheduler.SequenceProjects(snap.cfg, items) {
		window := w
		snap.windows[w.ProjectID] = &window
	}

	return snap, nil
}

func buildForecastView(snap *scopeSnapshot, p *domain.Project) app.ProjectForecastView {
	est := snap.estimates[p.ID]
	window := snap.windows[p.ID]
	info := scheduler.ProjectSlip(snap.cfg, est, p.Deadline, window)

	view := app.ProjectForecastView{
		ProjectID:      p.ID,
		ProjectName:    p.Name,
		Priority:       p.Priority,
		Status:         p.Status,
		DurationDays:   info.DurationDays,
		SlipDays:       info.Slip,
		Unschedulable:  est.Unschedulable,
		UnstaffedRoles: est.UnstaffedRoles,
		CycleDetected:  est.CycleDetected,
		PenaltyDays:    est.PenaltyDays,
	}
	if !est.Unschedulable {
		view.Completion = formatDate(info.Completion)
	}
	if p.Deadline != nil {
		view.Deadline = formatDate(*p.Deadline)
	}
	if window != nil && !window.Unschedulable {
		view.WindowStart = formatDate(window.Start)
		view.WindowEnd = formatDate(window.End)
		view.BlockedBy = window.BlockedBy
	}

	for _, role := range p.RoleNames() {
		re, ok := est.Roles[role]
		if !ok {
			continue
		}
		rv := app.RoleForecastView{
			Role:             role,
			PlannedMandays:   p.Roles[role].PlannedMandays,
			RemainingMandays: re.Remaining,
			BaseDays:         re.BaseDays,
			Status:           re.Status,
			PenaltyDays:      re.PenaltyDays,
			DoneAsPercent:    re.DoneAsPercent,
			Staffed:          true,
		}
		if re.BaseDays > 0 && re.Remaining > 0 {
			rv.EffectiveFTE = re.Remaining / re.BaseDays
		}
		for _, unstaffed := range est.UnstaffedRoles {
			if unstaffed == role {
				rv.Staffed = false
			}
		}
		if !est.Unschedulable && !re.Start.IsZero() {
			rv.Start = formatDate(re.Start)
			rv.End = formatDate(re.End)
		}
		view.Roles = append(view.Roles, rv)

		if re.DoneAsPercent {
			view.Warnings = append(view.Warnings,
				fmt.Sprintf("%s: done value read as percent of plan", role))
		}
	}

	if len(est.UnstaffedRoles) > 0 {
		view.Warnings = append(view.Warnings,
			"no capacity assigned for: "+strings.Join(est.UnstaffedRoles, ", "))
	}
	if est.CycleDetected {
		view.Warnings = append(view.Warnings,
			"dependency cycle detected, roles estimated concurrently")
	}
	return view
}

// sortForecastViews orders by priority, then sequencing rank, then name so
// the list mirrors the timeline.
func sortForecastViews(views []app.ProjectForecastView) {
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Priority != views[j].Priority {
			return views[i].Priority < views[j].Priority
		}
		if ri, rj := views[i].Status.SequenceRank(), views[j].Status.SequenceRank(); ri != rj {
			return ri < rj
		}
		return views[i].ProjectName < views[j].ProjectName
	})
}

func filterProjectsByScope(projects []*domain.Project, scope []string) []*domain.Project {
	if len(scope) == 0 {
		return projects
	}
	var out []*domain.Project
	for _, p := range projects {
		for _, sel := range scope {
			if p.ID == sel || strings.EqualFold(p.Name, sel) || strings.HasPrefix(p.ID, sel) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func formatDate(t time.Time) *string {
	s := t.Format("2006-01-02")
	return &s
}
