package importer

import (
	"fmt"
	"time"

	"github.com/martinhruska/scopeburn/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateSettings(schema.Settings)...)

	memberNames := make(map[string]bool)
	errs = append(errs, validateMembers(schema.Members, memberNames)...)

	if len(schema.Projects) == 0 {
		errs = append(errs, fmt.Errorf("projects: at least one project is required"))
	}
	projectNames := make(map[string]bool)
	for i := range schema.Projects {
		errs = append(errs, validateProject(i, &schema.Projects[i], projectNames, memberNames)...)
	}

	return errs
}

func validateSettings(s *SettingsImport) []error {
	if s == nil {
		return nil
	}
	var errs []error
	if len(s.Country) != 0 && len(s.Country) != 2 {
		errs = append(errs, fmt.Errorf("settings.country: expected ISO 3166-1 alpha-2 code, got %q", s.Country))
	}
	if s.Subdivision != "" && s.Country == "" {
		errs = append(errs, fmt.Errorf("settings.subdivision requires settings.country"))
	}
	return errs
}

func validateMembers(members []MemberImport, names map[string]bool) []error {
	var errs []error
	for i, m := range members {
		prefix := fmt.Sprintf("members[%d]", i)

		if m.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		} else if names[m.Name] {
			errs = append(errs, fmt.Errorf("%s.name: duplicate member %q", prefix, m.Name))
		} else {
			names[m.Name] = true
		}

		if m.Role == "" {
			errs = append(errs, fmt.Errorf("%s.role is required", prefix))
		}
		if m.FTE != nil && (*m.FTE <= 0 || *m.FTE > 2) {
			errs = append(errs, fmt.Errorf("%s.fte must be in (0, 2], got %v", prefix, *m.FTE))
		}

		for j, v := range m.Vacations {
			vp := fmt.Sprintf("%s.vacations[%d]", prefix, j)
			start, startErrs := requireDate(vp+".start", v.Start)
			end, endErrs := requireDate(vp+".end", v.End)
			errs = append(errs, startErrs...)
			errs = append(errs, endErrs...)
			if len(startErrs) == 0 && len(endErrs) == 0 && end.Before(start) {
				errs = append(errs, fmt.Errorf("%s: end %q before start %q", vp, v.End, v.Start))
			}
		}
	}
	return errs
}

func validateProject(i int, p *ProjectImport, projectNames, memberNames map[string]bool) []error {
	var errs []error
	prefix := fmt.Sprintf("projects[%d]", i)

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	} else if projectNames[p.Name] {
		errs = append(errs, fmt.Errorf("%s.name: duplicate project %q", prefix, p.Name))
	} else {
		projectNames[p.Name] = true
	}

	if p.Status != "" && !domain.ValidProjectStatuses[p.Status] {
		errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, p.Status))
	}
	errs = append(errs, validateOptionalDate(prefix+".deadline", p.Deadline)...)
	errs = append(errs, validateOptionalDate(prefix+".start_day", p.StartDay)...)

	if len(p.Roles) == 0 {
		errs = append(errs, fmt.Errorf("%s.roles: at least one role is required", prefix))
	}
	for role, e := range p.Roles {
		if e.Planned < 0 {
			errs = append(errs, fmt.Errorf("%s.roles.%s.planned must not be negative", prefix, role))
		}
		if e.Done < 0 {
			errs = append(errs, fmt.Errorf("%s.roles.%s.done must not be negative", prefix, role))
		}
	}

	if p.Workflow != nil {
		for j, d := range p.Workflow.Dependencies {
			dp := fmt.Sprintf("%s.workflow.dependencies[%d]", prefix, j)
			if d.From == "" || d.To == "" {
				errs = append(errs, fmt.Errorf("%s: both from and to are required", dp))
				continue
			}
			if d.From == d.To {
				errs = append(errs, fmt.Errorf("%s: role %q cannot depend on itself", dp, d.From))
			}
			if _, ok := p.Roles[d.From]; !ok {
				errs = append(errs, fmt.Errorf("%s.from: role %q not found in project roles", dp, d.From))
			}
			if _, ok := p.Roles[d.To]; !ok {
				errs = append(errs, fmt.Errorf("%s.to: role %q not found in project roles", dp, d.To))
			}
		}
		for role, status := range p.Workflow.Statuses {
			if !domain.ValidWorkerStatuses[status] {
				errs = append(errs, fmt.Errorf("%s.workflow.statuses.%s: invalid value %q", prefix, role, status))
			}
		}
	}

	for j, a := range p.Assignments {
		ap := fmt.Sprintf("%s.assignments[%d]", prefix, j)
		if a.Member == "" {
			errs = append(errs, fmt.Errorf("%s.member is required", ap))
		} else if !memberNames[a.Member] {
			errs = append(errs, fmt.Errorf("%s.member: member %q not found in members list", ap, a.Member))
		}
		if a.Role == "" {
			errs = append(errs, fmt.Errorf("%s.role is required", ap))
		}
		if a.Allocation != nil && (*a.Allocation <= 0 || *a.Allocation > 2) {
			errs = append(errs, fmt.Errorf("%s.allocation must be in (0, 2], got %v", ap, *a.Allocation))
		}
	}

	return errs
}

func requireDate(field, value string) (time.Time, []error) {
	if value == "" {
		return time.Time{}, []error{fmt.Errorf("%s is required", field)}
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)}
	}
	return t, nil
}

func validateOptionalDate(field string, value *string) []error {
	if value == nil {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *value); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *value)}
	}
	return nil
}
