package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// resolveProjectID accepts a project name (case-insensitive), full UUID, or
// UUID prefix and resolves it to the project's ID.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, input) {
			return p.ID, nil
		}
	}
	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveMemberID accepts a member name (case-insensitive), full UUID, or
// UUID prefix and resolves it to the member's ID.
func resolveMemberID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("member is required")
	}

	members, err := app.Team.ListMembers(ctx)
	if err != nil {
		return "", err
	}

	for _, m := range members {
		if strings.EqualFold(m.Name, input) {
			return m.ID, nil
		}
	}
	for _, m := range members {
		if m.ID == input {
			return m.ID, nil
		}
	}

	var matches []string
	for _, m := range members {
		if strings.HasPrefix(m.ID, input) {
			matches = append(matches, m.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("member not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("member %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseDateFlag parses a YYYY-MM-DD flag value.
func parseDateFlag(name, value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: expected YYYY-MM-DD", name, value)
	}
	return t, nil
}
