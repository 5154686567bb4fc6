package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/martinhruska/scopeburn/internal/db"
	"github.com/martinhruska/scopeburn/internal/importer"
	"github.com/martinhruska/scopeburn/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

// NewImportService builds an import service on a unit of work: a scope file
// lands either completely or not at all.
func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportScope(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportScopeFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	bundle, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	result := &ImportResult{
		MemberCount:     len(bundle.Members),
		ProjectCount:    len(bundle.Projects),
		WorkflowCount:   len(bundle.Workflows),
		AssignmentCount: len(bundle.Assignments),
		SettingsApplied: bundle.Settings != nil,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		projects := repository.NewSQLiteProjectRepo(tx)
		members := repository.NewSQLiteTeamMemberRepo(tx)
		assignments := repository.NewSQLiteAssignmentRepo(tx)
		workflows := repository.NewSQLiteWorkflowRepo(tx)
		settings := repository.NewSQLiteSettingsRepo(tx)

		if bundle.Settings != nil {
			if err := settings.Upsert(ctx, *bundle.Settings); err != nil {
				return fmt.Errorf("applying settings: %w", err)
			}
		}
		for _, m := range bundle.Members {
			if err := members.Create(ctx, m); err != nil {
				return fmt.Errorf("creating member %q: %w", m.Name, err)
			}
			for i := range m.Vacations {
				if err := members.AddVacation(ctx, &m.Vacations[i]); err != nil {
					return fmt.Errorf("creating vacation for %q: %w", m.Name, err)
				}
			}
		}
		for _, p := range bundle.Projects {
			if err := projects.Create(ctx, p); err != nil {
				return fmt.Errorf("creating project %q: %w", p.Name, err)
			}
		}
		for projectID, wf := range bundle.Workflows {
			if err := workflows.SetParallel(ctx, projectID, wf.Parallel); err != nil {
				return fmt.Errorf("creating workflow: %w", err)
			}
			for _, dep := range wf.Dependencies {
				if err := workflows.AddDependency(ctx, projectID, dep); err != nil {
					return fmt.Errorf("creating dependency %s->%s: %w", dep.FromRole, dep.ToRole, err)
				}
			}
			for role, status := range wf.Statuses {
				if err := workflows.SetStatus(ctx, projectID, role, status); err != nil {
					return fmt.Errorf("setting worker status for %q: %w", role, err)
				}
			}
		}
		for _, a := range bundle.Assignments {
			if err := assignments.Set(ctx, a); err != nil {
				return fmt.Errorf("creating assignment: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, "  - "+e.Error())
	}
	return fmt.Errorf("import file is invalid:\n%s", strings.Join(msgs, "\n"))
}
