package service

import (
	"context"
	"fmt"
	"time"

	"github.com/crewplanhq/crewplan/internal/db"
	"github.com/crewplanhq/crewplan/internal/importer"
	"github.com/crewplanhq/crewplan/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportFromSchema(ctx, schema)
}

// ImportFromSchema validates and persists a whole snapshot in one
// transaction, so a mid-file failure leaves storage untouched.
func (s *importService) ImportFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	started := time.Now()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated := importer.Convert(schema)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTeams := repository.NewSQLiteTeamRepo(tx)
		txProjects := repository.NewSQLiteProjectRepo(tx)
		txAssignments := repository.NewSQLiteAssignmentRepo(tx)

		for _, team := range generated.Teams {
			if err := txTeams.Create(ctx, team); err != nil {
				return fmt.Errorf("creating team %q: %w", team.Name, err)
			}
		}
		for _, project := range generated.Projects {
			if err := txProjects.Create(ctx, project); err != nil {
				return fmt.Errorf("creating project %q: %w", project.Name, err)
			}
		}
		for _, assignment := range generated.Assignments {
			if err := txAssignments.Create(ctx, assignment); err != nil {
				return fmt.Errorf("creating assignment %q: %w", assignment.Phase, err)
			}
		}
		return nil
	})
	if err != nil {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:     "import_snapshot",
			Duration: time.Since(started),
			Err:      err,
		})
		return nil, err
	}

	result := &ImportResult{
		TeamCount:       len(generated.Teams),
		ProjectCount:    len(generated.Projects),
		AssignmentCount: len(generated.Assignments),
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "import_snapshot",
		Duration: time.Since(started),
		Fields: map[string]any{
			"teams":       result.TeamCount,
			"projects":    result.ProjectCount,
			"assignments": result.AssignmentCount,
		},
	})
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
