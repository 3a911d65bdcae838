package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/evadimova/skhole/internal/db"
	"github.com/evadimova/skhole/internal/domain"
	"github.com/evadimova/skhole/internal/importer"
	"github.com/evadimova/skhole/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

// ImportFile loads, validates, converts, and persists an import file in one
// transaction. A failure at any point leaves the database untouched.
func (s *importService) ImportFile(ctx context.Context, path string) (*domain.Subject, int, error) {
	schema, err := importer.LoadFile(path)
	if err != nil {
		return nil, 0, err
	}

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, 0, errors.New("invalid import file:\n  " + strings.Join(msgs, "\n  "))
	}

	imported, err := importer.Convert(schema)
	if err != nil {
		return nil, 0, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		subjects := repository.NewSQLiteSubjectRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)

		if err := subjects.Create(ctx, imported.Subject); err != nil {
			return fmt.Errorf("creating subject: %w", err)
		}
		for _, task := range imported.Tasks {
			if err := tasks.Create(ctx, task); err != nil {
				return fmt.Errorf("creating task %q: %w", task.Description, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return imported.Subject, len(imported.Tasks), nil
}
