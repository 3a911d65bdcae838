package importer

import (
	"fmt"
	"math"
	"time"

	"github.com/evadimova/skhole/internal/domain"
	"github.com/google/uuid"
)

// ImportedSubject bundles the converted subject with its tasks, ready for
// atomic persistence.
type ImportedSubject struct {
	Subject *domain.Subject
	Tasks   []*domain.StudyTask
}

// Convert transforms a validated ImportSchema into domain objects ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema
// is valid. Tasks without an explicit estimate get one from the default
// per-unit rates.
func Convert(schema *ImportSchema) (*ImportedSubject, error) {
	now := time.Now().UTC()

	deadline, err := time.Parse(domain.DateLayout, schema.Subject.Deadline)
	if err != nil {
		return nil, fmt.Errorf("parsing deadline: %w", err)
	}

	subject := &domain.Subject{
		ID:        uuid.New().String(),
		Name:      schema.Subject.Name,
		Deadline:  domain.DateOf(deadline),
		CreatedAt: now,
		UpdatedAt: now,
	}

	tasks := make([]*domain.StudyTask, 0, len(schema.Tasks))
	for _, t := range schema.Tasks {
		unit := domain.Unit(t.Unit)

		estimated := 0
		if t.EstimatedMin != nil {
			estimated = *t.EstimatedMin
		} else {
			estimated = int(math.Ceil(domain.DefaultMinutesPerUnit[unit] * float64(t.Amount)))
			if estimated < 1 {
				estimated = 1
			}
		}

		tasks = append(tasks, &domain.StudyTask{
			ID:           uuid.New().String(),
			SubjectID:    subject.ID,
			Description:  t.Description,
			Unit:         unit,
			Amount:       t.Amount,
			EstimatedMin: estimated,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	return &ImportedSubject{Subject: subject, Tasks: tasks}, nil
}
