package importer

import (
	"fmt"
	"time"

	"github.com/evadimova/skhole/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateSubject(&schema.Subject)...)

	if len(schema.Tasks) == 0 {
		errs = append(errs, fmt.Errorf("tasks: at least one task is required"))
	}
	for i, t := range schema.Tasks {
		errs = append(errs, validateTask(i, &t)...)
	}

	return errs
}

func validateSubject(s *SubjectImport) []error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, fmt.Errorf("subject.name is required"))
	}
	if s.Deadline == "" {
		errs = append(errs, fmt.Errorf("subject.deadline is required"))
	} else if _, err := time.Parse(domain.DateLayout, s.Deadline); err != nil {
		errs = append(errs, fmt.Errorf("subject.deadline: invalid date format %q (expected YYYY-MM-DD)", s.Deadline))
	}

	return errs
}

func validateTask(i int, t *TaskImport) []error {
	var errs []error
	prefix := fmt.Sprintf("tasks[%d]", i)

	if t.Description == "" {
		errs = append(errs, fmt.Errorf("%s.description is required", prefix))
	}
	if !domain.ValidUnits[domain.Unit(t.Unit)] {
		errs = append(errs, fmt.Errorf("%s.unit: invalid value %q", prefix, t.Unit))
	}
	if t.Amount <= 0 {
		errs = append(errs, fmt.Errorf("%s.amount must be positive", prefix))
	}
	if t.EstimatedMin != nil && *t.EstimatedMin <= 0 {
		errs = append(errs, fmt.Errorf("%s.estimated_min must be positive when set", prefix))
	}

	return errs
}
