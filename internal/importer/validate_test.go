package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSchema() *ImportSchema {
	est := 90
	return &ImportSchema{
		Subject: SubjectImport{Name: "Greek", Deadline: "2026-12-01"},
		Tasks: []TaskImport{
			{Description: "Read chapter 1", Unit: "pages", Amount: 30, EstimatedMin: &est},
			{Description: "Exercises", Unit: "exercises", Amount: 10},
		},
	}
}

func TestValidateImportSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validSchema()))
}

func TestValidateImportSchema_SubjectErrors(t *testing.T) {
	s := validSchema()
	s.Subject.Name = ""
	s.Subject.Deadline = "12/01/2026"

	errs := ValidateImportSchema(s)
	assert.Len(t, errs, 2)
}

func TestValidateImportSchema_TaskErrors(t *testing.T) {
	bad := -5
	s := validSchema()
	s.Tasks = []TaskImport{
		{Description: "", Unit: "chapters", Amount: 0, EstimatedMin: &bad},
	}

	errs := ValidateImportSchema(s)
	assert.Len(t, errs, 4)
}

func TestValidateImportSchema_RequiresTasks(t *testing.T) {
	s := validSchema()
	s.Tasks = nil

	errs := ValidateImportSchema(s)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one task")
}
