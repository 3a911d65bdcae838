package importer

import (
	"testing"

	"github.com/evadimova/skhole/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BuildsSubjectAndTasks(t *testing.T) {
	imported, err := Convert(validSchema())
	require.NoError(t, err)

	assert.Equal(t, "Greek", imported.Subject.Name)
	assert.NotEmpty(t, imported.Subject.ID)
	assert.Equal(t, "2026-12-01", imported.Subject.Deadline.Format(domain.DateLayout))

	require.Len(t, imported.Tasks, 2)
	for _, task := range imported.Tasks {
		assert.Equal(t, imported.Subject.ID, task.SubjectID)
		assert.NoError(t, task.Validate())
	}
	assert.Equal(t, 90, imported.Tasks[0].EstimatedMin)
}

func TestConvert_DefaultsEstimateFromUnitRate(t *testing.T) {
	s := validSchema()
	s.Tasks = []TaskImport{
		{Description: "Watch lectures", Unit: "video_min", Amount: 40},
	}

	imported, err := Convert(s)
	require.NoError(t, err)

	require.Len(t, imported.Tasks, 1)
	// 40 video minutes at the default 1.5x review rate.
	assert.Equal(t, 60, imported.Tasks[0].EstimatedMin)
}
