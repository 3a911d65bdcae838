package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("06:00")
	assert.NoError(t, err)
	assert.Equal(t, "0 0 6 * * *", spec)

	spec, err = buildDailySpec("23:45")
	assert.NoError(t, err)
	assert.Equal(t, "0 45 23 * * *", spec)

	for _, bad := range []string{"", "6", "24:00", "06:60", "six:00"} {
		_, err := buildDailySpec(bad)
		assert.Error(t, err, "expected error for %q", bad)
	}
}
