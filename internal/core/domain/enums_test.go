package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEnumUpperCases(t *testing.T) {
	v, err := NormalizeEnum("activity type", "workshop", ActivityTypes)
	require.NoError(t, err)
	assert.Equal(t, "WORKSHOP", v)
}

func TestNormalizeEnumTrimsSpaces(t *testing.T) {
	v, err := NormalizeEnum("news status", "  published ", NewsStatuses)
	require.NoError(t, err)
	assert.Equal(t, "PUBLISHED", v)
}

func TestNormalizeEnumRejectsUnknownValue(t *testing.T) {
	_, err := NormalizeEnum("activity type", "PARTY", ActivityTypes)
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, "WORKSHOP")
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole("ADMIN"))
	assert.True(t, ValidRole("MEMBER"))
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole("SUPERUSER"))
}

func TestMissingFields(t *testing.T) {
	err := MissingFields([]string{"title", "startDate"})
	assert.EqualError(t, err, "Missing required fields: title, startDate")
}
