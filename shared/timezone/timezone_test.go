package timezone_test

import (
	"testing"
	"time"

	"stayhub/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
}

func TestSetClock(t *testing.T) {
	fixed := time.Date(2025, 2, 10, 9, 30, 0, 0, time.UTC)

	restore := timezone.SetClock(func() time.Time { return fixed })
	assert.True(t, fixed.Equal(timezone.Now()))

	restore()
	assert.False(t, fixed.Equal(timezone.Now()))
}

func TestFormatAndParse(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.NotEmpty(t, timezone.Format(testTime, "2006-01-02 15:04:05 MST"))

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, timezone.GetLocation(), parsed.Location())
}
