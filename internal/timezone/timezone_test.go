package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Mars/Olympus").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestDayBounds(t *testing.T) {
	loc := Location(DefaultTimezone)
	d, err := ParseDate("2024-05-01", loc)
	require.NoError(t, err)

	start := StartOfDay(d.Add(15*time.Hour), loc)
	end := EndOfDay(d, loc)

	assert.True(t, start.Equal(d))
	assert.Equal(t, "2024-05-01 23:59:59.999999", end.Format("2006-01-02 15:04:05.000000"))
}

func TestParseDateTime(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)

	at, err := ParseDateTime("2024-05-01", "14:00", loc)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T17:00:00Z", at.UTC().Format(time.RFC3339))

	_, err = ParseDateTime("2024-05-01", "25:00", loc)
	assert.Error(t, err)
}
