package id

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAtSameTimeIsSortable(t *testing.T) {
	now := time.Now()
	a := NewAt(now)
	b := NewAt(now)
	assert.Len(t, a, 26)
	assert.Less(t, a, b)
}

func TestNewAtEncodesTime(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	parsed, err := ulid.Parse(NewAt(ts))
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(ts), parsed.Time())
}

func TestNewAtZeroTimeUsesNow(t *testing.T) {
	before := time.Now().Add(-time.Second)
	parsed, err := ulid.Parse(NewAt(time.Time{}))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, parsed.Time(), ulid.Timestamp(before))
}
