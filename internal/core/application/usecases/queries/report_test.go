package queries_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"no activity at all", 0, 0, 0},
		{"new activity from nothing", 5, 0, 100},
		{"halved", 50, 100, -50},
		{"doubled", 100, 50, 100},
		{"unchanged", 42, 42, 0},
		{"dropped to zero", 0, 10, -100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, queries.PercentChange(tc.current, tc.previous), 0.0001)
		})
	}
}

func TestMonthWindows(t *testing.T) {
	now := time.Date(2024, time.March, 15, 13, 45, 0, 0, time.UTC)
	current, previous := queries.MonthWindows(now)

	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), current.Start)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), current.End)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), previous.Start)
	assert.Equal(t, current.Start, previous.End)
}

func TestMonthWindows_JanuaryRollsBackAYear(t *testing.T) {
	now := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	current, previous := queries.MonthWindows(now)

	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), previous.Start)
	assert.Equal(t, current.Start, previous.End)
}

func TestMonthWindow_Contains(t *testing.T) {
	current, _ := queries.MonthWindows(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))

	assert.True(t, current.Contains(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, current.Contains(time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, current.Contains(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, current.Contains(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)))
}
