package service

import (
	"fmt"
	"testing"

	"slotbook/modules/availability/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(start, end string) *entity.TimeWindow {
	return &entity.TimeWindow{Start: start, End: end}
}

func TestGenerate_FullWindow(t *testing.T) {
	g := NewSlotGenerator()

	slots := g.Generate(30, window("09:00", "10:00"), nil)

	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestGenerate_ExcludesBookedStarts(t *testing.T) {
	g := NewSlotGenerator()
	booked := map[string]struct{}{"09:30": {}}

	slots := g.Generate(30, window("09:00", "10:00"), booked)

	assert.Equal(t, []string{"09:00"}, slots)
}

func TestGenerate_NeverOverrunsWindowEnd(t *testing.T) {
	g := NewSlotGenerator()

	// 45-minute meetings in a 100-minute window: 09:00 and 09:45 fit,
	// 10:30+45 would overrun 10:40.
	slots := g.Generate(45, window("09:00", "10:40"), nil)

	assert.Equal(t, []string{"09:00", "09:45"}, slots)
}

func TestGenerate_CandidateCount(t *testing.T) {
	g := NewSlotGenerator()

	cases := []struct {
		duration   int
		start, end string
		want       int
	}{
		{30, "09:00", "17:00", 16},
		{60, "09:00", "17:00", 8},
		{45, "09:00", "17:00", 10},
		{25, "08:15", "12:00", 9},
		{90, "10:00", "11:00", 0},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dmin_%s-%s", tc.duration, tc.start, tc.end), func(t *testing.T) {
			slots := g.Generate(tc.duration, window(tc.start, tc.end), nil)
			require.Len(t, slots, tc.want)

			// Each candidate is exactly duration minutes after the previous.
			for i := 1; i < len(slots); i++ {
				prev, ok := parseClock(slots[i-1])
				require.True(t, ok)
				cur, ok := parseClock(slots[i])
				require.True(t, ok)
				assert.Equal(t, tc.duration, cur-prev)
			}
		})
	}
}

func TestGenerate_EmptyCases(t *testing.T) {
	g := NewSlotGenerator()

	assert.Empty(t, g.Generate(30, nil, nil), "nil window")
	assert.Empty(t, g.Generate(0, window("09:00", "17:00"), nil), "zero duration")
	assert.Empty(t, g.Generate(-15, window("09:00", "17:00"), nil), "negative duration")
	assert.Empty(t, g.Generate(30, window("09:00", "09:00"), nil), "empty window")
	assert.Empty(t, g.Generate(30, window("17:00", "09:00"), nil), "inverted window")
	assert.Empty(t, g.Generate(30, window("9am", "5pm"), nil), "unparseable times")
}

func TestGenerate_ZeroPadding(t *testing.T) {
	g := NewSlotGenerator()

	slots := g.Generate(25, window("08:05", "09:00"), nil)

	assert.Equal(t, []string{"08:05", "08:30"}, slots)
}

func TestGenerate_Deterministic(t *testing.T) {
	g := NewSlotGenerator()
	booked := map[string]struct{}{"09:30": {}, "11:00": {}}

	first := g.Generate(30, window("09:00", "12:00"), booked)
	second := g.Generate(30, window("09:00", "12:00"), booked)

	assert.Equal(t, first, second)
}

func TestParseClock(t *testing.T) {
	m, ok := parseClock("09:30")
	require.True(t, ok)
	assert.Equal(t, 570, m)

	m, ok = parseClock("00:00")
	require.True(t, ok)
	assert.Equal(t, 0, m)

	_, ok = parseClock("24:00")
	assert.False(t, ok)

	_, ok = parseClock("09:75")
	assert.False(t, ok)

	_, ok = parseClock("morning")
	assert.False(t, ok)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", formatClock(545))
	assert.Equal(t, "00:00", formatClock(0))
	assert.Equal(t, "23:59", formatClock(1439))
}
