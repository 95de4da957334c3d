package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSlotOverlaps(t *testing.T) {
	base := time.Date(2026, 1, 14, 19, 0, 0, 0, time.UTC)
	slot := AvailabilitySlot{StartTime: base, EndTime: base.Add(time.Hour)}

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical window", base, base.Add(time.Hour), true},
		{"contained", base.Add(15 * time.Minute), base.Add(30 * time.Minute), true},
		{"straddles start", base.Add(-30 * time.Minute), base.Add(30 * time.Minute), true},
		{"straddles end", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"ends at slot start", base.Add(-time.Hour), base, false},
		{"starts at slot end", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"fully before", base.Add(-2 * time.Hour), base.Add(-time.Hour), false},
		{"fully after", base.Add(2 * time.Hour), base.Add(3 * time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, slot.Overlaps(tc.start, tc.end))
		})
	}
}

func TestSlotReservedBy(t *testing.T) {
	requestId := uuid.New()
	slot := AvailabilitySlot{}
	require.False(t, slot.ReservedBy(requestId))

	slot.ReservedRequestId = &requestId
	require.True(t, slot.ReservedBy(requestId))
	require.False(t, slot.ReservedBy(uuid.New()))
}
