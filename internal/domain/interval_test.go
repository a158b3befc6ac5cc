package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func tr(startHour, endHour int) TimeRange {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return TimeRange{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{"disjoint", tr(9, 10), tr(11, 12), false},
		{"partial overlap", tr(9, 11), tr(10, 12), true},
		{"containment", tr(9, 18), tr(10, 11), true},
		{"identical", tr(9, 10), tr(9, 10), true},
		{"touching ends do not overlap", tr(9, 10), tr(10, 11), false},
		{"touching ends reversed", tr(10, 11), tr(9, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_Contains(t *testing.T) {
	assert.True(t, tr(9, 18).Contains(tr(9, 18)))
	assert.True(t, tr(9, 18).Contains(tr(10, 11)))
	assert.False(t, tr(9, 18).Contains(tr(8, 10)))
	assert.False(t, tr(9, 18).Contains(tr(17, 19)))
}

func TestTimeRange_IsValid(t *testing.T) {
	assert.True(t, tr(9, 10).IsValid())
	assert.False(t, tr(10, 9).IsValid())
	assert.False(t, tr(9, 9).IsValid())
}
