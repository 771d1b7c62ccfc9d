package clock_test

import (
	"testing"
	"time"

	"go-school/internal/shared/clock"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	// 06:30 in Jakarta on the 11th is still the 10th in UTC.
	instant := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		loc  *time.Location
		want time.Time
	}{
		{name: "nil location is utc", loc: nil, want: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "utc", loc: time.UTC, want: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		{name: "ahead of utc rolls over", loc: jakarta, want: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clock.Today(instant, tt.loc)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}
