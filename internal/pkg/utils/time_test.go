package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlexibleTime(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	tests := []struct {
		name  string
		value string
		loc   *time.Location
		want  time.Time
	}{
		{
			name:  "offset wins over location",
			value: "2025-03-11T09:00:00+02:00",
			loc:   jakarta,
			want:  time.Date(2025, 3, 11, 7, 0, 0, 0, time.UTC),
		},
		{
			name:  "bare datetime is read in location",
			value: "2025-03-11T09:00:00",
			loc:   jakarta,
			want:  time.Date(2025, 3, 11, 2, 0, 0, 0, time.UTC),
		},
		{
			name:  "date is midnight in location",
			value: "2025-03-11",
			loc:   jakarta,
			want:  time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC),
		},
		{
			name:  "nil location means UTC",
			value: "2025-03-11T09:00:00",
			want:  time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFlexibleTime(tt.value, tt.loc)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}

	_, err := ParseFlexibleTime("next tuesday", jakarta)
	assert.Error(t, err)
}
