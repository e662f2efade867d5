package requests

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAvailability_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantSet bool
		wantNil bool
	}{
		{"absent rule", `{"title":"x"}`, false, true},
		{"explicit null", `{"recurring_rule":null}`, true, true},
		{"value", `{"recurring_rule":"FREQ=DAILY"}`, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var request UpdateAvailability
			require.NoError(t, json.Unmarshal([]byte(tt.body), &request))

			assert.Equal(t, tt.wantSet, request.RecurringRuleSet)
			assert.Equal(t, tt.wantNil, request.RecurringRule == nil)
		})
	}

	var request UpdateAvailability
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Morning","is_recurring":false}`), &request))
	require.NotNil(t, request.Title)
	assert.Equal(t, "Morning", *request.Title)
	require.NotNil(t, request.IsRecurring)
	assert.False(t, *request.IsRecurring)
}
