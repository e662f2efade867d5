package requests

import "github.com/goccy/go-json"

type CreateAvailability struct {
	Title               *string `json:"title"`
	ClinicianID         string  `json:"clinician_id" validate:"required,uuid"`
	AllowOnlineRequests *bool   `json:"allow_online_requests"`
	LocationID          string  `json:"location_id" validate:"required,uuid"`
	StartDate           string  `json:"start_date" validate:"required,iso8601"`
	EndDate             string  `json:"end_date" validate:"required,iso8601"`
	IsRecurring         *bool   `json:"is_recurring"`
	RecurringRule       *string `json:"recurring_rule"`
}

// UpdateAvailability is the partial form of CreateAvailability: nil means untouched.
type UpdateAvailability struct {
	Title               *string `json:"title"`
	ClinicianID         *string `json:"clinician_id" validate:"omitempty,uuid"`
	AllowOnlineRequests *bool   `json:"allow_online_requests"`
	LocationID          *string `json:"location_id" validate:"omitempty,uuid"`
	StartDate           *string `json:"start_date" validate:"omitempty,iso8601"`
	EndDate             *string `json:"end_date" validate:"omitempty,iso8601"`
	IsRecurring         *bool   `json:"is_recurring"`
	RecurringRule       *string `json:"recurring_rule"`
	// RecurringRuleSet tells an explicit "recurring_rule": null apart from an absent key.
	RecurringRuleSet    bool    `json:"-"`
}

func (u *UpdateAvailability) UnmarshalJSON(data []byte) error {
	type updateAvailability UpdateAvailability
	var decoded updateAvailability
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*u = UpdateAvailability(decoded)
	_, u.RecurringRuleSet = keys["recurring_rule"]
	return nil
}

type FindAvailabilities struct {
	ClinicianID string
	StartDate   string
	EndDate     string
}
