package models

import "time"

// Availability is a bookable time window of a clinician at a location.
// RecurringRule is stored as given and only meaningful when IsRecurring is set.
type Availability struct {
	ID                  string    `json:"id" bson:"_id"`
	ClinicianID         string    `json:"clinician_id" bson:"clinicianId"`
	Title               string    `json:"title" bson:"title"`
	AllowOnlineRequests bool      `json:"allow_online_requests" bson:"allowOnlineRequests"`
	LocationID          string    `json:"location_id" bson:"locationId"`
	StartDate           time.Time `json:"start_date" bson:"startDate"`
	EndDate             time.Time `json:"end_date" bson:"endDate"`
	IsRecurring         bool      `json:"is_recurring" bson:"isRecurring"`
	RecurringRule       *string   `json:"recurring_rule" bson:"recurringRule"`
	TimeModel           `bson:",inline"`
}

// AvailabilityFilter composes conjunctively. The date bounds only apply as a pair.
type AvailabilityFilter struct {
	ClinicianID string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (f AvailabilityFilter) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// Matches reports whether a satisfies the filter, bounds inclusive.
func (f AvailabilityFilter) Matches(a *Availability) bool {
	if f.ClinicianID != "" && a.ClinicianID != f.ClinicianID {
		return false
	}
	if f.HasDateRange() {
		if a.StartDate.Before(*f.StartDate) || a.EndDate.After(*f.EndDate) {
			return false
		}
	}
	return true
}

// AvailabilityPatch carries the fields of a partial update; nil fields stay untouched.
type AvailabilityPatch struct {
	Title               *string
	ClinicianID         *string
	AllowOnlineRequests *bool
	LocationID          *string
	StartDate           *time.Time
	EndDate             *time.Time
	IsRecurring         *bool
	RecurringRule       *string
	// ClearRecurringRule stores null for the rule and wins over RecurringRule.
	ClearRecurringRule  bool
	UpdatedAt           time.Time
}

func (p *AvailabilityPatch) ApplyTo(a *Availability) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.ClinicianID != nil {
		a.ClinicianID = *p.ClinicianID
	}
	if p.AllowOnlineRequests != nil {
		a.AllowOnlineRequests = *p.AllowOnlineRequests
	}
	if p.LocationID != nil {
		a.LocationID = *p.LocationID
	}
	if p.StartDate != nil {
		a.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		a.EndDate = *p.EndDate
	}
	if p.IsRecurring != nil {
		a.IsRecurring = *p.IsRecurring
	}
	if p.ClearRecurringRule {
		a.RecurringRule = nil
	} else if p.RecurringRule != nil {
		rule := *p.RecurringRule
		a.RecurringRule = &rule
	}
	a.UpdatedAt = p.UpdatedAt
}

// ConvertToBsonM builds the $set document of the patch.
func (p *AvailabilityPatch) ConvertToBsonM() map[string]interface{} {
	set := map[string]interface{}{
		"updatedAt": p.UpdatedAt,
	}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.ClinicianID != nil {
		set["clinicianId"] = *p.ClinicianID
	}
	if p.AllowOnlineRequests != nil {
		set["allowOnlineRequests"] = *p.AllowOnlineRequests
	}
	if p.LocationID != nil {
		set["locationId"] = *p.LocationID
	}
	if p.StartDate != nil {
		set["startDate"] = *p.StartDate
	}
	if p.EndDate != nil {
		set["endDate"] = *p.EndDate
	}
	if p.IsRecurring != nil {
		set["isRecurring"] = *p.IsRecurring
	}
	if p.ClearRecurringRule {
		set["recurringRule"] = nil
	} else if p.RecurringRule != nil {
		set["recurringRule"] = *p.RecurringRule
	}
	return set
}

type AvailabilityChangedEvent struct {
	Event          string    `json:"event"`
	AvailabilityID string    `json:"availability_id"`
	ClinicianID    string    `json:"clinician_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}
