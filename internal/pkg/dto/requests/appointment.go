package requests

import "time"

type AppointmentDialog struct {
	Open                 bool               `json:"open"`
	SelectedDate         *time.Time         `json:"selected_date"`
	EffectiveClinicianID string             `json:"clinician_id"`
	Appointment          *AppointmentRecord `json:"appointment"`
}

// AppointmentRecord is the stored appointment as the calendar hands it to the dialog.
type AppointmentRecord struct {
	Type        string                     `json:"type"`
	Title       string                     `json:"title"`
	ClientType  string                     `json:"client_type"`
	ClientID    string                     `json:"client_id"`
	ClinicianID string                     `json:"clinician_id"`
	LocationID  string                     `json:"location_id"`
	Status      string                     `json:"status"`
	StartDate   string                     `json:"start_date"`
	EndDate     string                     `json:"end_date"`
	IsRecurring bool                       `json:"is_recurring"`
	IsAllDay    bool                       `json:"is_all_day"`
	Services    []AppointmentRecordService `json:"services"`
}

type AppointmentRecordService struct {
	ID   string  `json:"id"`
	Rate float64 `json:"rate"`
}

type SelectedTimeSlot struct {
	StartTime string `json:"start_time" validate:"required,clocktime"`
	EndTime   string `json:"end_time" validate:"required,clocktime"`
}
