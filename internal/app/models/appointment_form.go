package models

import "time"

type ServiceLine struct {
	ServiceID string  `json:"serviceId"`
	Fee       float64 `json:"fee"`
}

type AppointmentFormValues struct {
	Type               string        `json:"type"`
	EventName          string        `json:"eventName"`
	ClientType         string        `json:"clientType"`
	Client             string        `json:"client"`
	Clinician          string        `json:"clinician"`
	SelectedServices   []ServiceLine `json:"selectedServices"`
	StartDate          time.Time     `json:"startDate"`
	EndDate            time.Time     `json:"endDate"`
	StartTime          string        `json:"startTime"`
	EndTime            string        `json:"endTime"`
	Location           string        `json:"location"`
	Recurring          bool          `json:"recurring"`
	AllDay             bool          `json:"allDay"`
	Status             string        `json:"status,omitempty"`
	CancelAppointments bool          `json:"cancelAppointments"`
	NotifyClients      bool          `json:"notifyClients"`
}

// TimeSlot is the calendar selection handed over to the next dialog open.
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type AppointmentDialogState struct {
	ActiveTab       string                 `json:"active_tab"`
	AppointmentForm *AppointmentFormValues `json:"appointment_form"`
	EventForm       *AppointmentFormValues `json:"event_form"`
	Form            *AppointmentFormValues `json:"form"`
}
