package models

import "time"

type Diagnosis struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (d Diagnosis) IsBlank() bool {
	return d.Code == "" && d.Description == ""
}

type DiagnosisTreatmentPlan struct {
	ID            string      `json:"id" db:"id"`
	ClientID      string      `json:"client_id" db:"client_id"`
	DocumentedAt  time.Time   `json:"documented_at" db:"documented_at"`
	Diagnoses     []Diagnosis `json:"diagnoses" db:"diagnoses"`
	TreatmentPlan string      `json:"treatment_plan" db:"treatment_plan"`
	CreatedBy     string      `json:"created_by" db:"created_by"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
}

type DocumentationHistoryEntry struct {
	PlanID     string    `json:"plan_id"`
	ObjectKey  string    `json:"object_key"`
	Size       int64     `json:"size"`
	ArchivedAt time.Time `json:"archived_at"`
}
