package requests

type Diagnosis struct {
	Code        string `json:"code" validate:"max=20"`
	Description string `json:"description" validate:"max=500"`
}

type CreateDiagnosisTreatmentPlan struct {
	ClientID          string      `json:"-"`
	Date              string      `json:"date" validate:"required,datetime=2006-01-02"`
	Time              string      `json:"time" validate:"required,datetime=15:04"`
	Diagnoses         []Diagnosis `json:"diagnoses" validate:"required,min=1,dive"`
	TreatmentPlan     string      `json:"treatment_plan"`
	ShowTreatmentPlan bool        `json:"show_treatment_plan"`
}

// EditDiagnosisRows applies one row edit of the documentation form to Rows.
type EditDiagnosisRows struct {
	Action string      `json:"action" validate:"required,oneof=add remove update"`
	Rows   []Diagnosis `json:"rows" validate:"dive"`
	Index  int         `json:"index" validate:"min=0"`
	Field  string      `json:"field" validate:"omitempty,oneof=code description"`
	Value  string      `json:"value"`
}
