package diagnosisTreatmentPlans

import (
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
)

// AddRow appends an empty diagnosis row.
func AddRow(rows []models.Diagnosis) []models.Diagnosis {
	return append(append([]models.Diagnosis(nil), rows...), models.Diagnosis{})
}

// RemoveRow drops the row at index. The last remaining row is never removed and
// an out of range index leaves rows unchanged.
func RemoveRow(rows []models.Diagnosis, index int) []models.Diagnosis {
	if len(rows) <= 1 || index < 0 || index >= len(rows) {
		return rows
	}
	result := make([]models.Diagnosis, 0, len(rows)-1)
	result = append(result, rows[:index]...)
	return append(result, rows[index+1:]...)
}

// UpdateRow sets field (code or description) of the row at index.
func UpdateRow(rows []models.Diagnosis, index int, field, value string) []models.Diagnosis {
	if index < 0 || index >= len(rows) {
		return rows
	}
	result := append([]models.Diagnosis(nil), rows...)
	switch field {
	case constvars.DiagnosisFieldCode:
		result[index].Code = value
	case constvars.DiagnosisFieldDescription:
		result[index].Description = value
	}
	return result
}

// NormalizeRows drops rows where both code and description are empty.
func NormalizeRows(rows []models.Diagnosis) []models.Diagnosis {
	result := make([]models.Diagnosis, 0, len(rows))
	for _, row := range rows {
		if !row.IsBlank() {
			result = append(result, row)
		}
	}
	return result
}
