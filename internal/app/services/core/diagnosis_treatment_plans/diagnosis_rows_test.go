package diagnosisTreatmentPlans

import (
	"backoffice-service/internal/app/models"
	"backoffice-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosisRows(t *testing.T) {
	rows := []models.Diagnosis{{}}

	t.Run("add appends an empty row", func(t *testing.T) {
		added := AddRow(rows)
		assert.Len(t, added, 2)
		assert.Len(t, rows, 1)
	})

	t.Run("the last row is never removed", func(t *testing.T) {
		assert.Len(t, RemoveRow(rows, 0), 1)
	})

	t.Run("remove by index", func(t *testing.T) {
		many := []models.Diagnosis{{Code: "A"}, {Code: "B"}, {Code: "C"}}
		assert.Equal(t, []models.Diagnosis{{Code: "A"}, {Code: "C"}}, RemoveRow(many, 1))
		assert.Equal(t, many, RemoveRow(many, 7))
	})

	t.Run("update a field", func(t *testing.T) {
		updated := UpdateRow(rows, 0, constvars.DiagnosisFieldCode, "F41.1")
		updated = UpdateRow(updated, 0, constvars.DiagnosisFieldDescription, "Anxiety")
		assert.Equal(t, models.Diagnosis{Code: "F41.1", Description: "Anxiety"}, updated[0])
		assert.Equal(t, models.Diagnosis{}, rows[0])
	})

	t.Run("normalize drops blank rows", func(t *testing.T) {
		normalized := NormalizeRows([]models.Diagnosis{{}, {Code: "F41.1"}, {Description: "note"}})
		assert.Equal(t, []models.Diagnosis{{Code: "F41.1"}, {Description: "note"}}, normalized)
	})
}
