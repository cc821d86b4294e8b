package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateFormatter_Locales(t *testing.T) {
	date := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		locale string
		want   string
		lang   string
	}{
		{"es-CL", "lunes 9 de marzo, 2026", "es"},
		{"es", "lunes 9 de marzo, 2026", "es"},
		{"en-US", "Monday, March 9, 2026", "en"},
		{"", "lunes 9 de marzo, 2026", "es"},
		{"fr", "lunes 9 de marzo, 2026", "es"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			f := NewDateFormatter(tt.locale)
			assert.Equal(t, tt.want, f.Format(date))
			assert.Equal(t, tt.lang, f.Locale())
		})
	}
}

func TestDateFormatter_SpanishAccents(t *testing.T) {
	f := NewDateFormatter("es")
	assert.Equal(t, "miércoles 30 de septiembre, 2026", f.Format(time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "sábado 1 de agosto, 2026", f.Format(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", f.Format(time.Time{}))
}

func TestDateFormatter_Messages(t *testing.T) {
	es := NewDateFormatter("es-CL")
	en := NewDateFormatter("en")

	assert.Equal(t, "Disponible en 1 día", es.AvailableIn(1))
	assert.Equal(t, "Disponible en 8 días", es.AvailableIn(8))
	assert.Equal(t, "Completa el módulo anterior primero", es.CompletePreviousModule())
	assert.Equal(t, "Available in 8 days", en.AvailableIn(8))
	assert.Equal(t, "Complete the previous module first", en.CompletePreviousModule())

	release := time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "La evaluación se habilita el viernes 13 de marzo, 2026", es.EvaluationNotReleased(release))
	assert.Equal(t, "The evaluation opens on Friday, March 13, 2026", en.EvaluationNotReleased(release))

	assert.Equal(t, "Módulo 3", es.ModuleLabel(3))
	assert.Equal(t, "Evaluación 2 del módulo 3", es.EvaluationLabel(3, 2))
	assert.Equal(t, "Module 3 evaluation 2", en.EvaluationLabel(3, 2))
}

func TestParseIntList(t *testing.T) {
	got, err := ParseIntList(" 1, 2,3 ")
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	got, err = ParseIntList("")
	assert.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseIntList("1,x")
	assert.Error(t, err)
}
