package util

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// The first supported locale is the fallback.
var localeMatcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
})

var (
	spanishWeekdays = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	spanishMonths   = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// DateFormatter renders calendar dates and access messages for students.
type DateFormatter struct {
	lang string
}

func NewDateFormatter(locale string) *DateFormatter {
	tag, _ := language.MatchStrings(localeMatcher, locale)
	base, _ := tag.Base()
	return &DateFormatter{lang: base.String()}
}

// Locale is the base language actually used, "es" or "en".
func (f *DateFormatter) Locale() string {
	return f.lang
}

func (f *DateFormatter) spanish() bool {
	return f.lang != "en"
}

// Format renders "lunes 9 de marzo, 2026" or "Monday, March 9, 2026".
func (f *DateFormatter) Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if f.spanish() {
		return fmt.Sprintf("%s %d de %s, %d", spanishWeekdays[t.Weekday()], t.Day(), spanishMonths[t.Month()-1], t.Year())
	}
	return t.Format("Monday, January 2, 2006")
}

func (f *DateFormatter) AvailableIn(days int) string {
	if f.spanish() {
		if days == 1 {
			return "Disponible en 1 día"
		}
		return fmt.Sprintf("Disponible en %d días", days)
	}
	if days == 1 {
		return "Available in 1 day"
	}
	return fmt.Sprintf("Available in %d days", days)
}

func (f *DateFormatter) CompletePreviousModule() string {
	if f.spanish() {
		return "Completa el módulo anterior primero"
	}
	return "Complete the previous module first"
}

func (f *DateFormatter) EvaluationNotReleased(release time.Time) string {
	if f.spanish() {
		return "La evaluación se habilita el " + f.Format(release)
	}
	return "The evaluation opens on " + f.Format(release)
}

func (f *DateFormatter) ModuleLabel(moduleNumber int) string {
	if f.spanish() {
		return fmt.Sprintf("Módulo %d", moduleNumber)
	}
	return fmt.Sprintf("Module %d", moduleNumber)
}

func (f *DateFormatter) EvaluationLabel(moduleNumber, evaluationNumber int) string {
	if f.spanish() {
		return fmt.Sprintf("Evaluación %d del módulo %d", evaluationNumber, moduleNumber)
	}
	return fmt.Sprintf("Module %d evaluation %d", moduleNumber, evaluationNumber)
}
