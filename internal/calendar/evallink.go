package calendar

import "time"

// Evaluation links follow their own model: four evaluations per module on
// the Wednesday and Friday of both weeks, a fixed two-week module, and an
// evaluation week inserted after modules 7 and 15. It disagrees with the
// engine's module windows from module 8 on; CompareModels reports where.
// Which model drives student-facing dates is still undecided.

const EvaluationLinkEvaluations = 4

const evaluationLinkModuleWeeks = 2

var (
	evaluationLinkDayOffsets   = [EvaluationLinkEvaluations]int{2, 4, 9, 11}
	evaluationWeekAfterModules = []int{7, 15}
)

func (e *Engine) EvaluationLinkModuleStart(moduleNumber int) (time.Time, error) {
	if err := e.checkModule(moduleNumber); err != nil {
		return time.Time{}, err
	}
	return e.linkStartOf(moduleNumber), nil
}

func (e *Engine) EvaluationLinkDate(moduleNumber, evaluationNumber int) (time.Time, error) {
	if err := e.checkModule(moduleNumber); err != nil {
		return time.Time{}, err
	}
	if err := checkEvaluation(evaluationNumber, EvaluationLinkEvaluations); err != nil {
		return time.Time{}, err
	}
	return e.linkDateOf(moduleNumber, evaluationNumber), nil
}

func (e *Engine) linkStartOf(moduleNumber int) time.Time {
	weeks := (moduleNumber - 1) * evaluationLinkModuleWeeks
	for _, after := range evaluationWeekAfterModules {
		if moduleNumber > after {
			weeks++
		}
	}
	return addDays(e.start, weeks*7)
}

func (e *Engine) linkDateOf(moduleNumber, evaluationNumber int) time.Time {
	return addDays(e.linkStartOf(moduleNumber), evaluationLinkDayOffsets[evaluationNumber-1])
}

// ModelDiscrepancy describes a module whose evaluation-link dates do not
// line up with the engine's module window.
type ModelDiscrepancy struct {
	ModuleNumber              int         `json:"moduleNumber"`
	CalendarStart             time.Time   `json:"calendarStart"`
	EvaluationLinkStart       time.Time   `json:"evaluationLinkStart"`
	StartShiftDays            int         `json:"startShiftDays"`
	CalendarEvaluations       []time.Time `json:"calendarEvaluations"`
	EvaluationLinkEvaluations []time.Time `json:"evaluationLinkEvaluations"`
	MissingCalendarReleases   []int       `json:"missingCalendarReleases,omitempty"`
}

// CompareModels lists every module where the two models start on different
// days or where an engine release date is not also an evaluation-link date.
func (e *Engine) CompareModels() []ModelDiscrepancy {
	var out []ModelDiscrepancy
	for n := 1; n <= e.cfg.TotalModules; n++ {
		d := ModelDiscrepancy{
			ModuleNumber:        n,
			CalendarStart:       e.startOf(n),
			EvaluationLinkStart: e.linkStartOf(n),
		}
		d.StartShiftDays = daysBetween(d.CalendarStart, d.EvaluationLinkStart)

		links := make(map[int64]bool, EvaluationLinkEvaluations)
		for i := 1; i <= EvaluationLinkEvaluations; i++ {
			date := e.linkDateOf(n, i)
			links[date.Unix()] = true
			d.EvaluationLinkEvaluations = append(d.EvaluationLinkEvaluations, date)
		}
		for i := 1; i <= EvaluationsPerModule; i++ {
			date := e.releaseOf(n, i)
			d.CalendarEvaluations = append(d.CalendarEvaluations, date)
			if !links[date.Unix()] {
				d.MissingCalendarReleases = append(d.MissingCalendarReleases, i)
			}
		}

		if d.StartShiftDays != 0 || len(d.MissingCalendarReleases) > 0 {
			out = append(out, d)
		}
	}
	return out
}
