// Package calendar computes module windows, evaluation release dates and
// module availability for a program. Everything here is pure: an Engine holds
// only its config, and every result is derived from the arguments.
package calendar

import (
	"fmt"
	"time"
)

const EvaluationsPerModule = 2

// Engine answers date and availability questions for one Config. It is
// immutable and safe for concurrent use.
type Engine struct {
	cfg   Config
	start time.Time
	loc   *time.Location
}

// NewEngine validates cfg and returns an Engine for it.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:   cfg,
		start: dateOf(cfg.ProgramStartDate),
		loc:   cfg.location(),
	}, nil
}

// MustNewEngine is NewEngine for configs known to be valid, such as
// DefaultConfig.
func MustNewEngine(cfg Config) *Engine {
	e, err := NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Location is the time zone that decides which calendar day "now" is.
func (e *Engine) Location() *time.Location {
	return e.loc
}

func (e *Engine) TotalModules() int {
	return e.cfg.TotalModules
}

// Today returns the calendar day now falls on in the program location.
func (e *Engine) Today(now time.Time) time.Time {
	return dateIn(now, e.loc)
}

func (e *Engine) ModuleStartDate(moduleNumber int) (time.Time, error) {
	if err := e.checkModule(moduleNumber); err != nil {
		return time.Time{}, err
	}
	return e.startOf(moduleNumber), nil
}

// ModuleEndDate is the last day of the module window, the day before the
// next module starts.
func (e *Engine) ModuleEndDate(moduleNumber int) (time.Time, error) {
	if err := e.checkModule(moduleNumber); err != nil {
		return time.Time{}, err
	}
	return e.endOf(moduleNumber), nil
}

// Evaluation1ReleaseDate is the first Friday on or after the module start.
func (e *Engine) Evaluation1ReleaseDate(moduleNumber int) (time.Time, error) {
	return e.EvaluationReleaseDate(moduleNumber, 1)
}

// Evaluation2ReleaseDate is one week after evaluation 1.
func (e *Engine) Evaluation2ReleaseDate(moduleNumber int) (time.Time, error) {
	return e.EvaluationReleaseDate(moduleNumber, 2)
}

func (e *Engine) EvaluationReleaseDate(moduleNumber, evaluationNumber int) (time.Time, error) {
	if err := e.checkModule(moduleNumber); err != nil {
		return time.Time{}, err
	}
	if err := checkEvaluation(evaluationNumber, EvaluationsPerModule); err != nil {
		return time.Time{}, err
	}
	return e.releaseOf(moduleNumber, evaluationNumber), nil
}

// IsModuleAvailable reports whether the module window has opened and, for
// every module after the first, the previous module has been completed.
func (e *Engine) IsModuleAvailable(moduleNumber int, now time.Time, previousModuleCompleted bool) (bool, error) {
	if err := e.checkModule(moduleNumber); err != nil {
		return false, err
	}
	return e.available(moduleNumber, e.Today(now), previousModuleCompleted), nil
}

// IsEvaluationAvailable only looks at the release date. Callers check module
// availability separately.
func (e *Engine) IsEvaluationAvailable(moduleNumber, evaluationNumber int, now time.Time) (bool, error) {
	release, err := e.EvaluationReleaseDate(moduleNumber, evaluationNumber)
	if err != nil {
		return false, err
	}
	return !e.Today(now).Before(release), nil
}

func (e *Engine) checkModule(moduleNumber int) error {
	if moduleNumber < 1 || moduleNumber > e.cfg.TotalModules {
		return fmt.Errorf("%w: %d not in 1..%d", ErrModuleOutOfRange, moduleNumber, e.cfg.TotalModules)
	}
	return nil
}

func checkEvaluation(evaluationNumber, limit int) error {
	if evaluationNumber < 1 || evaluationNumber > limit {
		return fmt.Errorf("%w: %d not in 1..%d", ErrEvaluationOutOfRange, evaluationNumber, limit)
	}
	return nil
}

func (e *Engine) startOf(moduleNumber int) time.Time {
	return addDays(e.start, (moduleNumber-1)*e.cfg.ModuleDurationWeeks*7)
}

func (e *Engine) endOf(moduleNumber int) time.Time {
	return addDays(e.startOf(moduleNumber+1), -1)
}

func (e *Engine) releaseOf(moduleNumber, evaluationNumber int) time.Time {
	first := nextFriday(e.startOf(moduleNumber))
	return addDays(first, (evaluationNumber-1)*7)
}

func (e *Engine) available(moduleNumber int, today time.Time, previousModuleCompleted bool) bool {
	if today.Before(e.startOf(moduleNumber)) {
		return false
	}
	return moduleNumber == 1 || previousModuleCompleted
}
