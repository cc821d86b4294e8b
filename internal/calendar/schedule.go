package calendar

import (
	"sort"
	"time"
)

type Status string

const (
	StatusLocked     Status = "locked"
	StatusAvailable  Status = "available"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusLocked, StatusAvailable, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ModuleSchedule is computed per request and never stored.
type ModuleSchedule struct {
	ModuleNumber           int       `json:"moduleNumber"`
	StartDate              time.Time `json:"startDate"`
	EndDate                time.Time `json:"endDate"`
	Evaluation1ReleaseDate time.Time `json:"evaluation1ReleaseDate"`
	Evaluation2ReleaseDate time.Time `json:"evaluation2ReleaseDate"`
	IsAvailable            bool      `json:"isAvailable"`
	IsCompleted            bool      `json:"isCompleted"`
	DaysUntilStart         int       `json:"daysUntilStart"`
	Status                 Status    `json:"status"`
}

// ModuleSet holds the modules whose second evaluation the user has passed.
// A nil ModuleSet is empty.
type ModuleSet map[int]struct{}

func NewModuleSet(modules ...int) ModuleSet {
	s := make(ModuleSet, len(modules))
	for _, m := range modules {
		s[m] = struct{}{}
	}
	return s
}

func (s ModuleSet) Has(moduleNumber int) bool {
	_, ok := s[moduleNumber]
	return ok
}

func (s ModuleSet) Add(moduleNumber int) {
	s[moduleNumber] = struct{}{}
}

func (s ModuleSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Ints(out)
	return out
}

// ModuleSchedule derives the schedule and status of one module. Status is
// resolved in order: completed, locked, in_progress (window not yet over),
// available (window over but not completed).
func (e *Engine) ModuleSchedule(moduleNumber int, now time.Time, previousModuleCompleted, currentModuleEval2Completed bool) (ModuleSchedule, error) {
	if err := e.checkModule(moduleNumber); err != nil {
		return ModuleSchedule{}, err
	}
	return e.schedule(moduleNumber, e.Today(now), previousModuleCompleted, currentModuleEval2Completed), nil
}

// AllModulesSchedule returns one schedule per module in order, locked ones
// included. completed must be a single consistent snapshot.
func (e *Engine) AllModulesSchedule(now time.Time, completed ModuleSet) []ModuleSchedule {
	today := e.Today(now)
	out := make([]ModuleSchedule, 0, e.cfg.TotalModules)
	for i := 1; i <= e.cfg.TotalModules; i++ {
		previous := i == 1 || completed.Has(i-1)
		out = append(out, e.schedule(i, today, previous, completed.Has(i)))
	}
	return out
}

func (e *Engine) schedule(moduleNumber int, today time.Time, previousCompleted, completed bool) ModuleSchedule {
	start := e.startOf(moduleNumber)
	end := e.endOf(moduleNumber)
	available := e.available(moduleNumber, today, previousCompleted)

	s := ModuleSchedule{
		ModuleNumber:           moduleNumber,
		StartDate:              start,
		EndDate:                end,
		Evaluation1ReleaseDate: e.releaseOf(moduleNumber, 1),
		Evaluation2ReleaseDate: e.releaseOf(moduleNumber, 2),
		IsAvailable:            available,
		IsCompleted:            completed,
		DaysUntilStart:         max(0, daysBetween(today, start)),
	}

	switch {
	case completed:
		s.Status = StatusCompleted
	case !available:
		s.Status = StatusLocked
	case !today.After(end):
		s.Status = StatusInProgress
	default:
		s.Status = StatusAvailable
	}
	return s
}
