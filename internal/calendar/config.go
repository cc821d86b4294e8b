package calendar

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	DefaultModuleDurationWeeks = 2
	DefaultTotalModules        = 15
	DefaultTimezone            = "America/Santiago"

	// DateLayout is the wire format of calendar dates in config and queries.
	DateLayout = "2006-01-02"
)

var (
	ErrMissingStartDate      = errors.New("calendar: program start date is required")
	ErrInvalidModuleDuration = errors.New("calendar: module duration must be at least one week")
	ErrInvalidTotalModules   = errors.New("calendar: total modules must be at least one")
	ErrModuleOutOfRange      = errors.New("calendar: module number out of range")
	ErrEvaluationOutOfRange  = errors.New("calendar: evaluation number out of range")
)

// Config describes one program's calendar. Only the year, month and day of
// ProgramStartDate are used; Location decides which calendar day "now" falls
// on and defaults to the location of ProgramStartDate.
type Config struct {
	ProgramStartDate    time.Time
	ModuleDurationWeeks int
	TotalModules        int
	Location            *time.Location
}

// DefaultConfig is the production calendar: 15 two-week modules starting
// Monday 2026-03-09.
func DefaultConfig() Config {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	return Config{
		ProgramStartDate:    time.Date(2026, time.March, 9, 0, 0, 0, 0, loc),
		ModuleDurationWeeks: DefaultModuleDurationWeeks,
		TotalModules:        DefaultTotalModules,
		Location:            loc,
	}
}

// NewConfig builds and validates a config. The program location is taken
// from start.
func NewConfig(start time.Time, moduleDurationWeeks, totalModules int) (Config, error) {
	cfg := Config{
		ProgramStartDate:    start,
		ModuleDurationWeeks: moduleDurationWeeks,
		TotalModules:        totalModules,
		Location:            start.Location(),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the start date and sizes. Any weekday is accepted as the
// start: modules still run in whole weeks from it and evaluation 1 of each
// module is released on the first Friday on or after the module start.
func (c Config) Validate() error {
	if c.ProgramStartDate.IsZero() {
		return ErrMissingStartDate
	}
	if c.ModuleDurationWeeks < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidModuleDuration, c.ModuleDurationWeeks)
	}
	if c.TotalModules < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTotalModules, c.TotalModules)
	}
	return nil
}

func (c Config) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return c.ProgramStartDate.Location()
}
