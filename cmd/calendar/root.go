package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/calendar"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/config"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	configDir string
	start     string
	weeks     int
	total     int
	timezone  string
	locale    string
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	def := calendar.DefaultConfig()

	root := &cobra.Command{
		Use:           "calendar",
		Short:         "Inspect the program calendar",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configDir, "config", "", "directory holding config.yaml; overrides the calendar flags")
	pf.StringVar(&opts.start, "start", def.ProgramStartDate.Format(calendar.DateLayout), "program start date (YYYY-MM-DD)")
	pf.IntVar(&opts.weeks, "weeks", def.ModuleDurationWeeks, "module duration in weeks")
	pf.IntVar(&opts.total, "total", def.TotalModules, "number of modules")
	pf.StringVar(&opts.timezone, "timezone", calendar.DefaultTimezone, "program timezone")
	pf.StringVar(&opts.locale, "locale", "es-CL", "date locale")

	root.AddCommand(
		newScheduleCmd(opts),
		newLinksCmd(opts),
		newDiscrepanciesCmd(opts),
		newTokenCmd(opts),
	)
	return root
}

// loadConfig returns nil when no config directory was given.
func (o *options) loadConfig() (*config.Config, error) {
	if o.configDir == "" {
		return nil, nil
	}
	cfg, err := config.LoadConfig(o.configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", o.configDir, err)
	}
	return cfg, nil
}

func (o *options) calendarSection() (config.CalendarConfig, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return config.CalendarConfig{}, err
	}
	if cfg != nil {
		return cfg.Calendar, nil
	}
	return config.CalendarConfig{
		ProgramStartDate:    o.start,
		ModuleDurationWeeks: o.weeks,
		TotalModules:        o.total,
		Timezone:            o.timezone,
		Locale:              o.locale,
	}, nil
}

func (o *options) engine() (*calendar.Engine, *util.DateFormatter, error) {
	section, err := o.calendarSection()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := section.Build()
	if err != nil {
		return nil, nil, err
	}
	engine, err := calendar.NewEngine(cfg)
	if err != nil {
		return nil, nil, err
	}
	locale := section.Locale
	if locale == "" {
		locale = o.locale
	}
	return engine, util.NewDateFormatter(locale), nil
}

// parseNow reads a YYYY-MM-DD date in the program timezone. Empty means the
// current time.
func parseNow(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(calendar.DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

func moduleRange(e *calendar.Engine, only int) (int, int, error) {
	if only == 0 {
		return 1, e.TotalModules(), nil
	}
	if only < 1 || only > e.TotalModules() {
		return 0, 0, fmt.Errorf("%w: %d (program has %d modules)", calendar.ErrModuleOutOfRange, only, e.TotalModules())
	}
	return only, only, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
