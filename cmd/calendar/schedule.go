package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/calendar"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/service"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"github.com/spf13/cobra"
)

var errModelsDisagree = errors.New("calendar models disagree")

func newScheduleCmd(opts *options) *cobra.Command {
	var (
		completed string
		now       string
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print every module window, release date and status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd.OutOrStdout(), opts, completed, now, asJSON)
		},
	}
	cmd.Flags().StringVar(&completed, "completed", "", "comma-separated modules whose second evaluation was passed")
	cmd.Flags().StringVar(&now, "now", "", "evaluate as of this date (YYYY-MM-DD, program timezone)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func runSchedule(w io.Writer, opts *options, completedFlag, nowFlag string, asJSON bool) error {
	engine, formatter, err := opts.engine()
	if err != nil {
		return err
	}
	now, err := parseNow(nowFlag, engine.Location())
	if err != nil {
		return err
	}
	completedList, err := util.ParseIntList(completedFlag)
	if err != nil {
		return fmt.Errorf("invalid --completed %q: %w", completedFlag, err)
	}
	for _, n := range completedList {
		if _, _, err := moduleRange(engine, n); err != nil {
			return err
		}
	}

	schedules := engine.AllModulesSchedule(now, calendar.NewModuleSet(completedList...))
	projected := service.NewScheduleProjector(formatter).ProjectAll(schedules, nil)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(projected)
	}

	rows := make([][]string, 0, len(projected))
	for _, m := range projected {
		days := "-"
		if m.DaysUntilStart > 0 {
			days = itoa(m.DaysUntilStart)
		}
		rows = append(rows, []string{
			formatter.ModuleLabel(m.ModuleNumber),
			m.StartFormatted,
			m.EndFormatted,
			m.Eval1Formatted,
			m.Eval2Formatted,
			statusLabel(m.Status),
			days,
		})
	}
	fmt.Fprintf(w, "Today: %s\n\n", formatter.Format(engine.Today(now)))
	fmt.Fprint(w, renderTable([]string{"MODULE", "START", "END", "EVAL 1", "EVAL 2", "STATUS", "DAYS"}, rows))
	return nil
}

func newLinksCmd(opts *options) *cobra.Command {
	var module int
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Print evaluation-link release dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLinks(cmd.OutOrStdout(), opts, module)
		},
	}
	cmd.Flags().IntVar(&module, "module", 0, "only print this module")
	return cmd
}

func runLinks(w io.Writer, opts *options, only int) error {
	engine, formatter, err := opts.engine()
	if err != nil {
		return err
	}
	from, to, err := moduleRange(engine, only)
	if err != nil {
		return err
	}

	headers := []string{"MODULE"}
	for i := 1; i <= calendar.EvaluationLinkEvaluations; i++ {
		headers = append(headers, "EVAL "+itoa(i))
	}

	var rows [][]string
	for n := from; n <= to; n++ {
		row := []string{formatter.ModuleLabel(n)}
		for i := 1; i <= calendar.EvaluationLinkEvaluations; i++ {
			date, err := engine.EvaluationLinkDate(n, i)
			if err != nil {
				return err
			}
			row = append(row, date.Format(calendar.DateLayout))
		}
		rows = append(rows, row)
	}
	fmt.Fprint(w, renderTable(headers, rows))
	return nil
}

func newDiscrepanciesCmd(opts *options) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "discrepancies",
		Short: "Compare module windows with evaluation-link dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscrepancies(cmd.OutOrStdout(), opts, strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any module disagrees")
	return cmd
}

func runDiscrepancies(w io.Writer, opts *options, strict bool) error {
	engine, formatter, err := opts.engine()
	if err != nil {
		return err
	}

	diffs := engine.CompareModels()
	if len(diffs) == 0 {
		fmt.Fprintln(w, styleGreen.Render("Calendar models agree for all modules."))
		return nil
	}

	rows := make([][]string, 0, len(diffs))
	for _, d := range diffs {
		missing := make([]string, len(d.MissingCalendarReleases))
		for i, e := range d.MissingCalendarReleases {
			missing[i] = itoa(e)
		}
		rows = append(rows, []string{
			formatter.ModuleLabel(d.ModuleNumber),
			d.CalendarStart.Format(calendar.DateLayout),
			d.EvaluationLinkStart.Format(calendar.DateLayout),
			fmt.Sprintf("%+d", d.StartShiftDays),
			strings.Join(missing, ","),
		})
	}
	fmt.Fprintln(w, styleRed.Render(fmt.Sprintf("%d of %d modules disagree.", len(diffs), engine.TotalModules())))
	fmt.Fprint(w, renderTable([]string{"MODULE", "WINDOW START", "LINK START", "SHIFT", "UNMATCHED EVALS"}, rows))

	if strict {
		return fmt.Errorf("%w: %d modules", errModelsDisagree, len(diffs))
	}
	return nil
}
