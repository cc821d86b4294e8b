package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/calendar"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/service"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	CalendarService *service.CalendarService
	ExportService   *service.CalendarExportService
}

func NewCalendarController(calendarService *service.CalendarService, exportService *service.CalendarExportService) *CalendarController {
	return &CalendarController{CalendarService: calendarService, ExportService: exportService}
}

// @Summary Active calendar configuration
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.CalendarConfigView}
// @Router /api/calendar/config [get]
func (c *CalendarController) GetConfig(ctx *gin.Context) {
	util.Success(ctx, c.CalendarService.ConfigView())
}

// @Summary Full module schedule for a student
// @Description Staff may pass userId and override the calendar with startDate, moduleDurationWeeks and totalModules.
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param levelSubjectId query int true "Program ID"
// @Param userId query int false "Student ID (staff only)"
// @Param startDate query string false "Override start date, YYYY-MM-DD"
// @Param moduleDurationWeeks query int false "Override module duration"
// @Param totalModules query int false "Override module count"
// @Success 200 {object} util.Response{data=service.ScheduleResponse}
// @Failure 400 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/calendar/schedule [get]
func (c *CalendarController) GetSchedule(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	levelSubjectID, ok := levelSubjectQuery(ctx)
	if !ok {
		return
	}
	userID, err := targetUser(ctx, user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	override, err := c.scheduleOverride(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if override != nil && !isStaff(user) {
		respondError(ctx, util.ErrPermissionDenied)
		return
	}

	schedule, err := c.CalendarService.GetSchedule(ctx.Request.Context(), userID, levelSubjectID, override)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, schedule)
}

// scheduleOverride builds a calendar from the query, filling unset fields
// from the active calendar. It returns nil when no override was requested.
func (c *CalendarController) scheduleOverride(ctx *gin.Context) (*calendar.Config, error) {
	startRaw := ctx.Query("startDate")
	weeksRaw := ctx.Query("moduleDurationWeeks")
	totalRaw := ctx.Query("totalModules")
	if startRaw == "" && weeksRaw == "" && totalRaw == "" {
		return nil, nil
	}

	cfg := c.CalendarService.Engine().Config()
	loc := c.CalendarService.Engine().Location()
	start := cfg.ProgramStartDate
	weeks := cfg.ModuleDurationWeeks
	total := cfg.TotalModules

	if startRaw != "" {
		t, err := time.ParseInLocation(calendar.DateLayout, startRaw, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: startDate %q", errInvalidOverride, startRaw)
		}
		start = t
	}
	if weeksRaw != "" {
		n, err := strconv.Atoi(weeksRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: moduleDurationWeeks %q", errInvalidOverride, weeksRaw)
		}
		weeks = n
	}
	if totalRaw != "" {
		n, err := strconv.Atoi(totalRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: totalModules %q", errInvalidOverride, totalRaw)
		}
		total = n
	}

	override, err := calendar.NewConfig(start, weeks, total)
	if err != nil {
		return nil, err
	}
	override.Location = loc
	return &override, nil
}

// @Summary Check access to one module
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param moduleNumber path int true "Module number"
// @Param levelSubjectId query int true "Program ID"
// @Param userId query int false "Student ID (staff only)"
// @Success 200 {object} util.Response{data=service.ModuleAccess}
// @Failure 400 {object} util.Response
// @Router /api/calendar/modules/{moduleNumber}/access [get]
func (c *CalendarController) CheckModuleAccess(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	moduleNumber, ok := intParam(ctx, "moduleNumber")
	if !ok {
		return
	}
	levelSubjectID, ok := levelSubjectQuery(ctx)
	if !ok {
		return
	}
	userID, err := targetUser(ctx, user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	access, err := c.CalendarService.CheckModuleAccess(ctx.Request.Context(), userID, levelSubjectID, moduleNumber)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, access)
}

// @Summary Check access to one evaluation
// @Tags Calendar
// @Produce json
// @Security BearerAuth
// @Param moduleNumber path int true "Module number"
// @Param evaluationNumber path int true "Evaluation number (1 or 2)"
// @Param levelSubjectId query int true "Program ID"
// @Success 200 {object} util.Response{data=service.EvaluationAccess}
// @Failure 400 {object} util.Response
// @Router /api/calendar/modules/{moduleNumber}/evaluations/{evaluationNumber}/access [get]
func (c *CalendarController) CheckEvaluationAccess(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	moduleNumber, ok := intParam(ctx, "moduleNumber")
	if !ok {
		return
	}
	evaluationNumber, ok := intParam(ctx, "evaluationNumber")
	if !ok {
		return
	}
	levelSubjectID, ok := levelSubjectQuery(ctx)
	if !ok {
		return
	}
	userID, err := targetUser(ctx, user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	access, err := c.CalendarService.CheckEvaluationAccess(ctx.Request.Context(), userID, levelSubjectID, moduleNumber, evaluationNumber)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, access)
}

// @Summary Download the program calendar as iCalendar
// @Tags Calendar
// @Produce text/calendar
// @Security BearerAuth
// @Param levelSubjectId query int true "Program ID"
// @Success 200 {string} string "iCalendar document"
// @Router /api/calendar/export.ics [get]
func (c *CalendarController) DownloadICS(ctx *gin.Context) {
	levelSubjectID, ok := levelSubjectQuery(ctx)
	if !ok {
		return
	}

	doc, _, err := c.ExportService.RenderICS(ctx.Request.Context(), levelSubjectID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename=calendar-"+strconv.FormatUint(uint64(levelSubjectID), 10)+".ics")
	ctx.Data(http.StatusOK, util.MimeCalendar, doc)
}

// @Summary Publish the program calendar to storage
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param levelSubjectId query int true "Program ID"
// @Success 200 {object} util.Response{data=service.CalendarExport}
// @Router /api/admin/calendar/export [post]
func (c *CalendarController) PublishICS(ctx *gin.Context) {
	levelSubjectID, ok := levelSubjectQuery(ctx)
	if !ok {
		return
	}

	export, err := c.ExportService.Publish(ctx.Request.Context(), levelSubjectID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, export)
}

// @Summary Modules where evaluation-link dates disagree with the calendar
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/calendar/discrepancies [get]
func (c *CalendarController) GetDiscrepancies(ctx *gin.Context) {
	diffs := c.CalendarService.Discrepancies()
	util.Success(ctx, gin.H{
		"count":         len(diffs),
		"discrepancies": diffs,
	})
}
