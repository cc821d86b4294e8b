package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/calendar"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/logger"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/monitoring"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type LevelSubjectReader interface {
	FindByID(ctx context.Context, id uint) (*model.LevelSubject, error)
}

type ObjectiveReader interface {
	FindByModule(ctx context.Context, levelSubjectID uint, weekNumber int) (*model.LearningObjective, error)
	ListByLevelSubject(ctx context.Context, levelSubjectID uint) ([]model.LearningObjective, error)
}

type CompletionReader interface {
	CompletedModules(ctx context.Context, userID, levelSubjectID uint) ([]int, error)
}

// CalendarConfigView is the calendar configuration as the API reports it.
type CalendarConfigView struct {
	ProgramStartDate    string `json:"programStartDate"`
	ModuleDurationWeeks int    `json:"moduleDurationWeeks"`
	TotalModules        int    `json:"totalModules"`
	Timezone            string `json:"timezone"`
	ProgramEndDate      string `json:"programEndDate"`
}

type ScheduleResponse struct {
	LevelSubjectID   uint               `json:"levelSubjectId"`
	Today            string             `json:"today"`
	Config           CalendarConfigView `json:"config"`
	CompletedModules []int              `json:"completedModules"`
	Modules          []ProjectedModule  `json:"modules"`
}

type ModuleAccess struct {
	ProjectedModule
	Reason string `json:"reason,omitempty"`
}

type EvaluationAccess struct {
	ModuleNumber     int       `json:"moduleNumber"`
	EvaluationNumber int       `json:"evaluationNumber"`
	ReleaseDate      time.Time `json:"releaseDate"`
	ReleaseFormatted string    `json:"releaseFormatted"`
	ModuleAvailable  bool      `json:"moduleAvailable"`
	IsAvailable      bool      `json:"isAvailable"`
	Reason           string    `json:"reason,omitempty"`
}

// CalendarService answers schedule and access questions for one student in
// one program. The engine can be swapped at runtime when the calendar
// section of the config changes.
type CalendarService struct {
	engine atomic.Pointer[calendar.Engine]

	LevelSubjects LevelSubjectReader
	Objectives    ObjectiveReader
	Results       CompletionReader
	Cache         CompletionCache
	Projector     *ScheduleProjector
	Now           func() time.Time
}

func NewCalendarService(
	engine *calendar.Engine,
	levelSubjects LevelSubjectReader,
	objectives ObjectiveReader,
	results CompletionReader,
	cache CompletionCache,
	projector *ScheduleProjector,
) *CalendarService {
	s := &CalendarService{
		LevelSubjects: levelSubjects,
		Objectives:    objectives,
		Results:       results,
		Cache:         cache,
		Projector:     projector,
		Now:           time.Now,
	}
	s.engine.Store(engine)
	return s
}

func (s *CalendarService) Engine() *calendar.Engine {
	return s.engine.Load()
}

// Reload validates cfg and replaces the engine. The old engine stays in
// place when cfg is invalid.
func (s *CalendarService) Reload(cfg calendar.Config) error {
	engine, err := calendar.NewEngine(cfg)
	if err != nil {
		return err
	}
	s.engine.Store(engine)
	s.reportDiscrepancies(engine)
	logger.Log.Info("Calendar reloaded",
		zap.String("programStartDate", cfg.ProgramStartDate.Format(calendar.DateLayout)),
		zap.Int("moduleDurationWeeks", cfg.ModuleDurationWeeks),
		zap.Int("totalModules", cfg.TotalModules))
	return nil
}

func (s *CalendarService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ConfigView describes the active calendar.
func (s *CalendarService) ConfigView() CalendarConfigView {
	return configView(s.Engine())
}

func configView(e *calendar.Engine) CalendarConfigView {
	cfg := e.Config()
	end, _ := e.ModuleEndDate(e.TotalModules())
	return CalendarConfigView{
		ProgramStartDate:    cfg.ProgramStartDate.Format(calendar.DateLayout),
		ModuleDurationWeeks: cfg.ModuleDurationWeeks,
		TotalModules:        cfg.TotalModules,
		Timezone:            e.Location().String(),
		ProgramEndDate:      end.Format(calendar.DateLayout),
	}
}

// Discrepancies lists the modules where the evaluation-link calendar and the
// program calendar disagree.
func (s *CalendarService) Discrepancies() []calendar.ModelDiscrepancy {
	return s.Engine().CompareModels()
}

func (s *CalendarService) reportDiscrepancies(e *calendar.Engine) {
	diffs := e.CompareModels()
	monitoring.CalendarModelDiscrepancies.Set(float64(len(diffs)))
	if len(diffs) == 0 {
		return
	}
	modules := make([]int, len(diffs))
	for i, d := range diffs {
		modules[i] = d.ModuleNumber
	}
	logger.Log.Warn("Evaluation link dates disagree with the program calendar",
		zap.Ints("modules", modules),
		zap.Int("firstShiftDays", diffs[0].StartShiftDays))
}

// CheckCalendarModels logs and records the current model discrepancies.
func (s *CalendarService) CheckCalendarModels() []calendar.ModelDiscrepancy {
	e := s.Engine()
	s.reportDiscrepancies(e)
	return e.CompareModels()
}

func (s *CalendarService) ensureLevelSubject(ctx context.Context, levelSubjectID uint) error {
	if s.LevelSubjects == nil {
		return nil
	}
	_, err := s.LevelSubjects.FindByID(ctx, levelSubjectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrLevelSubjectNotFound
	}
	return err
}

// CompletedModules returns the modules the user has completed, served from
// the cache when possible. Cache failures fall through to the database.
func (s *CalendarService) CompletedModules(ctx context.Context, userID, levelSubjectID uint) (calendar.ModuleSet, error) {
	modules, source, err := s.completedModules(ctx, userID, levelSubjectID)
	if err != nil {
		return nil, err
	}
	monitoring.ScheduleBuildCounter.WithLabelValues(source).Inc()
	return calendar.NewModuleSet(modules...), nil
}

func (s *CalendarService) completedModules(ctx context.Context, userID, levelSubjectID uint) ([]int, string, error) {
	var generation int64
	cacheUsable := s.Cache != nil
	if cacheUsable {
		modules, gen, ok, err := s.Cache.Get(ctx, userID, levelSubjectID)
		switch {
		case err != nil:
			logger.Log.Warn("Completion cache read failed", zap.Uint("userID", userID), zap.Error(err))
			cacheUsable = false
		case ok:
			return modules, "cache", nil
		default:
			generation = gen
		}
	}

	modules, err := s.Results.CompletedModules(ctx, userID, levelSubjectID)
	if err != nil {
		return nil, "", err
	}

	if cacheUsable {
		if err := s.Cache.Set(ctx, userID, levelSubjectID, generation, modules); err != nil {
			logger.Log.Warn("Completion cache write failed", zap.Uint("userID", userID), zap.Error(err))
		}
	}
	return modules, "database", nil
}

// GetSchedule projects every module of the program for the user. A non-nil
// override replaces the configured calendar for this call only.
func (s *CalendarService) GetSchedule(ctx context.Context, userID, levelSubjectID uint, override *calendar.Config) (resp *ScheduleResponse, err error) {
	ctx, span := tracing.Start(ctx, "CalendarService.GetSchedule",
		attribute.Int64("user.id", int64(userID)),
		attribute.Int64("level_subject.id", int64(levelSubjectID)))
	defer func() { tracing.End(span, err) }()

	engine := s.Engine()
	if override != nil {
		if engine, err = calendar.NewEngine(*override); err != nil {
			return nil, err
		}
	}

	if err = s.ensureLevelSubject(ctx, levelSubjectID); err != nil {
		return nil, err
	}

	completed, err := s.CompletedModules(ctx, userID, levelSubjectID)
	if err != nil {
		return nil, err
	}

	objectives, err := s.Objectives.ListByLevelSubject(ctx, levelSubjectID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	schedules := engine.AllModulesSchedule(now, completed)

	return &ScheduleResponse{
		LevelSubjectID:   levelSubjectID,
		Today:            engine.Today(now).Format(calendar.DateLayout),
		Config:           configView(engine),
		CompletedModules: completed.Sorted(),
		Modules:          s.Projector.ProjectAll(schedules, objectives),
	}, nil
}

// CheckModuleAccess reports a module's status for the user, with a reason
// when it is locked.
func (s *CalendarService) CheckModuleAccess(ctx context.Context, userID, levelSubjectID uint, moduleNumber int) (access *ModuleAccess, err error) {
	ctx, span := tracing.Start(ctx, "CalendarService.CheckModuleAccess",
		attribute.Int64("user.id", int64(userID)),
		attribute.Int("module.number", moduleNumber))
	defer func() { tracing.End(span, err) }()

	engine := s.Engine()
	if _, err = engine.ModuleStartDate(moduleNumber); err != nil {
		return nil, err
	}
	if err = s.ensureLevelSubject(ctx, levelSubjectID); err != nil {
		return nil, err
	}

	completed, err := s.CompletedModules(ctx, userID, levelSubjectID)
	if err != nil {
		return nil, err
	}

	prev := moduleNumber == 1 || completed.Has(moduleNumber-1)
	schedule, err := engine.ModuleSchedule(moduleNumber, s.now(), prev, completed.Has(moduleNumber))
	if err != nil {
		return nil, err
	}

	objective, err := s.Objectives.FindByModule(ctx, levelSubjectID, moduleNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	access = &ModuleAccess{ProjectedModule: s.Projector.Project(schedule, objective)}
	if schedule.Status == calendar.StatusLocked {
		if schedule.DaysUntilStart > 0 {
			access.Reason = s.Projector.Formatter.AvailableIn(schedule.DaysUntilStart)
		} else {
			access.Reason = s.Projector.Formatter.CompletePreviousModule()
		}
	}

	monitoring.ModuleAccessCounter.WithLabelValues(string(schedule.Status)).Inc()
	return access, nil
}

// CheckEvaluationAccess reports whether an evaluation of the module can be
// taken now. Both the module and the release date must allow it.
func (s *CalendarService) CheckEvaluationAccess(ctx context.Context, userID, levelSubjectID uint, moduleNumber, evaluationNumber int) (*EvaluationAccess, error) {
	access, err := s.CheckModuleAccess(ctx, userID, levelSubjectID, moduleNumber)
	if err != nil {
		return nil, err
	}

	engine := s.Engine()
	release, err := engine.EvaluationReleaseDate(moduleNumber, evaluationNumber)
	if err != nil {
		return nil, err
	}
	released, err := engine.IsEvaluationAvailable(moduleNumber, evaluationNumber, s.now())
	if err != nil {
		return nil, err
	}

	out := &EvaluationAccess{
		ModuleNumber:     moduleNumber,
		EvaluationNumber: evaluationNumber,
		ReleaseDate:      release,
		ReleaseFormatted: s.Projector.Formatter.Format(release),
		ModuleAvailable:  access.IsAvailable,
		IsAvailable:      access.IsAvailable && released,
	}
	switch {
	case !access.IsAvailable:
		out.Reason = access.Reason
	case !released:
		out.Reason = s.Projector.Formatter.EvaluationNotReleased(release)
	}
	return out, nil
}
