package service

import (
	"context"
	"strconv"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/logger"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/monitoring"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type ResultStore interface {
	Create(ctx context.Context, result *model.EvaluationResult) error
	CompletedModules(ctx context.Context, userID, levelSubjectID uint) ([]int, error)
	ListByUser(ctx context.Context, userID, levelSubjectID uint) ([]model.EvaluationResult, error)
}

type RecordResultRequest struct {
	LevelSubjectID   uint `json:"levelSubjectId" binding:"required"`
	ModuleNumber     int  `json:"moduleNumber" binding:"required,min=1"`
	EvaluationNumber int  `json:"evaluationNumber" binding:"required,oneof=1 2"`
	Score            int  `json:"score" binding:"min=0"`
	MaxScore         int  `json:"maxScore" binding:"required,min=1"`
}

// EvaluationService records evaluation attempts. A passed second evaluation
// completes the module and unlocks the next one.
type EvaluationService struct {
	Results  ResultStore
	Calendar *CalendarService
	Cache    CompletionCache
}

func NewEvaluationService(results ResultStore, calendarService *CalendarService, cache CompletionCache) *EvaluationService {
	return &EvaluationService{Results: results, Calendar: calendarService, Cache: cache}
}

// RecordResult stores an attempt after checking that the module is open to
// the user and the evaluation has been released.
func (s *EvaluationService) RecordResult(ctx context.Context, userID uint, req RecordResultRequest) (result *model.EvaluationResult, err error) {
	ctx, span := tracing.Start(ctx, "EvaluationService.RecordResult",
		attribute.Int64("user.id", int64(userID)),
		attribute.Int("module.number", req.ModuleNumber),
		attribute.Int("evaluation.number", req.EvaluationNumber))
	defer func() { tracing.End(span, err) }()

	if req.MaxScore <= 0 || req.Score < 0 || req.Score > req.MaxScore {
		return nil, util.ErrInvalidScore
	}

	access, err := s.Calendar.CheckEvaluationAccess(ctx, userID, req.LevelSubjectID, req.ModuleNumber, req.EvaluationNumber)
	if err != nil {
		return nil, err
	}
	if !access.ModuleAvailable {
		return nil, util.ErrModuleLocked
	}
	if !access.IsAvailable {
		return nil, util.ErrEvaluationNotReleased
	}

	result = &model.EvaluationResult{
		UserID:           userID,
		LevelSubjectID:   req.LevelSubjectID,
		ModuleNumber:     req.ModuleNumber,
		EvaluationNumber: req.EvaluationNumber,
		Score:            req.Score,
		MaxScore:         req.MaxScore,
		Passed:           model.Passes(req.Score, req.MaxScore),
		CompletedAt:      s.Calendar.now(),
	}
	if err = s.Results.Create(ctx, result); err != nil {
		return nil, err
	}

	monitoring.EvaluationResultCounter.WithLabelValues(
		strconv.Itoa(req.EvaluationNumber),
		strconv.FormatBool(result.Passed),
	).Inc()

	if result.Passed && result.EvaluationNumber == 2 && s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, userID, req.LevelSubjectID); err != nil {
			logger.Log.Warn("Completion cache invalidation failed",
				zap.Uint("userID", userID),
				zap.Uint("levelSubjectID", req.LevelSubjectID),
				zap.Error(err))
		}
	}

	logger.Log.Info("Evaluation result recorded",
		zap.Uint("userID", userID),
		zap.Uint("levelSubjectID", req.LevelSubjectID),
		zap.Int("module", req.ModuleNumber),
		zap.Int("evaluation", req.EvaluationNumber),
		zap.Bool("passed", result.Passed))
	return result, nil
}

func (s *EvaluationService) ListResults(ctx context.Context, userID, levelSubjectID uint) ([]model.EvaluationResult, error) {
	return s.Results.ListByUser(ctx, userID, levelSubjectID)
}

// CompletedModules returns the sorted module numbers the user has completed.
func (s *EvaluationService) CompletedModules(ctx context.Context, userID, levelSubjectID uint) ([]int, error) {
	set, err := s.Calendar.CompletedModules(ctx, userID, levelSubjectID)
	if err != nil {
		return nil, err
	}
	return set.Sorted(), nil
}
