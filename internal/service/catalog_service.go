package service

import (
	"context"
	"errors"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"gorm.io/gorm"
)

type LevelSubjectStore interface {
	LevelSubjectReader
	Create(ctx context.Context, ls *model.LevelSubject) error
	List(ctx context.Context, activeOnly bool) ([]model.LevelSubject, error)
	Update(ctx context.Context, ls *model.LevelSubject) error
	Delete(ctx context.Context, id uint) error
}

type ObjectiveStore interface {
	ObjectiveReader
	Create(ctx context.Context, o *model.LearningObjective) error
	FindByID(ctx context.Context, id uint) (*model.LearningObjective, error)
	Update(ctx context.Context, o *model.LearningObjective) error
	Delete(ctx context.Context, id uint) error
}

type LevelSubjectRequest struct {
	LevelName   string `json:"levelName" binding:"required,max=100"`
	SubjectName string `json:"subjectName" binding:"required,max=100"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

type ObjectiveRequest struct {
	WeekNumber  int    `json:"weekNumber" binding:"required,min=1"`
	Code        string `json:"code" binding:"max=50"`
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

// CatalogService manages programs and the learning objective of each module.
type CatalogService struct {
	LevelSubjects LevelSubjectStore
	Objectives    ObjectiveStore
	Calendar      *CalendarService
}

func NewCatalogService(levelSubjects LevelSubjectStore, objectives ObjectiveStore, calendarService *CalendarService) *CatalogService {
	return &CatalogService{LevelSubjects: levelSubjects, Objectives: objectives, Calendar: calendarService}
}

func (s *CatalogService) CreateLevelSubject(ctx context.Context, req LevelSubjectRequest) (*model.LevelSubject, error) {
	ls := &model.LevelSubject{
		LevelName:   req.LevelName,
		SubjectName: req.SubjectName,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.LevelSubjects.Create(ctx, ls); err != nil {
		return nil, err
	}
	return ls, nil
}

func (s *CatalogService) GetLevelSubject(ctx context.Context, id uint) (*model.LevelSubject, error) {
	ls, err := s.LevelSubjects.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLevelSubjectNotFound
	}
	return ls, err
}

func (s *CatalogService) ListLevelSubjects(ctx context.Context, activeOnly bool) ([]model.LevelSubject, error) {
	return s.LevelSubjects.List(ctx, activeOnly)
}

func (s *CatalogService) UpdateLevelSubject(ctx context.Context, id uint, req LevelSubjectRequest) (*model.LevelSubject, error) {
	ls, err := s.GetLevelSubject(ctx, id)
	if err != nil {
		return nil, err
	}

	ls.LevelName = req.LevelName
	ls.SubjectName = req.SubjectName
	ls.Description = req.Description
	if req.IsActive != nil {
		ls.IsActive = *req.IsActive
	}
	if err := s.LevelSubjects.Update(ctx, ls); err != nil {
		return nil, err
	}
	return ls, nil
}

func (s *CatalogService) DeleteLevelSubject(ctx context.Context, id uint) error {
	if _, err := s.GetLevelSubject(ctx, id); err != nil {
		return err
	}
	return s.LevelSubjects.Delete(ctx, id)
}

// CreateObjective attaches an objective to a module of the program. Each
// module holds at most one objective.
func (s *CatalogService) CreateObjective(ctx context.Context, levelSubjectID uint, req ObjectiveRequest) (*model.LearningObjective, error) {
	if _, err := s.Calendar.Engine().ModuleStartDate(req.WeekNumber); err != nil {
		return nil, err
	}
	if _, err := s.GetLevelSubject(ctx, levelSubjectID); err != nil {
		return nil, err
	}

	_, err := s.Objectives.FindByModule(ctx, levelSubjectID, req.WeekNumber)
	if err == nil {
		return nil, util.ErrObjectiveExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	o := &model.LearningObjective{
		LevelSubjectID: levelSubjectID,
		WeekNumber:     req.WeekNumber,
		Code:           req.Code,
		Title:          req.Title,
		Description:    req.Description,
	}
	if err := s.Objectives.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *CatalogService) ListObjectives(ctx context.Context, levelSubjectID uint) ([]model.LearningObjective, error) {
	if _, err := s.GetLevelSubject(ctx, levelSubjectID); err != nil {
		return nil, err
	}
	return s.Objectives.ListByLevelSubject(ctx, levelSubjectID)
}

func (s *CatalogService) UpdateObjective(ctx context.Context, id uint, req ObjectiveRequest) (*model.LearningObjective, error) {
	o, err := s.Objectives.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrObjectiveNotFound
		}
		return nil, err
	}
	if _, err := s.Calendar.Engine().ModuleStartDate(req.WeekNumber); err != nil {
		return nil, err
	}

	if req.WeekNumber != o.WeekNumber {
		_, err := s.Objectives.FindByModule(ctx, o.LevelSubjectID, req.WeekNumber)
		if err == nil {
			return nil, util.ErrObjectiveExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	o.WeekNumber = req.WeekNumber
	o.Code = req.Code
	o.Title = req.Title
	o.Description = req.Description
	if err := s.Objectives.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *CatalogService) DeleteObjective(ctx context.Context, id uint) error {
	if _, err := s.Objectives.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrObjectiveNotFound
		}
		return err
	}
	return s.Objectives.Delete(ctx, id)
}
