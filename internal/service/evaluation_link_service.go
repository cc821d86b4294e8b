package service

import (
	"context"
	"errors"
	"time"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/calendar"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"

	"gorm.io/gorm"
)

type EvaluationLinkStore interface {
	Create(ctx context.Context, link *model.EvaluationLink) error
	FindByID(ctx context.Context, id string) (*model.EvaluationLink, error)
	List(ctx context.Context, levelSubjectID uint, moduleNumber int) ([]model.EvaluationLink, error)
	Update(ctx context.Context, link *model.EvaluationLink) error
	Delete(ctx context.Context, id string) error
}

type EvaluationLinkRequest struct {
	LevelSubjectID   uint   `json:"levelSubjectId" binding:"required"`
	ModuleNumber     int    `json:"moduleNumber" binding:"required,min=1"`
	EvaluationNumber int    `json:"evaluationNumber" binding:"required,min=1,max=4"`
	Title            string `json:"title" binding:"max=255"`
	URL              string `json:"url" binding:"required,url"`
}

// EvaluationLinkView is a link with its release date on the evaluation-link
// calendar.
type EvaluationLinkView struct {
	model.EvaluationLink
	ReleaseDate      time.Time `json:"releaseDate"`
	ReleaseFormatted string    `json:"releaseFormatted"`
	IsReleased       bool      `json:"isReleased"`
}

type EvaluationLinkService struct {
	Links         EvaluationLinkStore
	LevelSubjects LevelSubjectReader
	Calendar      *CalendarService
}

func NewEvaluationLinkService(links EvaluationLinkStore, levelSubjects LevelSubjectReader, calendarService *CalendarService) *EvaluationLinkService {
	return &EvaluationLinkService{Links: links, LevelSubjects: levelSubjects, Calendar: calendarService}
}

func (s *EvaluationLinkService) view(engine *calendar.Engine, today time.Time, link model.EvaluationLink) EvaluationLinkView {
	v := EvaluationLinkView{EvaluationLink: link}
	// Links stored before the program was shortened have no release date.
	release, err := engine.EvaluationLinkDate(link.ModuleNumber, link.EvaluationNumber)
	if err != nil {
		return v
	}
	v.ReleaseDate = release
	v.ReleaseFormatted = s.Calendar.Projector.Formatter.Format(release)
	v.IsReleased = !today.Before(release)
	return v
}

func (s *EvaluationLinkService) validate(ctx context.Context, req EvaluationLinkRequest) error {
	if _, err := s.Calendar.Engine().EvaluationLinkDate(req.ModuleNumber, req.EvaluationNumber); err != nil {
		return err
	}
	if _, err := s.LevelSubjects.FindByID(ctx, req.LevelSubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrLevelSubjectNotFound
		}
		return err
	}
	return nil
}

func (s *EvaluationLinkService) Create(ctx context.Context, req EvaluationLinkRequest) (*EvaluationLinkView, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	link := model.EvaluationLink{
		LevelSubjectID:   req.LevelSubjectID,
		ModuleNumber:     req.ModuleNumber,
		EvaluationNumber: req.EvaluationNumber,
		Title:            req.Title,
		URL:              req.URL,
	}
	if err := s.Links.Create(ctx, &link); err != nil {
		return nil, err
	}

	engine := s.Calendar.Engine()
	v := s.view(engine, engine.Today(s.Calendar.now()), link)
	return &v, nil
}

func (s *EvaluationLinkService) Get(ctx context.Context, id string) (*EvaluationLinkView, error) {
	link, err := s.Links.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEvaluationLinkMissing
		}
		return nil, err
	}

	engine := s.Calendar.Engine()
	v := s.view(engine, engine.Today(s.Calendar.now()), *link)
	return &v, nil
}

// List returns the links of a program; moduleNumber 0 means every module.
func (s *EvaluationLinkService) List(ctx context.Context, levelSubjectID uint, moduleNumber int) ([]EvaluationLinkView, error) {
	links, err := s.Links.List(ctx, levelSubjectID, moduleNumber)
	if err != nil {
		return nil, err
	}

	engine := s.Calendar.Engine()
	today := engine.Today(s.Calendar.now())
	out := make([]EvaluationLinkView, 0, len(links))
	for _, l := range links {
		out = append(out, s.view(engine, today, l))
	}
	return out, nil
}

func (s *EvaluationLinkService) Update(ctx context.Context, id string, req EvaluationLinkRequest) (*EvaluationLinkView, error) {
	link, err := s.Links.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEvaluationLinkMissing
		}
		return nil, err
	}
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	link.LevelSubjectID = req.LevelSubjectID
	link.ModuleNumber = req.ModuleNumber
	link.EvaluationNumber = req.EvaluationNumber
	link.Title = req.Title
	link.URL = req.URL
	if err := s.Links.Update(ctx, link); err != nil {
		return nil, err
	}

	engine := s.Calendar.Engine()
	v := s.view(engine, engine.Today(s.Calendar.now()), *link)
	return &v, nil
}

func (s *EvaluationLinkService) Delete(ctx context.Context, id string) error {
	if _, err := s.Links.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrEvaluationLinkMissing
		}
		return err
	}
	return s.Links.Delete(ctx, id)
}
