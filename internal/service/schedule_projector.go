package service

import (
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/calendar"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"
	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/util"
)

type ObjectiveView struct {
	ID          uint   `json:"id"`
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectedModule is a module schedule as the API returns it.
type ProjectedModule struct {
	calendar.ModuleSchedule
	StartFormatted string         `json:"startFormatted"`
	EndFormatted   string         `json:"endFormatted"`
	Eval1Formatted string         `json:"eval1Formatted"`
	Eval2Formatted string         `json:"eval2Formatted"`
	Objective      *ObjectiveView `json:"objective"`
}

// ScheduleProjector joins schedules with their learning objectives and
// formats the dates.
type ScheduleProjector struct {
	Formatter *util.DateFormatter
}

func NewScheduleProjector(formatter *util.DateFormatter) *ScheduleProjector {
	return &ScheduleProjector{Formatter: formatter}
}

// Project leaves Objective nil when objective is nil.
func (p *ScheduleProjector) Project(s calendar.ModuleSchedule, objective *model.LearningObjective) ProjectedModule {
	out := ProjectedModule{
		ModuleSchedule: s,
		StartFormatted: p.Formatter.Format(s.StartDate),
		EndFormatted:   p.Formatter.Format(s.EndDate),
		Eval1Formatted: p.Formatter.Format(s.Evaluation1ReleaseDate),
		Eval2Formatted: p.Formatter.Format(s.Evaluation2ReleaseDate),
	}
	if objective != nil {
		out.Objective = &ObjectiveView{
			ID:          objective.ID,
			Code:        objective.Code,
			Title:       objective.Title,
			Description: objective.Description,
		}
	}
	return out
}

// ProjectAll matches objectives to modules by WeekNumber.
func (p *ScheduleProjector) ProjectAll(schedules []calendar.ModuleSchedule, objectives []model.LearningObjective) []ProjectedModule {
	byWeek := make(map[int]*model.LearningObjective, len(objectives))
	for i := range objectives {
		byWeek[objectives[i].WeekNumber] = &objectives[i]
	}

	out := make([]ProjectedModule, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, p.Project(s, byWeek[s.ModuleNumber]))
	}
	return out
}
