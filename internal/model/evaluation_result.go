package model

import "time"

// swagger:model EvaluationResult
// EvaluationResult is one attempt at a module evaluation. A module counts as
// completed once its second evaluation has a passed attempt.
type EvaluationResult struct {
	BaseModel

	UserID           uint      `gorm:"not null;index:idx_result_user_program" json:"userId"`
	LevelSubjectID   uint      `gorm:"not null;index:idx_result_user_program" json:"levelSubjectId"`
	ModuleNumber     int       `gorm:"not null" json:"moduleNumber"`
	EvaluationNumber int       `gorm:"not null" json:"evaluationNumber"`
	Score            int       `gorm:"default:0" json:"score"`
	MaxScore         int       `gorm:"default:0" json:"maxScore"`
	Passed           bool      `gorm:"default:false;index" json:"passed"`
	CompletedAt      time.Time `json:"completedAt"`
}

func (EvaluationResult) TableName() string {
	return "evaluation_results"
}

const PassingPercentage = 60

// Passes applies the passing threshold to a score.
func Passes(score, maxScore int) bool {
	if maxScore <= 0 {
		return false
	}
	return score*100 >= maxScore*PassingPercentage
}
