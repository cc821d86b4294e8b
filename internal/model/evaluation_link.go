package model

// swagger:model EvaluationLink
// EvaluationLink points at an externally authored evaluation. Its release
// date is computed from the evaluation-link calendar, not stored.
type EvaluationLink struct {
	UUIDModel

	LevelSubjectID   uint   `gorm:"not null;index:idx_link_module" json:"levelSubjectId"`
	ModuleNumber     int    `gorm:"not null;index:idx_link_module" json:"moduleNumber"`
	EvaluationNumber int    `gorm:"not null" json:"evaluationNumber"`
	Title            string `gorm:"size:255" json:"title"`
	URL              string `gorm:"size:1024;not null" json:"url"`
}

func (EvaluationLink) TableName() string {
	return "evaluation_links"
}
