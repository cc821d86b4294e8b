package model

// swagger:model LearningObjective
// LearningObjective holds the content of one module. WeekNumber is the
// module number.
type LearningObjective struct {
	BaseModel

	LevelSubjectID uint   `gorm:"not null;uniqueIndex:idx_objective_module" json:"levelSubjectId"`
	WeekNumber     int    `gorm:"not null;uniqueIndex:idx_objective_module" json:"weekNumber"`
	Code           string `gorm:"size:50" json:"code"`
	Title          string `gorm:"size:255;not null" json:"title"`
	Description    string `gorm:"type:text" json:"description"`
}

func (LearningObjective) TableName() string {
	return "learning_objectives"
}
