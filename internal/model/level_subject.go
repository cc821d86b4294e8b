package model

// swagger:model LevelSubject
// LevelSubject is one program: a school level paired with a subject, e.g.
// "1° Medio" / "Matemática". Every program runs on the same calendar.
type LevelSubject struct {
	BaseModel

	LevelName   string `gorm:"size:100;not null;uniqueIndex:idx_level_subject" json:"levelName"`
	SubjectName string `gorm:"size:100;not null;uniqueIndex:idx_level_subject" json:"subjectName"`
	Description string `gorm:"type:text" json:"description"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

func (LevelSubject) TableName() string {
	return "level_subjects"
}
