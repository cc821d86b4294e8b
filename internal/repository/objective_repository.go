package repository

import (
	"context"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"

	"gorm.io/gorm"
)

type ObjectiveRepository struct {
	DB *gorm.DB
}

func NewObjectiveRepository(db *gorm.DB) *ObjectiveRepository {
	return &ObjectiveRepository{DB: db}
}

func (r *ObjectiveRepository) Create(ctx context.Context, o *model.LearningObjective) error {
	return r.DB.WithContext(ctx).Create(o).Error
}

func (r *ObjectiveRepository) FindByID(ctx context.Context, id uint) (*model.LearningObjective, error) {
	var o model.LearningObjective
	err := r.DB.WithContext(ctx).First(&o, id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ObjectiveRepository) FindByModule(ctx context.Context, levelSubjectID uint, weekNumber int) (*model.LearningObjective, error) {
	var o model.LearningObjective
	err := r.DB.WithContext(ctx).
		Where("level_subject_id = ? AND week_number = ?", levelSubjectID, weekNumber).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ObjectiveRepository) ListByLevelSubject(ctx context.Context, levelSubjectID uint) ([]model.LearningObjective, error) {
	var out []model.LearningObjective
	err := r.DB.WithContext(ctx).
		Where("level_subject_id = ?", levelSubjectID).
		Order("week_number asc").
		Find(&out).Error
	return out, err
}

func (r *ObjectiveRepository) Update(ctx context.Context, o *model.LearningObjective) error {
	return r.DB.WithContext(ctx).Save(o).Error
}

func (r *ObjectiveRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.LearningObjective{}, id).Error
}
