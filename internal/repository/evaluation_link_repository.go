package repository

import (
	"context"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"

	"gorm.io/gorm"
)

type EvaluationLinkRepository struct {
	DB *gorm.DB
}

func NewEvaluationLinkRepository(db *gorm.DB) *EvaluationLinkRepository {
	return &EvaluationLinkRepository{DB: db}
}

func (r *EvaluationLinkRepository) Create(ctx context.Context, link *model.EvaluationLink) error {
	return r.DB.WithContext(ctx).Create(link).Error
}

func (r *EvaluationLinkRepository) FindByID(ctx context.Context, id string) (*model.EvaluationLink, error) {
	var link model.EvaluationLink
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// List filters by module when moduleNumber > 0.
func (r *EvaluationLinkRepository) List(ctx context.Context, levelSubjectID uint, moduleNumber int) ([]model.EvaluationLink, error) {
	var out []model.EvaluationLink
	query := r.DB.WithContext(ctx).Where("level_subject_id = ?", levelSubjectID)
	if moduleNumber > 0 {
		query = query.Where("module_number = ?", moduleNumber)
	}
	err := query.Order("module_number asc, evaluation_number asc").Find(&out).Error
	return out, err
}

func (r *EvaluationLinkRepository) Update(ctx context.Context, link *model.EvaluationLink) error {
	return r.DB.WithContext(ctx).Save(link).Error
}

func (r *EvaluationLinkRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.EvaluationLink{}).Error
}
