package repository

import (
	"context"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"

	"gorm.io/gorm"
)

type EvaluationResultRepository struct {
	DB *gorm.DB
}

func NewEvaluationResultRepository(db *gorm.DB) *EvaluationResultRepository {
	return &EvaluationResultRepository{DB: db}
}

func (r *EvaluationResultRepository) Create(ctx context.Context, result *model.EvaluationResult) error {
	return r.DB.WithContext(ctx).Create(result).Error
}

// CompletedModules returns the modules whose second evaluation the user has
// passed at least once.
func (r *EvaluationResultRepository) CompletedModules(ctx context.Context, userID, levelSubjectID uint) ([]int, error) {
	var modules []int
	err := r.DB.WithContext(ctx).
		Model(&model.EvaluationResult{}).
		Where("user_id = ? AND level_subject_id = ? AND evaluation_number = ? AND passed = ?", userID, levelSubjectID, 2, true).
		Distinct().
		Order("module_number asc").
		Pluck("module_number", &modules).Error
	return modules, err
}

func (r *EvaluationResultRepository) ListByUser(ctx context.Context, userID, levelSubjectID uint) ([]model.EvaluationResult, error) {
	var out []model.EvaluationResult
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND level_subject_id = ?", userID, levelSubjectID).
		Order("module_number asc, evaluation_number asc, completed_at desc").
		Find(&out).Error
	return out, err
}
