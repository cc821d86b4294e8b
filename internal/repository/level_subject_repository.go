package repository

import (
	"context"

	"github.com/juanpablomonsalvezb-alt/barkley-instituto-sub000/internal/model"

	"gorm.io/gorm"
)

type LevelSubjectRepository struct {
	DB *gorm.DB
}

func NewLevelSubjectRepository(db *gorm.DB) *LevelSubjectRepository {
	return &LevelSubjectRepository{DB: db}
}

func (r *LevelSubjectRepository) Create(ctx context.Context, ls *model.LevelSubject) error {
	return r.DB.WithContext(ctx).Create(ls).Error
}

func (r *LevelSubjectRepository) FindByID(ctx context.Context, id uint) (*model.LevelSubject, error) {
	var ls model.LevelSubject
	err := r.DB.WithContext(ctx).First(&ls, id).Error
	if err != nil {
		return nil, err
	}
	return &ls, nil
}

func (r *LevelSubjectRepository) List(ctx context.Context, activeOnly bool) ([]model.LevelSubject, error) {
	var out []model.LevelSubject
	query := r.DB.WithContext(ctx).Model(&model.LevelSubject{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("level_name asc, subject_name asc").Find(&out).Error
	return out, err
}

func (r *LevelSubjectRepository) Update(ctx context.Context, ls *model.LevelSubject) error {
	return r.DB.WithContext(ctx).Save(ls).Error
}

func (r *LevelSubjectRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.LevelSubject{}, id).Error
}
