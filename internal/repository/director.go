package repository

import (
	"context"
	"errors"

	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
)

// DirectorRepository 导演仓库
type DirectorRepository struct {
	db *gorm.DB
}

// NewDirectorRepository 创建导演仓库
func NewDirectorRepository(db *gorm.DB) *DirectorRepository {
	return &DirectorRepository{db: db}
}

// Create 创建导演，成功后 d.ID 为新分配的 ID
func (r *DirectorRepository) Create(ctx context.Context, d *model.Director) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(d).Error
	})
}

// UpdateName 覆盖导演名称，查找与写入在同一事务内
func (r *DirectorRepository) UpdateName(ctx context.Context, id int, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d model.Director
		if err := tx.First(&d, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		d.Name = name
		return tx.Save(&d).Error
	})
}

// Delete 删除导演。仍被电影引用时返回 ErrReferenced
func (r *DirectorRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d model.Director
		if err := tx.First(&d, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return translateError(tx.Delete(&d).Error)
	})
}

// FindByID 根据 ID 查找导演，不存在时返回 nil
func (r *DirectorRepository) FindByID(ctx context.Context, id int) (*model.Director, error) {
	var d model.Director
	err := r.db.WithContext(ctx).First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListAll 获取所有导演
func (r *DirectorRepository) ListAll(ctx context.Context) ([]model.Director, error) {
	var directors []model.Director
	err := r.db.WithContext(ctx).Order("id").Find(&directors).Error
	return directors, err
}
