package repository

import (
	"context"
	"errors"

	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
)

// GenreRepository 类型仓库
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository 创建类型仓库
func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

// Create 创建类型
func (r *GenreRepository) Create(ctx context.Context, g *model.Genre) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(g).Error
	})
}

// UpdateName 覆盖类型名称
func (r *GenreRepository) UpdateName(ctx context.Context, id int, name string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var g model.Genre
		if err := tx.First(&g, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		g.Name = name
		return tx.Save(&g).Error
	})
}

// Delete 删除类型
func (r *GenreRepository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var g model.Genre
		if err := tx.First(&g, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return translateError(tx.Delete(&g).Error)
	})
}

// FindByID 根据 ID 查找类型，不存在时返回 nil
func (r *GenreRepository) FindByID(ctx context.Context, id int) (*model.Genre, error) {
	var g model.Genre
	err := r.db.WithContext(ctx).First(&g, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ListAll 获取所有类型
func (r *GenreRepository) ListAll(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	err := r.db.WithContext(ctx).Order("id").Find(&genres).Error
	return genres, err
}
