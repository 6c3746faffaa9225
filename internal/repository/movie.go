package repository

import (
	"context"
	"errors"

	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
)

// MovieFilter 电影列表的可选等值过滤条件，nil 表示不过滤
type MovieFilter struct {
	DirectorID *int
	GenreID    *int
}

// FilterMovies 按过滤条件构造查询，多个条件之间为 AND
func FilterMovies(f MovieFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.DirectorID != nil {
			db = db.Where("director_id = ?", *f.DirectorID)
		}
		if f.GenreID != nil {
			db = db.Where("genre_id = ?", *f.GenreID)
		}
		return db
	}
}

// MovieRepository 电影仓库，只读
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository 创建电影仓库
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// List 获取符合条件的电影，按 ID 排序
func (r *MovieRepository) List(ctx context.Context, f MovieFilter) ([]model.Movie, error) {
	var movies []model.Movie
	err := r.db.WithContext(ctx).
		Scopes(FilterMovies(f)).
		Order("id").
		Find(&movies).Error
	return movies, err
}

// FindByID 根据 ID 查找电影，不存在时返回 nil
func (r *MovieRepository) FindByID(ctx context.Context, id int) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.WithContext(ctx).First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}
