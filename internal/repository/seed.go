package repository

import (
	"context"
	"fmt"

	"github.com/user/moviecatalog/internal/model"
	"gorm.io/gorm"
)

// Fixture 初始数据，字段与接口输出格式一致
type Fixture struct {
	Genres    []model.NamedView `json:"genres"`
	Directors []model.NamedView `json:"directors"`
	Movies    []model.MovieView `json:"movies"`
}

// SeedResult 导入统计
type SeedResult struct {
	Genres    int
	Directors int
	Movies    int
}

// Seed 在一个事务内导入初始数据。
// 显式指定 ID 的记录导入后会重置自增序列，避免后续创建时主键冲突
func Seed(ctx context.Context, db *gorm.DB, f Fixture) (SeedResult, error) {
	genres := make([]model.Genre, 0, len(f.Genres))
	for _, g := range f.Genres {
		genres = append(genres, model.Genre{ID: g.ID, Name: g.Name})
	}
	directors := make([]model.Director, 0, len(f.Directors))
	for _, d := range f.Directors {
		directors = append(directors, model.Director{ID: d.ID, Name: d.Name})
	}
	movies := make([]model.Movie, 0, len(f.Movies))
	for _, m := range f.Movies {
		movies = append(movies, model.Movie{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Trailer:     m.Trailer,
			Year:        m.Year,
			Rating:      m.Rating,
			GenreID:     m.GenreID,
			DirectorID:  m.DirectorID,
		})
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先导入被引用的表
		if len(genres) > 0 {
			if err := tx.Create(&genres).Error; err != nil {
				return fmt.Errorf("导入类型失败: %w", err)
			}
		}
		if len(directors) > 0 {
			if err := tx.Create(&directors).Error; err != nil {
				return fmt.Errorf("导入导演失败: %w", err)
			}
		}
		if len(movies) > 0 {
			if err := tx.Omit("Genre", "Director").Create(&movies).Error; err != nil {
				return fmt.Errorf("导入电影失败: %w", translateError(err))
			}
		}

		for _, table := range []string{"genre", "director", "movie"} {
			if err := tx.Exec(fmt.Sprintf(
				"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
				table)).Error; err != nil {
				return fmt.Errorf("重置 %s 序列失败: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}

	return SeedResult{Genres: len(genres), Directors: len(directors), Movies: len(movies)}, nil
}
