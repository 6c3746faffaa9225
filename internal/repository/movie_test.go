package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/moviecatalog/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB 只生成 SQL，不连接数据库
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test password=test dbname=test sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func intPtr(v int) *int { return &v }

func TestFilterMovies(t *testing.T) {
	db := dryRunDB(t)

	tests := []struct {
		name     string
		filter   MovieFilter
		contains []string
		absent   []string
		vars     []any
	}{
		{
			name:   "no filters",
			filter: MovieFilter{},
			absent: []string{"WHERE"},
		},
		{
			name:     "director only",
			filter:   MovieFilter{DirectorID: intPtr(3)},
			contains: []string{"WHERE director_id = $1"},
			absent:   []string{"genre_id"},
			vars:     []any{3},
		},
		{
			name:     "genre only",
			filter:   MovieFilter{GenreID: intPtr(1)},
			contains: []string{"WHERE genre_id = $1"},
			absent:   []string{"director_id"},
			vars:     []any{1},
		},
		{
			name:     "both filters are ANDed",
			filter:   MovieFilter{DirectorID: intPtr(3), GenreID: intPtr(1)},
			contains: []string{"director_id = $1 AND genre_id = $2"},
			vars:     []any{3, 1},
		},
		{
			name:     "zero is a real value",
			filter:   MovieFilter{GenreID: intPtr(0)},
			contains: []string{"genre_id = $1"},
			vars:     []any{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var movies []model.Movie
			stmt := db.Scopes(FilterMovies(tt.filter)).Order("id").Find(&movies).Statement
			sql := stmt.SQL.String()

			assert.Contains(t, sql, `FROM "movie"`)
			for _, s := range tt.contains {
				assert.Contains(t, sql, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, sql, s)
			}
			if tt.vars == nil {
				assert.Empty(t, stmt.Vars)
			} else {
				assert.Equal(t, tt.vars, stmt.Vars)
			}
		})
	}
}
