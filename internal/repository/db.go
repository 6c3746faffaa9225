package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrNotFound 按 ID 查找的记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrReferenced 删除的记录仍被电影引用
	ErrReferenced = errors.New("记录仍被电影引用")
)

//go:embed schema.sql
var schemaSQL string

// InitDB 初始化数据库连接。连接池由 lib/pq 驱动，gorm 复用同一个池
func InitDB(databaseURL string, maxOpen, maxIdle int) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               newGormLogger(log.Default()),
		DisableAutomaticPing: true,
	})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("初始化 gorm 失败: %w", err)
	}

	return db, nil
}

// newGormLogger 只输出错误和慢查询，按 ID 查不到记录属于正常分支，不记录
func newGormLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}

// CreateSchema 建表（已存在则跳过），供 cmd/seed 和集成测试使用
func CreateSchema(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec(schemaSQL).Error
}

// Repositories 仓库集合
type Repositories struct {
	DB       *gorm.DB
	Movie    *MovieRepository
	Director *DirectorRepository
	Genre    *GenreRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:       db,
		Movie:    NewMovieRepository(db),
		Director: NewDirectorRepository(db),
		Genre:    NewGenreRepository(db),
	}
}

// translateError 把驱动层错误转换为仓库层错误
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
		return fmt.Errorf("%w: %s", ErrReferenced, pqErr.Constraint)
	}
	return err
}
