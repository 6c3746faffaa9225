package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/moviecatalog/internal/config"
	"github.com/user/moviecatalog/internal/model"
	"github.com/user/moviecatalog/internal/repository"
	"github.com/user/moviecatalog/internal/utils"
)

// MovieStore 电影查询
type MovieStore interface {
	List(ctx context.Context, f repository.MovieFilter) ([]model.Movie, error)
	FindByID(ctx context.Context, id int) (*model.Movie, error)
}

// DirectorStore 导演读写
type DirectorStore interface {
	Create(ctx context.Context, d *model.Director) error
	UpdateName(ctx context.Context, id int, name string) error
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*model.Director, error)
	ListAll(ctx context.Context) ([]model.Director, error)
}

// GenreStore 类型读写
type GenreStore interface {
	Create(ctx context.Context, g *model.Genre) error
	UpdateName(ctx context.Context, id int, name string) error
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*model.Genre, error)
	ListAll(ctx context.Context) ([]model.Genre, error)
}

// Handler HTTP 处理器
type Handler struct {
	Movies    MovieStore
	Directors DirectorStore
	Genres    GenreStore
	Config    *config.Config
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Movies:    repos.Movie,
		Directors: repos.Director,
		Genres:    repos.Genre,
		Config:    cfg,
	}
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

// location 新资源的地址，带上 API 前缀
func (h *Handler) location(resource string, id int) string {
	prefix := ""
	if h.Config != nil {
		prefix = h.Config.APIPrefix
	}
	return fmt.Sprintf("%s/%s/%d", prefix, resource, id)
}

// parseID 解析路径中的 ID（主键为 int4）。
// 非整数时写入 400；超出 int4 范围的 ID 不可能存在，写入 404 notFound
func parseID(c *gin.Context, notFound string) (int, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		utils.NotFound(c, notFound)
		return 0, false
	}
	if err != nil {
		utils.BadRequest(c, "Некорректный идентификатор", map[string]string{"id": "int"})
		return 0, false
	}
	return int(id), true
}

// serverError 记录存储层错误并返回 500
func serverError(c *gin.Context, op string, err error) {
	log.Printf("[%s] %s 失败: %v", c.Request.Method, op, err)
	utils.InternalServerError(c, "")
}
