package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/user/moviecatalog/internal/config"
	"github.com/user/moviecatalog/internal/handler"
	"github.com/user/moviecatalog/internal/middleware"
)

// New 创建 Gin 引擎：中间件 + 路由
func New(cfg *config.Config, h *handler.Handler) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 请求体解析规则
	binding.EnableDecoderDisallowUnknownFields = cfg.StrictPayloads
	handler.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.Logger())
	r.Use(middleware.Security())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	RegisterRoutes(r.Group(cfg.APIPrefix), h)
	return r
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.RouterGroup, h *handler.Handler) {
	// 健康检查
	r.GET("/health", h.Health)

	// ==================== 电影（只读）====================
	movies := r.Group("/movies")
	{
		movies.GET("/", h.ListMovies)
		movies.GET("/:id", h.GetMovie)
	}

	// ==================== 导演 ====================
	directors := r.Group("/directors")
	{
		directors.GET("/", h.ListDirectors)
		directors.POST("/", h.CreateDirector)
		directors.GET("/:id", h.GetDirector)
		directors.PUT("/:id", h.UpdateDirector)
		directors.DELETE("/:id", h.DeleteDirector)
	}

	// ==================== 类型 ====================
	genres := r.Group("/genres")
	{
		genres.GET("/", h.ListGenres)
		genres.POST("/", h.CreateGenre)
		genres.GET("/:id", h.GetGenre)
		genres.PUT("/:id", h.UpdateGenre)
		genres.DELETE("/:id", h.DeleteGenre)
	}
}
