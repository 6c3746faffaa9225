package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/moviecatalog/internal/model"
	"github.com/user/moviecatalog/internal/repository"
	"github.com/user/moviecatalog/internal/utils"
)

const msgMovieNotFound = "Такой фильм не найден"

// ListMovies 电影列表，支持 director_id、genre_id 过滤
func (h *Handler) ListMovies(c *gin.Context) {
	var f repository.MovieFilter
	var ok bool
	if f.DirectorID, ok = queryInt(c, "director_id"); !ok {
		return
	}
	if f.GenreID, ok = queryInt(c, "genre_id"); !ok {
		return
	}

	movies, err := h.Movies.List(c.Request.Context(), f)
	if err != nil {
		serverError(c, "查询电影列表", err)
		return
	}

	if len(movies) == 0 {
		utils.NotFound(c, msgMovieNotFound)
		return
	}

	c.JSON(http.StatusOK, model.DumpMovies(movies))
}

// GetMovie 电影详情
func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := parseID(c, msgMovieNotFound)
	if !ok {
		return
	}

	movie, err := h.Movies.FindByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, "查询电影", err)
		return
	}
	if movie == nil {
		utils.NotFound(c, msgMovieNotFound)
		return
	}

	c.JSON(http.StatusOK, model.DumpMovie(movie))
}

// queryInt 读取可选的整数查询参数。空值视为未提供，非整数时已写入 400 响应。
// 超出 int4 范围的值匹配不到任何电影，直接写入 404
func queryInt(c *gin.Context, key string) (*int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		utils.NotFound(c, msgMovieNotFound)
		return nil, false
	}
	if err != nil {
		utils.BadRequest(c, "Некорректный параметр фильтра", map[string]string{key: "int"})
		return nil, false
	}
	id := int(v)
	return &id, true
}
