package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/user/moviecatalog/internal/model"
	"github.com/user/moviecatalog/internal/repository"
	"github.com/user/moviecatalog/internal/utils"
)

const (
	msgGenreNotFound   = "Жанр не найден"
	msgGenreReferenced = "Жанр используется в фильмах"
)

// ListGenres 类型列表
func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.Genres.ListAll(c.Request.Context())
	if err != nil {
		serverError(c, "查询类型列表", err)
		return
	}
	c.JSON(http.StatusOK, model.DumpGenres(genres))
}

// GetGenre 类型详情
func (h *Handler) GetGenre(c *gin.Context) {
	id, ok := parseID(c, msgGenreNotFound)
	if !ok {
		return
	}

	genre, err := h.Genres.FindByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, "查询类型", err)
		return
	}
	if genre == nil {
		utils.NotFound(c, msgGenreNotFound)
		return
	}

	c.JSON(http.StatusOK, model.DumpGenre(genre))
}

// CreateGenre 创建类型
func (h *Handler) CreateGenre(c *gin.Context) {
	var req model.NamePayload
	if !bindJSON(c, &req) {
		return
	}

	genre := req.NewGenre()
	if err := h.Genres.Create(c.Request.Context(), genre); err != nil {
		serverError(c, "创建类型", err)
		return
	}

	utils.Created(c, h.location("genres", genre.ID))
}

// UpdateGenre 覆盖类型名称
func (h *Handler) UpdateGenre(c *gin.Context) {
	id, ok := parseID(c, msgGenreNotFound)
	if !ok {
		return
	}

	var req model.NamePayload
	if !bindJSON(c, &req) {
		return
	}

	err := h.Genres.UpdateName(c.Request.Context(), id, *req.Name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, msgGenreNotFound)
	case err != nil:
		serverError(c, "更新类型", err)
	default:
		utils.NoContent(c)
	}
}

// DeleteGenre 删除类型
func (h *Handler) DeleteGenre(c *gin.Context) {
	id, ok := parseID(c, msgGenreNotFound)
	if !ok {
		return
	}

	err := h.Genres.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, msgGenreNotFound)
	case errors.Is(err, repository.ErrReferenced):
		utils.Conflict(c, msgGenreReferenced)
	case err != nil:
		serverError(c, "删除类型", err)
	default:
		utils.NoContent(c)
	}
}
