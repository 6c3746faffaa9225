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
	msgDirectorNotFound   = "Режиссёр не найден"
	msgDirectorReferenced = "Режиссёр используется в фильмах"
)

// ListDirectors 导演列表
func (h *Handler) ListDirectors(c *gin.Context) {
	directors, err := h.Directors.ListAll(c.Request.Context())
	if err != nil {
		serverError(c, "查询导演列表", err)
		return
	}
	c.JSON(http.StatusOK, model.DumpDirectors(directors))
}

// GetDirector 导演详情
func (h *Handler) GetDirector(c *gin.Context) {
	id, ok := parseID(c, msgDirectorNotFound)
	if !ok {
		return
	}

	director, err := h.Directors.FindByID(c.Request.Context(), id)
	if err != nil {
		serverError(c, "查询导演", err)
		return
	}
	if director == nil {
		utils.NotFound(c, msgDirectorNotFound)
		return
	}

	c.JSON(http.StatusOK, model.DumpDirector(director))
}

// CreateDirector 创建导演
func (h *Handler) CreateDirector(c *gin.Context) {
	var req model.NamePayload
	if !bindJSON(c, &req) {
		return
	}

	director := req.NewDirector()
	if err := h.Directors.Create(c.Request.Context(), director); err != nil {
		serverError(c, "创建导演", err)
		return
	}

	utils.Created(c, h.location("directors", director.ID))
}

// UpdateDirector 覆盖导演名称
func (h *Handler) UpdateDirector(c *gin.Context) {
	id, ok := parseID(c, msgDirectorNotFound)
	if !ok {
		return
	}

	var req model.NamePayload
	if !bindJSON(c, &req) {
		return
	}

	err := h.Directors.UpdateName(c.Request.Context(), id, *req.Name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, msgDirectorNotFound)
	case err != nil:
		serverError(c, "更新导演", err)
	default:
		utils.NoContent(c)
	}
}

// DeleteDirector 删除导演
func (h *Handler) DeleteDirector(c *gin.Context) {
	id, ok := parseID(c, msgDirectorNotFound)
	if !ok {
		return
	}

	err := h.Directors.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, msgDirectorNotFound)
	case errors.Is(err, repository.ErrReferenced):
		utils.Conflict(c, msgDirectorReferenced)
	case err != nil:
		serverError(c, "删除导演", err)
	default:
		utils.NoContent(c)
	}
}
