package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一错误响应结构
type Response struct {
	Code    int               `json:"code"`             // 状态码
	Message string            `json:"message"`          // 消息
	Errors  map[string]string `json:"errors,omitempty"` // 字段 -> 未通过的校验规则
	Success bool              `json:"success"`          // 是否成功
}

// Error 返回 JSON 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
		Success: false,
	})
}

// BadRequest 返回400错误，fields 可为 nil
func BadRequest(c *gin.Context, message string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: message,
		Errors:  fields,
		Success: false,
	})
}

// InternalServerError 返回500错误
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "Внутренняя ошибка сервера"
	}
	Error(c, http.StatusInternalServerError, message)
}

// NotFound 返回404纯文本
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Ресурс не найден"
	}
	c.String(http.StatusNotFound, message)
}

// Conflict 返回409纯文本
func Conflict(c *gin.Context, message string) {
	c.String(http.StatusConflict, message)
}

// Created 返回201空响应体，location 为新资源地址
func Created(c *gin.Context, location string) {
	if location != "" {
		c.Header("Location", location)
	}
	c.Status(http.StatusCreated)
}

// NoContent 返回204
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
