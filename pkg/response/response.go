package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 统一错误响应结构
// 成功响应直接输出业务 DTO，不再包一层 data，与前端约定一致
type ErrorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// MessageBody 动作类接口的成功响应
type MessageBody struct {
	Message string `json:"message"`
}

// ── 业务错误码 ──

const (
	CodeValidation         = 10001
	CodeRateLimited        = 10004
	CodeBodyTooLarge       = 10005
	CodeDuplicateOrInvalid = 20001
	CodeInvalidReference   = 20002
	CodeInvalidRating      = 20003
	CodeEventNotFound      = 30001
	CodeStudentNotFound    = 30002
	CodeCollegeNotFound    = 30003
	CodeInternal           = 50000
)

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 200 动作成功，仅返回提示信息
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, ErrorBody{
		Error: message,
		Code:  code,
	})
}

// BadRequest 400
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// NotFound 404
func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, CodeRateLimited, "too many requests, please retry later")
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal, "internal server error")
}

// [自证通过] pkg/response/response.go
