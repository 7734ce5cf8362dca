package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"campus-events/backend/pkg/response"
)

func init() {
	// 校验错误使用 json 字段名，而不是 Go 结构体字段名
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// BindJSON 解析并校验请求体。
// 失败时写入 400（或 413）响应并返回 false，调用方应直接 return。
func BindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "request body too large")
		return false
	}

	response.BadRequest(c, response.CodeValidation, bindErrorMessage(err))
	return false
}

// bindErrorMessage 将绑定错误转换为面向调用方的提示
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return "missing required field: " + fe.Field()
		case "oneof":
			return "invalid value for field " + fe.Field() + ": must be one of " + fe.Param()
		default:
			return "invalid field: " + fe.Field()
		}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return "invalid field: " + typeErr.Field
	}
	if errors.Is(err, io.EOF) {
		return "request body is empty"
	}
	return "invalid JSON body"
}

// ParseIDParam 解析路径中的整数 ID。
// 非整数时返回 false，由调用方按"资源不存在"处理。
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
