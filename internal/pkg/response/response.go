package response

import (
	stdjson "encoding/json"
	"errors"
	log "log/slog"
	"net/http"

	"Inkpost/internal/api/dto"
	"Inkpost/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = http.StatusOK
	Created             = http.StatusCreated
	BadRequest          = http.StatusBadRequest
	Forbidden           = http.StatusForbidden
	NotFound            = http.StatusNotFound
	Conflict            = http.StatusConflict
	InternalServerError = http.StatusInternalServerError
)

// Success 成功返回封装
func Success(c *gin.Context, data any) {
	write(c, Ok, "success", data)
}

// SuccessMsg 成功返回并附带自定义提示
func SuccessMsg(c *gin.Context, message string, data any) {
	write(c, Ok, message, data)
}

// CreatedMsg 资源创建成功
func CreatedMsg(c *gin.Context, message string, data any) {
	write(c, Created, message, data)
}

// Fail 失败返回封装，HTTP 状态码与 status 字段一致
func Fail(c *gin.Context, status int, message string) {
	write(c, status, message, nil)
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, validationMessage(ve))
		return
	}

	if isJSONError(err) {
		Fail(c, BadRequest, "Invalid JSON body")
		return
	}

	for sentinel, code := range service.ErrorMap {
		if errors.Is(err, sentinel) {
			Fail(c, code, sentinel.Error())
			return
		}
	}

	log.ErrorContext(c.Request.Context(), "unhandled error", "path", c.FullPath(), "err", err)
	Fail(c, InternalServerError, "An error occurred: "+err.Error())
}

func write(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.Response{
		Data:    data,
		Message: message,
		Status:  status,
	})
}

func validationMessage(ve validator.ValidationErrors) string {
	first := ve[0]
	return "field [" + first.Field() + "] failed on the '" + first.Tag() + "' rule"
}

// isJSONError gin 默认用标准库解码请求体，文档解析使用 go-json，两类错误都视为 400
func isJSONError(err error) bool {
	var unmarshalTypeError *json.UnmarshalTypeError
	var syntaxError *json.SyntaxError
	var stdTypeError *stdjson.UnmarshalTypeError
	var stdSyntaxError *stdjson.SyntaxError
	return errors.As(err, &unmarshalTypeError) || errors.As(err, &syntaxError) ||
		errors.As(err, &stdTypeError) || errors.As(err, &stdSyntaxError)
}
