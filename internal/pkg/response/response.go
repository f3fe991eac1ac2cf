package response

import (
	"Commons/internal/api/dto"
	"Commons/internal/service"
	"errors"
	log "log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	Ok                  = 200
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装，HTTP 状态始终为 200，业务码放在 code
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
	})
}

// Error 将错误映射为业务码，未登记的错误统一为系统异常
func Error(c *gin.Context, err error) {
	if isBindingError(err) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error())
		return
	}

	known, code, ok := service.Lookup(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "unhandled error", "path", c.FullPath(), "err", err)
		Fail(c, InternalServerError, service.UnExpectedError.Error())
		return
	}
	if code >= InternalServerError {
		// 存储不可用对外只给通用提示，原因留在日志
		log.WarnContext(c.Request.Context(), "request failed", "path", c.FullPath(), "err", err)
	}
	Fail(c, code, known.Error())
}

// isBindingError 查询参数解析或校验失败
func isBindingError(err error) bool {
	var ve validator.ValidationErrors
	var numErr *strconv.NumError
	return errors.As(err, &ve) || errors.As(err, &numErr)
}
