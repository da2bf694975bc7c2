package response

import (
	"Blogicum/internal/api/dto"
	"Blogicum/internal/pkg/util"
	"Blogicum/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// FailFields 字段级校验失败，data 为 字段 -> 提示
func FailFields(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    BadRequest,
		Message: service.ErrParamInvalid.Error(),
		Data:    fields,
	})
}

// SeeOther 无权修改他人资源时重定向到详情
func SeeOther(c *gin.Context, location string, err error) {
	c.Header("Location", location)
	c.JSON(http.StatusSeeOther, dto.Response{
		Code:    Forbidden,
		Message: err.Error(),
		Data:    gin.H{"redirect": location},
	})
}

// BindError 请求体无法解析或缺少必填字段
func BindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		FailFields(c, util.FieldMessages(ve))
		return
	}
	log.WarnContext(c.Request.Context(), "bind request failed", "err", err)
	Fail(c, BadRequest, "Json错误")
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		FailFields(c, util.FieldMessages(ve))
		return
	}

	var fe *service.FieldError
	if errors.As(err, &fe) {
		FailFields(c, fe.Fields)
		return
	}

	code, ok := lookupCode(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		Fail(c, InternalServerError, service.UnExpectedError.Error())
		return
	}
	Fail(c, code, err.Error())
}

func lookupCode(err error) (int, bool) {
	if code, ok := service.ErrorMap[err]; ok {
		return code, true
	}
	for target, code := range service.ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return 0, false
}
