package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserUsernameExist = errors.New("用户名已存在")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrCategoryNotFound  = errors.New("分类不存在")
	ErrCategorySlugExist = errors.New("分类标识已存在")
	ErrLocationNotFound  = errors.New("地点不存在")
	ErrPageNotFound      = errors.New("页码超出范围")
	ErrFileNotSupported  = errors.New("不支持的文件类型")
	ErrFileTooLarge      = errors.New("文件过大")
	ErrFileNotExist      = errors.New("文件不存在")
	ErrForbidden         = errors.New("无权操作该资源")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserUsernameExist: BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrCategoryNotFound:  NotFound,
	ErrCategorySlugExist: BadRequest,
	ErrLocationNotFound:  NotFound,
	ErrPageNotFound:      NotFound,
	ErrFileNotSupported:  BadRequest,
	ErrFileTooLarge:      BadRequest,
	ErrFileNotExist:      BadRequest,
	ErrForbidden:         Forbidden,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}

// FieldError 表单字段级校验错误
type FieldError struct {
	Fields map[string]string
}

func (e *FieldError) Error() string {
	return ErrParamInvalid.Error()
}

func newFieldError(field, msg string) *FieldError {
	return &FieldError{Fields: map[string]string{field: msg}}
}
