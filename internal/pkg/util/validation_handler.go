package util

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	slugRegex     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})
	// 字段名使用 json tag，便于前端定位
	validate.RegisterTagNameFunc(jsonTagName)
}

// RegisterGinValidation gin 的 binding 校验同样返回 json 字段名
func RegisterGinValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// ValidateDTO 校验 validate tag，失败返回 validator.ValidationErrors
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return vErrs
		}
		return err
	}
	return nil
}

// FieldMessages 将校验错误展开为 字段 -> 提示
func FieldMessages(vErrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		name := fe.Field()
		if name == "" {
			name = strings.ToLower(fe.StructField())
		}
		if _, ok := out[name]; ok {
			continue
		}
		out[name] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "该字段为必填项"
	case "min":
		return "长度不能小于 " + fe.Param()
	case "max":
		return "长度不能超过 " + fe.Param()
	case "email":
		return "邮箱格式不正确"
	case "slug":
		return "只允许字母、数字、连字符和下划线"
	case "username":
		return "只允许字母、数字以及 @/./+/-/_"
	default:
		return "校验失败，规则 [" + fe.Tag() + "]"
	}
}
