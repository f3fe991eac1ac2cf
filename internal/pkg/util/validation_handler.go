package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// 错误信息里使用请求参数名
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
}

// ValidateDTO 按 validate 标签校验，只返回第一个失败字段
func ValidateDTO(dto any) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	first := vErrs[0]
	if first.Param() != "" {
		return fmt.Errorf("参数 [%s] 校验失败，规则 [%s=%s]", first.Field(), first.Tag(), first.Param())
	}
	return fmt.Errorf("参数 [%s] 校验失败，规则 [%s]", first.Field(), first.Tag())
}
