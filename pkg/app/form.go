package app

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/gin-gonic/gin"
	val "github.com/go-playground/validator/v10"
)

type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

// MapsToString 返回 "字段:消息" 形式的错误映射
func (v ValidErrors) MapsToString() map[string]string {
	maps := make(map[string]string, len(v))
	for _, err := range v {
		maps[err.Key] = err.Message
	}
	return maps
}

// BindAndValid binds request params and translates validation errors
// BindAndValid 绑定请求参数并翻译校验错误
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors

	err := c.ShouldBind(v)
	if err != nil {
		transValue, _ := c.Get("trans")
		trans, ok := transValue.(ut.Translator)

		verrs, isValidErrs := err.(val.ValidationErrors)
		if !isValidErrs || !ok {
			errs = append(errs, &ValidError{
				Key:     "request",
				Message: err.Error(),
			})
			return false, errs
		}

		for key, value := range verrs.Translate(trans) {
			errs = append(errs, &ValidError{
				Key:     key,
				Message: value,
			})
		}
		return false, errs
	}

	return true, nil
}
