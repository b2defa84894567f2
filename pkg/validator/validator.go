package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
)

// gin默认validator替换，挂上翻译器让参数错误信息可读

var (
	once  sync.Once
	trans ut.Translator
)

// LazyInitGinValidator 初始化gin的验证引擎，language支持zh/en
func LazyInitGinValidator(language string) {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// 错误信息里用json标签名，而不是结构体字段名
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		zhT := zh.New()
		enT := en.New()
		uni := ut.New(enT, zhT, enT)

		var found bool
		trans, found = uni.GetTranslator(language)
		if !found {
			trans, _ = uni.GetTranslator("en")
		}

		switch language {
		case "zh":
			_ = zhTranslations.RegisterDefaultTranslations(v, trans)
		default:
			_ = enTranslations.RegisterDefaultTranslations(v, trans)
		}
	})
}

// Translate 将validator错误翻译为已配置语言的提示
func Translate(err error) string {
	if err == nil {
		return ""
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || trans == nil {
		return err.Error()
	}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Translate(trans))
	}
	return strings.Join(msgs, "; ")
}
