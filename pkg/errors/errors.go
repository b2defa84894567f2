package errors

import (
	"deltadesk/pkg/errors/ecode"
	"errors"
	"fmt"
)

// 带业务错误码的error，handler层统一通过response.JSON解码返回

type withCode struct {
	code    int
	message string
	cause   error
}

func (e *withCode) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *withCode) Unwrap() error {
	return e.cause
}

// WithCode 创建一个带错误码的error
func WithCode(code int, message string) error {
	if message == "" {
		message = ecode.Message(code)
	}
	return &withCode{code: code, message: message}
}

// Wrap 包装已有error并附加错误码
func Wrap(err error, code int, message string) error {
	if err == nil {
		return nil
	}
	return &withCode{code: code, message: message, cause: err}
}

func Wrapf(err error, code int, format string, args ...interface{}) error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// DecodeErr 解码error，返回错误码和提示信息；nil表示成功
func DecodeErr(err error) (int, string) {
	if err == nil {
		return ecode.Success, "OK"
	}

	var coded *withCode
	if errors.As(err, &coded) {
		return coded.code, coded.message
	}
	return ecode.Unknown, err.Error()
}

// Code 提取错误码，未携带错误码的error归为Unknown
func Code(err error) int {
	code, _ := DecodeErr(err)
	return code
}

// Is 透传标准库errors.Is
func Is(err, target error) bool {
	return errors.Is(err, target)
}
