package errors

import (
	stderrors "errors"
	"testing"

	"deltadesk/pkg/errors/ecode"
)

func TestDecodeErr(t *testing.T) {
	if code, msg := DecodeErr(nil); code != ecode.Success || msg != "OK" {
		t.Errorf("nil -> %d %q", code, msg)
	}

	err := WithCode(ecode.ValidateErr, "delta must be numeric")
	if code, msg := DecodeErr(err); code != ecode.ValidateErr || msg != "delta must be numeric" {
		t.Errorf("WithCode -> %d %q", code, msg)
	}

	// 空message时回落到错误码默认描述
	if _, msg := DecodeErr(WithCode(ecode.NotFoundErr, "")); msg != ecode.Message(ecode.NotFoundErr) {
		t.Errorf("default message = %q", msg)
	}

	// 不带错误码的error归为Unknown
	if code, _ := DecodeErr(stderrors.New("boom")); code != ecode.Unknown {
		t.Errorf("plain error code = %d", code)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("io failure")
	err := Wrap(cause, ecode.StoreErr, "save snapshot")
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause lost")
	}
	if code, msg := DecodeErr(err); code != ecode.StoreErr || msg != "save snapshot" {
		t.Errorf("wrap -> %d %q", code, msg)
	}
	if Wrap(nil, ecode.StoreErr, "x") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}
