package capture

import (
	"dyzs/hkcamera/session"
	"errors"
	"fmt"
)

var ErrEmptyPicture = errors.New("抓图数据为空")

//登录或抓图失败
type CaptureError struct {
	Address string
	Code    uint32
	Err     error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("海康摄像头抓图失败 %s, 错误码: %d: %v", e.Address, e.Code, e.Err)
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}

func captureError(addr string, err error) *CaptureError {
	ce := &CaptureError{Address: addr, Err: err}
	var lerr *session.LoginError
	var cerr *session.CallError
	switch {
	case errors.As(err, &lerr):
		ce.Code = lerr.Code
	case errors.As(err, &cerr):
		ce.Code = cerr.Code
	}
	return ce
}
