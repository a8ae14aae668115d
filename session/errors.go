package session

import (
	"errors"
	"fmt"
)

var ErrNotArmed = errors.New("会话未布防")
var ErrSessionClosed = errors.New("会话已关闭")

//SDK 初始化失败
type InitError struct {
	Code uint32
	Err  error
}

func (e *InitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("海康SDK初始化失败: %v", e.Err)
	}
	return fmt.Sprintf("海康SDK初始化失败, 错误码: %d", e.Code)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

type LoginError struct {
	Address string
	Code    uint32
	Err     error
}

func (e *LoginError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("海康设备登录失败 %s: %v", e.Address, e.Err)
	}
	return fmt.Sprintf("海康设备登录失败 %s, 错误码: %d", e.Address, e.Code)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

type ArmError struct {
	Address string
	Code    uint32
}

func (e *ArmError) Error() string {
	return fmt.Sprintf("海康设备布防失败 %s, 错误码: %d", e.Address, e.Code)
}

//会话上的其他SDK调用失败
type CallError struct {
	Op   string
	Code uint32
}

func (e *CallError) Error() string {
	return fmt.Sprintf("海康%s失败, 错误码: %d", e.Op, e.Code)
}
