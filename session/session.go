package session

import (
	"dyzs/hkcamera/model"
	"dyzs/hkcamera/sdk"
	"sync"
	"sync/atomic"
)

type State int32

const (
	StateUninitialized State = iota
	StateConnected
	StateArmed
	StateFailed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateArmed:
		return "armed"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	}
	return "uninitialized"
}

//设备会话，由 Manager.Login 创建
type Session struct {
	m           *Manager
	cred        model.DeviceCredentials
	userID      int32
	alarmHandle int32
	device      *sdk.DeviceInfo
	state       atomic.Int32
	closeOnce   sync.Once
}

func (s *Session) Handle() int32 {
	return s.userID
}

func (s *Session) AlarmHandle() int32 {
	return s.alarmHandle
}

func (s *Session) State() State {
	return State(s.state.Load())
}

func (s *Session) Credentials() model.DeviceCredentials {
	return s.cred
}

//登录返回的设备信息，可能为空
func (s *Session) Device() *sdk.DeviceInfo {
	return s.device
}

func (s *Session) setState(st State) {
	s.state.Store(int32(st))
}
