// Package sdktest provides an in-memory sdk.NetSDK for tests.
package sdktest

import (
	"dyzs/hkcamera/sdk"
	"sync"
)

//模拟内存，地址到字节的映射
type FakeMemory map[uint64][]byte

func (m FakeMemory) Copy(addr uint64, n uint32) ([]byte, error) {
	if addr == 0 {
		return nil, sdk.ErrNullPointer
	}
	src, ok := m[addr]
	if !ok {
		return nil, sdk.ErrNullPointer
	}
	out := make([]byte, n)
	copy(out, src)
	return out, nil
}

type Fake struct {
	mu sync.Mutex

	InitOK bool
	//登录失败的设备地址
	FailLogin map[string]bool
	//布防失败的设备地址
	FailArm map[string]bool
	//抓图失败的设备地址
	FailCapture map[string]bool
	//抓图返回内容
	CaptureData []byte
	DeviceInfo  sdk.DeviceInfo
	ErrorCode   uint32

	nextUser  int32
	nextAlarm int32
	users     map[int32]string
	callback  sdk.MessageCallback
	lastError uint32

	InitCalls      int
	CleanupCalls   int
	LoginCalls     int
	LogoutCalls    int
	ArmCalls       int
	CloseArmCalls  int
	RegisterCalls  int
	CaptureCalls   int
	ConnectTimeMs  uint32
	ReconnectMs    uint32
	ReconnectOn    bool
	LastAlarmParam sdk.SetupAlarmParam
	LastJpegPara   sdk.JpegPara
	LastChannel    int32
}

func New() *Fake {
	return &Fake{
		InitOK:      true,
		FailLogin:   make(map[string]bool),
		FailArm:     make(map[string]bool),
		FailCapture: make(map[string]bool),
		ErrorCode:   1,
		users:       make(map[int32]string),
	}
}

func (f *Fake) Init() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.InitCalls++
	return f.InitOK
}

func (f *Fake) Cleanup() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CleanupCalls++
	return true
}

func (f *Fake) SetConnectTime(waitMs, tryTimes uint32) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ConnectTimeMs = waitMs
	return true
}

func (f *Fake) SetReconnect(intervalMs uint32, enable bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ReconnectMs = intervalMs
	f.ReconnectOn = enable
	return true
}

func (f *Fake) Login(info *sdk.LoginInfo) (int32, *sdk.DeviceInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	if f.FailLogin[info.DeviceAddress] {
		f.lastError = f.ErrorCode
		return -1, nil
	}
	id := f.nextUser
	f.nextUser++
	f.users[id] = info.DeviceAddress
	dev := f.DeviceInfo
	return id, &dev
}

func (f *Fake) Logout(userID int32) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LogoutCalls++
	if _, ok := f.users[userID]; !ok {
		return false
	}
	delete(f.users, userID)
	return true
}

func (f *Fake) SetupAlarmChan(userID int32, param *sdk.SetupAlarmParam) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ArmCalls++
	f.LastAlarmParam = *param
	addr, ok := f.users[userID]
	if !ok || f.FailArm[addr] {
		f.lastError = f.ErrorCode
		return -1
	}
	h := f.nextAlarm
	f.nextAlarm++
	return h
}

func (f *Fake) CloseAlarmChan(alarmHandle int32) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CloseArmCalls++
	return true
}

func (f *Fake) SetMessageCallback(cb sdk.MessageCallback) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RegisterCalls++
	f.callback = cb
	return true
}

func (f *Fake) CaptureJPEG(userID int32, channel int32, para *sdk.JpegPara, buf []byte) (uint32, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CaptureCalls++
	f.LastJpegPara = *para
	f.LastChannel = channel
	addr, ok := f.users[userID]
	if !ok || f.FailCapture[addr] {
		f.lastError = f.ErrorCode
		return 0, false
	}
	n := copy(buf, f.CaptureData)
	return uint32(n), true
}

func (f *Fake) GetLastError() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}

//模拟设备回调，返回回调是否已注册
func (f *Fake) Deliver(msg *sdk.AlarmMessage) bool {
	f.mu.Lock()
	cb := f.callback
	f.mu.Unlock()
	if cb == nil {
		return false
	}
	cb(msg)
	return true
}

//当前登录的会话数
func (f *Fake) ActiveUsers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

func (f *Fake) Registrations() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.RegisterCalls
}

//并发读取计数
func (f *Fake) Counts() (inits, cleanups, logins, logouts int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.InitCalls, f.CleanupCalls, f.LoginCalls, f.LogoutCalls
}
