// Package session owns the SDK lifecycle: one-time init, login, arming and
// teardown. The SDK is process global, so Cleanup only runs once the last
// session (or in-flight login) has released it.
package session

import (
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/model"
	"dyzs/hkcamera/sdk"
	"sync"
	"sync/atomic"
	"time"
)

const (
	_DEFAULT_CONNECT_TIMEOUT    = 2000 * time.Millisecond
	_DEFAULT_RECONNECT_INTERVAL = 10000 * time.Millisecond
	_CONNECT_TRY_TIMES          = 1
)

type Options struct {
	ConnectTimeout    time.Duration
	ReconnectInterval time.Duration
}

type Manager struct {
	loader func() (sdk.NetSDK, error)
	opts   Options

	mu     sync.Mutex
	inited atomic.Bool
	netsdk sdk.NetSDK
	//持有SDK的会话数，含登录中的
	active int
}

func NewManager(loader func() (sdk.NetSDK, error), opts Options) *Manager {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = _DEFAULT_CONNECT_TIMEOUT
	}
	if opts.ReconnectInterval <= 0 {
		opts.ReconnectInterval = _DEFAULT_RECONNECT_INTERVAL
	}
	return &Manager{loader: loader, opts: opts}
}

//只初始化一次，并发调用方等待同一结果
func (m *Manager) Initialize() error {
	if m.inited.Load() {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initLocked()
}

func (m *Manager) initLocked() error {
	if m.inited.Load() {
		return nil
	}
	if m.netsdk == nil {
		s, err := m.loader()
		if err != nil {
			logger.LOG_ERROR("【海康初始化】加载SDK失败：", err)
			return &InitError{Err: err}
		}
		m.netsdk = s
	}
	if !m.netsdk.Init() {
		code := m.netsdk.GetLastError()
		logger.LOG_ERROR("【海康初始化】SDK初始化失败，错误码：", code)
		return &InitError{Code: code}
	}
	logger.LOG_INFO("【海康初始化】SDK初始化成功")
	m.inited.Store(true)
	return nil
}

func (m *Manager) Initialized() bool {
	return m.inited.Load()
}

//占用SDK，失败时不计数
func (m *Manager) acquire() (sdk.NetSDK, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.initLocked(); err != nil {
		return nil, err
	}
	m.active++
	return m.netsdk, nil
}

//释放SDK，最后一个持有者负责 Cleanup
func (m *Manager) release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active > 0 {
		m.active--
	}
	if m.active > 0 || !m.inited.Load() {
		return
	}
	m.netsdk.Cleanup()
	m.inited.Store(false)
	logger.LOG_INFO("【海康初始化】SDK资源已释放")
}

func (m *Manager) Login(cred model.DeviceCredentials) (*Session, error) {
	s, err := m.acquire()
	if err != nil {
		return nil, err
	}
	s.SetConnectTime(uint32(m.opts.ConnectTimeout/time.Millisecond), _CONNECT_TRY_TIMES)
	s.SetReconnect(uint32(m.opts.ReconnectInterval/time.Millisecond), true)

	info := &sdk.LoginInfo{
		DeviceAddress: cred.IP,
		Port:          cred.Port,
		UserName:      cred.Username,
		Password:      cred.Password,
	}
	if err := info.Validate(); err != nil {
		m.release()
		return nil, &LoginError{Address: cred.Address(), Err: err}
	}
	start := time.Now()
	userID, dev := s.Login(info)
	if userID < 0 {
		code := s.GetLastError()
		logger.LOG_WARN("【海康登录】登录失败 ", cred.Address(), "，错误码：", code)
		m.release()
		return nil, &LoginError{Address: cred.Address(), Code: code}
	}
	logger.LOG_INFO("【海康登录】登录成功 ", cred.Address(), "，耗时：", time.Since(start))
	sess := &Session{
		m:           m,
		cred:        cred,
		userID:      userID,
		alarmHandle: -1,
		device:      dev,
	}
	sess.setState(StateConnected)
	return sess, nil
}

//布防：二等级优先级，新报警信息格式
func (m *Manager) Arm(sess *Session) (int32, error) {
	if sess.State() != StateConnected {
		return -1, ErrSessionClosed
	}
	param := &sdk.SetupAlarmParam{
		Level:         sdk.ALARM_LEVEL_MEDIUM,
		AlarmInfoType: sdk.ALARM_INFO_NEW,
	}
	h := m.netsdk.SetupAlarmChan(sess.userID, param)
	if h < 0 {
		code := m.netsdk.GetLastError()
		logger.LOG_WARN("【海康布防】布防失败 ", sess.cred.Address(), "，错误码：", code)
		sess.setState(StateFailed)
		m.teardown(sess)
		return -1, &ArmError{Address: sess.cred.Address(), Code: code}
	}
	sess.alarmHandle = h
	sess.setState(StateArmed)
	logger.LOG_INFO("【海康布防】布防成功 ", sess.cred.Address())
	return h, nil
}

//幂等
func (m *Manager) Teardown(sess *Session) {
	if sess == nil {
		return
	}
	m.teardown(sess)
	if sess.State() != StateFailed {
		sess.setState(StateClosed)
	}
}

func (m *Manager) teardown(sess *Session) {
	sess.closeOnce.Do(func() {
		if sess.alarmHandle >= 0 {
			m.netsdk.CloseAlarmChan(sess.alarmHandle)
		}
		if !m.netsdk.Logout(sess.userID) {
			logger.LOG_WARN("【海康登出】登出失败 ", sess.cred.Address(), "，错误码：", m.netsdk.GetLastError())
		}
		m.release()
	})
}

//注册报警回调，已注册时重复调用无副作用
func (m *Manager) RegisterCallback(sess *Session, cb sdk.MessageCallback) error {
	if sess.State() != StateArmed {
		return ErrNotArmed
	}
	if !m.netsdk.SetMessageCallback(cb) {
		return &CallError{Op: "注册回调", Code: m.netsdk.GetLastError()}
	}
	return nil
}

func (m *Manager) CaptureJPEG(sess *Session, channel int32, para *sdk.JpegPara, buf []byte) ([]byte, error) {
	st := sess.State()
	if st != StateConnected && st != StateArmed {
		return nil, ErrSessionClosed
	}
	n, ok := m.netsdk.CaptureJPEG(sess.userID, channel, para, buf)
	if !ok {
		return nil, &CallError{Op: "抓图", Code: m.netsdk.GetLastError()}
	}
	if int(n) > len(buf) {
		n = uint32(len(buf))
	}
	return buf[:n], nil
}
