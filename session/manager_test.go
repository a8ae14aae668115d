package session

import (
	"dyzs/hkcamera/model"
	"dyzs/hkcamera/sdk"
	"dyzs/hkcamera/sdk/sdktest"
	"errors"
	"sync"
	"testing"
)

var (
	plateCam = model.DeviceCredentials{IP: "192.168.1.64", Username: "admin", Password: "pw", Port: 8000}
	snapCam  = model.DeviceCredentials{IP: "192.168.1.65", Username: "admin", Password: "pw", Port: 8000}
)

func newManager(f *sdktest.Fake) *Manager {
	return NewManager(func() (sdk.NetSDK, error) { return f, nil }, Options{})
}

func TestInitializeOnce(t *testing.T) {
	f := sdktest.New()
	m := newManager(f)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.Initialize(); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
	if inits, _, _, _ := f.Counts(); inits != 1 {
		t.Errorf("init calls = %d, want 1", inits)
	}
}

func TestInitializeFailure(t *testing.T) {
	t.Run("init false", func(t *testing.T) {
		f := sdktest.New()
		f.InitOK = false
		err := newManager(f).Initialize()
		var ierr *InitError
		if !errors.As(err, &ierr) {
			t.Fatalf("err = %v, want *InitError", err)
		}
	})
	t.Run("loader", func(t *testing.T) {
		loadErr := errors.New("no such file")
		m := NewManager(func() (sdk.NetSDK, error) { return nil, loadErr }, Options{})
		err := m.Initialize()
		if !errors.Is(err, loadErr) {
			t.Fatalf("err = %v", err)
		}
		if m.Initialized() {
			t.Error("manager should not be initialized")
		}
	})
}

func TestLoginAndArm(t *testing.T) {
	f := sdktest.New()
	m := newManager(f)
	sess, err := m.Login(plateCam)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Handle() < 0 || sess.State() != StateConnected {
		t.Fatalf("session = %d %s", sess.Handle(), sess.State())
	}
	if f.ConnectTimeMs != 2000 || f.ReconnectMs != 10000 || !f.ReconnectOn {
		t.Errorf("connect policy = %d %d %v", f.ConnectTimeMs, f.ReconnectMs, f.ReconnectOn)
	}

	h, err := m.Arm(sess)
	if err != nil {
		t.Fatal(err)
	}
	if h < 0 || sess.State() != StateArmed {
		t.Errorf("arm = %d %s", h, sess.State())
	}
	if f.LastAlarmParam.Level != sdk.ALARM_LEVEL_MEDIUM || f.LastAlarmParam.AlarmInfoType != sdk.ALARM_INFO_NEW {
		t.Errorf("alarm param = %+v", f.LastAlarmParam)
	}
	if err := m.RegisterCallback(sess, func(*sdk.AlarmMessage) bool { return true }); err != nil {
		t.Error(err)
	}
}

func TestLoginFailure(t *testing.T) {
	f := sdktest.New()
	f.FailLogin[plateCam.IP] = true
	f.ErrorCode = 7
	m := newManager(f)

	sess, err := m.Login(plateCam)
	if sess != nil {
		t.Fatal("session should be nil")
	}
	var lerr *LoginError
	if !errors.As(err, &lerr) || lerr.Code != 7 {
		t.Fatalf("err = %v, want LoginError(7)", err)
	}
	if _, cleanups, _, _ := f.Counts(); cleanups != 1 {
		t.Errorf("cleanup calls = %d, want 1", cleanups)
	}
	if m.Initialized() {
		t.Error("sdk should be released")
	}

	t.Run("invalid credentials", func(t *testing.T) {
		_, err := m.Login(model.DeviceCredentials{})
		if !errors.As(err, &lerr) || lerr.Err == nil {
			t.Errorf("err = %v", err)
		}
	})
}

func TestArmFailure(t *testing.T) {
	f := sdktest.New()
	f.FailArm[plateCam.IP] = true
	f.ErrorCode = 17
	m := newManager(f)

	sess, err := m.Login(plateCam)
	if err != nil {
		t.Fatal(err)
	}
	_, err = m.Arm(sess)
	var aerr *ArmError
	if !errors.As(err, &aerr) || aerr.Code != 17 {
		t.Fatalf("err = %v, want ArmError(17)", err)
	}
	if sess.State() != StateFailed {
		t.Errorf("state = %s", sess.State())
	}
	if f.ActiveUsers() != 0 {
		t.Error("failed arm left a logged-in session")
	}
	if _, cleanups, _, logouts := f.Counts(); cleanups != 1 || logouts != 1 {
		t.Errorf("cleanup/logout = %d/%d", cleanups, logouts)
	}
	if err := m.RegisterCallback(sess, nil); !errors.Is(err, ErrNotArmed) {
		t.Errorf("register on failed session: %v", err)
	}
}

func TestFailedLoginKeepsArmedSession(t *testing.T) {
	f := sdktest.New()
	f.FailLogin[snapCam.IP] = true
	m := newManager(f)

	armed, err := m.Login(plateCam)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Arm(armed); err != nil {
		t.Fatal(err)
	}
	if _, err := m.Login(snapCam); err == nil {
		t.Fatal("expected login error")
	}
	if _, cleanups, _, _ := f.Counts(); cleanups != 0 {
		t.Errorf("cleanup ran while a session was armed")
	}
	if armed.State() != StateArmed || !m.Initialized() {
		t.Errorf("armed session disturbed: %s", armed.State())
	}

	m.Teardown(armed)
	if _, cleanups, _, _ := f.Counts(); cleanups != 1 {
		t.Errorf("cleanup calls = %d, want 1", cleanups)
	}
}

func TestTeardownIdempotent(t *testing.T) {
	f := sdktest.New()
	m := newManager(f)
	sess, err := m.Login(plateCam)
	if err != nil {
		t.Fatal(err)
	}
	m.Teardown(sess)
	m.Teardown(sess)
	m.Teardown(nil)
	inits, cleanups, _, logouts := f.Counts()
	if logouts != 1 || cleanups != 1 {
		t.Errorf("logout/cleanup = %d/%d, want 1/1", logouts, cleanups)
	}
	if sess.State() != StateClosed {
		t.Errorf("state = %s", sess.State())
	}
	if _, err := m.Arm(sess); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("arm after teardown: %v", err)
	}

	//释放后重新登录需再次初始化
	if _, err := m.Login(plateCam); err != nil {
		t.Fatal(err)
	}
	if again, _, _, _ := f.Counts(); again != inits+1 {
		t.Errorf("init calls = %d, want %d", again, inits+1)
	}
}

func TestCaptureJPEG(t *testing.T) {
	f := sdktest.New()
	f.CaptureData = []byte("jpeg")
	m := newManager(f)
	sess, err := m.Login(snapCam)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Teardown(sess)

	data, err := m.CaptureJPEG(sess, 1, &sdk.JpegPara{PicSize: 2}, make([]byte, 64))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "jpeg" {
		t.Errorf("data = %q", data)
	}

	f.FailCapture[snapCam.IP] = true
	_, err = m.CaptureJPEG(sess, 1, &sdk.JpegPara{}, make([]byte, 64))
	var cerr *CallError
	if !errors.As(err, &cerr) {
		t.Errorf("err = %v, want *CallError", err)
	}
}
