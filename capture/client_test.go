package capture

import (
	"bytes"
	"context"
	"dyzs/hkcamera/model"
	"dyzs/hkcamera/sdk"
	"dyzs/hkcamera/sdk/sdktest"
	"dyzs/hkcamera/session"
	"dyzs/hkcamera/util/images"
	"errors"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

var (
	camA = model.CameraParam{DeviceIp: "192.168.1.10", Username: "admin", Password: "pw", Port: 8000}
	camB = model.CameraParam{DeviceIp: "192.168.1.11", Username: "admin", Password: "pw", Port: 8000, Channel: 2}
)

func newClient(t *testing.T, f *sdktest.Fake) *Client {
	t.Helper()
	w, err := images.NewWriter(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	m := session.NewManager(func() (sdk.NetSDK, error) { return f, nil }, session.Options{})
	return NewClient(m, w, Options{PicSize: 2})
}

func TestCapture(t *testing.T) {
	f := sdktest.New()
	f.CaptureData = []byte("\xff\xd8jpeg\xff\xd9")
	c := newClient(t, f)

	path, err := c.Capture(camB.Credentials(), camB.GetChannel())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "_11.jpg") {
		t.Errorf("path = %s", path)
	}
	got, _ := os.ReadFile(path)
	if !bytes.Equal(got, f.CaptureData) {
		t.Errorf("content = %q", got)
	}
	if f.LastChannel != 2 || f.LastJpegPara.PicSize != 2 {
		t.Errorf("channel/para = %d %+v", f.LastChannel, f.LastJpegPara)
	}
	//单次抓图会话已释放
	if f.ActiveUsers() != 0 {
		t.Errorf("active users = %d", f.ActiveUsers())
	}
	if _, cleanups, _, _ := f.Counts(); cleanups != 1 {
		t.Errorf("cleanups = %d", cleanups)
	}
}

func TestCaptureErrors(t *testing.T) {
	f := sdktest.New()
	f.ErrorCode = 7
	f.FailLogin[camA.DeviceIp] = true
	f.FailCapture[camB.DeviceIp] = true
	c := newClient(t, f)

	var cerr *CaptureError
	_, err := c.Capture(camA.Credentials(), 1)
	if !errors.As(err, &cerr) || cerr.Code != 7 {
		t.Errorf("login failure = %v", err)
	}
	var lerr *session.LoginError
	if !errors.As(err, &lerr) {
		t.Errorf("login failure does not wrap LoginError: %v", err)
	}

	_, err = c.Capture(camB.Credentials(), 1)
	if !errors.As(err, &cerr) || cerr.Code != 7 {
		t.Errorf("capture failure = %v", err)
	}
	if f.ActiveUsers() != 0 {
		t.Error("failed capture left a session open")
	}

	delete(f.FailCapture, camB.DeviceIp)
	f.CaptureData = nil
	_, err = c.Capture(camB.Credentials(), 1)
	if !errors.Is(err, ErrEmptyPicture) {
		t.Errorf("empty capture = %v", err)
	}
}

func TestTakePhotosSkipsFailures(t *testing.T) {
	f := sdktest.New()
	f.CaptureData = []byte("jpeg")
	f.FailLogin[camA.DeviceIp] = true
	c := newClient(t, f)

	camC := camB
	camC.DeviceIp = "192.168.1.12"
	paths := c.TakePhotos(context.Background(), []model.CameraParam{camA, camB, camC})
	if len(paths) != 2 {
		t.Fatalf("paths = %v", paths)
	}
	if !strings.HasSuffix(paths[0], "_11.jpg") || !strings.HasSuffix(paths[1], "_12.jpg") {
		t.Errorf("order = %v", paths)
	}

	t.Run("only failing then succeeding", func(t *testing.T) {
		paths := c.TakePhotos(context.Background(), []model.CameraParam{camA, camB})
		if len(paths) != 1 || !strings.HasSuffix(paths[0], "_11.jpg") {
			t.Errorf("paths = %v", paths)
		}
	})
	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if paths := c.TakePhotos(ctx, []model.CameraParam{camB}); len(paths) != 0 {
			t.Errorf("paths = %v", paths)
		}
	})
}

func TestStartSchedule(t *testing.T) {
	f := sdktest.New()
	f.CaptureData = []byte("jpeg")
	c := newClient(t, f)

	if _, err := c.StartSchedule("not a cron expression", nil); err == nil {
		t.Error("invalid cron expression accepted")
	}

	var runs int32
	task, err := c.StartSchedule("* * * * * *", func() ([]model.CameraParam, error) {
		atomic.AddInt32(&runs, 1)
		return []model.CameraParam{camB}, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	defer task.Stop()
	deadline := time.Now().Add(3 * time.Second)
	for atomic.LoadInt32(&runs) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("schedule never ran")
		}
		time.Sleep(20 * time.Millisecond)
	}
}
