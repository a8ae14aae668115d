package cmd

import (
	"dyzs/hkcamera/alarm"
	"dyzs/hkcamera/capture"
	"dyzs/hkcamera/context"
	"dyzs/hkcamera/dispatcher"
	"dyzs/hkcamera/sdk"
	"dyzs/hkcamera/session"
	"dyzs/hkcamera/util"
	"dyzs/hkcamera/util/images"
	"errors"
	"fmt"
)

func newManager() (*session.Manager, error) {
	if unset := context.IsExsit("hk.sdkPath"); len(unset) > 0 {
		return nil, fmt.Errorf("缺少配置：%v", unset)
	}
	dir := util.ResolvePath(context.GetString("hk.sdkPath"))
	return session.NewManager(func() (sdk.NetSDK, error) {
		return sdk.Load(dir)
	}, session.Options{
		ConnectTimeout:    context.GetMillis("hk.connectTimeout"),
		ReconnectInterval: context.GetMillis("hk.reconnectInterval"),
	}), nil
}

func newWriter() (*images.Writer, error) {
	dir := context.GetString("hk.imgPath")
	if dir == "" {
		return nil, errors.New("缺少配置：hk.imgPath")
	}
	return images.NewWriter(util.ResolvePath(dir))
}

func newCaptureClient(m *session.Manager, w *images.Writer) *capture.Client {
	return capture.NewClient(m, w, capture.Options{
		BufferSize: context.GetInt("capture.bufferSize"),
		PicSize:    uint16(context.GetInt("capture.picSize")),
		Quality:    uint16(context.GetInt("capture.quality")),
	})
}

func newDispatcher(m *session.Manager) *dispatcher.AlarmDispatcher {
	return dispatcher.NewAlarmDispatcher(m, dispatcher.Options{
		RegisterInterval: context.GetMillis("alarm.registerInterval"),
		QueueSize:        context.GetInt("alarm.queueSize"),
		Workers:          context.GetInt("alarm.workers"),
		Charset:          alarm.ParseCharset(context.GetString("hk.charset")),
	})
}
