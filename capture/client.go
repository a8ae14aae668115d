// Package capture takes still pictures from the configured full-color
// cameras. Every shot runs in its own login session.
package capture

import (
	"context"
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/metrics"
	"dyzs/hkcamera/model"
	"dyzs/hkcamera/sdk"
	"dyzs/hkcamera/session"
	"dyzs/hkcamera/util/images"
	"time"
)

const _DEFAULT_BUFFER_SIZE = 1024 * 1024

type Options struct {
	BufferSize int
	//wPicSize，2- 4CIF
	PicSize uint16
	//wPicQuality，0- 最好
	Quality uint16
}

type Client struct {
	manager *session.Manager
	writer  *images.Writer
	opts    Options
}

func NewClient(manager *session.Manager, writer *images.Writer, opts Options) *Client {
	if opts.BufferSize <= 0 {
		opts.BufferSize = _DEFAULT_BUFFER_SIZE
	}
	return &Client{manager: manager, writer: writer, opts: opts}
}

//登录、抓图、登出，图片以主机标识为后缀写盘
func (c *Client) Capture(cred model.DeviceCredentials, channel int) (string, error) {
	sess, err := c.manager.Login(cred)
	if err != nil {
		return "", captureError(cred.Address(), err)
	}
	defer c.manager.Teardown(sess)

	para := &sdk.JpegPara{PicSize: c.opts.PicSize, PicQuality: c.opts.Quality}
	data, err := c.manager.CaptureJPEG(sess, int32(channel), para, make([]byte, c.opts.BufferSize))
	if err != nil {
		return "", captureError(cred.Address(), err)
	}
	if len(data) == 0 {
		return "", captureError(cred.Address(), ErrEmptyPicture)
	}
	return c.writer.Write(data, cred.HostID())
}

//按配置顺序逐个抓图，失败的摄像头跳过
func (c *Client) TakePhotos(ctx context.Context, cameras []model.CameraParam) []string {
	paths := make([]string, 0, len(cameras))
	for _, cam := range cameras {
		if err := ctx.Err(); err != nil {
			logger.LOG_WARN("【海康摄像头】抓图已取消：", err)
			break
		}
		cred := cam.Credentials()
		start := time.Now()
		path, err := c.Capture(cred, cam.GetChannel())
		cost := time.Since(start)
		metrics.CaptureDuration.Observe(cost.Seconds())
		if err != nil {
			metrics.Captures.WithLabelValues("error").Inc()
			logger.LOG_WARN("【海康摄像头】", err)
			continue
		}
		metrics.Captures.WithLabelValues("ok").Inc()
		logger.LOG_INFO("【海康摄像头】抓图成功 ", cred.Address(), " 耗时：", cost, " 路径：", path)
		paths = append(paths, path)
	}
	return paths
}
