package capture

import (
	"context"
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/model"
	"sync/atomic"

	"github.com/robfig/cron"
)

//定时抓图，expr 为6段 cron 表达式；上一轮未结束时跳过本轮
func (c *Client) StartSchedule(expr string, cameras func() ([]model.CameraParam, error)) (*cron.Cron, error) {
	var running int32
	task := cron.New()
	err := task.AddFunc(expr, func() {
		if !atomic.CompareAndSwapInt32(&running, 0, 1) {
			logger.LOG_WARN("【海康摄像头】上一轮抓图未结束，跳过")
			return
		}
		defer atomic.StoreInt32(&running, 0)
		list, err := cameras()
		if err != nil {
			logger.LOG_ERROR("【海康摄像头】读取摄像头配置失败：", err)
			return
		}
		paths := c.TakePhotos(context.Background(), list)
		logger.LOG_INFO("【海康摄像头】定时抓图完成，成功：", len(paths), "/", len(list))
	})
	if err != nil {
		return nil, err
	}
	logger.LOG_INFO("【海康摄像头】定时抓图：", expr)
	task.Start()
	return task, nil
}
