// Package operator holds helpers shared by the alarm handler plugins.
package operator

import (
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/model"
)

//断言报警事件，失败时记录并返回 false
func AlarmEvent(name string, data interface{}) (*model.AlarmEvent, bool) {
	ev, ok := data.(*model.AlarmEvent)
	if !ok || ev == nil {
		logger.LOG_ERROR(name, " 转换数据异常")
		return nil, false
	}
	return ev, true
}

//只有车牌识别事件生成记录
func PlateRecord(ev *model.AlarmEvent) (*model.PlateRecord, bool) {
	if ev.Command != model.CommandPlateResult {
		return nil, false
	}
	return model.NewPlateRecord(ev.ID, ev), true
}
