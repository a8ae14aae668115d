// Package alarm turns raw alarm callbacks into model.AlarmEvent values.
package alarm

import (
	"dyzs/hkcamera/logger"
	"dyzs/hkcamera/model"
	"dyzs/hkcamera/sdk"
	"dyzs/hkcamera/util/uuid"
	"fmt"
	"time"
)

//报警解码器，无共享状态，可在回调线程并发使用
type Decoder struct {
	charset Charset
	now     func() time.Time
}

func NewDecoder(charset Charset) *Decoder {
	return &Decoder{charset: charset, now: time.Now}
}

func (d *Decoder) Charset() Charset {
	return d.charset
}

//未关注的报警类型返回 nil, nil
func (d *Decoder) Decode(msg *sdk.AlarmMessage) (*model.AlarmEvent, error) {
	switch msg.Command {
	case sdk.COMM_ITS_PLATE_RESULT:
		logger.LOG_DEBUG("【海康报警回调】交通抓拍的终端图片上传")
		return d.decodePlate(msg)
	case sdk.COMM_VEHICLE_CONTROL_ALARM:
		logger.LOG_INFO("【海康报警回调】车辆报警上传")
		ev := d.newEvent(model.CommandVehicleControlAlarm, msg)
		return ev, nil
	}
	logger.LOG_DEBUG("【海康报警回调】忽略报警类型：", fmt.Sprintf("0x%x", msg.Command))
	return nil, nil
}

func (d *Decoder) newEvent(cmd model.Command, msg *sdk.AlarmMessage) *model.AlarmEvent {
	ev := &model.AlarmEvent{
		ID:          uuid.UUIDShort(),
		Command:     cmd,
		ReceiveTime: d.now().UnixMilli(),
	}
	if len(msg.Alarmer) == sdk.AlarmerSize {
		if a, err := sdk.ParseAlarmer(msg.Alarmer); err == nil {
			ev.DeviceIP = a.DeviceIP
			ev.DeviceSerial = a.SerialNumber
		}
	}
	return ev
}

func (d *Decoder) decodePlate(msg *sdk.AlarmMessage) (*model.AlarmEvent, error) {
	res, err := sdk.ParsePlateResult(msg.Info)
	if err != nil {
		return nil, &DecodeError{Command: msg.Command, Reason: "结构体长度不符", Err: err}
	}
	plate, err := SplitPlate(res.PlateInfo.License, d.charset)
	if err != nil {
		return nil, &DecodeError{Command: msg.Command, Reason: "车牌解析失败", Err: err}
	}
	ev := d.newEvent(model.CommandPlateResult, msg)
	ev.VehicleType = model.ParseVehicleType(res.VehicleType)
	ev.License = plate.Text
	ev.PlateColor = plate.Color
	ev.PlateProvince = plate.Province
	ev.PlateNumber = plate.Number
	ev.MatchNo = res.MatchNo
	ev.DriveChan = res.DriveChan
	ev.VehicleColor = res.VehicleInfo.Color
	ev.Speed = res.VehicleInfo.Speed
	ev.SiteID = res.SiteID
	ev.DeviceID = res.DeviceID
	if res.IllegalTime != 0 {
		ev.IllegalTime = ParsePackedTime(res.IllegalTime)
	}
	logger.LOG_INFO("【海康报警回调】车辆类型: ", ev.VehicleType, " 车牌号: ", ev.PlateNumber, " 省份: ", ev.PlateProvince, " 颜色: ", ev.PlateColor)

	for i, pic := range res.Pictures() {
		if pic.DataLen == 0 {
			continue
		}
		if msg.Memory == nil {
			logger.LOG_WARN("【海康报警回调】图片无法读取，序号：", i)
			continue
		}
		//拷贝出回调内存，回调返回后原地址失效
		data, err := msg.Memory.Copy(pic.Buffer, pic.DataLen)
		if err != nil {
			logger.LOG_WARN("【海康报警回调】图片读取失败，序号：", i, " ", err)
			continue
		}
		ev.Pictures = append(ev.Pictures, &model.PictureRecord{
			Kind:   model.PictureKind(pic.Type),
			Data:   data,
			Length: pic.DataLen,
		})
	}
	return ev, nil
}
