package model

import "fmt"

type Command int

const (
	CommandUnknown Command = iota
	CommandPlateResult
	CommandVehicleControlAlarm
)

func (c Command) String() string {
	switch c {
	case CommandPlateResult:
		return "plateResult"
	case CommandVehicleControlAlarm:
		return "vehicleControlAlarm"
	}
	return "unknown"
}

//车型识别：0- 未知，1- 客车(大型)，2- 货车(大型)，3- 轿车(小型)，4- 非机动车
type VehicleType int

const (
	VehicleUnknown VehicleType = iota
	VehicleBus
	VehicleTruck
	VehicleCar
	VehicleNonMotor
)

func ParseVehicleType(v byte) VehicleType {
	if v > byte(VehicleNonMotor) {
		return VehicleUnknown
	}
	return VehicleType(v)
}

func (v VehicleType) String() string {
	switch v {
	case VehicleBus:
		return "bus"
	case VehicleTruck:
		return "truck"
	case VehicleCar:
		return "car"
	case VehicleNonMotor:
		return "nonMotor"
	}
	return "unknown"
}

//0.车牌照片 1.场景照片
type PictureKind int

const (
	PicturePlateCrop PictureKind = 0
	PictureScene     PictureKind = 1
)

func (k PictureKind) String() string {
	switch k {
	case PicturePlateCrop:
		return "plate"
	case PictureScene:
		return "scene"
	}
	return fmt.Sprintf("type%d", int(k))
}

//报警图片，Data归属于所在的AlarmEvent，写盘后释放
type PictureRecord struct {
	Kind   PictureKind
	Data   []byte
	Length uint32
	//写盘后的路径，未写入时为空
	Path string
}

//SDK压缩时间，不做日历校验
type PackedTime struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

func (t PackedTime) IsZero() bool {
	return t == PackedTime{}
}

func (t PackedTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

//报警事件，解码后不再修改（图片路径除外）
type AlarmEvent struct {
	ID      string
	Command Command

	//上报设备
	DeviceIP     string
	DeviceSerial string

	VehicleType   VehicleType
	PlateColor    string
	PlateProvince string
	PlateNumber   string
	//原始车牌字符串
	License string

	MatchNo      uint32
	DriveChan    byte
	VehicleColor byte
	Speed        uint16
	SiteID       string
	DeviceID     string
	IllegalTime  PackedTime

	Pictures []*PictureRecord
	//接收时间 ms
	ReceiveTime int64
}
