// Package sdk is the boundary to the vendor HCNetSDK library. Every native
// structure crosses it as a fixed-size little-endian byte record whose
// layout is defined in layout.go.
package sdk

import "errors"

//报警命令
const (
	COMM_ITS_PLATE_RESULT      int32 = 0x3050
	COMM_VEHICLE_CONTROL_ALARM int32 = 0x3059
)

//SetSDKInitCfg 类型
const (
	NET_SDK_INIT_CFG_SDK_PATH    = 2
	NET_SDK_INIT_CFG_LIBEAY_PATH = 3
	NET_SDK_INIT_CFG_SSLEAY_PATH = 4
)

//布防优先级：0- 一等级（高），1- 二等级（中）
const (
	ALARM_LEVEL_HIGH   byte = 0
	ALARM_LEVEL_MEDIUM byte = 1
)

//上传报警信息类型: 0- 老报警信息(NET_DVR_PLATE_RESULT), 1- 新报警信息(NET_ITS_PLATE_RESULT)
const (
	ALARM_INFO_OLD byte = 0
	ALARM_INFO_NEW byte = 1
)

var ErrNullPointer = errors.New("空指针")

//native内存读取，只在回调期间有效
type Memory interface {
	Copy(addr uint64, n uint32) ([]byte, error)
}

//报警回调消息，Alarmer/Info 只在回调期间有效
type AlarmMessage struct {
	Command int32
	Alarmer []byte
	Info    []byte
	Memory  Memory
}

//报警回调
type MessageCallback func(msg *AlarmMessage) bool

//HCNetSDK 接口，与厂商库一一对应
type NetSDK interface {
	Init() bool
	Cleanup() bool
	SetConnectTime(waitMs, tryTimes uint32) bool
	SetReconnect(intervalMs uint32, enable bool) bool
	//返回用户句柄，<0 表示失败
	Login(info *LoginInfo) (int32, *DeviceInfo)
	Logout(userID int32) bool
	//返回布防句柄，<0 表示失败
	SetupAlarmChan(userID int32, param *SetupAlarmParam) int32
	CloseAlarmChan(alarmHandle int32) bool
	SetMessageCallback(cb MessageCallback) bool
	//返回实际写入大小
	CaptureJPEG(userID int32, channel int32, para *JpegPara, buf []byte) (uint32, bool)
	GetLastError() uint32
}
