//go:build linux

package sdk

import (
	"dyzs/hkcamera/logger"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
)

const (
	_LIB_NAME      = "libhcnetsdk.so"
	_LIB_CRYPTO    = "libcrypto.so.1.1"
	_LIB_SSL       = "libssl.so.1.1"
	_INIT_PATH_LEN = 256
	//NET_DVR_LOCAL_SDK_PATH: sPath[256], byRes[128]
	_LOCAL_SDK_PATH_SIZE = 384
)

//基于 purego 的 HCNetSDK 实现，BOOL 按 int32 处理
type nativeSDK struct {
	lib uintptr

	netDVRInit                  func() int32
	netDVRCleanup               func() int32
	netDVRSetSDKInitCfg         func(cfgType int32, val unsafe.Pointer) int32
	netDVRSetConnectTime        func(waitTime, tryTimes uint32) int32
	netDVRSetReconnect          func(interval uint32, enable int32) int32
	netDVRLoginV40              func(loginInfo, deviceInfo unsafe.Pointer) int32
	netDVRLogout                func(userID int32) int32
	netDVRSetupAlarmChanV41     func(userID int32, param unsafe.Pointer) int32
	netDVRCloseAlarmChanV30     func(alarmHandle int32) int32
	netDVRSetDVRMessageCallBack func(cb uintptr, user uintptr) int32
	netDVRCaptureJPEGPictureNEW func(userID, channel int32, para, buf unsafe.Pointer, bufSize uint32, ret unsafe.Pointer) int32
	netDVRGetLastError          func() uint32

	cbOnce sync.Once
	cbPtr  uintptr
	sink   atomic.Value
}

//加载 dir 下的 libhcnetsdk.so 并设置组件库路径
func Load(dir string) (sdk NetSDK, err error) {
	path := filepath.Join(dir, _LIB_NAME)
	logger.LOG_INFO("【海康初始化】LOAD_PATH: ", path)
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("加载SDK失败 %s: %w", path, err)
	}
	n := &nativeSDK{lib: lib}
	//符号缺失时 RegisterLibFunc 会 panic
	defer func() {
		if r := recover(); r != nil {
			sdk = nil
			err = fmt.Errorf("加载SDK符号失败: %v", r)
		}
	}()
	n.register()
	n.setComponentPath(dir)
	return n, nil
}

func (n *nativeSDK) register() {
	purego.RegisterLibFunc(&n.netDVRInit, n.lib, "NET_DVR_Init")
	purego.RegisterLibFunc(&n.netDVRCleanup, n.lib, "NET_DVR_Cleanup")
	purego.RegisterLibFunc(&n.netDVRSetSDKInitCfg, n.lib, "NET_DVR_SetSDKInitCfg")
	purego.RegisterLibFunc(&n.netDVRSetConnectTime, n.lib, "NET_DVR_SetConnectTime")
	purego.RegisterLibFunc(&n.netDVRSetReconnect, n.lib, "NET_DVR_SetReconnect")
	purego.RegisterLibFunc(&n.netDVRLoginV40, n.lib, "NET_DVR_Login_V40")
	purego.RegisterLibFunc(&n.netDVRLogout, n.lib, "NET_DVR_Logout")
	purego.RegisterLibFunc(&n.netDVRSetupAlarmChanV41, n.lib, "NET_DVR_SetupAlarmChan_V41")
	purego.RegisterLibFunc(&n.netDVRCloseAlarmChanV30, n.lib, "NET_DVR_CloseAlarmChan_V30")
	purego.RegisterLibFunc(&n.netDVRSetDVRMessageCallBack, n.lib, "NET_DVR_SetDVRMessageCallBack_V31")
	purego.RegisterLibFunc(&n.netDVRCaptureJPEGPictureNEW, n.lib, "NET_DVR_CaptureJPEGPicture_NEW")
	purego.RegisterLibFunc(&n.netDVRGetLastError, n.lib, "NET_DVR_GetLastError")
}

//linux 下需指定 libcrypto/libssl 及 SDK 组件目录
func (n *nativeSDK) setComponentPath(dir string) {
	crypto := cPath(filepath.Join(dir, _LIB_CRYPTO), _INIT_PATH_LEN)
	if n.netDVRSetSDKInitCfg(NET_SDK_INIT_CFG_LIBEAY_PATH, unsafe.Pointer(&crypto[0])) == 0 {
		logger.LOG_WARN("【海康初始化】设置libcrypto路径失败")
	}
	ssl := cPath(filepath.Join(dir, _LIB_SSL), _INIT_PATH_LEN)
	if n.netDVRSetSDKInitCfg(NET_SDK_INIT_CFG_SSLEAY_PATH, unsafe.Pointer(&ssl[0])) == 0 {
		logger.LOG_WARN("【海康初始化】设置libssl路径失败")
	}
	sdkPath := cPath(dir+"/", _LOCAL_SDK_PATH_SIZE)
	if n.netDVRSetSDKInitCfg(NET_SDK_INIT_CFG_SDK_PATH, unsafe.Pointer(&sdkPath[0])) == 0 {
		logger.LOG_WARN("【海康初始化】设置SDK组件路径失败")
	}
	runtime.KeepAlive(crypto)
	runtime.KeepAlive(ssl)
	runtime.KeepAlive(sdkPath)
}

func cPath(p string, size int) []byte {
	buf := make([]byte, size)
	copy(buf[:size-1], p)
	return buf
}

func boolOf(v int32) bool {
	return v != 0
}

func (n *nativeSDK) Init() bool {
	return boolOf(n.netDVRInit())
}

func (n *nativeSDK) Cleanup() bool {
	return boolOf(n.netDVRCleanup())
}

func (n *nativeSDK) SetConnectTime(waitMs, tryTimes uint32) bool {
	return boolOf(n.netDVRSetConnectTime(waitMs, tryTimes))
}

func (n *nativeSDK) SetReconnect(intervalMs uint32, enable bool) bool {
	var e int32
	if enable {
		e = 1
	}
	return boolOf(n.netDVRSetReconnect(intervalMs, e))
}

func (n *nativeSDK) Login(info *LoginInfo) (int32, *DeviceInfo) {
	in, err := info.Marshal()
	if err != nil {
		logger.LOG_WARN("【海康登录】登录参数不合法：", err)
		return -1, nil
	}
	out := make([]byte, DeviceInfoSize)
	userID := n.netDVRLoginV40(unsafe.Pointer(&in[0]), unsafe.Pointer(&out[0]))
	runtime.KeepAlive(in)
	runtime.KeepAlive(out)
	if userID < 0 {
		return userID, nil
	}
	dev, err := ParseDeviceInfo(out)
	if err != nil {
		logger.LOG_WARN("【海康登录】设备信息解析失败：", err)
	}
	return userID, dev
}

func (n *nativeSDK) Logout(userID int32) bool {
	return boolOf(n.netDVRLogout(userID))
}

func (n *nativeSDK) SetupAlarmChan(userID int32, param *SetupAlarmParam) int32 {
	buf := param.Marshal()
	h := n.netDVRSetupAlarmChanV41(userID, unsafe.Pointer(&buf[0]))
	runtime.KeepAlive(buf)
	return h
}

func (n *nativeSDK) CloseAlarmChan(alarmHandle int32) bool {
	return boolOf(n.netDVRCloseAlarmChanV30(alarmHandle))
}

//回调函数指针只创建一次，重复注册只替换接收方
func (n *nativeSDK) SetMessageCallback(cb MessageCallback) bool {
	n.sink.Store(cb)
	n.cbOnce.Do(func() {
		n.cbPtr = purego.NewCallback(n.onMessage)
	})
	return boolOf(n.netDVRSetDVRMessageCallBack(n.cbPtr, 0))
}

//MSGCallBack_V31(LONG lCommand, NET_DVR_ALARMER *pAlarmer, char *pAlarmInfo, DWORD dwBufLen, void *pUser)
func (n *nativeSDK) onMessage(command, alarmer, info, bufLen, user uintptr) uintptr {
	cb, _ := n.sink.Load().(MessageCallback)
	if cb == nil {
		return 1
	}
	defer func() {
		if r := recover(); r != nil {
			logger.LOG_ERROR("【海康报警回调】处理异常：", r)
		}
	}()
	msg := &AlarmMessage{
		Command: int32(command),
		Alarmer: view(alarmer, AlarmerSize),
		Info:    view(info, uint32(bufLen)),
		Memory:  nativeMemory{},
	}
	if cb(msg) {
		return 1
	}
	return 0
}

func (n *nativeSDK) CaptureJPEG(userID int32, channel int32, para *JpegPara, buf []byte) (uint32, bool) {
	if len(buf) == 0 {
		return 0, false
	}
	p := para.Marshal()
	var size uint32
	ok := n.netDVRCaptureJPEGPictureNEW(userID, channel, unsafe.Pointer(&p[0]), unsafe.Pointer(&buf[0]), uint32(len(buf)), unsafe.Pointer(&size))
	runtime.KeepAlive(p)
	runtime.KeepAlive(buf)
	return size, boolOf(ok)
}

func (n *nativeSDK) GetLastError() uint32 {
	return n.netDVRGetLastError()
}

//native内存视图，不拷贝
func view(addr uintptr, n uint32) []byte {
	if addr == 0 || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}

type nativeMemory struct{}

func (nativeMemory) Copy(addr uint64, n uint32) ([]byte, error) {
	if addr == 0 {
		return nil, ErrNullPointer
	}
	out := make([]byte, n)
	copy(out, view(uintptr(addr), n))
	return out, nil
}
