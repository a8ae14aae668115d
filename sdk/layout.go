package sdk

import "fmt"

//结构体长度，64位平台自然对齐
const (
	LoginInfoSize       = 416
	DeviceInfoSize      = 344
	SetupAlarmParamSize = 20
	JpegParaSize        = 4
	AlarmerSize         = 372
	TimeV30Size         = 12
	PlateInfoSize       = 88
	VehicleInfoSize     = 48
	PictureInfoSize     = 104
	PlateResultSize     = 936

	MAX_ITS_PICTURES = 6
	MAX_LICENSE_LEN  = 16

	NET_DVR_DEV_ADDRESS_MAX_LEN    = 129
	NET_DVR_LOGIN_USERNAME_MAX_LEN = 64
	NET_DVR_LOGIN_PASSWD_MAX_LEN   = 64
	SERIALNO_LEN                   = 48
)

//长度不符
type LayoutError struct {
	Struct string
	Want   int
	Got    int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s 长度不符, want %d got %d", e.Struct, e.Want, e.Got)
}

func checkSize(name string, buf []byte, want int) error {
	if len(buf) != want {
		return &LayoutError{Struct: name, Want: want, Got: len(buf)}
	}
	return nil
}

/*
NET_DVR_USER_LOGIN_INFO
	0   sDeviceAddress[129]
	129 byUseTransport
	130 wPort
	132 sUserName[64]
	196 sPassword[64]
	264 cbLoginResult (ptr)
	272 pUser (ptr)
	280 bUseAsynLogin (BOOL)
	284 byProxyType, byUseUTCTime, byLoginMode, byHttps
	288 iProxyID
	292 byVerifyMode
	293 byRes3[119]
*/
type LoginInfo struct {
	DeviceAddress string
	Port          uint16
	UserName      string
	Password      string
	UseAsynLogin  bool
}

//字段长度校验，地址需保留结尾\0
func (l *LoginInfo) Validate() error {
	if l.DeviceAddress == "" {
		return fmt.Errorf("设备地址为空")
	}
	if len(l.DeviceAddress) >= NET_DVR_DEV_ADDRESS_MAX_LEN {
		return fmt.Errorf("设备地址过长: %d", len(l.DeviceAddress))
	}
	if len(l.UserName) > NET_DVR_LOGIN_USERNAME_MAX_LEN {
		return fmt.Errorf("用户名过长: %d", len(l.UserName))
	}
	if len(l.Password) > NET_DVR_LOGIN_PASSWD_MAX_LEN {
		return fmt.Errorf("密码过长: %d", len(l.Password))
	}
	return nil
}

func (l *LoginInfo) Marshal() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	buf := make([]byte, LoginInfoSize)
	w := writer(buf)
	w.bytes(0, NET_DVR_DEV_ADDRESS_MAX_LEN, []byte(l.DeviceAddress))
	w.u16(130, l.Port)
	w.bytes(132, NET_DVR_LOGIN_USERNAME_MAX_LEN, []byte(l.UserName))
	w.bytes(196, NET_DVR_LOGIN_PASSWD_MAX_LEN, []byte(l.Password))
	if l.UseAsynLogin {
		w.u32(280, 1)
	}
	return buf, nil
}

//byCharEncodeType
const (
	CHAR_ENCODE_UNKNOWN = 0
	CHAR_ENCODE_GB2312  = 1
	CHAR_ENCODE_GBK     = 2
	CHAR_ENCODE_UTF8    = 6
)

/*
NET_DVR_DEVICEINFO_V40
	0   struDeviceV30 (80)
	      0  sSerialNumber[48]
	      48 byAlarmInPortNum, byAlarmOutPortNum, byDiskNum, byDVRType
	      52 byChanNum, byStartChan, byAudioChanNum, byIPChanNum
	      62 wDevType
	      66 byStartDChan
	80  bySupportLock, byRetryLoginTime, byPasswordLevel, byProxyType
	84  dwSurplusLockTime
	88  byCharEncodeType
	89  bySupportDev5, bySupport, byLoginMode
	92  dwOEMCode
	96  iResidualValidity
	100 ... byRes2[238]
*/
type DeviceInfo struct {
	SerialNumber     string
	AlarmInPortNum   byte
	AlarmOutPortNum  byte
	DiskNum          byte
	DVRType          byte
	ChanNum          byte
	StartChan        byte
	IPChanNum        byte
	StartDChan       byte
	DevType          uint16
	RetryLoginTime   byte
	SurplusLockTime  uint32
	CharEncodeType   byte
	ResidualValidity int32
}

func ParseDeviceInfo(buf []byte) (*DeviceInfo, error) {
	if err := checkSize("NET_DVR_DEVICEINFO_V40", buf, DeviceInfoSize); err != nil {
		return nil, err
	}
	r := reader(buf)
	return &DeviceInfo{
		SerialNumber:     r.cstr(0, SERIALNO_LEN),
		AlarmInPortNum:   r.u8(48),
		AlarmOutPortNum:  r.u8(49),
		DiskNum:          r.u8(50),
		DVRType:          r.u8(51),
		ChanNum:          r.u8(52),
		StartChan:        r.u8(53),
		IPChanNum:        r.u8(55),
		DevType:          r.u16(62),
		StartDChan:       r.u8(66),
		RetryLoginTime:   r.u8(81),
		SurplusLockTime:  r.u32(84),
		CharEncodeType:   r.u8(88),
		ResidualValidity: r.i32(96),
	}, nil
}

func (d *DeviceInfo) Marshal() []byte {
	buf := make([]byte, DeviceInfoSize)
	w := writer(buf)
	w.bytes(0, SERIALNO_LEN, []byte(d.SerialNumber))
	w.u8(48, d.AlarmInPortNum)
	w.u8(49, d.AlarmOutPortNum)
	w.u8(50, d.DiskNum)
	w.u8(51, d.DVRType)
	w.u8(52, d.ChanNum)
	w.u8(53, d.StartChan)
	w.u8(55, d.IPChanNum)
	w.u16(62, d.DevType)
	w.u8(66, d.StartDChan)
	w.u8(81, d.RetryLoginTime)
	w.u32(84, d.SurplusLockTime)
	w.u8(88, d.CharEncodeType)
	w.i32(96, d.ResidualValidity)
	return buf
}

/*
NET_DVR_SETUPALARM_PARAM
	0  dwSize
	4  byLevel
	5  byAlarmInfoType
	6  byRetAlarmTypeV40, byRetDevInfoVersion, byRetVQDAlarmType
	9  byFaceAlarmDetection, bySupport, byBrokenNetHttp
	12 wTaskNo
	14 byDeployType
	15 byRes1[3]
	18 byAlarmTypeURL, byCustomCtrl
*/
type SetupAlarmParam struct {
	Level         byte
	AlarmInfoType byte
	DeployType    byte
}

func (p *SetupAlarmParam) Marshal() []byte {
	buf := make([]byte, SetupAlarmParamSize)
	w := writer(buf)
	w.u32(0, SetupAlarmParamSize)
	w.u8(4, p.Level)
	w.u8(5, p.AlarmInfoType)
	w.u8(14, p.DeployType)
	return buf
}

//NET_DVR_JPEGPARA: wPicSize, wPicQuality
type JpegPara struct {
	PicSize    uint16
	PicQuality uint16
}

func (p *JpegPara) Marshal() []byte {
	buf := make([]byte, JpegParaSize)
	w := writer(buf)
	w.u16(0, p.PicSize)
	w.u16(2, p.PicQuality)
	return buf
}

/*
NET_DVR_ALARMER
	0   byUserIDValid, bySerialValid, byVersionValid, byDeviceNameValid
	4   byMacAddrValid, byLinkPortValid, byDeviceIPValid, bySocketIPValid
	8   lUserID
	12  sSerialNumber[48]
	60  dwDeviceVersion
	64  sDeviceName[32]
	96  byMacAddr[6]
	102 wLinkPort
	104 sDeviceIP[128]
	232 sSocketIP[128]
	360 byIpProtocol, byRes1[2], byJSONBroken, wSocketPort, byRes2[6]
*/
type Alarmer struct {
	UserID       int32
	SerialNumber string
	DeviceName   string
	LinkPort     uint16
	DeviceIP     string
}

func ParseAlarmer(buf []byte) (*Alarmer, error) {
	if err := checkSize("NET_DVR_ALARMER", buf, AlarmerSize); err != nil {
		return nil, err
	}
	r := reader(buf)
	a := &Alarmer{UserID: -1}
	if r.u8(0) != 0 {
		a.UserID = r.i32(8)
	}
	if r.u8(1) != 0 {
		a.SerialNumber = r.cstr(12, SERIALNO_LEN)
	}
	if r.u8(3) != 0 {
		a.DeviceName = r.cstr(64, 32)
	}
	if r.u8(5) != 0 {
		a.LinkPort = r.u16(102)
	}
	if r.u8(6) != 0 {
		a.DeviceIP = r.cstr(104, 128)
	}
	return a, nil
}

func (a *Alarmer) Marshal() []byte {
	buf := make([]byte, AlarmerSize)
	w := writer(buf)
	if a.UserID >= 0 {
		w.u8(0, 1)
		w.i32(8, a.UserID)
	}
	if a.SerialNumber != "" {
		w.u8(1, 1)
		w.bytes(12, SERIALNO_LEN, []byte(a.SerialNumber))
	}
	if a.DeviceName != "" {
		w.u8(3, 1)
		w.bytes(64, 32, []byte(a.DeviceName))
	}
	if a.LinkPort != 0 {
		w.u8(5, 1)
		w.u16(102, a.LinkPort)
	}
	if a.DeviceIP != "" {
		w.u8(6, 1)
		w.bytes(104, 128, []byte(a.DeviceIP))
	}
	return buf
}

/*
NET_DVR_TIME_V30
	0 wYear
	2 byMonth, byDay, byHour, byMinute, bySecond, byISO8601
	8 wMilliSec
	10 cTimeDifferenceH, cTimeDifferenceM
*/
type TimeV30 struct {
	Year     uint16
	Month    byte
	Day      byte
	Hour     byte
	Minute   byte
	Second   byte
	MilliSec uint16
}

func readTimeV30(r reader, off int) TimeV30 {
	return TimeV30{
		Year:     r.u16(off),
		Month:    r.u8(off + 2),
		Day:      r.u8(off + 3),
		Hour:     r.u8(off + 4),
		Minute:   r.u8(off + 5),
		Second:   r.u8(off + 6),
		MilliSec: r.u16(off + 8),
	}
}

func writeTimeV30(w writer, off int, t TimeV30) {
	w.u16(off, t.Year)
	w.u8(off+2, t.Month)
	w.u8(off+3, t.Day)
	w.u8(off+4, t.Hour)
	w.u8(off+5, t.Minute)
	w.u8(off+6, t.Second)
	w.u16(off+8, t.MilliSec)
}

/*
NET_DVR_PLATE_INFO
	0  byPlateType, byColor, byBright, byLicenseLen, byEntireBelieve
	5  byRegion, byCountry, byArea, byPlateSize, byAddInfoFlag
	10 wCRIndex
	12 byRes[4]
	16 sPlateCategory[8]
	24 dwXmlLen
	32 pXmlBuf (ptr)
	40 struPlateRect (4 float)
	56 sLicense[16]
	72 byBelieve[16]
*/
type PlateInfo struct {
	PlateType    byte
	Color        byte
	LicenseLen   byte
	EntireBelief byte
	Region       byte
	Country      byte
	//原始车牌字节，编码由设备决定
	License []byte
}

func readPlateInfo(r reader, off int) PlateInfo {
	return PlateInfo{
		PlateType:    r.u8(off),
		Color:        r.u8(off + 1),
		LicenseLen:   r.u8(off + 3),
		EntireBelief: r.u8(off + 4),
		Region:       r.u8(off + 5),
		Country:      r.u8(off + 6),
		License:      r.bytes(off+56, MAX_LICENSE_LEN),
	}
}

func writePlateInfo(w writer, off int, p PlateInfo) {
	w.u8(off, p.PlateType)
	w.u8(off+1, p.Color)
	w.u8(off+3, p.LicenseLen)
	w.u8(off+4, p.EntireBelief)
	w.u8(off+5, p.Region)
	w.u8(off+6, p.Country)
	w.bytes(off+56, MAX_LICENSE_LEN, p.License)
}

/*
NET_DVR_VEHICLE_INFO
	0  dwIndex
	4  byVehicleType, byColorDepth, byColor, byRadarState
	8  wSpeed
	10 wLength
	12 byIllegalType, byVehicleLogoRecog, byVehicleSubLogoRecog, byVehicleModel
	16 byCustomInfo[16]
	32 wVehicleLogoRecog, byIsParking, byRes
	36 dwParkingTime
	40 byBelieve ... byRes3[4]
*/
type VehicleInfo struct {
	Index       uint32
	VehicleType byte
	ColorDepth  byte
	Color       byte
	Speed       uint16
	Length      uint16
	LogoRecog   uint16
}

func readVehicleInfo(r reader, off int) VehicleInfo {
	return VehicleInfo{
		Index:       r.u32(off),
		VehicleType: r.u8(off + 4),
		ColorDepth:  r.u8(off + 5),
		Color:       r.u8(off + 6),
		Speed:       r.u16(off + 8),
		Length:      r.u16(off + 10),
		LogoRecog:   r.u16(off + 32),
	}
}

func writeVehicleInfo(w writer, off int, v VehicleInfo) {
	w.u32(off, v.Index)
	w.u8(off+4, v.VehicleType)
	w.u8(off+5, v.ColorDepth)
	w.u8(off+6, v.Color)
	w.u16(off+8, v.Speed)
	w.u16(off+10, v.Length)
	w.u16(off+32, v.LogoRecog)
}

/*
NET_ITS_PICTURE_INFO
	0  dwDataLen
	4  byType, byDataType, byCloseUpType, byPicRecogMode
	8  dwRedLightTime
	12 byAbsTime[32]
	44 struPlateRect, struPlateRecgRect
	80 pBuffer (ptr)
	88 dwUTCTime
	92 byCompatibleAblity, byTimeDiffFlag, cTimeDifferenceH, cTimeDifferenceM
	96 byRes2[4]
*/
type PictureInfo struct {
	DataLen  uint32
	Type     byte
	DataType byte
	AbsTime  string
	//native地址，只在回调期间有效
	Buffer  uint64
	UTCTime uint32
}

func readPictureInfo(r reader, off int) PictureInfo {
	return PictureInfo{
		DataLen:  r.u32(off),
		Type:     r.u8(off + 4),
		DataType: r.u8(off + 5),
		AbsTime:  r.cstr(off+12, 32),
		Buffer:   r.u64(off + 80),
		UTCTime:  r.u32(off + 88),
	}
}

func writePictureInfo(w writer, off int, p PictureInfo) {
	w.u32(off, p.DataLen)
	w.u8(off+4, p.Type)
	w.u8(off+5, p.DataType)
	w.bytes(off+12, 32, []byte(p.AbsTime))
	w.u64(off+80, p.Buffer)
	w.u32(off+88, p.UTCTime)
}

/*
NET_ITS_PLATE_RESULT
	0   dwSize
	4   dwMatchNo
	8   byGroupNum, byPicNo, bySecondCam, byFeaturePicNo
	12  byDriveChan, byVehicleType, byDetSceneID, byVehicleAttribute
	16  wIllegalType
	18  byIllegalSubType[8]
	26  byPostPicNo, byChanIndex
	28  wSpeedLimit
	30  byChanIndexEx, byRes2
	32  struPlateInfo (88)
	120 struVehicleInfo (48)
	168 byMonitoringSiteID[48]
	216 byDeviceID[48]
	264 byDir, byDetectType, byRelaLaneDirectionType, byCarDirectionType
	268 dwCustomIllegalType
	272 pIllegalInfoBuf (ptr)
	280 byIllegalFromatType ... byAlarmDataType (12)
	292 struSnapFirstPicTime (12)
	304 dwIllegalTime
	308 dwPicNum
	312 struPicInfo[6] (104 each)
*/
type PlateResult struct {
	Size         uint32
	MatchNo      uint32
	GroupNum     byte
	PicNo        byte
	DriveChan    byte
	VehicleType  byte
	IllegalType  uint16
	SpeedLimit   uint16
	ChanIndex    byte
	PlateInfo    PlateInfo
	VehicleInfo  VehicleInfo
	SiteID       string
	DeviceID     string
	Dir          byte
	DetectType   byte
	SnapTime     TimeV30
	IllegalTime  uint32
	PicNum       uint32
	PictureInfos [MAX_ITS_PICTURES]PictureInfo
}

const (
	_PLATE_INFO_OFFSET   = 32
	_VEHICLE_INFO_OFFSET = 120
	_PICTURE_OFFSET      = 312
)

//校验长度后逐字段读取，长度不符时不读取任何字段
func ParsePlateResult(buf []byte) (*PlateResult, error) {
	if err := checkSize("NET_ITS_PLATE_RESULT", buf, PlateResultSize); err != nil {
		return nil, err
	}
	r := reader(buf)
	p := &PlateResult{
		Size:        r.u32(0),
		MatchNo:     r.u32(4),
		GroupNum:    r.u8(8),
		PicNo:       r.u8(9),
		DriveChan:   r.u8(12),
		VehicleType: r.u8(13),
		IllegalType: r.u16(16),
		ChanIndex:   r.u8(27),
		SpeedLimit:  r.u16(28),
		PlateInfo:   readPlateInfo(r, _PLATE_INFO_OFFSET),
		VehicleInfo: readVehicleInfo(r, _VEHICLE_INFO_OFFSET),
		SiteID:      r.cstr(168, 48),
		DeviceID:    r.cstr(216, 48),
		Dir:         r.u8(264),
		DetectType:  r.u8(265),
		SnapTime:    readTimeV30(r, 292),
		IllegalTime: r.u32(304),
		PicNum:      r.u32(308),
	}
	for i := 0; i < MAX_ITS_PICTURES; i++ {
		p.PictureInfos[i] = readPictureInfo(r, _PICTURE_OFFSET+i*PictureInfoSize)
	}
	return p, nil
}

func (p *PlateResult) Marshal() []byte {
	buf := make([]byte, PlateResultSize)
	w := writer(buf)
	w.u32(0, PlateResultSize)
	w.u32(4, p.MatchNo)
	w.u8(8, p.GroupNum)
	w.u8(9, p.PicNo)
	w.u8(12, p.DriveChan)
	w.u8(13, p.VehicleType)
	w.u16(16, p.IllegalType)
	w.u8(27, p.ChanIndex)
	w.u16(28, p.SpeedLimit)
	writePlateInfo(w, _PLATE_INFO_OFFSET, p.PlateInfo)
	writeVehicleInfo(w, _VEHICLE_INFO_OFFSET, p.VehicleInfo)
	w.bytes(168, 48, []byte(p.SiteID))
	w.bytes(216, 48, []byte(p.DeviceID))
	w.u8(264, p.Dir)
	w.u8(265, p.DetectType)
	writeTimeV30(w, 292, p.SnapTime)
	w.u32(304, p.IllegalTime)
	w.u32(308, p.PicNum)
	for i, pic := range p.PictureInfos {
		writePictureInfo(w, _PICTURE_OFFSET+i*PictureInfoSize, pic)
	}
	return buf
}

//有效图片，数量不超过 MAX_ITS_PICTURES
func (p *PlateResult) Pictures() []PictureInfo {
	n := int(p.PicNum)
	if n > MAX_ITS_PICTURES {
		n = MAX_ITS_PICTURES
	}
	return p.PictureInfos[:n]
}
