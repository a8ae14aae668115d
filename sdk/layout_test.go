package sdk

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func TestLoginInfoMarshal(t *testing.T) {
	info := &LoginInfo{
		DeviceAddress: "192.168.1.64",
		Port:          8000,
		UserName:      "admin",
		Password:      "hik12345",
	}
	buf, err := info.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != LoginInfoSize {
		t.Fatalf("len = %d, want %d", len(buf), LoginInfoSize)
	}
	if got := string(buf[:12]); got != "192.168.1.64" || buf[12] != 0 {
		t.Errorf("address = %q", got)
	}
	if port := binary.LittleEndian.Uint16(buf[130:]); port != 8000 {
		t.Errorf("port = %d", port)
	}
	if got := string(buf[132:137]); got != "admin" {
		t.Errorf("username = %q", got)
	}
	if got := string(buf[196:204]); got != "hik12345" {
		t.Errorf("password = %q", got)
	}
	if binary.LittleEndian.Uint32(buf[280:]) != 0 {
		t.Error("async login should be off")
	}

	t.Run("address too long", func(t *testing.T) {
		long := &LoginInfo{DeviceAddress: strings.Repeat("a", NET_DVR_DEV_ADDRESS_MAX_LEN)}
		if _, err := long.Marshal(); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("empty address", func(t *testing.T) {
		if err := (&LoginInfo{}).Validate(); err == nil {
			t.Error("expected error")
		}
	})
}

func TestSetupAlarmParamMarshal(t *testing.T) {
	buf := (&SetupAlarmParam{Level: ALARM_LEVEL_MEDIUM, AlarmInfoType: ALARM_INFO_NEW}).Marshal()
	if len(buf) != SetupAlarmParamSize {
		t.Fatalf("len = %d", len(buf))
	}
	if binary.LittleEndian.Uint32(buf) != SetupAlarmParamSize {
		t.Errorf("dwSize = %d", binary.LittleEndian.Uint32(buf))
	}
	if buf[4] != 1 || buf[5] != 1 {
		t.Errorf("level/infoType = %d/%d, want 1/1", buf[4], buf[5])
	}
}

func TestParsePlateResult(t *testing.T) {
	src := &PlateResult{
		MatchNo:     7,
		DriveChan:   2,
		VehicleType: 3,
		PlateInfo:   PlateInfo{Color: 1, License: []byte("0A1234")},
		VehicleInfo: VehicleInfo{Speed: 42, Color: 5},
		SiteID:      "site-01",
		DeviceID:    "dev-01",
		IllegalTime: 0x5F4AB149,
		PicNum:      2,
	}
	src.PictureInfos[0] = PictureInfo{DataLen: 10, Type: 0, Buffer: 0x1000}
	src.PictureInfos[1] = PictureInfo{DataLen: 20, Type: 1, Buffer: 0x2000}
	buf := src.Marshal()

	if buf[13] != 3 {
		t.Errorf("byVehicleType at 13 = %d", buf[13])
	}
	if got := string(buf[88:94]); got != "0A1234" {
		t.Errorf("sLicense at 88 = %q", got)
	}
	if binary.LittleEndian.Uint32(buf[308:]) != 2 {
		t.Errorf("dwPicNum at 308 = %d", binary.LittleEndian.Uint32(buf[308:]))
	}
	if binary.LittleEndian.Uint64(buf[312+PictureInfoSize+80:]) != 0x2000 {
		t.Error("second pBuffer misplaced")
	}

	got, err := ParsePlateResult(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.MatchNo != 7 || got.DriveChan != 2 || got.VehicleType != 3 {
		t.Errorf("header = %+v", got)
	}
	if got.VehicleInfo.Speed != 42 || got.VehicleInfo.Color != 5 {
		t.Errorf("vehicle = %+v", got.VehicleInfo)
	}
	if got.SiteID != "site-01" || got.DeviceID != "dev-01" {
		t.Errorf("site/device = %q/%q", got.SiteID, got.DeviceID)
	}
	pics := got.Pictures()
	if len(pics) != 2 || pics[1].Buffer != 0x2000 || pics[1].DataLen != 20 || pics[1].Type != 1 {
		t.Errorf("pictures = %+v", pics)
	}
}

func TestParsePlateResultSizeMismatch(t *testing.T) {
	for _, n := range []int{0, PlateResultSize - 1, PlateResultSize + 1} {
		_, err := ParsePlateResult(make([]byte, n))
		var lerr *LayoutError
		if !errors.As(err, &lerr) {
			t.Fatalf("len %d: err = %v, want *LayoutError", n, err)
		}
		if lerr.Got != n || lerr.Want != PlateResultSize {
			t.Errorf("len %d: %+v", n, lerr)
		}
	}
}

func TestPicturesBounded(t *testing.T) {
	p := &PlateResult{PicNum: 99}
	if n := len(p.Pictures()); n != MAX_ITS_PICTURES {
		t.Errorf("pictures = %d, want %d", n, MAX_ITS_PICTURES)
	}
}

func TestParseAlarmer(t *testing.T) {
	buf := (&Alarmer{UserID: 3, SerialNumber: "DS-2CD", DeviceIP: "10.0.0.8"}).Marshal()
	a, err := ParseAlarmer(buf)
	if err != nil {
		t.Fatal(err)
	}
	if a.UserID != 3 || a.SerialNumber != "DS-2CD" || a.DeviceIP != "10.0.0.8" {
		t.Errorf("alarmer = %+v", a)
	}

	empty, err := ParseAlarmer(make([]byte, AlarmerSize))
	if err != nil {
		t.Fatal(err)
	}
	if empty.UserID != -1 || empty.DeviceIP != "" {
		t.Errorf("invalid flags should leave fields unset: %+v", empty)
	}
}

func TestParseDeviceInfo(t *testing.T) {
	buf := (&DeviceInfo{SerialNumber: "SN001", ChanNum: 1, StartChan: 1, CharEncodeType: CHAR_ENCODE_UTF8}).Marshal()
	d, err := ParseDeviceInfo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d.SerialNumber != "SN001" || d.StartChan != 1 || d.CharEncodeType != CHAR_ENCODE_UTF8 {
		t.Errorf("device = %+v", d)
	}
}
