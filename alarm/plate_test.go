package alarm

import (
	"dyzs/hkcamera/sdk"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func gbk(t *testing.T, s string) []byte {
	t.Helper()
	b, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSplitPlate(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		charset Charset
		want    Plate
	}{
		{"ascii", []byte("0A1234\x00\x00"), CharsetGBK, Plate{Text: "0A1234", Color: "0", Province: "A", Number: "1234"}},
		{"gbk", gbk(t, "蓝京A12345"), CharsetGBK, Plate{Text: "蓝京A12345", Color: "蓝", Province: "京", Number: "A12345"}},
		{"utf8", []byte("黄粤B9876 "), CharsetUTF8, Plate{Text: "黄粤B9876", Color: "黄", Province: "粤", Number: "B9876"}},
		{"no plate", gbk(t, "无车牌"), CharsetGBK, Plate{Text: "无车牌"}},
		{"empty", make([]byte, sdk.MAX_LICENSE_LEN), CharsetGBK, Plate{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitPlate(tt.raw, tt.charset)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSplitPlateInvalid(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		if _, err := SplitPlate([]byte("0A"), CharsetGBK); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("bad utf8", func(t *testing.T) {
		if _, err := SplitPlate([]byte{'0', 'A', 0xff, 0xfe}, CharsetUTF8); err == nil {
			t.Error("expected error")
		}
	})
	t.Run("bad gbk", func(t *testing.T) {
		if _, err := SplitPlate([]byte{'0', 'A', '1', 0x81}, CharsetGBK); err == nil {
			t.Error("expected error")
		}
	})
}

func TestCharsetOf(t *testing.T) {
	if c := CharsetOf(nil, CharsetGBK); c != CharsetGBK {
		t.Errorf("nil device = %s", c)
	}
	if c := CharsetOf(&sdk.DeviceInfo{CharEncodeType: sdk.CHAR_ENCODE_UTF8}, CharsetGBK); c != CharsetUTF8 {
		t.Errorf("utf8 device = %s", c)
	}
	if c := CharsetOf(&sdk.DeviceInfo{}, CharsetUTF8); c != CharsetUTF8 {
		t.Errorf("unknown device = %s", c)
	}
	if ParseCharset("UTF-8") != CharsetUTF8 || ParseCharset("") != CharsetGBK {
		t.Error("ParseCharset")
	}
}
