package alarm

import (
	"bytes"
	"dyzs/hkcamera/sdk"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

type Charset string

const (
	CharsetGBK  Charset = "gbk"
	CharsetUTF8 Charset = "utf8"
)

const _NO_PLATE = "无车牌"

var errInvalidText = errors.New("车牌编码不合法")

func ParseCharset(s string) Charset {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "utf8", "utf-8":
		return CharsetUTF8
	}
	return CharsetGBK
}

//设备登录返回的编码优先，未知时使用配置
func CharsetOf(dev *sdk.DeviceInfo, fallback Charset) Charset {
	if dev == nil {
		return fallback
	}
	switch dev.CharEncodeType {
	case sdk.CHAR_ENCODE_UTF8:
		return CharsetUTF8
	case sdk.CHAR_ENCODE_GB2312, sdk.CHAR_ENCODE_GBK:
		return CharsetGBK
	}
	return fallback
}

func (c Charset) decode(raw []byte) (string, error) {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	if c == CharsetUTF8 {
		if !utf8.Valid(raw) {
			return "", errInvalidText
		}
		return string(raw), nil
	}
	out, err := simplifiedchinese.GBK.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	//非法字节会被替换为 U+FFFD
	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", errInvalidText
	}
	return string(out), nil
}

//车牌文本：第一个字符为颜色，第二个为省份，其余为号码
type Plate struct {
	Text     string
	Color    string
	Province string
	Number   string
}

func (p Plate) Empty() bool {
	return p.Number == ""
}

//按字符而非字节切分，非ASCII车牌同样适用
func SplitPlate(raw []byte, c Charset) (Plate, error) {
	text, err := c.decode(raw)
	if err != nil {
		return Plate{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" || strings.Contains(text, _NO_PLATE) {
		return Plate{Text: text}, nil
	}
	runes := []rune(text)
	if len(runes) < 3 {
		return Plate{}, errors.New("车牌长度不足: " + text)
	}
	return Plate{
		Text:     text,
		Color:    strings.TrimSpace(string(runes[0])),
		Province: strings.TrimSpace(string(runes[1])),
		Number:   strings.TrimSpace(string(runes[2:])),
	}, nil
}
