package images

import (
	"encoding/base64"
	"os"
)

func EncodeBase64(bytes []byte) string {
	return base64.StdEncoding.EncodeToString(bytes)
}

func DecodeBase64(base64Str string) (bytes []byte, err error) {
	return base64.StdEncoding.DecodeString(base64Str)
}

//读取图片并转base64
func FileToBase64(path string) (string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return EncodeBase64(bytes), nil
}
