package uuid

import (
	"github.com/satori/go.uuid"
	"strings"
)

func UUID() string {
	return uuid.NewV4().String()
}

//去掉中划线的32位uuid
func UUIDShort() string {
	return strings.ReplaceAll(uuid.NewV4().String(), "-", "")
}

//唯一文件名 {uuid}_{suffix}.{ext}
func FileName(suffix, ext string) string {
	name := UUID()
	if suffix != "" {
		name += "_" + suffix
	}
	if ext != "" {
		name += "." + strings.TrimPrefix(ext, ".")
	}
	return name
}
