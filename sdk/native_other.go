//go:build !linux

package sdk

import (
	"fmt"
	"runtime"
)

func Load(dir string) (NetSDK, error) {
	return nil, fmt.Errorf("当前系统不支持加载SDK: %s", runtime.GOOS)
}
