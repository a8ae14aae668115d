package util

import (
	"dyzs/hkcamera/logger"
	"time"
)

/**
重试，times<=1时只执行一次，返回最后一次的错误
*/
func Retry(f func() error, times int, space time.Duration) error {
	err := f()
	for i := 1; err != nil && i < times; i++ {
		logger.LOG_DEBUG("第", i, "次执行失败，", space, "后重试：", err)
		time.Sleep(space)
		err = f()
	}
	return err
}
