package context

import (
	"dyzs/hkcamera/model"
	"dyzs/hkcamera/util"
	"fmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"os"
	"time"
)

const _CONFIG_NAME = "config.yml"

//读取配置，未指定时使用程序目录下的config.yml
func InitConfig(cfgFile string) error {
	if cfgFile == "" {
		cfgFile = util.GetAppPath() + _CONFIG_NAME
	}
	log.Info("configPath:", cfgFile)
	setDefaults()
	viper.SetConfigFile(cfgFile)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(cfgFile); os.IsNotExist(statErr) {
			log.Warn("配置文件不存在，使用默认配置：", cfgFile)
			return nil
		}
		return fmt.Errorf("Fail to read config file %s: %w", cfgFile, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("port", "8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("hk.charset", "gbk")
	viper.SetDefault("hk.connectTimeout", 2000)
	viper.SetDefault("hk.reconnectInterval", 10000)
	viper.SetDefault("alarm.registerInterval", 2000)
	viper.SetDefault("alarm.queueSize", 64)
	viper.SetDefault("alarm.workers", 4)
	viper.SetDefault("alarm.flow", []string{"imagesave", "platecache", "platestore", "platepush"})
	viper.SetDefault("capture.bufferSize", 1024*1024)
	viper.SetDefault("capture.picSize", 2)
	viper.SetDefault("capture.quality", 0)
	viper.SetDefault("redis.expire", 86400)
	viper.SetDefault("mongodb.db", "hkcamera")
}

//配置
func Set(key string, value interface{}) {
	viper.Set(key, value)
}

//返回未配置的key
func IsExsit(keys ...string) []string {
	unset := make([]string, 0)
	for _, k := range keys {
		if !viper.IsSet(k) || viper.GetString(k) == "" {
			unset = append(unset, k)
		}
	}
	return unset
}

func GetString(key string) string {
	return viper.GetString(key)
}
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
func GetInt(key string) int {
	return viper.GetInt(key)
}
func GetInt32(key string) int32 {
	return viper.GetInt32(key)
}
func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}
func GetBool(key string) bool {
	return viper.GetBool(key)
}

//毫秒配置转Duration
func GetMillis(key string) time.Duration {
	return time.Duration(viper.GetInt64(key)) * time.Millisecond
}

//车牌摄像头
func GetPlateDevice() (model.DeviceCredentials, error) {
	p := model.CameraParam{}
	if err := viper.UnmarshalKey("hk.plateNumber", &p); err != nil {
		return model.DeviceCredentials{}, err
	}
	return p.Credentials(), nil
}

//全彩摄像头
func GetCameras() ([]model.CameraParam, error) {
	cameras := make([]model.CameraParam, 0)
	if err := viper.UnmarshalKey("hk.camera", &cameras); err != nil {
		return nil, err
	}
	return cameras, nil
}
