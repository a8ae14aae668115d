package logger

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"os"
	"path"
	"strings"
	"sync"
	"time"
)

var _logLevelMap = map[string]log.Level{
	"panic": log.PanicLevel,
	"fatal": log.FatalLevel,
	"error": log.ErrorLevel,
	"warn":  log.WarnLevel,
	"info":  log.InfoLevel,
	"debug": log.DebugLevel,
	"trace": log.TraceLevel,
}

//日志保留时长
const _LOG_KEEP = 72 * time.Hour

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		level := log.InfoLevel
		if l, ok := parseLevel(viper.GetString("log.level")); ok {
			level = l
		}
		log.SetLevel(level)

		dir := path.Join(GetAppPath(), "logs")
		exist, err := PathExists(dir)
		if err == nil {
			if !exist {
				// 创建文件夹
				err := os.MkdirAll(dir, os.ModePerm)
				if err != nil {
					fmt.Printf("mkdir failed![%v]\n", err)
				}
			}
		} else {
			fmt.Println(err)
		}

		go rollLogFile()
	})
}

//按天切换日志文件
func rollLogFile() {
	var currentLogFile *os.File
	var currentLogFileName string
	var err error
	for {
		logfileName := genLogFileName(time.Now())
		if currentLogFile == nil || currentLogFileName != logfileName {
			currentLogFileName = logfileName
			if currentLogFile != nil {
				currentLogFile.Close()
			}
			currentLogFile, err = os.OpenFile(currentLogFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				log.Error("Fail to create log file :", err)
				return
			}
			log.SetOutput(currentLogFile)
			removeLogFile(genLogFileName(time.Now().Add(-_LOG_KEEP)))
		}
		time.Sleep(time.Duration(1) * time.Minute)
	}
}

func parseLevel(name string) (log.Level, bool) {
	if name == "" {
		return log.InfoLevel, false
	}
	l, ok := _logLevelMap[strings.ToLower(name)]
	return l, ok
}

//变更日志级别
func ChangeLevel(name string) bool {
	l, ok := parseLevel(name)
	if !ok {
		LOG_WARN("未知的日志级别：", name)
		return false
	}
	log.SetLevel(l)
	LOG_WARN("日志级别变更为：", l.String())
	return true
}

func genLogFileName(date time.Time) string {
	return path.Join(GetAppPath(), "logs", "hkcamera."+date.Format("20060102")+".log")
}

func GetAppPath() string {
	return os.Args[0][:(strings.LastIndex(os.Args[0], string(os.PathSeparator)) + 1)]
}

func removeLogFile(logName string) {
	exist, _ := PathExists(logName)
	if !exist {
		return
	}
	err := os.Remove(logName)
	if err != nil {
		log.Warn("Fail to remove log file:", err)
	} else {
		log.Info("Success to remove log file:", logName)
	}
}

// 判断文件夹是否存在
func PathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func LOG_DEBUG(vars ...interface{}) {
	if log.GetLevel() == log.DebugLevel {
		fmt.Println(vars...)
	}
	log.Debug(vars...)
}

func LOG_TRACE(vars ...interface{}) {
	if log.GetLevel() == log.DebugLevel {
		fmt.Println(vars...)
	}
	log.Trace(vars...)
}

func LOG_INFO(vars ...interface{}) {
	if log.GetLevel() == log.DebugLevel {
		fmt.Println(vars...)
	}
	log.Info(vars...)
}

func LOG_WARN(vars ...interface{}) {
	if log.GetLevel() == log.DebugLevel {
		fmt.Println(vars...)
	}
	log.Warn(vars...)
}

func LOG_ERROR(vars ...interface{}) {
	if log.GetLevel() == log.DebugLevel {
		fmt.Println(vars...)
	}
	log.Error(vars...)
}
