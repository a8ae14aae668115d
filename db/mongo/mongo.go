package mongo

import (
	"dyzs/hkcamera/context"
	"dyzs/hkcamera/logger"
	"errors"
	"sync"
	"time"

	"github.com/globalsign/mgo"
)

var ErrNotConfigured = errors.New("mongodb 连接地址未设置")

var (
	lock      sync.Mutex
	session   *mgo.Session
	currentDB string
)

func Configured() bool {
	return context.GetString("mongodb.url") != ""
}

func Connect() (err error) {
	url := context.GetString("mongodb.url")
	db := context.GetString("mongodb.db")
	if url == "" {
		return ErrNotConfigured
	}
	if db == "" {
		logger.LOG_WARN("mongodb 未指定库")
	}
	s, err := mgo.DialWithTimeout(url, 5*time.Second)
	if err != nil {
		logger.LOG_ERROR("连接数据库异常", err)
		return
	}
	s.SetMode(mgo.Monotonic, true)
	currentDB = db
	session = s
	return
}

//返回的集合使用独立会话，用完调用 Database.Session.Close
func Dataset(c string) (clt *mgo.Collection, err error) {
	lock.Lock()
	defer lock.Unlock()
	if session == nil {
		if err = Connect(); err != nil {
			return nil, err
		}
	}
	return session.Copy().DB(currentDB).C(c), nil
}

func Close() {
	lock.Lock()
	defer lock.Unlock()
	if session != nil {
		session.Close()
		session = nil
	}
}
