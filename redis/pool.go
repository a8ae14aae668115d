package redis

import (
	"dyzs/hkcamera/logger"
	"github.com/gomodule/redigo/redis"
	"time"
)

var (
	DEFAULT = time.Duration(0)  // 过期时间 不设置
	FOREVER = time.Duration(-1) // 过期时间不设置
)

type Cache struct {
	pool              *redis.Pool
	defaultExpiration time.Duration
}

// 返回cache 对象
func NewRedisCache(db int, host string, defaultExpiration time.Duration) *Cache {
	pool := &redis.Pool{
		MaxActive:   20,                              // 最大连接数
		MaxIdle:     5,                               // 最大空闲连接数
		IdleTimeout: time.Duration(100) * time.Second, // 空闲连接超时时间，应比redis服务器超时时间短
		Wait:        true,                            // 超过最大连接数时等待
		Dial: func() (redis.Conn, error) {
			conn, err := redis.Dial("tcp", host,
				redis.DialDatabase(db),
				redis.DialConnectTimeout(3*time.Second),
				redis.DialReadTimeout(3*time.Second),
				redis.DialWriteTimeout(3*time.Second),
			)
			if err != nil {
				logger.LOG_WARN("连接redis失败：", host, err)
				return nil, err
			}
			return conn, nil
		},
	}
	return &Cache{pool: pool, defaultExpiration: defaultExpiration}
}

func (c *Cache) Close() (err error) {
	if c.pool != nil {
		return c.pool.Close()
	}
	return nil
}

func (c *Cache) Inited() bool {
	return c.pool != nil
}

func (c *Cache) Ping() error {
	conn := c.pool.Get()
	defer conn.Close()
	_, err := conn.Do("PING")
	return err
}
