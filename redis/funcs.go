package redis

import (
	"errors"
	"github.com/gomodule/redigo/redis"
	"github.com/vmihailenco/msgpack/v5"
)

var ErrNil = redis.ErrNil

// 序列化
func Serialization(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

// 反序列化，v 为指针
func Deserialization(data []byte, v interface{}) error {
	return msgpack.Unmarshal(data, v)
}

// string 类型 添加, v 可以是任意类型，按默认过期时间设置
func (c *Cache) StringSet(name string, v interface{}) error {
	s, err := Serialization(v)
	if err != nil {
		return err
	}
	conn := c.pool.Get()
	defer conn.Close()
	if c.defaultExpiration > 0 {
		_, err = conn.Do("SET", name, s, "EX", int64(c.defaultExpiration.Seconds()))
	} else {
		_, err = conn.Do("SET", name, s)
	}
	return err
}

// 获取 字符串类型的值，不存在时返回 ErrNil
func (c *Cache) StringGet(name string, v interface{}) error {
	conn := c.pool.Get()
	defer conn.Close()
	if conn.Err() != nil {
		return conn.Err()
	}
	temp, err := redis.Bytes(conn.Do("GET", name))
	if err != nil {
		return err
	}
	return Deserialization(temp, v)
}

// 判断所在的 key 是否存在
func (c *Cache) Exist(name string) (bool, error) {
	conn := c.pool.Get()
	defer conn.Close()
	v, err := redis.Bool(conn.Do("EXISTS", name))
	return v, err
}

// 设置过期时间 （单位 秒）
func (c *Cache) Expire(name string, newSecondsLifeTime int64) error {
	conn := c.pool.Get()
	defer conn.Close()
	_, err := conn.Do("EXPIRE", name, newSecondsLifeTime)
	return err
}

// 删除指定的键
func (c *Cache) Delete(keys ...interface{}) (bool, error) {
	conn := c.pool.Get()
	defer conn.Close()
	v, err := redis.Bool(conn.Do("DEL", keys...))
	return v, err
}

// //////////////////  hash ///////////
// 设置单个值, value 还可以是一个 map slice 等
func (c *Cache) HSet(name string, key string, value interface{}) error {
	v, err := Serialization(value)
	if err != nil {
		return err
	}
	conn := c.pool.Get()
	defer conn.Close()
	_, err = conn.Do("HSET", name, key, v)
	return err
}

// 获取单个hash 中的值
func (c *Cache) HGet(name, field string, v interface{}) error {
	conn := c.pool.Get()
	defer conn.Close()
	temp, err := redis.Bytes(conn.Do("HGET", name, field))
	if err != nil {
		return err
	}
	return Deserialization(temp, v)
}

// 获取hash 中全部的值，逐个交给 each 反序列化
func (c *Cache) HGetAll(name string, each func(field string, data []byte) error) error {
	conn := c.pool.Get()
	defer conn.Close()
	m, err := redis.StringMap(conn.Do("HGETALL", name))
	if err != nil {
		return err
	}
	for k, v := range m {
		if err := each(k, []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

// //////////////////  list ///////////
// 头部插入并只保留前 max 个
func (c *Cache) ListPushTrim(name string, value interface{}, max int) error {
	if max <= 0 {
		return errors.New("列表长度不合法")
	}
	v, err := Serialization(value)
	if err != nil {
		return err
	}
	conn := c.pool.Get()
	defer conn.Close()
	if err := conn.Send("MULTI"); err != nil {
		return err
	}
	_ = conn.Send("LPUSH", name, v)
	_ = conn.Send("LTRIM", name, 0, max-1)
	_, err = conn.Do("EXEC")
	return err
}

// 获取列表 [start, stop] 区间的原始值
func (c *Cache) ListRange(name string, start, stop int) ([][]byte, error) {
	conn := c.pool.Get()
	defer conn.Close()
	return redis.ByteSlices(conn.Do("LRANGE", name, start, stop))
}
